package prompt

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"advisor-ai/internal/portfolio"
)

// PortfolioText renders the full client snapshot as plain text for injection
// into the system instructions. Deterministic for a given snapshot.
func PortfolioText(c *portfolio.Client, s *portfolio.Summary, d *portfolio.DebtSummary) string {
	var lines []string

	lines = append(lines, "=== CLIENT PROFILE ===")
	lines = append(lines, fmt.Sprintf("Name: %s | Age: %d | Filing: %s | State: %s",
		s.Owner.Name, s.Owner.Age, s.Owner.FilingStatus, s.Owner.State))
	lines = append(lines, fmt.Sprintf("Annual Income: %s | Federal Bracket: %s | State Bracket: %s",
		portfolio.Currency(s.Owner.AnnualIncome), s.Owner.TaxBracketFederal, s.Owner.TaxBracketState))
	lines = append(lines, "")

	lines = append(lines, "=== PORTFOLIO OVERVIEW ===")
	lines = append(lines, fmt.Sprintf("Total Value: %s | Cost Basis: %s | Gain/Loss: %s (%s)",
		portfolio.Currency(s.TotalValue), portfolio.Currency(s.TotalCostBasis),
		signedCurrency(s.TotalGainLoss), portfolio.Percent(s.GainLossPercent)))
	lines = append(lines, "")

	for _, acct := range s.Accounts {
		lines = append(lines, fmt.Sprintf("=== ACCOUNT: %s (%s) | Tax Treatment: %s ===",
			acct.Name, acct.Institution, acct.TaxTreatment))
		if acct.Beneficiary != "" {
			lines = append(lines, "Beneficiary: "+acct.Beneficiary)
		}
		lines = append(lines, fmt.Sprintf("Total Value: %s | Gain/Loss: %s (%s)",
			portfolio.Currency(acct.TotalValue), signedCurrency(acct.TotalGainLoss),
			portfolio.Percent(acct.GainLossPercent)))
		for _, h := range acct.Computed {
			lines = append(lines, fmt.Sprintf("  %-6s | %-40s | %5s shares | Cost: %10s | Price: %10s | Value: %10s | %s (%s)",
				h.Ticker, h.Name, formatShares(h.Shares),
				portfolio.CurrencyPrecise(h.CostBasis), portfolio.CurrencyPrecise(h.CurrentPrice),
				portfolio.Currency(h.CurrentValue),
				signedCurrency(h.GainLoss), portfolio.Percent(h.GainLossPercent)))
		}
		lines = append(lines, "")
	}

	lines = append(lines, "=== ASSET ALLOCATION ===")
	for _, a := range sortedAllocation(s.AssetAllocation) {
		lines = append(lines, fmt.Sprintf("  %s: %s", a.class, portfolio.Percent(a.frac)))
	}

	w2 := c.W2
	lines = append(lines, "")
	lines = append(lines, "=== W-2 INCOME (Current Year) ===")
	lines = append(lines, fmt.Sprintf("Employer: %s | Tax Year: %d", w2.Employer, w2.Year))
	lines = append(lines, "Box 1 — Wages: "+portfolio.Currency(w2.WagesBox1))
	lines = append(lines, "Box 2 — Federal Withheld: "+portfolio.Currency(w2.FederalWithheldBox2))
	lines = append(lines, fmt.Sprintf("Box 3 — SS Wages: %s | Box 4 — SS Withheld: %s",
		portfolio.Currency(w2.SocialSecurityWagesBox3), portfolio.Currency(w2.SocialSecurityWithheldBox4)))
	lines = append(lines, fmt.Sprintf("Box 5 — Medicare Wages: %s | Box 6 — Medicare Withheld: %s",
		portfolio.Currency(w2.MedicareWagesBox5), portfolio.Currency(w2.MedicareWithheldBox6)))
	lines = append(lines, fmt.Sprintf("Box 16 — State Wages: %s | Box 17 — State Withheld: %s",
		portfolio.Currency(w2.StateWagesBox16), portfolio.Currency(w2.StateWithheldBox17)))
	lines = append(lines, "Box 12(D) — 401(k) Deferral: "+portfolio.Currency(w2.Retirement401kBox12D))
	lines = append(lines, "Box 12(W) — HSA Contribution: "+portfolio.Currency(w2.HSABox12W))
	lines = append(lines, "Box 10 — Dependent Care FSA: "+portfolio.Currency(w2.DependentCareFSABox10))
	lines = append(lines, "Box 12(DD) — Employer Health Insurance: "+portfolio.Currency(w2.HealthInsuranceBox12DD))
	if w2.WagesBox1 > 0 {
		lines = append(lines, fmt.Sprintf("Total Tax Withheld: %s (Effective withholding rate: %s)",
			portfolio.Currency(w2.TotalWithheld()), portfolio.Percent(w2.TotalWithheld()/w2.WagesBox1)))
	}

	if len(d.Debts) > 0 {
		lines = append(lines, "")
		lines = append(lines, "=== DEBT OBLIGATIONS ===")
		lines = append(lines, fmt.Sprintf("Total Outstanding: %s | Total Monthly Payments: %s | Home Equity: %s",
			portfolio.Currency(d.TotalBalance), portfolio.Currency(d.TotalMonthly), portfolio.Currency(d.HomeEquity)))
		for _, debt := range d.Debts {
			lines = append(lines, fmt.Sprintf("  %s (%s): Balance %s of %s | %s APR | %s/mo | %s",
				debt.Type, debt.Lender,
				portfolio.Currency(debt.CurrentBalance), portfolio.Currency(debt.OriginalBalance),
				portfolio.Percent(debt.InterestRate), portfolio.Currency(debt.MonthlyPayment), debt.Term))
		}
	}

	e := c.Estate
	lines = append(lines, "")
	lines = append(lines, "=== ESTATE PLAN ===")
	lines = append(lines, fmt.Sprintf("Will: %s (%s) | Attorney: %s", e.Will.Status, e.Will.LastUpdated, e.Will.Attorney))
	lines = append(lines, fmt.Sprintf("Trust: %s — %s", e.RevocableTrust.Name, e.RevocableTrust.Status))
	lines = append(lines, fmt.Sprintf("POA Financial: %s | POA Healthcare: %s", e.PowerOfAttorney.Financial, e.PowerOfAttorney.Healthcare))
	lines = append(lines, "Guardian: "+e.GuardianChild)
	lines = append(lines, fmt.Sprintf("Life Insurance: %s %s — %s (%s, $%s/mo)",
		e.LifeInsurance.Type, e.LifeInsurance.Term, portfolio.Currency(e.LifeInsurance.CoverageAmount),
		e.LifeInsurance.Provider, strconv.FormatFloat(e.LifeInsurance.Premium, 'f', -1, 64)))
	lines = append(lines, fmt.Sprintf("Umbrella Insurance: %s (%s, $%s/yr)",
		portfolio.Currency(e.UmbrellaInsurance.CoverageAmount), e.UmbrellaInsurance.Provider,
		strconv.FormatFloat(e.UmbrellaInsurance.AnnualPremium, 'f', -1, 64)))
	lines = append(lines, "Beneficiaries:")
	for _, b := range e.Beneficiaries {
		lines = append(lines, fmt.Sprintf("  %s: Primary — %s | Contingent — %s", b.Account, b.Primary, b.Contingent))
	}

	return strings.Join(lines, "\n")
}

func signedCurrency(v float64) string {
	if v >= 0 {
		return "+" + portfolio.Currency(v)
	}
	return portfolio.Currency(v)
}

func formatShares(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

type allocEntry struct {
	class string
	frac  float64
}

func sortedAllocation(alloc map[string]float64) []allocEntry {
	out := make([]allocEntry, 0, len(alloc))
	for class, frac := range alloc {
		out = append(out, allocEntry{class, frac})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].frac != out[j].frac {
			return out[i].frac > out[j].frac
		}
		return out[i].class < out[j].class
	})
	return out
}
