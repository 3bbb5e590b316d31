package prompt

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"advisor-ai/internal/domain"
	"advisor-ai/internal/portfolio"
)

// Dossiers builds the seven per-domain advisory blocks for the active client.
// Each dossier is a deterministic function of the snapshot; figures are
// recomputed on every call so a client switch always reflects fresh data.
func Dossiers(c *portfolio.Client, s *portfolio.Summary, d *portfolio.DebtSummary) []Section {
	builders := map[domain.SpecialistID]func(*portfolio.Client, *portfolio.Summary, *portfolio.DebtSummary) string{
		domain.SpecialistTax:         taxDossier,
		domain.SpecialistRetirement:  retirementDossier,
		domain.SpecialistDebt:        debtDossier,
		domain.SpecialistRebalancing: rebalancingDossier,
		domain.SpecialistInsurance:   insuranceDossier,
		domain.SpecialistCashflow:    cashflowDossier,
		domain.SpecialistGoals:       goalsDossier,
	}

	var out []Section
	for _, id := range domain.SpecialistOrder {
		sp := domain.Specialists[id]
		out = append(out, Section{
			Heading: fmt.Sprintf("SPECIALIST: %s — %s, %s", dossierLabel(id), sp.Name, sp.Title),
			Body:    builders[id](c, s, d),
		})
	}
	return out
}

func dossierLabel(id domain.SpecialistID) string {
	if id == domain.SpecialistCashflow {
		return "CASH FLOW"
	}
	return strings.ToUpper(string(id))
}

func dossierText(domainLine string, observations []string, directive string) string {
	var b strings.Builder
	b.WriteString("Domain: " + domainLine + "\n")
	b.WriteString("Key observations:\n")
	for _, o := range observations {
		b.WriteString("- " + o + "\n")
	}
	b.WriteString("Directive: " + directive)
	return b.String()
}

// parseBracket extracts the numeric part of a bracket string like "24%".
func parseBracket(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(s), "%"), 64)
	if err != nil {
		return 0
	}
	return v
}

// parseStartYear extracts the year from a "YYYY-MM" date.
func parseStartYear(date string) int {
	parts := strings.SplitN(date, "-", 2)
	y, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0
	}
	return y
}

// parseTermYears extracts the leading integer of a term like "20 years".
// Returns 0 for non-expiring terms ("Permanent").
func parseTermYears(term string) int {
	fields := strings.Fields(term)
	if len(fields) == 0 {
		return 0
	}
	y, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0
	}
	return y
}

func findAccount(s *portfolio.Summary, accountType string) *portfolio.ComputedAccount {
	for i := range s.Accounts {
		if s.Accounts[i].Type == accountType {
			return &s.Accounts[i]
		}
	}
	return nil
}

func findDebt(d *portfolio.DebtSummary, id string) *portfolio.Debt {
	for i := range d.Debts {
		if d.Debts[i].ID == id {
			return &d.Debts[i]
		}
	}
	return nil
}

func dtiPercent(s *portfolio.Summary, d *portfolio.DebtSummary) int {
	if s.Owner.AnnualIncome <= 0 {
		return 0
	}
	return int(math.Round(d.TotalMonthly / (s.Owner.AnnualIncome / 12) * 100))
}

func taxDossier(c *portfolio.Client, s *portfolio.Summary, d *portfolio.DebtSummary) string {
	var obs []string

	if daf := findAccount(s, "daf"); daf != nil && len(daf.Computed) > 0 {
		top := daf.Computed[0]
		for _, h := range daf.Computed[1:] {
			if h.GainLoss > top.GainLoss {
				top = h
			}
		}
		obs = append(obs, fmt.Sprintf("DAF contains highly appreciated %s (cost basis $%v, current ~$%v) — significant tax-efficient charitable giving opportunity",
			top.Ticker, top.CostBasis, top.CurrentPrice))
	}
	for _, acct := range s.Accounts {
		if acct.Type != "taxable" {
			continue
		}
		for _, h := range acct.Computed {
			if h.GainLoss < 0 {
				obs = append(obs, fmt.Sprintf("%s in taxable account showing a loss — tax-loss harvesting candidate", h.Ticker))
			}
		}
	}
	if c.W2.Retirement401kBox12D > 0 {
		obs = append(obs, fmt.Sprintf("W-2 shows %s in 401(k) deferrals (maxing %d limit), %s HSA (family max), %s dependent care FSA",
			portfolio.Dollars(c.W2.Retirement401kBox12D), c.W2.Year,
			portfolio.Dollars(c.W2.HSABox12W), portfolio.Dollars(c.W2.DependentCareFSABox10)))
	}
	if s.Owner.AnnualIncome > 0 {
		pct := int(math.Round(c.W2.TotalWithheld() / s.Owner.AnnualIncome * 100))
		obs = append(obs, fmt.Sprintf("Effective withholding rate ~%d%% on %s income — review over/under-withholding",
			pct, portfolio.Thousands(s.Owner.AnnualIncome)))
	}
	combined := parseBracket(s.Owner.TaxBracketFederal) + parseBracket(s.Owner.TaxBracketState)
	obs = append(obs, fmt.Sprintf("At %s federal + %s state, every tax-deferred dollar saves ~%d cents",
		s.Owner.TaxBracketFederal, s.Owner.TaxBracketState, int(math.Round(combined))))

	return dossierText(
		"tax-loss harvesting, Roth conversions, asset location, capital gains, withholding analysis",
		obs,
		"Always estimate dollar tax impact. For TLH, calculate savings at marginal rate. For Roth conversions, model break-even period.")
}

func retirementDossier(c *portfolio.Client, s *portfolio.Summary, d *portfolio.DebtSummary) string {
	netWorth := math.Round(s.TotalValue - d.TotalBalance)
	obs := []string{
		fmt.Sprintf("Currently maxing 401(k) (%s), HSA (%s), and FSA (%s)",
			portfolio.Dollars(c.W2.Retirement401kBox12D), portfolio.Dollars(c.W2.HSABox12W),
			portfolio.Dollars(c.W2.DependentCareFSABox10)),
		"HSA is a powerful retirement vehicle beyond health expenses",
		fmt.Sprintf("Total assets ~%s against ~%s debt — net worth ~%s for a %d-year-old",
			portfolio.Thousands(s.TotalValue), portfolio.Thousands(d.TotalBalance),
			portfolio.Thousands(netWorth), s.Owner.Age),
		"Next marginal savings dollar: Roth IRA (backdoor), taxable brokerage, or additional 529 depending on priorities",
	}
	return dossierText(
		"savings rate projections, Monte Carlo, withdrawal strategies, Social Security, 401(k) optimization",
		obs,
		"Show projection math in responses. State assumptions (return rate, inflation, retirement age). Compare scenarios.")
}

func debtDossier(c *portfolio.Client, s *portfolio.Summary, d *portfolio.DebtSummary) string {
	var obs []string
	if m := findDebt(d, "mortgage"); m != nil {
		obs = append(obs, fmt.Sprintf("Mortgage at %s APR, %s balance — home equity ~%s. Refinancing worth evaluating.",
			portfolio.Rate(m.InterestRate), portfolio.Thousands(m.CurrentBalance), portfolio.Thousands(d.HomeEquity)))
	}
	for i := range d.Debts {
		debt := &d.Debts[i]
		switch {
		case strings.Contains(debt.Type, "Student"):
			obs = append(obs, fmt.Sprintf("%s at %s, %s remaining — weigh payoff acceleration against investing the difference",
				debt.Type, portfolio.Rate(debt.InterestRate), portfolio.Thousands(debt.CurrentBalance)))
		case strings.Contains(debt.Type, "Auto"):
			obs = append(obs, fmt.Sprintf("%s at %s, %s remaining — moderate rate, on track",
				debt.Type, portfolio.Rate(debt.InterestRate), portfolio.Thousands(debt.CurrentBalance)))
		}
	}
	obs = append(obs, fmt.Sprintf("Total debt service ~%s/mo (%s/yr) — DTI ~%d%%",
		portfolio.Dollars(d.TotalMonthly), portfolio.Dollars(d.TotalMonthly*12), dtiPercent(s, d)))

	return dossierText(
		"payoff strategies, avalanche vs snowball, refinancing, debt-to-income, debt vs invest allocation",
		obs,
		"Always show the math: total interest saved, months shaved off, opportunity cost of alternatives. Use side-by-side comparisons.")
}

func rebalancingDossier(c *portfolio.Client, s *portfolio.Summary, d *portfolio.DebtSummary) string {
	var obs []string

	// Same ticker held in more than one account signals an asset location review.
	tickerAccounts := make(map[string][]string)
	for _, acct := range s.Accounts {
		for _, h := range acct.Computed {
			tickerAccounts[h.Ticker] = append(tickerAccounts[h.Ticker], acct.Name)
		}
	}
	for _, acct := range s.Accounts {
		for _, h := range acct.Computed {
			if names := tickerAccounts[h.Ticker]; len(names) > 1 && names[0] == acct.Name {
				obs = append(obs, fmt.Sprintf("%s held in %s — asset location optimization opportunity (bonds better in tax-deferred)",
					h.Ticker, strings.Join(names, " and ")))
			}
		}
	}

	usEquityPct := int(math.Round(s.AssetAllocation["US Equity"] * 100))
	obs = append(obs, fmt.Sprintf("Portfolio ~%d%%+ US equity — review international diversification", usEquityPct))

	return dossierText(
		"portfolio drift, tax-efficient trades, asset allocation targets, lot-level analysis, diversification",
		obs,
		"When suggesting trades, specify account, lot(s), gain/loss, and tax consequence. Prefer rebalancing in tax-deferred first.")
}

func insuranceDossier(c *portfolio.Client, s *portfolio.Summary, d *portfolio.DebtSummary) string {
	li := c.Estate.LifeInsurance
	income := s.Owner.AnnualIncome
	var obs []string

	mortgageBalance := 0.0
	if m := findDebt(d, "mortgage"); m != nil {
		mortgageBalance = m.CurrentBalance
	}
	obs = append(obs, fmt.Sprintf("%s life insurance against %s mortgage + income replacement needs. Rule of thumb: 10-15x income (%s-%s).",
		portfolio.Millions(li.CoverageAmount), portfolio.Thousands(mortgageBalance),
		portfolio.Millions(income*10), portfolio.Millions(income*15)))
	obs = append(obs, "Review beneficiary designations for consistency between primary and contingent")

	if termYears := parseTermYears(li.Term); termYears > 0 {
		expiryYear := parseStartYear(li.StartDate) + termYears
		ageAtExpiry := s.Owner.Age + (expiryYear - c.W2.Year)
		obs = append(obs, fmt.Sprintf("Term life expires %d (client ~%d) — evaluate renewal/conversion before then", expiryYear, ageAtExpiry))
	}
	if income > 0 && li.CoverageAmount > mortgageBalance {
		years := (li.CoverageAmount - mortgageBalance) / income
		obs = append(obs, fmt.Sprintf("Coverage gap: %s provides ~%d-%d years income replacement after mortgage payoff",
			portfolio.Millions(li.CoverageAmount), int(math.Floor(years)), int(math.Ceil(years))))
	}

	return dossierText(
		"life insurance coverage, beneficiary review, estate planning, umbrella insurance, disability",
		obs,
		"Calculate coverage needs via income replacement method. Flag beneficiary inconsistencies. Review documents for life changes.")
}

func cashflowDossier(c *portfolio.Client, s *portfolio.Summary, d *portfolio.DebtSummary) string {
	withheld := c.W2.TotalWithheld()
	monthlyTakeHome := math.Round((s.Owner.AnnualIncome - withheld) / 12)
	monthlyAfterDebt := monthlyTakeHome - d.TotalMonthly

	obs := []string{
		fmt.Sprintf("Gross income %s, total withholding ~%s, monthly take-home calculation",
			portfolio.Thousands(s.Owner.AnnualIncome), portfolio.Thousands(withheld)),
		fmt.Sprintf("Monthly debt service ~%s, leaving ~%s/mo for living + discretionary + savings",
			portfolio.Dollars(d.TotalMonthly), portfolio.Dollars(monthlyAfterDebt)),
		fmt.Sprintf("DTI ratio ~%d%%", dtiPercent(s, d)),
		"Already maxing tax-advantaged accounts — question is where the next dollar goes",
	}
	return dossierText(
		"monthly income/expenses, savings rate, emergency fund, lifestyle impact modeling",
		obs,
		"Build monthly cash flow waterfall: gross → taxes → debt → fixed → discretionary. Show before/after for proposed changes.")
}

func goalsDossier(c *portfolio.Client, s *portfolio.Summary, d *portfolio.DebtSummary) string {
	var obs []string
	if edu := findAccount(s, "529"); edu != nil {
		if childAge, ok := parseChildAge(edu.Beneficiary); ok {
			obs = append(obs, fmt.Sprintf("529 has ~%s for child age %d — ~%d years to college, may be light for private university costs",
				portfolio.Thousands(edu.TotalValue), childAge, 18-childAge))
		} else {
			obs = append(obs, fmt.Sprintf("529 has ~%s — review funding pace against college timeline", portfolio.Thousands(edu.TotalValue)))
		}
	}
	obs = append(obs, "Multiple competing priorities: retirement, education, debt payoff, charitable giving")

	return dossierText(
		"goal progress tracking, milestone planning, priority ranking, cross-goal resource allocation",
		obs,
		"For each goal, assess progress %, pace (on track/behind/ahead), key milestones, and single most impactful next action.")
}

// parseChildAge extracts N from a beneficiary string like "Child (age 8)".
func parseChildAge(beneficiary string) (int, bool) {
	const marker = "age "
	i := strings.Index(beneficiary, marker)
	if i < 0 {
		return 0, false
	}
	rest := beneficiary[i+len(marker):]
	end := 0
	for end < len(rest) && rest[end] >= '0' && rest[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	age, err := strconv.Atoi(rest[:end])
	if err != nil {
		return 0, false
	}
	return age, true
}
