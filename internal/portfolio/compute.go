package portfolio

import (
	"fmt"

	"advisor-ai/internal/domain"
)

// ComputedHolding is a holding with derived market figures.
type ComputedHolding struct {
	Holding
	CurrentValue    float64
	CostBasisTotal  float64
	GainLoss        float64
	GainLossPercent float64
}

// ComputedAccount is an account with per-holding and rolled-up figures.
type ComputedAccount struct {
	Account
	Computed        []ComputedHolding
	TotalValue      float64
	TotalCostBasis  float64
	TotalGainLoss   float64
	GainLossPercent float64
}

// Summary is the portfolio aggregate for the active client.
type Summary struct {
	Owner           Owner
	Accounts        []ComputedAccount
	TotalValue      float64
	TotalCostBasis  float64
	TotalGainLoss   float64
	GainLossPercent float64
	AssetAllocation map[string]float64 // asset class -> fraction of total value
}

// DebtSummary is the debt aggregate for the active client.
type DebtSummary struct {
	Debts        []Debt
	TotalBalance float64
	TotalMonthly float64
	HomeEquity   float64
}

// Book owns the client datasets, the active-client pointer, and the memoized
// aggregates. The memo is invalidated wholesale on client switch, never
// patched.
type Book struct {
	clients []Client
	active  int

	summaryMemo *Summary
	debtMemo    *DebtSummary
}

// NewBook creates a Book over the given datasets with the first client
// active.
func NewBook(clients []Client) *Book {
	return &Book{clients: clients}
}

// Clients returns all datasets in sidebar order.
func (b *Book) Clients() []Client { return b.clients }

// Active returns the active client dataset.
func (b *Book) Active() *Client { return &b.clients[b.active] }

// SetActiveClient swaps the active dataset pointer and invalidates the
// memoized aggregates.
func (b *Book) SetActiveClient(clientID string) error {
	for i := range b.clients {
		if b.clients[i].ClientID == clientID {
			b.active = i
			b.Invalidate()
			return nil
		}
	}
	return domain.NewDomainError("Book.SetActiveClient", domain.ErrClientNotFound, fmt.Sprintf("id %q", clientID))
}

// Invalidate drops the memoized aggregates. The next Summary/DebtSummary
// call recomputes from the active dataset.
func (b *Book) Invalidate() {
	b.summaryMemo = nil
	b.debtMemo = nil
}

func computeHolding(h Holding) ComputedHolding {
	c := ComputedHolding{Holding: h}
	c.CurrentValue = h.Shares * h.CurrentPrice
	c.CostBasisTotal = h.Shares * h.CostBasis
	c.GainLoss = c.CurrentValue - c.CostBasisTotal
	if c.CostBasisTotal > 0 {
		c.GainLossPercent = c.GainLoss / c.CostBasisTotal
	}
	return c
}

func computeAccount(a Account) ComputedAccount {
	c := ComputedAccount{Account: a}
	for _, h := range a.Holdings {
		ch := computeHolding(h)
		c.Computed = append(c.Computed, ch)
		c.TotalValue += ch.CurrentValue
		c.TotalCostBasis += ch.CostBasisTotal
	}
	c.TotalGainLoss = c.TotalValue - c.TotalCostBasis
	if c.TotalCostBasis > 0 {
		c.GainLossPercent = c.TotalGainLoss / c.TotalCostBasis
	}
	return c
}

// Summary returns the memoized portfolio aggregate for the active client.
func (b *Book) Summary() *Summary {
	if b.summaryMemo != nil {
		return b.summaryMemo
	}

	client := b.Active()
	s := &Summary{
		Owner:           client.Owner,
		AssetAllocation: make(map[string]float64),
	}
	for _, a := range client.Accounts {
		ca := computeAccount(a)
		s.Accounts = append(s.Accounts, ca)
		s.TotalValue += ca.TotalValue
		s.TotalCostBasis += ca.TotalCostBasis
	}
	s.TotalGainLoss = s.TotalValue - s.TotalCostBasis
	if s.TotalCostBasis > 0 {
		s.GainLossPercent = s.TotalGainLoss / s.TotalCostBasis
	}

	for _, ca := range s.Accounts {
		for _, ch := range ca.Computed {
			s.AssetAllocation[ch.AssetClass] += ch.CurrentValue
		}
	}
	if s.TotalValue > 0 {
		for class, value := range s.AssetAllocation {
			s.AssetAllocation[class] = value / s.TotalValue
		}
	}

	b.summaryMemo = s
	return s
}

// DebtSummary returns the memoized debt aggregate for the active client.
func (b *Book) DebtSummary() *DebtSummary {
	if b.debtMemo != nil {
		return b.debtMemo
	}

	client := b.Active()
	d := &DebtSummary{Debts: client.Debts}
	for _, debt := range client.Debts {
		d.TotalBalance += debt.CurrentBalance
		d.TotalMonthly += debt.MonthlyPayment
		if debt.ID == "mortgage" && debt.PropertyValue > 0 {
			d.HomeEquity = debt.PropertyValue - debt.CurrentBalance
		}
	}

	b.debtMemo = d
	return d
}
