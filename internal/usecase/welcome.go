package usecase

// Welcome is the advisor's opening summary for the active client, shown
// before the first message and after a reset.
type Welcome struct {
	AdvisorName    string
	TeamSize       int
	PortfolioValue float64
	AccountCount   int
	Wages          float64
	TakeHome       float64
	DebtTotal      float64
	DebtMonthly    float64
	LifeCoverage   float64
}

// WelcomeSummary computes the opening figures from the active client's
// aggregates.
func (c *Controller) WelcomeSummary() Welcome {
	s := c.book.Summary()
	d := c.book.DebtSummary()
	client := c.book.Active()

	return Welcome{
		AdvisorName:    "Morgan Chen",
		TeamSize:       7,
		PortfolioValue: s.TotalValue,
		AccountCount:   len(s.Accounts),
		Wages:          client.W2.WagesBox1,
		TakeHome:       client.W2.WagesBox1 - client.W2.TotalWithheld(),
		DebtTotal:      d.TotalBalance,
		DebtMonthly:    d.TotalMonthly,
		LifeCoverage:   client.Estate.LifeInsurance.CoverageAmount,
	}
}

// SuggestedPrompts returns conversation starters for the welcome screen.
func (c *Controller) SuggestedPrompts() []string {
	return []string{
		"Give me a holistic financial health check",
		"Should I pay off debt faster or invest more?",
		"Is my life insurance coverage adequate?",
		"What tax-loss harvesting opportunities do I have?",
		"How should I use my DAF with the appreciated NVDA?",
		"Review my monthly cash flow and savings rate",
	}
}
