package domain

// SpecialistID identifies one of the fixed domain specialists. The set is
// closed; marker ids outside it are ignored for forward compatibility.
type SpecialistID string

const (
	SpecialistTax         SpecialistID = "tax"
	SpecialistRetirement  SpecialistID = "retirement"
	SpecialistDebt        SpecialistID = "debt"
	SpecialistRebalancing SpecialistID = "rebalancing"
	SpecialistInsurance   SpecialistID = "insurance"
	SpecialistCashflow    SpecialistID = "cashflow"
	SpecialistGoals       SpecialistID = "goals"
)

// Specialist is immutable registry data for one advisor.
type Specialist struct {
	ID       SpecialistID
	Name     string
	Title    string
	Initials string
	Color    string
	Icon     string
}

// Specialists is the advisor registry, keyed by id. Reference data only;
// never mutated at runtime.
var Specialists = map[SpecialistID]Specialist{
	SpecialistTax:         {ID: SpecialistTax, Name: "Alex Rivera", Title: "Tax Optimization", Initials: "AR", Color: "#ef4444", Icon: "🧾"},
	SpecialistRetirement:  {ID: SpecialistRetirement, Name: "Priya Patel", Title: "Retirement Projections", Initials: "PP", Color: "#8b5cf6", Icon: "📊"},
	SpecialistDebt:        {ID: SpecialistDebt, Name: "Marcus Thompson", Title: "Debt Strategy", Initials: "MT", Color: "#f59e0b", Icon: "💳"},
	SpecialistRebalancing: {ID: SpecialistRebalancing, Name: "Sarah Kim", Title: "Portfolio Rebalancing", Initials: "SK", Color: "#3b82f6", Icon: "⚖️"},
	SpecialistInsurance:   {ID: SpecialistInsurance, Name: "Diana Nakamura", Title: "Insurance & Estate", Initials: "DN", Color: "#14b8a6", Icon: "🛡️"},
	SpecialistCashflow:    {ID: SpecialistCashflow, Name: "James Park", Title: "Cash Flow & Budget", Initials: "JP", Color: "#22c55e", Icon: "💰"},
	SpecialistGoals:       {ID: SpecialistGoals, Name: "Elena Vasquez", Title: "Goal Tracking", Initials: "EV", Color: "#ec4899", Icon: "🎯"},
}

// SpecialistOrder is the display order for badge strips and prompt dossiers.
var SpecialistOrder = []SpecialistID{
	SpecialistTax,
	SpecialistRetirement,
	SpecialistDebt,
	SpecialistRebalancing,
	SpecialistInsurance,
	SpecialistCashflow,
	SpecialistGoals,
}

// KnownSpecialist reports whether id is in the closed specialist set.
func KnownSpecialist(id SpecialistID) bool {
	_, ok := Specialists[id]
	return ok
}
