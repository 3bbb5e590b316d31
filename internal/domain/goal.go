package domain

// Goal categories as emitted in the goal-tracking block.
const (
	GoalCategoryRetirement = "retirement"
	GoalCategoryTax        = "tax"
	GoalCategoryEducation  = "education"
	GoalCategoryInvestment = "investment"
	GoalCategoryCharitable = "charitable"
	GoalCategoryBudget     = "budget"
	GoalCategoryInsurance  = "insurance"
	GoalCategoryEstate     = "estate"
	GoalCategoryOther      = "other"
)

// Goal statuses, in rough lifecycle order.
const (
	GoalStatusIdentified = "identified"
	GoalStatusExploring  = "exploring"
	GoalStatusActionPlan = "action-plan"
	GoalStatusAddressed  = "addressed"
)

// Goal is one tracked client objective, extracted from the hidden
// goal-tracking block at the end of an assistant turn. IDs are assigned by
// the model and stable across turns.
type Goal struct {
	ID       string `json:"id"`
	Goal     string `json:"goal"`
	Detail   string `json:"detail"`
	Category string `json:"category"`
	Priority string `json:"priority"`
	Status   string `json:"status"`
}

// GoalDiff classifies a new goal snapshot against the previous one. It is
// purely observational (drives UI animation); the new snapshot replaces the
// old unconditionally regardless of the diff.
type GoalDiff struct {
	Added   map[string]bool
	Updated map[string]bool
}

// DiffGoals computes which ids in next are new, and which existed before but
// changed status.
func DiffGoals(prev, next []Goal) GoalDiff {
	prevByID := make(map[string]Goal, len(prev))
	for _, g := range prev {
		prevByID[g.ID] = g
	}

	d := GoalDiff{
		Added:   make(map[string]bool),
		Updated: make(map[string]bool),
	}
	for _, g := range next {
		p, ok := prevByID[g.ID]
		switch {
		case !ok:
			d.Added[g.ID] = true
		case p.Status != g.Status:
			d.Updated[g.ID] = true
		}
	}
	return d
}

// FormatGoalStatus renders a status value for display: "action-plan" →
// "Action Plan".
func FormatGoalStatus(status string) string {
	out := make([]byte, 0, len(status))
	upper := true
	for i := 0; i < len(status); i++ {
		c := status[i]
		if c == '-' {
			out = append(out, ' ')
			upper = true
			continue
		}
		if upper && c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		upper = false
		out = append(out, c)
	}
	return string(out)
}
