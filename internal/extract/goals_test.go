package extract

import (
	"strings"
	"testing"

	"advisor-ai/internal/domain"
)

const goalBlock = `<!--GOALS_JSON
[
  {"id": "retire-early", "goal": "Retire by 55", "detail": "Wants to stop working at 55", "category": "retirement", "priority": "high", "status": "identified"},
  {"id": "tax-opt", "goal": "Reduce tax drag", "detail": "Optimize asset location", "category": "tax", "priority": "medium", "status": "exploring"}
]
GOALS_JSON-->`

func TestGoalsExtraction(t *testing.T) {
	text := "Here is my advice.\n\n" + goalBlock
	visible, goals, diff := Goals(text, nil)

	if visible != "Here is my advice." {
		t.Errorf("visible = %q", visible)
	}
	if len(goals) != 2 {
		t.Fatalf("goals = %d, want 2", len(goals))
	}
	if goals[0].ID != "retire-early" || goals[0].Status != domain.GoalStatusIdentified {
		t.Errorf("first goal = %+v", goals[0])
	}
	if !diff.Added["retire-early"] || !diff.Added["tax-opt"] {
		t.Errorf("diff.Added = %v", diff.Added)
	}
}

func TestGoalsRoundTripLeavesNoDelimiters(t *testing.T) {
	text := "Advice text.\n\n" + goalBlock
	visible, _, _ := Goals(text, nil)

	if strings.Contains(visible, "<!--GOALS_JSON") || strings.Contains(visible, "GOALS_JSON-->") {
		t.Errorf("delimiters leaked into visible text: %q", visible)
	}
}

func TestGoalsNoBlock(t *testing.T) {
	prev := []domain.Goal{{ID: "a", Status: domain.GoalStatusIdentified}}
	visible, goals, diff := Goals("plain answer", prev)

	if visible != "plain answer" {
		t.Errorf("visible = %q", visible)
	}
	if len(goals) != 1 || goals[0].ID != "a" {
		t.Errorf("goals should be unchanged, got %+v", goals)
	}
	if len(diff.Added) != 0 || len(diff.Updated) != 0 {
		t.Errorf("diff should be empty, got %+v", diff)
	}
}

func TestGoalsMalformedJSON(t *testing.T) {
	prev := []domain.Goal{{ID: "keep-me", Status: domain.GoalStatusExploring}}
	text := "Answer.\n<!--GOALS_JSON\n{not json}\nGOALS_JSON-->"

	visible, goals, diff := Goals(text, prev)

	if visible != "Answer." {
		t.Errorf("visible = %q", visible)
	}
	if len(goals) != 1 || goals[0].ID != "keep-me" {
		t.Errorf("malformed block must leave previous goals in force, got %+v", goals)
	}
	if len(diff.Added) != 0 || len(diff.Updated) != 0 {
		t.Errorf("diff should be empty for malformed block, got %+v", diff)
	}
}

func TestGoalsFullReplaceSemantics(t *testing.T) {
	prev := []domain.Goal{
		{ID: "old-goal", Status: domain.GoalStatusActionPlan},
		{ID: "retire-early", Status: domain.GoalStatusIdentified},
	}
	text := "Next step.\n" + strings.Replace(goalBlock, `"status": "identified"`, `"status": "exploring"`, 1)

	_, goals, diff := Goals(text, prev)

	// The new set replaces wholesale; "old-goal" is gone without a trace.
	if len(goals) != 2 {
		t.Fatalf("goals = %d, want 2", len(goals))
	}
	for _, g := range goals {
		if g.ID == "old-goal" {
			t.Error("dropped goal should not survive a full replace")
		}
	}
	if !diff.Updated["retire-early"] {
		t.Errorf("status change should classify as updated, diff = %+v", diff)
	}
	if !diff.Added["tax-opt"] {
		t.Errorf("new id should classify as added, diff = %+v", diff)
	}
	if diff.Added["retire-early"] || diff.Updated["tax-opt"] {
		t.Errorf("misclassified diff = %+v", diff)
	}
}

func TestStripTrailingGoalBlock(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"complete block", "text\n" + goalBlock, "text"},
		{"partial block", "text\n<!--GOALS_JSON\n[{\"id\":", "text"},
		{"bare opener", "text <!--GOALS_JSON", "text"},
		{"no block", "just text", "just text"},
	}
	for _, c := range cases {
		if got := StripTrailingGoalBlock(c.in); got != c.want {
			t.Errorf("%s: got %q, want %q", c.name, got, c.want)
		}
	}
}
