// Package extract parses the hidden control syntax embedded in assistant
// text: trailing goal-tracking blocks and inline specialist markers. Both
// are stripped from anything shown to the user.
package extract

import (
	"encoding/json"
	"regexp"
	"strings"

	"advisor-ai/internal/domain"
)

var (
	goalBlockRe    = regexp.MustCompile(`(?s)<!--GOALS_JSON\s*(.*?)\s*GOALS_JSON-->`)
	trailingGoalRe = regexp.MustCompile(`(?s)<!--GOALS_JSON.*$`)
)

// Goals extracts the goal block from a completed turn. The returned goal set
// fully replaces prev when the block parses; a malformed block strips silently
// and leaves prev in force. The diff classifies changes relative to prev:
// added means a previously unseen id, updated means the status changed.
func Goals(text string, prev []domain.Goal) (visible string, goals []domain.Goal, diff domain.GoalDiff) {
	m := goalBlockRe.FindStringSubmatchIndex(text)
	if m == nil {
		return text, prev, domain.GoalDiff{}
	}

	stripped := strings.TrimSpace(text[:m[0]] + text[m[1]:])

	var parsed []domain.Goal
	if err := json.Unmarshal([]byte(text[m[2]:m[3]]), &parsed); err != nil {
		return stripped, prev, domain.GoalDiff{}
	}

	return stripped, parsed, domain.DiffGoals(prev, parsed)
}

// StripTrailingGoalBlock removes a complete or partially streamed goal block
// from the end of in-flight text. Used for live rendering only; final
// extraction goes through Goals.
func StripTrailingGoalBlock(text string) string {
	return strings.TrimSpace(trailingGoalRe.ReplaceAllString(text, ""))
}
