package theme

import (
	"os"
	"strings"
)

// SymbolSet holds all UI symbols, allowing runtime switching between
// Unicode and ASCII fallback sets.
type SymbolSet struct {
	Success  string
	Error    string
	Info     string
	Spinner  string
	Bullet   string
	Ellipsis string
	ThumbUp  string
	ThumbDn  string
	User     string
	Advisor  string

	GoalIdentified string
	GoalExploring  string
	GoalActionPlan string
	GoalAddressed  string
}

var unicodeSymbols = SymbolSet{
	Success:  "✓",
	Error:    "✗",
	Info:     "●",
	Spinner:  "⏳",
	Bullet:   "•",
	Ellipsis: "…",
	ThumbUp:  "\U0001F44D",
	ThumbDn:  "\U0001F44E",
	User:     "You",
	Advisor:  "Morgan",

	GoalIdentified: "○",
	GoalExploring:  "◔",
	GoalActionPlan: "◑",
	GoalAddressed:  "●",
}

var asciiSymbols = SymbolSet{
	Success:  "[OK]",
	Error:    "[ERR]",
	Info:     "[i]",
	Spinner:  "[...]",
	Bullet:   "*",
	Ellipsis: "...",
	ThumbUp:  "[+1]",
	ThumbDn:  "[-1]",
	User:     "You",
	Advisor:  "Morgan",

	GoalIdentified: "( )",
	GoalExploring:  "(.)",
	GoalActionPlan: "(/)",
	GoalAddressed:  "(x)",
}

// DetectUnicodeSupport checks whether the terminal likely supports Unicode.
// Priority: ADVISOR_ASCII_SYMBOLS env (explicit override) > locale detection.
func DetectUnicodeSupport() bool {
	if v := os.Getenv("ADVISOR_ASCII_SYMBOLS"); v == "1" || strings.EqualFold(v, "true") {
		return false
	}

	for _, key := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		val := strings.ToLower(os.Getenv(key))
		if strings.Contains(val, "utf-8") || strings.Contains(val, "utf8") {
			return true
		}
	}

	// Most modern terminals support Unicode; default to true.
	return true
}

// InitSymbols sets the package-level Symbol* variables based on terminal
// capabilities. Called automatically by init(), but can be called again
// if the environment changes (e.g., in tests).
func InitSymbols() {
	set := unicodeSymbols
	if !DetectUnicodeSupport() {
		set = asciiSymbols
	}

	SymbolSuccess = set.Success
	SymbolError = set.Error
	SymbolInfo = set.Info
	SymbolSpinner = set.Spinner
	SymbolBullet = set.Bullet
	SymbolEllipsis = set.Ellipsis
	SymbolThumbUp = set.ThumbUp
	SymbolThumbDn = set.ThumbDn
	SymbolUser = set.User
	SymbolAdvisor = set.Advisor

	SymbolGoalIdentified = set.GoalIdentified
	SymbolGoalExploring = set.GoalExploring
	SymbolGoalActionPlan = set.GoalActionPlan
	SymbolGoalAddressed = set.GoalAddressed
}

func init() {
	InitSymbols()
}
