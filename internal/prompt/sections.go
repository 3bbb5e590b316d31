package prompt

import "strings"

// Section is one block of system-instruction text. A Section with an empty
// Heading renders its body bare; otherwise the heading is framed with the
// "=== HEADING ===" delimiter the assistant is told to expect.
type Section struct {
	Heading string
	Body    string
}

// Render joins sections into the final instruction string. Sections are
// separated by a blank line; body text is used as-is.
func Render(sections []Section) string {
	var b strings.Builder
	for i, s := range sections {
		if i > 0 {
			b.WriteString("\n\n")
		}
		if s.Heading != "" {
			b.WriteString("=== " + s.Heading + " ===\n")
		}
		b.WriteString(strings.TrimRight(s.Body, "\n"))
	}
	return b.String()
}
