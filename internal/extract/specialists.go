package extract

import (
	"regexp"

	"advisor-ai/internal/domain"
)

var (
	specialistIDRe      = regexp.MustCompile(`<!--SPECIALIST:(\w+)-->`)
	specialistStripRe   = regexp.MustCompile(`<!--SPECIALIST:\w+-->`)
	specialistPartialRe = regexp.MustCompile(`<!--SPECIALIST[^>]*$`)

	attributionRes = buildAttributionRes()
)

func buildAttributionRes() map[domain.SpecialistID]*regexp.Regexp {
	res := make(map[domain.SpecialistID]*regexp.Regexp, len(domain.Specialists))
	for id, sp := range domain.Specialists {
		res[id] = regexp.MustCompile(
			`\*\*` + regexp.QuoteMeta(sp.Name) + `,\s*` + regexp.QuoteMeta(sp.Title) + `:\*\*`)
	}
	return res
}

// SpecialistIDs returns the set of known specialist ids marked anywhere in
// text. Ids outside the closed registry set are ignored. Safe to call on
// progressively longer prefixes of a stream; complete markers always yield
// the same ids.
func SpecialistIDs(text string) map[domain.SpecialistID]bool {
	ids := make(map[domain.SpecialistID]bool)
	for _, m := range specialistIDRe.FindAllStringSubmatch(text, -1) {
		id := domain.SpecialistID(m[1])
		if domain.KnownSpecialist(id) {
			ids[id] = true
		}
	}
	return ids
}

// StripSpecialistMarkers removes every complete specialist marker, known or
// not.
func StripSpecialistMarkers(text string) string {
	return specialistStripRe.ReplaceAllString(text, "")
}

// StripPartialSpecialistMarker removes a dangling marker prefix at the end of
// in-flight text so a half-streamed marker never flashes on screen.
func StripPartialSpecialistMarker(text string) string {
	return specialistPartialRe.ReplaceAllString(text, "")
}

// StreamingDisplay cleans accumulated in-flight text for live rendering:
// trailing goal block gone, complete markers gone, dangling marker tail gone.
func StreamingDisplay(accumulated string) string {
	text := StripTrailingGoalBlock(accumulated)
	text = StripSpecialistMarkers(text)
	return StripPartialSpecialistMarker(text)
}

// ReplaceAttributions rewrites each visible attribution pattern
// "**Name, Title:**" with the rendering produced by repl. Text without
// attributions passes through unchanged.
func ReplaceAttributions(text string, repl func(domain.Specialist) string) string {
	for _, id := range domain.SpecialistOrder {
		re := attributionRes[id]
		if !re.MatchString(text) {
			continue
		}
		text = re.ReplaceAllString(text, repl(domain.Specialists[id]))
	}
	return text
}
