package analyzer

import "strings"

// ContentTypeGeneral is returned when no category keyword matches.
const ContentTypeGeneral = "general"

// detectContentType scores each fixed category by keyword hits against the
// lower-cased text. The first maximum wins; zero hits mean general.
func (a *Analyzer) detectContentType(text string) string {
	textLower := strings.ToLower(text)

	best := ContentTypeGeneral
	bestScore := 0
	for _, cat := range a.lexicon.categories {
		score := len(cat.pattern.FindAllString(textLower, -1))
		if score > bestScore {
			best = cat.name
			bestScore = score
		}
	}
	return best
}
