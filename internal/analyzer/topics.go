package analyzer

import (
	"regexp"
	"sort"
	"strings"
)

var topicTokenRe = regexp.MustCompile(`\b[a-zA-Z]{3,15}\b`)

// extractTopics returns up to five frequency-ranked terms: stop-word
// filtered unigrams plus adjacent bigrams. A term survives when it appears
// at least twice or is longer than six characters (single long words are
// usually meaningful nouns). Ties keep first-encountered order.
func (a *Analyzer) extractTopics(text string) []string {
	textLower := strings.ToLower(text)

	var meaningful []string
	for _, word := range topicTokenRe.FindAllString(textLower, -1) {
		if !a.lexicon.IsStopWord(word) {
			meaningful = append(meaningful, word)
		}
	}

	terms := make([]string, 0, len(meaningful)*2)
	terms = append(terms, meaningful...)
	for i := 0; i+1 < len(meaningful); i++ {
		terms = append(terms, meaningful[i]+" "+meaningful[i+1])
	}

	counts := make(map[string]int, len(terms))
	order := make([]string, 0, len(terms))
	for _, t := range terms {
		if counts[t] == 0 {
			order = append(order, t)
		}
		counts[t]++
	}

	// Stable sort keeps insertion order for equal counts.
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	var topics []string
	for i, term := range order {
		if i >= 10 || len(topics) == 5 {
			break
		}
		if counts[term] >= 2 || len(term) > 6 {
			topics = append(topics, titleCase(term))
		}
	}

	if len(topics) == 0 {
		return append([]string(nil), a.lexicon.defaultTopics...)
	}
	return topics
}

// titleCase capitalizes the first letter of each space-separated word.
func titleCase(term string) string {
	words := strings.Split(term, " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
