package analyzer

import (
	"fmt"
	"strings"

	"github.com/postlens/postlens/internal/models"
)

const maxSuggestions = 5

// generateSuggestions runs the ordered rule checks and returns at most five
// tips. rawNewlines is counted on the pre-normalization text, since
// normalization collapses line breaks.
func (a *Analyzer) generateSuggestions(text string, rawNewlines int, sentiment models.SentimentVerdict, topics []string) []string {
	var suggestions []string
	wordCount := len(strings.Fields(text))

	if wordCount < 50 {
		suggestions = append(suggestions, "Your post is very short. Add more details, examples, or personal stories to provide value (ideal: 80-250 words).")
	} else if wordCount > 400 {
		suggestions = append(suggestions, "Your content is quite long. Consider breaking it into a thread for better readability and engagement.")
	}

	if !strings.Contains(text, "?") {
		suggestions = append(suggestions, "Add a question to encourage comments and discussions.")
	}

	if !a.containsCTA(text) {
		suggestions = append(suggestions, "Include a clear call-to-action to guide your audience.")
	}

	if rawNewlines < 2 && wordCount > 100 {
		suggestions = append(suggestions, "Break your content into smaller paragraphs for better readability.")
	}

	if len(topics) > 0 {
		tags := make([]string, 0, 3)
		for i, topic := range topics {
			if i == 3 {
				break
			}
			tags = append(tags, "#"+strings.ReplaceAll(topic, " ", ""))
		}
		suggestions = append(suggestions, fmt.Sprintf("Consider using relevant hashtags: %s", strings.Join(tags, ", ")))
	}

	if sentiment.Label == models.SentimentNegative {
		suggestions = append(suggestions, "Consider balancing negative content with positive solutions or insights.")
	}

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}

func (a *Analyzer) containsCTA(text string) bool {
	textLower := strings.ToLower(text)
	for _, word := range a.lexicon.ctaWords {
		if strings.Contains(textLower, word) {
			return true
		}
	}
	return false
}
