package analyzer

import (
	"strings"

	"github.com/postlens/postlens/internal/models"
)

// calculateEngagementScore is an additive point system over length,
// punctuation, sentiment and topic-richness signals, clamped to [0,100].
func (a *Analyzer) calculateEngagementScore(text string, rawNewlines int, sentiment models.SentimentVerdict, topics []string) int {
	score := 50

	if sentiment.Label == models.SentimentPositive {
		score += 10
	}

	wordCount := len(strings.Fields(text))
	switch {
	case wordCount >= 100 && wordCount <= 250:
		score += 15
	case wordCount >= 50 && wordCount < 100:
		score += 8
	}

	if strings.Contains(text, "?") {
		score += 10
	}

	if len(topics) >= 2 {
		score += 5
	}

	if rawNewlines >= 2 {
		score += 5
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}
