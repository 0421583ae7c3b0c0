package analyzer

import (
	"math"
	"regexp"
	"strings"

	"github.com/postlens/postlens/internal/models"
)

var sentenceSplitRe = regexp.MustCompile(`[.!?]+`)

// splitSentences returns the non-empty trimmed segments of text after
// splitting on runs of sentence terminators.
func splitSentences(text string) []string {
	parts := sentenceSplitRe.Split(text, -1)
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

// calculateMetrics derives word count, sentence count, readability tier and
// reading time from normalized text. Pure; no partial failure.
func calculateMetrics(text string) models.TextMetrics {
	wordCount := len(strings.Fields(text))
	sentenceCount := len(splitSentences(text))

	readability := 50
	if sentenceCount > 0 && wordCount > 0 {
		avg := float64(wordCount) / float64(sentenceCount)
		switch {
		case avg < 15:
			readability = 85
		case avg < 20:
			readability = 70
		case avg < 25:
			readability = 60
		default:
			readability = 45
		}
	}

	readingTime := int(math.Round(float64(wordCount) / 200))
	if readingTime < 1 {
		readingTime = 1
	}

	return models.TextMetrics{
		WordCount:     wordCount,
		SentenceCount: sentenceCount,
		Readability:   readability,
		ReadingTime:   readingTime,
	}
}
