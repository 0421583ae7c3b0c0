package analyzer

import (
	"reflect"
	"strings"
	"testing"

	"github.com/postlens/postlens/internal/models"
)

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"One. Two! Three?", []string{"One", "Two", "Three"}},
		{"Trailing dots...", []string{"Trailing dots"}},
		{"no terminator", []string{"no terminator"}},
		{"", nil},
		{"!!!", nil},
	}

	for _, tt := range tests {
		got := splitSentences(tt.in)
		if len(got) == 0 && len(tt.want) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("splitSentences(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCalculateMetrics(t *testing.T) {
	tests := []struct {
		name string
		text string
		want models.TextMetrics
	}{
		{
			name: "short sentences read easily",
			text: "One two three. Four five six.",
			want: models.TextMetrics{WordCount: 6, SentenceCount: 2, Readability: 85, ReadingTime: 1},
		},
		{
			name: "empty text",
			text: "",
			want: models.TextMetrics{WordCount: 0, SentenceCount: 0, Readability: 50, ReadingTime: 1},
		},
		{
			name: "no terminators count as one sentence",
			text: strings.TrimSpace(strings.Repeat("word ", 17)),
			want: models.TextMetrics{WordCount: 17, SentenceCount: 1, Readability: 70, ReadingTime: 1},
		},
		{
			name: "run-on sentence scores lowest",
			text: strings.TrimSpace(strings.Repeat("word ", 30)) + ".",
			want: models.TextMetrics{WordCount: 30, SentenceCount: 1, Readability: 45, ReadingTime: 1},
		},
		{
			name: "long document reading time",
			text: strings.TrimSpace(strings.Repeat("word word word word word. ", 100)),
			want: models.TextMetrics{WordCount: 500, SentenceCount: 100, Readability: 85, ReadingTime: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calculateMetrics(tt.text)
			if got != tt.want {
				t.Errorf("calculateMetrics() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCalculateEngagementScore(t *testing.T) {
	a := New(Config{})
	positive := models.SentimentVerdict{Label: models.SentimentPositive}
	neutral := models.SentimentVerdict{Label: models.SentimentNeutral}

	words := func(n int) string {
		return strings.TrimSpace(strings.Repeat("word ", n))
	}

	tests := []struct {
		name        string
		text        string
		rawNewlines int
		sentiment   models.SentimentVerdict
		topics      []string
		want        int
	}{
		{"baseline", words(10), 0, neutral, nil, 50},
		{"positive sentiment", words(10), 0, positive, nil, 60},
		{"ideal length", words(150), 0, neutral, nil, 65},
		{"medium length", words(60), 0, neutral, nil, 58},
		{"question mark", words(10) + "?", 0, neutral, nil, 60},
		{"rich topics", words(10), 0, neutral, []string{"A", "B"}, 55},
		{"paragraph breaks", words(10), 2, neutral, nil, 55},
		{
			"everything combined",
			words(150) + "?", 3, positive, []string{"A", "B"},
			95,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.calculateEngagementScore(tt.text, tt.rawNewlines, tt.sentiment, tt.topics)
			if got != tt.want {
				t.Errorf("score = %d, want %d", got, tt.want)
			}
		})
	}
}
