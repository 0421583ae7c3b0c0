package analyzer

import (
	"context"
	"testing"

	"github.com/postlens/postlens/internal/models"
)

func TestLexiconSentiment(t *testing.T) {
	a := New(Config{})

	tests := []struct {
		name      string
		text      string
		wantLabel string
		wantScore float64
	}{
		{
			name:      "strongly positive",
			text:      "love this amazing product",
			wantLabel: models.SentimentPositive,
			wantScore: 0.95,
		},
		{
			name:      "strongly negative",
			text:      "hate this terrible awful thing",
			wantLabel: models.SentimentNegative,
			wantScore: 0.95,
		},
		{
			name:      "no sentiment words",
			text:      "the sky contains clouds",
			wantLabel: models.SentimentNeutral,
			wantScore: 0.5,
		},
		{
			name: "negation phrase tips the balance",
			// "good" scores +2, "isn't good" adds +2 negative, ratio 0.5.
			text:      "this isn't good at all",
			wantLabel: models.SentimentNeutral,
			wantScore: 1.0,
		},
		{
			name: "emphasis phrase boosts positive",
			// "happy" +2 plus "very happy" +2, no negatives.
			text:      "we are very happy today",
			wantLabel: models.SentimentPositive,
			wantScore: 0.95,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.lexiconSentiment(tt.text)
			if got.Label != tt.wantLabel {
				t.Errorf("label = %q, want %q", got.Label, tt.wantLabel)
			}
			if got.Score != tt.wantScore {
				t.Errorf("score = %v, want %v", got.Score, tt.wantScore)
			}
			if got.Source != models.SourceRuleBased {
				t.Errorf("source = %q, want rule_based", got.Source)
			}
		})
	}
}

func TestTallyVerdict(t *testing.T) {
	a := New(Config{})

	tests := []struct {
		name      string
		positive  int
		negative  int
		wantLabel string
		wantScore float64
	}{
		{"zero tallies", 0, 0, models.SentimentNeutral, 0.5},
		{"all positive capped", 10, 0, models.SentimentPositive, 0.95},
		{"all negative capped", 0, 10, models.SentimentNegative, 0.95},
		{"positive just above threshold", 7, 3, models.SentimentPositive, 0.7},
		{"negative just below threshold", 3, 7, models.SentimentNegative, 0.7},
		{"perfectly balanced", 5, 5, models.SentimentNeutral, 1.0},
		{"slightly positive stays neutral", 6, 4, models.SentimentNeutral, 0.8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.tallyVerdict(tt.positive, tt.negative)
			if got.Label != tt.wantLabel {
				t.Errorf("label = %q, want %q", got.Label, tt.wantLabel)
			}
			if got.Score != tt.wantScore {
				t.Errorf("score = %v, want %v", got.Score, tt.wantScore)
			}
		})
	}
}

func TestTryRemoteSentimentTruncatesSnippet(t *testing.T) {
	var sent string
	stub := classifierFunc(func(text string) ([]models.LabelScore, error) {
		sent = text
		return []models.LabelScore{{Label: "positive", Score: 0.9}}, nil
	})
	a := New(Config{Classifier: stub, SnippetLimit: 5})

	verdict, ok := a.tryRemoteSentiment(context.Background(), "abcdefghij")
	if !ok {
		t.Fatal("expected accepted verdict")
	}
	if sent != "abcde" {
		t.Errorf("snippet = %q, want %q", sent, "abcde")
	}
	if verdict.Label != models.SentimentPositive {
		t.Errorf("label = %q, want POSITIVE", verdict.Label)
	}
}

type classifierFunc func(text string) ([]models.LabelScore, error)

func (f classifierFunc) ClassifySentiment(_ context.Context, text string) ([]models.LabelScore, error) {
	return f(text)
}

func TestRound3(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0.12345, 0.123},
		{0.9995, 1.0},
		{0.7, 0.7},
	}
	for _, tt := range tests {
		if got := round3(tt.in); got != tt.want {
			t.Errorf("round3(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
