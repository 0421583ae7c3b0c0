package analyzer

import (
	"strings"
	"testing"

	"github.com/postlens/postlens/internal/models"
)

func TestGenerateSuggestions(t *testing.T) {
	a := New(Config{})
	neutral := models.SentimentVerdict{Label: models.SentimentNeutral}
	negative := models.SentimentVerdict{Label: models.SentimentNegative}

	t.Run("short text without question or cta", func(t *testing.T) {
		got := a.generateSuggestions("brief words only", 0, neutral, nil)

		wantPrefixes := []string{
			"Your post is very short.",
			"Add a question",
			"Include a clear call-to-action",
		}
		if len(got) != len(wantPrefixes) {
			t.Fatalf("got %d suggestions, want %d: %v", len(got), len(wantPrefixes), got)
		}
		for i, prefix := range wantPrefixes {
			if !strings.HasPrefix(got[i], prefix) {
				t.Errorf("suggestion[%d] = %q, want prefix %q", i, got[i], prefix)
			}
		}
	})

	t.Run("long text without question suggests thread then question", func(t *testing.T) {
		long := strings.Repeat("word ", 450)
		got := a.generateSuggestions(long, 0, neutral, nil)

		if len(got) < 2 || !strings.HasPrefix(got[0], "Your content is quite long.") {
			t.Fatalf("got %v, want thread suggestion first", got)
		}
		if !strings.HasPrefix(got[1], "Add a question") {
			t.Errorf("suggestion[1] = %q, want question suggestion second", got[1])
		}
	})

	t.Run("question suppresses the question tip", func(t *testing.T) {
		got := a.generateSuggestions("brief words only?", 0, neutral, nil)
		for _, s := range got {
			if strings.HasPrefix(s, "Add a question") {
				t.Errorf("unexpected question suggestion in %v", got)
			}
		}
	})

	t.Run("few newlines on long prose suggests paragraphs", func(t *testing.T) {
		prose := strings.Repeat("steady calm word ", 40) + "share your view?"
		got := a.generateSuggestions(prose, 0, neutral, nil)

		if !containsPrefix(got, "Break your content into smaller paragraphs") {
			t.Errorf("got %v, want paragraph suggestion", got)
		}

		got = a.generateSuggestions(prose, 3, neutral, nil)
		if containsPrefix(got, "Break your content into smaller paragraphs") {
			t.Errorf("got %v, paragraph suggestion despite newlines", got)
		}
	})

	t.Run("topics become a hashtag tip", func(t *testing.T) {
		got := a.generateSuggestions("share this now?", 0, neutral, []string{"Alpha", "Beta", "Gamma", "Delta"})

		want := "Consider using relevant hashtags: #Alpha, #Beta, #Gamma"
		if !contains(got, want) {
			t.Errorf("got %v, want %q", got, want)
		}
	})

	t.Run("negative sentiment adds balance tip", func(t *testing.T) {
		got := a.generateSuggestions("share this now?", 0, negative, nil)

		if !containsPrefix(got, "Consider balancing negative content") {
			t.Errorf("got %v, want balance suggestion", got)
		}
	})

	t.Run("capped at five", func(t *testing.T) {
		// Short, no question, no CTA, negative, with topics: six rules fire.
		got := a.generateSuggestions("tiny text", 0, negative, []string{"Alpha"})
		if len(got) > maxSuggestions {
			t.Errorf("got %d suggestions, want at most %d: %v", len(got), maxSuggestions, got)
		}
	})
}

func containsPrefix(list []string, prefix string) bool {
	for _, s := range list {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}
