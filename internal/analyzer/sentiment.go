package analyzer

import (
	"context"
	"log/slog"
	"math"
	"strings"

	"github.com/postlens/postlens/internal/models"
)

// Classifier produces ranked label/score pairs for a text snippet. The
// hosted HuggingFace model, the OpenAI backend and the local ONNX pipeline
// all satisfy it.
type Classifier interface {
	ClassifySentiment(ctx context.Context, text string) ([]models.LabelScore, error)
}

// analyzeSentiment tries the remote classifier first and falls back to the
// weighted lexicon. It never fails: every remote error degrades locally.
func (a *Analyzer) analyzeSentiment(ctx context.Context, text string) models.SentimentVerdict {
	if a.classifier != nil {
		if verdict, ok := a.tryRemoteSentiment(ctx, text); ok {
			return verdict
		}
	}
	return a.lexiconSentiment(strings.ToLower(text))
}

// tryRemoteSentiment submits the first snippetLimit characters to the
// classifier. The verdict is accepted only when the top-ranked confidence
// clears the threshold; anything else falls through to the lexicon. A
// single attempt, bounded by remoteTimeout.
func (a *Analyzer) tryRemoteSentiment(ctx context.Context, text string) (models.SentimentVerdict, bool) {
	snippet := text
	if runes := []rune(snippet); len(runes) > a.snippetLimit {
		snippet = string(runes[:a.snippetLimit])
	}

	ctx, cancel := context.WithTimeout(ctx, a.remoteTimeout)
	defer cancel()

	scores, err := a.classifier.ClassifySentiment(ctx, snippet)
	if err != nil {
		a.logger.Warn("[SentimentEngine] Remote classifier failed, using lexicon fallback",
			slog.String("error", err.Error()))
		return models.SentimentVerdict{}, false
	}
	if len(scores) == 0 {
		a.logger.Warn("[SentimentEngine] Remote classifier returned no scores, using lexicon fallback")
		return models.SentimentVerdict{}, false
	}

	top := scores[0]
	for _, s := range scores[1:] {
		if s.Score > top.Score {
			top = s
		}
	}

	if top.Score <= a.acceptThreshold {
		a.logger.Info("[SentimentEngine] Remote confidence below threshold, using lexicon fallback",
			slog.Float64("score", top.Score),
			slog.Float64("threshold", a.acceptThreshold))
		return models.SentimentVerdict{}, false
	}

	return models.SentimentVerdict{
		Label:  strings.ToUpper(top.Label),
		Score:  round3(top.Score),
		Source: models.SourceAIModel,
	}, true
}

// lexiconSentiment is the deterministic fallback: weighted word tallies plus
// sentence-level negation and emphasis scans over lower-cased text.
func (a *Analyzer) lexiconSentiment(textLower string) models.SentimentVerdict {
	var positive, negative int

	for _, word := range strings.Fields(textLower) {
		positive += a.lexicon.positiveWeights[word]
		negative += a.lexicon.negativeWeights[word]
	}

	for _, sentence := range splitSentences(textLower) {
		for _, phrase := range a.lexicon.negationPhrases {
			if strings.Contains(sentence, phrase) {
				negative += 2
				break
			}
		}
		for _, phrase := range a.lexicon.emphasisPhrases {
			if strings.Contains(sentence, phrase) {
				positive += 2
				break
			}
		}
	}

	verdict := a.tallyVerdict(positive, negative)
	verdict.VaderCompound = a.vader.PolarityScores(textLower).Compound

	if disagrees(verdict.Label, verdict.VaderCompound) {
		a.logger.Debug("[SentimentEngine] VADER disagrees with lexicon verdict",
			slog.String("label", verdict.Label),
			slog.Float64("vader_compound", verdict.VaderCompound))
	}

	return verdict
}

func (a *Analyzer) tallyVerdict(positive, negative int) models.SentimentVerdict {
	total := positive + negative
	if total == 0 {
		return models.SentimentVerdict{Label: models.SentimentNeutral, Score: 0.5, Source: models.SourceRuleBased}
	}

	ratio := float64(positive) / float64(total)
	switch {
	case ratio > 0.6:
		return models.SentimentVerdict{
			Label:  models.SentimentPositive,
			Score:  round3(math.Min(ratio, 0.95)),
			Source: models.SourceRuleBased,
		}
	case ratio < 0.4:
		return models.SentimentVerdict{
			Label:  models.SentimentNegative,
			Score:  round3(math.Min(1-ratio, 0.95)),
			Source: models.SourceRuleBased,
		}
	default:
		neutrality := 1 - math.Abs(ratio-0.5)*2
		return models.SentimentVerdict{
			Label:  models.SentimentNeutral,
			Score:  round3(math.Max(neutrality, 0.5)),
			Source: models.SourceRuleBased,
		}
	}
}

// disagrees reports whether the VADER compound points the opposite way from
// the lexicon label.
func disagrees(label string, compound float64) bool {
	switch label {
	case models.SentimentPositive:
		return compound <= -0.2
	case models.SentimentNegative:
		return compound >= 0.2
	default:
		return false
	}
}

func round3(f float64) float64 {
	return math.Round(f*1000) / 1000
}
