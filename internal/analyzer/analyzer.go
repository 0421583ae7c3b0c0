// Package analyzer turns extracted document text into a content-quality
// report: sentiment, key topics, hashtag strategy, writing suggestions and
// an engagement score. The pipeline is deterministic and offline-capable;
// the only network dependency is the optional remote sentiment classifier,
// which degrades to a weighted-lexicon fallback.
package analyzer

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jonreiter/govader"
	"github.com/postlens/postlens/internal/models"
)

// Config tunes an Analyzer. Zero values fall back to defaults.
type Config struct {
	// Classifier is the optional remote sentiment model. Nil skips the
	// remote attempt and goes straight to the lexicon fallback.
	Classifier Classifier

	// AcceptThreshold is the minimum remote confidence (default 0.7).
	AcceptThreshold float64

	// RemoteTimeout bounds the single remote attempt (default 10s).
	RemoteTimeout time.Duration

	// SnippetLimit is the number of characters submitted remotely
	// (default 512).
	SnippetLimit int

	// HashtagSeed seeds category-pool hashtag selection so output is
	// reproducible (default 42).
	HashtagSeed int64

	Logger *slog.Logger
}

// Analyzer runs the analysis pipeline. Stateless across calls apart from
// the immutable lexicon; safe for concurrent use.
type Analyzer struct {
	lexicon    *Lexicon
	classifier Classifier
	vader      *govader.SentimentIntensityAnalyzer

	acceptThreshold float64
	remoteTimeout   time.Duration
	snippetLimit    int
	hashtagSeed     int64

	logger *slog.Logger
}

// New builds an Analyzer from cfg.
func New(cfg Config) *Analyzer {
	if cfg.AcceptThreshold == 0 {
		cfg.AcceptThreshold = 0.7
	}
	if cfg.RemoteTimeout == 0 {
		cfg.RemoteTimeout = 10 * time.Second
	}
	if cfg.SnippetLimit == 0 {
		cfg.SnippetLimit = 512
	}
	if cfg.HashtagSeed == 0 {
		cfg.HashtagSeed = 42
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return &Analyzer{
		lexicon:         DefaultLexicon(),
		classifier:      cfg.Classifier,
		vader:           govader.NewSentimentIntensityAnalyzer(),
		acceptThreshold: cfg.AcceptThreshold,
		remoteTimeout:   cfg.RemoteTimeout,
		snippetLimit:    cfg.SnippetLimit,
		hashtagSeed:     cfg.HashtagSeed,
		logger:          cfg.Logger,
	}
}

// minAnalyzableLength is the trimmed length in runes below which the default
// report is returned without running any stage.
const minAnalyzableLength = 10

// Analyze produces a report for text. It never fails: inputs too short get
// the default report, remote errors degrade to the lexicon fallback, and a
// panicking stage is replaced by its documented default.
func (a *Analyzer) Analyze(ctx context.Context, text string) models.AnalysisReport {
	if utf8.RuneCountInString(strings.TrimSpace(text)) < minAnalyzableLength {
		return a.defaultReport()
	}

	normalized := Normalize(text)
	rawNewlines := strings.Count(text, "\n")

	sentiment := guard(a.logger, "sentiment", neutralVerdict(), func() models.SentimentVerdict {
		return a.analyzeSentiment(ctx, normalized)
	})
	topics := guard(a.logger, "topics", append([]string(nil), a.lexicon.defaultTopics...), func() []string {
		return a.extractTopics(normalized)
	})
	metrics := guard(a.logger, "metrics", models.TextMetrics{Readability: 50, ReadingTime: 1}, func() models.TextMetrics {
		return calculateMetrics(normalized)
	})
	contentType := guard(a.logger, "classifier", ContentTypeGeneral, func() string {
		return a.detectContentType(normalized)
	})
	hashtags := guard(a.logger, "hashtags", a.defaultHashtagStrategy(contentType), func() models.HashtagStrategy {
		return a.buildHashtagStrategy(topics, contentType, sentiment)
	})
	suggestions := guard(a.logger, "suggestions", []string(nil), func() []string {
		return a.generateSuggestions(normalized, rawNewlines, sentiment, topics)
	})
	score := guard(a.logger, "score", 50, func() int {
		return a.calculateEngagementScore(normalized, rawNewlines, sentiment, topics)
	})

	return models.AnalysisReport{
		Sentiment:            sentiment,
		KeyTopics:            topics,
		EngagementScore:      score,
		Suggestions:          suggestions,
		HashtagStrategy:      hashtags,
		ReadabilityScore:     metrics.Readability,
		WordCount:            metrics.WordCount,
		SentenceCount:        metrics.SentenceCount,
		EstimatedReadingTime: metrics.ReadingTime,
		ContentType:          contentType,
	}
}

// guard runs a stage and substitutes fallback if it panics, keeping the
// whole analysis best-effort instead of re-running a second code path.
func guard[T any](logger *slog.Logger, stage string, fallback T, fn func() T) (result T) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("[Analyzer] Stage panicked, using stage default",
				slog.String("stage", stage),
				slog.Any("panic", r))
			result = fallback
		}
	}()
	return fn()
}

func neutralVerdict() models.SentimentVerdict {
	return models.SentimentVerdict{
		Label:  models.SentimentNeutral,
		Score:  0.5,
		Source: models.SourceRuleBased,
	}
}

func (a *Analyzer) defaultHashtagStrategy(contentType string) models.HashtagStrategy {
	return models.HashtagStrategy{
		Hashtags:    append([]string(nil), a.lexicon.defaultHashtags...),
		Strategy:    "General hashtags for broad reach",
		ContentType: contentType,
	}
}

// defaultReport is returned for inputs whose trimmed length is below
// minAnalyzableLength. No stage runs and no remote call is made.
func (a *Analyzer) defaultReport() models.AnalysisReport {
	return models.AnalysisReport{
		Sentiment: models.SentimentVerdict{
			Label:  models.SentimentNeutral,
			Score:  0.5,
			Source: models.SourceDefault,
		},
		KeyTopics:       []string{},
		EngagementScore: 0,
		Suggestions:     []string{"Text too short for analysis. Please upload a document with more content."},
		HashtagStrategy: models.HashtagStrategy{
			Hashtags:    []string{"#SocialMedia", "#Content", "#Tips"},
			Strategy:    "Add more content for specific hashtag recommendations",
			ContentType: ContentTypeGeneral,
		},
		ReadabilityScore:     0,
		WordCount:            0,
		SentenceCount:        0,
		EstimatedReadingTime: 0,
		ContentType:          ContentTypeGeneral,
	}
}
