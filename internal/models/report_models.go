package models

// Sentiment labels reported by both the remote classifier and the lexicon
// fallback. Remote labels are upper-cased before they enter a verdict.
const (
	SentimentPositive = "POSITIVE"
	SentimentNegative = "NEGATIVE"
	SentimentNeutral  = "NEUTRAL"
)

// Provenance of a sentiment verdict.
const (
	SourceAIModel   = "ai_model"
	SourceRuleBased = "rule_based"
	SourceDefault   = "default"
)

// SentimentVerdict is the single sentiment outcome of an analysis. Score is
// the confidence in Label, never in an alternative label.
type SentimentVerdict struct {
	Label  string  `json:"label"`
	Score  float64 `json:"score"`
	Source string  `json:"source"`
	// VaderCompound is a diagnostic computed alongside the rule-based
	// verdict. It never influences Label or Score.
	VaderCompound float64 `json:"vader_compound,omitempty"`
}

// HashtagStrategy is a deduplicated, capped hashtag set with a rationale.
type HashtagStrategy struct {
	Hashtags    []string `json:"hashtags"`
	Strategy    string   `json:"strategy"`
	ContentType string   `json:"content_type"`
}

// TextMetrics holds the surface statistics of a normalized text.
type TextMetrics struct {
	WordCount     int `json:"word_count"`
	SentenceCount int `json:"sentence_count"`
	Readability   int `json:"readability"`
	ReadingTime   int `json:"reading_time"`
}

// AnalysisReport is the aggregate result of one analysis invocation.
type AnalysisReport struct {
	Sentiment            SentimentVerdict `json:"sentiment"`
	KeyTopics            []string         `json:"key_topics"`
	EngagementScore      int              `json:"engagement_score"`
	Suggestions          []string         `json:"suggestions"`
	HashtagStrategy      HashtagStrategy  `json:"hashtag_strategy"`
	ReadabilityScore     int              `json:"readability_score"`
	WordCount            int              `json:"word_count"`
	SentenceCount        int              `json:"sentence_count"`
	EstimatedReadingTime int              `json:"estimated_reading_time"`
	ContentType          string           `json:"content_type"`
}
