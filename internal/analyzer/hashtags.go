package analyzer

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/postlens/postlens/internal/models"
)

const maxHashtags = 8

// buildHashtagStrategy assembles the hashtag set in fixed order: topic tags,
// category-pool tags, sentiment tags, engagement tags. Exact duplicates are
// dropped as they are appended and the result is capped at eight.
//
// Category-pool selection is seeded so repeated analyses of the same text
// produce identical output.
func (a *Analyzer) buildHashtagStrategy(topics []string, contentType string, sentiment models.SentimentVerdict) models.HashtagStrategy {
	if len(topics) == 0 {
		return models.HashtagStrategy{
			Hashtags:    append([]string(nil), a.lexicon.defaultHashtags...),
			Strategy:    "General hashtags for broad reach",
			ContentType: contentType,
		}
	}

	seen := make(map[string]struct{}, maxHashtags)
	hashtags := make([]string, 0, maxHashtags)
	add := func(tag string) {
		if _, dup := seen[tag]; dup {
			return
		}
		seen[tag] = struct{}{}
		hashtags = append(hashtags, tag)
	}

	for i, topic := range topics {
		if i == 3 {
			break
		}
		add("#" + strings.ReplaceAll(topic, " ", ""))
	}

	pool := a.lexicon.hashtagPools[contentType]
	rng := rand.New(rand.NewSource(a.hashtagSeed))
	added := 0
	for _, idx := range rng.Perm(len(pool)) {
		if added == 3 {
			break
		}
		before := len(hashtags)
		add("#" + pool[idx])
		if len(hashtags) > before {
			added++
		}
	}

	sentimentTags, ok := a.lexicon.sentimentTags[sentiment.Label]
	if !ok {
		sentimentTags = a.lexicon.sentimentTags[models.SentimentNeutral]
	}
	for _, tag := range sentimentTags {
		add(tag)
	}
	for _, tag := range a.lexicon.engagementTags {
		add(tag)
	}

	if len(hashtags) > maxHashtags {
		hashtags = hashtags[:maxHashtags]
	}

	return models.HashtagStrategy{
		Hashtags:    hashtags,
		Strategy:    fmt.Sprintf("Mix of topic-specific, %s category, and engagement hashtags for optimal reach", contentType),
		ContentType: contentType,
	}
}
