package monitoring

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/postlens/postlens/internal/analyzer"
	"github.com/postlens/postlens/internal/models"
)

var ErrClassifierUnhealthy = errors.New("[HealthCheck] classifier marked unhealthy")

// GatedClassifier short-circuits remote classification while the health
// monitor reports the endpoint down, so the analyzer degrades to its lexicon
// immediately instead of burning the request timeout.
type GatedClassifier struct {
	inner   analyzer.Classifier
	healthy *atomic.Bool
}

func NewGatedClassifier(inner analyzer.Classifier, healthy *atomic.Bool) *GatedClassifier {
	return &GatedClassifier{inner: inner, healthy: healthy}
}

func (g *GatedClassifier) ClassifySentiment(ctx context.Context, text string) ([]models.LabelScore, error) {
	if !g.healthy.Load() {
		return nil, ErrClassifierUnhealthy
	}
	return g.inner.ClassifySentiment(ctx, text)
}
