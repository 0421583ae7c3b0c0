package monitoring

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/postlens/postlens/internal/clients"
)

const HEALTHCHECK_TIMER = 15

// MonitorClassifierHealth polls the hosted sentiment model. While it is
// unhealthy the worker skips the remote attempt entirely and analyses run
// on the lexicon fallback.
func MonitorClassifierHealth(ctx context.Context, healthy *atomic.Bool) {
	ticker := time.NewTicker(time.Second * HEALTHCHECK_TIMER)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			isHealthy := clients.GetHuggingFaceClient().HealthCheck()
			healthy.Store(isHealthy)
			if !isHealthy {
				slog.Warn("[HealthCheck] Sentiment classifier is unhealthy")
			}
		}
	}
}
