package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/postlens/postlens/config"
	"github.com/postlens/postlens/internal/analyzer"
	"github.com/postlens/postlens/internal/clients"
	"github.com/postlens/postlens/internal/clients/kafka_client"
	"github.com/postlens/postlens/internal/db"
	"github.com/postlens/postlens/internal/extraction"
	"github.com/postlens/postlens/internal/localmodel"
	"github.com/postlens/postlens/internal/logging"
	"github.com/postlens/postlens/internal/monitoring"
	"github.com/postlens/postlens/internal/server"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a := analyzer.New(analyzer.Config{
		Classifier: buildClassifier(ctx),
	})

	extractor := extraction.NewPipeline(extraction.Config{
		OCR: clients.GetOCRClient(),
	})

	var cache *clients.ValkeyClient
	if os.Getenv("VALKEY_INIT_ADDRESS") != "" {
		cache = clients.InitValkey()
		defer clients.CloseValkey()
	}

	var history *db.HistoryWriter
	if os.Getenv("REPORT_HISTORY_ENABLED") == "true" {
		db.InitDynamoDB()
		history = db.NewHistoryWriter()
		go history.Start(ctx)
	}

	publishResults := false
	if os.Getenv("KAFKA_PUBLISH_RESULTS") == "true" {
		cfg := kafka_client.GetKafkaConfig()
		for {
			err := kafka_client.InitProducer(cfg)
			if err == nil {
				break
			}
			slog.Warn("Kafka init failed, retrying...", slog.String("error", err.Error()))
			time.Sleep(5 * time.Second)
		}
		defer kafka_client.CloseProducer()
		publishResults = true
	}

	srv := server.New(server.Config{
		Analyzer:       a,
		Extractor:      extractor,
		Cache:          cache,
		History:        history,
		PublishResults: publishResults,
		UploadDir:      os.Getenv("UPLOAD_DIR"),
	})

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":5000"
	}

	httpServer := &http.Server{
		Addr:    addr,
		Handler: srv.Router(),
	}

	go func() {
		slog.Info("[Main] Starting HTTP server", slog.String("addr", addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("[Main] HTTP server failed", slog.String("error", err.Error()))
			cancel()
		}
	}()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sigs:
		slog.Info("[Main] Shutdown signal received")
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("[Main] HTTP shutdown failed", slog.String("error", err.Error()))
	}
	cancel()
}

// buildClassifier selects the sentiment backend. The hosted model runs
// behind a health gate; "openai" and "local" are explicit opt-ins; "none"
// keeps everything on the lexicon.
func buildClassifier(ctx context.Context) analyzer.Classifier {
	switch os.Getenv("CLASSIFIER_BACKEND") {
	case "openai":
		return clients.GetOpenAIClient()
	case "local":
		local, err := localmodel.NewLocalClassifier()
		if err != nil {
			slog.Error("[Main] Failed to start local classifier, continuing without it",
				slog.String("error", err.Error()))
			return nil
		}
		return local
	case "none":
		return nil
	default:
		healthy := &atomic.Bool{}
		healthy.Store(true)
		go monitoring.MonitorClassifierHealth(ctx, healthy)
		return monitoring.NewGatedClassifier(clients.GetHuggingFaceClient(), healthy)
	}
}
