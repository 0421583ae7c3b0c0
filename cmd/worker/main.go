package main

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/confluentinc/confluent-kafka-go/kafka"

	"github.com/postlens/postlens/config"
	"github.com/postlens/postlens/internal/analyzer"
	"github.com/postlens/postlens/internal/clients"
	"github.com/postlens/postlens/internal/clients/kafka_client"
	"github.com/postlens/postlens/internal/db"
	"github.com/postlens/postlens/internal/logging"
	"github.com/postlens/postlens/internal/models"
	"github.com/postlens/postlens/internal/monitoring"
	"github.com/postlens/postlens/internal/utils"
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

	go func() {
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
		<-sigs
		slog.Info("[Worker] Shutdown signal received")
		cancel()
	}()

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

	consumer, err := kafka_client.NewConsumer(cfg)
	if err != nil {
		slog.Error("[Worker] Failed to create consumer", slog.String("error", err.Error()))
		return
	}
	defer consumer.Close()

	healthy := &atomic.Bool{}
	healthy.Store(true)
	go monitoring.MonitorClassifierHealth(ctx, healthy)

	a := analyzer.New(analyzer.Config{
		Classifier: monitoring.NewGatedClassifier(clients.GetHuggingFaceClient(), healthy),
	})

	var history *db.HistoryWriter
	if os.Getenv("REPORT_HISTORY_ENABLED") == "true" {
		db.InitDynamoDB()
		history = db.NewHistoryWriter()
		go history.Start(ctx)
	}

	runWorker(ctx, consumer, a, history)
}

// runWorker consumes analysis requests, runs the pipeline, and publishes
// each completed report to the results topic before committing the offset.
func runWorker(ctx context.Context, consumer *kafka.Consumer, a *analyzer.Analyzer, history *db.HistoryWriter) {
	iterator := kafka_client.NewKafkaMessageIterator(ctx, consumer)
	committer := kafka_client.NewCommitHandler(ctx, consumer)

	slog.Info("[Worker] Listening for analysis requests")

	for {
		select {
		case <-ctx.Done():
			slog.Warn("[Worker] Stopping consumer...")
			return
		default:
			msg, err := iterator.Next()
			if err != nil {
				utils.HandleConsumerError(err)
				return
			}

			var req models.AnalysisRequest
			if err := utils.DeserializeFromJSON(msg.Value, &req); err != nil {
				committer.Commit(msg)
				continue
			}

			report := a.Analyze(ctx, req.Text)

			sum := sha256.Sum256([]byte(req.Text))
			stored := models.StoredReport{
				RequestID:  req.RequestID,
				TextSHA256: hex.EncodeToString(sum[:]),
				Report:     report,
				CreatedAt:  time.Now().UTC(),
			}

			if err := kafka_client.PublishToKafka(kafka_client.KAFKA_TOPIC_ANALYSIS_RESULTS, stored.RequestID, stored); err != nil {
				slog.Warn("[Worker] Failed to publish report",
					slog.String("request_id", req.RequestID),
					slog.String("error", err.Error()))
				continue
			}

			if history != nil {
				history.Record(stored)
			}

			if err := committer.Commit(msg); err != nil {
				slog.Warn("[Worker] Failed to commit offset",
					slog.String("error", err.Error()))
			}
		}
	}
}
