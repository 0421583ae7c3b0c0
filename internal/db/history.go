package db

import (
	"context"
	"log/slog"
	"time"

	"github.com/postlens/postlens/internal/models"
	"github.com/postlens/postlens/internal/utils"
)

// HistoryWriter buffers completed reports and flushes them to DynamoDB in
// batches, either when the buffer fills or on a timer.
type HistoryWriter struct {
	buffer *utils.BatchBuffer[models.StoredReport]
}

func NewHistoryWriter() *HistoryWriter {
	return &HistoryWriter{
		buffer: utils.NewBatchBuffer[models.StoredReport](),
	}
}

// Record enqueues a report for persistence.
func (h *HistoryWriter) Record(report models.StoredReport) {
	h.buffer.Add(report)
}

// Start flushes the buffer periodically until ctx is done, then performs a
// final flush.
func (h *HistoryWriter) Start(ctx context.Context) {
	ticker := time.NewTicker(utils.BATCH_TIMEOUT)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			h.flush(context.Background())
			return
		case <-ticker.C:
			h.flush(ctx)
		}
	}
}

func (h *HistoryWriter) flush(ctx context.Context) {
	batch := h.buffer.GetAndClear()
	if len(batch) == 0 {
		return
	}

	var err error
	for i := 0; i < 3; i++ {
		err = BatchInsertReports(ctx, batch)
		if err == nil {
			return
		}
		slog.Error("[HistoryWriter] Failed to write reports to DB",
			slog.String("error", err.Error()),
			slog.Int("attempt", i+1))
	}
}
