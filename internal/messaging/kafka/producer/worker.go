package producer

import (
	"context"
	"time"

	"go-shiftdesk/internal/messaging/kafka"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const defaultBatchSize = 50

// Worker drains the outbox table into Kafka on a fixed poll interval.
// Failed publishes stay in the table with a retry backoff, so a broker
// outage delays decision events instead of losing them.
type Worker struct {
	repo      kafka.OutboxRepository
	writer    *kafkago.Writer
	logger    *zap.Logger
	interval  time.Duration
	batchSize int
}

func NewWorker(repo kafka.OutboxRepository, writer *kafkago.Writer, logger *zap.Logger, interval time.Duration) *Worker {
	if interval <= 0 {
		interval = 3 * time.Second
	}
	return &Worker{
		repo:      repo,
		writer:    writer,
		logger:    logger.Named("kafka.producer.worker"),
		interval:  interval,
		batchSize: defaultBatchSize,
	}
}

func (w *Worker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Info("outbox worker started", zap.Duration("poll_interval", w.interval))

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("outbox worker stopped")
			return
		case <-ticker.C:
			if err := w.drainOnce(ctx); err != nil {
				w.logger.Error("outbox drain failed", zap.Error(err))
			}
		}
	}
}

// drainOnce publishes one batch. Per-event failures are recorded on the
// row and do not stop the rest of the batch.
func (w *Worker) drainOnce(ctx context.Context) error {
	batch, err := w.repo.ListPending(ctx, w.batchSize)
	if err != nil {
		return err
	}
	if len(batch) == 0 {
		return nil
	}

	w.logger.Info("draining outbox batch", zap.Int("count", len(batch)))

	for _, event := range batch {
		if err := publishEvent(ctx, w.writer, event); err != nil {
			w.logger.Error("publish outbox event failed",
				zap.String("outbox_id", event.ID),
				zap.String("event_type", event.EventType),
				zap.String("topic", event.Topic),
				zap.Error(err),
			)
			_ = w.repo.MarkFailed(ctx, event.ID, err.Error())
			continue
		}

		if err := w.repo.MarkSent(ctx, event.ID); err != nil {
			// The message is already on the broker; the next drain will
			// resend it, so consumers must tolerate duplicates.
			w.logger.Error("mark outbox sent failed",
				zap.String("outbox_id", event.ID),
				zap.Error(err),
			)
			continue
		}

		w.logger.Info("outbox event sent",
			zap.String("outbox_id", event.ID),
			zap.String("event_type", event.EventType),
			zap.String("topic", event.Topic),
		)
	}

	return nil
}
