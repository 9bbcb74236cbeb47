package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-shiftdesk/internal/messaging/kafka"
	"go-shiftdesk/internal/messaging/kafka/producer"
	"go-shiftdesk/internal/shared/connection"

	"go.uber.org/zap"
)

// RunWorker runs the outbox drain loop as a standalone process. It shares
// the database with the API but owns the Kafka writer.
func RunWorker() error {
	logger := zap.L().Named("app.worker")

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	broker := os.Getenv("KAFKA_BROKER")
	if broker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	writer, err := connection.ConnectKafkaWithRetry(broker, 5)
	if err != nil {
		return err
	}
	defer writer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	worker := producer.NewWorker(kafka.NewOutboxRepository(sqlDB), writer, logger, 3*time.Second)
	worker.Run(ctx)

	logger.Info("worker shutting down")
	return nil
}
