package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/dig"

	"service-dispatch/internal/logx"
	"service-dispatch/internal/transport/kafka"
)

// WorkerRunner runs the Kafka order event worker.
type WorkerRunner struct {
	runFn func(*dig.Container) error
}

// NewWorkerRunner returns a new WorkerRunner
func NewWorkerRunner() *WorkerRunner {
	return &WorkerRunner{runFn: runWorker}
}

// MustRun starts the consumer using the provided DI container
func (r *WorkerRunner) MustRun(container *dig.Container) {
	err := r.runFn(container)
	if err == nil || errors.Is(err, context.Canceled) {
		return
	}
	panic(err)
}

type workerIn struct {
	dig.In

	Ctx      context.Context
	Logger   logx.Logger
	Consumer *kafka.Consumer
	Backend  *backend
}

func runWorker(container *dig.Container) error {
	return container.Invoke(func(in workerIn) error {
		return workerRun(in.Ctx, in.Logger, in.Consumer, in.Backend)
	})
}

func workerRun(ctx context.Context, logger logx.Logger, consumer *kafka.Consumer, b *backend) error {
	if consumer == nil {
		return fmt.Errorf("kafka consumer is nil: KAFKA_BROKERS not configured")
	}
	defer closeWorker(logger, consumer, b)

	logger.Info("service-dispatch worker started")
	return consumer.Run(ctx)
}

func closeWorker(logger logx.Logger, consumer *kafka.Consumer, b *backend) {
	if err := consumer.Close(); err != nil {
		logger.Error("kafka close error", logx.Err(err))
	}
	b.close()
}
