package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"service-dispatch/internal/config"
	"service-dispatch/internal/logx"
	"service-dispatch/internal/repository"
	"service-dispatch/internal/seed"
	"service-dispatch/internal/service/orders"
)

var newPool = repository.NewPool

func connectDbWithRetry(ctx context.Context, dsn string, retries int, delay time.Duration) (*pgxpool.Pool, error) {
	if retries < 1 {
		retries = 1
	}
	var lastErr error
	const attemptTimeout = 3 * time.Second
	for i := 1; i <= retries; i++ {
		retriesCtx, cancel := context.WithTimeout(ctx, attemptTimeout)
		pool, err := newPool(retriesCtx, dsn)
		cancel()
		if err == nil {
			log.Printf("db connected on attempt %d", i)
			return pool, nil
		}
		lastErr = err
		log.Printf("db connect failed (attempt %d/%d): %v", i, retries, err)
		if i < retries {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}
	}
	return nil, fmt.Errorf("db connect failed after %d attempts: %w", retries, lastErr)
}

// applySeed loads the configured fixture file into the store.
func applySeed(ctx context.Context, cfg *config.Config, svc *orders.Service, logger logx.Logger) error {
	if cfg.SeedFile == "" {
		return nil
	}
	f, err := seed.Load(cfg.SeedFile)
	if err != nil {
		return err
	}
	res, err := seed.Apply(ctx, svc, f)
	if err != nil {
		return fmt.Errorf("apply seed %s: %w", cfg.SeedFile, err)
	}
	logger.Info("seed applied",
		logx.String("file", cfg.SeedFile),
		logx.Int("couriers", res.Couriers),
		logx.Int("orders", res.Orders),
	)
	return nil
}
