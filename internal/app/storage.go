package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"service-dispatch/internal/config"
	"service-dispatch/internal/domain"
	"service-dispatch/internal/logx"
	"service-dispatch/internal/repository"
	"service-dispatch/internal/repository/memory"
	"service-dispatch/internal/sequence"
	"service-dispatch/internal/service/handover"
)

// Store is the storage backend both services run on.
type Store interface {
	handover.Store

	List(ctx context.Context, q domain.OrderQuery, s domain.OrderSort, page, size int) (domain.Paged[domain.Order], error)
	Get(ctx context.Context, id string) (*domain.Order, error)
	Create(ctx context.Context, o *domain.Order) error
	Update(ctx context.Context, id string, fn func(o *domain.Order) error) (*domain.Order, error)
	ListCouriers(ctx context.Context) ([]domain.Courier, error)
	UpsertCourier(ctx context.Context, c domain.Courier) error
	CountBags(ctx context.Context) (int64, error)
}

var (
	_ Store = (*memory.Store)(nil)
	_ Store = (*repository.Store)(nil)
)

type dbConnectFunc func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error)

// backend carries the selected store and, for postgres, its pool.
type backend struct {
	store Store
	pool  *pgxpool.Pool
}

func newBackend(
	ctx context.Context,
	cfg *config.Config,
	logger logx.Logger,
	connect dbConnectFunc,
	migrate func(string) error,
) (*backend, error) {
	if cfg.Storage != config.StoragePostgres {
		logger.Info("using in-memory store")
		return &backend{store: memory.New()}, nil
	}

	dsn := cfg.DB.DSN()
	pool, err := connect(ctx, dsn, cfg.DB.ConnectRetries, time.Second)
	if err != nil {
		return nil, err
	}
	if err := migrate(dsn); err != nil {
		pool.Close()
		return nil, err
	}
	logger.Info("using postgres store", logx.String("host", cfg.DB.Host), logx.String("db", cfg.DB.Name))
	return &backend{store: repository.NewStore(pool), pool: pool}, nil
}

func (b *backend) close() {
	if b != nil && b.pool != nil {
		b.pool.Close()
	}
}

// newBagSequence picks the bag number source. Every backend starts above the
// bags already stored so numbers stay unique across restarts.
func newBagSequence(ctx context.Context, cfg *config.Config, b *backend) (handover.Sequence, error) {
	if cfg.Handover.BagSequence == config.SequencePostgres {
		if b.pool == nil {
			return nil, fmt.Errorf("bag sequence %q requires postgres storage", cfg.Handover.BagSequence)
		}
		return sequence.NewPostgres(b.pool), nil
	}

	floor, err := b.store.CountBags(ctx)
	if err != nil {
		return nil, fmt.Errorf("count bags: %w", err)
	}

	if cfg.Handover.BagSequence == config.SequenceRedis {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		return sequence.NewRedis(client, cfg.Redis.BagSequenceKey, floor), nil
	}
	return sequence.NewMemory(floor), nil
}
