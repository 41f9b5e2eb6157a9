package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/dig"

	"service-dispatch/internal/config"
	"service-dispatch/internal/http/admin"
	"service-dispatch/internal/http/handlers"
	"service-dispatch/internal/http/middleware/ratelimit"
	"service-dispatch/internal/http/router"
	"service-dispatch/internal/logx"
	"service-dispatch/internal/metrics"
	"service-dispatch/internal/repository"
	"service-dispatch/internal/retry"
	"service-dispatch/internal/service/handover"
	"service-dispatch/internal/service/orders"
	"service-dispatch/internal/transport/kafka"
)

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	loadConfig func() (*config.Config, error)
	dbConnect  dbConnectFunc
	migrate    func(string) error
	logFatalf  func(string, ...interface{})
}

// NewContainerBuilder returns a new dig container builder
func NewContainerBuilder() *ContainerBuilder {
	return &ContainerBuilder{
		loadConfig: config.Load,
		dbConnect:  connectDbWithRetry,
		migrate:    repository.Migrate,
		logFatalf:  log.Fatalf,
	}
}

// WithConfig replaces the config loader.
func (b *ContainerBuilder) WithConfig(fn func() (*config.Config, error)) *ContainerBuilder {
	if fn != nil {
		b.loadConfig = fn
	}
	return b
}

// WithDBConnect sets the database connection function
func (b *ContainerBuilder) WithDBConnect(fn dbConnectFunc) *ContainerBuilder {
	if fn != nil {
		b.dbConnect = fn
	}
	return b
}

// WithMigrate sets the schema migration function
func (b *ContainerBuilder) WithMigrate(fn func(string) error) *ContainerBuilder {
	if fn != nil {
		b.migrate = fn
	}
	return b
}

// WithLogFatalf sets the log.Fatalf function
func (b *ContainerBuilder) WithLogFatalf(fn func(string, ...interface{})) *ContainerBuilder {
	if fn != nil {
		b.logFatalf = fn
	}
	return b
}

// MustBuild builds the HTTP service container.
func (b *ContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	container, err := b.build(ctx)
	if err != nil {
		b.logFatalf("failed to build container: %v", err)
	}
	return container
}

// MustBuildWorker builds the Kafka worker container.
func (b *ContainerBuilder) MustBuildWorker(ctx context.Context) *dig.Container {
	container, err := b.buildWorker(ctx)
	if err != nil {
		b.logFatalf("failed to build worker container: %v", err)
	}
	return container
}

func (b *ContainerBuilder) build(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx, b.loadConfig); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerDb(container, b.dbConnect, b.migrate); err != nil {
		return nil, fmt.Errorf("DB: %w", err)
	}
	if err := registerService(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if err := registerHTTP(container); err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	return container, nil
}

func (b *ContainerBuilder) buildWorker(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx, b.loadConfig); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerDb(container, b.dbConnect, b.migrate); err != nil {
		return nil, fmt.Errorf("DB: %w", err)
	}
	if err := registerService(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if err := registerWorker(container); err != nil {
		return nil, fmt.Errorf("worker: %w", err)
	}
	return container, nil
}

// MustBuildContainer builds the HTTP service container from the environment.
func MustBuildContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuild(ctx)
}

// MustBuildWorkerContainer builds the worker container from the environment.
func MustBuildWorkerContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuildWorker(ctx)
}

func provideAll(container *dig.Container, providers ...any) error {
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return fmt.Errorf("provide %T: %w", provider, err)
		}
	}
	return nil
}

// appMetrics holds every collector registered on the service registry.
type appMetrics struct {
	dig.Out

	HTTP           *metrics.HTTP
	Handover       *metrics.Handover
	OrderEvents    *prometheus.CounterVec `name:"order_events_total"`
	RateLimited    prometheus.Counter     `name:"rate_limit_exceeded_total"`
	PublishRetries prometheus.Counter     `name:"publish_retries_total"`
}

func newAppMetrics(reg *prometheus.Registry) (appMetrics, error) {
	m := appMetrics{
		HTTP:           metrics.NewHTTP(),
		Handover:       metrics.NewHandover(),
		OrderEvents:    metrics.NewOrderEventsTotal(),
		RateLimited:    metrics.NewRateLimitExceededTotal(),
		PublishRetries: metrics.NewPublishRetriesTotal(),
	}
	cs := append(m.HTTP.Collectors(), m.Handover.Collectors()...)
	cs = append(cs, m.OrderEvents, m.RateLimited, m.PublishRetries)
	for _, c := range cs {
		if err := reg.Register(c); err != nil {
			return appMetrics{}, fmt.Errorf("register metrics: %w", err)
		}
	}
	return m, nil
}

func newRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func registerCore(container *dig.Container, ctx context.Context, loadConfig func() (*config.Config, error)) error {
	return provideAll(container,
		func() context.Context { return ctx },
		loadConfig,
		NewLogger,
		newRegistry,
		func(reg *prometheus.Registry) prometheus.Gatherer { return reg },
		newAppMetrics,
	)
}

func registerDb(container *dig.Container, dbConnect dbConnectFunc, migrate func(string) error) error {
	providerBackend := func(ctx context.Context, cfg *config.Config, logger logx.Logger) (*backend, error) {
		return newBackend(ctx, cfg, logger, dbConnect, migrate)
	}
	return provideAll(container,
		providerBackend,
		func(b *backend) Store { return b.store },
	)
}

type publisherIn struct {
	dig.In

	Config  *config.Config
	Logger  logx.Logger
	Retries prometheus.Counter `name:"publish_retries_total"`
}

func newBagPublisher(in publisherIn) (*kafka.Publisher, error) {
	k := in.Config.Kafka
	retrier := retry.New(retry.Config{
		MaxAttempts: k.PublishAttempts,
		BaseDelay:   k.PublishBaseDelay,
		MaxDelay:    k.PublishMaxDelay,
	}, in.Logger, in.Retries)
	return kafka.NewPublisher(in.Logger, k.Brokers, k.BagsTopic, retrier)
}

func registerService(container *dig.Container) error {
	return provideAll(container,
		func(store Store, cfg *config.Config, logger logx.Logger) *orders.Service {
			return orders.NewService(store, nil, cfg.Handover.OperationTimeout, logger)
		},
		newBagSequence,
		newBagPublisher,
		func(
			store Store,
			seq handover.Sequence,
			pub *kafka.Publisher,
			m *metrics.Handover,
			cfg *config.Config,
			logger logx.Logger,
		) *handover.Service {
			return handover.NewService(store, seq, handover.Options{
				Publisher:        pub,
				Metrics:          m,
				SessionTTL:       cfg.Handover.SessionTTL,
				OperationTimeout: cfg.Handover.OperationTimeout,
				Logger:           logger,
			})
		},
	)
}

func newRateLimiter(cfg *config.Config) ratelimit.Limiter {
	rl := cfg.RateLimit
	if !rl.Enabled {
		return ratelimit.Unlimited{}
	}
	return ratelimit.NewTokenBucket(ratelimit.Config{
		Rate:       rl.Rate,
		Burst:      rl.Burst,
		TTL:        rl.TTL,
		MaxBuckets: rl.MaxBuckets,
	}, nil)
}

type rateLimitIn struct {
	dig.In

	Logger  logx.Logger
	Counter prometheus.Counter `name:"rate_limit_exceeded_total"`
	Limiter ratelimit.Limiter
}

func newRateLimitMiddleware(in rateLimitIn) *ratelimit.Middleware {
	return ratelimit.New(in.Logger, in.Counter, in.Limiter).WithKey(ratelimit.OperatorOrIP("X-Operator-ID"))
}

type routerIn struct {
	dig.In

	Base      *handlers.Handlers
	Orders    *handlers.OrderHandler
	Handover  *handlers.HandoverHandler
	Bags      *handlers.BagHandler
	Logger    logx.Logger
	Metrics   *metrics.HTTP
	RateLimit *ratelimit.Middleware
	Gatherer  prometheus.Gatherer
}

func newRouter(in routerIn) http.Handler {
	return router.New(router.Params{
		Base:      in.Base,
		Orders:    in.Orders,
		Handover:  in.Handover,
		Bags:      in.Bags,
		Logger:    in.Logger,
		Metrics:   in.Metrics,
		RateLimit: in.RateLimit,
		Gatherer:  in.Gatherer,
	})
}

// adminServer is nil when no admin address is configured.
type adminServer struct {
	*http.Server
}

func newAdminServer(cfg *config.Config, g prometheus.Gatherer, svc *handover.Service) *adminServer {
	if cfg.Admin.Addr == "" {
		return nil
	}
	return &adminServer{&http.Server{
		Addr:              cfg.Admin.Addr,
		Handler:           admin.Handler(admin.Config{User: cfg.Admin.User, Pass: cfg.Admin.Pass}, g, svc),
		ReadHeaderTimeout: 5 * time.Second,
	}}
}

func registerHTTP(container *dig.Container) error {
	serverProvider := func(cfg *config.Config, mux http.Handler) *http.Server {
		return &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}
	}
	return provideAll(container,
		handlers.New,
		handlers.NewOrderUsecase,
		handlers.NewOrderHandler,
		handlers.NewHandoverUsecase,
		handlers.NewHandoverHandler,
		handlers.NewBagUsecase,
		handlers.NewBagHandler,
		newRateLimiter,
		newRateLimitMiddleware,
		newRouter,
		serverProvider,
		newAdminServer,
	)
}

type consumerIn struct {
	dig.In

	Config *config.Config
	Logger logx.Logger
	Orders *orders.Service
	Events *prometheus.CounterVec `name:"order_events_total"`
}

func newOrderConsumer(in consumerIn) (*kafka.Consumer, error) {
	p := orders.NewProcessor(in.Orders, in.Logger)
	k := in.Config.Kafka
	return kafka.NewConsumer(in.Logger, k.Brokers, k.GroupID, k.OrdersTopic, p.Handle, in.Events)
}

func registerWorker(container *dig.Container) error {
	return provideAll(container, newOrderConsumer)
}
