package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	_ "github.com/RoGogDBD/parcelrate/docs" // регистрация swagger-спецификации
	"github.com/RoGogDBD/parcelrate/internal/auth"
	"github.com/RoGogDBD/parcelrate/internal/config"
	"github.com/RoGogDBD/parcelrate/internal/config/db"
	"github.com/RoGogDBD/parcelrate/internal/handlers"
	"github.com/RoGogDBD/parcelrate/internal/kafka"
	"github.com/RoGogDBD/parcelrate/internal/repository"
	"github.com/RoGogDBD/parcelrate/internal/service"
	"github.com/RoGogDBD/parcelrate/internal/telemetry"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// App содержит все зависимости приложения
type App struct {
	Config    *config.Config
	Log       *zap.Logger
	DBPool    *pgxpool.Pool
	Cache     repository.TierCache
	PgStorage *repository.PostgresStorage
	Service   *service.Service
	Telemetry *telemetry.Providers
	Issuer    *auth.Issuer

	redis    *repository.RedisCache
	consumer *kafka.Consumer
	done     chan struct{}
	ctx      context.Context
	cancel   context.CancelFunc
}

// NewApp создает новое приложение.
func NewApp(cfg *config.Config, log *zap.Logger) (*App, error) {
	if cfg.Database.DSN == "" {
		return nil, fmt.Errorf("%w: database DSN is required", config.ErrInvalidConfig)
	}
	ctx, cancel := context.WithCancel(context.Background())

	app := &App{
		Config: cfg,
		Log:    log,
		Issuer: auth.NewIssuer(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL),
		done:   make(chan struct{}),
		ctx:    ctx,
		cancel: cancel,
	}

	switch cfg.Cache.Backend {
	case config.CacheRedis:
		r := cfg.Cache.Redis
		app.redis = repository.NewRedisCache(r.Addr, r.Username, r.Password, r.DB, cfg.Cache.TTL, log)
		app.Cache = app.redis
	default:
		app.Cache = repository.NewMemStorageWithConfig(cfg.Cache.MaxItems, cfg.Cache.TTL)
	}

	return app, nil
}

// Init выполняет инициализацию зависимостей приложения.
func (a *App) Init() error {
	providers, err := telemetry.Init(a.ctx, a.Config.Telemetry)
	if err != nil {
		return fmt.Errorf("init telemetry: %w", err)
	}
	a.Telemetry = providers

	if a.redis != nil {
		if err := a.redis.Ping(a.ctx); err != nil {
			return fmt.Errorf("connect to redis: %w", err)
		}
		a.Log.Info("tier cache backed by redis", zap.String("addr", a.Config.Cache.Redis.Addr))
	} else {
		a.Log.Info("tier cache in memory",
			zap.Int("max_items", a.Config.Cache.MaxItems),
			zap.Duration("ttl", a.Config.Cache.TTL),
		)
	}
	a.Cache.StartJanitor(a.ctx, a.Config.Cache.CleanupInterval)

	dbPool, err := db.NewPool(a.ctx, a.Config.Database.DSN, a.Config.Database.MigrationsPath, a.Log)
	if err != nil {
		return err
	}
	a.DBPool = dbPool
	a.PgStorage = repository.NewPostgresStorage(dbPool)
	a.Log.Info("database initialized successfully")

	a.Service = service.New(a.PgStorage, a.PgStorage, a.Cache,
		service.WithLogger(a.Log),
		service.WithMetrics(a.Telemetry.Metrics),
	)

	// Прогрев кеша тарифами из БД
	if n, err := a.Service.WarmCache(a.ctx); err != nil {
		a.Log.Warn("failed to warm tier cache", zap.Error(err))
	} else {
		a.Log.Info("tier cache warmed", zap.Int("tiers", n))
	}

	if a.Config.Kafka.Enabled {
		a.consumer = kafka.NewConsumer(a.Config.Kafka, a.Service, a.Log.Named("kafka"), a.Telemetry.Metrics)
		go func() {
			defer close(a.done)
			a.Log.Info("kafka consumer started",
				zap.Strings("brokers", a.Config.Kafka.Brokers),
				zap.String("topic", a.Config.Kafka.Topic),
			)
			if err := a.consumer.Run(a.ctx); err != nil {
				a.Log.Error("kafka consumer stopped", zap.Error(err))
			}
		}()
	}

	return nil
}

// Router собирает HTTP-маршруты приложения.
func (a *App) Router() http.Handler {
	r := chi.NewRouter()
	config.SetupMiddlewares(r, a.Log.Named("http"))

	handlers.NewHandler(a.Service, a.Log).Routes(r, a.Issuer)

	if a.Telemetry != nil && a.Telemetry.MetricsHandler != nil {
		r.Method(http.MethodGet, a.Config.Telemetry.MetricsPath, a.Telemetry.MetricsHandler)
	}
	if a.Config.Server.SwaggerEnabled {
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	}

	return telemetry.Middleware(a.Config.Telemetry.ServiceName)(r)
}

// Server создает HTTP-сервер по настройкам.
func (a *App) Server() *http.Server {
	return &http.Server{
		Addr:         a.Config.Server.Address(),
		Handler:      a.Router(),
		ReadTimeout:  a.Config.Server.ReadTimeout,
		WriteTimeout: a.Config.Server.WriteTimeout,
		IdleTimeout:  a.Config.Server.IdleTimeout,
	}
}

// Close освобождает все ресурсы приложения
func (a *App) Close(ctx context.Context) {
	a.Log.Info("shutting down application")

	// Отменяем контекст (остановит Kafka consumer)
	if a.cancel != nil {
		a.cancel()
	}
	if a.consumer != nil {
		select {
		case <-a.done:
		case <-ctx.Done():
			a.Log.Warn("kafka consumer did not stop in time")
		}
	}

	if a.DBPool != nil {
		a.DBPool.Close()
		a.Log.Info("database connection closed")
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.Log.Warn("redis close error", zap.Error(err))
		}
	}
	if err := a.Telemetry.Shutdown(ctx); err != nil && !errors.Is(err, context.Canceled) {
		a.Log.Warn("telemetry shutdown error", zap.Error(err))
	}

	a.Log.Info("application shutdown complete")
}

// Context возвращает контекст приложения
func (a *App) Context() context.Context {
	return a.ctx
}
