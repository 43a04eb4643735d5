package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/videoscripter-backend/internal/data/db"
	httpserver "github.com/yungbote/videoscripter-backend/internal/http"
	"github.com/yungbote/videoscripter-backend/internal/observability"
	"github.com/yungbote/videoscripter-backend/internal/pkg/logger"
)

const serviceName = "videoscripter"

type App struct {
	Log      *logger.Logger
	DB       *db.Service
	Router   *gin.Engine
	Cfg      Config
	Metrics  *observability.Metrics
	Clients  Clients
	Repos    Repos
	Services Services

	otelShutdown func(context.Context) error
}

// Bootstrap loads .env and config and builds the logger. Every CLI command starts here.
func Bootstrap() (*logger.Logger, Config, error) {
	LoadDotEnv()
	cfg, err := LoadConfig(nil)
	if err != nil {
		return nil, Config{}, err
	}
	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return nil, Config{}, fmt.Errorf("init logger: %w", err)
	}
	return log, cfg, nil
}

// OpenDB connects and, when migrate is set, brings the schema up to date.
func OpenDB(log *logger.Logger, cfg Config, migrate bool) (*db.Service, error) {
	svc, err := db.NewService(cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}
	if migrate {
		if err := svc.Migrate(); err != nil {
			_ = svc.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
	}
	return svc, nil
}

func New(ctx context.Context, log *logger.Logger, cfg Config) (*App, error) {
	otelShutdown := observability.InitOTel(ctx, log, observability.OtelConfig{
		Enabled:            cfg.Tracing.Enabled,
		ServiceName:        serviceName,
		Environment:        cfg.Environment,
		SampleRatio:        cfg.Tracing.SampleRatio,
		Endpoint:           cfg.Tracing.Endpoint,
		Headers:            cfg.Tracing.Headers,
		Insecure:           cfg.Tracing.Insecure,
		DBDriver:           cfg.DB.Driver,
		CatalogBackend:     "youtube",
		CatalogSharedCache: cfg.RedisAddr != "",
		IngestConcurrency:  cfg.IngestConcurrency,
	})

	var metrics *observability.Metrics
	if cfg.MetricsEnabled {
		metrics = observability.Init(log)
	}

	dbs, err := OpenDB(log, cfg, cfg.AutoMigrate)
	if err != nil {
		return nil, err
	}

	clients, err := wireClients(ctx, log, cfg, metrics)
	if err != nil {
		_ = dbs.Close()
		return nil, err
	}

	reposet := wireRepos(dbs.DB(), log)
	serviceset := wireServices(dbs.DB(), log, cfg, reposet, clients, metrics)
	handlerset := wireHandlers(dbs.DB(), log, serviceset)
	middleware := wireMiddleware(log, serviceset)
	router := wireRouter(log, cfg, metrics, handlerset, middleware)

	return &App{
		Log:          log,
		DB:           dbs,
		Router:       router,
		Cfg:          cfg,
		Metrics:      metrics,
		Clients:      clients,
		Repos:        reposet,
		Services:     serviceset,
		otelShutdown: otelShutdown,
	}, nil
}

// Run serves HTTP until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	if a == nil || a.Router == nil {
		return fmt.Errorf("app not initialized")
	}
	a.Log.Info("HTTP server listening", "addr", a.Cfg.Addr())
	srv := &httpserver.Server{Engine: a.Router}
	return srv.Run(ctx, a.Cfg.Addr())
}

func (a *App) Close() {
	if a == nil {
		return
	}
	a.Clients.Close()
	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			a.Log.Warn("db close failed", "error", err)
		}
	}
	if a.otelShutdown != nil {
		if err := a.otelShutdown(context.Background()); err != nil {
			a.Log.Warn("otel shutdown failed", "error", err)
		}
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
