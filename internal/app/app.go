package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ppiankov/benkhawiya/internal/cache"
	"github.com/ppiankov/benkhawiya/internal/council"
	httpserver "github.com/ppiankov/benkhawiya/internal/http"
	httpH "github.com/ppiankov/benkhawiya/internal/http/handlers"
	"github.com/ppiankov/benkhawiya/internal/model"
	"github.com/ppiankov/benkhawiya/internal/observability"
	"github.com/ppiankov/benkhawiya/internal/platform/logger"
	"github.com/ppiankov/benkhawiya/internal/worker"
)

type App struct {
	Log       *logger.Logger
	Cfg       model.Config
	Responder *council.Responder
	Cache     cache.Cache
	Limiter   *worker.Limiter
	Server    *httpserver.Server

	shutdownTracing func(context.Context) error
}

func New(ctx context.Context, log *logger.Logger, cfg model.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	gin.SetMode(cfg.Server.Mode)

	responder, err := NewResponder(cfg)
	if err != nil {
		return nil, err
	}

	var memo cache.Cache
	if cfg.Cache.Enabled {
		memo = cache.NewMemoryCache(cfg.Cache.TTL, cfg.Cache.CleanupInterval)
	}

	var limiter *worker.Limiter
	if cfg.RateLimit.Enabled {
		limiter = worker.NewLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, cfg.RateLimit.IdleTTL)
	}

	shutdownTracing := observability.InitTracing(ctx, log, cfg.Telemetry)

	server := httpserver.NewServer(log, cfg.Server, httpserver.RouterConfig{
		Log:                log,
		CORSOrigins:        cfg.Server.CORSOrigins,
		Limiter:            limiter,
		Tracing:            cfg.Telemetry.Enabled,
		ServiceName:        cfg.Telemetry.ServiceName,
		WebHandler:         httpH.NewWebHandler(cfg.Council.MaxQuestionLength),
		APIHandler:         httpH.NewAPIHandler(),
		HealthHandler:      httpH.NewHealthHandler(),
		PrinciplesHandler:  httpH.NewPrinciplesHandler(),
		CouncilHandler:     httpH.NewCouncilHandler(log, responder, memo, cfg.Cache.TTL),
		MathematicsHandler: httpH.NewMathematicsHandler(responder, memo, cfg.Cache.TTL),
	})

	log.Info("app initialized",
		"addr", server.Addr(),
		"cache", cfg.Cache.Enabled,
		"rate_limit", cfg.RateLimit.Enabled,
		"telemetry", cfg.Telemetry.Enabled,
	)

	return &App{
		Log:             log,
		Cfg:             cfg,
		Responder:       responder,
		Cache:           memo,
		Limiter:         limiter,
		Server:          server,
		shutdownTracing: shutdownTracing,
	}, nil
}

// NewResponder builds the council responder from config
func NewResponder(cfg model.Config) (*council.Responder, error) {
	opts, err := council.OptionsFromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("council options: %w", err)
	}
	responder, err := council.NewResponder(opts)
	if err != nil {
		return nil, fmt.Errorf("init council: %w", err)
	}
	return responder, nil
}

// Run serves HTTP until ctx is cancelled
func (a *App) Run(ctx context.Context) error {
	if a == nil || a.Server == nil {
		return fmt.Errorf("app not initialized")
	}
	return a.Server.Run(ctx)
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.shutdownTracing != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := a.shutdownTracing(ctx); err != nil {
			a.Log.Warn("tracing shutdown failed", "error", err)
		}
		cancel()
		a.shutdownTracing = nil
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
