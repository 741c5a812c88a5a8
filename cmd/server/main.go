// @title softspace API
// @version 1.0
// @description 情绪主题创作社区的会话服务
// @BasePath /
// @securityDefinitions.apikey SessionToken
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/d60-Lab/softspace/config"
	"github.com/d60-Lab/softspace/internal/advisory"
	"github.com/d60-Lab/softspace/internal/api"
	"github.com/d60-Lab/softspace/internal/api/handler"
	"github.com/d60-Lab/softspace/internal/api/middleware"
	"github.com/d60-Lab/softspace/internal/app"
	"github.com/d60-Lab/softspace/internal/repository"
	"github.com/d60-Lab/softspace/internal/service"
	"github.com/d60-Lab/softspace/pkg/database"
	"github.com/d60-Lab/softspace/pkg/logger"
	"github.com/d60-Lab/softspace/pkg/tracing"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	if cfg.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.Sentry.DSN, Environment: cfg.Sentry.Environment}); err != nil {
			logger.Warn("sentry init failed", zap.Error(err))
		}
		defer sentry.Flush(2 * time.Second)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Init(ctx, cfg.Tracing)
	if err != nil {
		logger.Fatal("tracing init failed", zap.Error(err))
	}

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Fatal("database init failed", zap.Error(err))
	}
	rdb, err := database.InitRedis(ctx, cfg)
	if err != nil {
		logger.Warn("redis unavailable, pulse cache disabled", zap.Error(err))
	}

	adv, err := advisory.New(ctx, cfg.Advisory)
	if err != nil {
		logger.Warn("advisory client init failed, using fallback content", zap.Error(err))
		adv = advisory.NewService(nil)
	}

	activityRepo := repository.NewActivityRepository(db)
	pulse := service.NewPulseService(activityRepo, rdb, cfg.Redis.PulseTTL)
	relay := service.NewActivityRelay(activityRepo, 4096)
	relay.OnWritten(pulse.Invalidate)
	stopRelay := relay.Start(2)

	registry := app.NewRegistry(app.Deps{
		Advisor:         adv,
		Pulse:           pulse,
		Activity:        relay,
		AdvisoryTimeout: cfg.Advisory.Timeout,
	}, cfg.Session.IdleTTL)
	stopJanitor := registry.StartJanitor(time.Minute)

	secret := cfg.Session.Secret
	if secret == "" {
		secret = uuid.NewString() + uuid.NewString()
		logger.Info("no session secret configured, tokens are valid until restart")
	}
	tokens := middleware.NewTokenIssuer(secret, cfg.Session.TTL)
	limiter := middleware.NewKeyedLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)

	if err := handler.RegisterValidators(); err != nil {
		logger.Fatal("register validators failed", zap.Error(err))
	}
	h := handler.New(registry, tokens, adv, handler.WithPulse(pulse))
	engine := api.NewRouter(cfg, api.Deps{Handler: h, Registry: registry, Tokens: tokens, Limiter: limiter})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	go func() {
		logger.Info("server started", zap.String("addr", srv.Addr), zap.Bool("advisory", adv.Enabled()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("listen failed", zap.Error(err))
		}
	}()

	go func() {
		ticker := time.NewTicker(10 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				limiter.Prune(10 * time.Minute)
			case <-ctx.Done():
				return
			}
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stopJanitor()
	// 先关闭会话，结束 SSE 长连接
	registry.Close()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
	if err := stopRelay(shutdownCtx); err != nil {
		logger.Warn("activity relay did not drain", zap.Error(err), zap.Int("pending", relay.QueueLen()))
	}
	if rdb != nil {
		_ = rdb.Close()
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Warn("tracing shutdown", zap.Error(err))
	}
}
