// Package main PRD Coach API 服务入口
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"prd-coach-api/internal/config"
	einoobs "prd-coach-api/internal/observability/eino"
	"prd-coach-api/internal/wire"
	"prd-coach-api/pkg/logger"
	"prd-coach-api/pkg/tracer"
)

// Version 版本信息，构建时注入
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	// 加载 .env 文件（如果存在）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.Observability.Logging.Level, cfg.Observability.Logging.Format)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 缺少上游凭证时拒绝启动
	if err := cfg.Validate(); err != nil {
		logger.Fatal(ctx, "invalid configuration", err)
	}

	if cfg.App.Version == "" {
		cfg.App.Version = Version
	}
	logger.Info(ctx, "starting prd-coach-api",
		"version", Version,
		"build_time", BuildTime,
		"env", cfg.App.Env,
		"model", cfg.LLM.Model,
	)

	shutdownTracer, err := tracer.Init(ctx, tracer.Config{
		ServiceName:    cfg.App.Name,
		ServiceVersion: cfg.App.Version,
		Endpoint:       cfg.Observability.Tracing.Endpoint,
		SampleRate:     cfg.Observability.Tracing.SampleRate,
		Enabled:        cfg.Observability.Tracing.Enabled,
		Insecure:       cfg.Observability.Tracing.Insecure,
	})
	if err != nil {
		logger.Fatal(ctx, "failed to init tracer", err)
	}
	einoobs.Init()

	app, cleanupApp, err := wire.InitializeApp(ctx, cfg)
	if err != nil {
		logger.Fatal(ctx, "failed to initialize app", err)
	}
	defer cleanupApp()

	addr := cfg.Server.HTTP.Addr()
	srv := &http.Server{
		Addr:         addr,
		Handler:      app.Engine(),
		ReadTimeout:  cfg.Server.HTTP.ReadTimeout,
		WriteTimeout: cfg.Server.HTTP.WriteTimeout,
		IdleTimeout:  cfg.Server.HTTP.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info(gctx, "http server starting", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info(context.Background(), "shutting down server...")

		timeout := cfg.Server.HTTP.ShutdownTimeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error(shutdownCtx, "server forced to shutdown", err)
		}
		if err := shutdownTracer(shutdownCtx); err != nil {
			logger.Error(shutdownCtx, "failed to shutdown tracer", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error(context.Background(), "http server error", err)
		cleanupApp()
		os.Exit(1)
	}
	logger.Info(context.Background(), "server exited")
}
