package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"phonekart/internal/config"
	"phonekart/internal/logger"
	"phonekart/internal/metrics"
	"phonekart/internal/notify"
	"phonekart/internal/storefront"

	"go.uber.org/zap"
)

func main() {
	logPath := flag.String("log", filepath.Join(os.TempDir(), "phonekart.log"), "file receiving structured logs")
	flag.Parse()

	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv, *logPath)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stats := &metrics.BackendStats{}
	rec := notify.NewRecorder()

	app, closeStore, err := storefront.Bootstrap(ctx, cfg, stats, rec)
	if err != nil {
		logger.L().Fatal("cannot start storefront", zap.Error(err))
	}
	defer closeStore()

	sh := newShell(ctx, app, rec, stats, os.Stdout)
	if err := sh.run(os.Stdin); err != nil {
		logger.L().Error("shell stopped", zap.Error(err))
	}
}
