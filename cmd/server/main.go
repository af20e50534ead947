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

	"github.com/spf13/pflag"
	"github.com/thebartekbanach/canvas/pkg/config"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfgFile := pflag.String("config", "", "path to a YAML config file")
	pflag.Parse()

	cfg, err := config.Load(*cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "canvas: %v\n", err)
		os.Exit(1)
	}

	logger := config.NewLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("initializing image service")
	imageService, cleanup, err := InitializeImageService(ctx, cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("could not initialize image service")
	}
	defer cleanup()

	server := NewServer(cfg, logger, imageService)
	addr := fmt.Sprintf(":%d", cfg.Port)

	go func() {
		logger.WithField("addr", addr).Info("listening")
		if err := server.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Error("server stopped")
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("graceful shutdown failed")
	}
}
