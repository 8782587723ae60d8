package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"planhub/internal/config"
	"planhub/internal/server"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load .env if present; the environment wins otherwise
	if err := godotenv.Load(); err == nil {
		logrus.Info(".env file loaded")
	}

	cfg := config.New()

	srv, err := server.New(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create server")
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Run()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logrus.WithError(err).Fatal("server error")
		}
	case sig := <-quit:
		logrus.WithField("signal", sig.String()).Info("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logrus.WithError(err).Error("shutdown failed")
		}
	}
}
