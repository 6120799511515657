package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/orgball2608/apod-telegram-bot/internal/app"
	"github.com/orgball2608/apod-telegram-bot/pkg/logger"
	"go.uber.org/fx"
)

func main() {
	log := logger.New(logger.Opts{Env: os.Getenv("APP_ENV")})

	fxApp := fx.New(
		fx.Logger(log),
		app.Module,
	)

	if err := fxApp.Start(context.Background()); err != nil {
		log.Error("Failed to start application", "error", err)
		os.Exit(1)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	exitCode := 0
	select {
	case sig := <-fxApp.Wait():
		exitCode = sig.ExitCode
	case <-sigChan:
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := fxApp.Stop(stopCtx); err != nil {
		log.Error("Failed to stop application", "error", err)
		os.Exit(1)
	}

	os.Exit(exitCode)
}
