// Package main runs the simulation HTTP service: simulation and streak
// endpoints, run listing, Prometheus metrics and a websocket trade stream.
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/njvijay-mck/trade-expectancy-simulation/internal/logger"
	"github.com/njvijay-mck/trade-expectancy-simulation/internal/server"
	"github.com/njvijay-mck/trade-expectancy-simulation/internal/storage/memory"
)

func main() {
	// Load .env file if exists
	_ = godotenv.Load()

	// Parse flags (env vars as defaults)
	addr := flag.String("addr", envOr("SIM_ADDR", ":8080"), "HTTP listen address")
	logLevel := flag.String("log-level", envOr("SIM_LOG_LEVEL", "info"), "Log level: trace, debug, info, warn, error")
	logPretty := flag.Bool("log-pretty", os.Getenv("SIM_LOG_PRETTY") == "true", "Human-readable log output")
	shutdownTimeout := flag.Duration("shutdown-timeout", 10*time.Second, "Graceful shutdown timeout")
	flag.Parse()

	log := logger.New(logger.Config{Level: *logLevel, Pretty: *logPretty})

	srv := server.New(server.Options{
		Store: memory.NewRunStore(),
		Log:   log,
	})

	httpSrv := &http.Server{
		Addr:              *addr,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", *addr).Msg("listening")
		errCh <- httpSrv.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info().Str("signal", sig.String()).Msg("shutting down")

		ctx, cancel := context.WithTimeout(context.Background(), *shutdownTimeout)
		defer cancel()

		done := make(chan struct{})
		go func() {
			if err := httpSrv.Shutdown(ctx); err != nil {
				log.Error().Err(err).Msg("shutdown error")
			}
			close(done)
		}()

		// A second signal forces immediate exit.
		select {
		case <-done:
		case sig := <-sigCh:
			log.Warn().Str("signal", sig.String()).Msg("second signal, forcing exit")
			os.Exit(1)
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}

	log.Info().Msg("shutdown complete")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
