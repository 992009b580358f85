package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/nigelbigappetite/wing-shack-arcade-sub000/internal/leaderboard"
	"github.com/nigelbigappetite/wing-shack-arcade-sub000/internal/storage"
)

var flagAPIAddr string

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Start the leaderboard HTTP service",
	Long: `Start the leaderboard API that arcade clients submit scores to.

Endpoints:
  GET  /api/leaderboard?game=<id>  - Top 10 scores for a game
  POST /api/leaderboard            - Submit a finished run
  GET  /health                     - Liveness check

If --leaderboard-key is set (or WINGSHACK_LEADERBOARD_KEY), clients must
send it in the X-Api-Key header.

Examples:
  arcade api
  arcade api --addr :9090 --db ./leaderboard.db
  arcade api --leaderboard-key s3cret`,
	RunE: runAPI,
}

func init() {
	apiCmd.Flags().StringVar(&flagAPIAddr, "addr", ":8080", "HTTP listen address (host:port)")
}

func runAPI(_ *cobra.Command, _ []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade-api",
	})

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}

	apiKey := flagLBKey
	if apiKey == "" {
		apiKey = os.Getenv("WINGSHACK_LEADERBOARD_KEY")
	}

	srv := leaderboard.NewServer(store, apiKey, logger)
	httpSrv := &http.Server{
		Addr:              flagAPIAddr,
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("leaderboard API listening", "addr", flagAPIAddr, "auth", apiKey != "")
		serveErr <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		return multierr.Append(err, store.Close())
	case <-done:
	}

	logger.Info("shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var result error
	if err := httpSrv.Shutdown(ctx); err != nil {
		result = multierr.Append(result, err)
	}
	if err := <-serveErr; err != nil && !errors.Is(err, http.ErrServerClosed) {
		result = multierr.Append(result, err)
	}
	return multierr.Append(result, store.Close())
}
