package reportserver

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"morehop/internal/aggregate"
	"morehop/internal/dataset"
)

// Config captures the settings for serving a dataset report.
type Config struct {
	Addr          string
	Title         string
	Source        string
	Top           int
	Summary       *aggregate.Summary
	Example       *dataset.Record
	DBPath        string
	AssetsBaseURL string
	Logger        *slog.Logger
}

// Serve starts an HTTP server that hosts the report and data endpoints
// until ctx is cancelled.
func Serve(ctx context.Context, cfg Config) error {
	if ctx == nil {
		return errors.New("reportserver: context is nil")
	}
	if cfg.Addr == "" {
		return errors.New("reportserver: addr is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()
	if cfg.Logger != nil {
		cfg.Logger.Info("serving report", "addr", cfg.Addr)
	}

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
		err := <-errCh
		if errors.Is(err, http.ErrServerClosed) || err == nil {
			return nil
		}
		return err
	}
}
