package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"pokesearch/internal/catalog"
	"pokesearch/internal/config"
	"pokesearch/internal/logger"
)

const shutdownTimeout = 5 * time.Second

type ServeCmd struct {
	Addr     string `default:"127.0.0.1:5000" help:"Listen address"`
	Fixtures string `short:"f" help:"YAML fixture catalog (defaults to the data directory file, then the built-in set)"`
}

func (cmd *ServeCmd) Run(g *Globals) error {
	cat, source, err := cmd.loadCatalog()
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cmd.Addr,
		Handler:           catalog.NewHandler(cat),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	fmt.Fprintf(g.Out, "Serving %d entries from %s on http://%s\n", cat.Count(), source, cmd.Addr)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()
	return srv.Shutdown(shutdownCtx)
}

// loadCatalog picks the fixture source: the --fixtures file, the file in the
// data directory if one exists, or the built-in set.
func (cmd *ServeCmd) loadCatalog() (*catalog.YAMLCatalog, string, error) {
	path := cmd.Fixtures
	if path == "" {
		if _, err := os.Stat(config.DefaultFixturesPath()); err != nil {
			cat, err := catalog.NewDefaultCatalog()
			if err != nil {
				return nil, "", fmt.Errorf("failed to load built-in fixtures: %w", err)
			}
			return cat, "built-in fixtures", nil
		}
		path = config.DefaultFixturesPath()
	}

	path, err := config.ExpandPath(path)
	if err != nil {
		return nil, "", fmt.Errorf("invalid fixtures path: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		return nil, "", fmt.Errorf("fixtures file does not exist: %s", path)
	}

	cat, err := catalog.NewYAMLCatalog(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create catalog: %w", err)
	}
	if err := cat.Load(); err != nil {
		return nil, "", fmt.Errorf("failed to load fixtures: %w", err)
	}
	return cat, config.ShortenPath(path), nil
}
