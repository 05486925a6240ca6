package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"pokesearch/cmd/pokesearch/render"
	"pokesearch/internal/config"
	"pokesearch/internal/lookup"
	"pokesearch/internal/search"
)

type Globals struct {
	Config     config.Config
	ConfigPath string
	Out        io.Writer
	Render     render.Renderer
	// Fetcher overrides the HTTP client built from Config.
	Fetcher search.Fetcher
	// Prompt asks for a name when none is given on the command line.
	Prompt func() (string, error)
}

func (g *Globals) fetcher() (search.Fetcher, error) {
	if g.Fetcher != nil {
		return g.Fetcher, nil
	}
	if err := g.Config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return lookup.NewClient(g.Config.ClientOptions())
}

func openLogFile(path string) (*os.File, error) {
	path, err := config.ExpandPath(path)
	if err != nil {
		return nil, fmt.Errorf("invalid log path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, nil
}
