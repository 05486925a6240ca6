package main

import (
	"errors"
	"fmt"
	"os"

	"pokesearch/internal/catalog"
	"pokesearch/internal/config"
)

type FixturesCmd struct {
	Path  string `arg:"" optional:"" help:"Destination file (defaults to the data directory)"`
	Force bool   `help:"Overwrite an existing file"`
}

func (cmd *FixturesCmd) Run(g *Globals) error {
	path := cmd.Path
	if path == "" {
		path = config.DefaultFixturesPath()
	}
	path, err := config.ExpandPath(path)
	if err != nil {
		return fmt.Errorf("invalid path: %w", err)
	}

	if _, err := os.Stat(path); err == nil && !cmd.Force {
		return fmt.Errorf("file already exists: %s (use --force to overwrite)", path)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	builtin, err := catalog.NewDefaultCatalog()
	if err != nil {
		return fmt.Errorf("failed to load built-in fixtures: %w", err)
	}

	out, err := catalog.NewYAMLCatalog(path)
	if err != nil {
		return fmt.Errorf("failed to create catalog: %w", err)
	}
	for _, e := range builtin.List() {
		if err := out.Add(e); err != nil {
			return fmt.Errorf("failed to add entry %q: %w", e.Name, err)
		}
	}
	if err := out.Save(); err != nil {
		return fmt.Errorf("failed to save catalog: %w", err)
	}

	fmt.Fprintf(g.Out, "Wrote %d entries to %s\n", out.Count(), config.ShortenPath(path))
	return nil
}
