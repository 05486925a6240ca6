package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"pokesearch/internal/config"
	"pokesearch/internal/ui"
)

type ConfigCmd struct {
	Init bool `help:"Write the effective configuration to the config file"`
}

func (cmd *ConfigCmd) Run(g *Globals) error {
	if cmd.Init {
		if err := config.Save(g.Config, g.ConfigPath); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		fmt.Fprintf(g.Out, "Wrote %s\n", config.ShortenPath(g.ConfigPath))
		return nil
	}

	fmt.Fprint(g.Out, ui.RenderPanel("Configuration", configFields(g)))

	if err := g.Config.Validate(); err != nil {
		fmt.Fprintf(g.Out, "Warning: %v\n", err)
	}
	return nil
}

func configFields(g *Globals) []ui.Field {
	file := config.ShortenPath(g.ConfigPath)
	if _, err := os.Stat(g.ConfigPath); errors.Is(err, os.ErrNotExist) {
		file += " (not found, using defaults)"
	}

	rate := "unlimited"
	if g.Config.RateLimit > 0 {
		rate = strconv.FormatFloat(g.Config.RateLimit, 'g', -1, 64) + "/s"
	}

	return []ui.Field{
		{Label: "Config file", Value: file},
		{Label: "Base URL", Value: g.Config.BaseURL},
		{Label: "Timeout", Value: g.Config.Timeout.String()},
		{Label: "Rate limit", Value: rate},
		{Label: "Log file", Value: g.Config.LogFile},
		{Label: "Verbose", Value: strconv.FormatBool(g.Config.Verbose)},
	}
}
