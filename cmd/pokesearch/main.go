package main

import (
	"fmt"
	"os"
	"time"

	"pokesearch/cmd/pokesearch/render"
	"pokesearch/internal/config"
	"pokesearch/internal/logger"

	"github.com/alecthomas/kong"
)

type CLI struct {
	Tui      TuiCmd      `cmd:"" default:"1" help:"Interactive lookup widget"`
	Lookup   LookupCmd   `cmd:"" aliases:"l" help:"Look up a single name and print the result"`
	Serve    ServeCmd    `cmd:"" help:"Serve a fixture catalog over HTTP for local development"`
	Fixtures FixturesCmd `cmd:"" help:"Write the built-in fixture catalog to a YAML file"`
	Config   ConfigCmd   `cmd:"" help:"Show the effective configuration"`

	ConfigPath string        `name:"config" short:"c" help:"Path to config file (.yaml, .yml or .toml)"`
	BaseURL    string        `name:"base-url" env:"POKESEARCH_BASE_URL" help:"Base URL of the catalog service"`
	Timeout    time.Duration `env:"POKESEARCH_TIMEOUT" help:"Per-lookup timeout"`
	RateLimit  float64       `name:"rate-limit" help:"Maximum lookups per second (0 for unlimited)"`
	Verbose    bool          `short:"v" help:"Enable debug logging"`
	LogFile    string        `name:"log-file" help:"Write logs to this file instead of stderr"`
}

func (c *CLI) AfterApply(ctx *kong.Context) error {
	g, err := c.globals()
	if err != nil {
		return err
	}
	ctx.Bind(g)
	return nil
}

func (c *CLI) globals() (*Globals, error) {
	configPath := c.ConfigPath
	if configPath == "" {
		configPath = config.DefaultConfigPath()
	}
	configPath, err := config.ExpandPath(configPath)
	if err != nil {
		return nil, fmt.Errorf("invalid config path: %w", err)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.applyOverrides(&cfg)

	logger.SetVerbose(cfg.Verbose)
	if cfg.LogFile != "" {
		f, err := openLogFile(cfg.LogFile)
		if err != nil {
			return nil, err
		}
		logger.SetOutput(f)
	}

	return &Globals{
		Config:     cfg,
		ConfigPath: configPath,
		Out:        os.Stdout,
		Render:     render.NewLipglossRendererAuto(os.Stdout),
	}, nil
}

func (c *CLI) applyOverrides(cfg *config.Config) {
	if c.BaseURL != "" {
		cfg.BaseURL = c.BaseURL
	}
	if c.Timeout > 0 {
		cfg.Timeout = config.Duration(c.Timeout)
	}
	if c.RateLimit > 0 {
		cfg.RateLimit = c.RateLimit
	}
	if c.Verbose {
		cfg.Verbose = true
	}
	if c.LogFile != "" {
		cfg.LogFile = c.LogFile
	}
}

func main() {
	cli := CLI{}
	ctx := kong.Parse(&cli,
		kong.Name("pokesearch"),
		kong.Description("Look up Pokémon by name against a catalog service"),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
