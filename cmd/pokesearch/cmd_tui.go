package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"pokesearch/cmd/pokesearch/render"
	"pokesearch/internal/config"
	"pokesearch/internal/logger"
	"pokesearch/internal/search"
	"pokesearch/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

type TuiCmd struct {
	NoAltScreen bool `help:"Render inline instead of using the alternate screen"`
}

func (cmd *TuiCmd) Run(g *Globals) error {
	f, err := g.fetcher()
	if err != nil {
		return err
	}

	// The terminal belongs to the UI; logs go to a file.
	logPath := g.Config.LogFile
	if logPath == "" {
		logPath = config.DefaultLogPath()
	}
	logFile, err := openLogFile(logPath)
	if err != nil {
		return err
	}
	defer logFile.Close()
	logger.SetOutput(logFile)
	defer logger.SetOutput(os.Stderr)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	ctrl := search.NewController(f)
	model := ui.NewModel(ctrl, render.NewLipglossRendererAuto(os.Stdout)).WithContext(ctx)

	var opts []tea.ProgramOption
	if !cmd.NoAltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	opts = append(opts, tea.WithContext(ctx))

	logger.Info("starting widget against %s", g.Config.BaseURL)
	_, err = tea.NewProgram(model, opts...).Run()
	if errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, tea.ErrInterrupted) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("widget failed: %w", err)
	}
	return nil
}
