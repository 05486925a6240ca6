package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"pokesearch/internal/lookup"
	"pokesearch/internal/search"
	"pokesearch/internal/ui"

	"github.com/charmbracelet/huh"
)

var errLookupFailed = errors.New("lookup failed")

type LookupCmd struct {
	Name string `arg:"" optional:"" help:"Name to look up (prompts when omitted)"`
	JSON bool   `help:"Output the settled state as JSON"`
}

func (cmd *LookupCmd) Run(g *Globals) error {
	name := cmd.Name
	if strings.TrimSpace(name) == "" {
		prompt := g.Prompt
		if prompt == nil {
			prompt = promptName
		}
		var err error
		name, err = prompt()
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		if err != nil {
			return err
		}
	}

	f, err := g.fetcher()
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	state := search.NewController(f).Search(ctx, name)

	if cmd.JSON {
		if err := writeStateJSON(g.Out, state); err != nil {
			return err
		}
	} else {
		fmt.Fprint(g.Out, g.Render.RenderState(state))
	}

	if state.Kind == search.Failed {
		return errLookupFailed
	}
	return nil
}

func validatePromptName(name string) error {
	if _, err := search.NewQuery(name); errors.Is(err, search.ErrEmptyQuery) {
		return errors.New("Name cannot be empty")
	}
	return nil
}

func promptName() (string, error) {
	var name string
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Placeholder(ui.Placeholder).
				Value(&name).
				Validate(validatePromptName),
		),
	).WithTheme(ui.PromptTheme()).Run()
	return name, err
}

type stateOutput struct {
	Status  string         `json:"status"`
	Query   string         `json:"query,omitempty"`
	Result  *lookup.Result `json:"result,omitempty"`
	Message string         `json:"message,omitempty"`
}

func writeStateJSON(w io.Writer, state search.State) error {
	out := stateOutput{
		Status:  state.Kind.String(),
		Query:   state.Query.String(),
		Message: state.Message,
	}
	if state.Kind == search.Success {
		res := state.Result
		out.Result = &res
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
