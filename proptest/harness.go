package proptest

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"pokesearch/internal/catalog"
	"pokesearch/internal/logger"
	"pokesearch/internal/search"

	"pgregory.net/rapid"
)

const (
	minEntries        = 0
	maxEntries        = 20
	typicalMinEntries = 1
	typicalMaxEntries = 10
)

type EntryGenOpt func(*entryGenConfig)

type entryGenConfig struct {
	name *string
	id   *int
}

func WithName(name string) EntryGenOpt {
	return func(c *entryGenConfig) {
		c.name = &name
	}
}

func WithID(id int) EntryGenOpt {
	return func(c *entryGenConfig) {
		c.id = &id
	}
}

func GenEntry(t *rapid.T, opts ...EntryGenOpt) catalog.Entry {
	cfg := &entryGenConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	name := validNameGen().Draw(t, "name")
	if cfg.name != nil {
		name = *cfg.name
	}
	id := idGen.Draw(t, "id")
	if cfg.id != nil {
		id = *cfg.id
	}

	e := catalog.NewEntry(id, name, typeGen.Draw(t, "type"))
	if rapid.Bool().Draw(t, "dualTyped") {
		secondary := typeGen.Filter(func(s string) bool { return s != e.Type }).Draw(t, "secondaryType")
		e = e.WithSecondaryType(secondary)
	}
	return e.WithGeneration(generationGen.Draw(t, "generation"))
}

type Harness struct {
	T   *rapid.T
	Dir string
}

func (h *Harness) GenEntry(opts ...EntryGenOpt) catalog.Entry {
	return GenEntry(h.T, opts...)
}

type CatalogHarness struct {
	Harness
	Catalog *catalog.YAMLCatalog
	Path    string
}

func (h *CatalogHarness) MustAddEntry(opts ...EntryGenOpt) catalog.Entry {
	e := h.GenEntry(opts...)
	if err := h.Catalog.Add(e); err != nil {
		h.T.Fatalf("failed to add entry: %v", err)
	}
	return e
}

// AddEntries adds a random number of generated entries, skipping ones that
// collide on name or id.
func (h *CatalogHarness) AddEntries(minCount, maxCount int) []catalog.Entry {
	var added []catalog.Entry
	n := rapid.IntRange(minCount, maxCount).Draw(h.T, "numEntries")
	for i := 0; i < n; i++ {
		e := h.GenEntry()
		if err := h.Catalog.Add(e); err == nil {
			added = append(added, e)
		}
	}
	return added
}

type ControllerHarness struct {
	Harness
	Fetcher *ScriptedFetcher
	Ctrl    *search.Controller
}

func silenceLogger(t *testing.T) {
	logger.SetOutput(io.Discard)
	t.Cleanup(func() { logger.SetOutput(os.Stderr) })
}

func RunWithCatalog(t *testing.T, fn func(h *CatalogHarness)) {
	tempDir := t.TempDir()
	rapid.Check(t, func(rt *rapid.T) {
		iterDir := filepath.Join(tempDir, iterDirGen.Draw(rt, "iterDir"))
		if err := os.MkdirAll(iterDir, 0o755); err != nil {
			rt.Fatalf("failed to create iter dir: %v", err)
		}

		path := filepath.Join(iterDir, "fixtures.yaml")
		cat, err := catalog.NewYAMLCatalog(path)
		if err != nil {
			rt.Fatalf("failed to create catalog: %v", err)
		}

		fn(&CatalogHarness{
			Harness: Harness{T: rt, Dir: iterDir},
			Catalog: cat,
			Path:    path,
		})
	})
}

func RunWithController(t *testing.T, fn func(h *ControllerHarness)) {
	silenceLogger(t)
	rapid.Check(t, func(rt *rapid.T) {
		f := NewScriptedFetcher(rt)
		fn(&ControllerHarness{
			Harness: Harness{T: rt},
			Fetcher: f,
			Ctrl:    search.NewController(f),
		})
	})
}

func RunBasic(t *testing.T, fn func(h *Harness)) {
	rapid.Check(t, func(rt *rapid.T) {
		fn(&Harness{T: rt})
	})
}
