package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"pokesearch/internal/search"

	"gopkg.in/yaml.v3"
)

//go:embed testdata/fixtures.yaml
var defaultFixtures []byte

type catalogFile struct {
	Version int     `yaml:"version"`
	Entries []Entry `yaml:"entries"`
}

type YAMLCatalog struct {
	path    string
	entries map[string]Entry
	byID    map[int]string
	mu      sync.RWMutex
}

// NewYAMLCatalog returns an empty catalog backed by path. An empty path gives
// an in-memory catalog that cannot be saved.
func NewYAMLCatalog(path string) (*YAMLCatalog, error) {
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
	}

	return &YAMLCatalog{
		path:    path,
		entries: make(map[string]Entry),
		byID:    make(map[int]string),
	}, nil
}

// NewDefaultCatalog returns an in-memory catalog holding the bundled fixtures.
func NewDefaultCatalog() (*YAMLCatalog, error) {
	cat, err := NewYAMLCatalog("")
	if err != nil {
		return nil, err
	}
	if err := cat.decode(defaultFixtures, "bundled fixtures"); err != nil {
		return nil, err
	}
	return cat, nil
}

func (c *YAMLCatalog) Add(e Entry) error {
	if err := e.ValidateAndNormalize(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	key := e.Key()
	if _, exists := c.entries[key]; exists {
		return fmt.Errorf("%w: name %q", ErrAlreadyExists, e.Name)
	}
	if _, exists := c.byID[e.ID]; exists {
		return fmt.Errorf("%w: id %d", ErrAlreadyExists, e.ID)
	}

	c.entries[key] = e
	c.byID[e.ID] = key
	return nil
}

func (c *YAMLCatalog) Get(name string) (Entry, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[search.Normalize(name)]
	if !ok {
		return Entry{}, ErrNotFound
	}
	return e, nil
}

func (c *YAMLCatalog) Remove(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := search.Normalize(name)
	e, ok := c.entries[key]
	if !ok {
		return ErrNotFound
	}

	delete(c.entries, key)
	delete(c.byID, e.ID)
	return nil
}

func (c *YAMLCatalog) List() []Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.listUnlocked()
}

func (c *YAMLCatalog) listUnlocked() []Entry {
	entries := make([]Entry, 0, len(c.entries))
	for _, e := range c.entries {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ID < entries[j].ID
	})
	return entries
}

func (c *YAMLCatalog) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *YAMLCatalog) Save() error {
	if c.path == "" {
		return fmt.Errorf("catalog has no backing file")
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	file := catalogFile{
		Version: 1,
		Entries: c.listUnlocked(),
	}

	data, err := yaml.Marshal(file)
	if err != nil {
		return err
	}

	tmpPath := c.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return err
	}

	return os.Rename(tmpPath, c.path)
}

func (c *YAMLCatalog) Load() error {
	if c.path == "" {
		return nil
	}

	data, err := os.ReadFile(c.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read catalog file: %w", err)
	}

	return c.decode(data, c.path)
}

func (c *YAMLCatalog) decode(data []byte, source string) error {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse catalog file %q: %w", source, err)
	}

	entries := make(map[string]Entry, len(file.Entries))
	byID := make(map[int]string, len(file.Entries))
	for i, e := range file.Entries {
		if err := e.ValidateAndNormalize(); err != nil {
			return fmt.Errorf("invalid entry %d in %q: %w", i, source, err)
		}
		key := e.Key()
		if _, dup := entries[key]; dup {
			return fmt.Errorf("invalid entry %d in %q: %w: name %q", i, source, ErrAlreadyExists, e.Name)
		}
		if _, dup := byID[e.ID]; dup {
			return fmt.Errorf("invalid entry %d in %q: %w: id %d", i, source, ErrAlreadyExists, e.ID)
		}
		entries[key] = e
		byID[e.ID] = key
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = entries
	c.byID = byID
	return nil
}
