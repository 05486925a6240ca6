package proptest

import (
	"slices"

	"pokesearch/internal/catalog"
	"pokesearch/internal/search"

	"pgregory.net/rapid"
)

type StateTracker struct {
	idToKey map[int]string
	keyToID map[string]int
}

func newStateTracker() *StateTracker {
	return &StateTracker{
		idToKey: make(map[int]string),
		keyToID: make(map[string]int),
	}
}

func (s *StateTracker) Add(e catalog.Entry) error {
	key := search.Normalize(e.Name)
	if _, exists := s.keyToID[key]; exists {
		return catalog.ErrAlreadyExists
	}
	if _, exists := s.idToKey[e.ID]; exists {
		return catalog.ErrAlreadyExists
	}
	s.idToKey[e.ID] = key
	s.keyToID[key] = e.ID
	return nil
}

func (s *StateTracker) Remove(name string) error {
	key := search.Normalize(name)
	id, ok := s.keyToID[key]
	if !ok {
		return catalog.ErrNotFound
	}
	delete(s.keyToID, key)
	delete(s.idToKey, id)
	return nil
}

func (s *StateTracker) Exists(name string) bool {
	_, ok := s.keyToID[search.Normalize(name)]
	return ok
}

func (s *StateTracker) Names() []string {
	names := make([]string, 0, len(s.keyToID))
	for key := range s.keyToID {
		names = append(names, key)
	}
	slices.Sort(names)
	return names
}

func (s *StateTracker) Count() int {
	return len(s.keyToID)
}

type CheckedCatalog struct {
	real  catalog.Catalog
	model *StateTracker
	t     *rapid.T
}

func NewCheckedCatalog(t *rapid.T, cat catalog.Catalog) *CheckedCatalog {
	return &CheckedCatalog{
		real:  cat,
		model: newStateTracker(),
		t:     t,
	}
}

func (c *CheckedCatalog) Model() *StateTracker {
	return c.model
}

func (c *CheckedCatalog) Add(e catalog.Entry) error {
	realErr := c.real.Add(e)
	modelErr := c.model.Add(e)
	if (realErr == nil) != (modelErr == nil) {
		c.t.Fatalf("Add divergence: real=%v model=%v", realErr, modelErr)
	}
	verifyStructuralInvariants(c.t, c.real)
	return realErr
}

func (c *CheckedCatalog) Remove(name string) error {
	realErr := c.real.Remove(name)
	modelErr := c.model.Remove(name)
	if (realErr == nil) != (modelErr == nil) {
		c.t.Fatalf("Remove divergence: real=%v model=%v", realErr, modelErr)
	}
	verifyStructuralInvariants(c.t, c.real)
	return realErr
}

func (c *CheckedCatalog) Get(name string) (catalog.Entry, error) {
	realEntry, realErr := c.real.Get(name)
	modelExists := c.model.Exists(name)
	if (realErr == nil) != modelExists {
		c.t.Fatalf("Get divergence: real err=%v model exists=%v", realErr, modelExists)
	}
	return realEntry, realErr
}

func (c *CheckedCatalog) List() []catalog.Entry {
	realList := c.real.List()
	if len(realList) != c.model.Count() {
		c.t.Fatalf("List divergence: real=%d entries model=%d", len(realList), c.model.Count())
	}
	verifyStructuralInvariants(c.t, c.real)
	return realList
}
