package catalog

import "errors"

var (
	ErrNotFound      = errors.New("entry not found")
	ErrAlreadyExists = errors.New("entry already exists")
)

// Catalog is the fixture store behind the development catalog server.
// Names are matched case-insensitively.
type Catalog interface {
	Add(e Entry) error
	Get(name string) (Entry, error)
	Remove(name string) error
	List() []Entry
	Count() int
	Save() error
	Load() error
}
