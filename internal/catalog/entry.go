package catalog

import (
	"errors"
	"fmt"
	"strings"

	"pokesearch/internal/lookup"
	"pokesearch/internal/search"
)

var (
	ErrEmptyName  = errors.New("entry name cannot be empty")
	ErrEmptyType  = errors.New("entry type cannot be empty")
	ErrInvalidID  = errors.New("entry id must be positive")
	ErrSameTyping = errors.New("secondary type repeats the primary type")
)

type Entry struct {
	ID            int    `yaml:"id"`
	Name          string `yaml:"name"`
	Type          string `yaml:"type"`
	SecondaryType string `yaml:"secondary_type,omitempty"`
	Generation    string `yaml:"generation"`
}

func NewEntry(id int, name, primaryType string) Entry {
	return Entry{
		ID:   id,
		Name: name,
		Type: primaryType,
	}
}

func (e Entry) WithSecondaryType(t string) Entry {
	newE := e
	newE.SecondaryType = t
	return newE
}

func (e Entry) WithGeneration(g string) Entry {
	newE := e
	newE.Generation = g
	return newE
}

// Key is the lookup key for the entry: its name, trimmed and lower-cased.
func (e Entry) Key() string {
	return search.Normalize(e.Name)
}

func (e Entry) Result() lookup.Result {
	return lookup.Result{
		ID:            e.ID,
		Name:          e.Name,
		PrimaryType:   e.Type,
		SecondaryType: e.SecondaryType,
		Generation:    lookup.Generation(e.Generation),
	}
}

func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	return nil
}

func (e *Entry) ValidateAndNormalize() error {
	if err := ValidateName(e.Name); err != nil {
		return err
	}
	if e.ID <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidID, e.ID)
	}

	e.Name = strings.TrimSpace(e.Name)
	e.Type = strings.TrimSpace(e.Type)
	e.SecondaryType = strings.TrimSpace(e.SecondaryType)
	e.Generation = strings.TrimSpace(e.Generation)

	if e.Type == "" {
		return ErrEmptyType
	}
	if strings.EqualFold(e.Type, e.SecondaryType) {
		return fmt.Errorf("%w: %s", ErrSameTyping, e.Type)
	}
	return nil
}
