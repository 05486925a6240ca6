package lookup

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type Result struct {
	ID            int        `json:"id" validate:"required"`
	Name          string     `json:"name" validate:"required"`
	PrimaryType   string     `json:"type"`
	SecondaryType string     `json:"secondaryType,omitempty"`
	Generation    Generation `json:"generation"`
}

func (r Result) DualTyped() bool {
	return r.SecondaryType != ""
}

func (r Result) Validate() error {
	return validate.Struct(r)
}

// Generation is an era label. The catalog sends either a number or a string.
type Generation string

func (g *Generation) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*g = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*g = Generation(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("generation must be a number or a string: %w", err)
	}
	*g = Generation(n.String())
	return nil
}

func (g Generation) MarshalJSON() ([]byte, error) {
	if n, err := strconv.Atoi(string(g)); err == nil {
		return []byte(strconv.Itoa(n)), nil
	}
	return json.Marshal(string(g))
}

func (g Generation) String() string {
	return string(g)
}
