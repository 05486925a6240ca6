package search_test

import (
	"testing"

	"pokesearch/internal/search"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	t.Run("lower-cases and trims", func(t *testing.T) {
		assert.Equal(t, "pikachu", search.Normalize("  PikaChu \t\n"))
	})

	t.Run("keeps inner whitespace", func(t *testing.T) {
		assert.Equal(t, "mr. mime", search.Normalize(" Mr. Mime "))
	})

	t.Run("whitespace-only becomes empty", func(t *testing.T) {
		assert.Equal(t, "", search.Normalize(" \t \n"))
	})
}

func TestNewQuery(t *testing.T) {
	t.Run("valid input", func(t *testing.T) {
		q, err := search.NewQuery("Pikachu ")

		require.NoError(t, err)
		assert.Equal(t, search.Query("pikachu"), q)
	})

	t.Run("blank input returns ErrEmptyQuery", func(t *testing.T) {
		for _, raw := range []string{"", " ", "\t\n", " "} {
			_, err := search.NewQuery(raw)
			assert.ErrorIs(t, err, search.ErrEmptyQuery, "input %q", raw)
		}
	})
}
