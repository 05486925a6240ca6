package render

import "pokesearch/internal/search"

const (
	Heading  = "🔍 Pokémon Search"
	IdleHint = "Type a name and press Enter to search."
)

type Renderer interface {
	RenderHeading() string
	RenderState(state search.State) string
}
