package render

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"pokesearch/internal/lookup"
	"pokesearch/internal/search"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
)

type LipglossRenderer struct {
	width int
	r     *lipgloss.Renderer

	headingStyle lipgloss.Style
	hintStyle    lipgloss.Style
	titleStyle   lipgloss.Style
	labelStyle   lipgloss.Style
	errorStyle   lipgloss.Style
}

func NewLipglossRenderer(w io.Writer, width int) *LipglossRenderer {
	r := lipgloss.NewRenderer(w)
	return &LipglossRenderer{
		width:        width,
		r:            r,
		headingStyle: r.NewStyle().Bold(true),
		hintStyle:    r.NewStyle().Faint(true),
		titleStyle:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		labelStyle:   r.NewStyle().Bold(true),
		errorStyle:   r.NewStyle().Foreground(lipgloss.Color("1")),
	}
}

func NewLipglossRendererAuto(w io.Writer) *LipglossRenderer {
	width := 80
	if f, ok := w.(*os.File); ok {
		if tw, _, err := term.GetSize(f.Fd()); err == nil && tw > 0 {
			width = tw
		}
	}
	return NewLipglossRenderer(w, width)
}

func (r *LipglossRenderer) Width() int {
	return r.width
}

func (r *LipglossRenderer) RenderHeading() string {
	return r.headingStyle.Render(Heading) + "\n"
}

func (r *LipglossRenderer) RenderState(state search.State) string {
	switch state.Kind {
	case search.Loading:
		return r.hintStyle.Render("Loading...") + "\n"
	case search.Success:
		return r.renderResult(state.Result)
	case search.NotFound:
		return r.hintStyle.Render(fmt.Sprintf("No Pokémon found for %q", state.Query.String())) + "\n"
	case search.Failed:
		return r.labelStyle.Render("Error:") + " " + r.errorStyle.Render(state.Message) + "\n"
	default:
		return r.hintStyle.Render(IdleHint) + "\n"
	}
}

func (r *LipglossRenderer) renderResult(res lookup.Result) string {
	typing := res.PrimaryType
	if res.DualTyped() {
		typing += " / " + res.SecondaryType
	}

	var sb strings.Builder
	sb.WriteString(r.titleStyle.Render(capitalize(res.Name)))
	sb.WriteString("\n")
	r.writeField(&sb, "ID", fmt.Sprint(res.ID))
	r.writeField(&sb, "Type", typing)
	r.writeField(&sb, "Generation", res.Generation.String())
	return sb.String()
}

func (r *LipglossRenderer) writeField(sb *strings.Builder, label, value string) {
	sb.WriteString("  ")
	sb.WriteString(r.labelStyle.Render(label + ":"))
	sb.WriteString(" ")
	sb.WriteString(value)
	sb.WriteString("\n")
}

// capitalize upper-cases the first letter of each word, like CSS capitalize.
func capitalize(name string) string {
	words := strings.Fields(name)
	for i, w := range words {
		first, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(first)) + w[size:]
	}
	return strings.Join(words, " ")
}
