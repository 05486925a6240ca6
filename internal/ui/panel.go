package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	titleSymbol  = "◆"
	fieldSymbol  = "◇"
	separator    = " · "
	borderTop    = "┌"
	borderSide   = "│"
	borderBottom = "└"
	unsetValue   = "(unset)"
)

type Field struct {
	Label string
	Value string
}

func borderStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
}

// RenderPanel draws a titled box of label/value rows. Empty values show as unset.
func RenderPanel(title string, fields []Field) string {
	var b strings.Builder

	border := borderStyle()

	b.WriteString(border.Render(borderTop))
	b.WriteString(" ")
	b.WriteString(titleSymbol)
	b.WriteString(" ")
	b.WriteString(title)
	b.WriteString("\n")

	b.WriteString(border.Render(borderSide))
	b.WriteString("\n")

	for _, f := range fields {
		b.WriteString(border.Render(borderSide))
		b.WriteString(" ")
		b.WriteString(renderField(f))
		b.WriteString("\n")
	}

	b.WriteString(border.Render(borderBottom))
	b.WriteString("\n")

	return b.String()
}

func renderField(f Field) string {
	value := f.Value
	if value == "" {
		value = unsetValue
	}
	return fieldSymbol + " " + f.Label + separator + value
}
