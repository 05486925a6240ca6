package proptest

import (
	"strings"

	"pgregory.net/rapid"
)

var (
	iterDirGen    = rapid.StringMatching(`[a-z]{8}`)
	idGen         = rapid.IntRange(1, 1025)
	typeGen       = rapid.SampledFrom([]string{"Normal", "Fire", "Water", "Grass", "Electric", "Psychic", "Steel", "Fairy", "Flying"})
	generationGen = rapid.OneOf(rapid.StringMatching(`[1-9]`), rapid.SampledFrom([]string{"I", "II", "IV", "IX"}))
	paddingGen    = rapid.SampledFrom([]string{"", " ", "  ", "\t", "\n", " \t "})
)

func validNameGen() *rapid.Generator[string] {
	return rapid.StringMatching(`[A-Za-zéÉ][A-Za-zéÉ0-9.' -]{0,15}[A-Za-zéÉ0-9]`)
}

// rawQueryGen draws what a user might type: a name in mixed case with
// surrounding whitespace.
func rawQueryGen() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		name := validNameGen().Draw(t, "name")
		var b strings.Builder
		for _, r := range name {
			if rapid.Bool().Draw(t, "upper") {
				b.WriteString(strings.ToUpper(string(r)))
			} else {
				b.WriteString(strings.ToLower(string(r)))
			}
		}
		return paddingGen.Draw(t, "lead") + b.String() + paddingGen.Draw(t, "trail")
	})
}

func blankGen() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		n := rapid.IntRange(0, 4).Draw(t, "n")
		var b strings.Builder
		for i := 0; i < n; i++ {
			b.WriteString(paddingGen.Draw(t, "ws"))
		}
		return b.String()
	})
}

func submissionGen() *rapid.Generator[string] {
	return rapid.OneOf(rawQueryGen(), rawQueryGen(), rawQueryGen(), blankGen())
}

func malformedYAMLGen() *rapid.Generator[string] {
	return rapid.OneOf(
		rapid.Just("{{{{"),
		rapid.Just("- - - -"),
		rapid.Just(":::"),
		rapid.Just("[\n["),
		rapid.Just("entries: [unclosed"),
		rapid.Just("entries:\n  - id: abc\n    name: x"),
		rapid.Just("entries:\n  - {}\n"),
		rapid.Just("entries:\n  - id: 1\n    name: A\n    type: Fire\n  - id: 1\n    name: B\n    type: Fire\n"),
		rapid.Just("version: \"unmatched quote"),
		rapid.StringMatching(`[^a-zA-Z0-9\s]{10,50}`),
		rapid.Custom(func(t *rapid.T) string {
			size := rapid.IntRange(10, 100).Draw(t, "size")
			bytes := make([]byte, size)
			for i := range bytes {
				bytes[i] = byte(rapid.IntRange(0, 255).Draw(t, "byte"))
			}
			return string(bytes)
		}),
	)
}

func malformedBodyGen() *rapid.Generator[string] {
	return rapid.OneOf(
		rapid.Just("{"),
		rapid.Just("[]"),
		rapid.Just(`"pikachu"`),
		rapid.Just(`{"id":"twenty-five","name":"pikachu"}`),
		rapid.Just(`{"id":25}`),
		rapid.Just(`{"name":"pikachu"}`),
		rapid.Just(`{"id":25,"name":"pikachu","generation":true}`),
		rapid.Just("<html>502 Bad Gateway</html>"),
		rapid.StringMatching(`[a-z<>{}]{1,30}`).Filter(func(s string) bool {
			return strings.TrimSpace(s) != "" && s != "null"
		}),
	)
}
