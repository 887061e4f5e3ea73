package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// punctReplacer removes the narrow punctuation set stripped during
// normalization. Only these three characters; this is not a general
// punctuation filter.
var punctReplacer = strings.NewReplacer(
	",", "",
	"?", "",
	"!", "",
)

// Normalize canonicalizes free text into a lowercase comparison token.
// The steps run in order, each on the previous step's output:
// canonical decomposition, combining-mark removal, lowercasing,
// space-to-dot substitution, and removal of "," "?" "!".
//
// The result is intentionally loose ("Mr. Robot" and "mr robot" collide)
// and is used only for comparison, never for display. Applying Normalize
// to its own output returns the input unchanged.
func Normalize(text string) string {
	decomposed := norm.NFD.String(text)

	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}

	out := strings.ToLower(b.String())
	out = strings.ReplaceAll(out, " ", ".")
	return punctReplacer.Replace(out)
}
