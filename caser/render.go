package caser

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// wordCasing is the per-word case normalization a style applies.
type wordCasing int

const (
	casingLower wordCasing = iota
	casingUpper
	casingCapitalize
)

// separator returns the separator string the style inserts between words.
func (s Style) separator() string {
	switch s {
	case StyleSnake, StyleScreamingSnake:
		return "_"
	case StyleKebab, StyleTrain:
		return "-"
	case StyleDot:
		return "."
	case StyleTitle, StyleLower, StyleUpper:
		return " "
	case StyleCamel, StylePascal, StyleFlat:
		return ""
	default:
		return ""
	}
}

// casing returns the case normalization the style applies to the word at
// index i.
func (s Style) casing(i int) wordCasing {
	switch s {
	case StyleScreamingSnake, StyleUpper:
		return casingUpper
	case StylePascal, StyleTrain, StyleTitle:
		return casingCapitalize
	case StyleCamel:
		if i == 0 {
			return casingLower
		}
		return casingCapitalize
	case StyleSnake, StyleKebab, StyleFlat, StyleDot, StyleLower:
		return casingLower
	default:
		return casingLower
	}
}

// Render writes words out under the given style. It is a total pure function:
// an empty sequence renders to the empty string for every style, and no error
// path exists. Words attached to their predecessor (digit transitions such as
// "v2") are emitted without a separator before them.
func Render(words WordSequence, style Style) string {
	if len(words) == 0 {
		return ""
	}

	// cases.Caser carries internal state, so build one per call rather than
	// sharing a package-level instance across goroutines.
	titleCaser := cases.Title(language.English, cases.NoLower)

	size := len(words) - 1 // separators
	for _, w := range words {
		size += len(w.Text)
	}

	sep := style.separator()
	var b strings.Builder
	b.Grow(size)

	for i, w := range words {
		if i > 0 && sep != "" && !w.attached {
			b.WriteString(sep)
		}
		switch style.casing(i) {
		case casingUpper:
			b.WriteString(strings.ToUpper(w.Text))
		case casingCapitalize:
			writeCapitalized(&b, w.Text, titleCaser)
		default:
			b.WriteString(strings.ToLower(w.Text))
		}
	}

	return b.String()
}

// writeCapitalized writes word with its first letter title-cased and every
// following letter lowercased. Non-letter characters before the first letter
// pass through unchanged, so "2fa" capitalizes to "2Fa".
func writeCapitalized(b *strings.Builder, word string, titleCaser cases.Caser) {
	seen := false
	for _, r := range word {
		switch {
		case !seen && unicode.IsLetter(r):
			// Use the title caser for proper Unicode handling of digraphs
			// and special casings that unicode.ToUpper misses.
			b.WriteString(titleCaser.String(string(r)))
			seen = true
		case seen:
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
	}
}
