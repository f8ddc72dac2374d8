package caser

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultSeparators is the separator set recognized by Tokenize. Separator
// runes are explicit word boundaries; they are consumed and never appear in
// any Word.
const DefaultSeparators = " -_.,/"

// Config controls tokenization. The zero value uses DefaultSeparators.
//
// Configuration is always passed explicitly; the package holds no process-wide
// tokenizer state.
type Config struct {
	// Separators is the set of runes treated as explicit word boundaries.
	// Empty means DefaultSeparators.
	Separators string
}

// runeClass classifies the previously scanned rune so boundary rules can be
// decided with a single lookbehind.
type runeClass int

const (
	classNone runeClass = iota
	classLower
	classUpper
	classDigit
)

// Tokenize splits input into a WordSequence using DefaultSeparators.
//
// Tokenization is total: any string (including empty) is accepted and no
// error path exists. An input containing only separators yields an empty
// sequence; an input with no boundaries at all yields a single word. No
// zero-length words are ever produced.
func Tokenize(input string) WordSequence {
	return TokenizeWithConfig(input, Config{})
}

// TokenizeWithConfig splits input into a WordSequence using the separator set
// from cfg. Boundary rules beyond explicit separators (casing transitions,
// digit transitions, acronym runs) are fixed and not configurable.
func TokenizeWithConfig(input string, cfg Config) WordSequence {
	seps := cfg.Separators
	if seps == "" {
		seps = DefaultSeparators
	}

	var (
		words    WordSequence
		current  strings.Builder
		prev     runeClass
		lastRune rune
		attached bool
	)

	// flush appends the pending word, if any, and records whether the word
	// that follows is attached to it (split only by a digit transition).
	flush := func(nextAttached bool) {
		if current.Len() > 0 {
			words = append(words, Word{Text: current.String(), attached: attached})
			current.Reset()
		}
		attached = nextAttached
	}

	for _, r := range input {
		switch {
		case strings.ContainsRune(seps, r):
			flush(false)
			prev = classNone

		case unicode.IsUpper(r):
			if prev == classLower || prev == classDigit {
				flush(prev == classDigit)
			}
			current.WriteRune(r)
			lastRune = r
			prev = classUpper

		case unicode.IsLetter(r):
			switch prev {
			case classUpper:
				// End of an uppercase run: its last letter begins this word
				// (HTTPServer -> HTTP, Server). A single uppercase letter is
				// just the word's own initial.
				if text := current.String(); len(text) > utf8.RuneLen(lastRune) {
					cut := len(text) - utf8.RuneLen(lastRune)
					words = append(words, Word{Text: text[:cut], attached: attached})
					current.Reset()
					current.WriteString(text[cut:])
					attached = false
				}
			case classDigit:
				flush(true)
			}
			current.WriteRune(r)
			lastRune = r
			prev = classLower

		case unicode.IsDigit(r):
			if prev == classLower || prev == classUpper {
				flush(true)
			}
			current.WriteRune(r)
			lastRune = r
			prev = classDigit

		default:
			// Runes that are neither letters, digits, nor separators are
			// dropped and create no boundary: "b&rew" scans as "brew".
		}
	}
	flush(false)

	return words
}
