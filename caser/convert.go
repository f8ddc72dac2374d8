package caser

import "fmt"

// Convert renders input under the target style. It is equivalent to
// Render(Tokenize(input), style) and, like both, is total: any input string
// produces a result and no error path exists.
func Convert(input string, style Style) string {
	return Render(Tokenize(input), style)
}

// ConvertWithOptions converts input using functional options. The conversion
// itself cannot fail; the error return only reports invalid options.
//
// Example:
//
//	out, err := caser.ConvertWithOptions("a:b:c", caser.StyleCamel,
//	    caser.WithSeparators(":"),
//	)
func ConvertWithOptions(input string, style Style, opts ...Option) (string, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return "", fmt.Errorf("caser: invalid options: %w", err)
	}

	words := TokenizeWithConfig(input, Config{Separators: cfg.separators})
	cfg.logger.Debug("tokenized identifier",
		"input", input,
		"words", len(words),
		"style", style.String())

	return Render(words, style), nil
}

// Formatter tokenizes an input once and renders it under any number of
// styles. It mirrors the shape of Convert for callers that need several
// renditions of the same identifier.
//
//	f := caser.From("brew_coffee")
//	f.Camel()  // "brewCoffee"
//	f.Pascal() // "BrewCoffee"
//	f.Kebab()  // "brew-coffee"
//
// A Formatter is immutable after creation and safe for concurrent use.
type Formatter struct {
	words WordSequence
}

// From tokenizes input with the default separator set and returns a Formatter
// over the resulting words.
func From(input string) *Formatter {
	return &Formatter{words: Tokenize(input)}
}

// FromWords returns a Formatter over an existing word sequence.
func FromWords(words WordSequence) *Formatter {
	return &Formatter{words: words}
}

// Words returns a copy of the formatter's word sequence.
func (f *Formatter) Words() WordSequence {
	out := make(WordSequence, len(f.words))
	copy(out, f.words)
	return out
}

// To renders the formatter's words under the given style.
func (f *Formatter) To(style Style) string {
	return Render(f.words, style)
}

// Snake renders snake_case.
func (f *Formatter) Snake() string { return f.To(StyleSnake) }

// ScreamingSnake renders SCREAMING_SNAKE_CASE.
func (f *Formatter) ScreamingSnake() string { return f.To(StyleScreamingSnake) }

// Kebab renders kebab-case.
func (f *Formatter) Kebab() string { return f.To(StyleKebab) }

// Camel renders camelCase.
func (f *Formatter) Camel() string { return f.To(StyleCamel) }

// Pascal renders PascalCase.
func (f *Formatter) Pascal() string { return f.To(StylePascal) }

// Train renders Train-Case.
func (f *Formatter) Train() string { return f.To(StyleTrain) }

// Flat renders flatcase.
func (f *Formatter) Flat() string { return f.To(StyleFlat) }

// Dot renders dot.case.
func (f *Formatter) Dot() string { return f.To(StyleDot) }

// Title renders Title Case.
func (f *Formatter) Title() string { return f.To(StyleTitle) }

// Lower renders lower case words separated by spaces.
func (f *Formatter) Lower() string { return f.To(StyleLower) }

// Upper renders UPPER CASE words separated by spaces.
func (f *Formatter) Upper() string { return f.To(StyleUpper) }
