package caser

import (
	"fmt"
	"strings"
)

// Style identifies a rendering convention. The set is closed: Render switches
// exhaustively over it, so adding a style is a compile-time-checked exercise.
type Style int

const (
	// StyleSnake renders all-lowercase words separated by underscores.
	// Example: http_server_error
	StyleSnake Style = iota

	// StyleScreamingSnake renders all-uppercase words separated by underscores.
	// Example: HTTP_SERVER_ERROR
	StyleScreamingSnake

	// StyleKebab renders all-lowercase words separated by hyphens.
	// Example: http-server-error
	StyleKebab

	// StyleCamel renders the first word lowercase and capitalizes the rest,
	// with no separator. Example: httpServerError
	StyleCamel

	// StylePascal capitalizes every word, with no separator.
	// Example: HttpServerError
	StylePascal

	// StyleTrain capitalizes every word, separated by hyphens.
	// Example: Http-Server-Error
	StyleTrain

	// StyleFlat renders all-lowercase words with no separator. Word
	// boundaries are erased by design and cannot be recovered.
	// Example: httpservererror
	StyleFlat

	// StyleDot renders all-lowercase words separated by dots.
	// Example: http.server.error
	StyleDot

	// StyleTitle capitalizes every word, separated by spaces.
	// Example: Http Server Error
	StyleTitle

	// StyleLower renders all-lowercase words separated by spaces.
	// Example: http server error
	StyleLower

	// StyleUpper renders all-uppercase words separated by spaces.
	// Example: HTTP SERVER ERROR
	StyleUpper
)

// Styles returns every supported style in declaration order.
func Styles() []Style {
	return []Style{
		StyleSnake,
		StyleScreamingSnake,
		StyleKebab,
		StyleCamel,
		StylePascal,
		StyleTrain,
		StyleFlat,
		StyleDot,
		StyleTitle,
		StyleLower,
		StyleUpper,
	}
}

// String returns the canonical name of the style.
func (s Style) String() string {
	switch s {
	case StyleSnake:
		return "snake"
	case StyleScreamingSnake:
		return "screaming_snake"
	case StyleKebab:
		return "kebab"
	case StyleCamel:
		return "camel"
	case StylePascal:
		return "pascal"
	case StyleTrain:
		return "train"
	case StyleFlat:
		return "flat"
	case StyleDot:
		return "dot"
	case StyleTitle:
		return "title"
	case StyleLower:
		return "lower"
	case StyleUpper:
		return "upper"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// PreservesBoundaries reports whether re-tokenizing the style's rendered
// output recovers the original word sequence (ignoring letter case). Only
// StyleFlat erases boundaries.
func (s Style) PreservesBoundaries() bool {
	return s != StyleFlat
}

// ParseStyle parses a style name into a Style. Matching is case-insensitive,
// hyphens are treated as underscores, and a "_case" suffix is ignored, so
// "Train-Case", "snake_case", and "SCREAMING_SNAKE" all parse.
func ParseStyle(s string) (Style, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.ReplaceAll(norm, "-", "_")
	norm = strings.ReplaceAll(norm, " ", "_")
	norm = strings.TrimSuffix(norm, "_case")

	switch norm {
	case "snake":
		return StyleSnake, nil
	case "screaming_snake", "upper_snake", "constant":
		return StyleScreamingSnake, nil
	case "kebab":
		return StyleKebab, nil
	case "camel", "lower_camel":
		return StyleCamel, nil
	case "pascal", "upper_camel":
		return StylePascal, nil
	case "train":
		return StyleTrain, nil
	case "flat":
		return StyleFlat, nil
	case "dot":
		return StyleDot, nil
	case "title":
		return StyleTitle, nil
	case "lower":
		return StyleLower, nil
	case "upper":
		return StyleUpper, nil
	default:
		return StyleSnake, fmt.Errorf("caser: unknown case style: %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler, so Style values serialize by
// canonical name in YAML and JSON documents.
func (s Style) MarshalText() ([]byte, error) {
	if !s.valid() {
		return nil, fmt.Errorf("caser: cannot marshal unknown case style %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, accepting any spelling
// that ParseStyle accepts.
func (s *Style) UnmarshalText(text []byte) error {
	parsed, err := ParseStyle(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler, emitting the canonical style name.
func (s Style) MarshalYAML() (any, error) {
	if !s.valid() {
		return nil, fmt.Errorf("caser: cannot marshal unknown case style %d", int(s))
	}
	return s.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. The generic form is used so the
// package itself carries no YAML dependency.
func (s *Style) UnmarshalYAML(unmarshal func(any) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}
	return s.UnmarshalText([]byte(name))
}

// valid reports whether s is one of the declared styles.
func (s Style) valid() bool {
	return s >= StyleSnake && s <= StyleUpper
}
