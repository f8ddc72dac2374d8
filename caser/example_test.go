package caser_test

import (
	"fmt"

	"github.com/erraggy/namefmt/caser"
)

// Example demonstrates one-shot conversion between case styles.
func Example() {
	fmt.Println(caser.Convert("HTTPServerError", caser.StyleSnake))
	fmt.Println(caser.Convert("http_server_error", caser.StylePascal))
	fmt.Println(caser.Convert("some-kebab-case", caser.StyleCamel))
	// Output:
	// http_server_error
	// HttpServerError
	// someKebabCase
}

// Example_formatter demonstrates tokenizing once and rendering many styles.
func Example_formatter() {
	f := caser.From("brew_coffee")
	fmt.Println(f.Camel())
	fmt.Println(f.Pascal())
	fmt.Println(f.Kebab())
	fmt.Println(f.Title())
	// Output:
	// brewCoffee
	// BrewCoffee
	// brew-coffee
	// Brew Coffee
}

// ExampleTokenize demonstrates how identifiers split into words.
func ExampleTokenize() {
	words := caser.Tokenize("v2Server")
	fmt.Println(words.Strings())

	words = caser.Tokenize("HTTPServer")
	fmt.Println(words.Strings())
	// Output:
	// [v 2 Server]
	// [HTTP Server]
}

// ExampleRender demonstrates rendering a word sequence directly.
func ExampleRender() {
	words := caser.Tokenize("brew coffee")
	fmt.Println(caser.Render(words, caser.StyleScreamingSnake))
	// Output:
	// BREW_COFFEE
}

// ExampleParseStyle demonstrates parsing style names from configuration.
func ExampleParseStyle() {
	style, err := caser.ParseStyle("Train-Case")
	if err != nil {
		panic(err)
	}
	fmt.Println(caser.Convert("brew_coffee", style))
	// Output:
	// Brew-Coffee
}

// ExampleConvertWithOptions demonstrates a custom separator set.
func ExampleConvertWithOptions() {
	out, err := caser.ConvertWithOptions("path:to:handler", caser.StylePascal,
		caser.WithSeparators(":"),
	)
	if err != nil {
		panic(err)
	}
	fmt.Println(out)
	// Output:
	// PathToHandler
}
