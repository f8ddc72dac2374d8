// Package caser converts identifier strings between naming case styles.
//
// Import path: github.com/erraggy/namefmt/caser
//
// The package works in two stages. [Tokenize] splits an input identifier into
// a [WordSequence] by recognizing explicit separators (space, hyphen,
// underscore, dot, comma, slash) together with casing and digit boundaries,
// so input written in any supported style can be converted to any other.
// [Render] then writes the words back out under a target [Style].
// [Convert] composes the two and is the entry point most callers need.
//
// # Supported Styles
//
//   - [StyleSnake]: http_server_error
//   - [StyleScreamingSnake]: HTTP_SERVER_ERROR
//   - [StyleKebab]: http-server-error
//   - [StyleCamel]: httpServerError
//   - [StylePascal]: HttpServerError
//   - [StyleTrain]: Http-Server-Error
//   - [StyleFlat]: httpservererror
//   - [StyleDot]: http.server.error
//   - [StyleTitle]: Http Server Error
//   - [StyleLower]: http server error
//   - [StyleUpper]: HTTP SERVER ERROR
//
// # Boundary Detection
//
// Tokenization applies the following rules to a left-to-right scan:
//
//  1. Explicit separator characters split words and are consumed.
//  2. A lowercase-to-uppercase transition starts a new word
//     (fooBar -> foo, Bar).
//  3. A letter-to-digit or digit-to-letter transition starts a new word
//     (v2Server -> v, 2, Server).
//  4. In a run of consecutive uppercase letters followed by a lowercase
//     letter, the last uppercase letter starts the next word
//     (HTTPServer -> HTTP, Server).
//  5. Consecutive separators never produce empty words.
//
// Words split only by a digit transition remain attached: they are rendered
// without a separator between them, so "v2_release" converts to "V2_RELEASE"
// rather than "V_2_RELEASE", and re-tokenizing any rendered output recovers
// the same words. Every other boundary inserts the style's separator.
//
// Runes that are neither letters, digits, nor separators are dropped and
// create no boundary: "b&rewCoffee" tokenizes the same as "brewCoffee".
//
// # Usage
//
// One-shot conversion:
//
//	caser.Convert("HTTPServerError", caser.StyleSnake) // "http_server_error"
//	caser.Convert("some-kebab-case", caser.StyleCamel) // "someKebabCase"
//
// Tokenize once, render many styles:
//
//	f := caser.From("brew_coffee")
//	f.Camel()  // "brewCoffee"
//	f.Pascal() // "BrewCoffee"
//	f.Dot()    // "brew.coffee"
//
// Custom separator sets are passed explicitly, never via package state:
//
//	words := caser.TokenizeWithConfig("a:b:c", caser.Config{Separators: ":"})
//	caser.Render(words, caser.StyleSnake) // "a_b_c"
//
// # Totality and Concurrency
//
// Tokenize, Render, and Convert are total pure functions: they accept any
// string (including empty), never return an error, hold no shared state, and
// are safe for concurrent use. The only fallible operation in the package is
// [ParseStyle], which rejects unknown style names.
package caser
