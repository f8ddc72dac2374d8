// Package namefmt provides small string formatting tools for identifiers
// and paths.
//
// The library consists of two packages:
//
//   - caser: tokenize identifier strings into word sequences and render them
//     under a target case style (snake_case, camelCase, PascalCase, ...)
//   - pathfmt: normalize path strings into a canonical, platform-agnostic form
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/erraggy/namefmt
//
// # Quick Start
//
// Convert an identifier between case styles:
//
//	import "github.com/erraggy/namefmt/caser"
//
//	fmt.Println(caser.Convert("HTTPServerError", caser.StyleSnake))
//	// Output: http_server_error
//
// Or tokenize once and render many styles:
//
//	f := caser.From("brew_coffee")
//	fmt.Println(f.Camel())  // brewCoffee
//	fmt.Println(f.Pascal()) // BrewCoffee
//	fmt.Println(f.Kebab())  // brew-coffee
//
// Normalize a path string:
//
//	import "github.com/erraggy/namefmt/pathfmt"
//
//	fmt.Println(pathfmt.Clean(`C:\Users\\test`))
//	// Output: C:/Users/test
//
// # Caser Package
//
// The caser package splits an input identifier into semantic words by
// recognizing explicit separators and case or digit boundaries, then renders
// the words under any supported style. Tokenization and rendering are total
// pure functions: they never fail, hold no state, and are safe for concurrent
// use.
//
// Key features:
//   - Multi-convention input: snake, kebab, camel, Pascal, dotted, spaced
//   - Acronym handling (HTTPServer -> HTTP, Server)
//   - Digit boundaries (v2Server -> v, 2, Server) without separator bloat
//   - Round-trip stable output for every boundary-preserving style
//   - Custom separator sets passed explicitly, never via global state
//
// See the caser package documentation for more details.
//
// # Pathfmt Package
//
// The pathfmt package normalizes path strings lexically, without touching the
// filesystem: it strips ANSI escape sequences, unifies separators to "/",
// collapses duplicate slashes, removes characters disallowed in Windows file
// names, and resolves "." and ".." components while preserving a trailing
// slash.
//
// See the pathfmt package documentation for more details.
//
// # Error Handling
//
// Conversion and normalization are total over all string inputs and return no
// error. The only fallible operation in the library is caser.ParseStyle,
// which rejects unknown style names.
//
// # License
//
// This library is released under the MIT License. See the LICENSE file in the
// repository for full details.
package namefmt
