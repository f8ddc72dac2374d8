// Package pathfmt normalizes path strings into a canonical, platform-agnostic
// form.
//
// Import path: github.com/erraggy/namefmt/pathfmt
//
// Normalization is purely lexical: the filesystem is never consulted. With
// the default configuration, [Clean] performs the following steps in order:
//
//  1. Strip ANSI escape sequences (terminal color codes pasted into paths).
//  2. Convert backslash separators to forward slashes.
//  3. Collapse consecutive slashes.
//  4. Remove characters disallowed in Windows file names: * ? " < > |
//  5. Resolve "." and ".." components.
//  6. Preserve a trailing slash when the input had one.
//
// Examples:
//
//	pathfmt.Clean(`C:\Users\\test`)                  // "C:/Users/test"
//	pathfmt.Clean("/path/with/*unfriendly?chars")    // "/path/with/unfriendlychars"
//	pathfmt.Clean("\x1b[31m/path\x1b[0m")            // "/path"
//	pathfmt.Clean("/home/user/dir/")                 // "/home/user/dir/"
//	pathfmt.Clean("/a/b/../c")                       // "/a/c"
//	pathfmt.Clean("./home/file.txt")                 // "home/file.txt"
//	pathfmt.Clean("./")                              // ""
//
// Individual steps can be disabled through [Config] and [CleanWithConfig]:
//
//	cfg := pathfmt.DefaultConfig()
//	cfg.ResolveParentDirs = false
//	out := pathfmt.CleanWithConfig("/a/b/../c", cfg) // "/a/b/../c"
//
// Both functions are total pure functions over all string inputs: they never
// fail and are safe for concurrent use.
package pathfmt
