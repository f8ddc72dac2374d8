package pathfmt

import "strings"

// Config controls which normalization steps Clean applies. Use DefaultConfig
// for the full pipeline; the zero value disables every step.
type Config struct {
	// StripANSI removes ANSI escape sequences (e.g. "\x1b[31m", "\x1b[0m").
	// Enable when the path string may contain terminal color codes.
	StripANSI bool

	// StripUnfriendlyChars removes characters disallowed in Windows file
	// names: * ? " < > |
	StripUnfriendlyChars bool

	// ResolveParentDirs resolves "." and ".." components lexically, without
	// accessing the filesystem. "/a/b/../c" becomes "/a/c".
	ResolveParentDirs bool

	// CollapseSlashes collapses consecutive forward slashes, so
	// "/home//user" becomes "/home/user".
	CollapseSlashes bool

	// NormalizeBackslashes converts backslash separators to forward slashes,
	// unifying Windows-style paths for cross-platform handling.
	NormalizeBackslashes bool
}

// DefaultConfig returns a Config with every normalization step enabled.
func DefaultConfig() Config {
	return Config{
		StripANSI:            true,
		StripUnfriendlyChars: true,
		ResolveParentDirs:    true,
		CollapseSlashes:      true,
		NormalizeBackslashes: true,
	}
}

// unfriendlyChars are disallowed in Windows file names and typically carry
// special meaning in shells.
const unfriendlyChars = `*?"<>|`

// Clean normalizes a path string using DefaultConfig. It is total: any input
// string produces a result and no error path exists.
func Clean(path string) string {
	return CleanWithConfig(path, DefaultConfig())
}

// CleanWithConfig normalizes a path string, applying only the steps enabled
// in cfg.
func CleanWithConfig(path string, cfg Config) string {
	// The trailing slash is observed before any rewriting so that stripped
	// trailing escape sequences do not manufacture one.
	endsWithSlash := strings.HasSuffix(path, "/")

	if cfg.StripANSI {
		path = stripANSI(path)
	}

	if cfg.NormalizeBackslashes {
		path = strings.ReplaceAll(path, `\`, "/")
	}

	if cfg.CollapseSlashes {
		path = collapseSlashes(path)
	}

	if cfg.StripUnfriendlyChars {
		path = strings.Map(func(r rune) rune {
			if strings.ContainsRune(unfriendlyChars, r) {
				return -1
			}
			return r
		}, path)
	}

	if cfg.ResolveParentDirs {
		path = resolveDots(path)
	}

	// Restore the trailing slash if the original path had one.
	if endsWithSlash && !strings.HasSuffix(path, "/") {
		path += "/"
	}

	// A path that reduces to the current directory normalizes to empty.
	if path == "./" || path == "." {
		return ""
	}

	return path
}

// stripANSI removes ANSI escape sequences. CSI sequences ("\x1b[" up to and
// including the final byte in 0x40-0x7e) are removed whole; any other escape
// is removed together with its single following byte.
func stripANSI(s string) string {
	if !strings.ContainsRune(s, 0x1b) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != 0x1b {
			b.WriteByte(s[i])
			continue
		}
		i++
		if i < len(s) && s[i] == '[' {
			i++
			for i < len(s) && (s[i] < 0x40 || s[i] > 0x7e) {
				i++
			}
			// The final byte is consumed by the loop increment.
		}
	}
	return b.String()
}

// collapseSlashes replaces runs of consecutive forward slashes with one.
func collapseSlashes(s string) string {
	if !strings.Contains(s, "//") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	var prev byte
	for i := 0; i < len(s); i++ {
		if s[i] == '/' && prev == '/' {
			continue
		}
		b.WriteByte(s[i])
		prev = s[i]
	}
	return b.String()
}

// resolveDots resolves "." and ".." components lexically. A ".." at the top
// of the stack pops the previous component, including the root itself; a
// path that resolves to nothing becomes ".".
func resolveDots(p string) string {
	rooted := strings.HasPrefix(p, "/")

	var comps []string
	if rooted {
		comps = append(comps, "/")
	}

	for part := range strings.SplitSeq(strings.TrimPrefix(p, "/"), "/") {
		switch part {
		case "", ".":
			// Skip empty and current-directory components.
		case "..":
			if len(comps) > 0 {
				comps = comps[:len(comps)-1]
			}
		default:
			comps = append(comps, part)
		}
	}

	if len(comps) == 0 {
		return "."
	}
	if comps[0] == "/" {
		return "/" + strings.Join(comps[1:], "/")
	}
	return strings.Join(comps, "/")
}
