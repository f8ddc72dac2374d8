package pathfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "windows separators and duplicate slashes",
			input: `C:\Users\\test`,
			want:  "C:/Users/test",
		},
		{
			name:  "unfriendly characters are removed",
			input: "/path/with/*unfriendly?chars",
			want:  "/path/with/unfriendlychars",
		},
		{
			name:  "ansi escape sequences are removed",
			input: "\x1b[31m/path\x1b[0m",
			want:  "/path",
		},
		{
			name:  "trailing slash is preserved",
			input: "/home/user/dir/",
			want:  "/home/user/dir/",
		},
		{
			name:  "plain file path passes through",
			input: "/home/user/file.txt",
			want:  "/home/user/file.txt",
		},
		{
			name:  "parent components are resolved",
			input: "/home/my_user/DOCS/JVCS_TEST/Workspace/../Vault/",
			want:  "/home/my_user/DOCS/JVCS_TEST/Vault/",
		},
		{
			name:  "leading current dir is dropped",
			input: "./home/file.txt",
			want:  "home/file.txt",
		},
		{
			name:  "leading current dir with trailing slash",
			input: "./home/path/",
			want:  "home/path/",
		},
		{
			name:  "bare current dir becomes empty",
			input: "./",
			want:  "",
		},
		{
			name:  "empty input stays empty",
			input: "",
			want:  "",
		},
		{
			name:  "root is preserved",
			input: "/",
			want:  "/",
		},
		{
			name:  "duplicate slashes collapse",
			input: "/home//user///docs",
			want:  "/home/user/docs",
		},
		{
			name:  "parents beyond root are dropped",
			input: "/a/b/../../../x",
			want:  "x",
		},
		{
			name:  "path that resolves away becomes empty",
			input: "a/../",
			want:  "",
		},
		{
			name:  "relative parents resolve",
			input: "a/b/../c",
			want:  "a/c",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clean(tt.input))
		})
	}
}

func TestCleanWithConfig(t *testing.T) {
	t.Run("zero config is a near no-op", func(t *testing.T) {
		input := `\x/..//*`
		assert.Equal(t, input, CleanWithConfig(input, Config{}))
	})

	t.Run("disable parent resolution", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.ResolveParentDirs = false
		assert.Equal(t, "/a/b/../c", CleanWithConfig("/a/b/../c", cfg))
	})

	t.Run("disable backslash normalization", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.NormalizeBackslashes = false
		assert.Equal(t, `C:\Users\test`, CleanWithConfig(`C:\Users\test`, cfg))
	})

	t.Run("disable slash collapsing", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.CollapseSlashes = false
		cfg.ResolveParentDirs = false
		assert.Equal(t, "/home//user", CleanWithConfig("/home//user", cfg))
	})

	t.Run("disable unfriendly char stripping", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.StripUnfriendlyChars = false
		assert.Equal(t, "/a/*b", CleanWithConfig("/a/*b", cfg))
	})

	t.Run("disable ansi stripping", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.StripANSI = false
		assert.Equal(t, "\x1b[31m/path", CleanWithConfig("\x1b[31m/path", cfg))
	})
}

func TestStripANSI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no escapes", "/plain/path", "/plain/path"},
		{"color codes", "\x1b[31mred\x1b[0m", "red"},
		{"multi-parameter csi", "\x1b[1;32mbold green\x1b[0m", "bold green"},
		{"bare escape pair", "\x1bcreset", "reset"},
		{"trailing escape", "path\x1b", "path"},
		{"unterminated csi", "path\x1b[31", "path"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripANSI(tt.input))
		})
	}
}

func TestResolveDots(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"/a/b/../c", "/a/c"},
		{"a/b/../c", "a/c"},
		{"../a", "a"},
		{"..", "."},
		{".", "."},
		{"", "."},
		{"/..", "."},
		{"/a/./b", "/a/b"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveDots(tt.input))
		})
	}
}
