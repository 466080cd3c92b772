package schema

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSourceFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"main.go", true},
		{"core/agg.py", true},
		{"Server.JAVA", true},
		{"lib/index.ts", true},
		{"README.md", false},
		{"Makefile", false},
		{"image.png", false},
		{"vendor/dep.go", false},
		{"node_modules/pkg/index.js", false},
		{"pkg/vendor/inner.go", false},
		{"vendored/ok.go", true}, // only exact segment names are excluded
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSourceFile(tt.path))
		})
	}
}

func TestLanguageOf(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"main.go", "go"},
		{"Server.JAVA", "java"},
		{"core/agg.py", "py"},
		{"Makefile", UnknownLanguage},
		{"trailing.", UnknownLanguage},
		{"dir.d/file", UnknownLanguage}, // extension lives on the base name only
		{"archive.tar.gz", "gz"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, LanguageOf(tt.path))
		})
	}
}

func TestParentDir(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"main.go", ""},
		{"core/agg.go", "core"},
		{"a/b/c.go", "a/b"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, ParentDir(tt.path))
		})
	}
}

func TestErrorPredicates(t *testing.T) {
	cfgErr := NewConfigError("bad value %d", 7)
	assert.True(t, IsConfigError(cfgErr))
	assert.False(t, IsSourceError(cfgErr))
	assert.Contains(t, cfgErr.Error(), "bad value 7")

	srcErr := NewSourceError("log", fmt.Errorf("boom"))
	assert.True(t, IsSourceError(srcErr))
	assert.False(t, IsConfigError(srcErr))
	assert.Contains(t, srcErr.Error(), "log")

	wrapped := fmt.Errorf("outer: %w", srcErr)
	assert.True(t, IsSourceError(wrapped))
}
