package contract

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncatePath(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		maxWidth int
		want     string
	}{
		{"short path unchanged", "main.go", 20, "main.go"},
		{"exact width unchanged", "12345", 5, "12345"},
		{"long path keeps tail", "internal/contract/git_local.go", 15, "...git_local.go"},
		{"width too small for ellipsis", "abcdefgh", 3, "abcdefgh"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TruncatePath(tt.path, tt.maxWidth))
		})
	}
}

func TestParseBoolString(t *testing.T) {
	for _, s := range []string{"yes", "YES", "true", "True", "1"} {
		v, err := ParseBoolString(s)
		assert.NoError(t, err, s)
		assert.True(t, v, s)
	}
	for _, s := range []string{"no", "NO", "false", "False", "0"} {
		v, err := ParseBoolString(s)
		assert.NoError(t, err, s)
		assert.False(t, v, s)
	}
	_, err := ParseBoolString("maybe")
	assert.Error(t, err)
}

func TestSelectOutputFile(t *testing.T) {
	t.Run("empty path means stdout", func(t *testing.T) {
		f, err := SelectOutputFile("")
		require.NoError(t, err)
		assert.Same(t, os.Stdout, f)
	})

	t.Run("path creates file", func(t *testing.T) {
		path := t.TempDir() + "/out.txt"
		f, err := SelectOutputFile(path)
		require.NoError(t, err)
		defer func() { _ = f.Close() }()

		_, statErr := os.Stat(path)
		assert.NoError(t, statErr)
	})
}

func TestGetStoreFilePath(t *testing.T) {
	path := GetStoreFilePath()

	assert.Contains(t, path, ".gitlens_analytics.db")
}
