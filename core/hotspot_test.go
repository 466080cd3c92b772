package core

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bmeddeb/gitlens/internal/contract"
	"github.com/bmeddeb/gitlens/schema"
)

func TestCountLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"empty", "", 0},
		{"single line no newline", "hello", 1},
		{"single line with newline", "hello\n", 1},
		{"just a newline", "\n", 1},
		{"three lines", "a\nb\nc\n", 3},
		{"no trailing newline", "a\nb\nc", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, countLines([]byte(tt.content)))
		})
	}
}

func constantComplexity(lines int) complexityFunc {
	return func(string) (int, error) { return lines, nil }
}

func TestRankHotspots_FactorAndOrder(t *testing.T) {
	tracked := []string{"small.go", "big.go"}
	frequency := []schema.FileChangeFrequency{
		{Path: "small.go", ChangeCount: 10},
		{Path: "big.go", ChangeCount: 10},
	}
	complexity := func(path string) (int, error) {
		if path == "big.go" {
			return 400, nil
		}
		return 100, nil
	}

	entries, skipped := rankHotspots(tracked, frequency, complexity)

	require.Len(t, entries, 2)
	assert.Equal(t, 0, skipped)

	// Same churn, more lines ranks higher.
	assert.Equal(t, "big.go", entries[0].Path)
	assert.InDelta(t, 10*math.Sqrt(400)/1000.0, entries[0].HotspotFactor, 1e-9)
	assert.Equal(t, 400, entries[0].Complexity)
	assert.Equal(t, 10, entries[0].ChurnFactor)

	assert.Equal(t, "small.go", entries[1].Path)
	assert.InDelta(t, 10*math.Sqrt(100)/1000.0, entries[1].HotspotFactor, 1e-9)
}

func TestRankHotspots_SkipsNonSourceAndVendored(t *testing.T) {
	tracked := []string{"README.md", "vendor/dep.go", "node_modules/pkg/index.js", "main.go"}
	frequency := []schema.FileChangeFrequency{
		{Path: "README.md", ChangeCount: 50},
		{Path: "vendor/dep.go", ChangeCount: 50},
		{Path: "node_modules/pkg/index.js", ChangeCount: 50},
		{Path: "main.go", ChangeCount: 1},
	}

	entries, skipped := rankHotspots(tracked, frequency, constantComplexity(100))

	require.Len(t, entries, 1)
	assert.Equal(t, 0, skipped)
	assert.Equal(t, "main.go", entries[0].Path)
}

func TestRankHotspots_SkipsUntouchedFiles(t *testing.T) {
	tracked := []string{"quiet.go"}

	entries, skipped := rankHotspots(tracked, nil, constantComplexity(100))

	assert.Empty(t, entries)
	assert.Equal(t, 0, skipped)
}

func TestRankHotspots_UnreadableFileIsSkipCounted(t *testing.T) {
	tracked := []string{"gone.go", "fine.go"}
	frequency := []schema.FileChangeFrequency{
		{Path: "gone.go", ChangeCount: 5},
		{Path: "fine.go", ChangeCount: 5},
	}
	complexity := func(path string) (int, error) {
		if path == "gone.go" {
			return 0, errors.New("object not found")
		}
		return 100, nil
	}

	entries, skipped := rankHotspots(tracked, frequency, complexity)

	// The unreadable file contributes zero factor and is dropped.
	require.Len(t, entries, 1)
	assert.Equal(t, 1, skipped)
	assert.Equal(t, "fine.go", entries[0].Path)
}

func TestRankHotspots_DropsZeroFactor(t *testing.T) {
	tracked := []string{"empty.go"}
	frequency := []schema.FileChangeFrequency{{Path: "empty.go", ChangeCount: 5}}

	entries, skipped := rankHotspots(tracked, frequency, constantComplexity(0))

	assert.Empty(t, entries)
	assert.Equal(t, 0, skipped)
}

func TestGetHotspotResults_Success(t *testing.T) {
	ctx := context.Background()
	mockSrc := &contract.MockHistorySource{}
	cfg := &contract.Config{RepoPath: "/test/repo", Window: schema.NewQueryWindow()}

	touchStream := "--aaaa111|Alice|1700000000\nmain.go\n\n--bbbb222|Bob|1690000000\nmain.go\n"
	mockSrc.On("TouchLog", ctx, "/test/repo", cfg.Window).Return([]byte(touchStream), nil)
	mockSrc.On("TrackedFiles", ctx, "/test/repo").Return([]string{"main.go", "README.md"}, nil)
	mockSrc.On("ReadFile", ctx, "/test/repo", "main.go").Return([]byte("package main\n\nfunc main() {}\n"), nil)

	result, err := GetHotspotResults(ctx, cfg, mockSrc)

	require.NoError(t, err)
	require.Len(t, result.Entries, 1)
	assert.Equal(t, 0, result.Skipped)

	entry := result.Entries[0]
	assert.Equal(t, "main.go", entry.Path)
	assert.Equal(t, 2, entry.ChurnFactor)
	assert.Equal(t, 3, entry.Complexity)
	assert.InDelta(t, 2*math.Sqrt(3)/1000.0, entry.HotspotFactor, 1e-9)
	mockSrc.AssertExpectations(t)
}

func TestGetHotspotResults_TrackedFilesFailure(t *testing.T) {
	ctx := context.Background()
	mockSrc := &contract.MockHistorySource{}
	cfg := &contract.Config{RepoPath: "/test/repo", Window: schema.NewQueryWindow()}

	mockSrc.On("TouchLog", ctx, "/test/repo", cfg.Window).Return([]byte(""), nil)
	srcErr := schema.NewSourceError("ls-files", errors.New("not a repository"))
	mockSrc.On("TrackedFiles", ctx, "/test/repo").Return(nil, srcErr)

	_, err := GetHotspotResults(ctx, cfg, mockSrc)

	assert.Error(t, err)
	assert.True(t, schema.IsSourceError(err))
	mockSrc.AssertExpectations(t)
}
