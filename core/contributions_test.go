package core

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bmeddeb/gitlens/internal/contract"
	"github.com/bmeddeb/gitlens/schema"
)

func TestParseNumstat(t *testing.T) {
	out := "10\t2\tmain.go\n" +
		"-\t-\tlogo.png\n" +
		"0\t5\tcore/agg.go\n"

	stats := parseNumstat([]byte(out))

	require.Len(t, stats, 3)

	assert.Equal(t, schema.DiffStat{Path: "main.go", AddedLines: 10, RemovedLines: 2}, stats[0])

	// Binary files contribute zero lines but still count as changed.
	assert.True(t, stats[1].Binary)
	assert.Equal(t, "logo.png", stats[1].Path)
	assert.Equal(t, 0, stats[1].AddedLines)
	assert.Equal(t, 0, stats[1].RemovedLines)

	assert.Equal(t, schema.DiffStat{Path: "core/agg.go", RemovedLines: 5}, stats[2])
}

func TestParseNumstat_SkipsMalformedLines(t *testing.T) {
	out := "10\t2\tmain.go\nnot a numstat line\n\n"

	stats := parseNumstat([]byte(out))

	require.Len(t, stats, 1)
	assert.Equal(t, "main.go", stats[0].Path)
}

func TestGetContributionResults_AggregatesPerAuthor(t *testing.T) {
	ctx := context.Background()
	mockSrc := &contract.MockHistorySource{}
	cfg := &contract.Config{RepoPath: "/test/repo", Window: schema.NewQueryWindow()}

	stream := commitStream(
		"aaaa111\naaa\nAlice\nalice@example.com\n1700000200\nbbbb222\nSecond",
		"bbbb222\nbbb\nAlice\nalice@example.com\n1700000100\ncccc333\nFirst",
		"cccc333\nccc\nBob\nbob@example.com\n1700000000\n\nRoot",
	)
	mockSrc.On("CommitLog", ctx, "/test/repo", cfg.Window).Return(stream, nil)

	mockSrc.On("DiffNumstat", ctx, "/test/repo", "bbbb222", "aaaa111").Return([]byte("3\t1\tmain.go\n"), nil)
	mockSrc.On("DiffNumstat", ctx, "/test/repo", "cccc333", "bbbb222").Return([]byte("5\t0\tmain.go\n2\t0\tutil.go\n"), nil)
	// The root commit diffs against the empty tree.
	mockSrc.On("DiffNumstat", ctx, "/test/repo", schema.EmptyTreeHash, "cccc333").Return([]byte("10\t0\tmain.go\n"), nil)

	stats, err := GetContributionResults(ctx, cfg, mockSrc)

	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalCommits)
	assert.Equal(t, 2, stats.TotalAuthors)
	assert.Equal(t, 20, stats.TotalAdded)
	assert.Equal(t, 1, stats.TotalRemoved)
	assert.Equal(t, 4, stats.TotalFilesChanged)

	alice := stats.ByAuthor["Alice"]
	require.NotNil(t, alice)
	assert.Equal(t, 2, alice.Commits)
	assert.Equal(t, 10, alice.AddedLines)
	assert.Equal(t, 1, alice.RemovedLines)
	assert.Equal(t, 3, alice.FilesChanged)
	assert.Equal(t, int64(1700000100), alice.FirstCommit)
	assert.Equal(t, int64(1700000200), alice.LastCommit)

	bob := stats.ByAuthor["Bob"]
	require.NotNil(t, bob)
	assert.Equal(t, 1, bob.Commits)
	assert.Equal(t, 10, bob.AddedLines)
	assert.Equal(t, int64(1700000000), bob.FirstCommit)
	assert.Equal(t, int64(1700000000), bob.LastCommit)

	mockSrc.AssertExpectations(t)
}

func TestGetContributionResults_DiffFailureSkipsLineCounters(t *testing.T) {
	ctx := context.Background()
	mockSrc := &contract.MockHistorySource{}
	cfg := &contract.Config{RepoPath: "/test/repo", Window: schema.NewQueryWindow()}

	stream := commitStream("aaaa111\naaa\nAlice\nalice@example.com\n1700000000\n\nRoot")
	mockSrc.On("CommitLog", ctx, "/test/repo", cfg.Window).Return(stream, nil)

	diffErr := schema.NewSourceError("diff", errors.New("bad object"))
	mockSrc.On("DiffNumstat", ctx, "/test/repo", schema.EmptyTreeHash, "aaaa111").Return(nil, diffErr)

	stats, err := GetContributionResults(ctx, cfg, mockSrc)

	// The commit still counts; only its line counters are lost.
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalCommits)
	assert.Equal(t, 0, stats.TotalAdded)
	require.NotNil(t, stats.ByAuthor["Alice"])
	assert.Equal(t, 1, stats.ByAuthor["Alice"].Commits)
	mockSrc.AssertExpectations(t)
}

func TestGetContributionResults_EmptyHistory(t *testing.T) {
	ctx := context.Background()
	mockSrc := &contract.MockHistorySource{}
	cfg := &contract.Config{RepoPath: "/test/repo", Window: schema.NewQueryWindow()}

	mockSrc.On("CommitLog", ctx, "/test/repo", cfg.Window).Return([]byte(""), nil)

	stats, err := GetContributionResults(ctx, cfg, mockSrc)

	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalCommits)
	assert.Equal(t, 0, stats.TotalAuthors)
	assert.Empty(t, stats.ByAuthor)
	mockSrc.AssertExpectations(t)
}
