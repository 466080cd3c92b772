package core

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bmeddeb/gitlens/internal/contract"
	"github.com/bmeddeb/gitlens/internal/store"
	"github.com/bmeddeb/gitlens/schema"
)

func executeTestConfig(t *testing.T) *contract.Config {
	t.Helper()
	return &contract.Config{
		RepoPath:   "/test/repo",
		Window:     schema.NewQueryWindow(),
		Period:     schema.DayPeriod,
		Output:     schema.JSONOut,
		OutputFile: filepath.Join(t.TempDir(), "out.json"),
	}
}

func TestExecuteTimeline_TracksRun(t *testing.T) {
	ctx := context.Background()
	mockSrc := &contract.MockHistorySource{}
	mockStore := &store.MockAnalyticsStore{}
	cfg := executeTestConfig(t)

	stream := commitStream("aaaa111\naaa\nAlice\nalice@example.com\n1700000000\n\nOne")
	mockSrc.On("CommitLog", ctx, "/test/repo", cfg.Window).Return(stream, nil)
	mockStore.On("BeginRun", mock.AnythingOfType("time.Time"), "timeline", mock.Anything).Return(int64(7), nil)
	mockStore.On("EndRun", int64(7), mock.AnythingOfType("time.Time"), 1).Return(nil)

	err := ExecuteTimeline(ctx, cfg, mockSrc, mockStore)

	require.NoError(t, err)
	mockSrc.AssertExpectations(t)
	mockStore.AssertExpectations(t)

	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"buckets"`)
}

func TestExecuteTimeline_NilStore(t *testing.T) {
	ctx := context.Background()
	mockSrc := &contract.MockHistorySource{}
	cfg := executeTestConfig(t)

	stream := commitStream("aaaa111\naaa\nAlice\nalice@example.com\n1700000000\n\nOne")
	mockSrc.On("CommitLog", ctx, "/test/repo", cfg.Window).Return(stream, nil)

	err := ExecuteTimeline(ctx, cfg, mockSrc, nil)

	assert.NoError(t, err)
	mockSrc.AssertExpectations(t)
}

func TestExecuteChurn_RecordsChurn(t *testing.T) {
	ctx := context.Background()
	mockSrc := &contract.MockHistorySource{}
	mockStore := &store.MockAnalyticsStore{}
	cfg := executeTestConfig(t)

	touchStream := "--aaaa111|Alice|1700000000\nmain.go\n"
	mockSrc.On("TouchLog", ctx, "/test/repo", cfg.Window).Return([]byte(touchStream), nil)
	mockStore.On("BeginRun", mock.AnythingOfType("time.Time"), "churn", mock.Anything).Return(int64(9), nil)
	mockStore.On("RecordChurn", int64(9), mock.AnythingOfType("[]*schema.ChurnRecord")).Return(nil)
	mockStore.On("EndRun", int64(9), mock.AnythingOfType("time.Time"), 1).Return(nil)

	err := ExecuteChurn(ctx, cfg, mockSrc, mockStore)

	require.NoError(t, err)
	mockSrc.AssertExpectations(t)
	mockStore.AssertExpectations(t)
}

func TestExecuteHotspots_RecordsAndExportsParquet(t *testing.T) {
	ctx := context.Background()
	mockSrc := &contract.MockHistorySource{}
	mockStore := &store.MockAnalyticsStore{}
	cfg := executeTestConfig(t)
	cfg.ParquetFile = filepath.Join(t.TempDir(), "hotspots.parquet")

	touchStream := "--aaaa111|Alice|1700000000\nmain.go\n"
	mockSrc.On("TouchLog", ctx, "/test/repo", cfg.Window).Return([]byte(touchStream), nil)
	mockSrc.On("TrackedFiles", ctx, "/test/repo").Return([]string{"main.go"}, nil)
	mockSrc.On("ReadFile", ctx, "/test/repo", "main.go").Return([]byte("package main\n"), nil)
	mockStore.On("BeginRun", mock.AnythingOfType("time.Time"), "hotspots", mock.Anything).Return(int64(2), nil)
	mockStore.On("RecordHotspots", int64(2), mock.AnythingOfType("[]schema.HotspotEntry")).Return(nil)
	mockStore.On("EndRun", int64(2), mock.AnythingOfType("time.Time"), 1).Return(nil)

	err := ExecuteHotspots(ctx, cfg, mockSrc, mockStore)

	require.NoError(t, err)
	info, err := os.Stat(cfg.ParquetFile)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
	mockSrc.AssertExpectations(t)
	mockStore.AssertExpectations(t)
}

func TestExecuteDivergence_PropagatesError(t *testing.T) {
	ctx := context.Background()
	mockSrc := &contract.MockHistorySource{}
	mockStore := &store.MockAnalyticsStore{}
	cfg := executeTestConfig(t)
	// No refs configured; the analysis fails before touching the source.
	mockStore.On("BeginRun", mock.AnythingOfType("time.Time"), "divergence", mock.Anything).Return(int64(3), nil)

	err := ExecuteDivergence(ctx, cfg, mockSrc, mockStore)

	assert.Error(t, err)
	assert.True(t, schema.IsConfigError(err))
	mockStore.AssertNotCalled(t, "EndRun")
}

func TestBeginRun_StoreFailureIsNonFatal(t *testing.T) {
	mockStore := &store.MockAnalyticsStore{}
	cfg := executeTestConfig(t)

	mockStore.On("BeginRun", mock.AnythingOfType("time.Time"), "timeline", mock.Anything).
		Return(int64(0), assert.AnError)

	runID := beginRun(mockStore, "timeline", cfg)

	assert.Equal(t, int64(0), runID)
	mockStore.AssertExpectations(t)
}

func TestBeginRun_NilStore(t *testing.T) {
	assert.Equal(t, int64(0), beginRun(nil, "timeline", executeTestConfig(t)))
}
