package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bmeddeb/gitlens/internal/contract"
	"github.com/bmeddeb/gitlens/schema"
)

func TestAggregateChurn_CountsDistinctCommits(t *testing.T) {
	events := []touchEvent{
		{hash: "c1", author: "Alice", timestamp: 300, paths: []string{"a.go", "b.go"}},
		{hash: "c2", author: "Bob", timestamp: 200, paths: []string{"a.go"}},
		// Same commit seen again for the same path must not double-count.
		{hash: "c1", author: "Alice", timestamp: 300, paths: []string{"a.go"}},
	}

	records := aggregateChurn(events)

	require.Len(t, records, 2)

	a := records["a.go"]
	require.NotNil(t, a)
	assert.Equal(t, 2, a.ChangeCount)
	assert.Equal(t, map[string]bool{"c1": true, "c2": true}, a.Commits)

	b := records["b.go"]
	require.NotNil(t, b)
	assert.Equal(t, 1, b.ChangeCount)
}

func TestAggregateChurn_MergesFrequencyMetadata(t *testing.T) {
	events := []touchEvent{
		{hash: "c1", author: "Alice", timestamp: 100, paths: []string{"a.go"}},
		{hash: "c2", author: "Bob", timestamp: 500, paths: []string{"a.go"}},
		{hash: "c3", author: "Alice", timestamp: 300, paths: []string{"a.go"}},
	}

	records := aggregateChurn(events)

	a := records["a.go"]
	require.NotNil(t, a)
	assert.Equal(t, int64(500), a.LastModified)
	assert.Equal(t, []string{"Alice", "Bob"}, a.Authors)
	assert.Equal(t, "Alice", a.PrimaryOwner)
}

func TestAggregateChurn_Empty(t *testing.T) {
	records := aggregateChurn(nil)

	assert.Empty(t, records)
}

func TestGetChurnResults_Success(t *testing.T) {
	ctx := context.Background()
	mockSrc := &contract.MockHistorySource{}
	cfg := &contract.Config{RepoPath: "/test/repo", Window: schema.NewQueryWindow()}

	stream := "--aaaa111|Alice|1700000000\nmain.go\ncore/agg.go\n\n--bbbb222|Bob|1690000000\nmain.go\n"
	mockSrc.On("TouchLog", ctx, "/test/repo", cfg.Window).Return([]byte(stream), nil)

	result, err := GetChurnResults(ctx, cfg, mockSrc)

	require.NoError(t, err)
	require.Len(t, result.Records, 2)
	assert.Equal(t, 2, result.Records["main.go"].ChangeCount)
	assert.Equal(t, 1, result.Records["core/agg.go"].ChangeCount)
	assert.Equal(t, 0, result.Anomalies)
	mockSrc.AssertExpectations(t)
}
