package outwriter

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bmeddeb/gitlens/internal/contract"
	"github.com/bmeddeb/gitlens/schema"
)

func TestSortedPeriodKeys_Chronological(t *testing.T) {
	buckets := map[string]int{
		"2024-03-16": 1,
		"2024-03-15": 2,
		"2023-12-31": 5,
	}

	keys := sortedPeriodKeys(buckets)

	assert.Equal(t, []string{"2023-12-31", "2024-03-15", "2024-03-16"}, keys)
}

func TestWriteCSVTimeline(t *testing.T) {
	var buf bytes.Buffer
	result := &schema.TimelineResult{Buckets: map[string]int{
		"2024-03-16": 1,
		"2024-03-15": 2,
	}}

	err := writeCSVTimeline(&buf, result)

	require.NoError(t, err)
	assert.Equal(t, "period,commits\n2024-03-15,2\n2024-03-16,1\n", buf.String())
}

func TestSortedChurnRecords_OrderAndLimit(t *testing.T) {
	result := &schema.ChurnResult{Records: map[string]*schema.ChurnRecord{
		"b.go": {Path: "b.go", ChangeCount: 5},
		"a.go": {Path: "a.go", ChangeCount: 5},
		"c.go": {Path: "c.go", ChangeCount: 9},
	}}

	records := sortedChurnRecords(result, 0)

	require.Len(t, records, 3)
	assert.Equal(t, "c.go", records[0].Path)
	// Ties break by path so repeated runs render identically.
	assert.Equal(t, "a.go", records[1].Path)
	assert.Equal(t, "b.go", records[2].Path)

	limited := sortedChurnRecords(result, 2)
	assert.Len(t, limited, 2)
}

func TestLimitFrequencyEntries(t *testing.T) {
	entries := []schema.FileChangeFrequency{{Path: "a"}, {Path: "b"}, {Path: "c"}}

	assert.Len(t, limitFrequencyEntries(entries, 2), 2)
	assert.Len(t, limitFrequencyEntries(entries, 0), 3)
	assert.Len(t, limitFrequencyEntries(entries, 10), 3)
}

func TestLimitHotspotEntries(t *testing.T) {
	entries := []schema.HotspotEntry{{Path: "a"}, {Path: "b"}, {Path: "c"}}

	assert.Len(t, limitHotspotEntries(entries, 1), 1)
	assert.Len(t, limitHotspotEntries(entries, 0), 3)
}

func TestOwnerOf(t *testing.T) {
	owner, owned, total := ownerOf(map[string]int{"Alice": 30, "Bob": 10})

	assert.Equal(t, "Alice", owner)
	assert.Equal(t, 30, owned)
	assert.Equal(t, 40, total)
}

func TestOwnerOf_TieResolvesAlphabetically(t *testing.T) {
	owner, owned, total := ownerOf(map[string]int{"Zed": 10, "Amy": 10})

	assert.Equal(t, "Amy", owner)
	assert.Equal(t, 10, owned)
	assert.Equal(t, 20, total)
}

func TestSortedPaths(t *testing.T) {
	m := map[string]map[string]int{"b.go": nil, "a.go": nil}

	assert.Equal(t, []string{"a.go", "b.go"}, sortedPaths(m))
}

func TestSortedAuthorsByContribution(t *testing.T) {
	authors := map[string]*schema.AuthorExpertise{
		"Alice": {RepositoryContribution: 40},
		"Bob":   {RepositoryContribution: 55},
		"Carol": {RepositoryContribution: 40},
	}

	names := sortedAuthorsByContribution(authors)

	assert.Equal(t, []string{"Bob", "Alice", "Carol"}, names)
}

func TestTopLanguage(t *testing.T) {
	exp := &schema.AuthorExpertise{Languages: map[string]int{"go": 100, "py": 40}}

	assert.Equal(t, "go", topLanguage(exp))

	assert.Equal(t, "", topLanguage(&schema.AuthorExpertise{Languages: map[string]int{}}))
}

func TestSortedContributors(t *testing.T) {
	byAuthor := map[string]*schema.AuthorStats{
		"Alice": {Commits: 3},
		"Bob":   {Commits: 9},
		"Carol": {Commits: 3},
	}

	names := sortedContributors(byAuthor)

	assert.Equal(t, []string{"Bob", "Alice", "Carol"}, names)
}

func TestWriteChurn_CSVToBuffer(t *testing.T) {
	var buf bytes.Buffer
	result := &schema.ChurnResult{Records: map[string]*schema.ChurnRecord{
		"main.go": {
			Path:         "main.go",
			ChangeCount:  4,
			LastModified: 1700000000,
			Authors:      []string{"Alice", "Bob"},
			PrimaryOwner: "Alice",
		},
	}}
	cfg := &contract.Config{ResultLimit: 10}

	err := writeCSVChurn(&buf, result, cfg)

	require.NoError(t, err)
	assert.Equal(t,
		"path,change_count,last_modified,primary_owner,authors\n"+
			"main.go,4,1700000000,Alice,Alice;Bob\n",
		buf.String())
}

func TestWriteTimelineTable_Summary(t *testing.T) {
	var buf bytes.Buffer
	result := &schema.TimelineResult{
		Buckets:   map[string]int{"2024-03-15": 2, "2024-03-16": 1},
		Anomalies: 1,
	}
	cfg := &contract.Config{Width: 100}

	err := writeTimelineTable(&buf, result, cfg, 0)

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "2024-03-15")
	assert.Contains(t, out, "Total commits: 3 across 2 periods")
	assert.Contains(t, out, "Dropped 1 malformed log records")
}
