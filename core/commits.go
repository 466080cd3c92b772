// Package core has the history-aggregation engine: streaming parsers for
// commit, touch, patch and blame records, and the aggregation passes that
// turn them into timelines, churn tables, hotspot rankings, ownership maps
// and knowledge maps.
package core

import (
	"context"
	"strconv"
	"strings"

	"github.com/bmeddeb/gitlens/internal/contract"
	"github.com/bmeddeb/gitlens/schema"
)

// commitRecordFields is the number of lines each commit record carries:
// hash, short hash, author name, author email, timestamp, parents, subject.
const commitRecordFields = 7

// ParseCommitLog decodes the separator-delimited commit metadata stream into
// commit records, most-recent-first. Malformed or truncated records are
// dropped and counted as anomalies; a single bad record never aborts the
// stream.
func ParseCommitLog(out []byte) ([]schema.CommitRecord, int) {
	blocks := strings.Split(string(out), contract.CommitRecordSeparator+"\n")
	commits := make([]schema.CommitRecord, 0, len(blocks))
	anomalies := 0

	for _, block := range blocks {
		block = strings.TrimSuffix(block, contract.CommitRecordSeparator)
		if strings.TrimSpace(block) == "" {
			continue
		}
		lines := strings.Split(strings.TrimPrefix(block, "\n"), "\n")
		if len(lines) < commitRecordFields {
			anomalies++
			continue
		}
		ts, err := strconv.ParseInt(strings.TrimSpace(lines[4]), 10, 64)
		if err != nil {
			anomalies++
			continue
		}
		var parents []string
		if p := strings.TrimSpace(lines[5]); p != "" {
			parents = strings.Fields(p)
		}
		commits = append(commits, schema.CommitRecord{
			Hash:        strings.TrimSpace(lines[0]),
			ShortHash:   strings.TrimSpace(lines[1]),
			AuthorName:  lines[2],
			AuthorEmail: lines[3],
			Timestamp:   ts,
			Parents:     parents,
			Message:     lines[6],
		})
	}
	return commits, anomalies
}

// GetCommits queries the source for the window's commit stream and parses it.
// The window is validated before any query is issued.
func GetCommits(ctx context.Context, cfg *contract.Config, src contract.HistorySource) ([]schema.CommitRecord, int, error) {
	if err := cfg.Window.Validate(); err != nil {
		return nil, 0, err
	}
	out, err := src.CommitLog(ctx, cfg.RepoPath, cfg.Window)
	if err != nil {
		return nil, 0, err
	}
	commits, anomalies := ParseCommitLog(out)
	return commits, anomalies, nil
}
