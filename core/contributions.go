package core

import (
	"context"
	"strconv"
	"strings"

	"github.com/bmeddeb/gitlens/internal/contract"
	"github.com/bmeddeb/gitlens/schema"
)

// parseNumstat decodes a numstat stream into per-file diff stats.
// Binary files show "-" in both counters; they contribute zero lines but
// still count as a changed file.
func parseNumstat(out []byte) []schema.DiffStat {
	var stats []schema.DiffStat
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.SplitN(line, "\t", 3)
		if len(parts) < 3 {
			continue
		}
		stat := schema.DiffStat{Path: parts[2]}
		if parts[0] == "-" || parts[1] == "-" {
			stat.Binary = true
		}
		if added, err := strconv.Atoi(parts[0]); err == nil && added >= 0 {
			stat.AddedLines = added
		}
		if removed, err := strconv.Atoi(parts[1]); err == nil && removed >= 0 {
			stat.RemovedLines = removed
		}
		stats = append(stats, stat)
	}
	return stats
}

// GetContributionResults aggregates per-author contribution statistics over
// the window. Each commit is diffed against its primary parent; root
// commits diff against the empty tree.
func GetContributionResults(ctx context.Context, cfg *contract.Config, src contract.HistorySource) (*schema.ContributionStats, error) {
	commits, _, err := GetCommits(ctx, cfg, src)
	if err != nil {
		return nil, err
	}

	stats := &schema.ContributionStats{ByAuthor: make(map[string]*schema.AuthorStats)}

	for _, commit := range commits {
		parent := schema.EmptyTreeHash
		if len(commit.Parents) > 0 {
			parent = commit.Parents[0]
		}
		out, err := src.DiffNumstat(ctx, cfg.RepoPath, parent, commit.Hash)
		if err != nil {
			// One unreadable diff skips the commit's line counters only.
			contract.LogWarn("Could not diff "+commit.ShortHash, err)
			out = nil
		}

		added, removed, filesChanged := 0, 0, 0
		for _, stat := range parseNumstat(out) {
			added += stat.AddedLines
			removed += stat.RemovedLines
			filesChanged++
		}

		author, ok := stats.ByAuthor[commit.AuthorName]
		if !ok {
			author = &schema.AuthorStats{
				FirstCommit: commit.Timestamp,
				LastCommit:  commit.Timestamp,
			}
			stats.ByAuthor[commit.AuthorName] = author
		}
		author.Commits++
		author.AddedLines += added
		author.RemovedLines += removed
		author.FilesChanged += filesChanged
		author.FirstCommit = min(author.FirstCommit, commit.Timestamp)
		author.LastCommit = max(author.LastCommit, commit.Timestamp)

		stats.TotalAdded += added
		stats.TotalRemoved += removed
		stats.TotalFilesChanged += filesChanged
	}

	stats.TotalCommits = len(commits)
	stats.TotalAuthors = len(stats.ByAuthor)
	return stats, nil
}
