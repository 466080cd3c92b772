// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"time"

	"github.com/bmeddeb/gitlens/schema"
)

// HistorySource defines the repository-access operations the analytics
// engine depends on. The engine owns all parsing of the raw byte streams;
// the source only translates a QueryWindow into query constraints. This
// split allows the core logic to be tested without a real git executable.
type HistorySource interface {
	// --- Generic / Low-Level ---

	// Run executes a raw source command and returns its output.
	// Its use should be minimized in favor of the explicit methods below.
	Run(ctx context.Context, repoPath string, args ...string) ([]byte, error)

	// --- Commit Streams ---

	// CommitLog returns the raw commit metadata stream for the window,
	// most-recent-first, one record per commit.
	CommitLog(ctx context.Context, repoPath string, window schema.QueryWindow) ([]byte, error)

	// FileFollowLog returns the raw interleaved commit/patch stream for one
	// file across its renames (the follow chain), newest commit first.
	FileFollowLog(ctx context.Context, repoPath, path string, window schema.QueryWindow) ([]byte, error)

	// TouchLog returns the raw commit stream with per-commit touched file
	// paths (name-only change lists).
	TouchLog(ctx context.Context, repoPath string, window schema.QueryWindow) ([]byte, error)

	// --- File State / Content ---

	// BlamePorcelain returns the raw line-attribution stream for a file at
	// the current tip revision.
	BlamePorcelain(ctx context.Context, repoPath, path string) ([]byte, error)

	// TrackedFiles lists all tracked file paths at the current tip revision.
	TrackedFiles(ctx context.Context, repoPath string) ([]string, error)

	// ReadFile returns the content of a file at the current tip revision.
	ReadFile(ctx context.Context, repoPath, path string) ([]byte, error)

	// --- Diff / Divergence ---

	// DiffNumstat returns the raw per-file line counters between two commits.
	DiffNumstat(ctx context.Context, repoPath, commitA, commitB string) ([]byte, error)

	// MergeBase returns the common ancestor hash of two refs.
	MergeBase(ctx context.Context, repoPath, ref1, ref2 string) (string, error)

	// RevListCount counts the commits selected by a range expression.
	RevListCount(ctx context.Context, repoPath, rangeExpr string) (int, error)

	// DiffNamesOnly lists the paths that differ between two refs.
	DiffNamesOnly(ctx context.Context, repoPath, ref1, ref2 string) ([]string, error)
}

// AnalyticsStore tracks analysis runs and persists derived metrics.
// A nil store disables tracking; recording failures are warnings, never fatal.
type AnalyticsStore interface {
	// BeginRun creates a new analysis run and returns its unique ID.
	BeginRun(startTime time.Time, operation string, params map[string]any) (int64, error)

	// EndRun updates the analysis run with completion data.
	EndRun(runID int64, endTime time.Time, resultCount int) error

	// RecordHotspots stores ranked hotspot entries for a run.
	RecordHotspots(runID int64, entries []schema.HotspotEntry) error

	// RecordChurn stores per-path churn records for a run.
	RecordChurn(runID int64, records []*schema.ChurnRecord) error

	// Close closes the underlying connection.
	Close() error
}
