package core

import (
	"context"
	"time"

	"github.com/bmeddeb/gitlens/internal/contract"
	"github.com/bmeddeb/gitlens/internal/outwriter"
	"github.com/bmeddeb/gitlens/internal/parquet"
	"github.com/bmeddeb/gitlens/schema"
)

// beginRun starts analysis tracking if a store is configured.
// Tracking failures are warnings; they never block the analysis.
func beginRun(store contract.AnalyticsStore, operation string, cfg *contract.Config) int64 {
	if store == nil {
		return 0
	}
	params := map[string]any{
		"repo_path":   cfg.RepoPath,
		"max_results": cfg.Window.MaxResults,
		"skip":        cfg.Window.Skip,
		"author":      cfg.Window.AuthorFilter,
		"path_filter": cfg.Window.PathFilter,
		"since":       cfg.Window.Since,
		"until":       cfg.Window.Until,
	}
	runID, err := store.BeginRun(time.Now(), operation, params)
	if err != nil {
		contract.LogWarn("Analysis tracking initialization failed", err)
		return 0
	}
	return runID
}

// endRun finalizes analysis tracking for a run started by beginRun.
func endRun(store contract.AnalyticsStore, runID int64, resultCount int) {
	if store == nil || runID == 0 {
		return
	}
	if err := store.EndRun(runID, time.Now(), resultCount); err != nil {
		contract.LogWarn("Failed to finalize analysis tracking", err)
	}
}

// ExecuteTimeline runs the commit-timeline analysis and prints the result.
// It serves as the main entry point for the 'timeline' command.
func ExecuteTimeline(ctx context.Context, cfg *contract.Config, src contract.HistorySource, store contract.AnalyticsStore) error {
	start := time.Now()
	runID := beginRun(store, "timeline", cfg)
	result, err := GetTimelineResults(ctx, cfg, src)
	if err != nil {
		return err
	}
	endRun(store, runID, len(result.Buckets))
	return outwriter.WriteTimeline(result, cfg, time.Since(start))
}

// ExecuteEvolution runs the file-evolution analysis and prints the result.
func ExecuteEvolution(ctx context.Context, cfg *contract.Config, src contract.HistorySource, store contract.AnalyticsStore) error {
	start := time.Now()
	runID := beginRun(store, "evolution", cfg)
	result, err := GetEvolutionResults(ctx, cfg, src)
	if err != nil {
		return err
	}
	endRun(store, runID, len(result.Entries))
	return outwriter.WriteEvolution(result, cfg, time.Since(start))
}

// ExecuteFrequency runs the change-frequency analysis and prints the result.
func ExecuteFrequency(ctx context.Context, cfg *contract.Config, src contract.HistorySource, store contract.AnalyticsStore) error {
	start := time.Now()
	runID := beginRun(store, "frequency", cfg)
	result, err := GetFrequencyResults(ctx, cfg, src)
	if err != nil {
		return err
	}
	endRun(store, runID, len(result.Entries))
	return outwriter.WriteFrequency(result, cfg, time.Since(start))
}

// ExecuteChurn runs the churn analysis, records it, and prints the result.
func ExecuteChurn(ctx context.Context, cfg *contract.Config, src contract.HistorySource, store contract.AnalyticsStore) error {
	start := time.Now()
	runID := beginRun(store, "churn", cfg)
	result, err := GetChurnResults(ctx, cfg, src)
	if err != nil {
		return err
	}
	if store != nil && runID > 0 {
		records := make([]*schema.ChurnRecord, 0, len(result.Records))
		for _, rec := range result.Records {
			records = append(records, rec)
		}
		if err := store.RecordChurn(runID, records); err != nil {
			contract.LogWarn("Failed to record churn", err)
		}
	}
	endRun(store, runID, len(result.Records))
	return outwriter.WriteChurn(result, cfg, time.Since(start))
}

// ExecuteHotspots runs the hotspot ranking, records it, exports parquet if
// requested, and prints the result.
func ExecuteHotspots(ctx context.Context, cfg *contract.Config, src contract.HistorySource, store contract.AnalyticsStore) error {
	start := time.Now()
	runID := beginRun(store, "hotspots", cfg)
	result, err := GetHotspotResults(ctx, cfg, src)
	if err != nil {
		return err
	}
	if store != nil && runID > 0 {
		if err := store.RecordHotspots(runID, result.Entries); err != nil {
			contract.LogWarn("Failed to record hotspots", err)
		}
	}
	endRun(store, runID, len(result.Entries))

	if cfg.ParquetFile != "" {
		if err := parquet.WriteHotspots(result.Entries, cfg.ParquetFile); err != nil {
			return err
		}
	}
	return outwriter.WriteHotspots(result, cfg, time.Since(start))
}

// ExecuteOwnership runs the ownership attribution and prints the result.
func ExecuteOwnership(ctx context.Context, cfg *contract.Config, src contract.HistorySource, store contract.AnalyticsStore) error {
	start := time.Now()
	runID := beginRun(store, "ownership", cfg)
	result, err := GetOwnershipResults(ctx, cfg, src)
	if err != nil {
		return err
	}
	endRun(store, runID, len(result.Files))
	return outwriter.WriteOwnership(result, cfg, time.Since(start))
}

// ExecuteKnowledge runs the knowledge-map analysis, exports parquet if
// requested, and prints the result.
func ExecuteKnowledge(ctx context.Context, cfg *contract.Config, src contract.HistorySource, store contract.AnalyticsStore) error {
	start := time.Now()
	runID := beginRun(store, "knowledge", cfg)
	result, err := GetKnowledgeResults(ctx, cfg, src)
	if err != nil {
		return err
	}
	endRun(store, runID, len(result.Authors))

	if cfg.ParquetFile != "" {
		if err := parquet.WriteExpertise(result.Authors, cfg.ParquetFile); err != nil {
			return err
		}
	}
	return outwriter.WriteKnowledge(result, cfg, time.Since(start))
}

// ExecuteContributions runs the contribution-stats analysis and prints the result.
func ExecuteContributions(ctx context.Context, cfg *contract.Config, src contract.HistorySource, store contract.AnalyticsStore) error {
	start := time.Now()
	runID := beginRun(store, "contributions", cfg)
	result, err := GetContributionResults(ctx, cfg, src)
	if err != nil {
		return err
	}
	endRun(store, runID, result.TotalCommits)
	return outwriter.WriteContributions(result, cfg, time.Since(start))
}

// ExecuteDivergence runs the branch-divergence analysis and prints the result.
func ExecuteDivergence(ctx context.Context, cfg *contract.Config, src contract.HistorySource, store contract.AnalyticsStore) error {
	start := time.Now()
	runID := beginRun(store, "divergence", cfg)
	result, err := GetDivergenceResults(ctx, cfg, src)
	if err != nil {
		return err
	}
	endRun(store, runID, result.DifferingFiles)
	return outwriter.WriteDivergence(result, cfg, time.Since(start))
}
