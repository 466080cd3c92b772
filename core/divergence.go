package core

import (
	"context"
	"fmt"

	"github.com/bmeddeb/gitlens/internal/contract"
	"github.com/bmeddeb/gitlens/schema"
)

// GetDivergenceResults computes how two refs have diverged: their merge
// base, commits ahead and behind, and the number of differing files.
func GetDivergenceResults(ctx context.Context, cfg *contract.Config, src contract.HistorySource) (*schema.BranchDivergence, error) {
	if cfg.BaseRef == "" || cfg.TargetRef == "" {
		return nil, schema.NewConfigError("both source and target refs are required for divergence analysis")
	}

	mergeBase, err := src.MergeBase(ctx, cfg.RepoPath, cfg.BaseRef, cfg.TargetRef)
	if err != nil {
		return nil, err
	}
	// Commits reachable from base but not target.
	ahead, err := src.RevListCount(ctx, cfg.RepoPath, fmt.Sprintf("%s..%s", cfg.TargetRef, cfg.BaseRef))
	if err != nil {
		return nil, err
	}
	// Commits reachable from target but not base.
	behind, err := src.RevListCount(ctx, cfg.RepoPath, fmt.Sprintf("%s..%s", cfg.BaseRef, cfg.TargetRef))
	if err != nil {
		return nil, err
	}
	differing, err := src.DiffNamesOnly(ctx, cfg.RepoPath, cfg.BaseRef, cfg.TargetRef)
	if err != nil {
		return nil, err
	}

	return &schema.BranchDivergence{
		Source:         cfg.BaseRef,
		Target:         cfg.TargetRef,
		MergeBase:      mergeBase,
		AheadCount:     ahead,
		BehindCount:    behind,
		DifferingFiles: len(differing),
	}, nil
}
