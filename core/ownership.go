package core

import (
	"context"

	"github.com/bmeddeb/gitlens/internal/contract"
	"github.com/bmeddeb/gitlens/schema"
)

// AttributeOwnership blames every tracked file and attributes each current
// line to an author, then rolls the per-file counts up to the owning
// directory (the repository root is the empty key). A file whose blame
// fails is skipped with a warning and appears in neither map; per-file
// failure never aborts the whole-repository pass.
func AttributeOwnership(ctx context.Context, cfg *contract.Config, src contract.HistorySource, trackedFiles []string) *schema.OwnershipResult {
	result := &schema.OwnershipResult{
		Files:       make(map[string]map[string]int),
		Directories: make(map[string]map[string]int),
	}

	for _, path := range trackedFiles {
		out, err := src.BlamePorcelain(ctx, cfg.RepoPath, path)
		if err != nil {
			contract.LogWarn("Could not analyze "+path, err)
			result.SkippedFiles = append(result.SkippedFiles, path)
			continue
		}

		authorCounts := make(map[string]int)
		for _, line := range ParseBlamePorcelain(out) {
			authorCounts[line.Author]++
		}
		result.Files[path] = authorCounts

		dir := schema.ParentDir(path)
		dirCounts, ok := result.Directories[dir]
		if !ok {
			dirCounts = make(map[string]int)
			result.Directories[dir] = dirCounts
		}
		for author, count := range authorCounts {
			dirCounts[author] += count
		}
	}
	return result
}

// GetOwnershipResults runs the ownership attribution over the repository tip.
func GetOwnershipResults(ctx context.Context, cfg *contract.Config, src contract.HistorySource) (*schema.OwnershipResult, error) {
	if err := cfg.Window.Validate(); err != nil {
		return nil, err
	}
	tracked, err := src.TrackedFiles(ctx, cfg.RepoPath)
	if err != nil {
		return nil, err
	}
	return AttributeOwnership(ctx, cfg, src, tracked), nil
}
