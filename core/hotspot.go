package core

import (
	"context"
	"math"
	"sort"
	"strings"

	"github.com/bmeddeb/gitlens/internal/contract"
	"github.com/bmeddeb/gitlens/schema"
)

// complexityFunc returns the size-based complexity proxy for a path,
// or an error when the content cannot be read.
type complexityFunc func(path string) (int, error)

// rankHotspots combines churn frequency with the complexity proxy into a
// ranked hotspot list. Only recognized source files qualify; vendored
// directory segments are excluded regardless of extension. Entries whose
// factor is not positive are dropped. The sort is stable and descending,
// so ties keep the order in which paths were discovered.
func rankHotspots(trackedFiles []string, frequency []schema.FileChangeFrequency, complexity complexityFunc) ([]schema.HotspotEntry, int) {
	freqByPath := make(map[string]*schema.FileChangeFrequency, len(frequency))
	for i := range frequency {
		freqByPath[frequency[i].Path] = &frequency[i]
	}

	var entries []schema.HotspotEntry
	skipped := 0
	for _, path := range trackedFiles {
		if !schema.IsSourceFile(path) {
			continue
		}
		freq, ok := freqByPath[path]
		if !ok {
			continue
		}

		churnFactor := freq.ChangeCount
		lineCount, err := complexity(path)
		if err != nil {
			// Unreadable content is a per-file skip, not a scan failure.
			contract.LogWarn("Could not read "+path, err)
			skipped++
			lineCount = 0
		}

		factor := float64(churnFactor) * math.Sqrt(float64(lineCount)) / 1000.0
		if factor > 0 {
			entries = append(entries, schema.HotspotEntry{
				Path:          path,
				ChurnFactor:   churnFactor,
				Complexity:    lineCount,
				HotspotFactor: factor,
			})
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].HotspotFactor > entries[j].HotspotFactor
	})
	return entries, skipped
}

// countLines counts content lines the way splitlines does: a trailing
// newline does not open a final empty line.
func countLines(content []byte) int {
	if len(content) == 0 {
		return 0
	}
	s := strings.TrimSuffix(string(content), "\n")
	if s == "" {
		return 1 // content was just a newline
	}
	return strings.Count(s, "\n") + 1
}

// GetHotspotResults runs the hotspot ranking over the configured window.
func GetHotspotResults(ctx context.Context, cfg *contract.Config, src contract.HistorySource) (*schema.HotspotResult, error) {
	freq, err := GetFrequencyResults(ctx, cfg, src)
	if err != nil {
		return nil, err
	}
	tracked, err := src.TrackedFiles(ctx, cfg.RepoPath)
	if err != nil {
		return nil, err
	}

	entries, skipped := rankHotspots(tracked, freq.Entries, func(path string) (int, error) {
		content, err := src.ReadFile(ctx, cfg.RepoPath, path)
		if err != nil {
			return 0, err
		}
		return countLines(content), nil
	})
	return &schema.HotspotResult{Entries: entries, Skipped: skipped}, nil
}
