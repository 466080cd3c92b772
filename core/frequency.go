package core

import (
	"context"
	"sort"

	"github.com/bmeddeb/gitlens/internal/contract"
	"github.com/bmeddeb/gitlens/schema"
)

// pathTouches accumulates per-path touch counts while preserving the order
// in which authors and paths were first encountered. The encounter order is
// a stable contract: primary-owner ties resolve to the first author seen,
// never to name order.
type pathTouches struct {
	changeCount  int
	lastModified int64
	authorCounts map[string]int
	authorOrder  []string
}

// buildFrequency rolls the touch events up into per-path frequency entries,
// sorted by change count descending with ties keeping encounter order.
func buildFrequency(events []touchEvent) []schema.FileChangeFrequency {
	touches := make(map[string]*pathTouches)
	var pathOrder []string

	for _, ev := range events {
		for _, p := range ev.paths {
			t, ok := touches[p]
			if !ok {
				t = &pathTouches{authorCounts: make(map[string]int)}
				touches[p] = t
				pathOrder = append(pathOrder, p)
			}
			t.changeCount++
			if ev.timestamp > t.lastModified {
				t.lastModified = ev.timestamp
			}
			if _, ok := t.authorCounts[ev.author]; !ok {
				t.authorOrder = append(t.authorOrder, ev.author)
			}
			t.authorCounts[ev.author]++
		}
	}

	entries := make([]schema.FileChangeFrequency, 0, len(pathOrder))
	for _, p := range pathOrder {
		t := touches[p]
		entries = append(entries, schema.FileChangeFrequency{
			Path:         p,
			ChangeCount:  t.changeCount,
			LastModified: t.lastModified,
			Authors:      t.authorOrder,
			PrimaryOwner: primaryOwner(t.authorCounts, t.authorOrder),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].ChangeCount > entries[j].ChangeCount
	})
	return entries
}

// primaryOwner picks the author with the strictly highest touch count;
// exact ties go to the author encountered first.
func primaryOwner(counts map[string]int, order []string) string {
	owner := ""
	best := 0
	for _, author := range order {
		if counts[author] > best {
			best = counts[author]
			owner = author
		}
	}
	return owner
}

// GetFrequencyResults runs the change-frequency analysis over the window.
func GetFrequencyResults(ctx context.Context, cfg *contract.Config, src contract.HistorySource) (*schema.FrequencyResult, error) {
	events, anomalies, err := getTouchEvents(ctx, cfg, src)
	if err != nil {
		return nil, err
	}
	return &schema.FrequencyResult{Entries: buildFrequency(events), Anomalies: anomalies}, nil
}

// getTouchEvents queries and parses the shared touch stream.
func getTouchEvents(ctx context.Context, cfg *contract.Config, src contract.HistorySource) ([]touchEvent, int, error) {
	if err := cfg.Window.Validate(); err != nil {
		return nil, 0, err
	}
	out, err := src.TouchLog(ctx, cfg.RepoPath, cfg.Window)
	if err != nil {
		return nil, 0, err
	}
	events, anomalies := parseTouchLog(out)
	return events, anomalies, nil
}
