package core

import (
	"context"

	"github.com/bmeddeb/gitlens/internal/contract"
	"github.com/bmeddeb/gitlens/schema"
)

// aggregateChurn walks the touch events and builds per-path churn records:
// change counts over distinct commits, the set of touching commit hashes,
// and the frequency metadata (authors, primary owner, last modified) merged
// in from the same stream so both views stay consistent for a path.
func aggregateChurn(events []touchEvent) map[string]*schema.ChurnRecord {
	records := make(map[string]*schema.ChurnRecord)

	for _, ev := range events {
		for _, p := range ev.paths {
			rec, ok := records[p]
			if !ok {
				rec = &schema.ChurnRecord{Path: p, Commits: make(map[string]bool)}
				records[p] = rec
			}
			if !rec.Commits[ev.hash] {
				rec.Commits[ev.hash] = true
				rec.ChangeCount++
			}
		}
	}

	// Cross-reference the frequency rollup computed from the same events.
	for _, freq := range buildFrequency(events) {
		rec, ok := records[freq.Path]
		if !ok {
			continue
		}
		rec.LastModified = freq.LastModified
		rec.Authors = freq.Authors
		rec.PrimaryOwner = freq.PrimaryOwner
	}

	return records
}

// GetChurnResults runs the churn analysis over the configured window.
func GetChurnResults(ctx context.Context, cfg *contract.Config, src contract.HistorySource) (*schema.ChurnResult, error) {
	events, anomalies, err := getTouchEvents(ctx, cfg, src)
	if err != nil {
		return nil, err
	}
	return &schema.ChurnResult{Records: aggregateChurn(events), Anomalies: anomalies}, nil
}
