package schema

// Result wrappers returned by the core engine. Each analysis builds and
// returns an independent structure; partial failures surface as counters
// rather than aborting the whole pass.

// TimelineResult maps period keys to commit counts. Buckets with zero
// commits never appear. Anomalies counts malformed log records that were
// dropped during parsing.
type TimelineResult struct {
	Buckets   map[string]int `json:"buckets"`
	Anomalies int            `json:"anomalies,omitempty"`
}

// EvolutionResult holds the follow-chain entries for one file,
// newest commit first.
type EvolutionResult struct {
	Path      string               `json:"path"`
	Entries   []FileEvolutionEntry `json:"entries"`
	Anomalies int                  `json:"anomalies,omitempty"`
}

// FrequencyResult holds change-frequency entries sorted by change count
// descending, ties keeping encounter order.
type FrequencyResult struct {
	Entries   []FileChangeFrequency `json:"entries"`
	Anomalies int                   `json:"anomalies,omitempty"`
}

// ChurnResult maps path to its churn record.
type ChurnResult struct {
	Records   map[string]*ChurnRecord `json:"records"`
	Anomalies int                     `json:"anomalies,omitempty"`
}

// HotspotResult holds hotspot entries in descending factor order.
// Skipped counts files whose content could not be read for the
// complexity proxy.
type HotspotResult struct {
	Entries []HotspotEntry `json:"entries"`
	Skipped int            `json:"skipped,omitempty"`
}

// OwnershipResult maps file and directory paths to per-author line counts.
// The repository root directory is represented by the empty key.
// SkippedFiles lists paths whose blame failed; they appear in neither map.
type OwnershipResult struct {
	Files        map[string]map[string]int `json:"files"`
	Directories  map[string]map[string]int `json:"directories"`
	SkippedFiles []string                  `json:"skipped_files,omitempty"`
}

// KnowledgeResult maps author names to their expertise profiles.
type KnowledgeResult struct {
	Authors      map[string]*AuthorExpertise `json:"authors"`
	SkippedFiles []string                    `json:"skipped_files,omitempty"`
}
