// Package schema has the data model and shared enums for all parts of gitlens.
package schema

// CommitRecord describes a single commit in the analyzed history window.
// Records are produced once per query and never mutated; identity is Hash.
type CommitRecord struct {
	Hash        string   `json:"hash"`
	ShortHash   string   `json:"short_hash"`
	AuthorName  string   `json:"author_name"`
	AuthorEmail string   `json:"author_email"`
	Timestamp   int64    `json:"timestamp"`
	Parents     []string `json:"parents"` // ordered, first parent is primary
	Message     string   `json:"message"`
}

// DiffStat holds the line counters for one file path in one commit transition.
// Binary files contribute zero lines but still count as a changed file.
type DiffStat struct {
	Path         string `json:"path"`
	AddedLines   int    `json:"added_lines"`
	RemovedLines int    `json:"removed_lines"`
	Binary       bool   `json:"binary"`
}

// BlameLine attributes exactly one line of a file's current content
// to the commit and author that last changed it.
type BlameLine struct {
	CommitHash      string `json:"commit_hash"`
	Author          string `json:"author"`
	AuthorTimestamp int64  `json:"author_timestamp"`
	OriginalLine    int    `json:"original_line"`
	Content         string `json:"content"`
}

// FileEvolutionEntry describes one commit that touched a followed file,
// with line counts computed from that commit's patch against its predecessor
// in the follow chain.
type FileEvolutionEntry struct {
	CommitHash   string `json:"commit_hash"`
	Author       string `json:"author"`
	Email        string `json:"email"`
	Timestamp    int64  `json:"timestamp"`
	Message      string `json:"message"`
	LinesAdded   int    `json:"lines_added"`
	LinesRemoved int    `json:"lines_removed"`
}

// ChurnRecord aggregates how often a path was touched across the window.
type ChurnRecord struct {
	Path         string          `json:"path"`
	ChangeCount  int             `json:"change_count"`
	Commits      map[string]bool `json:"-"` // set of touching commit hashes
	LastModified int64           `json:"last_modified"`
	Authors      []string        `json:"authors"` // encounter order preserved
	PrimaryOwner string          `json:"primary_owner,omitempty"`
}

// FileChangeFrequency describes how frequently a single path changes.
type FileChangeFrequency struct {
	Path         string   `json:"path"`
	ChangeCount  int      `json:"change_count"`
	LastModified int64    `json:"last_modified"`
	Authors      []string `json:"authors"` // encounter order preserved
	PrimaryOwner string   `json:"primary_owner,omitempty"`
}

// HotspotEntry ranks a source file by churn weighted with a size proxy.
// HotspotFactor = ChurnFactor * sqrt(Complexity) / 1000.
type HotspotEntry struct {
	Path          string  `json:"path"`
	ChurnFactor   int     `json:"churn_factor"`
	Complexity    int     `json:"complexity"` // current line count, 0 if unreadable
	HotspotFactor float64 `json:"hotspot_factor"`
}

// AuthorExpertise is the per-author rollup of owned lines across files,
// directories and language extensions. It holds no back-reference into
// history; it is a standalone derived aggregate.
type AuthorExpertise struct {
	Files                  map[string]int `json:"files"`
	Directories            map[string]int `json:"directories"`
	Languages              map[string]int `json:"languages"`
	TotalLines             int            `json:"total_lines"`
	RepositoryContribution float64        `json:"repository_contribution"`
}

// AuthorStats summarizes one author's activity across the window.
type AuthorStats struct {
	Commits      int   `json:"commits"`
	AddedLines   int   `json:"added_lines"`
	RemovedLines int   `json:"removed_lines"`
	FilesChanged int   `json:"files_changed"`
	FirstCommit  int64 `json:"first_commit"`
	LastCommit   int64 `json:"last_commit"`
}

// ContributionStats summarizes all contributions across the window.
type ContributionStats struct {
	ByAuthor          map[string]*AuthorStats `json:"by_author"`
	TotalCommits      int                     `json:"total_commits"`
	TotalAuthors      int                     `json:"total_authors"`
	TotalAdded        int                     `json:"total_added"`
	TotalRemoved      int                     `json:"total_removed"`
	TotalFilesChanged int                     `json:"total_files_changed"`
}

// BranchDivergence describes how two refs have diverged from their merge base.
type BranchDivergence struct {
	Source         string `json:"source"`
	Target         string `json:"target"`
	MergeBase      string `json:"merge_base"`
	AheadCount     int    `json:"ahead_count"`
	BehindCount    int    `json:"behind_count"`
	DifferingFiles int    `json:"differing_files"`
}
