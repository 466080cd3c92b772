package core

import (
	"context"
	"strconv"
	"strings"

	"github.com/bmeddeb/gitlens/internal/contract"
	"github.com/bmeddeb/gitlens/schema"
)

// evolutionState tracks progress through one commit block of the
// interleaved follow stream.
type evolutionState int

const (
	awaitHash evolutionState = iota
	awaitAuthor
	awaitEmail
	awaitTimestamp
	awaitSubject
	inPatch
	skipToBoundary // after a malformed record, discard until the next block
)

// ParseEvolutionStream decodes the interleaved commit/patch stream produced
// for a single followed file. Each block starts with a boundary marker,
// carries five metadata lines, then the literal patch text for that commit
// against its predecessor in the follow chain. One entry is emitted per
// completed block; a trailing block is flushed when the stream ends
// mid-patch. Added and removed lines are counted by their +/- prefixes,
// excluding the +++/--- file header lines. Malformed blocks are dropped and
// counted as anomalies.
func ParseEvolutionStream(out []byte) ([]schema.FileEvolutionEntry, int) {
	var (
		entries   []schema.FileEvolutionEntry
		current   schema.FileEvolutionEntry
		state     = awaitHash
		anomalies int
		started   bool
	)

	flush := func() {
		entries = append(entries, current)
		current = schema.FileEvolutionEntry{}
	}

	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSuffix(line, "\r")

		if line == contract.CommitBoundary {
			switch state {
			case inPatch:
				flush()
			case awaitHash, skipToBoundary:
				// Nothing pending.
			default:
				// Block ended before the metadata completed.
				anomalies++
				current = schema.FileEvolutionEntry{}
			}
			state = awaitHash
			started = true
			continue
		}
		if !started {
			continue // preamble before the first boundary
		}

		switch state {
		case awaitHash:
			if line == "" {
				continue
			}
			current.CommitHash = line
			state = awaitAuthor
		case awaitAuthor:
			current.Author = line
			state = awaitEmail
		case awaitEmail:
			current.Email = line
			state = awaitTimestamp
		case awaitTimestamp:
			ts, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
			if err != nil {
				anomalies++
				current = schema.FileEvolutionEntry{}
				state = skipToBoundary
				continue
			}
			current.Timestamp = ts
			state = awaitSubject
		case awaitSubject:
			current.Message = line
			state = inPatch
		case inPatch:
			switch {
			case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
				// File header lines are not content changes.
			case strings.HasPrefix(line, "+"):
				current.LinesAdded++
			case strings.HasPrefix(line, "-"):
				current.LinesRemoved++
			}
		case skipToBoundary:
			// Discard until the next boundary marker.
		}
	}

	// Flush the final trailing block.
	switch state {
	case inPatch:
		flush()
	case awaitHash, skipToBoundary:
		// Clean end of stream.
	default:
		if started {
			anomalies++
		}
	}

	return entries, anomalies
}

// GetEvolutionResults reconstructs the per-file change sequence for the
// configured file path, newest commit first to match the source traversal.
func GetEvolutionResults(ctx context.Context, cfg *contract.Config, src contract.HistorySource) (*schema.EvolutionResult, error) {
	if err := cfg.Window.Validate(); err != nil {
		return nil, err
	}
	if cfg.FilePath == "" {
		return nil, schema.NewConfigError("file path is required for evolution analysis")
	}
	out, err := src.FileFollowLog(ctx, cfg.RepoPath, cfg.FilePath, cfg.Window)
	if err != nil {
		return nil, err
	}
	entries, anomalies := ParseEvolutionStream(out)
	return &schema.EvolutionResult{Path: cfg.FilePath, Entries: entries, Anomalies: anomalies}, nil
}
