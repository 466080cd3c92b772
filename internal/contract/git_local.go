package contract

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/bmeddeb/gitlens/schema"
)

// Stream markers shared between the local source and the core parsers.
// They delimit heterogeneous records inside otherwise undifferentiated
// line streams.
const (
	// CommitRecordSeparator terminates each record in CommitLog output.
	CommitRecordSeparator = "--gitlens-record--"

	// CommitBoundary starts each commit block in FileFollowLog output.
	CommitBoundary = "--gitlens-commit--"

	// TouchHeaderPrefix starts each commit header in TouchLog output.
	TouchHeaderPrefix = "--"
)

// LocalHistorySource implements the HistorySource interface by executing
// the local 'git' binary installed on the machine. It is the reference
// implementation; an accelerated sibling can substitute for it behind the
// same interface without changing engine semantics.
type LocalHistorySource struct{}

var _ HistorySource = &LocalHistorySource{} // Compile-time check

// NewLocalHistorySource creates a new instance of the local history source.
func NewLocalHistorySource() *LocalHistorySource {
	return &LocalHistorySource{}
}

// Run executes a git command and returns its stdout output.
func (s *LocalHistorySource) Run(_ context.Context, repoPath string, args ...string) ([]byte, error) {
	fullArgs := append([]string{"-C", repoPath}, args...)
	cmd := exec.Command("git", fullArgs...)
	out, err := cmd.Output()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		stderr := strings.TrimSpace(string(exitErr.Stderr))
		return nil, schema.NewSourceError(args[0], fmt.Errorf("git failed in %q: %s", repoPath, stderr))
	} else if err != nil {
		return nil, schema.NewSourceError(args[0], fmt.Errorf("git failed: %w (ensure git is installed and on PATH)", err))
	}
	return out, nil
}

// windowArgs translates a QueryWindow into git log constraints. The path
// filter is appended last as a pathspec when requested.
func windowArgs(window schema.QueryWindow, withPathFilter bool) []string {
	var args []string
	if !window.IncludeMerges {
		args = append(args, "--no-merges")
	}
	if window.AuthorFilter != "" {
		args = append(args, "--author", window.AuthorFilter)
	}
	if window.Since != 0 {
		args = append(args, fmt.Sprintf("--since=@%d", window.Since))
	}
	if window.Until != 0 {
		args = append(args, fmt.Sprintf("--until=@%d", window.Until))
	}
	if window.MaxResults > 0 {
		args = append(args, "--max-count", strconv.Itoa(window.MaxResults))
	}
	if window.Skip > 0 {
		args = append(args, "--skip", strconv.Itoa(window.Skip))
	}
	if withPathFilter && window.PathFilter != "" {
		args = append(args, "--", window.PathFilter)
	}
	return args
}

// CommitLog implements the HistorySource interface.
func (s *LocalHistorySource) CommitLog(ctx context.Context, repoPath string, window schema.QueryWindow) ([]byte, error) {
	args := []string{
		"log",
		"--pretty=format:%H%n%h%n%an%n%ae%n%at%n%P%n%s%n" + CommitRecordSeparator,
	}
	args = append(args, windowArgs(window, true)...)
	return s.Run(ctx, repoPath, args...)
}

// FileFollowLog implements the HistorySource interface. The follow chain
// runs across renames, so only the result bound applies; time filters would
// break the chain the same way they do for git itself.
func (s *LocalHistorySource) FileFollowLog(ctx context.Context, repoPath, path string, window schema.QueryWindow) ([]byte, error) {
	args := []string{
		"log", "--follow", "--patch",
		"--pretty=format:" + CommitBoundary + "%n%H%n%an%n%ae%n%at%n%s",
	}
	if window.MaxResults > 0 {
		args = append(args, "--max-count", strconv.Itoa(window.MaxResults))
	}
	args = append(args, "--", path)
	return s.Run(ctx, repoPath, args...)
}

// TouchLog implements the HistorySource interface.
func (s *LocalHistorySource) TouchLog(ctx context.Context, repoPath string, window schema.QueryWindow) ([]byte, error) {
	args := []string{
		"log", "--name-only",
		"--pretty=format:" + TouchHeaderPrefix + "%H|%an|%at",
	}
	args = append(args, windowArgs(window, true)...)
	return s.Run(ctx, repoPath, args...)
}

// BlamePorcelain implements the HistorySource interface.
func (s *LocalHistorySource) BlamePorcelain(ctx context.Context, repoPath, path string) ([]byte, error) {
	return s.Run(ctx, repoPath, "blame", "--porcelain", "--", path)
}

// TrackedFiles implements the HistorySource interface.
func (s *LocalHistorySource) TrackedFiles(ctx context.Context, repoPath string) ([]string, error) {
	out, err := s.Run(ctx, repoPath, "ls-files")
	if err != nil {
		return nil, err
	}
	return splitNonEmptyLines(out), nil
}

// ReadFile implements the HistorySource interface.
func (s *LocalHistorySource) ReadFile(ctx context.Context, repoPath, path string) ([]byte, error) {
	return s.Run(ctx, repoPath, "show", "HEAD:"+path)
}

// DiffNumstat implements the HistorySource interface.
func (s *LocalHistorySource) DiffNumstat(ctx context.Context, repoPath, commitA, commitB string) ([]byte, error) {
	return s.Run(ctx, repoPath, "diff", "--numstat", commitA, commitB)
}

// MergeBase implements the HistorySource interface.
func (s *LocalHistorySource) MergeBase(ctx context.Context, repoPath, ref1, ref2 string) (string, error) {
	out, err := s.Run(ctx, repoPath, "merge-base", ref1, ref2)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// RevListCount implements the HistorySource interface.
func (s *LocalHistorySource) RevListCount(ctx context.Context, repoPath, rangeExpr string) (int, error) {
	out, err := s.Run(ctx, repoPath, "rev-list", "--count", rangeExpr)
	if err != nil {
		return 0, err
	}
	count, err := strconv.Atoi(strings.TrimSpace(string(out)))
	if err != nil {
		return 0, schema.NewSourceError("rev-list", fmt.Errorf("unexpected count output: %w", err))
	}
	return count, nil
}

// DiffNamesOnly implements the HistorySource interface.
func (s *LocalHistorySource) DiffNamesOnly(ctx context.Context, repoPath, ref1, ref2 string) ([]string, error) {
	out, err := s.Run(ctx, repoPath, "diff", "--name-only", ref1, ref2)
	if err != nil {
		return nil, err
	}
	return splitNonEmptyLines(out), nil
}

// splitNonEmptyLines splits command output into trimmed, non-empty lines.
func splitNonEmptyLines(out []byte) []string {
	raw := strings.Split(strings.TrimSpace(string(out)), "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimSpace(l)
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}
