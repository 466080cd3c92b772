package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/bmeddeb/gitlens/internal/contract"
	"github.com/bmeddeb/gitlens/schema"
)

// WriteContributions outputs per-author contribution stats, dispatching
// based on the output format configured.
func WriteContributions(result *schema.ContributionStats, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON contribution results"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVContributions(w, result)
		}, "Wrote CSV contribution results"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeContributionsTable(w, result, cfg, duration)
		}, "Wrote contribution results"); err != nil {
			return fmt.Errorf("error writing contribution table output: %w", err)
		}
	}
	return nil
}

// sortedContributors orders authors by commit count descending, name
// ascending on ties.
func sortedContributors(byAuthor map[string]*schema.AuthorStats) []string {
	names := make([]string, 0, len(byAuthor))
	for name := range byAuthor {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		ci := byAuthor[names[i]].Commits
		cj := byAuthor[names[j]].Commits
		if ci != cj {
			return ci > cj
		}
		return names[i] < names[j]
	})
	return names
}

func writeCSVContributions(w io.Writer, result *schema.ContributionStats) error {
	header := []string{"author", "commits", "added_lines", "removed_lines", "files_changed", "first_commit", "last_commit"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, name := range sortedContributors(result.ByAuthor) {
			stats := result.ByAuthor[name]
			row := []string{
				name,
				strconv.Itoa(stats.Commits),
				strconv.Itoa(stats.AddedLines),
				strconv.Itoa(stats.RemovedLines),
				strconv.Itoa(stats.FilesChanged),
				strconv.FormatInt(stats.FirstCommit, 10),
				strconv.FormatInt(stats.LastCommit, 10),
			}
			if err := csvWriter.Write(row); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
		return nil
	})
}

func writeContributionsTable(w io.Writer, result *schema.ContributionStats, cfg *contract.Config, duration time.Duration) error {
	table := tablewriter.NewWriter(w)

	table.Header([]string{"Author", "Commits", "Added", "Removed", "Files", "First", "Last"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, name := range sortedContributors(result.ByAuthor) {
		stats := result.ByAuthor[name]
		row := []string{
			name,
			strconv.Itoa(stats.Commits),
			strconv.Itoa(stats.AddedLines),
			strconv.Itoa(stats.RemovedLines),
			strconv.Itoa(stats.FilesChanged),
			time.Unix(stats.FirstCommit, 0).Format("2006-01-02"),
			time.Unix(stats.LastCommit, 0).Format("2006-01-02"),
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Fprintf(w, "Totals: %d commits by %d authors, +%d/-%d lines across %d file changes\n",
		result.TotalCommits, result.TotalAuthors, result.TotalAdded, result.TotalRemoved, result.TotalFilesChanged)
	fmt.Fprintf(w, "Contribution analysis completed in %v\n", duration)
	return nil
}

// WriteDivergence outputs the branch divergence summary, dispatching based
// on the output format configured.
func WriteDivergence(result *schema.BranchDivergence, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON divergence results"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVDivergence(w, result)
		}, "Wrote CSV divergence results"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeDivergenceTable(w, result, cfg, duration)
		}, "Wrote divergence results"); err != nil {
			return fmt.Errorf("error writing divergence table output: %w", err)
		}
	}
	return nil
}

func writeCSVDivergence(w io.Writer, result *schema.BranchDivergence) error {
	header := []string{"source", "target", "merge_base", "ahead", "behind", "differing_files"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		row := []string{
			result.Source,
			result.Target,
			result.MergeBase,
			strconv.Itoa(result.AheadCount),
			strconv.Itoa(result.BehindCount),
			strconv.Itoa(result.DifferingFiles),
		}
		if err := csvWriter.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
		return nil
	})
}

func writeDivergenceTable(w io.Writer, result *schema.BranchDivergence, cfg *contract.Config, duration time.Duration) error {
	table := tablewriter.NewWriter(w)

	table.Header([]string{"Source", "Target", "Merge Base", "Ahead", "Behind", "Differing Files"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	mergeBase := result.MergeBase
	if len(mergeBase) > 8 {
		mergeBase = mergeBase[:8]
	}
	data := [][]string{{
		result.Source,
		result.Target,
		mergeBase,
		strconv.Itoa(result.AheadCount),
		strconv.Itoa(result.BehindCount),
		strconv.Itoa(result.DifferingFiles),
	}}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Fprintf(w, "Divergence analysis completed in %v\n", duration)
	return nil
}
