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

// WriteOwnership outputs per-file and per-directory line attribution,
// dispatching based on the output format configured.
func WriteOwnership(result *schema.OwnershipResult, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON ownership results"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVOwnership(w, result)
		}, "Wrote CSV ownership results"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeOwnershipTable(w, result, cfg, duration)
		}, "Wrote ownership results"); err != nil {
			return fmt.Errorf("error writing ownership table output: %w", err)
		}
	}
	return nil
}

// ownerOf returns the author with the most owned lines in counts, together
// with that line total and the file total. Ties resolve alphabetically so
// output stays deterministic.
func ownerOf(counts map[string]int) (string, int, int) {
	var owner string
	var best, total int
	authors := make([]string, 0, len(counts))
	for author := range counts {
		authors = append(authors, author)
	}
	sort.Strings(authors)
	for _, author := range authors {
		lines := counts[author]
		total += lines
		if lines > best {
			best = lines
			owner = author
		}
	}
	return owner, best, total
}

// sortedPaths returns map keys in ascending order.
func sortedPaths(m map[string]map[string]int) []string {
	paths := make([]string, 0, len(m))
	for p := range m {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

func writeCSVOwnership(w io.Writer, result *schema.OwnershipResult) error {
	header := []string{"path", "owner", "owned_lines", "total_lines"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, path := range sortedPaths(result.Files) {
			owner, owned, total := ownerOf(result.Files[path])
			row := []string{path, owner, strconv.Itoa(owned), strconv.Itoa(total)}
			if err := csvWriter.Write(row); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
		return nil
	})
}

func writeOwnershipTable(w io.Writer, result *schema.OwnershipResult, cfg *contract.Config, duration time.Duration) error {
	table := tablewriter.NewWriter(w)

	table.Header([]string{"Path", "Owner", "Owned", "Total", "Share"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	fmtFloat, _ := createFormatters(cfg.Precision)

	var data [][]string
	for _, path := range sortedPaths(result.Files) {
		owner, owned, total := ownerOf(result.Files[path])
		share := 0.0
		if total > 0 {
			share = float64(owned) / float64(total) * 100
		}
		row := []string{
			contract.TruncatePath(path, getMaxTablePathWidth(cfg)),
			owner,
			strconv.Itoa(owned),
			strconv.Itoa(total),
			fmtFloat(share) + "%",
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Fprintf(w, "Attributed %d files across %d directories\n", len(result.Files), len(result.Directories))
	if len(result.SkippedFiles) > 0 {
		fmt.Fprintf(w, "Skipped %d files with failed attribution\n", len(result.SkippedFiles))
	}
	fmt.Fprintf(w, "Ownership analysis completed in %v\n", duration)
	return nil
}

// WriteKnowledge outputs per-author expertise profiles, dispatching based on
// the output format configured.
func WriteKnowledge(result *schema.KnowledgeResult, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON knowledge results"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVKnowledge(w, result, cfg)
		}, "Wrote CSV knowledge results"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeKnowledgeTable(w, result, cfg, duration)
		}, "Wrote knowledge results"); err != nil {
			return fmt.Errorf("error writing knowledge table output: %w", err)
		}
	}
	return nil
}

// sortedAuthorsByContribution orders authors by repository contribution
// descending, name ascending on ties.
func sortedAuthorsByContribution(authors map[string]*schema.AuthorExpertise) []string {
	names := make([]string, 0, len(authors))
	for name := range authors {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		ci := authors[names[i]].RepositoryContribution
		cj := authors[names[j]].RepositoryContribution
		if ci != cj {
			return ci > cj
		}
		return names[i] < names[j]
	})
	return names
}

// topLanguage returns the language with the most owned lines for an author.
func topLanguage(exp *schema.AuthorExpertise) string {
	var best string
	var bestLines int
	langs := make([]string, 0, len(exp.Languages))
	for lang := range exp.Languages {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	for _, lang := range langs {
		if exp.Languages[lang] > bestLines {
			bestLines = exp.Languages[lang]
			best = lang
		}
	}
	return best
}

func writeCSVKnowledge(w io.Writer, result *schema.KnowledgeResult, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)
	header := []string{"author", "total_lines", "files", "directories", "top_language", "repository_contribution"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, name := range sortedAuthorsByContribution(result.Authors) {
			exp := result.Authors[name]
			row := []string{
				name,
				strconv.Itoa(exp.TotalLines),
				strconv.Itoa(len(exp.Files)),
				strconv.Itoa(len(exp.Directories)),
				topLanguage(exp),
				fmtFloat(exp.RepositoryContribution),
			}
			if err := csvWriter.Write(row); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
		return nil
	})
}

func writeKnowledgeTable(w io.Writer, result *schema.KnowledgeResult, cfg *contract.Config, duration time.Duration) error {
	table := tablewriter.NewWriter(w)

	table.Header([]string{"Author", "Lines", "Files", "Dirs", "Top Language", "Contribution"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	fmtFloat, _ := createFormatters(cfg.Precision)

	var data [][]string
	for _, name := range sortedAuthorsByContribution(result.Authors) {
		exp := result.Authors[name]
		row := []string{
			name,
			strconv.Itoa(exp.TotalLines),
			strconv.Itoa(len(exp.Files)),
			strconv.Itoa(len(exp.Directories)),
			topLanguage(exp),
			fmtFloat(exp.RepositoryContribution) + "%",
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Fprintf(w, "Mapped knowledge for %d authors\n", len(result.Authors))
	if len(result.SkippedFiles) > 0 {
		fmt.Fprintf(w, "Skipped %d files with failed attribution\n", len(result.SkippedFiles))
	}
	fmt.Fprintf(w, "Knowledge analysis completed in %v\n", duration)
	return nil
}
