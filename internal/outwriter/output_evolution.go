package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/bmeddeb/gitlens/internal/contract"
	"github.com/bmeddeb/gitlens/schema"
)

// WriteEvolution outputs the file evolution entries, dispatching based on the output format configured.
func WriteEvolution(result *schema.EvolutionResult, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON evolution results"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVEvolution(w, result)
		}, "Wrote CSV evolution results"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeEvolutionTable(w, result, cfg, duration)
		}, "Wrote evolution results"); err != nil {
			return fmt.Errorf("error writing evolution table output: %w", err)
		}
	}
	return nil
}

func writeCSVEvolution(w io.Writer, result *schema.EvolutionResult) error {
	header := []string{"commit_hash", "author", "email", "timestamp", "lines_added", "lines_removed", "message"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, e := range result.Entries {
			row := []string{
				e.CommitHash,
				e.Author,
				e.Email,
				strconv.FormatInt(e.Timestamp, 10),
				strconv.Itoa(e.LinesAdded),
				strconv.Itoa(e.LinesRemoved),
				e.Message,
			}
			if err := csvWriter.Write(row); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
		return nil
	})
}

func writeEvolutionTable(w io.Writer, result *schema.EvolutionResult, cfg *contract.Config, duration time.Duration) error {
	table := tablewriter.NewWriter(w)

	table.Header([]string{"Commit", "Date", "Author", "Added", "Removed", "Message"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var green, red func(...any) string
	if cfg.UseColors {
		green = color.New(color.FgGreen).SprintFunc()
		red = color.New(color.FgRed).SprintFunc()
	} else {
		green = fmt.Sprint
		red = fmt.Sprint
	}

	var data [][]string
	for _, e := range result.Entries {
		hash := e.CommitHash
		if len(hash) > 8 {
			hash = hash[:8]
		}
		row := []string{
			hash,
			time.Unix(e.Timestamp, 0).Format("2006-01-02"),
			e.Author,
			green(fmt.Sprintf("+%d", e.LinesAdded)),
			red(fmt.Sprintf("-%d", e.LinesRemoved)),
			contract.TruncatePath(e.Message, getMaxTablePathWidth(cfg)),
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Fprintf(w, "File %s changed in %d commits\n", result.Path, len(result.Entries))
	if result.Anomalies > 0 {
		fmt.Fprintf(w, "Dropped %d malformed log records\n", result.Anomalies)
	}
	fmt.Fprintf(w, "Evolution analysis completed in %v\n", duration)
	return nil
}
