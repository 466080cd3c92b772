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

// WriteHotspots outputs the ranked hotspots, dispatching based on the output format configured.
func WriteHotspots(result *schema.HotspotResult, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON hotspot results"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVHotspots(w, result, cfg, fmtFloat)
		}, "Wrote CSV hotspot results"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeHotspotTable(w, result, cfg, fmtFloat, duration)
		}, "Wrote hotspot results"); err != nil {
			return fmt.Errorf("error writing hotspot table output: %w", err)
		}
	}
	return nil
}

func limitHotspotEntries(entries []schema.HotspotEntry, limit int) []schema.HotspotEntry {
	if limit > 0 && len(entries) > limit {
		return entries[:limit]
	}
	return entries
}

func writeCSVHotspots(w io.Writer, result *schema.HotspotResult, cfg *contract.Config, fmtFloat func(float64) string) error {
	header := []string{"path", "churn_factor", "complexity", "hotspot_factor"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, e := range limitHotspotEntries(result.Entries, cfg.ResultLimit) {
			row := []string{
				e.Path,
				strconv.Itoa(e.ChurnFactor),
				strconv.Itoa(e.Complexity),
				fmtFloat(e.HotspotFactor),
			}
			if err := csvWriter.Write(row); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
		return nil
	})
}

func writeHotspotTable(w io.Writer, result *schema.HotspotResult, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	table := tablewriter.NewWriter(w)

	table.Header([]string{"Rank", "Path", "Churn", "Lines", "Factor"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var red func(...any) string
	if cfg.UseColors {
		red = color.New(color.FgRed).SprintFunc()
	} else {
		red = fmt.Sprint
	}

	entries := limitHotspotEntries(result.Entries, cfg.ResultLimit)

	var data [][]string
	for i, e := range entries {
		factorStr := fmtFloat(e.HotspotFactor)
		// Highlight the top quartile of the displayed entries
		if i < (len(entries)+3)/4 {
			factorStr = red(factorStr)
		}
		row := []string{
			strconv.Itoa(i + 1),
			contract.TruncatePath(e.Path, getMaxTablePathWidth(cfg)),
			strconv.Itoa(e.ChurnFactor),
			strconv.Itoa(e.Complexity),
			factorStr,
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Fprintf(w, "Showing top %d of %d hotspots\n", len(entries), len(result.Entries))
	if result.Skipped > 0 {
		fmt.Fprintf(w, "Skipped %d unreadable files\n", result.Skipped)
	}
	fmt.Fprintf(w, "Hotspot analysis completed in %v\n", duration)
	return nil
}
