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

// WriteTimeline outputs the timeline buckets, dispatching based on the output format configured.
func WriteTimeline(result *schema.TimelineResult, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON timeline results"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVTimeline(w, result)
		}, "Wrote CSV timeline results"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTimelineTable(w, result, cfg, duration)
		}, "Wrote timeline results"); err != nil {
			return fmt.Errorf("error writing timeline table output: %w", err)
		}
	}
	return nil
}

// sortedPeriodKeys returns the bucket keys in ascending chronological order.
// Period keys sort lexicographically within a single period granularity.
func sortedPeriodKeys(buckets map[string]int) []string {
	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func writeCSVTimeline(w io.Writer, result *schema.TimelineResult) error {
	return writeCSVWithHeader(w, []string{"period", "commits"}, func(csvWriter *csv.Writer) error {
		for _, key := range sortedPeriodKeys(result.Buckets) {
			if err := csvWriter.Write([]string{key, strconv.Itoa(result.Buckets[key])}); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
		return nil
	})
}

func writeTimelineTable(w io.Writer, result *schema.TimelineResult, cfg *contract.Config, duration time.Duration) error {
	table := tablewriter.NewWriter(w)

	table.Header([]string{"Period", "Commits"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	total := 0
	for _, key := range sortedPeriodKeys(result.Buckets) {
		count := result.Buckets[key]
		total += count
		data = append(data, []string{key, strconv.Itoa(count)})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Fprintf(w, "Total commits: %d across %d periods\n", total, len(result.Buckets))
	if result.Anomalies > 0 {
		fmt.Fprintf(w, "Dropped %d malformed log records\n", result.Anomalies)
	}
	fmt.Fprintf(w, "Timeline analysis completed in %v\n", duration)
	return nil
}
