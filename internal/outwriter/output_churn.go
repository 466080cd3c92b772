package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/bmeddeb/gitlens/internal/contract"
	"github.com/bmeddeb/gitlens/schema"
)

// WriteChurn outputs the churn records, dispatching based on the output format configured.
func WriteChurn(result *schema.ChurnResult, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON churn results"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVChurn(w, result, cfg)
		}, "Wrote CSV churn results"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeChurnTable(w, result, cfg, duration)
		}, "Wrote churn results"); err != nil {
			return fmt.Errorf("error writing churn table output: %w", err)
		}
	}
	return nil
}

// sortedChurnRecords orders records by change count descending, path
// ascending on ties, truncated to the configured result limit.
func sortedChurnRecords(result *schema.ChurnResult, limit int) []*schema.ChurnRecord {
	records := make([]*schema.ChurnRecord, 0, len(result.Records))
	for _, rec := range result.Records {
		records = append(records, rec)
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].ChangeCount != records[j].ChangeCount {
			return records[i].ChangeCount > records[j].ChangeCount
		}
		return records[i].Path < records[j].Path
	})
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records
}

func writeCSVChurn(w io.Writer, result *schema.ChurnResult, cfg *contract.Config) error {
	header := []string{"path", "change_count", "last_modified", "primary_owner", "authors"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, rec := range sortedChurnRecords(result, cfg.ResultLimit) {
			row := []string{
				rec.Path,
				strconv.Itoa(rec.ChangeCount),
				strconv.FormatInt(rec.LastModified, 10),
				rec.PrimaryOwner,
				strings.Join(rec.Authors, ";"),
			}
			if err := csvWriter.Write(row); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
		return nil
	})
}

func writeChurnTable(w io.Writer, result *schema.ChurnResult, cfg *contract.Config, duration time.Duration) error {
	table := tablewriter.NewWriter(w)

	table.Header([]string{"Rank", "Path", "Changes", "Last Modified", "Owner"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for i, rec := range sortedChurnRecords(result, cfg.ResultLimit) {
		row := []string{
			strconv.Itoa(i + 1),
			contract.TruncatePath(rec.Path, getMaxTablePathWidth(cfg)),
			strconv.Itoa(rec.ChangeCount),
			time.Unix(rec.LastModified, 0).Format("2006-01-02"),
			rec.PrimaryOwner,
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Fprintf(w, "Tracked churn for %d paths\n", len(result.Records))
	fmt.Fprintf(w, "Churn analysis completed in %v\n", duration)
	return nil
}

// WriteFrequency outputs the change-frequency entries, dispatching based on the output format configured.
func WriteFrequency(result *schema.FrequencyResult, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON frequency results"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVFrequency(w, result, cfg)
		}, "Wrote CSV frequency results"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeFrequencyTable(w, result, cfg, duration)
		}, "Wrote frequency results"); err != nil {
			return fmt.Errorf("error writing frequency table output: %w", err)
		}
	}
	return nil
}

func limitFrequencyEntries(entries []schema.FileChangeFrequency, limit int) []schema.FileChangeFrequency {
	if limit > 0 && len(entries) > limit {
		return entries[:limit]
	}
	return entries
}

func writeCSVFrequency(w io.Writer, result *schema.FrequencyResult, cfg *contract.Config) error {
	header := []string{"path", "change_count", "last_modified", "primary_owner", "authors"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, e := range limitFrequencyEntries(result.Entries, cfg.ResultLimit) {
			row := []string{
				e.Path,
				strconv.Itoa(e.ChangeCount),
				strconv.FormatInt(e.LastModified, 10),
				e.PrimaryOwner,
				strings.Join(e.Authors, ";"),
			}
			if err := csvWriter.Write(row); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
		return nil
	})
}

func writeFrequencyTable(w io.Writer, result *schema.FrequencyResult, cfg *contract.Config, duration time.Duration) error {
	table := tablewriter.NewWriter(w)

	table.Header([]string{"Rank", "Path", "Changes", "Last Modified", "Authors", "Owner"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for i, e := range limitFrequencyEntries(result.Entries, cfg.ResultLimit) {
		row := []string{
			strconv.Itoa(i + 1),
			contract.TruncatePath(e.Path, getMaxTablePathWidth(cfg)),
			strconv.Itoa(e.ChangeCount),
			time.Unix(e.LastModified, 0).Format("2006-01-02"),
			strconv.Itoa(len(e.Authors)),
			e.PrimaryOwner,
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Fprintf(w, "Showing top %d of %d changed paths\n", len(limitFrequencyEntries(result.Entries, cfg.ResultLimit)), len(result.Entries))
	fmt.Fprintf(w, "Frequency analysis completed in %v\n", duration)
	return nil
}
