// Package parquet exports analysis results to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"sort"

	"github.com/parquet-go/parquet-go"

	"github.com/bmeddeb/gitlens/schema"
)

// HotspotRow represents one ranked hotspot entry.
type HotspotRow struct {
	// FilePath is the relative path to the file in the repository
	FilePath string `parquet:"file_path,snappy"`

	// ChurnFactor is the number of distinct commits touching this file
	ChurnFactor int32 `parquet:"churn_factor,snappy"`

	// Complexity is the current line count of the file
	Complexity int32 `parquet:"complexity,snappy"`

	// HotspotFactor is churn weighted by the size proxy
	HotspotFactor float64 `parquet:"hotspot_factor,snappy"`
}

// ExpertiseRow represents one author's knowledge-map rollup.
type ExpertiseRow struct {
	// Author is the author name as recorded in history
	Author string `parquet:"author,snappy"`

	// TotalLines is the number of lines currently attributed to the author
	TotalLines int32 `parquet:"total_lines,snappy"`

	// FileCount is the number of files the author owns lines in
	FileCount int32 `parquet:"file_count,snappy"`

	// DirectoryCount is the number of directories the author owns lines in
	DirectoryCount int32 `parquet:"directory_count,snappy"`

	// RepositoryContribution is the author's share of all attributed lines, 0-100
	RepositoryContribution float64 `parquet:"repository_contribution,snappy"`
}

// WriteHotspots writes ranked hotspot entries to a Parquet file.
func WriteHotspots(entries []schema.HotspotEntry, outputPath string) error {
	rows := make([]HotspotRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, HotspotRow{
			FilePath:      e.Path,
			ChurnFactor:   int32(e.ChurnFactor),
			Complexity:    int32(e.Complexity),
			HotspotFactor: e.HotspotFactor,
		})
	}
	return writeRows(rows, outputPath)
}

// WriteExpertise writes per-author knowledge-map rollups to a Parquet file.
// Rows are ordered by author name so output is reproducible.
func WriteExpertise(authors map[string]*schema.AuthorExpertise, outputPath string) error {
	names := make([]string, 0, len(authors))
	for name := range authors {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([]ExpertiseRow, 0, len(names))
	for _, name := range names {
		exp := authors[name]
		rows = append(rows, ExpertiseRow{
			Author:                 name,
			TotalLines:             int32(exp.TotalLines),
			FileCount:              int32(len(exp.Files)),
			DirectoryCount:         int32(len(exp.Directories)),
			RepositoryContribution: exp.RepositoryContribution,
		})
	}
	return writeRows(rows, outputPath)
}

// writeRows writes a slice of records to a Parquet file using struct schema
// inference from the parquet tags.
func writeRows[T any](rows []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[T](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(rows); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}
