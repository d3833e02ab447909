// Package report renders a finished scan as a terminal table or as JSON.
package report

import (
	"cmp"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/duview/duview/pkg/fsutils"
	"github.com/duview/duview/pkg/scan"
)

const (
	// TabSpacing is the number of spaces between tabwriter columns.
	TabSpacing = 2

	// TopN caps the largest-entries list; full inventories can run to
	// millions of rows.
	TopN = 10
)

// Report is the printable summary of one scan.
type Report struct {
	Root           string                  `json:"root"`
	TotalSize      int64                   `json:"total_size"`
	FileCount      int64                   `json:"file_count"`
	DirCount       int64                   `json:"dir_count"`
	CategoryTotals map[scan.Category]int64 `json:"category_totals"`
	Largest        []scan.Entry            `json:"largest"`
	Elapsed        time.Duration           `json:"elapsed"`
}

// New builds a report from a scan result. Largest holds the TopN biggest
// entries of any kind, biggest first.
func New(root string, agg *scan.Aggregate, elapsed time.Duration) *Report {
	return &Report{
		Root:           root,
		TotalSize:      agg.TotalSize,
		FileCount:      agg.FileCount,
		DirCount:       agg.DirCount,
		CategoryTotals: agg.CategoryTotals,
		Largest:        largestEntries(agg, TopN),
		Elapsed:        elapsed,
	}
}

func largestEntries(agg *scan.Aggregate, n int) []scan.Entry {
	entries := slices.Clone(agg.Entries)
	slices.SortStableFunc(entries, func(a, b scan.Entry) int {
		return cmp.Compare(b.Size, a.Size)
	})
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

// PrintJSON outputs the report in JSON format.
func PrintJSON(r *Report, writer io.Writer) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}

// PrintTable outputs the report in human-readable table format. Lists count
// down so the biggest item sits at the bottom, next to the prompt.
func PrintTable(r *Report, writer io.Writer) error {
	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)

	fmt.Fprintf(w, "Scanned:\t%s\n", r.Root)

	fmt.Fprintln(w, "\nCategories:\t\t")
	categories := make([]scan.Category, 0, len(r.CategoryTotals))
	for c, size := range r.CategoryTotals {
		if size > 0 {
			categories = append(categories, c)
		}
	}
	slices.SortStableFunc(categories, func(a, b scan.Category) int {
		if c := cmp.Compare(r.CategoryTotals[b], r.CategoryTotals[a]); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
	for i := len(categories) - 1; i >= 0; i-- {
		c := categories[i]
		size := r.CategoryTotals[c]
		fmt.Fprintf(w, "  %d) %s:\t%s (%.1f%%)\n",
			i+1, c, fsutils.FormatBytes(size), r.percent(size))
	}

	fmt.Fprintln(w, "\nLargest entries:\t\t")
	for i := len(r.Largest) - 1; i >= 0; i-- {
		e := r.Largest[i]
		fmt.Fprintf(w, "  %d) '%s'\t%s (%.1f%%)\n",
			i+1, e.Path, fsutils.FormatBytes(e.Size), r.percent(e.Size))
	}

	fmt.Fprintln(w, "\nStats:\t\t")
	fmt.Fprintf(w, "Total files:\t%d\n", r.FileCount)
	fmt.Fprintf(w, "Total directories:\t%d\n", r.DirCount)
	fmt.Fprintf(w, "Total size:\t%s (%d bytes)\n",
		humanize.IBytes(uint64(r.TotalSize)), r.TotalSize)

	fmt.Fprintf(w, "\nElapsed:\t%v\n", r.Elapsed)

	return w.Flush()
}

func (r *Report) percent(size int64) float64 {
	if r.TotalSize <= 0 {
		return 0
	}
	return 100.0 * float64(size) / float64(r.TotalSize)
}
