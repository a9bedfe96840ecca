// Package stats computes descriptive statistics over one full pass of a
// delimited file.
package stats

import (
	"fmt"
	"io"
	"strings"

	"github.com/csvtool/csvtool/internal/scanner"
	"github.com/csvtool/csvtool/internal/table"
)

// ColumnStats accumulates value frequencies for one column. The most-common
// value is tracked during the scan: the first value to reach the maximum
// count wins, which keeps tie output deterministic without imposing a
// canonical ordering across equal counts.
type ColumnStats struct {
	Counts    map[string]int
	BestValue string
	BestCount int
}

// Observe records one field value.
func (c *ColumnStats) Observe(value string) {
	if c.Counts == nil {
		c.Counts = make(map[string]int)
	}
	c.Counts[value]++
	if n := c.Counts[value]; n > c.BestCount {
		c.BestCount = n
		c.BestValue = value
	}
}

// Distinct returns the number of distinct observed values.
func (c *ColumnStats) Distinct() int {
	return len(c.Counts)
}

// Report holds the aggregate results of a stats pass. It is derived state,
// recomputed from the file on every run.
type Report struct {
	Path        string
	Header      table.Header
	RowCount    int
	ColumnCount int
	EmptyCells  int
	Columns     []ColumnStats
}

// Compute runs the single full pass over s.
func Compute(s *scanner.Scanner, path string) (*Report, error) {
	header := s.Header()
	rep := &Report{
		Path:        path,
		Header:      header,
		ColumnCount: len(header),
		Columns:     make([]ColumnStats, len(header)),
	}

	err := s.ForEach(func(row int, rec table.Record) error {
		rep.RowCount++
		for i, field := range rec {
			if field == "" {
				rep.EmptyCells++
			}
			// Fields beyond the header width are counted as cells but
			// belong to no named column.
			if i < len(rep.Columns) {
				rep.Columns[i].Observe(field)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rep, nil
}

// EmptyPercent returns the share of empty cells over row_count*column_count.
// Tables with no cells report 0 rather than dividing by zero.
func (r *Report) EmptyPercent() float64 {
	total := r.RowCount * r.ColumnCount
	if total == 0 {
		return 0
	}
	return float64(r.EmptyCells) / float64(total) * 100
}

// Write renders the report as informational text. No file is written.
func (r *Report) Write(w io.Writer) {
	fmt.Fprintf(w, "CSV File Statistics: %s\n", r.Path)
	fmt.Fprintln(w, strings.Repeat("-", 51))
	fmt.Fprintf(w, "Dimensions: %d rows x %d columns\n", r.RowCount, r.ColumnCount)
	fmt.Fprintf(w, "Headers: %s\n", strings.Join(r.Header, ", "))
	fmt.Fprintf(w, "Empty cells: %d (%.2f%%)\n", r.EmptyCells, r.EmptyPercent())
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Column Statistics:")
	for i, name := range r.Header {
		col := &r.Columns[i]
		fmt.Fprintf(w, "  %d [%s]:\n", i+1, name)
		fmt.Fprintf(w, "    - Unique values: %d\n", col.Distinct())
		if col.BestCount > 0 {
			pct := 0.0
			if r.RowCount > 0 {
				pct = float64(col.BestCount) / float64(r.RowCount) * 100
			}
			fmt.Fprintf(w, "    - Most common: %q (%d times, %.1f%%)\n",
				col.BestValue, col.BestCount, pct)
		}
	}
}
