// Package render prints records as pipe-delimited table lines with a row
// marker column and display-only field truncation.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/csvtool/csvtool/internal/scanner"
	"github.com/csvtool/csvtool/internal/table"
)

const (
	// DefaultTruncateWidth is the display width above which a field is
	// shortened. Truncation never affects computed values.
	DefaultTruncateWidth = 20

	separatorWidth = 80
	ellipsis       = "..."
)

// Printer writes tabulated rows to a single destination.
type Printer struct {
	w     io.Writer
	width int
}

// New returns a Printer with the default truncation width.
func New(w io.Writer) *Printer {
	return NewWidth(w, DefaultTruncateWidth)
}

// NewWidth returns a Printer truncating fields longer than width bytes.
// Widths too small to hold the ellipsis fall back to the default.
func NewWidth(w io.Writer, width int) *Printer {
	if width <= len(ellipsis) {
		width = DefaultTruncateWidth
	}
	return &Printer{w: w, width: width}
}

// Separator writes the horizontal rule between header and body.
func (p *Printer) Separator() {
	fmt.Fprintln(p.w, strings.Repeat("-", separatorWidth))
}

// Header prints the header row tagged with the non-numeric H marker.
func (p *Printer) Header(h table.Header) {
	p.row("H", h)
}

// Record prints one data row with its 1-based number.
func (p *Printer) Record(num int, rec table.Record) {
	p.row(fmt.Sprintf("%d", num), rec)
}

func (p *Printer) row(marker string, fields []string) {
	var b strings.Builder
	fmt.Fprintf(&b, "%5s | ", marker)
	for i, field := range fields {
		if i > 0 {
			b.WriteString(" | ")
		}
		b.WriteString(p.truncate(field))
	}
	fmt.Fprintln(p.w, b.String())
}

// truncate shortens a field for display only.
func (p *Printer) truncate(field string) string {
	if len(field) > p.width {
		return field[:p.width-len(ellipsis)] + ellipsis
	}
	return field
}

// Tabulate streams every row of s, printing the first head rows (all rows
// when head is 0) and reading the rest silently so the final count covers
// the whole file. It returns the total number of data rows.
func Tabulate(s *scanner.Scanner, head int, skipHeader bool, width int, w io.Writer) (int, error) {
	p := NewWidth(w, width)
	if !skipHeader {
		p.Header(s.Header())
		p.Separator()
	}

	total := 0
	err := s.ForEach(func(row int, rec table.Record) error {
		total++
		if head == 0 || row <= head {
			p.Record(row, rec)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	p.Separator()
	fmt.Fprintf(w, "Total rows: %d\n", total)
	return total, nil
}
