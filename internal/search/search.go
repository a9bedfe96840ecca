// Package search scans data rows for a case-insensitive substring in one
// resolved column.
package search

import (
	"fmt"
	"io"
	"strings"

	"github.com/csvtool/csvtool/internal/render"
	"github.com/csvtool/csvtool/internal/scanner"
	"github.com/csvtool/csvtool/internal/table"
)

// Run resolves column against the scanner's header, then prints every row
// whose resolved field contains term (both sides lowercased) tagged with its
// original 1-based row number. Rows too short to have the column never
// match. Resolution failures abort before any scanning. Returns the match
// count.
func Run(s *scanner.Scanner, column, term string, width int, w io.Writer) (int, error) {
	header := s.Header()
	idx, err := table.ParseColumnRef(column).Resolve(header)
	if err != nil {
		return 0, err
	}

	p := render.NewWidth(w, width)
	fmt.Fprintf(w, "Searching for %q in column %q:\n", term, header[idx])
	p.Separator()
	p.Header(header)
	p.Separator()

	needle := strings.ToLower(term)
	matches := 0
	err = s.ForEach(func(row int, rec table.Record) error {
		field, ok := rec.Field(idx)
		if !ok {
			return nil
		}
		if strings.Contains(strings.ToLower(field), needle) {
			p.Record(row, rec)
			matches++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	p.Separator()
	fmt.Fprintf(w, "Found %d matching rows\n", matches)
	return matches, nil
}
