// Package table models delimited-table primitives: the header row, data
// records with flexible width, and user-supplied column references.
package table

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Error kinds surfaced by column resolution.
var (
	ErrColumnNotFound = errors.New("column not found")
	ErrOutOfRange     = errors.New("column index out of range")
)

// Header is the ordered list of column names taken from the first row.
// Names are not required to be unique; name lookup returns the first match.
type Header []string

// Record is one data row. Its length may legitimately differ from the
// header's when the source has uneven rows.
type Record []string

// Field returns the value at index i. Absence is reported instead of an
// error when the record is shorter than i+1.
func (r Record) Field(i int) (string, bool) {
	if i < 0 || i >= len(r) {
		return "", false
	}
	return r[i], true
}

// ColumnRef is a column reference classified once from user input: either a
// zero-based index or a literal column name.
type ColumnRef struct {
	Index  int
	Name   string
	byName bool
}

// ParseColumnRef classifies a token. Tokens that parse as a non-negative
// integer reference a position; everything else is a name.
func ParseColumnRef(token string) ColumnRef {
	if idx, err := strconv.ParseUint(token, 10, 31); err == nil {
		return ColumnRef{Index: int(idx)}
	}
	return ColumnRef{Name: token, byName: true}
}

// Resolve maps the reference to a position in header. Index references are
// bounds-checked; name references match exactly (case-sensitive), first
// occurrence wins when the header has duplicates.
func (c ColumnRef) Resolve(header Header) (int, error) {
	if !c.byName {
		if c.Index >= len(header) {
			return 0, fmt.Errorf("%w: %d (valid range 0-%d)", ErrOutOfRange, c.Index, len(header)-1)
		}
		return c.Index, nil
	}
	for i, name := range header {
		if name == c.Name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrColumnNotFound, c.Name)
}

// ResolveList resolves a comma-separated column spec against header. Each
// token is trimmed of surrounding whitespace and resolved independently.
// Duplicate references are legal and keep their given order.
func ResolveList(spec string, header Header) ([]int, error) {
	tokens := strings.Split(spec, ",")
	indices := make([]int, 0, len(tokens))
	for _, token := range tokens {
		idx, err := ParseColumnRef(strings.TrimSpace(token)).Resolve(header)
		if err != nil {
			return nil, err
		}
		indices = append(indices, idx)
	}
	return indices, nil
}
