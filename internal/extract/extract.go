// Package extract projects selected columns into a new delimited file.
package extract

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pierrec/lz4/v4"

	"github.com/csvtool/csvtool/internal/scanner"
	"github.com/csvtool/csvtool/internal/table"
)

// Result reports what was written.
type Result struct {
	Columns int
	Rows    int
}

// Run resolves the comma-separated column spec against the input header and
// writes a synthesized header plus every row's selected fields to outPath.
// Fields absent from short rows are written empty, never rejected. Output
// paths ending in .lz4 are compressed through an lz4 frame.
//
// A failure mid-write leaves a truncated output file behind; this is batch
// tooling and callers must treat an aborted run's output as untrustworthy.
func Run(s *scanner.Scanner, spec, outPath string, separator byte) (Result, error) {
	header := s.Header()
	indices, err := table.ResolveList(spec, header)
	if err != nil {
		return Result{}, err
	}

	out, err := os.Create(outPath)
	if err != nil {
		return Result{}, fmt.Errorf("create %s: %w", outPath, err)
	}
	defer func() { _ = out.Close() }()

	var sink io.Writer = out
	var lzw *lz4.Writer
	if strings.HasSuffix(outPath, ".lz4") {
		lzw = lz4.NewWriter(out)
		sink = lzw
	}

	w := csv.NewWriter(sink)
	w.Comma = rune(separator)

	outHeader := make([]string, len(indices))
	for i, idx := range indices {
		outHeader[i] = header[idx]
	}
	if err := w.Write(outHeader); err != nil {
		return Result{}, fmt.Errorf("write %s: %w", outPath, err)
	}

	rows := 0
	buf := make([]string, len(indices))
	err = s.ForEach(func(row int, rec table.Record) error {
		for i, idx := range indices {
			field, _ := rec.Field(idx)
			buf[i] = field
		}
		if err := w.Write(buf); err != nil {
			return fmt.Errorf("write %s: %w", outPath, err)
		}
		rows++
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return Result{}, fmt.Errorf("flush %s: %w", outPath, err)
	}
	if lzw != nil {
		if err := lzw.Close(); err != nil {
			return Result{}, fmt.Errorf("close lz4 frame %s: %w", outPath, err)
		}
	}
	return Result{Columns: len(indices), Rows: rows}, nil
}
