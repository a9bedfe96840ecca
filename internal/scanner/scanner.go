// Package scanner reads delimited text files with a header row and flexible
// row widths. Input is memory-mapped; when the lz4 frame magic is detected
// the content is decompressed transparently before parsing.
package scanner

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pierrec/lz4/v4"

	"github.com/csvtool/csvtool/internal/common"
	"github.com/csvtool/csvtool/internal/table"
)

// ErrParse marks malformed delimited content.
var ErrParse = errors.New("parse error")

// Scanner streams one file's rows. Not safe for concurrent use; the tools
// run a single logical thread per invocation.
type Scanner struct {
	path   string
	file   *os.File
	mapped []byte // original mapping, released on Close
	reader *csv.Reader
	header table.Header
	row    int // 1-based data row counter
}

// Open maps the file, unwraps an lz4 frame if present, strips a UTF-8 BOM,
// and reads the header row. An empty file yields an empty header.
func Open(path string, separator byte) (*Scanner, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	mapped, err := common.MmapFile(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("map %s: %w", path, err)
	}

	data := mapped
	if common.IsLZ4(data) {
		decompressed, lzErr := io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
		if lzErr != nil {
			_ = common.MunmapFile(mapped)
			_ = f.Close()
			return nil, fmt.Errorf("%w: lz4 frame in %s: %v", ErrParse, path, lzErr)
		}
		data = decompressed
	}

	// UTF-8 BOM (EF BB BF)
	if len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF {
		data = data[3:]
	}

	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = rune(separator)
	r.FieldsPerRecord = -1 // flexible row width

	s := &Scanner{path: path, file: f, mapped: mapped, reader: r}

	header, err := r.Read()
	if err != nil {
		if err == io.EOF {
			s.header = table.Header{}
			return s, nil
		}
		_ = s.Close()
		return nil, fmt.Errorf("%w: header of %s: %v", ErrParse, path, err)
	}
	s.header = table.Header(header)
	return s, nil
}

// Header returns the column names from the first row.
func (s *Scanner) Header() table.Header {
	return s.header
}

// Next returns the next data record and its 1-based row number.
// io.EOF signals the end of the file.
func (s *Scanner) Next() (table.Record, int, error) {
	rec, err := s.reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, 0, io.EOF
		}
		return nil, 0, fmt.Errorf("%w: %s: %v", ErrParse, s.path, err)
	}
	s.row++
	return table.Record(rec), s.row, nil
}

// ForEach streams every remaining record through fn, stopping on the first
// error fn returns.
func (s *Scanner) ForEach(fn func(row int, rec table.Record) error) error {
	for {
		rec, row, err := s.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := fn(row, rec); err != nil {
			return err
		}
	}
}

// Close releases the mapping and the file handle. Safe to call more than
// once.
func (s *Scanner) Close() error {
	var first error
	if s.mapped != nil {
		first = common.MunmapFile(s.mapped)
		s.mapped = nil
	}
	if s.file != nil {
		if err := s.file.Close(); err != nil && first == nil {
			first = err
		}
		s.file = nil
	}
	return first
}
