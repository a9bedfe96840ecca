package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/csvtool/csvtool/internal/scanner"
	"github.com/csvtool/csvtool/internal/table"
)

func TestTruncate(t *testing.T) {
	p := NewWidth(nil, 20)

	tests := []struct {
		name  string
		field string
		want  string
	}{
		{name: "short untouched", field: "hello", want: "hello"},
		{name: "exactly 20 untouched", field: strings.Repeat("x", 20), want: strings.Repeat("x", 20)},
		{name: "21 gets cut to 17 plus ellipsis", field: strings.Repeat("x", 21), want: strings.Repeat("x", 17) + "..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.truncate(tt.field); got != tt.want {
				t.Errorf("truncate(%q) = %q, want %q", tt.field, got, tt.want)
			}
		})
	}
}

func TestHeaderMarker(t *testing.T) {
	var b strings.Builder
	p := New(&b)
	p.Header(table.Header{"a", "b"})

	got := b.String()
	if !strings.HasPrefix(got, "    H | ") {
		t.Errorf("header line = %q, want H marker prefix", got)
	}
	if !strings.Contains(got, "a | b") {
		t.Errorf("header line = %q, missing pipe-delimited fields", got)
	}
}

func openFixture(t *testing.T, content string) *scanner.Scanner {
	t.Helper()
	path := filepath.Join(t.TempDir(), "t.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	s, err := scanner.Open(path, ',')
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestTabulateCountsAllRows(t *testing.T) {
	s := openFixture(t, "h\n1\n2\n3\n4\n")

	var b strings.Builder
	total, err := Tabulate(s, 2, false, DefaultTruncateWidth, &b)
	if err != nil {
		t.Fatal(err)
	}

	// head=2 limits display, not the count.
	if total != 4 {
		t.Errorf("total = %d, want 4", total)
	}
	out := b.String()
	if !strings.Contains(out, "Total rows: 4") {
		t.Errorf("output missing full total:\n%s", out)
	}
	if strings.Contains(out, "    3 | ") {
		t.Errorf("row 3 displayed despite head=2:\n%s", out)
	}
}

func TestTabulateSkipHeader(t *testing.T) {
	s := openFixture(t, "h\n1\n")

	var b strings.Builder
	if _, err := Tabulate(s, 0, true, DefaultTruncateWidth, &b); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(b.String(), "    H | ") {
		t.Errorf("header displayed despite skip-header:\n%s", b.String())
	}
}

func TestTabulateHeadZeroPrintsEverything(t *testing.T) {
	s := openFixture(t, "h\nfirst\nsecond\n")

	var b strings.Builder
	if _, err := Tabulate(s, 0, false, DefaultTruncateWidth, &b); err != nil {
		t.Fatal(err)
	}
	out := b.String()
	if !strings.Contains(out, "first") || !strings.Contains(out, "second") {
		t.Errorf("head=0 should print every row:\n%s", out)
	}
}
