package stats

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/csvtool/csvtool/internal/scanner"
)

func computeFixture(t *testing.T, content string) *Report {
	t.Helper()
	path := filepath.Join(t.TempDir(), "t.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	s, err := scanner.Open(path, ',')
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	rep, err := Compute(s, path)
	if err != nil {
		t.Fatal(err)
	}
	return rep
}

func TestComputeBasics(t *testing.T) {
	rep := computeFixture(t, "name,age\nAlice,30\nBob,\n")

	if rep.RowCount != 2 {
		t.Errorf("RowCount = %d, want 2", rep.RowCount)
	}
	if rep.ColumnCount != 2 {
		t.Errorf("ColumnCount = %d, want 2", rep.ColumnCount)
	}
	if rep.EmptyCells != 1 {
		t.Errorf("EmptyCells = %d, want 1", rep.EmptyCells)
	}
	if got := rep.EmptyPercent(); got != 25.0 {
		t.Errorf("EmptyPercent() = %v, want 25", got)
	}

	age := rep.Columns[1]
	if age.Distinct() != 2 {
		t.Errorf("age distinct = %d, want 2 (\"30\" and \"\")", age.Distinct())
	}
}

func TestMostCommonFirstToReachMaxWins(t *testing.T) {
	// b reaches count 2 first even though c catches up later.
	rep := computeFixture(t, "v\nb\nc\nb\nc\n")

	col := rep.Columns[0]
	if col.BestValue != "b" || col.BestCount != 2 {
		t.Errorf("most common = %q (%d), want %q (2)", col.BestValue, col.BestCount, "b")
	}
}

func TestEmptyTableGuards(t *testing.T) {
	rep := computeFixture(t, "")

	if rep.RowCount != 0 || rep.ColumnCount != 0 {
		t.Errorf("dimensions = %dx%d, want 0x0", rep.RowCount, rep.ColumnCount)
	}
	if got := rep.EmptyPercent(); got != 0 {
		t.Errorf("EmptyPercent() on empty table = %v, want 0", got)
	}
}

func TestRowsWiderThanHeader(t *testing.T) {
	// The extra cell counts toward empty-cell totals but has no column.
	rep := computeFixture(t, "a\nx,\n")

	if rep.RowCount != 1 {
		t.Errorf("RowCount = %d, want 1", rep.RowCount)
	}
	if rep.EmptyCells != 1 {
		t.Errorf("EmptyCells = %d, want 1", rep.EmptyCells)
	}
	if len(rep.Columns) != 1 {
		t.Fatalf("Columns = %d, want 1", len(rep.Columns))
	}
	if rep.Columns[0].Distinct() != 1 {
		t.Errorf("column a distinct = %d, want 1", rep.Columns[0].Distinct())
	}
}

func TestWriteFormat(t *testing.T) {
	rep := computeFixture(t, "name,age\nAlice,30\nBob,\n")

	var b strings.Builder
	rep.Write(&b)
	out := b.String()

	for _, want := range []string{
		"Dimensions: 2 rows x 2 columns",
		"Headers: name, age",
		"Empty cells: 1 (25.00%)",
		"Unique values: 2",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}
