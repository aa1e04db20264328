package source

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/theirongolddev/launchdash/internal/model"
)

const header = ",Flight Number,Launch Site,class,Payload Mass (kg),Booster Version,Booster Version Category"

// writeDataset creates a temp CSV file and returns its path.
func writeDataset(t *testing.T, lines ...string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "spacex_launch_dash.csv")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseFile_Records(t *testing.T) {
	path := writeDataset(t,
		header,
		"0,1,CCAFS LC-40,0,0.0,F9 v1.0  B0003,v1.0",
		"1,2,CCAFS LC-40,0,525.0,F9 v1.0  B0005,v1.0",
		"2,3,KSC LC-39A,1,2490.0,F9 FT B1031.1,FT",
	)

	result, err := ParseFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []model.LaunchRecord{
		{Site: "CCAFS LC-40", PayloadKg: 0, BoosterCategory: "v1.0", Class: 0},
		{Site: "CCAFS LC-40", PayloadKg: 525, BoosterCategory: "v1.0", Class: 0},
		{Site: "KSC LC-39A", PayloadKg: 2490, BoosterCategory: "FT", Class: 1},
	}
	if diff := cmp.Diff(want, result.Records); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}
	if result.Lines != 3 {
		t.Errorf("Lines = %d, want 3", result.Lines)
	}
	if result.Path != path {
		t.Errorf("Path = %q, want %q", result.Path, path)
	}
}

func TestParse_ColumnOrderIndependent(t *testing.T) {
	in := "Booster Version Category,class,Payload Mass (kg),Launch Site\nB5,1,3600,VAFB SLC-4E\n"

	records, _, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("len(records) = %d, want 1", len(records))
	}
	got := records[0]
	if got.Site != "VAFB SLC-4E" || got.PayloadKg != 3600 || got.Class != 1 || got.BoosterCategory != "B5" {
		t.Errorf("record = %+v", got)
	}
}

func TestParse_MissingColumn(t *testing.T) {
	in := "Launch Site,class,Payload Mass (kg)\nKSC LC-39A,1,2490\n"

	_, _, err := Parse(strings.NewReader(in))
	if !errors.Is(err, ErrMissingColumn) {
		t.Fatalf("err = %v, want ErrMissingColumn", err)
	}
	if !strings.Contains(err.Error(), ColBoosterCategory) {
		t.Errorf("error %q does not name the missing column", err)
	}
}

func TestParse_ReportsEveryMissingColumn(t *testing.T) {
	_, _, err := Parse(strings.NewReader("Launch Site,Flight Number\nKSC LC-39A,1\n"))
	if !errors.Is(err, ErrMissingColumn) {
		t.Fatalf("err = %v, want ErrMissingColumn", err)
	}
	want := strings.Join(RequiredColumns[1:], ", ")
	if !strings.Contains(err.Error(), want) {
		t.Errorf("error %q, want it to list %q", err, want)
	}
}

func TestParse_EmptyInput(t *testing.T) {
	_, _, err := Parse(strings.NewReader(""))
	if !errors.Is(err, ErrMissingColumn) {
		t.Fatalf("err = %v, want ErrMissingColumn", err)
	}
}

func TestParse_MalformedRows(t *testing.T) {
	cases := map[string]string{
		"payload not a number": "KSC LC-39A,1,heavy,FT",
		"negative payload":     "KSC LC-39A,1,-10,FT",
		"class out of domain":  "KSC LC-39A,2,100,FT",
		"class not a number":   "KSC LC-39A,yes,100,FT",
		"empty site":           ",1,100,FT",
		"short row":            "KSC LC-39A,1",
	}

	for name, row := range cases {
		t.Run(name, func(t *testing.T) {
			in := "Launch Site,class,Payload Mass (kg),Booster Version Category\n" + row + "\n"
			_, _, err := Parse(strings.NewReader(in))
			if !errors.Is(err, ErrMalformedRow) {
				t.Fatalf("err = %v, want ErrMalformedRow", err)
			}
			if !strings.Contains(err.Error(), "line 2") {
				t.Errorf("error %q does not carry the line number", err)
			}
		})
	}
}

func TestParse_FloatClassAndBlankLines(t *testing.T) {
	in := "Launch Site,class,Payload Mass (kg),Booster Version Category\n" +
		"KSC LC-39A,1.0,100,FT\n" +
		",,,\n" +
		"KSC LC-39A,0.0,200,FT\n"

	records, lines, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("len(records) = %d, want 2 (blank row skipped)", len(records))
	}
	if lines != 3 {
		t.Errorf("lines = %d, want 3", lines)
	}
	if records[0].Class != 1 || records[1].Class != 0 {
		t.Errorf("classes = %d,%d want 1,0", records[0].Class, records[1].Class)
	}
}

func TestParseFile_Missing(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "nope.csv"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v, want os.ErrNotExist", err)
	}
}
