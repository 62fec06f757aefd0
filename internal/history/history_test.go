package history

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/spigell/skin-advisor/internal/skincare"
)

func readRows(t *testing.T, path string) [][]string {
	t.Helper()

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening history: %v", err)
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("reading history: %v", err)
	}
	return rows
}

func sampleRecord(id string) *Record {
	return &Record{
		ID:        id,
		Timestamp: time.Date(2025, 3, 4, 10, 30, 0, 0, time.UTC),
		SkinType:  skincare.SkinOily,
		Issue:     "acne",
		Answers: []skincare.Answer{
			{Question: "What is your age?", Text: "24"},
			{Question: "Do you use heavy makeup? (yes/no)", Text: "no"},
		},
		Recommendation: "✅ Acne:\n- Ingredients: BHA\n- Products: Toner",
		Advice:         "Cleanse twice.\r\nUse SPF.",
	}
}

func TestFileRecorderAppend(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "history.csv")
	recorder := NewFileRecorder(path)

	if err := recorder.Append(sampleRecord("first")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := recorder.Append(sampleRecord("second")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows := readRows(t, path)
	if len(rows) != 3 {
		t.Fatalf("expected header and 2 records, got %d rows", len(rows))
	}

	if diff := cmp.Diff(Header, rows[0]); diff != "" {
		t.Fatalf("unexpected header (-want +got):\n%s", diff)
	}

	expected := []string{
		"2025-03-04T10:30:00Z",
		"first",
		"oily",
		"acne",
		`{"Do you use heavy makeup? (yes/no)":"no","What is your age?":"24"}`,
		"✅ Acne:;- Ingredients: BHA;- Products: Toner",
		"Cleanse twice.;Use SPF.",
	}
	if diff := cmp.Diff(expected, rows[1]); diff != "" {
		t.Fatalf("unexpected record (-want +got):\n%s", diff)
	}

	if rows[2][1] != "second" {
		t.Fatalf("expected second record to be appended, got %q", rows[2][1])
	}
}

func TestFileRecorderKeepsExistingContent(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "history.csv")
	if err := os.WriteFile(path, []byte("legacy,row\n"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	if err := NewFileRecorder(path).Append(sampleRecord("new")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading history: %v", err)
	}

	reader := csv.NewReader(strings.NewReader(string(data)))
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		t.Fatalf("parsing history: %v", err)
	}

	if len(rows) != 2 || rows[0][0] != "legacy" || rows[1][1] != "new" {
		t.Fatalf("expected legacy row followed by new record without header, got %v", rows)
	}
}

func TestFileRecorderRejectsNil(t *testing.T) {
	t.Parallel()

	if err := NewFileRecorder(filepath.Join(t.TempDir(), "h.csv")).Append(nil); err == nil {
		t.Fatal("expected error for nil record")
	}
}

func TestFileRecorderUnwritablePath(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing-dir", "history.csv")
	if err := NewFileRecorder(path).Append(sampleRecord("x")); err == nil {
		t.Fatal("expected error for missing directory")
	}
}
