package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/urltop/internal/model"
)

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"Source", "URLs", "Paths"}
	rows := [][]string{
		{"access.log", "1200", "12"},
		{"ログ.txt", "8", "3"},
	}
	rightAlign := map[int]bool{1: true, 2: true}

	lines := formatTable(headers, rows, rightAlign)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Source     URLs Paths" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "access.log 1200    12" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "ログ.txt      8     3" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}

func TestWriteHistory(t *testing.T) {
	var buf bytes.Buffer
	runs := []model.Run{
		{
			ID:        7,
			StartedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.Local),
			Source:    "stdin",
			Limit:     10,
			Report:    model.Report{TotalURLs: 42, DomainCount: 5, PathCount: 9},
		},
	}
	if err := WriteHistory(&buf, runs); err != nil {
		t.Fatalf("write history: %v", err)
	}
	out := buf.String()
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header and one row, got %q", out)
	}
	if !strings.HasPrefix(lines[0], "ID Started") {
		t.Fatalf("expected unstyled header for non-terminal output, got %q", lines[0])
	}
	for _, part := range []string{" 7 ", "2024-05-01 10:00:00", "stdin", "42", " 9"} {
		if !strings.Contains(lines[1], part) {
			t.Fatalf("row %q missing %q", lines[1], part)
		}
	}

	buf.Reset()
	if err := WriteHistory(&buf, nil); err != nil {
		t.Fatalf("write empty history: %v", err)
	}
	if buf.String() != "no recorded runs\n" {
		t.Fatalf("unexpected empty history output: %q", buf.String())
	}
}
