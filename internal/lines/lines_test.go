package lines

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func readAll(r *Reader) []string {
	var out []string
	for r.Scan() {
		out = append(out, r.Text())
	}
	return out
}

func TestReaderSplitsLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty", input: "", want: nil},
		{name: "single without newline", input: "abc", want: []string{"abc"}},
		{name: "single with newline", input: "abc\n", want: []string{"abc"}},
		{name: "blank lines kept", input: "a\n\nb\n", want: []string{"a", "", "b"}},
		{name: "carriage return kept", input: "a\r\nb", want: []string{"a\r", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReader(strings.NewReader(tt.input))
			got := readAll(r)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d lines, got %d: %q", len(tt.want), len(got), got)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("line %d: expected %q, got %q", i, tt.want[i], got[i])
				}
			}
			if r.Count() != len(tt.want) {
				t.Fatalf("expected count %d, got %d", len(tt.want), r.Count())
			}
			if r.Err() != nil {
				t.Fatalf("unexpected error: %v", r.Err())
			}
		})
	}
}

func TestReaderLongLine(t *testing.T) {
	long := strings.Repeat("x", 3*readBufferSize)
	r := NewReader(strings.NewReader(long + "\nshort"))
	got := readAll(r)
	if len(got) != 2 || got[0] != long || got[1] != "short" {
		t.Fatalf("unexpected lines: %d", len(got))
	}
}

type brokenReader struct{}

func (brokenReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

func TestReaderPropagatesError(t *testing.T) {
	r := NewReader(io.MultiReader(strings.NewReader("ok\n"), brokenReader{}))
	got := readAll(r)
	if len(got) != 1 || got[0] != "ok" {
		t.Fatalf("expected the first line before the error, got %q", got)
	}
	if r.Err() == nil || r.Err().Error() != "boom" {
		t.Fatalf("expected boom error, got %v", r.Err())
	}
	if r.Scan() {
		t.Fatalf("expected Scan to stay false after an error")
	}
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.log")
	if err := os.WriteFile(path, []byte("line\n"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	rc, err := Open(path, nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer func() {
		_ = rc.Close()
	}()
	got := readAll(NewReader(rc))
	if len(got) != 1 || got[0] != "line" {
		t.Fatalf("unexpected lines: %q", got)
	}

	if _, err := Open(filepath.Join(t.TempDir(), "missing.log"), nil); !os.IsNotExist(err) {
		t.Fatalf("expected not-exist error, got %v", err)
	}

	stdin, err := Open("-", strings.NewReader("from stdin"))
	if err != nil {
		t.Fatalf("open stdin: %v", err)
	}
	if got := readAll(NewReader(stdin)); len(got) != 1 || got[0] != "from stdin" {
		t.Fatalf("unexpected stdin lines: %q", got)
	}
	if err := stdin.Close(); err != nil {
		t.Fatalf("expected no-op close for stdin, got %v", err)
	}
	if !IsStdio("") || !IsStdio("-") || IsStdio("in.log") {
		t.Fatalf("unexpected IsStdio result")
	}
}
