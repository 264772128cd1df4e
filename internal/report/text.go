package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/verte-zerg/urltop/internal/model"
)

// TextWriter writes the plain-text report.
type TextWriter struct {
	output io.Writer
}

// NewTextWriter creates a TextWriter that outputs to w.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{output: w}
}

// Write renders r and writes it in a single call.
func (w *TextWriter) Write(r model.Report) error {
	if _, err := io.WriteString(w.output, RenderText(r)); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// RenderText returns the report text:
//
//	total urls <n>, domains <d>, paths <p>
//
//	top domains
//	<count> <domain>
//
//	top paths
//	<count> <path>
func RenderText(r model.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "total urls %d, domains %d, paths %d\n\n", r.TotalURLs, r.DomainCount, r.PathCount)
	writeSection(&b, "top domains", r.TopDomains)
	b.WriteByte('\n')
	writeSection(&b, "top paths", r.TopPaths)
	return b.String()
}

func writeSection(b *strings.Builder, caption string, entries []model.Entry) {
	b.WriteString(caption)
	b.WriteByte('\n')
	for _, e := range entries {
		fmt.Fprintf(b, "%d %s\n", e.Count, e.Key)
	}
}
