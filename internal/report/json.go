package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/verte-zerg/urltop/internal/model"
)

// JSONWriter writes the report as an indented JSON document.
type JSONWriter struct {
	output io.Writer
}

// NewJSONWriter creates a JSONWriter that outputs to w.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{output: w}
}

// Write encodes r as JSON.
func (w *JSONWriter) Write(r model.Report) error {
	enc := json.NewEncoder(w.output)
	enc.SetIndent("", "  ")
	if err := enc.Encode(normalize(r)); err != nil {
		return fmt.Errorf("failed to encode JSON report: %w", err)
	}
	return nil
}

// normalize replaces nil entry lists so empty sections encode as [] rather
// than null.
func normalize(r model.Report) model.Report {
	if r.TopDomains == nil {
		r.TopDomains = []model.Entry{}
	}
	if r.TopPaths == nil {
		r.TopPaths = []model.Entry{}
	}
	return r
}
