package report

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/verte-zerg/urltop/internal/model"
)

// YAMLWriter writes the report as a YAML document.
type YAMLWriter struct {
	output io.Writer
}

// NewYAMLWriter creates a YAMLWriter that outputs to w.
func NewYAMLWriter(w io.Writer) *YAMLWriter {
	return &YAMLWriter{output: w}
}

// Write encodes r as YAML.
func (w *YAMLWriter) Write(r model.Report) error {
	enc := yaml.NewEncoder(w.output)
	enc.SetIndent(2)
	if err := enc.Encode(normalize(r)); err != nil {
		return fmt.Errorf("failed to encode YAML report: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to flush YAML report: %w", err)
	}
	return nil
}
