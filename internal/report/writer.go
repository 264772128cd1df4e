// Package report renders scan reports and archived runs.
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/verte-zerg/urltop/internal/model"
)

// Output formats accepted by New.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ErrUnknownFormat is returned by New for an unsupported format name.
var ErrUnknownFormat = errors.New("unknown report format")

// Writer renders a report to its output.
type Writer interface {
	Write(r model.Report) error
}

// Formats lists the supported format names.
func Formats() []string {
	return []string{FormatText, FormatJSON, FormatYAML}
}

// New returns the Writer for format, writing to w.
func New(format string, w io.Writer) (Writer, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatText, "":
		return NewTextWriter(w), nil
	case FormatJSON:
		return NewJSONWriter(w), nil
	case FormatYAML, "yml":
		return NewYAMLWriter(w), nil
	default:
		return nil, fmt.Errorf("%w %q (supported: %s)", ErrUnknownFormat, format, strings.Join(Formats(), ", "))
	}
}
