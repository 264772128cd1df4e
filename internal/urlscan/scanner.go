// Package urlscan extracts URL occurrences from text lines using a
// character-class scanner.
//
// A URL starts at "http://" or "https://" placed at the beginning of a line
// or right after a space or tab. The domain runs while IsDomainSymbol holds;
// the path, when the domain is directly followed by '/', runs while
// IsPathSymbol holds. Anything else ends the token, so query strings and
// fragments are cut off. Matches never span two lines.
package urlscan

import (
	"strings"

	"github.com/verte-zerg/urltop/internal/model"
)

const (
	schemePrefix    = "http"
	schemeSeparator = "://"
	defaultPath     = "/"
)

// LineSource yields input lines with terminators stripped.
// *bufio.Scanner and *lines.Reader satisfy it.
type LineSource interface {
	Scan() bool
	Text() string
	Err() error
}

// Scanner walks a LineSource and returns one URL occurrence per Next call.
// The current line and the cursor into it persist between calls.
type Scanner struct {
	src    LineSource
	line   string
	pos    int
	loaded bool
	lines  int
}

// NewScanner returns a Scanner reading lines from src.
func NewScanner(src LineSource) *Scanner {
	return &Scanner{src: src}
}

// Next returns the next URL occurrence. It returns false once the line
// source is exhausted; Err then reports any read failure.
func (s *Scanner) Next() (model.ExtractedURL, bool) {
	for {
		if !s.loaded {
			if !s.src.Scan() {
				return model.ExtractedURL{}, false
			}
			s.line = s.src.Text()
			s.pos = 0
			s.loaded = true
			s.lines++
		}
		if u, ok := s.scanLine(); ok {
			return u, true
		}
		s.line = ""
		s.pos = 0
		s.loaded = false
	}
}

// Err returns the first error reported by the line source.
func (s *Scanner) Err() error {
	return s.src.Err()
}

// Lines returns the number of lines loaded so far.
func (s *Scanner) Lines() int {
	return s.lines
}

// scanLine searches the current line from the cursor. On a false match the
// cursor moves one byte past the "http" occurrence so adjacent candidates
// are still found and repeated substrings cannot stall the search.
func (s *Scanner) scanLine() (model.ExtractedURL, bool) {
	line := s.line
	for s.pos < len(line) {
		idx := strings.Index(line[s.pos:], schemePrefix)
		if idx < 0 {
			s.pos = len(line)
			return model.ExtractedURL{}, false
		}
		p := s.pos + idx
		s.pos = p + 1
		if p > 0 && line[p-1] != ' ' && line[p-1] != '\t' {
			continue
		}

		start := p + len(schemePrefix)
		if start < len(line) && line[start] == 's' {
			start++
		}
		if !strings.HasPrefix(line[start:], schemeSeparator) {
			continue
		}
		start += len(schemeSeparator)

		end := start
		for end < len(line) && IsDomainSymbol(line[end]) {
			end++
		}
		if end == start {
			continue
		}
		u := model.ExtractedURL{Domain: line[start:end], Path: defaultPath}

		if end < len(line) && line[end] == '/' {
			pathStart := end
			end++
			for end < len(line) && IsPathSymbol(line[end]) {
				end++
			}
			u.Path = line[pathStart:end]
		}
		s.pos = end
		return u, true
	}
	return model.ExtractedURL{}, false
}
