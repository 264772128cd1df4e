package stats

import (
	"io"

	"github.com/verte-zerg/urltop/internal/lines"
	"github.com/verte-zerg/urltop/internal/model"
	"github.com/verte-zerg/urltop/internal/urlscan"
)

// Aggregator holds the domain and path frequency tables for one scan.
type Aggregator struct {
	Domains *Table
	Paths   *Table
	Total   int
	Lines   int
}

// NewAggregator returns an Aggregator with empty tables.
func NewAggregator() *Aggregator {
	return &Aggregator{
		Domains: NewTable(),
		Paths:   NewTable(),
	}
}

// Record counts one URL occurrence.
func (a *Aggregator) Record(u model.ExtractedURL) {
	a.Domains.Add(u.Domain)
	a.Paths.Add(u.Path)
	a.Total++
}

// Consume records every URL the scanner yields and returns the scanner's
// read error, if any.
func (a *Aggregator) Consume(sc *urlscan.Scanner) error {
	for {
		u, ok := sc.Next()
		if !ok {
			break
		}
		a.Record(u)
	}
	a.Lines += sc.Lines()
	return sc.Err()
}

// Collect scans r to the end and returns the filled Aggregator.
func Collect(r io.Reader) (*Aggregator, error) {
	agg := NewAggregator()
	if err := agg.Consume(urlscan.NewScanner(lines.NewReader(r))); err != nil {
		return nil, err
	}
	return agg, nil
}
