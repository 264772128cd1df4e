// Package model defines shared data structures.
package model

import "time"

// Config defines report settings after flags and the config file are merged.
type Config struct {
	Input   string
	Output  string
	Top     int
	Format  string
	Record  bool
	Verbose bool
}

// ExtractedURL is a single URL occurrence found in the input.
// Both fields are substrings of the source line.
type ExtractedURL struct {
	Domain string
	Path   string
}

// Entry is a ranked key with its occurrence count.
type Entry struct {
	Key   string `json:"key" yaml:"key"`
	Count int    `json:"count" yaml:"count"`
}

// Report summarizes a scan: totals plus the top domains and paths.
type Report struct {
	TotalURLs   int     `json:"total_urls" yaml:"total_urls"`
	DomainCount int     `json:"domains" yaml:"domains"`
	PathCount   int     `json:"paths" yaml:"paths"`
	TopDomains  []Entry `json:"top_domains" yaml:"top_domains"`
	TopPaths    []Entry `json:"top_paths" yaml:"top_paths"`
}

// Run is a report archived in the history store.
type Run struct {
	ID        int64
	StartedAt time.Time
	Source    string
	Limit     int
	Report    Report
}
