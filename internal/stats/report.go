package stats

import "github.com/verte-zerg/urltop/internal/model"

// BuildReport ranks both tables with the same limit and collects the totals.
func BuildReport(agg *Aggregator, limit int) model.Report {
	return model.Report{
		TotalURLs:   agg.Total,
		DomainCount: agg.Domains.Len(),
		PathCount:   agg.Paths.Len(),
		TopDomains:  agg.Domains.Top(limit),
		TopPaths:    agg.Paths.Top(limit),
	}
}
