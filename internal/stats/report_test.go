package stats

import (
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/verte-zerg/urltop/internal/model"
)

func TestBuildReportScenarios(t *testing.T) {
	tests := []struct {
		name  string
		input string
		limit int
		want  model.Report
	}{
		{
			name:  "single url",
			input: "visit http://example.com/page.html today\n",
			limit: 10,
			want: model.Report{
				TotalURLs:   1,
				DomainCount: 1,
				PathCount:   1,
				TopDomains:  []model.Entry{{Key: "example.com", Count: 1}},
				TopPaths:    []model.Entry{{Key: "/page.html", Count: 1}},
			},
		},
		{
			name:  "two lines",
			input: "http://a.com\nhttps://b.com/x\n",
			limit: 10,
			want: model.Report{
				TotalURLs:   2,
				DomainCount: 2,
				PathCount:   2,
				TopDomains:  []model.Entry{{Key: "a.com", Count: 1}, {Key: "b.com", Count: 1}},
				TopPaths:    []model.Entry{{Key: "/", Count: 1}, {Key: "/x", Count: 1}},
			},
		},
		{
			name:  "no urls",
			input: "plain text\n",
			limit: 10,
			want:  model.Report{TopDomains: []model.Entry{}, TopPaths: []model.Entry{}},
		},
		{
			name:  "limit applies to both tables",
			input: "http://a.com/1 http://a.com/2 http://b.com/1\nhttp://c.com/1\n",
			limit: 1,
			want: model.Report{
				TotalURLs:   4,
				DomainCount: 3,
				PathCount:   2,
				TopDomains:  []model.Entry{{Key: "a.com", Count: 2}},
				TopPaths:    []model.Entry{{Key: "/1", Count: 3}},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agg, err := Collect(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("collect: %v", err)
			}
			got := BuildReport(agg, tt.limit)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestBuildReportIsDeterministic(t *testing.T) {
	input := "http://b.com/x http://a.com/y\nhttps://c.com/x http://a.com\n"
	first, err := Collect(strings.NewReader(input))
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	second, err := Collect(strings.NewReader(input))
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if !reflect.DeepEqual(BuildReport(first, 2), BuildReport(second, 2)) {
		t.Fatalf("expected identical reports for identical input")
	}
	if first.Lines != 2 {
		t.Fatalf("expected 2 lines, got %d", first.Lines)
	}
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, errors.New("read failed") }

func TestCollectReturnsReadError(t *testing.T) {
	_, err := Collect(io.MultiReader(strings.NewReader("http://a.com\n"), errReader{}))
	if err == nil || err.Error() != "read failed" {
		t.Fatalf("expected read error, got %v", err)
	}
}
