package report

import (
	"context"
	"strings"

	"morehop/internal/aggregate"
	"morehop/internal/dataset"
)

// DefaultTitle heads the report when no title is configured.
const DefaultTitle = "MoreHopQA dataset report"

// DefaultTop caps the support-frequency chart.
const DefaultTop = 20

// Options controls report rendering.
type Options struct {
	Title       string
	Source      string
	Top         int
	Stylesheets []string
	// Example is shown in the example record section. The first record of
	// the bundled sample is used when nil.
	Example *dataset.Record
}

// BuildReportHTML renders the standalone HTML report for a summary.
func BuildReportHTML(ctx context.Context, summary aggregate.Summary, opts Options) (string, error) {
	view, err := newView(summary, opts)
	if err != nil {
		return "", err
	}
	var builder strings.Builder
	if err := ReportPage(view).Render(ctx, &builder); err != nil {
		return "", err
	}
	return builder.String(), nil
}
