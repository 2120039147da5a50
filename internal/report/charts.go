package report

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/wcharczuk/go-chart/v2"

	"morehop/internal/aggregate"
)

const (
	chartHeight   = 420
	barWidth      = 48
	barSpacing    = 24
	minChartWidth = 520
	labelLimit    = 22
)

// HopChartSVG renders the hop-depth distribution. With an answer-type split
// each hop count is a stacked bar; otherwise a plain bar chart is drawn.
// An empty table renders nothing.
func HopChartSVG(table aggregate.HopTable) ([]byte, error) {
	if len(table.Rows) == 0 {
		return nil, nil
	}
	if !table.ByAnswerType {
		values := make([]chart.Value, 0, len(table.Rows))
		for _, row := range sortedHopCounts(table.HopCounts()) {
			values = append(values, chart.Value{Label: hopLabel(row.Hops), Value: float64(row.Count)})
		}
		return renderBars("Distribution of number of hops", values)
	}

	colors := map[string]int{}
	for i, answerType := range table.AnswerTypes() {
		colors[answerType] = i
	}
	bars := make([]chart.StackedBar, 0)
	for _, hopRow := range sortedHopCounts(table.HopCounts()) {
		bar := chart.StackedBar{Name: hopLabel(hopRow.Hops), Width: barWidth}
		for _, row := range table.Rows {
			if row.Hops != hopRow.Hops {
				continue
			}
			bar.Values = append(bar.Values, chart.Value{
				Label: answerTypeLabel(row.AnswerType),
				Value: float64(row.Count),
				Style: chart.Style{
					FillColor:   chart.GetDefaultColor(colors[row.AnswerType]),
					StrokeColor: chart.GetDefaultColor(colors[row.AnswerType]),
				},
			})
		}
		bars = append(bars, bar)
	}
	graph := chart.StackedBarChart{
		Title:      "Distribution of number of hops",
		Background: chart.Style{Padding: chart.Box{Top: 48, Left: 16, Right: 16, Bottom: 16}},
		Width:      chartWidth(len(bars)),
		Height:     chartHeight,
		BarSpacing: barSpacing,
		Bars:       bars,
	}
	var buf bytes.Buffer
	if err := graph.Render(chart.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render hop chart: %w", err)
	}
	return buf.Bytes(), nil
}

// SupportChartSVG renders paragraph frequencies, most used first.
func SupportChartSVG(rows []aggregate.SupportRow) ([]byte, error) {
	if len(rows) == 0 {
		return nil, nil
	}
	values := make([]chart.Value, 0, len(rows))
	for _, row := range rows {
		values = append(values, chart.Value{Label: truncateLabel(row.Title, labelLimit), Value: float64(row.Count)})
	}
	return renderBars("Paragraphs most used as support", values)
}

func renderBars(title string, values []chart.Value) ([]byte, error) {
	largest := 0.0
	for _, value := range values {
		if value.Value > largest {
			largest = value.Value
		}
	}
	graph := chart.BarChart{
		Title:      title,
		Background: chart.Style{Padding: chart.Box{Top: 48, Left: 16, Right: 16, Bottom: 16}},
		Width:      chartWidth(len(values)),
		Height:     chartHeight,
		BarWidth:   barWidth,
		BarSpacing: barSpacing,
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: largest},
		},
		Bars: values,
	}
	var buf bytes.Buffer
	if err := graph.Render(chart.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render %q: %w", title, err)
	}
	return buf.Bytes(), nil
}

func chartWidth(bars int) int {
	width := bars*(barWidth+barSpacing) + 120
	if width < minChartWidth {
		return minChartWidth
	}
	return width
}

// sortedHopCounts orders hop rows by hop count for an ordinal axis.
func sortedHopCounts(rows []aggregate.HopRow) []aggregate.HopRow {
	out := append([]aggregate.HopRow(nil), rows...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Hops < out[j].Hops
	})
	return out
}
