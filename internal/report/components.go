package report

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"morehop/internal/aggregate"
	"morehop/internal/dataset"
)

const inlineStyle = `body{font-family:system-ui,sans-serif;margin:2rem auto;max-width:1100px;color:#1f2933}
section{margin:2rem 0}
table{border-collapse:collapse}
th,td{border:1px solid #d9e2ec;padding:.35rem .6rem;text-align:right}
th{background:#f0f4f8}
.notice{padding:.75rem 1rem;background:#fff4e5;border:1px solid #f0b429}
.overview dt{font-weight:600}
.chart svg{max-width:100%;height:auto}`

// htmlWriter keeps the first write error so components read linearly.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (hw *htmlWriter) raw(s string) {
	if hw.err != nil {
		return
	}
	_, hw.err = io.WriteString(hw.w, s)
}

func (hw *htmlWriter) text(s string) {
	hw.raw(templ.EscapeString(s))
}

func (hw *htmlWriter) printf(format string, args ...any) {
	hw.raw(fmt.Sprintf(format, args...))
}

func (hw *htmlWriter) component(ctx context.Context, c templ.Component) {
	if hw.err != nil {
		return
	}
	hw.err = c.Render(ctx, hw.w)
}

// ReportPage renders the full HTML document.
func ReportPage(view View) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw(`<!doctype html><html lang="en"><head><meta charset="utf-8"/>`)
		hw.raw(`<meta name="viewport" content="width=device-width, initial-scale=1"/><title>`)
		hw.text(view.Title)
		hw.raw(`</title>`)
		if len(view.Stylesheets) == 0 {
			hw.raw(`<style>` + inlineStyle + `</style>`)
		}
		for _, href := range view.Stylesheets {
			hw.raw(`<link rel="stylesheet" href="`)
			hw.text(href)
			hw.raw(`"/>`)
		}
		hw.raw(`</head><body><h1>`)
		hw.text(view.Title)
		hw.raw(`</h1>`)
		if view.Source != "" {
			hw.raw(`<p class="source">Source: <code>`)
			hw.text(view.Source)
			hw.raw(`</code></p>`)
		}
		hw.component(ctx, overviewSection(view.Overview))
		hw.component(ctx, hopSection(view))
		hw.component(ctx, matrixSection(view.Matrix, view.MatrixNotice))
		hw.component(ctx, supportSection(view))
		hw.component(ctx, depthSection(view.Depth))
		hw.component(ctx, exampleSection(view.Example))
		hw.raw(`</body></html>`)
		return hw.err
	})
}

func overviewSection(overview aggregate.Overview) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw(`<section id="overview" class="overview"><h2>Overview</h2><dl>`)
		entries := []struct {
			label string
			value string
		}{
			{"Records", formatCount(overview.Records)},
			{"Records with hop count", formatCount(overview.WithHops)},
			{"Mean hops", formatMean(overview.MeanHops)},
			{"Answer types", formatCount(overview.AnswerTypes)},
			{"Reasoning types", formatCount(overview.ReasoningTypes)},
			{"Context paragraphs", formatCount(overview.ContextPairs)},
			{"Mean paragraphs per record", formatMean(overview.MeanParagraphs)},
			{"Sub-questions", formatCount(overview.SubQuestions)},
		}
		for _, entry := range entries {
			hw.raw(`<dt>`)
			hw.text(entry.label)
			hw.raw(`</dt><dd>`)
			hw.text(entry.value)
			hw.raw(`</dd>`)
		}
		hw.raw(`</dl></section>`)
		return hw.err
	})
}

func noticeBlock(hw *htmlWriter, message string) {
	hw.raw(`<p class="notice">`)
	hw.text(message)
	hw.raw(`</p>`)
}

func hopSection(view View) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw(`<section id="hops"><h2>Hop-depth distribution</h2>`)
		switch {
		case view.HopNotice != "":
			noticeBlock(hw, view.HopNotice)
		case len(view.HopRows) == 0:
			noticeBlock(hw, "No records carry a hop count.")
		default:
			hw.raw(`<div class="chart">` + string(view.HopChart) + `</div>`)
			hw.raw(`<table><thead><tr><th>Hops</th><th>Answer type</th><th>Count</th></tr></thead><tbody>`)
			for _, row := range view.HopRows {
				hw.printf(`<tr><td>%d</td><td>`, row.Hops)
				hw.text(answerTypeLabel(row.AnswerType))
				hw.printf(`</td><td>%d</td></tr>`, row.Count)
			}
			hw.raw(`</tbody></table>`)
			if view.HopsExcluded > 0 {
				hw.printf(`<p>%d record(s) without a hop count were left out.</p>`, view.HopsExcluded)
			}
		}
		hw.raw(`</section>`)
		return hw.err
	})
}

// matrixSection renders the reasoning by answer type cross-tab as a heatmap grid.
func matrixSection(table *aggregate.ReasoningAnswerTable, notice string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw(`<section id="reasoning-answer"><h2>Reasoning type by answer type</h2>`)
		switch {
		case notice != "":
			noticeBlock(hw, notice)
		case table == nil || len(table.Rows) == 0:
			noticeBlock(hw, "No records carry both a reasoning type and an answer type.")
		default:
			answerTypes := table.AnswerTypes()
			largest := table.Max()
			hw.raw(`<table class="heatmap"><thead><tr><th>Reasoning type</th>`)
			for _, answerType := range answerTypes {
				hw.raw(`<th>`)
				hw.text(answerType)
				hw.raw(`</th>`)
			}
			hw.raw(`</tr></thead><tbody>`)
			for _, reasoningType := range table.ReasoningTypes() {
				hw.raw(`<tr><th>`)
				hw.text(reasoningType)
				hw.raw(`</th>`)
				for _, answerType := range answerTypes {
					count := table.Count(reasoningType, answerType)
					hw.printf(`<td style="background:%s">%d</td>`, heatColor(count, largest), count)
				}
				hw.raw(`</tr>`)
			}
			hw.raw(`</tbody></table>`)
			if table.Excluded > 0 {
				hw.printf(`<p>%d record(s) missing a reasoning or answer type were left out.</p>`, table.Excluded)
			}
		}
		hw.raw(`</section>`)
		return hw.err
	})
}

// heatColor shades a cell from white to green by its share of the largest cell.
func heatColor(count, largest int) string {
	if count == 0 || largest == 0 {
		return "#ffffff"
	}
	alpha := 0.15 + 0.85*float64(count)/float64(largest)
	return fmt.Sprintf("rgba(35,139,69,%.2f)", alpha)
}

func supportSection(view View) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw(`<section id="support"><h2>Supporting-paragraph frequency</h2>`)
		if len(view.SupportRows) == 0 {
			noticeBlock(hw, "No context paragraphs found.")
			hw.raw(`</section>`)
			return hw.err
		}
		if view.SupportShown < view.SupportTotal {
			hw.printf(`<p>Top %d of %d paragraphs.</p>`, view.SupportShown, view.SupportTotal)
		}
		hw.raw(`<div class="chart">` + string(view.SupportChart) + `</div>`)
		hw.raw(`<table><thead><tr><th>Paragraph</th><th>Count</th></tr></thead><tbody>`)
		for _, row := range view.SupportRows {
			hw.raw(`<tr><td>`)
			hw.text(row.Title)
			hw.printf(`</td><td>%d</td></tr>`, row.Count)
		}
		hw.raw(`</tbody></table></section>`)
		return hw.err
	})
}

func depthSection(table aggregate.DepthTable) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw(`<section id="depth"><h2>Decomposition shape</h2>`)
		if len(table.Rows) == 0 {
			noticeBlock(hw, "No records carry a question decomposition.")
			hw.raw(`</section>`)
			return hw.err
		}
		hw.raw(`<table><thead><tr><th>Top-level sub-questions</th><th>Max depth</th><th>Count</th></tr></thead><tbody>`)
		for _, row := range table.Rows {
			hw.printf(`<tr><td>%d</td><td>%d</td><td>%d</td></tr>`, row.TopLevel, row.MaxDepth, row.Count)
		}
		hw.raw(`</tbody></table>`)
		if table.Excluded > 0 {
			hw.printf(`<p>%d record(s) without a decomposition were left out.</p>`, table.Excluded)
		}
		hw.raw(`</section>`)
		return hw.err
	})
}

func exampleSection(record dataset.Record) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw(`<section id="example" class="example"><h2>Example record</h2><dl>`)
		field := func(label, value string) {
			if value == "" {
				return
			}
			hw.raw(`<dt>`)
			hw.text(label)
			hw.raw(`</dt><dd>`)
			hw.text(value)
			hw.raw(`</dd>`)
		}
		field("id", record.Key())
		field("question", record.Question)
		field("answer", record.Answer)
		if record.AnswerType != nil {
			field("answer_type", *record.AnswerType)
		}
		if record.ReasoningType != nil {
			field("reasoning_type", *record.ReasoningType)
		}
		if hops, ok := record.Hops(); ok {
			field("no_of_hops", hopLabel(hops))
		}
		hw.raw(`</dl>`)
		if len(record.Decomposition) > 0 {
			hw.raw(`<h3>Question decomposition</h3>`)
			subQuestionList(hw, record.Decomposition)
		}
		if len(record.Context) > 0 {
			hw.raw(`<h3>Context</h3><ul>`)
			for _, paragraph := range record.Context {
				hw.raw(`<li>`)
				hw.text(paragraph.Title)
				hw.printf(` (%d sentences)</li>`, len(paragraph.Sentences))
			}
			hw.raw(`</ul>`)
		}
		hw.raw(`</section>`)
		return hw.err
	})
}

func subQuestionList(hw *htmlWriter, subs []dataset.SubQuestion) {
	hw.raw(`<ol>`)
	for _, sub := range subs {
		hw.raw(`<li>`)
		hw.text(sub.Question)
		hw.raw(` &rarr; <strong>`)
		hw.text(sub.Answer)
		hw.raw(`</strong>`)
		if sub.SupportTitle != "" {
			hw.raw(` <em>`)
			hw.text(sub.SupportTitle)
			hw.raw(`</em>`)
		}
		if len(sub.Details) > 0 {
			subQuestionList(hw, sub.Details)
		}
		hw.raw(`</li>`)
	}
	hw.raw(`</ol>`)
}
