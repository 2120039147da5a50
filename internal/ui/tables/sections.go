package tables

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"

	"morehop/internal/aggregate"
)

// DefaultTop caps the support-frequency rows.
const DefaultTop = 20

// section is one aggregate table prepared for display.
type section struct {
	Name    string
	Title   string
	Columns []table.Column
	Rows    []table.Row
	Notice  string
	Footer  string
}

// buildSections converts a summary into displayable sections in a fixed order.
func buildSections(summary aggregate.Summary, top int) []section {
	if top <= 0 {
		top = DefaultTop
	}
	notices := summary.Notices()
	return []section{
		hopSection(summary.Hops, notices[aggregate.TableHops]),
		matrixSection(summary.ReasoningAnswer, notices[aggregate.TableReasoningAnswer]),
		supportSection(summary.Support, top),
		depthSection(summary.Depth),
	}
}

func hopSection(hops *aggregate.HopTable, notice string) section {
	s := section{Name: aggregate.TableHops, Title: "Hop-depth distribution", Notice: notice}
	if hops == nil {
		return s
	}
	if hops.ByAnswerType {
		s.Columns = []table.Column{{Title: "Hops", Width: 6}, {Title: "Answer type", Width: 16}, {Title: "Count", Width: 7}}
		for _, row := range hops.Rows {
			s.Rows = append(s.Rows, table.Row{itoa(row.Hops), answerTypeLabel(row.AnswerType), itoa(row.Count)})
		}
	} else {
		s.Columns = []table.Column{{Title: "Hops", Width: 6}, {Title: "Count", Width: 7}}
		for _, row := range hops.Rows {
			s.Rows = append(s.Rows, table.Row{itoa(row.Hops), itoa(row.Count)})
		}
	}
	if len(s.Rows) == 0 && s.Notice == "" {
		s.Notice = "No records carry a hop count."
	}
	if hops.Excluded > 0 {
		s.Footer = itoa(hops.Excluded) + " record(s) without a hop count left out"
	}
	return s
}

// matrixSection lays the cross-tab out with one column per answer type.
func matrixSection(matrix *aggregate.ReasoningAnswerTable, notice string) section {
	s := section{Name: aggregate.TableReasoningAnswer, Title: "Reasoning type by answer type", Notice: notice}
	if matrix == nil {
		return s
	}
	answerTypes := matrix.AnswerTypes()
	s.Columns = append(s.Columns, table.Column{Title: "Reasoning type", Width: 26})
	for _, answerType := range answerTypes {
		s.Columns = append(s.Columns, table.Column{Title: answerType, Width: max(len(answerType), 6)})
	}
	for _, reasoningType := range matrix.ReasoningTypes() {
		row := table.Row{reasoningType}
		for _, answerType := range answerTypes {
			row = append(row, itoa(matrix.Count(reasoningType, answerType)))
		}
		s.Rows = append(s.Rows, row)
	}
	if len(s.Rows) == 0 && s.Notice == "" {
		s.Notice = "No records carry both a reasoning type and an answer type."
	}
	if matrix.Excluded > 0 {
		s.Footer = itoa(matrix.Excluded) + " record(s) missing a reasoning or answer type left out"
	}
	return s
}

func supportSection(support aggregate.SupportTable, top int) section {
	s := section{
		Name:    aggregate.TableSupport,
		Title:   "Supporting-paragraph frequency",
		Columns: []table.Column{{Title: "Paragraph", Width: 36}, {Title: "Count", Width: 7}},
	}
	rows := support.Top(top)
	for _, row := range rows {
		s.Rows = append(s.Rows, table.Row{row.Title, itoa(row.Count)})
	}
	if len(rows) == 0 {
		s.Notice = "No context paragraphs found."
	}
	if len(rows) < len(support.Rows) {
		s.Footer = "top " + itoa(len(rows)) + " of " + itoa(len(support.Rows)) + " paragraphs"
	}
	return s
}

func depthSection(depth aggregate.DepthTable) section {
	s := section{
		Name:    aggregate.TableDepth,
		Title:   "Decomposition shape",
		Columns: []table.Column{{Title: "Top-level", Width: 10}, {Title: "Max depth", Width: 10}, {Title: "Count", Width: 7}},
	}
	for _, row := range depth.Rows {
		s.Rows = append(s.Rows, table.Row{itoa(row.TopLevel), itoa(row.MaxDepth), itoa(row.Count)})
	}
	if len(s.Rows) == 0 {
		s.Notice = "No records carry a question decomposition."
	}
	if depth.Excluded > 0 {
		s.Footer = itoa(depth.Excluded) + " record(s) without a decomposition left out"
	}
	return s
}

func itoa(value int) string {
	return strconv.Itoa(value)
}

func answerTypeLabel(answerType string) string {
	if answerType == "" {
		return "(none)"
	}
	return answerType
}
