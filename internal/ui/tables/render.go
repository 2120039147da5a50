package tables

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"morehop/internal/aggregate"
)

// Options configures terminal rendering.
type Options struct {
	NoColor bool
	Top     int
	Source  string
}

// Render writes the overview and every table to w.
func Render(w io.Writer, summary aggregate.Summary, opts Options) error {
	blocks := []string{renderOverview(summary.Overview, opts)}
	for _, s := range buildSections(summary, opts.Top) {
		blocks = append(blocks, renderSection(s, opts.NoColor))
	}
	_, err := io.WriteString(w, strings.Join(blocks, "\n\n")+"\n")
	return err
}

func renderOverview(overview aggregate.Overview, opts Options) string {
	lines := []string{}
	if opts.Source != "" {
		lines = append(lines, stylize("Dataset "+opts.Source, opts.NoColor, lipgloss.Color("33")))
	}
	lines = append(lines,
		fmt.Sprintf("Records: %d  With hops: %d  Mean hops: %.2f", overview.Records, overview.WithHops, overview.MeanHops),
		fmt.Sprintf("Answer types: %d  Reasoning types: %d  Sub-questions: %d", overview.AnswerTypes, overview.ReasoningTypes, overview.SubQuestions),
		fmt.Sprintf("Context paragraphs: %d  Mean per record: %.2f", overview.ContextPairs, overview.MeanParagraphs),
	)
	return strings.Join(lines, "\n")
}

// renderSection draws a section title followed by its table or notice.
func renderSection(s section, noColor bool) string {
	parts := []string{stylize(s.Title, noColor, lipgloss.Color("33"))}
	if s.Notice != "" {
		parts = append(parts, stylize(s.Notice, noColor, lipgloss.Color("214")))
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}
	parts = append(parts, newTable(s, noColor, false, len(s.Rows)+1).View())
	if s.Footer != "" {
		parts = append(parts, stylize(s.Footer, noColor, lipgloss.Color("242")))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func newTable(s section, noColor bool, focused bool, height int) table.Model {
	return table.New(
		table.WithColumns(s.Columns),
		table.WithRows(s.Rows),
		table.WithStyles(tableStyles(noColor, focused)),
		table.WithFocused(focused),
		table.WithHeight(height),
	)
}
