package tables

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"morehop/internal/aggregate"
)

const defaultBrowserHeight = 12

// Browser is an interactive Bubble Tea model with one tab per table.
type Browser struct {
	sections []section
	active   int
	table    table.Model
	height   int
	noColor  bool
}

// NewBrowser constructs a browser over a summary.
func NewBrowser(summary aggregate.Summary, opts Options) Browser {
	b := Browser{
		sections: buildSections(summary, opts.Top),
		height:   defaultBrowserHeight,
		noColor:  opts.NoColor,
	}
	return b.selectSection(0)
}

// Active returns the name of the table being shown.
func (b Browser) Active() string {
	return b.sections[b.active].Name
}

// Init implements tea.Model.
func (b Browser) Init() tea.Cmd {
	return nil
}

// Update switches tabs, forwards navigation to the table and handles quit keys.
func (b Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		b.height = max(typed.Height-6, 3)
		b.table.SetHeight(b.height)
		return b, nil
	case tea.KeyMsg:
		switch typed.String() {
		case "q", "esc", "ctrl+c":
			return b, tea.Quit
		case "tab", "right", "l":
			return b.selectSection((b.active + 1) % len(b.sections)), nil
		case "shift+tab", "left", "h":
			return b.selectSection((b.active + len(b.sections) - 1) % len(b.sections)), nil
		}
	}
	var cmd tea.Cmd
	b.table, cmd = b.table.Update(msg)
	return b, cmd
}

// View renders the tab bar, the active table and a key help line.
func (b Browser) View() string {
	tabs := make([]string, 0, len(b.sections))
	for i, s := range b.sections {
		label := " " + s.Title + " "
		if i == b.active {
			if b.noColor {
				label = "[" + s.Title + "]"
			} else {
				label = lipgloss.NewStyle().Bold(true).Reverse(true).Render(label)
			}
		}
		tabs = append(tabs, label)
	}
	current := b.sections[b.active]
	body := current.Notice
	if body == "" {
		body = b.table.View()
		if current.Footer != "" {
			body += "\n" + stylize(current.Footer, b.noColor, lipgloss.Color("242"))
		}
	}
	help := stylize("tab/shift+tab: switch table  ↑/↓: scroll  q: quit", b.noColor, lipgloss.Color("241"))
	return lipgloss.JoinVertical(lipgloss.Left, strings.Join(tabs, " "), "", body, "", help)
}

func (b Browser) selectSection(index int) Browser {
	b.active = index
	b.table = newTable(b.sections[index], b.noColor, true, b.height)
	return b
}
