package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"morehop/internal/ui/tables"
)

// runBrowser is a test seam for running the interactive program.
var runBrowser = func(model tea.Model, stdout io.Writer) error {
	_, err := tea.NewProgram(model, tea.WithInput(os.Stdin), tea.WithOutput(stdout), tea.WithAltScreen()).Run()
	return err
}

// runBrowse builds the handler for the browse command.
func runBrowse(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		flags := bindCommonFlags(fs)
		top := fs.Int("top", 0, "Number of supporting paragraphs to list (default 20)")
		noColor := fs.Bool("no-color", false, "Disable colored output")
		if code, ok := parseFlags(cmd, fs, args, stdout, stderr); !ok {
			return code
		}
		if !isTerminal(stdout) {
			fmt.Fprintln(stderr, "browse needs an interactive terminal; use \"morehop summary\" instead")
			return ExitError
		}

		s, err := resolveSettings(flags, stderr)
		if err != nil {
			fmt.Fprintf(stderr, "Invalid config:\n%v\n", err)
			return ExitError
		}
		ds, err := s.loadDataset()
		if err != nil {
			return reportLoadError(stderr, err)
		}
		summary, err := summarize(s.logger, ds)
		if err != nil {
			fmt.Fprintf(stderr, "Aggregation failed: %v\n", err)
			return ExitError
		}

		model := tables.NewBrowser(summary, tables.Options{
			NoColor: resolveNoColor(*noColor, s.config.NoColor, stdout),
			Top:     s.top(*top, tables.DefaultTop),
			Source:  ds.Source,
		})
		if err := runBrowser(model, stdout); err != nil {
			fmt.Fprintf(stderr, "Browser error: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}
