package cli

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"morehop/internal/ui/tables"
)

// runSummary builds the handler for the summary command.
func runSummary(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
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
		asJSON := fs.Bool("json", false, "Print the tables as JSON")
		if code, ok := parseFlags(cmd, fs, args, stdout, stderr); !ok {
			return code
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

		if *asJSON {
			encoder := json.NewEncoder(stdout)
			encoder.SetIndent("", "  ")
			payload := struct {
				Source  string            `json:"source"`
				Summary any               `json:"summary"`
				Notices map[string]string `json:"notices"`
			}{Source: ds.Source, Summary: summary, Notices: summary.Notices()}
			if err := encoder.Encode(payload); err != nil {
				fmt.Fprintf(stderr, "Failed to write summary: %v\n", err)
				return ExitError
			}
			return ExitOK
		}

		opts := tables.Options{
			NoColor: resolveNoColor(*noColor, s.config.NoColor, stdout),
			Top:     s.top(*top, tables.DefaultTop),
			Source:  ds.Source,
		}
		if err := tables.Render(stdout, summary, opts); err != nil {
			fmt.Fprintf(stderr, "Failed to write summary: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}
