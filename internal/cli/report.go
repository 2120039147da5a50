package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"morehop/internal/report"
)

var buildReportHTML = report.BuildReportHTML

// runReport builds the handler for the report command.
func runReport(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		flags := bindCommonFlags(fs)
		outputPath := fs.String("output", "", "Report output path")
		title := fs.String("title", "", "Report title")
		top := fs.Int("top", 0, "Number of supporting paragraphs to chart (default 20)")
		if code, ok := parseFlags(cmd, fs, args, stdout, stderr); !ok {
			return code
		}
		if *outputPath == "" {
			fmt.Fprintln(stderr, "Missing --output")
			return ExitUsage
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

		reportTitle := *title
		if reportTitle == "" {
			reportTitle = s.config.Title
		}
		html, err := buildReportHTML(context.Background(), summary, report.Options{
			Title:   reportTitle,
			Source:  ds.Source,
			Top:     s.top(*top, report.DefaultTop),
			Example: firstRecord(ds),
		})
		if err != nil {
			fmt.Fprintf(stderr, "Failed to render report: %v\n", err)
			return ExitError
		}
		if err := os.WriteFile(*outputPath, []byte(html), 0o644); err != nil {
			fmt.Fprintf(stderr, "Failed to write report: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Report written to %s\n", *outputPath)
		return ExitOK
	}
}
