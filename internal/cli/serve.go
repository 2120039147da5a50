package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"morehop/internal/reportserver"
)

const defaultAddr = "127.0.0.1:5000"

// serveReport is a test seam for running the report server.
var serveReport = reportserver.Serve

// runServe builds the handler for the serve command.
func runServe(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		flags := bindCommonFlags(fs)
		addr := fs.String("addr", "", "Address to listen on (default "+defaultAddr+")")
		dbPath := fs.String("db", "", "DuckDB file to export into and serve at /data/db.duckdb")
		title := fs.String("title", "", "Report title")
		top := fs.Int("top", 0, "Number of supporting paragraphs to chart (default 20)")
		assetsBaseURL := fs.String("assets-base-url", "", "Base URL for report assets")
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

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		cfg := reportserver.Config{
			Addr:          firstNonEmpty(*addr, s.config.Addr, defaultAddr),
			Title:         firstNonEmpty(*title, s.config.Title),
			Source:        ds.Source,
			Top:           s.top(*top, 0),
			Summary:       &summary,
			Example:       firstRecord(ds),
			DBPath:        firstNonEmpty(*dbPath, s.config.DB),
			AssetsBaseURL: *assetsBaseURL,
			Logger:        s.logger,
		}
		if cfg.DBPath != "" {
			if _, err := exportDataset(ctx, s.logger, cfg.DBPath, ds); err != nil {
				fmt.Fprintf(stderr, "Export failed: %v\n", err)
				return ExitError
			}
		}
		fmt.Fprintf(stdout, "Serving report at http://%s\n", cfg.Addr)
		if err := serveReport(ctx, cfg); err != nil {
			fmt.Fprintf(stderr, "Server error: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
