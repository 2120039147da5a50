package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"

	"morehop/internal/dataset"
	"morehop/internal/duckdb"
)

// exportDataset ingests ds into the DuckDB file at path.
func exportDataset(ctx context.Context, logger *slog.Logger, path string, ds dataset.Dataset) (duckdb.IngestResult, error) {
	db, err := duckdb.Open(ctx, path)
	if err != nil {
		return duckdb.IngestResult{}, err
	}
	defer db.Close()
	result, err := duckdb.Ingest(ctx, db, ds)
	if err != nil {
		return duckdb.IngestResult{}, err
	}
	logger.Debug("exported dataset", "db", path, "ingest_id", result.IngestID, "inserted", result.Inserted, "skipped", result.Skipped, "removed", result.Removed)
	return result, nil
}

// runExport builds the handler for the export command.
func runExport(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		flags := bindCommonFlags(fs)
		dbPath := fs.String("db", "", "DuckDB output path (default: config db)")
		if code, ok := parseFlags(cmd, fs, args, stdout, stderr); !ok {
			return code
		}

		s, err := resolveSettings(flags, stderr)
		if err != nil {
			fmt.Fprintf(stderr, "Invalid config:\n%v\n", err)
			return ExitError
		}
		path := *dbPath
		if path == "" {
			path = s.config.DB
		}
		if path == "" {
			fmt.Fprintln(stderr, "Missing --db")
			return ExitUsage
		}
		ds, err := s.loadDataset()
		if err != nil {
			return reportLoadError(stderr, err)
		}

		result, err := exportDataset(context.Background(), s.logger, path, ds)
		if err != nil {
			fmt.Fprintf(stderr, "Export failed: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Exported %d records to %s (%d already present)\n", result.Inserted, path, result.Skipped)
		if result.Removed > 0 {
			fmt.Fprintf(stdout, "Removed %d records no longer in the dataset\n", result.Removed)
		}
		return ExitOK
	}
}
