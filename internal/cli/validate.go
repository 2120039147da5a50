package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"morehop/internal/dataset"
)

// runValidate builds the handler for the validate command.
func runValidate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		flags := bindCommonFlags(fs)
		if code, ok := parseFlags(cmd, fs, args, stdout, stderr); !ok {
			return code
		}

		s, err := resolveSettings(flags, stderr)
		if err != nil {
			fmt.Fprintf(stderr, "Invalid config:\n%v\n", err)
			return ExitError
		}
		var (
			records []dataset.Record
			format  = dataset.FormatJSON
			raw     []byte
		)
		path := s.dataPath()
		switch {
		case path != "":
			format = dataset.FormatForPath(path)
			raw, err = os.ReadFile(path)
			if err != nil {
				return reportLoadError(stderr, fmt.Errorf("%w: %w", dataset.ErrSourceUnavailable, err))
			}
			records, err = dataset.Parse(raw, format)
			if err != nil {
				return reportLoadError(stderr, err)
			}
		case *s.flags.sample:
			records = dataset.Sample().Records
		default:
			return reportLoadError(stderr, errNoDataset)
		}

		var failures []error
		if raw != nil {
			if err := dataset.ValidateSchema(raw, format); err != nil {
				failures = append(failures, err)
			}
		}
		if err := dataset.Lint(records); err != nil {
			failures = append(failures, err)
		}
		if len(failures) > 0 {
			fmt.Fprintf(stderr, "Validation failed:\n%v\n", errors.Join(failures...))
			return ExitError
		}
		fmt.Fprintf(stdout, "Dataset OK: %d records\n", len(records))
		return ExitOK
	}
}
