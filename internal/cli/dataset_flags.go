package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"morehop/internal/config"
	"morehop/internal/dataset"
	"morehop/internal/logging"
)

// errNoDataset is returned when neither a path nor the sample was chosen.
var errNoDataset = errors.New("no dataset: pass --data <path> or --sample")

// commonFlags are shared by every command that reads a dataset.
type commonFlags struct {
	data       *string
	sample     *bool
	configPath *string
	verbose    *bool
}

func bindCommonFlags(fs *flag.FlagSet) commonFlags {
	return commonFlags{
		data:       fs.String("data", "", "Path to a MoreHopQA JSON or YAML file (default: config data)"),
		sample:     fs.Bool("sample", false, "Use the bundled sample dataset"),
		configPath: fs.String("config", "", "Path to config file (default: search for "+config.FileName+")"),
		verbose:    fs.Bool("verbose", false, "Log debug details to stderr"),
	}
}

// parseFlags parses args and rejects positional arguments.
func parseFlags(cmd *Command, fs *flag.FlagSet, args []string, stdout, stderr io.Writer) (int, bool) {
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			printCommandUsage(cmd, stdout)
			return ExitOK, false
		}
		fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
		printCommandUsage(cmd, stderr)
		return ExitUsage, false
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
		printCommandUsage(cmd, stderr)
		return ExitUsage, false
	}
	return ExitOK, true
}

// settings merges the config file with explicit flags.
type settings struct {
	config config.Config
	logger *slog.Logger
	flags  commonFlags
}

func resolveSettings(flags commonFlags, stderr io.Writer) (settings, error) {
	logger := logging.New(stderr, logging.Level(*flags.verbose))
	cfg, path, err := loadConfig(*flags.configPath)
	if err != nil {
		return settings{}, err
	}
	if path != "" {
		logger.Debug("loaded config", "path", path)
	}
	return settings{config: cfg, logger: logger, flags: flags}, nil
}

// loadConfig loads an explicit config path or discovers one from the working directory.
func loadConfig(path string) (config.Config, string, error) {
	if strings.TrimSpace(path) == "" {
		return config.Discover("")
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, path, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, path, nil
}

// dataPath returns the dataset path from flags, then config.
func (s settings) dataPath() string {
	if *s.flags.data != "" {
		return *s.flags.data
	}
	return s.config.Data
}

// loadDataset resolves the dataset source. An explicit --data wins over
// --sample, which wins over the config file.
func (s settings) loadDataset() (dataset.Dataset, error) {
	if *s.flags.data == "" && *s.flags.sample {
		ds := dataset.Sample()
		s.logger.Debug("using sample dataset", "records", ds.Len())
		return ds, nil
	}
	path := s.dataPath()
	if path == "" {
		return dataset.Dataset{}, errNoDataset
	}
	ds, err := dataset.LoadFile(path)
	if err != nil {
		return dataset.Dataset{}, err
	}
	s.logger.Debug("loaded dataset", "path", path, "records", ds.Len())
	return ds, nil
}

// top returns the flag value when set, then config, then fallback.
func (s settings) top(flagValue int, fallback int) int {
	if flagValue > 0 {
		return flagValue
	}
	if s.config.Top > 0 {
		return s.config.Top
	}
	return fallback
}

// reportLoadError prints a plain load failure and picks the exit code.
func reportLoadError(stderr io.Writer, err error) int {
	if errors.Is(err, errNoDataset) {
		fmt.Fprintf(stderr, "Missing dataset: %v\n", err)
		return ExitUsage
	}
	fmt.Fprintf(stderr, "Could not load dataset: %v\n", err)
	return ExitError
}
