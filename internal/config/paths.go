package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileName is the config file searched for by the CLI.
const FileName = ".morehop.yml"

// ErrNotFound reports that no config file exists up to the filesystem root.
var ErrNotFound = errors.New("config file not found")

// BaseDir returns the directory relative config paths resolve against.
func BaseDir(configPath string) string {
	return filepath.Dir(configPath)
}

// FindPath searches upward from startDir for a config file.
func FindPath(startDir string) (string, error) {
	dir := strings.TrimSpace(startDir)
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		dir = wd
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve start directory: %w", err)
	}
	dir = abs

	for {
		path := filepath.Join(dir, FileName)
		info, err := os.Stat(path)
		if err == nil {
			if info.IsDir() {
				return "", fmt.Errorf("config path %q is a directory", path)
			}
			return path, nil
		}
		if !os.IsNotExist(err) {
			return "", fmt.Errorf("stat config path %q: %w", path, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no %s in %s or parent directories: %w", FileName, abs, ErrNotFound)
		}
		dir = parent
	}
}

// Discover finds and loads the nearest config. A missing file yields the
// zero Config and an empty path.
func Discover(startDir string) (Config, string, error) {
	path, err := FindPath(startDir)
	if errors.Is(err, ErrNotFound) {
		return Config{}, "", nil
	}
	if err != nil {
		return Config{}, "", err
	}
	cfg, err := Load(path)
	if err != nil {
		return Config{}, path, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, path, nil
}
