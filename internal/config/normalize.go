package config

import (
	"path/filepath"
	"strings"
)

// Normalize trims values and anchors relative paths at baseDir.
func Normalize(cfg *Config, baseDir string) {
	cfg.Data = resolvePath(baseDir, cfg.Data)
	cfg.DB = resolvePath(baseDir, cfg.DB)
	cfg.Addr = strings.TrimSpace(cfg.Addr)
	cfg.Title = strings.TrimSpace(cfg.Title)
}

func resolvePath(baseDir, path string) string {
	path = strings.TrimSpace(path)
	if path == "" || filepath.IsAbs(path) || baseDir == "" {
		return path
	}
	return filepath.Join(baseDir, path)
}
