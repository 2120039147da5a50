package reportserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"morehop/internal/aggregate"
	"morehop/internal/logging"
	"morehop/internal/report"
)

// summaryResponse is the /api/summary payload.
type summaryResponse struct {
	Source  string            `json:"source,omitempty"`
	Summary aggregate.Summary `json:"summary"`
	Notices map[string]string `json:"notices"`
}

// NewHandler builds the HTTP handler for the rendered report, its JSON
// summary, static assets and the optional DuckDB file.
func NewHandler(cfg Config) (http.Handler, error) {
	if cfg.Summary == nil {
		return nil, errors.New("reportserver: summary is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	manifest, err := loadEmbeddedManifest()
	if err != nil {
		return nil, err
	}
	resolver := newAssetResolver(cfg.AssetsBaseURL, manifest)
	styleURL, err := resolver.URL(styleAsset)
	if err != nil {
		return nil, err
	}
	html, err := report.BuildReportHTML(context.Background(), *cfg.Summary, report.Options{
		Title:       cfg.Title,
		Source:      cfg.Source,
		Top:         cfg.Top,
		Stylesheets: []string{styleURL},
		Example:     cfg.Example,
	})
	if err != nil {
		return nil, fmt.Errorf("reportserver: render report: %w", err)
	}
	payload, err := json.Marshal(summaryResponse{
		Source:  cfg.Source,
		Summary: *cfg.Summary,
		Notices: cfg.Summary.Notices(),
	})
	if err != nil {
		return nil, fmt.Errorf("reportserver: encode summary: %w", err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", serveIndex(html))
	mux.Handle("/api/summary", getOnly(serveJSON(payload)))
	if cfg.AssetsBaseURL == "" {
		assets, err := embeddedAssetsFS()
		if err != nil {
			return nil, err
		}
		mux.Handle("/assets/", getOnly(http.StripPrefix("/assets/", http.FileServerFS(assets))))
	}
	if cfg.DBPath != "" {
		mux.Handle("/data/db.duckdb", getOnly(serveDatabase(cfg.DBPath)))
	}
	return logRequests(logger, mux), nil
}

// serveIndex writes the rendered report page.
func serveIndex(html string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			methodNotAllowed(w)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = io.WriteString(w, html)
	}
}

func serveJSON(payload []byte) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(payload)
	})
}

// serveDatabase serves the DuckDB file from disk for external tooling.
func serveDatabase(dbPath string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/octet-stream")
		http.ServeFile(w, r, dbPath)
	})
}

func getOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			methodNotAllowed(w)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func methodNotAllowed(w http.ResponseWriter) {
	w.Header().Set("Allow", http.MethodGet)
	http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
}

// statusRecorder captures the response code for request logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func logRequests(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "status", rec.status)
	})
}
