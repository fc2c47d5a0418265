package main

import (
	"html/template"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/sudokuforge/engine/internal/catalog"
	"github.com/sudokuforge/engine/internal/facade"
	"github.com/sudokuforge/engine/internal/generator"
	"github.com/sudokuforge/engine/internal/httpapi"
	"github.com/sudokuforge/engine/internal/solver"
	"github.com/sudokuforge/engine/web"
)

// statusWriter captures the HTTP status and byte count of a response
// for request logging.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

func requestLogger(next http.Handler) http.Handler {
	logger := newLogger()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		logger.Info("http",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"bytes", sw.bytes,
			"dur", time.Since(start).Round(time.Millisecond),
		)
	})
}

func newServeCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the Sudoku HTTP API and browser UI",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			if err := os.MkdirAll(filepath.Dir(persistPath), 0o755); err != nil {
				return err
			}
			cat, err := catalog.Open(persistPath)
			if err != nil {
				return err
			}
			defer cat.Close()

			sv := solver.New()
			gm := facade.New(sv, generator.New(sv))
			h := httpapi.New(gm, cat)

			mux := http.NewServeMux()
			mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(web.StaticFS())))
			mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "text/html; charset=utf-8")
				if err := web.Render(w, web.PageData{Title: "Sudoku"}); err != nil {
					http.Error(w, template.HTMLEscapeString(err.Error()), http.StatusInternalServerError)
				}
			})
			h.Register(mux)

			srv := &http.Server{
				Addr:              addr,
				Handler:           requestLogger(mux),
				ReadHeaderTimeout: 5 * time.Second,
			}
			logger.Info("listening", "addr", addr, "persist", persistPath)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	return cmd
}
