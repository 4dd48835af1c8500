package handlers

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/vango-dev/aether/app/providers/text"
	"github.com/vango-dev/aether/internal/chrome"
	"github.com/vango-dev/aether/internal/middleware"
	"github.com/vango-dev/aether/internal/stories"
)

// Handlers contains all HTTP handler dependencies.
type Handlers struct {
	stories      *stories.Registry
	textDefaults *text.Defaults
	logger       *slog.Logger
}

// New creates a new Handlers instance. textDefaults is the scope established
// for every request; nil means text.Default().
func New(registry *stories.Registry, textDefaults *text.Defaults, logger *slog.Logger) *Handlers {
	return &Handlers{
		stories:      registry,
		textDefaults: textDefaults,
		logger:       logger,
	}
}

// Routes builds the docs router.
func (h *Handlers) Routes() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(h.logger))
	r.Use(middleware.Recovery(h.logger))
	r.Use(middleware.TextDefaults(h.textDefaults))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	r.Get("/", h.Index)
	r.Get("/index.json", h.IndexJSON)
	r.Get("/stories/{id}", h.Story)
	r.Get("/iframe/{id}", h.Canvas)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		h.fail(w, r, http.StatusNotFound, "Page not found.")
	})

	return r
}

// render writes c only once it rendered completely, so a failing component
// never leaves a half-written page behind.
func (h *Handlers) render(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	var buf bytes.Buffer
	if err := c.Render(r.Context(), &buf); err != nil {
		h.logger.Error("render failed", "path", r.URL.Path, "error", err)
		http.Error(w, "render failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

func (h *Handlers) fail(w http.ResponseWriter, r *http.Request, status int, message string) {
	h.render(w, r, status, chrome.Error(status, message))
}
