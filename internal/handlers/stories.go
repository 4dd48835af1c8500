package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/vango-dev/aether/internal/chrome"
	"github.com/vango-dev/aether/internal/stories"
)

// Index lists all visible stories.
func (h *Handlers) Index(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, chrome.Index(h.stories.Groups()))
}

// Story renders the story page with its controls.
func (h *Handlers) Story(w http.ResponseWriter, r *http.Request) {
	h.serveStory(w, r, func(e *stories.Entry, args stories.Args, preview templ.Component) templ.Component {
		return chrome.Story(e, args, preview)
	})
}

// Canvas renders the story alone.
func (h *Handlers) Canvas(w http.ResponseWriter, r *http.Request) {
	h.serveStory(w, r, func(e *stories.Entry, _ stories.Args, preview templ.Component) templ.Component {
		return chrome.Canvas(e, preview)
	})
}

type storyPage func(e *stories.Entry, args stories.Args, preview templ.Component) templ.Component

func (h *Handlers) serveStory(w http.ResponseWriter, r *http.Request, page storyPage) {
	e, err := h.stories.Get(chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, http.StatusNotFound, err.Error())
		return
	}

	preview, args, err := e.Component(queryArgs(r))
	if err != nil {
		if errors.Is(err, stories.ErrInvalidArg) || errors.Is(err, stories.ErrUnknownArg) {
			h.fail(w, r, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("resolve story", "id", e.ID, "error", err)
		h.fail(w, r, http.StatusInternalServerError, "Could not render story.")
		return
	}

	h.render(w, r, http.StatusOK, page(e, args, preview))
}

// queryArgs reads arg overrides from the query string. Empty values leave
// the arg unset.
func queryArgs(r *http.Request) stories.Args {
	args := stories.Args{}
	for name, values := range r.URL.Query() {
		if len(values) > 0 && values[0] != "" {
			args[name] = values[0]
		}
	}
	return args
}

type indexEntry struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
}

type index struct {
	Version int                   `json:"v"`
	Entries map[string]indexEntry `json:"entries"`
}

// IndexJSON serves the story index in the storybook index.json shape.
func (h *Handlers) IndexJSON(w http.ResponseWriter, r *http.Request) {
	idx := index{Version: 5, Entries: map[string]indexEntry{}}
	for _, e := range h.stories.List() {
		idx.Entries[e.ID] = indexEntry{
			ID:          e.ID,
			Title:       e.Meta.Title,
			Name:        e.Story.Name,
			Type:        "story",
			Description: e.Story.Description,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(idx); err != nil {
		h.logger.Error("encode index", "error", err)
	}
}
