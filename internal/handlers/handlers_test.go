package handlers_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/aether/app/components/ui"
	"github.com/vango-dev/aether/app/providers/text"
	"github.com/vango-dev/aether/internal/handlers"
	"github.com/vango-dev/aether/internal/stories"
)

func testServer(t *testing.T, defaults *text.Defaults) *httptest.Server {
	t.Helper()

	registry, err := stories.Builtin()
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	server := httptest.NewServer(handlers.New(registry, defaults, logger).Routes())
	t.Cleanup(server.Close)
	return server
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestHealth(t *testing.T) {
	server := testServer(t, nil)

	status, body := get(t, server.URL+"/health")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body)
}

func TestIndex(t *testing.T) {
	server := testServer(t, nil)

	status, body := get(t, server.URL+"/")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `href="/stories/aether-text--nestedprovider"`)
}

func TestStoryPage(t *testing.T) {
	server := testServer(t, nil)

	status, body := get(t, server.URL+"/stories/aether-button--primary?title=Hello&size=lg")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Hello")
	assert.Contains(t, body, "p-aether-lg")
}

func TestStoryNotFound(t *testing.T) {
	server := testServer(t, nil)

	status, _ := get(t, server.URL+"/stories/nope--nope")
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = get(t, server.URL+"/missing")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestStoryInvalidArgs(t *testing.T) {
	server := testServer(t, nil)

	status, body := get(t, server.URL+"/stories/aether-button--primary?variant=huge")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body, "variant")

	status, _ = get(t, server.URL+"/stories/aether-button--primary?color=red")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestEmptyQueryValuesIgnored(t *testing.T) {
	server := testServer(t, nil)

	status, body := get(t, server.URL+"/stories/aether-button--secondary?variant=&size=")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "bg-aether-secondary")
}

func TestCanvasUsesConfiguredTextDefaults(t *testing.T) {
	server := testServer(t, &text.Defaults{AllowFontScaling: text.Bool(false)})

	status, body := get(t, server.URL+"/iframe/aether-text--defaults")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `<span data-allow-font-scaling="false">The quick brown fox</span>`)
	assert.NotContains(t, body, "Controls")
}

func TestRenderFailureReturns500(t *testing.T) {
	registry := stories.NewRegistry()
	require.NoError(t, registry.Register(stories.Meta{Title: "Broken"}, stories.Story{
		Name: "Unprovided",
		Render: func(stories.Args) templ.Component {
			// Drops the request scope before rendering the text.
			return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
				return ui.Text(ui.Content("x")).Render(context.Background(), w)
			})
		},
	}))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	server := httptest.NewServer(handlers.New(registry, nil, logger).Routes())
	defer server.Close()

	status, body := get(t, server.URL+"/iframe/broken--unprovided")
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Contains(t, body, "TextProvider")
}

func TestIndexJSON(t *testing.T) {
	server := testServer(t, nil)

	resp, err := http.Get(server.URL + "/index.json")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var idx struct {
		V       int `json:"v"`
		Entries map[string]struct {
			Title string `json:"title"`
			Name  string `json:"name"`
			Type  string `json:"type"`
		} `json:"entries"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&idx))

	assert.Equal(t, 5, idx.V)
	assert.Len(t, idx.Entries, 17)
	assert.Equal(t, "Aether/Button", idx.Entries["aether-button--primary"].Title)
	assert.Equal(t, "story", idx.Entries["aether-button--primary"].Type)
}
