package chrome_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/aether/app/components/ui"
	"github.com/vango-dev/aether/app/providers/text"
	"github.com/vango-dev/aether/internal/chrome"
	"github.com/vango-dev/aether/internal/stories"
)

func TestIndex(t *testing.T) {
	r, err := stories.Builtin()
	require.NoError(t, err)

	var b strings.Builder
	require.NoError(t, chrome.Index(r.Groups()).Render(context.Background(), &b))

	html := b.String()
	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, `href="/stories/aether-button--primary"`)
	assert.Contains(t, html, "@aether/Layout/HStack")
}

func TestStoryPageControls(t *testing.T) {
	r, err := stories.Builtin()
	require.NoError(t, err)
	e, err := r.Get("aether-button--accent")
	require.NoError(t, err)

	preview, args, err := e.Component()
	require.NoError(t, err)

	var b strings.Builder
	ctx := text.Provide(context.Background(), nil)
	require.NoError(t, chrome.Story(e, args, preview).Render(ctx, &b))

	html := b.String()
	assert.Contains(t, html, `data-story-id="aether-button--accent"`)
	assert.Contains(t, html, `<select class="h-10 w-full rounded-md border border-gray-300 bg-white px-3 text-sm" id="variant" name="variant">`)
	assert.Contains(t, html, `<option selected value="accent">accent</option>`)
	assert.Contains(t, html, `<input class="`)
	assert.Contains(t, html, `value="Accent Button"`)
	assert.Contains(t, html, `type="submit"`)
}

func TestControlsWithoutArgTypes(t *testing.T) {
	r, err := stories.Builtin()
	require.NoError(t, err)
	e, err := r.Get("aether-layout-vstack--basic")
	require.NoError(t, err)

	var b strings.Builder
	require.NoError(t, chrome.Controls(e, nil).Render(context.Background(), &b))
	assert.Contains(t, b.String(), "no controls")
}

func TestLabelInput(t *testing.T) {
	var b strings.Builder
	require.NoError(t, chrome.Label(chrome.LabelFor("title"), ui.Child[*chrome.LabelConfig](ui.String("Title"))).Render(context.Background(), &b))
	assert.Contains(t, b.String(), `for="title"`)

	b.Reset()
	require.NoError(t, chrome.Input(chrome.InputType("email"), chrome.InputName("mail")).Render(context.Background(), &b))
	assert.Contains(t, b.String(), `type="email"`)
	assert.NotContains(t, b.String(), "</input>")
}
