package ui

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/vango-dev/aether/app/providers/text"
)

// TextConfig configures Text. Local fields override the provider defaults
// one by one.
type TextConfig struct {
	BaseConfig
	Local text.Defaults
	// Content is rendered before any children.
	Content string
}

func (c *TextConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type TextOption = Option[*TextConfig]

func Content(s string) TextOption {
	return func(c *TextConfig) { c.Content = s }
}

func AllowFontScaling(b bool) TextOption {
	return func(c *TextConfig) { c.Local.AllowFontScaling = text.Bool(b) }
}

func MaxFontSizeMultiplier(f float64) TextOption {
	return func(c *TextConfig) { c.Local.MaxFontSizeMultiplier = text.Float(f) }
}

func AdjustsFontSizeToFit(b bool) TextOption {
	return func(c *TextConfig) { c.Local.AdjustsFontSizeToFit = text.Bool(b) }
}

func MinimumFontScale(f float64) TextOption {
	return func(c *TextConfig) { c.Local.MinimumFontScale = text.Float(f) }
}

// Text renders a <span> carrying the effective text settings as data
// attributes. The settings come from the enclosing TextProvider with the
// component's own options on top. Rendering outside a provider fails with a
// *text.ConfigurationError.
func Text(opts ...TextOption) templ.Component {
	c := &TextConfig{}
	for _, opt := range opts {
		opt(c)
	}

	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		effective, err := text.Resolve(ctx, "Text", c.Local)
		if err != nil {
			return err
		}

		attrs := textAttrs(effective)
		for k, v := range c.BaseConfig.Attrs {
			attrs[k] = v
		}

		children := make([]templ.Component, 0, len(c.BaseConfig.Children)+1)
		if c.Content != "" {
			children = append(children, String(c.Content))
		}
		children = append(children, c.BaseConfig.Children...)

		return Element("span", CNX(c.BaseConfig.Classes), attrs, children).Render(ctx, w)
	})
}

func textAttrs(d text.Defaults) templ.Attributes {
	attrs := templ.Attributes{}
	if d.AllowFontScaling != nil {
		attrs["data-allow-font-scaling"] = strconv.FormatBool(*d.AllowFontScaling)
	}
	if d.MaxFontSizeMultiplier != nil {
		attrs["data-max-font-size-multiplier"] = *d.MaxFontSizeMultiplier
	}
	if d.AdjustsFontSizeToFit != nil {
		attrs["data-adjusts-font-size-to-fit"] = strconv.FormatBool(*d.AdjustsFontSizeToFit)
	}
	if d.MinimumFontScale != nil {
		attrs["data-minimum-font-scale"] = *d.MinimumFontScale
	}
	return attrs
}

// TextProviderConfig configures TextProvider.
type TextProviderConfig struct {
	BaseConfig
	Value *text.Defaults
}

func (c *TextProviderConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type TextProviderOption = Option[*TextProviderConfig]

// TextValue sets the provided defaults. Without it the provider falls back
// to text.Default().
func TextValue(d text.Defaults) TextProviderOption {
	return func(c *TextProviderConfig) { c.Value = &d }
}

// TextProvider establishes a text scope for its children. It renders no
// element of its own.
func TextProvider(opts ...TextProviderOption) templ.Component {
	c := &TextProviderConfig{}
	for _, opt := range opts {
		opt(c)
	}

	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return Fragment(c.BaseConfig.Children...).Render(text.Provide(ctx, c.Value), w)
	})
}
