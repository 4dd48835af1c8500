package ui

import "github.com/a-h/templ"

// 1. Define Typed Enums
type ButtonVariant string

const (
	ButtonVariantPrimary   ButtonVariant = "primary"
	ButtonVariantSecondary ButtonVariant = "secondary"
	ButtonVariantAccent    ButtonVariant = "accent"
)

type ButtonSize string

const (
	ButtonSizeSm ButtonSize = "sm"
	ButtonSizeMd ButtonSize = "md"
	ButtonSizeLg ButtonSize = "lg"
)

// ButtonVariants and ButtonSizes list the accepted values in display order.
var (
	ButtonVariants = []ButtonVariant{ButtonVariantPrimary, ButtonVariantSecondary, ButtonVariantAccent}
	ButtonSizes    = []ButtonSize{ButtonSizeSm, ButtonSizeMd, ButtonSizeLg}
)

// 2. Define Component Config
type ButtonConfig struct {
	BaseConfig // Embeds Classes, Attrs, Children
	Title      string
	Variant    ButtonVariant
	Size       ButtonSize
	Disabled   bool
}

// Implement ConfigProvider interface
func (c *ButtonConfig) GetBase() *BaseConfig { return &c.BaseConfig }

// 3. Define Option Type Alias (for better DX)
type ButtonOption = Option[*ButtonConfig]

// 4. Define Component-Specific Options
func Title(s string) ButtonOption {
	return func(c *ButtonConfig) { c.Title = s }
}

func Variant(v ButtonVariant) ButtonOption {
	return func(c *ButtonConfig) { c.Variant = v }
}

func Size(s ButtonSize) ButtonOption {
	return func(c *ButtonConfig) { c.Size = s }
}

func Disabled(b bool) ButtonOption {
	return func(c *ButtonConfig) { c.Disabled = b }
}

// 5. Implementation
func Button(opts ...ButtonOption) templ.Component {
	// Default config
	c := &ButtonConfig{
		Variant: ButtonVariantPrimary,
		Size:    ButtonSizeMd,
	}

	// Apply options
	for _, opt := range opts {
		opt(c)
	}

	// Resolve classes (Variant + Size + state + User overrides)
	finalClass := CNX(
		buttonVariants(c.Variant, c.Size),
		"rounded-lg",
		If(c.Disabled, "opacity-50"),
		c.BaseConfig.Classes,
	)

	attrs := templ.Attributes{"type": "button"}
	for k, v := range c.BaseConfig.Attrs {
		attrs[k] = v
	}
	if c.Disabled {
		attrs["disabled"] = true
		attrs["aria-disabled"] = "true"
	}

	label := Element("span", "text-white font-bold text-center", nil, []templ.Component{String(c.Title)})
	children := append([]templ.Component{label}, c.BaseConfig.Children...)

	return Element("button", finalClass, attrs, children)
}

func buttonVariants(v ButtonVariant, s ButtonSize) string {
	var variant, size string

	switch v {
	case ButtonVariantSecondary:
		variant = "bg-aether-secondary"
	case ButtonVariantAccent:
		variant = "bg-aether-accent"
	default:
		variant = "bg-aether-primary"
	}

	switch s {
	case ButtonSizeSm:
		size = "p-aether-sm"
	case ButtonSizeLg:
		size = "p-aether-lg"
	default:
		size = "p-aether-md"
	}

	return CN(variant, size)
}
