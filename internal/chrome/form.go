package chrome

import (
	"github.com/a-h/templ"

	"github.com/vango-dev/aether/app/components/ui"
)

type LabelConfig struct {
	ui.BaseConfig
	For string
}

func (c *LabelConfig) GetBase() *ui.BaseConfig { return &c.BaseConfig }

type LabelOption = ui.Option[*LabelConfig]

func LabelFor(id string) LabelOption {
	return func(c *LabelConfig) { c.For = id }
}

func Label(opts ...LabelOption) templ.Component {
	c := &LabelConfig{}
	for _, opt := range opts {
		opt(c)
	}

	attrs := templ.Attributes{}
	for k, v := range c.BaseConfig.Attrs {
		attrs[k] = v
	}
	if c.For != "" {
		attrs["for"] = c.For
	}

	finalClass := ui.CNX(
		"text-sm font-medium leading-none peer-disabled:cursor-not-allowed peer-disabled:opacity-70",
		c.BaseConfig.Classes,
	)
	return ui.Element("label", finalClass, attrs, c.BaseConfig.Children)
}

type InputConfig struct {
	ui.BaseConfig
	Type  string
	Name  string
	Value string
}

func (c *InputConfig) GetBase() *ui.BaseConfig { return &c.BaseConfig }

type InputOption = ui.Option[*InputConfig]

func InputType(t string) InputOption {
	return func(c *InputConfig) { c.Type = t }
}

func InputName(s string) InputOption {
	return func(c *InputConfig) { c.Name = s }
}

func InputValue(s string) InputOption {
	return func(c *InputConfig) { c.Value = s }
}

func Input(opts ...InputOption) templ.Component {
	c := &InputConfig{
		Type: "text", // Default
	}
	for _, opt := range opts {
		opt(c)
	}

	attrs := templ.Attributes{}
	for k, v := range c.BaseConfig.Attrs {
		attrs[k] = v
	}
	if c.Type != "" {
		attrs["type"] = c.Type
	}
	if c.Name != "" {
		attrs["name"] = c.Name
		attrs["id"] = c.Name
	}
	if c.Value != "" {
		attrs["value"] = c.Value
	}

	finalClass := ui.CNX(
		"flex h-10 w-full rounded-md border border-gray-300 bg-white px-3 py-2 text-sm focus-visible:outline-none focus-visible:ring-2 focus-visible:ring-offset-2",
		c.BaseConfig.Classes,
	)
	return ui.Element("input", finalClass, attrs, nil)
}

type SelectConfig struct {
	ui.BaseConfig
	Name     string
	Options  []string
	Selected string
}

func (c *SelectConfig) GetBase() *ui.BaseConfig { return &c.BaseConfig }

type SelectOption = ui.Option[*SelectConfig]

func SelectName(s string) SelectOption {
	return func(c *SelectConfig) { c.Name = s }
}

func SelectOptions(options []string, selected string) SelectOption {
	return func(c *SelectConfig) {
		c.Options = options
		c.Selected = selected
	}
}

// Select renders a <select>; an empty first option leaves the arg unset.
func Select(opts ...SelectOption) templ.Component {
	c := &SelectConfig{}
	for _, opt := range opts {
		opt(c)
	}

	options := make([]templ.Component, 0, len(c.Options)+1)
	options = append(options, ui.Element("option", "", templ.Attributes{"value": ""}, nil))
	for _, o := range c.Options {
		options = append(options, ui.Element("option", "", templ.Attributes{
			"value":    o,
			"selected": o == c.Selected,
		}, []templ.Component{ui.String(o)}))
	}

	attrs := templ.Attributes{"name": c.Name, "id": c.Name}
	finalClass := ui.CNX("h-10 w-full rounded-md border border-gray-300 bg-white px-3 text-sm", c.BaseConfig.Classes)
	return ui.Element("select", finalClass, attrs, options)
}
