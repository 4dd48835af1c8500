package ui

import "github.com/a-h/templ"

// BoxConfig configures Box.
type BoxConfig struct {
	BaseConfig
	Label string
}

func (c *BoxConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type BoxOption = Option[*BoxConfig]

func BoxLabel(s string) BoxOption {
	return func(c *BoxConfig) { c.Label = s }
}

// Box is a visual placeholder used to demonstrate layout behavior in stories.
func Box(opts ...BoxOption) templ.Component {
	c := &BoxConfig{}
	for _, opt := range opts {
		opt(c)
	}

	label := Element("span", "text-sm text-black font-medium text-center", nil, []templ.Component{String(c.Label)})
	children := append([]templ.Component{label}, c.BaseConfig.Children...)

	return Element("div", CNX("rounded-lg bg-blue-500 px-4 py-2", c.BaseConfig.Classes), c.BaseConfig.Attrs, children)
}
