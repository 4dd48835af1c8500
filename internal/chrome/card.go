// Package chrome renders the docs app around the stories: page shell,
// cards listing components, and the controls form.
package chrome

import (
	"github.com/a-h/templ"

	"github.com/vango-dev/aether/app/components/ui"
)

// Card
type CardConfig struct{ ui.BaseConfig }

func (c *CardConfig) GetBase() *ui.BaseConfig { return &c.BaseConfig }

type CardOption = ui.Option[*CardConfig]

func Card(opts ...CardOption) templ.Component {
	return block("div", "rounded-lg border bg-white text-gray-900 shadow-sm", opts)
}

// CardHeader
func CardHeader(opts ...CardOption) templ.Component {
	return block("div", "flex flex-col space-y-1.5 p-6", opts)
}

// CardTitle
func CardTitle(opts ...CardOption) templ.Component {
	return block("h3", "text-2xl font-semibold leading-none tracking-tight", opts)
}

// CardDescription
func CardDescription(opts ...CardOption) templ.Component {
	return block("p", "text-sm text-gray-500", opts)
}

// CardContent
func CardContent(opts ...CardOption) templ.Component {
	return block("div", "p-6 pt-0", opts)
}

func block(tag, class string, opts []CardOption) templ.Component {
	c := &CardConfig{}
	for _, opt := range opts {
		opt(c)
	}
	return ui.Element(tag, ui.CNX(class, c.BaseConfig.Classes), c.BaseConfig.Attrs, c.BaseConfig.Children)
}
