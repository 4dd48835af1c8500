package ui

import "github.com/a-h/templ"

// StackConfig configures VStack and HStack.
type StackConfig struct {
	BaseConfig
	// As is the element rendered, "div" by default.
	As string
}

func (c *StackConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type StackOption = Option[*StackConfig]

// As renders the stack as the given element instead of a div.
func As(tag string) StackOption {
	return func(c *StackConfig) { c.As = tag }
}

// VStack renders its children in a column with flexbox.
//
//	VStack(Class[*StackConfig]("gap-4"), Child[*StackConfig](a, b, c))
func VStack(opts ...StackOption) templ.Component {
	return stack("flex flex-col", opts)
}

// HStack renders its children in a row with flexbox.
func HStack(opts ...StackOption) templ.Component {
	return stack("flex flex-row", opts)
}

func stack(direction string, opts []StackOption) templ.Component {
	c := &StackConfig{As: "div"}
	for _, opt := range opts {
		opt(c)
	}
	if c.As == "" {
		c.As = "div"
	}

	return Element(c.As, CNX(direction, c.BaseConfig.Classes), c.BaseConfig.Attrs, c.BaseConfig.Children)
}
