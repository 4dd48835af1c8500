package ui

import "github.com/a-h/templ"

// BaseConfig is embedded in every component config
type BaseConfig struct {
	Classes  []string
	Attrs    templ.Attributes
	Children []templ.Component
}

// ConfigProvider interface allows generic options to work on any config
type ConfigProvider interface {
	GetBase() *BaseConfig
}

// Option is a generic option function that modifies a ConfigProvider
type Option[T ConfigProvider] func(T)

// Class adds utility classes (merged via CNX later)
func Class[T ConfigProvider](c string) Option[T] {
	return func(cfg T) {
		base := cfg.GetBase()
		base.Classes = append(base.Classes, c)
	}
}

// Attr sets a raw HTML attribute (escape hatch). A bool value renders as a
// bare attribute when true and is omitted when false.
func Attr[T ConfigProvider](name string, value any) Option[T] {
	return func(cfg T) {
		base := cfg.GetBase()
		if base.Attrs == nil {
			base.Attrs = templ.Attributes{}
		}
		base.Attrs[name] = value
	}
}

// Child appends children
func Child[T ConfigProvider](nodes ...templ.Component) Option[T] {
	return func(cfg T) {
		base := cfg.GetBase()
		base.Children = append(base.Children, nodes...)
	}
}
