package stories

import (
	"github.com/a-h/templ"

	"github.com/vango-dev/aether/app/components/ui"
	"github.com/vango-dev/aether/app/providers/text"
)

// Builtin returns a registry holding the stories of every aether component.
func Builtin() (*Registry, error) {
	r := NewRegistry()
	for _, register := range []func(*Registry) error{
		registerButton,
		registerVStack,
		registerHStack,
		registerText,
	} {
		if err := register(r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func registerButton(r *Registry) error {
	variants := make([]string, 0, len(ui.ButtonVariants))
	for _, v := range ui.ButtonVariants {
		variants = append(variants, string(v))
	}
	sizes := make([]string, 0, len(ui.ButtonSizes))
	for _, s := range ui.ButtonSizes {
		sizes = append(sizes, string(s))
	}

	render := func(args Args) templ.Component {
		opts := []ui.ButtonOption{
			ui.Title(args.String("title")),
			ui.Disabled(args.Bool("disabled")),
		}
		if v := args.String("variant"); v != "" {
			opts = append(opts, ui.Variant(ui.ButtonVariant(v)))
		}
		if s := args.String("size"); s != "" {
			opts = append(opts, ui.Size(ui.ButtonSize(s)))
		}
		return ui.Button(opts...)
	}

	return r.Register(Meta{
		Title:       "Aether/Button",
		Description: "A customizable button component with Tailwind CSS styling.",
		ArgTypes: []ArgType{
			{Name: "variant", Control: ControlSelect, Options: variants, Description: "Button variant"},
			{Name: "size", Control: ControlSelect, Options: sizes, Description: "Button size"},
			{Name: "title", Control: ControlText, Description: "Button text"},
			{Name: "disabled", Control: ControlBoolean, Description: "Disabled state"},
		},
		Args: Args{"title": "Button"},
	},
		Story{Name: "Primary", Description: "Primary button variant", Args: Args{"variant": "primary", "title": "Primary Button"}, Render: render},
		Story{Name: "Secondary", Description: "Secondary button variant", Args: Args{"variant": "secondary", "title": "Secondary Button"}, Render: render},
		Story{Name: "Accent", Description: "Accent button variant", Args: Args{"variant": "accent", "title": "Accent Button"}, Render: render},
		Story{Name: "Small", Description: "Small button size", Args: Args{"size": "sm", "title": "Small Button"}, Render: render},
		Story{Name: "Medium", Description: "Medium button size (default)", Args: Args{"size": "md", "title": "Medium Button"}, Render: render},
		Story{Name: "Large", Description: "Large button size", Args: Args{"size": "lg", "title": "Large Button"}, Render: render},
		Story{Name: "Disabled", Description: "Disabled button state", Args: Args{"title": "Disabled Button", "disabled": "true"}, Render: render},
	)
}

type stackFunc func(opts ...ui.StackOption) templ.Component

func boxes(classes ...string) []templ.Component {
	labels := []string{"Item 1", "Item 2", "Item 3"}
	out := make([]templ.Component, 0, len(labels))
	for i, label := range labels {
		opts := []ui.BoxOption{ui.BoxLabel(label)}
		if i < len(classes) {
			opts = append(opts, ui.Class[*ui.BoxConfig](classes[i]))
		}
		out = append(out, ui.Box(opts...))
	}
	return out
}

func stack(fn stackFunc, class string, children ...templ.Component) templ.Component {
	return fn(ui.Class[*ui.StackConfig](class), ui.Child[*ui.StackConfig](children...))
}

// section is a captioned example inside a layout story.
func section(caption string, body templ.Component) templ.Component {
	return stack(ui.VStack, "gap-2",
		ui.Text(ui.Content(caption), ui.Class[*ui.TextConfig]("text-sm mb-2")),
		body,
	)
}

func spacingStory(fn stackFunc) Story {
	return Story{
		Name:        "Spacing",
		Description: "Different gap sizes.",
		Render: func(Args) templ.Component {
			return stack(ui.VStack, "gap-8",
				section("Small gap (gap-2)", stack(fn, "gap-2", boxes()...)),
				section("Medium gap (gap-4)", stack(fn, "gap-4", boxes()...)),
				section("Large gap (gap-8)", stack(fn, "gap-8", boxes()...)),
			)
		},
	}
}

func alignmentStory(fn stackFunc, frame string, sizes ...string) Story {
	return Story{
		Name:        "Alignment",
		Description: "Different alignment options.",
		Render: func(Args) templ.Component {
			return stack(ui.VStack, "gap-8",
				section("Start aligned (default)", stack(fn, "items-start "+frame, boxes(sizes...)...)),
				section("Center aligned", stack(fn, "items-center "+frame, boxes(sizes...)...)),
				section("End aligned", stack(fn, "items-end "+frame, boxes(sizes...)...)),
			)
		},
	}
}

func registerVStack(r *Registry) error {
	return r.Register(Meta{
		Title: "@aether/Layout/VStack",
		Description: "VStack arranges its children vertically using flexbox. " +
			"Use Tailwind classes to customize spacing, alignment, and other properties.",
	},
		Story{
			Name:        "Basic",
			Description: "Basic vertical stack with spacing between items.",
			Render: func(Args) templ.Component {
				return stack(ui.VStack, "gap-4", boxes()...)
			},
		},
		spacingStory(ui.VStack),
		alignmentStory(ui.VStack, "gap-2 rounded-lg border border-gray-300 p-4", "w-24", "w-32", "w-20"),
	)
}

func registerHStack(r *Registry) error {
	return r.Register(Meta{
		Title: "@aether/Layout/HStack",
		Description: "HStack arranges its children horizontally using flexbox. " +
			"Use Tailwind classes to customize spacing, alignment, and other properties.",
	},
		Story{
			Name:        "Basic",
			Description: "Basic horizontal stack with spacing between items.",
			Render: func(Args) templ.Component {
				return stack(ui.HStack, "gap-4", boxes()...)
			},
		},
		spacingStory(ui.HStack),
		alignmentStory(ui.HStack, "h-32 gap-2 rounded-lg border border-gray-300 p-4", "h-8", "h-16", "h-12"),
		Story{
			Name:        "Wrapping",
			Description: "Items wrap onto the next line when they overflow.",
			Render: func(Args) templ.Component {
				items := make([]templ.Component, 0, 8)
				for i := 0; i < 8; i++ {
					items = append(items, ui.Box(ui.BoxLabel("Item"), ui.Class[*ui.BoxConfig]("w-24")))
				}
				return stack(ui.HStack, "flex-wrap gap-2 w-64", items...)
			},
		},
	)
}

func registerText(r *Registry) error {
	return r.Register(Meta{
		Title: "Aether/Text",
		Description: "Text applies the defaults of the nearest TextProvider. " +
			"Local settings override the provider field by field.",
		ArgTypes: []ArgType{
			{Name: "content", Control: ControlText, Description: "Text content"},
			{Name: "allowFontScaling", Control: ControlBoolean, Description: "Respect the platform text size setting"},
		},
		Args: Args{"content": "The quick brown fox"},
	},
		Story{
			Name:        "Defaults",
			Description: "Text rendered with the provider defaults.",
			Render: func(args Args) templ.Component {
				return ui.Text(ui.Content(args.String("content")))
			},
		},
		Story{
			Name:        "LocalOverride",
			Description: "allowFontScaling set on the component wins over the provider.",
			Args:        Args{"allowFontScaling": "false"},
			Render: func(args Args) templ.Component {
				return ui.Text(
					ui.Content(args.String("content")),
					ui.AllowFontScaling(args.Bool("allowFontScaling")),
				)
			},
		},
		Story{
			Name:        "NestedProvider",
			Description: "An inner provider replaces the outer defaults entirely.",
			Render: func(args Args) templ.Component {
				inner := text.Defaults{
					MaxFontSizeMultiplier: text.Float(1.3),
				}
				return stack(ui.VStack, "gap-2",
					ui.Text(ui.Content(args.String("content"))),
					ui.TextProvider(
						ui.TextValue(inner),
						ui.Child[*ui.TextProviderConfig](ui.Text(ui.Content(args.String("content")))),
					),
				)
			},
		},
	)
}
