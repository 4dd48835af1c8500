package chrome

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/vango-dev/aether/app/components/ui"
	"github.com/vango-dev/aether/internal/stories"
)

// tailwindConfig mirrors the aether theme so the CDN build knows the
// bg-aether-* and p-aether-* utilities.
const tailwindConfig = `tailwind.config = {
  theme: {
    extend: {
      colors: {
        aether: { primary: '#6366f1', secondary: '#8b5cf6', accent: '#ec4899' },
        blue: '#3b82f6',
      },
      spacing: { 'aether-sm': '0.5rem', 'aether-md': '1rem', 'aether-lg': '2rem' },
    },
  },
}`

// Page wraps body in an HTML document.
func Page(title string, body ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		head := `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">` +
			`<meta name="viewport" content="width=device-width, initial-scale=1">` +
			`<title>` + templ.EscapeString(title) + `</title>` +
			`<script src="https://cdn.tailwindcss.com"></script>` +
			`<script>` + tailwindConfig + `</script></head>`
		if _, err := io.WriteString(w, head); err != nil {
			return err
		}
		if err := ui.Element("body", "min-h-screen bg-gray-50 p-8", nil, body).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</html>")
		return err
	})
}

func link(href, class string, children ...templ.Component) templ.Component {
	return ui.Element("a", class, templ.Attributes{"href": href}, children)
}

// Index lists every story grouped by component.
func Index(groups []stories.Group) templ.Component {
	cards := make([]templ.Component, 0, len(groups))
	for _, g := range groups {
		items := make([]templ.Component, 0, len(g.Entries))
		for _, e := range g.Entries {
			items = append(items, ui.Element("li", "", nil, []templ.Component{
				link("/stories/"+e.ID, "text-indigo-600 hover:underline", ui.String(e.Story.Name)),
			}))
		}

		cards = append(cards, Card(ui.Child[*CardConfig](
			CardHeader(ui.Child[*CardConfig](
				CardTitle(ui.Child[*CardConfig](ui.String(g.Title))),
				CardDescription(ui.Child[*CardConfig](ui.String(g.Description))),
			)),
			CardContent(ui.Child[*CardConfig](
				ui.Element("ul", "space-y-1", nil, items),
			)),
		)))
	}

	return Page("aether",
		ui.VStack(
			ui.Class[*ui.StackConfig]("mx-auto max-w-3xl gap-6"),
			ui.Child[*ui.StackConfig](
				ui.Element("h1", "text-3xl font-bold", nil, []templ.Component{ui.String("aether")}),
				ui.VStack(ui.Class[*ui.StackConfig]("gap-4"), ui.Child[*ui.StackConfig](cards...)),
			),
		),
	)
}

// Story renders the story page: preview, description and the controls form.
func Story(e *stories.Entry, args stories.Args, preview templ.Component) templ.Component {
	return Page(e.Meta.Title+" / "+e.Story.Name,
		ui.VStack(
			ui.Class[*ui.StackConfig]("mx-auto max-w-3xl gap-6"),
			ui.Child[*ui.StackConfig](
				link("/", "text-sm text-indigo-600 hover:underline", ui.String("← All stories")),
				ui.Element("h1", "text-3xl font-bold", nil, []templ.Component{ui.String(e.Meta.Title)}),
				ui.Element("h2", "text-xl font-semibold", nil, []templ.Component{ui.String(e.Story.Name)}),
				ui.Element("p", "text-gray-600", nil, []templ.Component{ui.String(e.Story.Description)}),
				Card(
					ui.Class[*CardConfig]("p-6"),
					ui.Attr[*CardConfig]("data-story-id", e.ID),
					ui.Child[*CardConfig](preview),
				),
				link("/iframe/"+e.ID, "text-sm text-indigo-600 hover:underline", ui.String("Open canvas")),
				Controls(e, args),
			),
		),
	)
}

// Controls renders a GET form editing the story args. Submitting it reloads
// the page with the args as query parameters.
func Controls(e *stories.Entry, args stories.Args) templ.Component {
	if len(e.Meta.ArgTypes) == 0 {
		return ui.Element("p", "text-sm text-gray-500", nil, []templ.Component{ui.String("This story has no controls.")})
	}

	fields := make([]templ.Component, 0, len(e.Meta.ArgTypes)+1)
	for _, at := range e.Meta.ArgTypes {
		var input templ.Component
		switch at.Control {
		case stories.ControlSelect:
			input = Select(SelectName(at.Name), SelectOptions(at.Options, args[at.Name]))
		case stories.ControlBoolean:
			input = Select(SelectName(at.Name), SelectOptions([]string{"true", "false"}, normalizeBool(args[at.Name])))
		default:
			input = Input(InputName(at.Name), InputValue(args[at.Name]))
		}

		fields = append(fields, ui.VStack(
			ui.Class[*ui.StackConfig]("gap-2"),
			ui.Child[*ui.StackConfig](
				Label(LabelFor(at.Name), ui.Child[*LabelConfig](ui.String(at.Name))),
				input,
				ui.Element("p", "text-xs text-gray-500", nil, []templ.Component{ui.String(at.Description)}),
			),
		))
	}

	fields = append(fields, ui.Button(ui.Title("Apply"), ui.Attr[*ui.ButtonConfig]("type", "submit")))

	return Card(ui.Child[*CardConfig](
		CardHeader(ui.Child[*CardConfig](CardTitle(ui.Child[*CardConfig](ui.String("Controls"))))),
		CardContent(ui.Child[*CardConfig](
			ui.VStack(
				ui.As("form"),
				ui.Attr[*ui.StackConfig]("method", "get"),
				ui.Class[*ui.StackConfig]("gap-4"),
				ui.Child[*ui.StackConfig](fields...),
			),
		)),
	))
}

func normalizeBool(v string) string {
	if v == "" {
		return ""
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return ""
	}
	return strconv.FormatBool(b)
}

// Canvas renders a story alone, the way the storybook iframe does.
func Canvas(e *stories.Entry, preview templ.Component) templ.Component {
	return Page(e.Meta.Title+" / "+e.Story.Name, preview)
}

// Error renders a short error page.
func Error(status int, message string) templ.Component {
	return Page("aether",
		ui.VStack(
			ui.Class[*ui.StackConfig]("mx-auto max-w-3xl gap-4"),
			ui.Child[*ui.StackConfig](
				ui.Element("h1", "text-3xl font-bold", nil, []templ.Component{ui.String(strconv.Itoa(status))}),
				ui.Element("p", "text-gray-600", nil, []templ.Component{ui.String(message)}),
				link("/", "text-sm text-indigo-600 hover:underline", ui.String("← All stories")),
			),
		),
	)
}
