package ui

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/a-h/templ"
)

// voidElements never have children or a closing tag.
var voidElements = map[string]bool{
	"area": true, "br": true, "col": true, "embed": true, "hr": true, "img": true,
	"input": true, "link": true, "meta": true, "source": true, "track": true, "wbr": true,
}

// Element renders <tag class=... attrs...>children</tag>. Attributes are
// written in sorted order so output is stable.
func Element(tag, class string, attrs templ.Attributes, children []templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<"+tag); err != nil {
			return err
		}
		if class != "" {
			if err := writeAttr(w, "class", class); err != nil {
				return err
			}
		}
		if err := writeAttrs(w, attrs); err != nil {
			return err
		}
		if _, err := io.WriteString(w, ">"); err != nil {
			return err
		}
		if voidElements[tag] {
			return nil
		}
		for _, child := range children {
			if child == nil {
				continue
			}
			if err := child.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</"+tag+">")
		return err
	})
}

func writeAttrs(w io.Writer, attrs templ.Attributes) error {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		if k == "class" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		switch v := attrs[k].(type) {
		case nil:
		case bool:
			if !v {
				continue
			}
			if _, err := io.WriteString(w, " "+templ.EscapeString(k)); err != nil {
				return err
			}
		case string:
			if err := writeAttr(w, k, v); err != nil {
				return err
			}
		case float64:
			if err := writeAttr(w, k, strconv.FormatFloat(v, 'f', -1, 64)); err != nil {
				return err
			}
		default:
			if err := writeAttr(w, k, fmt.Sprint(v)); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeAttr(w io.Writer, name, value string) error {
	_, err := fmt.Fprintf(w, " %s=\"%s\"", templ.EscapeString(name), templ.EscapeString(value))
	return err
}

// String renders s as an escaped text node.
func String(s string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(s))
		return err
	})
}

// Fragment renders children one after another without a wrapping element.
func Fragment(children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, child := range children {
			if child == nil {
				continue
			}
			if err := child.Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}
