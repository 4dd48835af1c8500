// Package stories holds the interactive examples served by the docs app.
package stories

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strconv"

	"github.com/a-h/templ"
)

// Story errors
var (
	ErrStoryNotFound  = errors.New("story not found")
	ErrDuplicateStory = errors.New("story already registered")
	ErrUnknownArg     = errors.New("unknown arg")
	ErrInvalidArg     = errors.New("invalid arg value")
)

// Control is the kind of input used to edit an arg.
type Control string

const (
	ControlText    Control = "text"
	ControlBoolean Control = "boolean"
	ControlSelect  Control = "select"
)

// ArgType describes one editable arg of a component.
type ArgType struct {
	Name        string
	Control     Control
	Options     []string // select only
	Description string
}

// Validate checks value against the arg type.
func (a ArgType) Validate(value string) error {
	switch a.Control {
	case ControlBoolean:
		if _, err := strconv.ParseBool(value); err != nil {
			return fmt.Errorf("%w: %s must be a boolean, got %q", ErrInvalidArg, a.Name, value)
		}
	case ControlSelect:
		if !slices.Contains(a.Options, value) {
			return fmt.Errorf("%w: %s must be one of %v, got %q", ErrInvalidArg, a.Name, a.Options, value)
		}
	}
	return nil
}

// Args are the values a story is rendered with, keyed by arg name.
type Args map[string]string

// String returns the value of name, or "" if unset.
func (a Args) String(name string) string { return a[name] }

// Bool returns the value of name parsed as a boolean. Unset or malformed
// values are false.
func (a Args) Bool(name string) bool {
	b, _ := strconv.ParseBool(a[name])
	return b
}

// Meta describes a component and the defaults shared by its stories.
type Meta struct {
	Title       string // e.g. "Aether/Button"
	Description string
	ArgTypes    []ArgType
	Args        Args
}

func (m *Meta) argType(name string) (ArgType, bool) {
	for _, at := range m.ArgTypes {
		if at.Name == name {
			return at, true
		}
	}
	return ArgType{}, false
}

// Story is a single example of a component.
type Story struct {
	Name        string
	Description string
	Args        Args
	Render      func(args Args) templ.Component
}

// Entry is a registered story bound to its component meta.
type Entry struct {
	ID    string
	Meta  *Meta
	Story Story

	// preview-file overrides
	previewArgs Args
	hidden      bool
}

// ResolveArgs layers meta args, story args, preview overrides and the given
// overrides, in that order, and validates the result. Unknown names are
// reported first, then values are checked in ArgTypes order.
func (e *Entry) ResolveArgs(overrides ...Args) (Args, error) {
	return e.resolve(e.previewArgs, overrides...)
}

func (e *Entry) resolve(preview Args, overrides ...Args) (Args, error) {
	layers := append([]Args{e.Meta.Args, e.Story.Args, preview}, overrides...)

	resolved := Args{}
	for _, layer := range layers {
		maps.Copy(resolved, layer)
	}

	for _, name := range slices.Sorted(maps.Keys(resolved)) {
		if _, ok := e.Meta.argType(name); !ok {
			return nil, fmt.Errorf("%w: %s has no arg %q", ErrUnknownArg, e.ID, name)
		}
	}
	for _, at := range e.Meta.ArgTypes {
		value, ok := resolved[at.Name]
		if !ok {
			continue
		}
		if err := at.Validate(value); err != nil {
			return nil, err
		}
	}
	return resolved, nil
}

// Component resolves the args and returns the rendered story.
func (e *Entry) Component(overrides ...Args) (templ.Component, Args, error) {
	args, err := e.ResolveArgs(overrides...)
	if err != nil {
		return nil, nil, err
	}
	return e.Story.Render(args), args, nil
}
