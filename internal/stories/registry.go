package stories

import (
	"fmt"
	"strings"
)

// Registry keeps stories in registration order.
type Registry struct {
	entries []*Entry
	byID    map[string]*Entry
}

// Group is the set of stories sharing one component title.
type Group struct {
	Title       string
	Description string
	Entries     []*Entry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byID: map[string]*Entry{}}
}

// Register adds the stories of one component.
func (r *Registry) Register(meta Meta, stories ...Story) error {
	m := &meta
	for _, s := range stories {
		if s.Render == nil {
			return fmt.Errorf("story %s/%s has no render func", meta.Title, s.Name)
		}
		id := StoryID(meta.Title, s.Name)
		if _, exists := r.byID[id]; exists {
			return fmt.Errorf("%w: %s", ErrDuplicateStory, id)
		}
		e := &Entry{ID: id, Meta: m, Story: s}
		r.entries = append(r.entries, e)
		r.byID[id] = e
	}
	return nil
}

// Get returns the story with the given id, hidden or not.
func (r *Registry) Get(id string) (*Entry, error) {
	e, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrStoryNotFound, id)
	}
	return e, nil
}

// List returns the visible stories in registration order.
func (r *Registry) List() []*Entry {
	list := make([]*Entry, 0, len(r.entries))
	for _, e := range r.entries {
		if !e.hidden {
			list = append(list, e)
		}
	}
	return list
}

// Groups returns the visible stories grouped by component title, in the
// order the components were registered.
func (r *Registry) Groups() []Group {
	var groups []Group
	index := map[string]int{}
	for _, e := range r.List() {
		i, ok := index[e.Meta.Title]
		if !ok {
			i = len(groups)
			index[e.Meta.Title] = i
			groups = append(groups, Group{Title: e.Meta.Title, Description: e.Meta.Description})
		}
		groups[i].Entries = append(groups[i].Entries, e)
	}
	return groups
}

// StoryID builds the storybook style id "title--name", e.g.
// "Aether/Button" + "Primary" -> "aether-button--primary".
func StoryID(title, name string) string {
	return slugify(title) + "--" + slugify(name)
}

// slugify lowercases s and replaces every run of characters other than
// letters and digits with a single hyphen.
func slugify(s string) string {
	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}
	return b.String()
}
