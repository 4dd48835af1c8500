package stories

import (
	"fmt"
	"maps"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/aether/app/providers/text"
)

// Preview is the optional docs preview file.
//
//	text:
//	  allowFontScaling: true
//	  maxFontSizeMultiplier: 1.3
//	stories:
//	  aether-button--primary:
//	    args:
//	      title: Save
//	  aether-button--disabled:
//	    hidden: true
type Preview struct {
	Text    *PreviewText             `yaml:"text"`
	Stories map[string]StoryOverride `yaml:"stories"`
}

// PreviewText holds global text defaults for every story.
type PreviewText struct {
	AllowFontScaling      *bool    `yaml:"allowFontScaling"`
	MaxFontSizeMultiplier *float64 `yaml:"maxFontSizeMultiplier"`
	AdjustsFontSizeToFit  *bool    `yaml:"adjustsFontSizeToFit"`
	MinimumFontScale      *float64 `yaml:"minimumFontScale"`
}

// StoryOverride changes one registered story.
type StoryOverride struct {
	Args   Args `yaml:"args"`
	Hidden bool `yaml:"hidden"`
}

// LoadPreview reads and parses a preview file.
func LoadPreview(path string) (*Preview, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read preview %s: %w", path, err)
	}
	return ParsePreview(data)
}

// ParsePreview parses preview YAML.
func ParsePreview(data []byte) (*Preview, error) {
	var p Preview
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse preview: %w", err)
	}
	return &p, nil
}

// TextDefaults returns the preview text defaults, or nil if none are set.
func (p *Preview) TextDefaults() *text.Defaults {
	if p == nil || p.Text == nil {
		return nil
	}
	return &text.Defaults{
		AllowFontScaling:      p.Text.AllowFontScaling,
		MaxFontSizeMultiplier: p.Text.MaxFontSizeMultiplier,
		AdjustsFontSizeToFit:  p.Text.AdjustsFontSizeToFit,
		MinimumFontScale:      p.Text.MinimumFontScale,
	}
}

// Apply attaches the story overrides to r. Every override must name a
// registered story and carry valid args; r is left untouched otherwise.
func (p *Preview) Apply(r *Registry) error {
	if p == nil {
		return nil
	}

	ids := slices.Sorted(maps.Keys(p.Stories))
	entries := make([]*Entry, len(ids))
	for i, id := range ids {
		e, err := r.Get(id)
		if err != nil {
			return fmt.Errorf("preview: %w", err)
		}
		if _, err := e.resolve(p.Stories[id].Args); err != nil {
			return fmt.Errorf("preview: %w", err)
		}
		entries[i] = e
	}

	for i, e := range entries {
		o := p.Stories[ids[i]]
		e.previewArgs = o.Args
		e.hidden = o.Hidden
	}
	return nil
}
