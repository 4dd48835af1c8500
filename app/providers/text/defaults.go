// Package text carries the default accessibility settings for rendered text.
//
// A scope is established near the root of a render with WithDefaults or
// Provide and read back by every text component beneath it with
// FromContext. The context is the handle: whatever receives the derived
// context sees the scope, nested scopes shadow outer ones entirely.
package text

// Defaults controls how text responds to platform accessibility settings.
// A nil field is unset.
type Defaults struct {
	// AllowFontScaling honors the platform "Larger Text" setting.
	AllowFontScaling *bool
	// MaxFontSizeMultiplier caps the scaling multiplier. 1.3 suits buttons
	// and tabs, 1.5 general UI, 2.0 long-form content.
	MaxFontSizeMultiplier *float64
	// AdjustsFontSizeToFit shrinks text to fit its container.
	AdjustsFontSizeToFit *bool
	// MinimumFontScale bounds shrink-to-fit scaling from below.
	MinimumFontScale *float64
}

// Default returns the settings used when a scope is established without a
// value: font scaling on, capped at 1.5x.
func Default() Defaults {
	return Defaults{
		AllowFontScaling:      Bool(true),
		MaxFontSizeMultiplier: Float(1.5),
	}
}

// Bool returns a pointer to v.
func Bool(v bool) *bool { return &v }

// Float returns a pointer to v.
func Float(v float64) *float64 { return &v }

// Merge returns a copy of d in which every field set in local replaces the
// corresponding default. Unset local fields pass the default through.
func (d Defaults) Merge(local Defaults) Defaults {
	merged := d.clone()
	if local.AllowFontScaling != nil {
		merged.AllowFontScaling = Bool(*local.AllowFontScaling)
	}
	if local.MaxFontSizeMultiplier != nil {
		merged.MaxFontSizeMultiplier = Float(*local.MaxFontSizeMultiplier)
	}
	if local.AdjustsFontSizeToFit != nil {
		merged.AdjustsFontSizeToFit = Bool(*local.AdjustsFontSizeToFit)
	}
	if local.MinimumFontScale != nil {
		merged.MinimumFontScale = Float(*local.MinimumFontScale)
	}
	return merged
}

// IsZero reports whether no field is set.
func (d Defaults) IsZero() bool {
	return d.AllowFontScaling == nil && d.MaxFontSizeMultiplier == nil &&
		d.AdjustsFontSizeToFit == nil && d.MinimumFontScale == nil
}

// clone copies the pointed-to values so the result shares no memory with d.
func (d Defaults) clone() Defaults {
	var c Defaults
	if d.AllowFontScaling != nil {
		c.AllowFontScaling = Bool(*d.AllowFontScaling)
	}
	if d.MaxFontSizeMultiplier != nil {
		c.MaxFontSizeMultiplier = Float(*d.MaxFontSizeMultiplier)
	}
	if d.AdjustsFontSizeToFit != nil {
		c.AdjustsFontSizeToFit = Bool(*d.AdjustsFontSizeToFit)
	}
	if d.MinimumFontScale != nil {
		c.MinimumFontScale = Float(*d.MinimumFontScale)
	}
	return c
}
