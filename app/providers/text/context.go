package text

import "context"

type contextKey struct{}

// scope is stored behind contextKey. Its presence is what marks a context as
// established, independent of which fields the value sets.
type scope struct {
	defaults Defaults
}

// WithDefaults returns a context in which d is the established text scope.
// d is copied, later changes to the caller's pointers do not leak in.
func WithDefaults(ctx context.Context, d Defaults) context.Context {
	return context.WithValue(ctx, contextKey{}, &scope{defaults: d.clone()})
}

// Provide establishes *d, or Default() when d is nil.
func Provide(ctx context.Context, d *Defaults) context.Context {
	if d == nil {
		return WithDefaults(ctx, Default())
	}
	return WithDefaults(ctx, *d)
}

// FromContext returns the nearest established scope. It fails with a
// *ConfigurationError when no scope was established above ctx.
func FromContext(ctx context.Context) (Defaults, error) {
	s, ok := ctx.Value(contextKey{}).(*scope)
	if !ok {
		return Defaults{}, &ConfigurationError{}
	}
	return s.defaults.clone(), nil
}

// Established reports whether a scope exists above ctx.
func Established(ctx context.Context) bool {
	_, ok := ctx.Value(contextKey{}).(*scope)
	return ok
}

// Resolve reads the scope for consumer and merges its local overrides on top.
func Resolve(ctx context.Context, consumer string, local Defaults) (Defaults, error) {
	d, err := FromContext(ctx)
	if err != nil {
		return Defaults{}, &ConfigurationError{Consumer: consumer}
	}
	return d.Merge(local), nil
}
