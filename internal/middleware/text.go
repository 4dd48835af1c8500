package middleware

import (
	"net/http"

	"github.com/vango-dev/aether/app/providers/text"
)

// TextDefaults returns a middleware that establishes the text scope for the
// request. A nil d establishes text.Default().
func TextDefaults(d *text.Defaults) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := text.Provide(r.Context(), d)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
