package session

import (
	"context"
	"net/http"

	"babashop/internal/cart"
)

const cookieName = "shop_session"

type contextKey struct{}

// Middleware resolves the session cart from the request cookie,
// creating a session when none exists, and puts the store on the
// request context.
func Middleware(m *Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var incoming string
			if c, err := r.Cookie(cookieName); err == nil {
				incoming = c.Value
			}

			id, store := m.GetOrCreate(incoming)
			if id != incoming {
				http.SetCookie(w, &http.Cookie{
					Name:     cookieName,
					Value:    id,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := context.WithValue(r.Context(), contextKey{}, store)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// StoreFromContext returns the session cart placed by Middleware.
func StoreFromContext(ctx context.Context) (*cart.Store, bool) {
	store, ok := ctx.Value(contextKey{}).(*cart.Store)
	return store, ok
}

// WithStore is a test helper for handlers that expect a session cart on
// the context.
func WithStore(ctx context.Context, store *cart.Store) context.Context {
	return context.WithValue(ctx, contextKey{}, store)
}
