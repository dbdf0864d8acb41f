// Package client assigns every browser an anonymous identity cookie.
// Cart and wishlist state is keyed by it; there is no login.
package client

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
)

const (
	cookieName = "vv_client"
	cookieTTL  = 365 * 24 * time.Hour
)

type ctxKey string

const idKey ctxKey = "client_id"

func IDFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(idKey).(string)
	return v, ok
}

// Identify resolves the client id from the identity cookie, minting and
// setting a fresh one when the request carries none.
func Identify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := ""
		if c, err := r.Cookie(cookieName); err == nil && c.Value != "" {
			id = c.Value
		}

		if id == "" {
			id = "c_" + uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     cookieName,
				Value:    id,
				Path:     "/",
				Expires:  time.Now().Add(cookieTTL),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := context.WithValue(r.Context(), idKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
