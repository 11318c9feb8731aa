package middlewares

import (
	"context"
	"net/http"
	"strings"

	"github.com/Rakhulsr/go-digistore/app/db/seeders"
	"github.com/Rakhulsr/go-digistore/app/helpers"
	"github.com/Rakhulsr/go-digistore/app/models"
	"github.com/Rakhulsr/go-digistore/app/utils/sessions"
)

// SessionUserMiddleware resolves the request identity into the context.
// A session that carries a user id is authenticated; everything else runs
// as the built-in store owner, since the demo has no real account system.
func SessionUserMiddleware(sessionStore sessions.SessionStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session := &models.Session{User: seeders.BuiltInUser(), Authenticated: false}

			if userID := sessionStore.GetUserID(r); userID != "" {
				if builtIn := seeders.BuiltInUser(); builtIn.ID == userID {
					session = &models.Session{User: builtIn, Authenticated: true}
				}
			}

			ctx := context.WithValue(r.Context(), helpers.ContextKeySession, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func MethodOverrideMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			_ = r.ParseForm()
			override := r.Form.Get("_method")
			if override != "" {
				r.Method = strings.ToUpper(override)
			}
		}
		next.ServeHTTP(w, r)
	})
}
