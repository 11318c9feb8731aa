package middlewares

import (
	"log"
	"net/http"

	"github.com/Rakhulsr/go-digistore/app/helpers"
	"github.com/Rakhulsr/go-digistore/app/models"
	"github.com/unrolled/render"
)

// AdminAuthMiddleware gates the admin panel on the owner role. This is a
// role check over the resolved session identity, not real authentication.
func AdminAuthMiddleware(render *render.Render) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session := helpers.GetSession(r)
			if session == nil || session.User == nil {
				log.Println("AdminAuthMiddleware: no session identity resolved.")
				_ = render.JSON(w, http.StatusForbidden, map[string]interface{}{
					"status":  "error",
					"message": "You do not have permission to access this page.",
				})
				return
			}

			if session.User.Role != models.RoleOwner {
				log.Printf("AdminAuthMiddleware: user %s attempted to access admin panel without owner role.", session.User.ID)
				_ = render.JSON(w, http.StatusForbidden, map[string]interface{}{
					"status":  "error",
					"message": "You do not have permission to access this page.",
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
