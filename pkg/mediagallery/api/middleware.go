package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/tendant/simple-gallery/pkg/mediagallery/authz"
)

// UserIDHeader carries the caller identifier checked by the admin gate.
const UserIDHeader = "user-id"

// CORSMiddleware permits browser access from any origin. The Mini App
// frontend is served from a different origin than the API, so preflight
// requests must succeed on every route.
func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, user-id")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireAdmin gates write operations behind the injected authorization
// policy. Listing is not gated; only routes wrapped with this middleware
// require the admin identifier.
func RequireAdmin(authorizer authz.Authorizer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identifier := r.Header.Get(UserIDHeader)
			if err := authorizer.Authorize(r.Context(), identifier); err != nil {
				slog.WarnContext(r.Context(), "rejected unauthorized request",
					"method", r.Method, "path", r.URL.Path)
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, ErrorResponse{Error: "permission denied"})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
