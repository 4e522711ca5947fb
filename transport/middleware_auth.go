package transport

import (
	"context"
	"net/http"
	"strings"

	"bookshare/application/user"
	"bookshare/constant"
	"bookshare/utils/errors"
	"github.com/gorilla/mux"
)

// AuthMiddleware returns a middleware that validates bearer tokens using
// UserApp. Public endpoints pass through untouched.
func AuthMiddleware(userApp user.UserApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicRoute(r) {
				next.ServeHTTP(w, r)
				return
			}

			auth := r.Header.Get("Authorization")
			if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			token := strings.TrimPrefix(auth, "Bearer ")

			userID, err := userApp.ValidateToken(r.Context(), token)
			if err != nil {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			// Embed userID into context
			ctx := context.WithValue(r.Context(), constant.UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// isPublicRoute defines which endpoints require no token. Browsing and
// searching books is public, everything else under /books is not.
func isPublicRoute(r *http.Request) bool {
	path := r.URL.Path
	if strings.HasPrefix(path, "/swagger/") {
		return true
	}
	if path == "/login" || path == "/register" {
		return true
	}
	if r.Method == http.MethodGet && (path == "/books" || path == "/books/search") {
		return true
	}

	return false
}
