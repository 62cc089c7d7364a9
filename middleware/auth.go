package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/bhavesh0907/organization-management-service-backend/services"
	"github.com/bhavesh0907/organization-management-service-backend/utils"
)

type contextKey string

const (
	ContextAdminID contextKey = "adminID"
	ContextOrgID   contextKey = "orgID"
)

// Auth parses the Bearer token and stores the authenticated admin and
// organization ids in the request context. Token decode is the only check:
// existence in storage is not re-verified.
func Auth(auth *services.AuthService) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				utils.RespondWithError(w, http.StatusUnauthorized, "Missing or invalid Authorization header")
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			adminID, orgID, err := auth.Authenticate(tokenString)
			if err != nil {
				utils.RespondWithError(w, http.StatusUnauthorized, "Invalid or expired token.")
				return
			}

			ctx := context.WithValue(r.Context(), ContextAdminID, adminID)
			ctx = context.WithValue(ctx, ContextOrgID, orgID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
