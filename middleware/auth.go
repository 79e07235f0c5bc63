package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"nagarseva/models"
	"nagarseva/utils"
)

// principalKey is the typed context key carrying the authenticated principal.
// Typed so no other package can collide with it.
type principalKey struct{}

// AuthMiddleware verifies session tokens and attaches the principal to the
// request context. Verification fails closed: missing, malformed or expired
// tokens are rejected before any handler runs.
type AuthMiddleware struct {
	jwtSecret []byte
}

// NewAuthMiddleware creates a new auth middleware.
func NewAuthMiddleware(jwtSecret string) *AuthMiddleware {
	return &AuthMiddleware{jwtSecret: []byte(jwtSecret)}
}

// RequireAuth validates the bearer token and sets the principal in context.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			respondWithError(w, http.StatusUnauthorized, "Unauthorized", "Authorization header required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			respondWithError(w, http.StatusUnauthorized, "Unauthorized", "Invalid authorization format. Expected: Bearer <token>")
			return
		}

		principal, err := utils.VerifyToken(parts[1], m.jwtSecret)
		if err != nil {
			respondWithError(w, http.StatusUnauthorized, "Unauthorized", "Invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), principalKey{}, principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRoles wraps RequireAuth and additionally allows only the listed
// roles through. Authenticated principals with a different role get 403.
func (m *AuthMiddleware) RequireRoles(roles ...models.Role) func(http.Handler) http.Handler {
	allowed := make(map[models.Role]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return m.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := PrincipalFromContext(r)
			if !ok {
				respondWithError(w, http.StatusUnauthorized, "Unauthorized", "Authentication required")
				return
			}
			if _, ok := allowed[principal.Role]; !ok {
				respondWithError(w, http.StatusForbidden, "Forbidden", "Insufficient role for this operation")
				return
			}
			next.ServeHTTP(w, r)
		}))
	}
}

// PrincipalFromContext returns the authenticated principal set by RequireAuth.
func PrincipalFromContext(r *http.Request) (models.Principal, bool) {
	principal, ok := r.Context().Value(principalKey{}).(models.Principal)
	return principal, ok
}

func respondWithError(w http.ResponseWriter, statusCode int, errorType, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(models.ErrorResponse{
		Error:   errorType,
		Message: message,
		Code:    statusCode,
	})
}
