package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/mhollis/gardenshare/internal/domain"
	"github.com/mhollis/gardenshare/internal/service"
)

type contextKey string

const (
	userContextKey      contextKey = "user"
	requestIDContextKey contextKey = "request_id"
)

// UserFromContext extracts the authenticated user from the request context.
// Returns nil if no user is authenticated.
func UserFromContext(ctx context.Context) *domain.User {
	user, _ := ctx.Value(userContextKey).(*domain.User)
	return user
}

// RequestIDFromContext returns the request id assigned by RequestID, or "".
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDContextKey).(string)
	return id
}

// RequireAuth is middleware that protects routes requiring a signed-in
// gardener. It reads the auth_token cookie, validates the session token,
// resolves the user, and injects it into the request context. Returns 401
// for unauthenticated requests.
func RequireAuth(identity *service.IdentityService, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := authenticateRequest(r, identity)
		if user == nil {
			writeError(w, http.StatusUnauthorized, "Not signed in.")
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func authenticateRequest(r *http.Request, identity *service.IdentityService) *domain.User {
	cookie, err := r.Cookie("auth_token")
	if err != nil {
		return nil
	}

	userID, err := identity.ValidateToken(cookie.Value)
	if err != nil {
		return nil
	}

	// A valid token whose user no longer resolves counts as signed out.
	return identity.GetUserByID(r.Context(), userID)
}

// RequestID tags every request with a unique id, exposed both on the
// response and in the request context for log correlation.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.New().String()
		w.Header().Set("X-Request-ID", id)
		ctx := context.WithValue(r.Context(), requestIDContextKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SecurityHeaders sets baseline security headers on every response.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "same-origin")
		next.ServeHTTP(w, r)
	})
}
