package auth

import (
	"context"
	"net/http"
	"strings"
)

const (
	// CookieName is the HttpOnly cookie carrying the admin session token.
	CookieName = "admin_token"

	// SubjectPassword is the token subject after a password sign-in.
	SubjectPassword = "password"

	githubSubjectPrefix = "github:"
)

// GitHubSubject is the token subject after a GitHub sign-in as login.
func GitHubSubject(login string) string {
	return githubSubjectPrefix + strings.ToLower(login)
}

// contextKey is an unexported type used for context keys in this package.
//
// WHY A CUSTOM TYPE FOR CONTEXT KEYS?
// context.WithValue uses any as the key type. With a plain string key, any
// package that knows the string could read or shadow the value. Only this
// package can create a contextKey, so only this package can set the admin.
type contextKey string

const adminKey contextKey = "admin"

// RequireAdmin is a middleware that guards the admin API.
//
// It reads the JWT from the admin_token cookie (or an "Authorization: Bearer"
// header, for curl), validates it, and stores the subject in the request
// context. A missing or invalid token gets 401 and the chain stops.
//
// MIDDLEWARE PATTERN IN GO:
// A middleware takes an http.Handler and returns a new one that wraps it:
//
//	func Middleware(next http.Handler) http.Handler {
//	    return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
//	        // ... before ...
//	        next.ServeHTTP(w, r)
//	        // ... after ...
//	    })
//	}
func RequireAdmin(tokens *TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			subject, err := tokens.Validate(tokenFromRequest(r))
			if err != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"error":"unauthorized","message":"admin sign-in required"}`))
				return
			}

			ctx := context.WithValue(r.Context(), adminKey, subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminFromContext returns the subject RequireAdmin stored, if any.
func AdminFromContext(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(adminKey).(string)
	return subject, ok && subject != ""
}

// tokenFromRequest prefers the cookie and falls back to a bearer header.
//
// COOKIE FLOW:
// 1. Set-Cookie: admin_token=<jwt>; HttpOnly; SameSite=Lax (set on login)
// 2. The browser sends it back on every /admin request
// 3. JavaScript can never read it, so an XSS bug cannot steal the session
func tokenFromRequest(r *http.Request) string {
	if cookie, err := r.Cookie(CookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	return ""
}
