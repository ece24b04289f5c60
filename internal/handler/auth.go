package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/sakif/portfolio/internal/apperror"
	"github.com/sakif/portfolio/internal/auth"
	"github.com/sakif/portfolio/internal/service"
)

const (
	stateCookie = "oauth_state"

	// maxLoginBody caps POST /admin/login. A password is at most 72 bytes.
	maxLoginBody = 4 << 10
)

// AuthHandler manages admin sign-in and session cookies.
//
// HANDLER RESPONSIBILITIES:
//   - HandleLogin          → check the admin password, set the session cookie
//   - HandleGitHubLogin    → redirect the browser to GitHub's authorization page
//   - HandleGitHubCallback → receive the code, check the allow-list, set the cookie
//   - HandleLogout         → clear the session cookie
//   - HandleMe             → report who the current session belongs to
//
// github is nil when GitHub sign-in is not configured; its routes are not
// registered in that case.
type AuthHandler struct {
	admin  *service.AdminService
	github *auth.GitHubProvider
	secure bool
	logger *slog.Logger
}

// NewAuthHandler creates an AuthHandler. secure marks cookies Secure and
// should be true whenever the site is served over HTTPS.
func NewAuthHandler(admin *service.AdminService, github *auth.GitHubProvider, secure bool, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		admin:  admin,
		github: github,
		secure: secure,
		logger: logger,
	}
}

type loginRequest struct {
	Password string `json:"password"`
}

// HandleLogin signs in with the admin password.
//
// HTTP: POST /admin/login  {"password": "..."}
//
// http.MaxBytesReader stops a client from streaming an endless body at us;
// the decoder fails once the cap is hit.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxLoginBody)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperror.ValidationFailed("body", "request body must be JSON with a password"))
		return
	}

	token, err := h.admin.LoginWithPassword(req.Password)
	if err != nil {
		if !errors.Is(err, apperror.ErrUnauthorized) && !errors.Is(err, apperror.ErrValidation) {
			h.logger.Error("admin login failed", slog.String("error", err.Error()))
		}
		writeError(w, err)
		return
	}

	h.setSession(w, token)
	writeJSON(w, http.StatusOK, map[string]string{"message": "signed in"})
}

// HandleGitHubLogin redirects the owner to GitHub's authorization page.
//
// HTTP: GET /admin/github/login
//
// CSRF PROTECTION VIA STATE:
// We generate a random state string and store it in a short-lived cookie.
// When GitHub calls back, HandleGitHubCallback verifies the state matches.
// This proves the callback was initiated by this browser, not a CSRF attacker.
func (h *AuthHandler) HandleGitHubLogin(w http.ResponseWriter, r *http.Request) {
	state := auth.NewState()

	http.SetCookie(w, &http.Cookie{
		Name:     stateCookie,
		Value:    state,
		Path:     "/admin",
		MaxAge:   600, // 10 minutes
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, h.github.AuthURL(state), http.StatusTemporaryRedirect)
}

// HandleGitHubCallback completes the GitHub sign-in.
//
// HTTP: GET /admin/github/callback?code=xxx&state=yyy
//
// FLOW:
//  1. Validate the state parameter (CSRF check)
//  2. Exchange the code for the GitHub user
//  3. Check the login against the allow-list (403 if absent)
//  4. Set the session cookie and redirect to the dashboard API
func (h *AuthHandler) HandleGitHubCallback(w http.ResponseWriter, r *http.Request) {
	// --- Step 1: Validate CSRF state ---
	cookie, err := r.Cookie(stateCookie)
	if err != nil || cookie.Value == "" || r.URL.Query().Get("state") != cookie.Value {
		h.logger.Warn("github callback: state mismatch")
		writeError(w, apperror.ValidationFailed("state", "invalid OAuth state"))
		return
	}

	// The state is single-use.
	http.SetCookie(w, &http.Cookie{
		Name:   stateCookie,
		Value:  "",
		Path:   "/admin",
		MaxAge: -1,
	})

	// GitHub sends ?error=access_denied when the owner clicks "Cancel".
	if errParam := r.URL.Query().Get("error"); errParam != "" {
		h.logger.Info("github callback: authorization denied", slog.String("error", errParam))
		writeError(w, apperror.Unauthorized("GitHub authorization was denied"))
		return
	}

	// --- Step 2: Exchange code for the GitHub user ---
	code := r.URL.Query().Get("code")
	if code == "" {
		writeError(w, apperror.ValidationFailed("code", "missing OAuth code"))
		return
	}

	ghUser, err := h.github.Exchange(r.Context(), code)
	if err != nil {
		h.logger.Error("github callback: exchange failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusBadGateway, ErrorResponse{
			Error:   "upstream_error",
			Message: "GitHub sign-in failed",
		})
		return
	}

	// --- Step 3: Allow-list ---
	token, err := h.admin.AuthorizeGitHub(ghUser)
	if err != nil {
		writeError(w, err)
		return
	}

	// --- Step 4: Session cookie ---
	h.setSession(w, token)
	http.Redirect(w, r, "/admin/api/stats", http.StatusSeeOther)
}

// HandleLogout clears the session cookie.
//
// HTTP: POST /admin/logout
//
// WHY POST AND NOT GET?
// Logout changes state. A GET could be triggered by an <img> tag on another
// site or by the browser prefetching the link.
//
// Since sessions are stateless JWTs, "logout" means deleting the cookie.
// The token itself stays valid until it expires.
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    "",
		Path:     "/admin",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, map[string]string{"message": "signed out"})
}

// HandleMe returns the subject of the current session.
//
// HTTP: GET /admin/api/me
// Auth: Required (RequireAdmin sets the subject in context)
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	subject, ok := auth.AdminFromContext(r.Context())
	if !ok {
		writeError(w, apperror.Unauthorized("admin sign-in required"))
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"subject": subject})
}

// setSession stores token in the HttpOnly session cookie.
// HttpOnly = JavaScript cannot read it (XSS protection).
// SameSite=Lax = sent on top-level navigations but not cross-site POSTs.
func (h *AuthHandler) setSession(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    token,
		Path:     "/admin",
		MaxAge:   int(auth.SessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
