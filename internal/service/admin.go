package service

// AdminService is the business logic for signing in to the dashboard. It
// sits between the HTTP handlers and the auth utilities:
//
//	AdminHandler (HTTP) → AdminService (rules) → PasswordService (bcrypt)
//	                                           ↘ TokenService (JWT)
//
// There is one admin, the site owner. They prove it either with the password
// whose bcrypt hash is configured, or by signing in to GitHub as one of the
// allow-listed logins. Either way they get the same session token.

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/sakif/portfolio/internal/apperror"
	"github.com/sakif/portfolio/internal/auth"
)

// AdminService handles admin authentication.
type AdminService struct {
	tokens       *auth.TokenService
	passwords    *auth.PasswordService
	passwordHash string
	githubLogins []string
	logger       *slog.Logger
}

// AdminOptions configures the accepted credentials. Leaving PasswordHash
// empty disables password sign-in; an empty GitHubLogins list rejects every
// GitHub account.
type AdminOptions struct {
	PasswordHash string
	GitHubLogins []string
}

// NewAdminService creates an AdminService.
func NewAdminService(tokens *auth.TokenService, passwords *auth.PasswordService, opts AdminOptions, logger *slog.Logger) *AdminService {
	logins := make([]string, 0, len(opts.GitHubLogins))
	for _, l := range opts.GitHubLogins {
		if l = strings.ToLower(strings.TrimSpace(l)); l != "" {
			logins = append(logins, l)
		}
	}
	return &AdminService{
		tokens:       tokens,
		passwords:    passwords,
		passwordHash: opts.PasswordHash,
		githubLogins: logins,
		logger:       logger,
	}
}

// PasswordEnabled reports whether password sign-in is configured.
func (s *AdminService) PasswordEnabled() bool {
	return s.passwordHash != ""
}

// LoginWithPassword checks password and returns a session token.
//
// A wrong password is apperror.Unauthorized; the handler maps it to 401.
// Every failure reads the same to the caller, whether the password was wrong
// or password sign-in is switched off.
func (s *AdminService) LoginWithPassword(password string) (string, error) {
	if password == "" {
		return "", apperror.ValidationFailed("password", "password is required")
	}
	if !s.PasswordEnabled() {
		return "", apperror.Unauthorized("invalid credentials")
	}

	if err := s.passwords.Verify(s.passwordHash, password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			s.logger.Warn("admin password rejected")
			return "", apperror.Unauthorized("invalid credentials")
		}
		return "", fmt.Errorf("service/admin: verifying password: %w", err)
	}

	token, err := s.tokens.Generate(auth.SubjectPassword)
	if err != nil {
		return "", fmt.Errorf("service/admin: issuing token: %w", err)
	}
	s.logger.Info("admin signed in", slog.String("method", "password"))
	return token, nil
}

// AuthorizeGitHub returns a session token if ghUser is on the allow-list
// and apperror.Forbidden otherwise. The comparison ignores case, as GitHub
// logins do.
func (s *AdminService) AuthorizeGitHub(ghUser *auth.GitHubUser) (string, error) {
	if ghUser == nil || ghUser.Login == "" {
		return "", fmt.Errorf("service/admin: GitHub user must not be empty")
	}

	login := strings.ToLower(ghUser.Login)
	if !slices.Contains(s.githubLogins, login) {
		s.logger.Warn("GitHub login not on admin allow-list", slog.String("login", ghUser.Login))
		return "", apperror.Forbidden("this GitHub account is not an admin")
	}

	token, err := s.tokens.Generate(auth.GitHubSubject(login))
	if err != nil {
		return "", fmt.Errorf("service/admin: issuing token: %w", err)
	}
	s.logger.Info("admin signed in",
		slog.String("method", "github"),
		slog.String("login", login),
	)
	return token, nil
}

// ValidateToken returns the subject of a session token. It is a thin
// delegation so handlers only import the service package.
func (s *AdminService) ValidateToken(token string) (string, error) {
	subject, err := s.tokens.Validate(token)
	if err != nil {
		return "", fmt.Errorf("service/admin: %w", err)
	}
	return subject, nil
}
