// Package auth guards the admin dashboard: JWT session tokens, bcrypt
// password checks and the GitHub OAuth sign-in.
//
// AUTHENTICATION FLOW OVERVIEW:
// 1. The owner signs in with the admin password (POST /admin/login) or via
//    GitHub (/admin/github/login → GitHub → /admin/github/callback)
// 2. The server issues a JWT whose subject names how they signed in
//    ("password" or "github:<login>") and stores it in an HttpOnly cookie
// 3. On /admin/api/* calls, RequireAdmin reads the cookie, validates the JWT,
//    and puts the subject in the request context
//
// There are no user accounts. The only identity is "the site owner", so the
// token carries no database ID and no lookup happens on each request.
//
// WHY JWT?
// JWT (JSON Web Token) is stateless: the server doesn't need to store session
// data. All the information needed (subject, expiry) is inside the signed token.
// The signature ensures nobody can tamper with it without the secret key.
//
// JWT STRUCTURE (three base64-encoded parts separated by dots):
//
//	HEADER.PAYLOAD.SIGNATURE
//	- Header: algorithm + token type → {"alg":"HS256","typ":"JWT"}
//	- Payload: claims (data) → {"sub":"github:sakif","exp":1234567890}
//	- Signature: HMAC-SHA256(header+"."+payload, secretKey)
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// Issuer is stamped into every token and required on validation, so a
	// token signed for another app with a reused secret is rejected.
	Issuer = "portfolio-admin"

	// SessionTTL is how long an admin session lasts before signing in again.
	SessionTTL = 12 * time.Hour
)

// Sentinel errors so callers can tell an expired session from garbage.
var (
	ErrTokenExpired = errors.New("auth: token expired")
	ErrTokenInvalid = errors.New("auth: invalid token")
)

// TokenService handles JWT creation and validation.
//
// It holds the HMAC secret key used to sign and verify tokens.
// The same secret must be used for both operations.
type TokenService struct {
	secret []byte
	now    func() time.Time
}

// NewTokenService creates a TokenService with the given secret.
// The secret should be at least 32 bytes of random data in production.
// Example: JWT_SECRET=$(openssl rand -hex 32)
func NewTokenService(secret string) (*TokenService, error) {
	if len(secret) < 16 {
		return nil, errors.New("auth: JWT secret must be at least 16 characters")
	}
	return &TokenService{secret: []byte(secret), now: time.Now}, nil
}

// claims is the JWT payload. It embeds jwt.RegisteredClaims which includes
// standard fields like Issuer, Subject, ExpiresAt, IssuedAt.
type claims struct {
	jwt.RegisteredClaims
}

// Generate signs a session token for subject, valid for SessionTTL.
func (s *TokenService) Generate(subject string) (string, error) {
	return s.GenerateWithDuration(subject, SessionTTL)
}

// GenerateWithDuration signs a token with a custom lifetime. A negative
// duration produces an already-expired token, which the tests rely on.
//
// Signing algorithm: HS256 (HMAC-SHA256)
// - Symmetric: same key for signing and verifying
// - Fast and simple: one server holds the only copy of the secret
func (s *TokenService) GenerateWithDuration(subject string, d time.Duration) (string, error) {
	if subject == "" {
		return "", errors.New("auth: token subject must not be empty")
	}
	now := s.now()

	c := claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(d)),
			Issuer:    Issuer,
		},
	}

	// jwt.NewWithClaims creates an unsigned token with the given algorithm.
	// SignedString(key) signs it and returns the complete JWT string.
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("auth: signing token: %w", err)
	}
	return signed, nil
}

// Validate parses and verifies a JWT string and returns its subject.
//
// VALIDATION CHECKS (performed by the jwt library):
//   - Signature is valid (wasn't tampered with)
//   - Token is not expired (ExpiresAt is in the future)
//   - Issuer matches Issuer
//   - Algorithm is HS256
//
// ALGORITHM CONFUSION ATTACK:
// Without checking the algorithm, an attacker could send a token signed with
// "none" and the library might accept it. Passing jwt.WithValidMethods prevents this.
func (s *TokenService) Validate(tokenStr string) (string, error) {
	token, err := jwt.ParseWithClaims(
		tokenStr,
		&claims{},
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("auth: unexpected signing method: %v", token.Header["alg"])
			}
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithIssuer(Issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	c, ok := token.Claims.(*claims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("%w: bad claims", ErrTokenInvalid)
	}
	if c.Subject == "" {
		return "", fmt.Errorf("%w: no subject", ErrTokenInvalid)
	}
	return c.Subject, nil
}
