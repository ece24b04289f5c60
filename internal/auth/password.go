package auth

// WHY BCRYPT?
// bcrypt is a password hashing function specifically designed to be slow.
// That slowness is a security feature: it makes brute-force attacks expensive.
//
// bcrypt automatically:
//   - Generates a random salt and embeds it in the output hash
//   - Controls the work factor via "cost" (higher = slower = harder to crack)
//
// The admin password is never stored in plain text. `portfolio hash-password`
// prints a hash, and the owner puts that hash in ADMIN_PASSWORD_HASH.
//
// Hash format (the full output of bcrypt.GenerateFromPassword):
//
//	$2a$12$<22-char salt><31-char hash>
//	 ^   ^
//	 |   cost (12 rounds → 2^12 = 4096 iterations)
//	 version

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// defaultCost is the bcrypt work factor. Cost 12 takes roughly 250ms on a
// modern server: negligible for one login, brutal for an attacker.
const defaultCost = 12

// MaxPasswordBytes is bcrypt's input limit.
const MaxPasswordBytes = 72

// ErrPasswordMismatch is returned by Verify when the password is wrong.
var ErrPasswordMismatch = errors.New("auth: invalid password")

// PasswordService provides bcrypt hashing and verification.
//
// It's a struct (not free functions) so that the cost can be injected
// in tests: cost 4 makes tests run in milliseconds.
type PasswordService struct {
	cost int
}

// NewPasswordService creates a PasswordService with the default cost (12).
func NewPasswordService() *PasswordService {
	return &PasswordService{cost: defaultCost}
}

// NewPasswordServiceWithCost creates a PasswordService with a custom cost.
// Tests pass bcrypt.MinCost. Do NOT use a low cost in production.
func NewPasswordServiceWithCost(cost int) *PasswordService {
	return &PasswordService{cost: cost}
}

// Hash hashes the given plaintext password with bcrypt.
//
// Returns an error if the plaintext is empty or longer than 72 bytes.
// bcrypt would silently truncate the latter; we reject it instead.
func (p *PasswordService) Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", errors.New("auth: password must not be empty")
	}
	if len(plaintext) > MaxPasswordBytes {
		return "", fmt.Errorf("auth: password must be %d bytes or fewer", MaxPasswordBytes)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), p.cost)
	if err != nil {
		return "", fmt.Errorf("auth: hashing password: %w", err)
	}
	return string(hashed), nil
}

// Verify checks whether a plaintext password matches a stored bcrypt hash.
// It returns ErrPasswordMismatch for a wrong password and a wrapped error
// for a malformed hash.
//
// TIMING SAFETY:
// bcrypt.CompareHashAndPassword compares in constant time, so response time
// leaks nothing about how close a guess was.
func (p *PasswordService) Verify(hash, plaintext string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrPasswordMismatch
		}
		return fmt.Errorf("auth: comparing password hash: %w", err)
	}
	return nil
}
