package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// newTestPasswordService uses bcrypt's minimum cost so each hash takes
// milliseconds instead of ~250ms.
func newTestPasswordService() *PasswordService {
	return NewPasswordServiceWithCost(bcrypt.MinCost)
}

func TestHash_OutputLooksBcrypt(t *testing.T) {
	ps := newTestPasswordService()

	hash, err := ps.Hash("password123")
	require.NoError(t, err)

	// bcrypt hashes always start with $2a$ or $2b$
	assert.True(t, strings.HasPrefix(hash, "$2"), hash)
}

func TestHash_SamePasswordProducesDifferentHashes(t *testing.T) {
	ps := newTestPasswordService()

	hash1, err := ps.Hash("same-password")
	require.NoError(t, err)
	hash2, err := ps.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, hash1, hash2, "salt must be random")
}

func TestHash_Length(t *testing.T) {
	ps := newTestPasswordService()

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"empty", "", true},
		{"exactly 72 bytes", strings.Repeat("a", 72), false},
		{"73 bytes", strings.Repeat("a", 73), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ps.Hash(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestVerify(t *testing.T) {
	ps := newTestPasswordService()

	hash, err := ps.Hash("correct-horse-battery-staple")
	require.NoError(t, err)

	assert.NoError(t, ps.Verify(hash, "correct-horse-battery-staple"))
	assert.ErrorIs(t, ps.Verify(hash, "the-wrong-password"), ErrPasswordMismatch)
	assert.ErrorIs(t, ps.Verify(hash, ""), ErrPasswordMismatch)
}

func TestVerify_GarbageHash(t *testing.T) {
	ps := newTestPasswordService()

	err := ps.Verify("not-a-valid-bcrypt-hash", "password")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrPasswordMismatch)
}

func TestHashVerify_RoundTrip(t *testing.T) {
	ps := newTestPasswordService()

	cases := []struct {
		name     string
		password string
	}{
		{"simple alphanumeric", "hello123"},
		{"special characters", "p@$$w0rd!#%"},
		{"unicode", "пароль-密码"},
		{"whitespace", "  leading and trailing  "},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			hash, err := ps.Hash(tc.password)
			require.NoError(t, err)
			assert.NoError(t, ps.Verify(hash, tc.password))
		})
	}
}
