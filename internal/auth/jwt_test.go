package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func TestTokenManager_IssueAndVerify(t *testing.T) {
	m := NewTokenManager("secret", 0)

	token, err := m.Issue("a1")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "a1", claims.Username)
	assert.NotEmpty(t, claims.ID)
	assert.WithinDuration(t, time.Now().Add(DefaultTokenTTL), claims.ExpiresAt.Time, 5*time.Second)
}

func TestTokenManager_Expiry(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)}
	m := NewTokenManager("secret", 10*time.Minute, WithClock(clock.Now))

	token, err := m.Issue("a1")
	require.NoError(t, err)

	clock.t = clock.t.Add(9*time.Minute + 59*time.Second)
	_, err = m.Verify(token)
	assert.NoError(t, err)

	clock.t = clock.t.Add(2 * time.Second)
	_, err = m.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestTokenManager_TamperedSignature(t *testing.T) {
	m := NewTokenManager("secret", 0)
	token, err := m.Issue("a1")
	require.NoError(t, err)

	dot := strings.LastIndex(token, ".")
	head, sig := token[:dot+1], token[dot+1:]

	// the final base64url character carries padding bits, so it is left alone
	for i := 0; i < len(sig)-1; i++ {
		replacement := byte('A')
		if sig[i] == 'A' {
			replacement = 'B'
		}
		tampered := head + sig[:i] + string(replacement) + sig[i+1:]
		_, err := m.Verify(tampered)
		assert.ErrorIs(t, err, ErrInvalidToken, "signature byte %d altered", i)
	}
}

func TestTokenManager_WrongSecret(t *testing.T) {
	token, err := NewTokenManager("secret1", 0).Issue("a1")
	require.NoError(t, err)

	_, err = NewTokenManager("secret2", 0).Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_Malformed(t *testing.T) {
	m := NewTokenManager("secret", 0)
	for _, token := range []string{"", "invalid.token.string", "Bearer abc"} {
		_, err := m.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken, token)
	}
}

func TestTokenManager_RejectsOtherAlgorithms(t *testing.T) {
	claims := &Claims{
		Username: "a1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS384, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = NewTokenManager("secret", 0).Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_RequiresExpiry(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{Username: "a1"}).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = NewTokenManager("secret", 0).Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
