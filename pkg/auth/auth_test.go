package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	token, err := issuer.Issue("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", -time.Minute)

	token, err := issuer.Issue("user-123")
	require.NoError(t, err)

	_, err = issuer.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, err := NewTokenIssuer("secret-a", time.Hour).Issue("user-123")
	require.NoError(t, err)

	_, err = NewTokenIssuer("secret-b", time.Hour).Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	for _, token := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := issuer.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", token)
	}
}

func TestVerifyRejectsUnsignedAlgorithm(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	// alg=none with a valid-looking claim set must not verify.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "user-123",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = issuer.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsMissingSubject(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	signed := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	token, err := signed.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = issuer.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewTokenIssuerPanicsOnEmptySecret(t *testing.T) {
	assert.Panics(t, func() { NewTokenIssuer("", time.Hour) })
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, VerifyPassword(hash, "correct horse battery staple"))
	assert.False(t, VerifyPassword(hash, "wrong password"))
	assert.False(t, VerifyPassword("not-a-hash", "correct horse battery staple"))
}

func TestPasswordHashesAreSalted(t *testing.T) {
	first, err := HashPassword("samepassword")
	require.NoError(t, err)
	second, err := HashPassword("samepassword")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}
