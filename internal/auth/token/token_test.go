package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowpad-app/flowpad-backend/internal/auth/domain"
)

func TestIssueAndValidate(t *testing.T) {
	codec := New("test-secret", 24*time.Hour)

	tok, err := codec.Issue(42)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, err := codec.Validate(tok)
	require.NoError(t, err)
	assert.Equal(t, 42, userID)
}

func TestValidateExpiredToken(t *testing.T) {
	codec := New("test-secret", -time.Minute)

	tok, err := codec.Issue(42)
	require.NoError(t, err)

	_, err = codec.Validate(tok)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}

func TestValidateWrongKey(t *testing.T) {
	tok, err := New("test-secret", time.Hour).Issue(42)
	require.NoError(t, err)

	_, err = New("other-secret", time.Hour).Validate(tok)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestValidateMalformedToken(t *testing.T) {
	codec := New("test-secret", time.Hour)

	for _, tok := range []string{"", "garbage", "a.b.c"} {
		_, err := codec.Validate(tok)
		assert.ErrorIs(t, err, domain.ErrInvalidToken, "token %q", tok)
	}
}

func TestValidateNonNumericSubject(t *testing.T) {
	claims := jwt.RegisteredClaims{
		Subject:   "alice",
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = New("test-secret", time.Hour).Validate(tok)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestValidateRejectsUnsignedToken(t *testing.T) {
	claims := jwt.RegisteredClaims{
		Subject:   "42",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = New("test-secret", time.Hour).Validate(tok)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}
