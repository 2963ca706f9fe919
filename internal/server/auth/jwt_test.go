package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/notevault/internal/common"
)

func TestIssueAndVerify_Success(t *testing.T) {
	t.Parallel()

	s := NewTokenService([]byte("super-secret"), time.Hour)

	tok, err := s.Issue("user-123", "alice1")
	require.NoError(t, err)

	claims, err := s.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.Subject)
	assert.Equal(t, "alice1", claims.Username)
}

func TestIssue_EmptyUsernameOmitted(t *testing.T) {
	t.Parallel()

	s := NewTokenService([]byte("super-secret"), time.Hour)

	tok, err := s.Issue("user-123", "")
	require.NoError(t, err)

	claims, err := s.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.Subject)
	assert.Empty(t, claims.Username)
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	s := NewTokenService([]byte("secret"), -1*time.Second)

	tok, err := s.Issue("u1", "")
	require.NoError(t, err)

	_, err = s.Verify(tok)
	assert.ErrorIs(t, err, common.ErrorTokenExpired)
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer := NewTokenService([]byte("right-secret"), time.Hour)
	verifier := NewTokenService([]byte("wrong-secret"), time.Hour)

	tok, err := issuer.Issue("u2", "")
	require.NoError(t, err)

	_, err = verifier.Verify(tok)
	assert.ErrorIs(t, err, common.ErrorTokenSignatureInvalid)
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	s := NewTokenService([]byte("k"), time.Hour)

	_, err := s.Verify("not.a.jwt")
	assert.ErrorIs(t, err, common.ErrorTokenMalformed)

	_, err = s.Verify("")
	assert.ErrorIs(t, err, common.ErrorTokenMalformed)
}

func TestVerify_RejectsNoneAlgorithm(t *testing.T) {
	t.Parallel()

	s := NewTokenService([]byte("k"), time.Hour)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "u3",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	tok, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = s.Verify(tok)
	require.Error(t, err, "well-formed unsigned token must not verify")
}
