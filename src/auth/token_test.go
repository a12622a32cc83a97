package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService_IssueAndVerify(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	token, err := svc.Issue(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := svc.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, 42, userID)
}

func TestTokenService_VerifyTampered(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	token, err := svc.Issue(1)
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"

	_, err = svc.Verify(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_VerifyMalformed(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	for _, input := range []string{"", "not-a-token", "a.b.c", "....."} {
		_, err := svc.Verify(input)
		assert.ErrorIs(t, err, ErrInvalidToken, "input %q", input)
	}
}

func TestTokenService_VerifyExpired(t *testing.T) {
	svc := NewTokenService("test-secret", -time.Minute)

	token, err := svc.Issue(7)
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_VerifyWrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a", time.Hour)
	verifier := NewTokenService("secret-b", time.Hour)

	token, err := issuer.Issue(3)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
