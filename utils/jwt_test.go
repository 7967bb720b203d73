package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret")

	token, err := tm.Issue(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := tm.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestTokenExpiresAfterValidityWindow(t *testing.T) {
	tm := NewTokenManager("test-secret")

	issuedAt := time.Now()
	tm.now = func() time.Time { return issuedAt }

	token, err := tm.Issue(7)
	require.NoError(t, err)

	// Still valid just inside the window.
	tm.now = func() time.Time { return issuedAt.Add(TokenTTL - time.Minute) }
	userID, err := tm.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), userID)

	// Rejected once the window has passed.
	tm.now = func() time.Time { return issuedAt.Add(TokenTTL + time.Minute) }
	_, err = tm.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	token, err := NewTokenManager("secret-a").Issue(1)
	require.NoError(t, err)

	_, err = NewTokenManager("secret-b").Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenRejectsTamperedSignature(t *testing.T) {
	tm := NewTokenManager("test-secret")

	token, err := tm.Issue(1)
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = tm.Verify(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenRejectsGarbage(t *testing.T) {
	tm := NewTokenManager("test-secret")

	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		_, err := tm.Verify(tok)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}
