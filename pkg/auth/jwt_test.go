package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	mgr, err := NewTokenManager("test-secret", time.Hour)
	require.NoError(t, err)

	token, err := mgr.Generate("alice", "alice@example.com")
	require.NoError(t, err)

	claims, err := mgr.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "alice", claims.Subject)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issuer, err := NewTokenManager("secret-a", time.Hour)
	require.NoError(t, err)
	verifier, err := NewTokenManager("secret-b", time.Hour)
	require.NoError(t, err)

	token, err := issuer.Generate("alice", "alice@example.com")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.Error(t, err)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	mgr, err := NewTokenManager("test-secret", -time.Minute)
	require.NoError(t, err)

	token, err := mgr.Generate("alice", "alice@example.com")
	require.NoError(t, err)

	_, err = mgr.Verify(token)
	assert.Error(t, err)
}

func TestNewTokenManagerRequiresSecret(t *testing.T) {
	_, err := NewTokenManager("", time.Hour)
	assert.Error(t, err)
}

func TestExtractToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"bearer", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"lowercase scheme", "bearer abc", "abc", false},
		{"empty", "", "", true},
		{"no scheme", "abc.def.ghi", "", true},
		{"wrong scheme", "Basic abc", "", true},
		{"scheme only", "Bearer ", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractToken(tt.header)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
