package api

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUsername(t *testing.T) {
	tcases := []struct {
		name     string
		ctx      context.Context
		username string
		expected bool
	}{
		{
			name:     "no username",
			ctx:      context.Background(),
			expected: false,
		},
		{
			name:     "username set",
			ctx:      WithUsername(context.Background(), "alice"),
			username: "alice",
			expected: true,
		},
	}

	for _, tc := range tcases {
		t.Run(tc.name, func(t *testing.T) {
			username, ok := Username(tc.ctx)
			assert.Equal(t, tc.expected, ok, "expected Username to return %v", tc.expected)
			assert.Equal(t, tc.username, username, "expected Username to return %q", tc.username)
		})
	}
}

func TestNameTokenRoundTrip(t *testing.T) {
	app := &RoomcastApp{signingKey: []byte("secret")}

	token, err := app.createNameToken("alice", time.Hour)
	assert.NoError(t, err, "expected no error creating name token")

	username, err := app.extractUsernameFromToken(token)
	assert.NoError(t, err, "expected no error extracting username")
	assert.Equal(t, "alice", username)
}

func TestExtractUsernameFromToken(t *testing.T) {
	app := &RoomcastApp{signingKey: []byte("secret")}

	t.Run("garbage token", func(t *testing.T) {
		_, err := app.extractUsernameFromToken("not-a-token")
		assert.Error(t, err, "expected error for a malformed token")
	})

	t.Run("wrong signing key", func(t *testing.T) {
		other := &RoomcastApp{signingKey: []byte("other-secret")}
		token, err := other.createNameToken("alice", time.Hour)
		assert.NoError(t, err)

		_, err = app.extractUsernameFromToken(token)
		assert.Error(t, err, "expected error for a token signed with a different key")
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := app.createNameToken("alice", -time.Hour)
		assert.NoError(t, err)

		_, err = app.extractUsernameFromToken(token)
		assert.Error(t, err, "expected error for an expired token")
	})
}
