package terminal

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadPassword_FromEnvironment(t *testing.T) {
	var stderr bytes.Buffer
	a := NewAdapter(strings.NewReader(""), &stderr)
	a.getenv = func(key string) string {
		if key == PasswordEnvVar {
			return "s3cret"
		}
		return ""
	}

	password, err := a.ReadPassword(context.Background(), "Password: ")
	require.NoError(t, err)
	assert.Equal(t, "s3cret", password)
	assert.Empty(t, stderr.String())
}

func TestReadPassword_NonInteractive(t *testing.T) {
	var stderr bytes.Buffer
	a := NewAdapter(strings.NewReader("typed"), &stderr)
	a.getenv = func(string) string { return "" }

	assert.False(t, a.IsInteractive())

	_, err := a.ReadPassword(context.Background(), "Password: ")
	assert.ErrorIs(t, err, ErrNonInteractive)
}

func TestReadPassword_CancelledContext(t *testing.T) {
	a := NewAdapter(strings.NewReader(""), &bytes.Buffer{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := a.ReadPassword(ctx, "Password: ")
	assert.ErrorIs(t, err, context.Canceled)
}
