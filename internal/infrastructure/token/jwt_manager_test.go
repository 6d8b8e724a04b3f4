package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	t.Parallel()

	m := NewJWTManager("super-secret", time.Hour, "taskhive")

	tok, err := m.Generate("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, err := m.Validate(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestValidateExpiredToken(t *testing.T) {
	t.Parallel()

	m := NewJWTManager("secret", -time.Minute, "taskhive")

	tok, err := m.Generate("u1")
	require.NoError(t, err)

	_, err = m.Validate(tok)
	require.Error(t, err)
}

func TestValidateWrongSecret(t *testing.T) {
	t.Parallel()

	issuer := NewJWTManager("right-secret", time.Hour, "taskhive")
	verifier := NewJWTManager("wrong-secret", time.Hour, "taskhive")

	tok, err := issuer.Generate("u2")
	require.NoError(t, err)

	_, err = verifier.Validate(tok)
	require.Error(t, err)
}

func TestValidateTamperedToken(t *testing.T) {
	t.Parallel()

	m := NewJWTManager("secret", time.Hour, "taskhive")

	tok, err := m.Generate("u3")
	require.NoError(t, err)

	tampered := tok[:len(tok)-2] + "xx"
	_, err = m.Validate(tampered)
	require.Error(t, err)
}

func TestValidateMalformedToken(t *testing.T) {
	t.Parallel()

	m := NewJWTManager("secret", time.Hour, "taskhive")

	_, err := m.Validate("not-a-jwt")
	require.Error(t, err)
}
