package password_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carolinafmacedo/workflowmanagement/internal/platform/password"
)

func TestHashAndVerify(t *testing.T) {
	t.Parallel()

	h := password.NewHasher("pepper")
	encoded, err := h.Hash("correct horse")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(encoded, "$argon2id$v=19$"))

	require.NoError(t, h.Verify("correct horse", encoded))
	require.ErrorIs(t, h.Verify("wrong horse", encoded), password.ErrMismatch)
}

func TestHash_SaltsDiffer(t *testing.T) {
	t.Parallel()

	h := password.NewHasher("")
	a, err := h.Hash("same")
	require.NoError(t, err)
	b, err := h.Hash("same")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestVerify_PepperMatters(t *testing.T) {
	t.Parallel()

	encoded, err := password.NewHasher("one").Hash("secret-pass")
	require.NoError(t, err)

	err = password.NewHasher("two").Verify("secret-pass", encoded)
	require.ErrorIs(t, err, password.ErrMismatch)
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	h := password.NewHasher("")
	tests := []string{
		"",
		"plain-text",
		"$bcrypt$v=19$m=1,t=1,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=18$m=1,t=1,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=19$garbage$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=1,t=1,p=1$!!!$aGFzaA",
	}
	for _, encoded := range tests {
		require.ErrorIs(t, h.Verify("x", encoded), password.ErrMalformedHash, encoded)
	}
}
