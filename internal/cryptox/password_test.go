package cryptox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify_Success(t *testing.T) {
	t.Parallel()

	encoded, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	require.Contains(t, encoded, "$")

	ok, err := VerifyPassword("correct horse battery staple", encoded)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerifyPassword_WrongPassword(t *testing.T) {
	t.Parallel()

	encoded, err := HashPassword("password1")
	require.NoError(t, err)

	ok, err := VerifyPassword("password2", encoded)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashPassword_SaltsDiffer(t *testing.T) {
	t.Parallel()

	first, err := HashPassword("same")
	require.NoError(t, err)
	second, err := HashPassword("same")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestVerifyPassword_Malformed(t *testing.T) {
	t.Parallel()

	cases := []string{
		"",
		"no-separator",
		"!!!$" + strings.Repeat("A", 43),
		strings.Repeat("A", 22) + "$!!!",
	}
	for _, encoded := range cases {
		_, err := VerifyPassword("x", encoded)
		assert.ErrorIs(t, err, ErrMalformedHash, "encoded = %q", encoded)
	}
}
