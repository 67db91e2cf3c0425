package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndComparePassword(t *testing.T) {
	hashed, err := HashPassword("correct horse battery staple", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hashed)

	assert.NoError(t, ComparePassword(hashed, "correct horse battery staple"))
	assert.Error(t, ComparePassword(hashed, "wrong password"))
}

func TestComparePasswordMalformedHash(t *testing.T) {
	assert.Error(t, ComparePassword("not-a-bcrypt-hash", "anything"))
}

func TestHashPasswordDistinctSalts(t *testing.T) {
	first, err := HashPassword("secret", bcrypt.MinCost)
	require.NoError(t, err)
	second, err := HashPassword("secret", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
