package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHasher_HashAndCompare(t *testing.T) {
	h, err := NewHasher(bcrypt.MinCost)
	require.NoError(t, err)

	hash, err := h.Hash("password")
	require.NoError(t, err)
	assert.NotEqual(t, "password", hash)

	assert.NoError(t, h.Compare(hash, "password"))
	assert.ErrorIs(t, h.Compare(hash, "wrongpassword"), ErrMismatch)
}

func TestHasher_SaltedHashesDiffer(t *testing.T) {
	h, err := NewHasher(bcrypt.MinCost)
	require.NoError(t, err)

	first, err := h.Hash("password")
	require.NoError(t, err)
	second, err := h.Hash("password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestHasher_CompareMalformedHash(t *testing.T) {
	h, err := NewHasher(bcrypt.MinCost)
	require.NoError(t, err)

	err = h.Compare("not-a-hash", "password")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMismatch)
}

func TestNewHasher_InvalidCost(t *testing.T) {
	_, err := NewHasher(bcrypt.MaxCost + 1)
	assert.ErrorIs(t, err, ErrInvalidCost)

	_, err = NewHasher(1)
	assert.ErrorIs(t, err, ErrInvalidCost)
}

func TestHasher_PasswordTooLong(t *testing.T) {
	h, err := NewHasher(bcrypt.MinCost)
	require.NoError(t, err)

	_, err = h.Hash(strings.Repeat("p", MaxLength+1))
	assert.ErrorIs(t, err, ErrTooLong)

	hash, err := h.Hash(strings.Repeat("p", MaxLength))
	require.NoError(t, err)
	assert.ErrorIs(t, h.Compare(hash, strings.Repeat("p", MaxLength+8)), ErrMismatch)
}
