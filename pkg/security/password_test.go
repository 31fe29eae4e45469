package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestCompareLegacyPlaintext(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	assert.True(t, h.Compare("admin", "admin"))
	assert.False(t, h.Compare("admin", "Admin"))
	assert.False(t, h.Compare("admin", ""))
}

func TestCompareHashed(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("s3cret")
	require.NoError(t, err)
	assert.True(t, h.Compare(hash, "s3cret"))
	assert.False(t, h.Compare(hash, "other"))
}
