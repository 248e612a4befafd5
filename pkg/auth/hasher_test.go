package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptPasswordHasher(t *testing.T) {
	hasher := NewBcryptPasswordHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2", hash)

	assert.NoError(t, hasher.Verify("hunter2", hash))
	assert.Error(t, hasher.Verify("hunter3", hash))
	assert.Error(t, hasher.Verify("hunter2", "not-a-hash"))
}

func TestBcryptPasswordHasherCost(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptPasswordHasher(0).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptPasswordHasher(99).cost)
	assert.Equal(t, 12, NewBcryptPasswordHasher(12).cost)
}
