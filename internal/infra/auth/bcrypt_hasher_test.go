package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"expensetracker/config"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasherWithCost(4) // low cost for fast tests

	password := "correct horse battery staple"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("wrong password", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check(password, "invalid_hash"))
}

func TestBcryptHasher_SaltedHashesDiffer(t *testing.T) {
	hasher := NewBcryptHasherWithCost(4)

	first, err := hasher.Hash("same password")
	assert.NoError(t, err)
	second, err := hasher.Hash("same password")
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("same password", first))
	assert.True(t, hasher.Check("same password", second))
}

func TestNewBcryptHasher_CostFromConfig(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 4}}
	hasher := NewBcryptHasher(cfg)

	hash, err := hasher.Hash("some password")
	assert.NoError(t, err)
	assert.True(t, hasher.Check("some password", hash))

	// Out-of-range cost falls back to the bcrypt default.
	cfg = &config.Config{Auth: &config.AuthConfig{BcryptCost: 99}}
	assert.NotNil(t, NewBcryptHasher(cfg))
	assert.NotNil(t, NewBcryptHasher(nil))
}
