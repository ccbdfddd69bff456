package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptVerifier(t *testing.T) {
	t.Parallel()

	// MinCost keeps the hashing fast in tests
	verifier := NewBcryptVerifier(bcrypt.MinCost)

	t.Run("hash and compare round trip", func(t *testing.T) {
		t.Parallel()
		hash, err := verifier.Hash("correct horse battery staple")
		require.NoError(t, err)
		require.NotEmpty(t, hash)
		assert.NotEqual(t, "correct horse battery staple", hash)

		require.NoError(t, verifier.Compare(hash, "correct horse battery staple"))
	})

	t.Run("compare rejects wrong password", func(t *testing.T) {
		t.Parallel()
		hash, err := verifier.Hash("correct horse battery staple")
		require.NoError(t, err)

		assert.Error(t, verifier.Compare(hash, "wrong password"))
	})

	t.Run("compare rejects garbage hash", func(t *testing.T) {
		t.Parallel()
		assert.Error(t, verifier.Compare("not-a-bcrypt-hash", "anything"))
	})

	t.Run("same password hashes differently", func(t *testing.T) {
		t.Parallel()
		first, err := verifier.Hash("samepassword123")
		require.NoError(t, err)
		second, err := verifier.Hash("samepassword123")
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})

	t.Run("zero cost falls back to the bcrypt default", func(t *testing.T) {
		t.Parallel()
		v := NewBcryptVerifier(0)
		hash, err := v.Hash("password123")
		require.NoError(t, err)

		cost, err := bcrypt.Cost([]byte(hash))
		require.NoError(t, err)
		assert.Equal(t, bcrypt.DefaultCost, cost)
	})
}
