package hasher

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestNew_Cost(t *testing.T) {
	tests := []struct {
		name string
		cost int
		want int
	}{
		{"min cost", bcrypt.MinCost, bcrypt.MinCost},
		{"custom cost", 12, 12},
		{"zero falls back", 0, bcrypt.DefaultCost},
		{"too high falls back", bcrypt.MaxCost + 1, bcrypt.DefaultCost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, New(tt.cost).Cost)
		})
	}
}

func TestBcrypt_HashAndCompare(t *testing.T) {
	h := New(bcrypt.MinCost)

	hash, err := h.Hash("Abcdef1!")
	require.NoError(t, err)
	assert.NotEqual(t, "Abcdef1!", hash)
	assert.True(t, strings.HasPrefix(hash, "$2a$"))

	assert.NoError(t, h.Compare(hash, "Abcdef1!"))
	assert.ErrorIs(t, h.Compare(hash, "abcdef1!"), bcrypt.ErrMismatchedHashAndPassword)
}

func TestBcrypt_HashIsSalted(t *testing.T) {
	h := New(bcrypt.MinCost)

	first, err := h.Hash("Abcdef1!")
	require.NoError(t, err)
	second, err := h.Hash("Abcdef1!")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcrypt_HashTooLong(t *testing.T) {
	h := New(bcrypt.MinCost)

	_, err := h.Hash(strings.Repeat("A", 73))
	assert.ErrorIs(t, err, bcrypt.ErrPasswordTooLong)
}
