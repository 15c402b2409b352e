package ts

import (
	"testing"

	assert "github.com/stretchr/testify/require"
)

func TestSerdeName(t *testing.T) {
	assert.Equal(t, "escrowBeet", SerdeName("Escrow"))
	assert.Equal(t, "fooBarBeet", SerdeName("FooBar"))
}

func TestFirstLower(t *testing.T) {
	assert.Equal(t, "escrow", FirstLower("Escrow"))
	assert.Equal(t, "x", FirstLower("X"))
	assert.Equal(t, "", FirstLower(""))
}

func TestFirstUpper(t *testing.T) {
	assert.Equal(t, "Deposit", FirstUpper("deposit"))
	assert.Equal(t, "X", FirstUpper("x"))
	assert.Equal(t, "", FirstUpper(""))
}
