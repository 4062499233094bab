package utils

import (
	"testing"

	"gotest.tools/assert"
)

func TestRand_Reproducible(t *testing.T) {
	a := NewRand(42)
	b := NewRand(42)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.String(8), b.String(8))
		assert.Equal(t, a.Between(-1, 5), b.Between(-1, 5))
	}
}

func TestRand_Between(t *testing.T) {
	r := NewRand(7)
	for i := 0; i < 200; i++ {
		n := r.Between(-1, 3)
		assert.Assert(t, n >= -1 && n <= 3, n)
	}
	assert.Equal(t, len([]rune(r.String(5))), 5)
}
