package offsetcounts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccumulator(t *testing.T) {
	a := New(10)
	assert.Equal(t, 10, a.Length())
	for i := 0; i < 10; i++ {
		assert.Equal(t, uint64(0), a.At(i))
	}

	a.SetRange(0, 10, 1)
	a.SetRange(2, 4, 3)
	for i := 0; i < 2; i++ {
		assert.Equal(t, uint64(1), a.At(i))
	}
	for i := 2; i < 4; i++ {
		assert.Equal(t, uint64(3), a.At(i))
	}
	for i := 4; i < 10; i++ {
		assert.Equal(t, uint64(1), a.At(i))
	}

	b := New(10)
	b.SetRange(0, 10, 1)
	b.SetRange(4, 8, 5)

	merged := a.Clone()
	for i := 0; i < 10; i++ {
		merged.counts[i] = 0
	}
	for i := 0; i < 10; i++ {
		merged.AddRange(i, i+1, a.At(i))
		merged.AddRange(i, i+1, b.At(i))
	}
	assert.Equal(t, uint64(2), merged.At(0))
	assert.Equal(t, uint64(4), merged.At(2))
	assert.Equal(t, uint64(6), merged.At(4))
	assert.Equal(t, uint64(6), merged.At(6))
	assert.Equal(t, uint64(2), merged.At(9))

	assert.Equal(t, uint64(0), New(-1).At(0))
	assert.Equal(t, 0, New(-1).Length())
}
