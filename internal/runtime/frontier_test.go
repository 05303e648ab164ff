package runtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrontier_FIFO(t *testing.T) {
	f := &frontier{}
	assert.True(t, f.empty())

	for i := 1; i <= 200; i++ {
		f.push(i)
	}
	for i := 1; i <= 150; i++ {
		assert.Equal(t, i, f.pop())
	}
	f.push(201)
	assert.Equal(t, 51, f.len())

	rest := f.drain()
	assert.Len(t, rest, 51)
	assert.Equal(t, 151, rest[0])
	assert.Equal(t, 201, rest[50])
	assert.True(t, f.empty())
}
