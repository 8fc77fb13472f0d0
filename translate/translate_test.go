package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("line 12 'nop'", From("line %d '%v'", 12, "nop"))
	assert.Equal("plain", From("plain"))
}

func TestError(t *testing.T) {
	assert := assert.New(t)

	err := Error("symbol %v", "foo")
	assert.EqualError(err, "symbol foo")
}
