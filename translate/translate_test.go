package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("line 3 'NOP' bad", From("line %d '%v' %v", 3, "NOP", "bad"))

	Use("en-US")
	assert.Equal("label START missing", From("label %v missing", "START"))
}
