package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWipeByteArray(t *testing.T) {
	b := []byte("Abc12!x")
	WipeByteArray(b)
	assert.Equal(t, make([]byte, 7), b)

	assert.NotPanics(t, func() { WipeByteArray(nil) })
}
