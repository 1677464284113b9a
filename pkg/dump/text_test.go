package dump

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckText(t *testing.T) {
	assert.NoError(t, checkText(nil))
	assert.NoError(t, checkText([]byte("plain ascii\n")))
	assert.NoError(t, checkText([]byte("\ufeffbom and ✓ emoji 🚀")))

	err := checkText([]byte("ab\xffc"))
	assert.ErrorIs(t, err, ErrNotText)
	assert.Contains(t, err.Error(), "offset 2")

	assert.NoError(t, checkText([]byte("a\x00b\x01\x7f")))
}

func TestFirstInvalid(t *testing.T) {
	assert.Equal(t, 0, firstInvalid([]byte{0xc3}))
	assert.Equal(t, 2, firstInvalid([]byte("é\xe2\x82")))
	assert.Equal(t, 5, firstInvalid([]byte("hello")))
}
