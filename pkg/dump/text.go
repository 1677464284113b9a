// File: pkg/dump/text.go
package dump

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrNotText is returned for manifest files that are not UTF-8 text.
var ErrNotText = errors.New("not a UTF-8 text file")

// checkText rejects content that is not valid UTF-8. Content is otherwise
// copied as is, control characters included.
func checkText(data []byte) error {
	if utf8.Valid(data) {
		return nil
	}
	return fmt.Errorf("%w: invalid UTF-8 at offset %d", ErrNotText, firstInvalid(data))
}

// firstInvalid returns the offset of the first byte that does not start a valid rune.
func firstInvalid(data []byte) int {
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return len(data)
}
