// Package jstext pulls array literals out of javascript-ish text without
// parsing the surrounding script. Pages embed their data as object arrays
// behind a known key, in a grammar strict JSON decoders reject (unquoted
// keys, single quotes, trailing commas), so extraction is a lexical scan
// and decoding is done by a small tolerant parser.
package jstext

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidStart = errors.New("array extraction must start at '['")
	ErrUnterminated = errors.New("unterminated array literal")
)

// ExtractArray returns the bracket-balanced array literal beginning at
// text[start], including both the opening and closing bracket. Brackets
// inside string literals do not count toward nesting depth, and a
// backslash inside a string escapes exactly one following character, so
// an escaped quote does not terminate the string.
//
// Returns ErrInvalidStart if text[start] is not '[' and ErrUnterminated
// if the text ends before the literal closes; a truncated literal is
// never returned.
func ExtractArray(text string, start int) (string, error) {
	if start < 0 || start >= len(text) || text[start] != '[' {
		return "", fmt.Errorf("%w: offset %d", ErrInvalidStart, start)
	}

	depth := 0
	inString := false
	var quote byte
	escaped := false

	for i := start; i < len(text); i++ {
		ch := text[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == quote:
				inString = false
			}
			continue
		}

		switch ch {
		case '\'', '"':
			inString = true
			quote = ch
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return text[start : i+1], nil
			}
		}
	}

	return "", fmt.Errorf("%w: started at offset %d", ErrUnterminated, start)
}
