package jstext

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/mazen160/go-random"
	"github.com/stretchr/testify/require"
)

func TestExtractArray(t *testing.T) {
	testCases := []struct {
		text     string
		start    int
		expected string
	}{
		{
			text:     "[]",
			start:    0,
			expected: "[]",
		},
		{
			text:     "var x = [1, 2, 3]; doStuff();",
			start:    8,
			expected: "[1, 2, 3]",
		},
		{
			text:     "[[1, [2]], [3]] trailing",
			start:    0,
			expected: "[[1, [2]], [3]]",
		},
		{
			text:     `[{prod: "a ] b"}, {prod: 'c [ d'}]`,
			start:    0,
			expected: `[{prod: "a ] b"}, {prod: 'c [ d'}]`,
		},
		{
			// escaped quote inside a string must not end the string
			text:     `[{name: "quoted \" ] value"}] ]`,
			start:    0,
			expected: `[{name: "quoted \" ] value"}]`,
		},
		{
			text:     `[{path: "C:\\tmp\\"}]`,
			start:    0,
			expected: `[{path: "C:\\tmp\\"}]`,
		},
	}

	for _, test := range testCases {
		got, err := ExtractArray(test.text, test.start)
		require.NoError(t, err, test.text)
		require.Equal(t, test.expected, got, test.text)
	}
}

func TestExtractArrayInvalidStart(t *testing.T) {
	_, err := ExtractArray("x = [1]", 0)
	require.ErrorIs(t, err, ErrInvalidStart)

	_, err = ExtractArray("[1]", -1)
	require.ErrorIs(t, err, ErrInvalidStart)

	_, err = ExtractArray("[1]", 3)
	require.ErrorIs(t, err, ErrInvalidStart)
}

func TestExtractArrayUnterminated(t *testing.T) {
	for _, text := range []string{
		"[",
		"[1, 2",
		"[[1], [2]",
		`["closing bracket hidden in string ]"`,
		`[1, "unterminated string]`,
	} {
		got, err := ExtractArray(text, 0)
		require.ErrorIs(t, err, ErrUnterminated, text)
		require.Empty(t, got, text)
	}
}

// depth returns to zero exactly once, at the final character of the
// extracted span
func TestExtractArrayMinimality(t *testing.T) {
	for _, text := range []string{
		"[1][2]",
		"[[], []] []",
		"[1, [2, [3]]] ignored [4]",
	} {
		got, err := ExtractArray(text, 0)
		require.NoError(t, err)

		depth := 0
		for i := 0; i < len(got); i++ {
			switch got[i] {
			case '[':
				depth++
			case ']':
				depth--
			}
			if i < len(got)-1 {
				require.Greater(t, depth, 0, "depth hit zero before the end of %q", got)
			}
		}
		require.Zero(t, depth)
	}
}

// inserting an escaped quote anywhere inside a string value must never
// change the extracted span's boundaries
func TestExtractArrayEscapedDelimiterProperty(t *testing.T) {
	rndm := rand.New(rand.NewSource(4))

	for i := 0; i < 200; i++ {
		inner, err := random.String(12)
		require.NoError(t, err)

		at := rndm.Intn(len(inner) + 1)
		quote := `"`
		if rndm.Intn(2) == 0 {
			quote = "'"
		}

		plain := fmt.Sprintf(`[{v: %s%s%s}, 2]`, quote, inner, quote)
		mutated := fmt.Sprintf(
			`[{v: %s%s\%s%s%s}, 2]`,
			quote, inner[:at], quote, inner[at:], quote,
		)

		text := mutated + " tail ]"
		got, err := ExtractArray(text, 0)
		require.NoError(t, err, text)
		require.Equal(t, mutated, got)

		// the mutation must not have moved the closing bracket relative
		// to the unmutated literal
		require.Equal(t, len(plain)+2, len(got))
		require.True(t, strings.HasSuffix(got, "}, 2]"))
	}
}
