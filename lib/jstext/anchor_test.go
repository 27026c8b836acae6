package jstext

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocateArray(t *testing.T) {
	literal, ok, err := LocateArray("foo: [{a:1},{a:2}];", "foo")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "[{a:1},{a:2}]", literal)
}

func TestLocateArrayAbsent(t *testing.T) {
	testCases := []struct {
		name string
		text string
	}{
		{name: "missing key", text: "bar: [1]"},
		{name: "missing colon", text: "foo [1]"},
		{name: "missing bracket", text: "foo: 12;"},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			literal, ok, err := LocateArray(test.text, "foo")
			require.NoError(t, err)
			require.False(t, ok)
			require.Empty(t, literal)
		})
	}
}

func TestLocateArrayUnterminated(t *testing.T) {
	_, ok, err := LocateArray("foo: [{a:1}", "foo")
	require.ErrorIs(t, err, ErrUnterminated)
	require.False(t, ok)
}

func TestArrayScanner(t *testing.T) {
	text := `window.a = {deals: [1, 2]}; window.b = {deals: ["x"]}; deals: [3,]`
	scanner := NewArrayScanner(text, "deals")

	var literals []string
	for {
		literal, ok, err := scanner.Next()
		if !ok {
			break
		}
		require.NoError(t, err)
		literals = append(literals, literal)
	}

	require.Equal(t, []string{"[1, 2]", `["x"]`, "[3,]"}, literals)
}

// a malformed occurrence is reported once and the scan resumes past it
func TestArrayScannerSkipsMalformed(t *testing.T) {
	text := `deals: [1, 2 ... deals: [3]`
	scanner := NewArrayScanner(text, "deals")

	_, ok, err := scanner.Next()
	require.True(t, ok)
	require.ErrorIs(t, err, ErrUnterminated)

	literal, ok, err := scanner.Next()
	require.True(t, ok)
	require.NoError(t, err)
	require.Equal(t, "[3]", literal)

	_, ok, _ = scanner.Next()
	require.False(t, ok)
}

func TestArrayScannerEmptyText(t *testing.T) {
	_, ok, err := NewArrayScanner("", "deals").Next()
	require.NoError(t, err)
	require.False(t, ok)
}
