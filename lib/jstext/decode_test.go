package jstext

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestDecodeRecords(t *testing.T) {
	records, err := DecodeRecords("[{a:1},{a:2}]")
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, float64(1), records[0].Get("a").Number)
	require.Equal(t, float64(2), records[1].Get("a").Number)
}

func TestDecodeRecordsRelaxedGrammar(t *testing.T) {
	literal := `[
		{prod: 'Phone 15', price: 52999, inStock: true, rating: 4.5,},
		{"prod": "Phone 15 Pro", 'link': 'https://example.com/p?a=1&b=2', tags: [new, refurb,], extra: null},
	]`

	records, err := DecodeRecords(literal)
	require.NoError(t, err)
	require.Len(t, records, 2)

	first := records[0]
	require.Equal(t, "Phone 15", first.Get("prod").Str)
	require.Equal(t, float64(52999), first.Get("price").Number)
	require.True(t, first.Get("inStock").Bool)
	require.Equal(t, 4.5, first.Get("rating").Number)

	second := records[1]
	require.Equal(t, "Phone 15 Pro", second.Get("prod").Str)
	require.Equal(t, "https://example.com/p?a=1&b=2", second.Get("link").Str)
	require.Equal(t, KindArray, second.Get("tags").Kind)
	require.Len(t, second.Get("tags").Array, 2)
	require.Equal(t, KindNull, second.Get("extra").Kind)
}

func TestDecodeRecordsMemberOrder(t *testing.T) {
	records, err := DecodeRecords(`[{z: 1, a: 2, m: 3}]`)
	require.NoError(t, err)

	var keys []string
	for _, m := range records[0].Members {
		keys = append(keys, m.Key)
	}
	diff := cmp.Diff([]string{"z", "a", "m"}, keys)
	require.Empty(t, diff)
}

func TestDecodeRecordsMissingField(t *testing.T) {
	records, err := DecodeRecords(`[{present: null}]`)
	require.NoError(t, err)

	require.Equal(t, KindNull, records[0].Get("present").Kind)
	require.True(t, records[0].Get("absent").IsMissing())
	require.False(t, records[0].Get("present").IsMissing())
}

func TestDecodeRecordsErrors(t *testing.T) {
	testCases := []struct {
		name    string
		literal string
	}{
		{name: "not an array", literal: `{a: 1}`},
		{name: "scalar element", literal: `[1, 2]`},
		{name: "missing colon", literal: `[{a 1}]`},
		{name: "unterminated string", literal: `[{a: "b}]`},
		{name: "trailing garbage", literal: `[{a: 1}] extra: [`},
		{name: "bad escape", literal: `[{a: "\u00zz"}]`},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			_, err := DecodeRecords(test.literal)
			require.Error(t, err)

			var decodeErr *DecodeError
			require.ErrorAs(t, err, &decodeErr)
			require.NotEmpty(t, decodeErr.Text)
		})
	}
}

func TestDecodeValueStrings(t *testing.T) {
	testCases := []struct {
		src      string
		expected string
	}{
		{src: `"plain"`, expected: "plain"},
		{src: `'single'`, expected: "single"},
		{src: `"escaped \" quote"`, expected: `escaped " quote`},
		{src: `'it\'s'`, expected: "it's"},
		{src: `"tab\there"`, expected: "tab\there"},
		{src: `"rupee ₹"`, expected: "rupee ₹"},
		{src: `"slash\/es"`, expected: "slash/es"},
	}

	for _, test := range testCases {
		v, err := DecodeValue(test.src)
		require.NoError(t, err, test.src)
		require.Equal(t, KindString, v.Kind)
		require.Equal(t, test.expected, v.Str)
	}
}

func TestValueText(t *testing.T) {
	testCases := []struct {
		src      string
		expected string
	}{
		{src: "42", expected: "42"},
		{src: "-7", expected: "-7"},
		{src: "3.25", expected: "3.25"},
		{src: `"already text"`, expected: "already text"},
		{src: "true", expected: "true"},
		{src: "null", expected: ""},
	}

	for _, test := range testCases {
		v, err := DecodeValue(test.src)
		require.NoError(t, err)
		require.Equal(t, test.expected, v.Text(), test.src)
	}
}
