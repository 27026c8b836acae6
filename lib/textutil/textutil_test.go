package textutil

import (
	"testing"

	"github.com/mazen160/go-random"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{input: "Apple iPhone 15 (128 GB)", expected: "apple-iphone-15-128-gb"},
		{input: "  trims  spaces  ", expected: "trims-spaces"},
		{input: "--already--hyphenated--", expected: "already-hyphenated"},
		{input: "₹52,999 only!", expected: "52-999-only"},
		{input: "", expected: ""},
		{input: "!!!", expected: ""},
	}

	for _, test := range testCases {
		require.Equal(t, test.expected, Slugify(test.input), test.input)
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	inputs := []string{
		"Apple iPhone 15 (128 GB)",
		"a--b  c",
		"UPPER lower 42",
	}
	for i := 0; i < 50; i++ {
		s, err := random.String(16)
		require.NoError(t, err)
		inputs = append(inputs, s)
	}

	for _, input := range inputs {
		once := Slugify(input)
		require.Equal(t, once, Slugify(once), input)
	}
}

func TestPriceDigits(t *testing.T) {
	testCases := []struct {
		price    string
		expected int64
	}{
		{price: "₹1,234", expected: 1234},
		{price: "₹52,999", expected: 52999},
		{price: "1234", expected: 1234},
		{price: "", expected: PriceSentinel},
		{price: "price on request", expected: PriceSentinel},
		{price: "₹", expected: PriceSentinel},
	}

	for _, test := range testCases {
		require.Equal(t, test.expected, PriceDigits(test.price), test.price)
	}
}

func TestFormatRupees(t *testing.T) {
	require.Equal(t, "₹500", FormatRupees(500))
	require.Equal(t, "₹1,234", FormatRupees(1234))
	require.Equal(t, "₹52,999", FormatRupees(52999))
	require.Equal(t, "₹1,200,000", FormatRupees(1200000))
}
