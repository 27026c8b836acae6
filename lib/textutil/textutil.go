package textutil

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var nonAlnumRegex = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases s and joins its alphanumeric runs with single
// hyphens, with no leading or trailing hyphen. Idempotent.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = nonAlnumRegex.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// PriceSentinel is the sort key for prices with no usable digits, so that
// they always lose to a real price.
const PriceSentinel = int64(1_000_000_000_000)

var nonDigitRegex = regexp.MustCompile(`[^\d]`)

// PriceDigits reduces formatted price text to its integer digit value:
// "₹1,234" -> 1234. Empty text or text without digits maps to
// PriceSentinel.
func PriceDigits(price string) int64 {
	if price == "" {
		return PriceSentinel
	}
	digits := nonDigitRegex.ReplaceAllString(price, "")
	if digits == "" {
		return PriceSentinel
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return PriceSentinel
	}
	return n
}

var rupeePrinter = message.NewPrinter(language.English)

// FormatRupees renders n as rupee display text with thousands separators.
func FormatRupees(n int64) string {
	return rupeePrinter.Sprintf("₹%d", n)
}
