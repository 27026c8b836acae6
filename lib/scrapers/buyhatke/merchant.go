package buyhatke

import (
	"net/url"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var defaultMerchants = map[string]string{
	"amazon.in":           "Amazon",
	"flipkart.com":        "Flipkart",
	"croma.com":           "Croma",
	"jiomart.com":         "JioMart",
	"reliancedigital.in":  "Reliance Digital",
	"vijaysales.com":      "Vijay Sales",
	"apple.com":           "Apple Store",
	"bigbasket.com":       "BigBasket",
	"shopsy.in":           "Shopsy",
	"paiinternational.in": "Pai International",
}

var titleCaser = cases.Title(language.English)

// MerchantFromUrl infers a merchant display name from an offer link's
// host: known hosts map through the merchant table (with any leading
// "www." stripped), unknown hosts fall back to their capitalized first
// DNS label, and an empty or unparseable link yields fallback.
func (c *Client) MerchantFromUrl(link string, fallback string) string {
	if link == "" {
		return fallback
	}
	parsed, err := url.Parse(link)
	if err != nil || parsed.Hostname() == "" {
		return fallback
	}

	host := strings.ToLower(parsed.Hostname())
	host = strings.TrimPrefix(host, "www.")
	if name, ok := c.merchants[host]; ok {
		return name
	}

	label, _, _ := strings.Cut(host, ".")
	if label == "" {
		return fallback
	}
	return titleCaser.String(label)
}
