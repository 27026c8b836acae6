package buyhatke

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/Prudhvirajchenneboyina/buyhatke-scraper/lib/htmlutil"
	"github.com/Prudhvirajchenneboyina/buyhatke-scraper/lib/jstext"
	"github.com/Prudhvirajchenneboyina/buyhatke-scraper/lib/textutil"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Offer is one merchant's deal for a product.
type Offer struct {
	Merchant string
	Product  string
	// Price is rupee display text, or empty when the source price was
	// null or missing.
	Price string
	Url   string
}

// dealsKey anchors the per-merchant deal arrays embedded in product page
// scripts. It can occur several times across script blocks.
const dealsKey = "dealsData"

// Offers fetches a product page and returns every merchant deal found in
// its scripts, in page order. Individual malformed deal blocks are
// skipped; the page missing deals altogether just yields no offers.
func (c *Client) Offers(ctx context.Context, productUrl string) ([]Offer, error) {
	ctx, span := tracer.Start(ctx, "Offers")
	defer span.End()
	span.SetAttributes(attribute.String("url", productUrl))

	res, err := c.http.R().
		SetContext(ctx).
		Get(productUrl)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "product page fetch failed")
		return nil, err
	}
	if res.IsError() {
		err := fmt.Errorf("product page returned status %d", res.StatusCode())
		span.RecordError(err)
		span.SetStatus(codes.Error, "unexpected status")
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(res.Body()))
	if err != nil {
		return nil, err
	}

	var offers []Offer
	for _, script := range htmlutil.ScriptTexts(doc) {
		if !strings.Contains(script, dealsKey) {
			continue
		}
		offers = append(offers, c.scanDeals(ctx, script)...)
	}

	span.SetAttributes(attribute.Int("offers", len(offers)))
	return offers, nil
}

// scanDeals walks every dealsData occurrence in one script's text. A
// block that fails extraction or decoding is skipped and the scan
// resumes at the next occurrence.
func (c *Client) scanDeals(ctx context.Context, script string) []Offer {
	var offers []Offer

	scanner := jstext.NewArrayScanner(script, dealsKey)
	for {
		literal, ok, err := scanner.Next()
		if !ok {
			break
		}
		if err != nil {
			slog.DebugContext(ctx, "skipping malformed deals block", "err", err)
			continue
		}

		records, err := jstext.DecodeRecords(literal)
		if err != nil {
			slog.DebugContext(ctx, "skipping undecodable deals block", "err", err)
			continue
		}

		for _, rec := range records {
			offers = append(offers, c.projectOffer(rec))
		}
	}

	return offers
}

func (c *Client) projectOffer(rec jstext.Record) Offer {
	link := rec.Get("link").Text()
	return Offer{
		Merchant: c.MerchantFromUrl(link, "Unknown"),
		Product:  rec.Get("prod").Text(),
		Price:    formatPrice(rec.Get("price")),
		Url:      link,
	}
}

func formatPrice(v jstext.Value) string {
	switch v.Kind {
	case jstext.KindNumber:
		return textutil.FormatRupees(int64(v.Number))
	case jstext.KindString:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v.Str), 64); err == nil {
			return textutil.FormatRupees(int64(f))
		}
		// non-numeric price text is shown as-is; Cheapest treats it as
		// unusable via the digit sentinel
		return v.Str
	}
	return ""
}

// Cheapest returns the offer whose price has the lowest integer digit
// value. Offers without a usable price take the maximum sentinel and so
// sort last; ties keep the earliest offer. ok is false when no offer has
// a usable price.
func Cheapest(offers []Offer) (Offer, bool) {
	var best Offer
	bestKey := textutil.PriceSentinel
	found := false

	for _, offer := range offers {
		key := textutil.PriceDigits(offer.Price)
		if key < bestKey {
			best = offer
			bestKey = key
			found = true
		}
	}
	return best, found
}
