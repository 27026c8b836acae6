package buyhatke

import (
	"context"
	"fmt"

	"github.com/Prudhvirajchenneboyina/buyhatke-scraper/lib/jstext"
	"github.com/Prudhvirajchenneboyina/buyhatke-scraper/lib/textutil"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// SearchHit is one product row from the search results page.
type SearchHit struct {
	// Title may be empty when the source record had no usable name;
	// records are never dropped.
	Title string
	// Price is the value as found in the source, not reformatted.
	Price       string
	RedirectUrl string
}

// searchResultsKey anchors the product array embedded in the search page.
const searchResultsKey = "SearchProductsList"

// Search fetches the search results page for query and returns its
// products in page order. A missing results section is an error here:
// the search page carries exactly one.
func (c *Client) Search(ctx context.Context, query string) ([]SearchHit, error) {
	ctx, span := tracer.Start(ctx, "Search")
	defer span.End()
	span.SetAttributes(attribute.String("query", query))

	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("product", query).
		SetQueryParam("x-sveltekit-invalidated", "001").
		Get("/search")
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "search page fetch failed")
		return nil, err
	}
	if res.IsError() {
		err := fmt.Errorf("search page returned status %d", res.StatusCode())
		span.RecordError(err)
		span.SetStatus(codes.Error, "unexpected status")
		return nil, err
	}

	literal, ok, err := jstext.LocateArray(res.String(), searchResultsKey)
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", searchResultsKey, err)
	}
	if !ok {
		return nil, fmt.Errorf("%s not found in search page", searchResultsKey)
	}

	records, err := jstext.DecodeRecords(literal)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", searchResultsKey, err)
	}

	hits := make([]SearchHit, 0, len(records))
	for _, rec := range records {
		hits = append(hits, c.projectSearchHit(rec))
	}
	span.SetAttributes(attribute.Int("hits", len(hits)))
	return hits, nil
}

func (c *Client) projectSearchHit(rec jstext.Record) SearchHit {
	title := rec.Get("prod").Text()

	slugSource := rec.Get("prodSearch").Text()
	if slugSource == "" {
		slugSource = title
	}

	redirect := fmt.Sprintf(
		"%s/%s-price-in-india-%s-%s",
		c.baseUrl,
		textutil.Slugify(slugSource),
		rec.Get("pos").Text(),
		rec.Get("internalPid").Text(),
	)

	return SearchHit{
		Title:       title,
		Price:       rec.Get("price").Text(),
		RedirectUrl: redirect,
	}
}
