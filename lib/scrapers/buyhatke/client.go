// Package buyhatke scrapes the BuyHatke price-comparison site: product
// search, merchant offer listings for a product, and cheapest-offer
// selection. The site ships its data as javascript array literals
// embedded in page scripts, which are pulled out with lib/jstext.
package buyhatke

import (
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/Prudhvirajchenneboyina/buyhatke-scraper/lib/restyutil"
	"github.com/Prudhvirajchenneboyina/buyhatke-scraper/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
)

const (
	defaultBaseUrl   = "https://buyhatke.com"
	defaultReferer   = "https://buyhatke.com/"
	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) " +
		"Chrome/128.0.0.0 Safari/537.36"
	defaultTimeout = time.Second * 20
)

type ClientOptions struct {
	// BaseUrl defaults to the production site; tests point it elsewhere.
	BaseUrl   string
	Referer   string
	UserAgent string
	Timeout   time.Duration
	// Merchants maps extra lowercase hosts (no "www.") to display names,
	// layered over the built-in table.
	Merchants map[string]string
}

type Client struct {
	baseUrl   *url.URL
	http      *resty.Client
	merchants map[string]string
}

func NewClient(opts ClientOptions) (*Client, error) {
	if opts.BaseUrl == "" {
		opts.BaseUrl = defaultBaseUrl
	}
	if opts.Referer == "" {
		opts.Referer = defaultReferer
	}
	if opts.UserAgent == "" {
		opts.UserAgent = defaultUserAgent
	}
	if opts.Timeout == 0 {
		opts.Timeout = defaultTimeout
	}

	baseUrl, err := url.Parse(strings.TrimSuffix(opts.BaseUrl, "/"))
	if err != nil {
		return nil, err
	}

	client := resty.New()
	client.SetBaseURL(baseUrl.String())
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	client.SetCookieJar(jar)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	client.SetHeader("Referer", opts.Referer)
	client.SetHeader("User-Agent", opts.UserAgent)
	client.SetTimeout(opts.Timeout)

	telemetry.InstrumentResty(client, "scrapers/buyhatke/http")

	merchants := make(map[string]string, len(defaultMerchants)+len(opts.Merchants))
	for host, name := range defaultMerchants {
		merchants[host] = name
	}
	for host, name := range opts.Merchants {
		merchants[host] = name
	}

	return &Client{
		baseUrl:   baseUrl,
		http:      client,
		merchants: merchants,
	}, nil
}

// SetRestyInstrumentOutput enables dumping of raw HTTP exchanges, used by
// the CLI in verbose mode.
func (c *Client) SetRestyInstrumentOutput(out restyutil.InstrumentOutput) {
	restyutil.InstrumentClient(c.http, out)
}
