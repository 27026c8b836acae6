package commands

import (
	"os"
	"time"

	"github.com/Prudhvirajchenneboyina/buyhatke-scraper/lib/configutil"
	"github.com/Prudhvirajchenneboyina/buyhatke-scraper/lib/restyutil"
	"github.com/Prudhvirajchenneboyina/buyhatke-scraper/lib/scrapers/buyhatke"
	"github.com/Prudhvirajchenneboyina/buyhatke-scraper/lib/serviceutil"
)

type Config struct {
	BaseUrl        string            `json:"base_url"`
	Referer        string            `json:"referer"`
	UserAgent      string            `json:"user_agent"`
	TimeoutSeconds int               `json:"timeout_seconds"`
	Merchants      map[string]string `json:"merchants"`
}

// createClient builds the scraper client from config.json5, falling back
// to compiled-in defaults when no config file exists.
func createClient() *buyhatke.Client {
	cfg, err := configutil.ReadConfig[Config]("config.json5")
	if err != nil && !os.IsNotExist(err) {
		serviceutil.Fatal("failed to read config", err)
	}

	client, err := buyhatke.NewClient(buyhatke.ClientOptions{
		BaseUrl:   cfg.BaseUrl,
		Referer:   cfg.Referer,
		UserAgent: cfg.UserAgent,
		Timeout:   time.Duration(cfg.TimeoutSeconds) * time.Second,
		Merchants: cfg.Merchants,
	})
	if err != nil {
		serviceutil.Fatal("failed to initialize buyhatke client", err)
	}

	if *verbose {
		client.SetRestyInstrumentOutput(restyutil.NewFilesystemOutput(".dev/resty/hatke-cli"))
	}
	return client
}
