package main

import (
	"context"

	"github.com/Prudhvirajchenneboyina/buyhatke-scraper/cmd/hatke-cli/commands"
	"github.com/Prudhvirajchenneboyina/buyhatke-scraper/lib/telemetry"
)

func main() {
	ctx := context.Background()
	// telemetry is optional for a CLI run; without a telemetry.json5 in
	// scope the spans simply go nowhere
	tel, err := telemetry.SetupFromEnv(ctx, "hatke-cli")
	if err == nil {
		defer tel.Shutdown(ctx)
	}
	commands.ExecuteContext(ctx)
}
