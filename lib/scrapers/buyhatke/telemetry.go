package buyhatke

import "go.opentelemetry.io/otel"

var tracer = otel.Tracer("scrapers/buyhatke")
