package usecase

import "go.opentelemetry.io/otel"

var tracer = otel.Tracer("promoted-ads/internal/adapter/usecase")
