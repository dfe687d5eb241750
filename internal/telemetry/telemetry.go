package telemetry

import (
	"context"
	"fmt"
	"time"

	"github.com/lshigami/quizforge/config"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.27.0"
	"go.uber.org/fx"
)

// Provider owns the process tracer provider. A disabled Provider has a nil tp.
type Provider struct {
	tp *sdktrace.TracerProvider
}

// NewProvider installs a global tracer provider when OTEL_ENABLED is set.
// Spans go to the OTLP endpoint if one is configured and to stdout otherwise.
func NewProvider(lc fx.Lifecycle, cfg *config.Config) (*Provider, error) {
	p, err := Setup(context.Background(), cfg.Telemetry)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{OnStop: p.Shutdown})
	return p, nil
}

func Setup(ctx context.Context, cfg config.Telemetry) (*Provider, error) {
	if !cfg.Enabled {
		return &Provider{}, nil
	}
	exporter, err := buildExporter(ctx, cfg.OTLPEndpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to create trace exporter: %w", err)
	}
	res, err := resource.Merge(resource.Default(), resource.NewSchemaless(
		semconv.ServiceNameKey.String(cfg.ServiceName),
	))
	if err != nil {
		log.Warn().Err(err).Msg("OpenTelemetry resource merge failed, using default resource")
		res = resource.Default()
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter, sdktrace.WithBatchTimeout(5*time.Second)),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	log.Info().Str("service", cfg.ServiceName).Str("endpoint", cfg.OTLPEndpoint).Msg("OpenTelemetry tracing initialized")
	return &Provider{tp: tp}, nil
}

func buildExporter(ctx context.Context, endpoint string) (sdktrace.SpanExporter, error) {
	if endpoint != "" {
		return otlptracehttp.New(ctx, otlptracehttp.WithEndpoint(endpoint), otlptracehttp.WithInsecure())
	}
	log.Warn().Msg("OTEL_EXPORTER_OTLP_ENDPOINT is not set. Traces are written to stdout.")
	return stdouttrace.New()
}

func (p *Provider) Enabled() bool {
	return p.tp != nil
}

func (p *Provider) Shutdown(ctx context.Context) error {
	if p.tp == nil {
		return nil
	}
	return p.tp.Shutdown(ctx)
}
