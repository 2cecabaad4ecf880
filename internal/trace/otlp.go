package trace

import (
	"context"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	// EndpointEnv enables OTLP export when set (host:port, no scheme).
	EndpointEnv = "OTEL_EXPORTER_OTLP_ENDPOINT"
	// ServiceNameEnv overrides the reported service name.
	ServiceNameEnv = "OTEL_SERVICE_NAME"

	defaultServiceName = "tabsblock"
	instrumentationName = "tabsblock/editor"
)

// Attribute keys recorded on mutation spans.
const (
	AttrNodeID   = attribute.Key("tabsblock.node.id")
	AttrRevision = attribute.Key("tabsblock.revision")
	AttrTabCount = attribute.Key("tabsblock.tabs.count")
	AttrVariant  = attribute.Key("tabsblock.variant")
)

// Provider owns the tracer used by the editor. A Provider built without an
// endpoint hands out a no-op tracer and Shutdown does nothing.
type Provider struct {
	sdk    *sdktrace.TracerProvider
	tracer oteltrace.Tracer
}

// NewProvider creates an OTLP/HTTP backed provider if OTEL_EXPORTER_OTLP_ENDPOINT
// is set. Otherwise it returns a disabled provider.
func NewProvider(ctx context.Context) (*Provider, error) {
	endpoint := os.Getenv(EndpointEnv)
	if endpoint == "" {
		return Disabled(), nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(), // For local dev; make configurable
	)
	if err != nil {
		return nil, err
	}

	return newProvider(sdktrace.WithBatcher(exporter)), nil
}

// NewWithProcessor builds a provider around an explicit span processor.
// Tests pass a tracetest.SpanRecorder here.
func NewWithProcessor(sp sdktrace.SpanProcessor) *Provider {
	return newProvider(sdktrace.WithSpanProcessor(sp))
}

// Disabled returns a provider whose tracer records nothing.
func Disabled() *Provider {
	return &Provider{tracer: noop.NewTracerProvider().Tracer(instrumentationName)}
}

func newProvider(opt sdktrace.TracerProviderOption) *Provider {
	serviceName := os.Getenv(ServiceNameEnv)
	if serviceName == "" {
		serviceName = defaultServiceName
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	sdk := sdktrace.NewTracerProvider(
		opt,
		sdktrace.WithResource(res),
	)
	return &Provider{
		sdk:    sdk,
		tracer: sdk.Tracer(instrumentationName),
	}
}

// Tracer returns the tracer for editor spans.
func (p *Provider) Tracer() oteltrace.Tracer {
	if p == nil {
		return noop.NewTracerProvider().Tracer(instrumentationName)
	}
	return p.tracer
}

// Enabled reports whether spans are exported anywhere.
func (p *Provider) Enabled() bool {
	return p != nil && p.sdk != nil
}

// Shutdown flushes and closes the exporter
func (p *Provider) Shutdown(ctx context.Context) error {
	if p == nil || p.sdk == nil {
		return nil
	}
	return p.sdk.Shutdown(ctx)
}
