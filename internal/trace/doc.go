// Package trace sets up OpenTelemetry tracing for property mutations.
// Export is off unless OTEL_EXPORTER_OTLP_ENDPOINT is set.
package trace
