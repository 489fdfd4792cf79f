// Package telemetry provides OpenTelemetry tracing for cave generation.
package telemetry

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const (
	serviceName    = "cavern"
	serviceVersion = "0.1.0"

	honeycombEndpoint = "https://api.honeycomb.io"
)

// Environment keys read by OptionsFromEnv.
const (
	EnvEndpoint         = "CAVERN_OTLP_ENDPOINT"
	EnvHeaders          = "CAVERN_OTLP_HEADERS"
	EnvHoneycombKey     = "HONEYCOMB_CAVERN_API_KEY"
	EnvHoneycombDataset = "HONEYCOMB_CAVERN_DATASET"
)

// Options configures the OTLP exporter. Empty fields fall back to the
// standard OTEL_* environment variables read by the exporter itself.
type Options struct {
	// Endpoint is a full collector URL, e.g. https://api.honeycomb.io.
	Endpoint string
	// Headers are sent with every export request.
	Headers map[string]string
}

// ParseHeaders parses "k1=v1,k2=v2" into a header map, skipping malformed pairs.
func ParseHeaders(s string) map[string]string {
	headers := make(map[string]string)
	for _, pair := range strings.Split(s, ",") {
		k, v, ok := strings.Cut(pair, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			continue
		}
		headers[k] = strings.TrimSpace(v)
	}
	return headers
}

// OptionsFromEnv builds exporter options from getenv. A Honeycomb API key
// points the exporter at Honeycomb and adds its team and dataset headers on
// top of any CAVERN_OTLP_HEADERS.
func OptionsFromEnv(getenv func(string) string) Options {
	opts := Options{
		Endpoint: getenv(EnvEndpoint),
		Headers:  ParseHeaders(getenv(EnvHeaders)),
	}

	if apiKey := getenv(EnvHoneycombKey); apiKey != "" {
		dataset := getenv(EnvHoneycombDataset)
		if dataset == "" {
			dataset = serviceName
		}
		if opts.Endpoint == "" {
			opts.Endpoint = honeycombEndpoint
		}
		opts.Headers["x-honeycomb-team"] = apiKey
		opts.Headers["x-honeycomb-dataset"] = dataset
	}
	return opts
}

// Setup initializes OpenTelemetry with an OTLP HTTP exporter and registers
// it as the global provider.
//
// Returns a shutdown function that should be called on application exit.
func Setup(ctx context.Context, opts Options) (shutdown func(context.Context) error, err error) {
	var exporterOpts []otlptracehttp.Option
	if opts.Endpoint != "" {
		exporterOpts = append(exporterOpts, otlptracehttp.WithEndpointURL(opts.Endpoint))
	}
	if len(opts.Headers) > 0 {
		exporterOpts = append(exporterOpts, otlptracehttp.WithHeaders(opts.Headers))
	}

	exporter, err := otlptracehttp.New(ctx, exporterOpts...)
	if err != nil {
		return nil, fmt.Errorf("create otlp exporter: %w", err)
	}

	// Own resource, not merged with Default(), to avoid schema URL conflicts.
	res, err := resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", serviceVersion),
			attribute.String("host.name", hostname()),
			attribute.String("os.type", runtime.GOOS),
			attribute.String("process.runtime.name", "go"),
			attribute.String("process.runtime.version", runtime.Version()),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("build telemetry resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// Tracer returns a named tracer for the given component.
func Tracer(name string) trace.Tracer {
	return otel.GetTracerProvider().Tracer(serviceName + "/" + name)
}

func hostname() string {
	name, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return name
}
