package telemetry

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestParseHeaders(t *testing.T) {
	tests := []struct {
		input string
		want  map[string]string
	}{
		{"x-honeycomb-team=abc", map[string]string{"x-honeycomb-team": "abc"}},
		{"a=1, b = 2", map[string]string{"a": "1", "b": "2"}},
		{"broken,=x,c=3", map[string]string{"c": "3"}},
		{"", map[string]string{}},
	}

	for _, tt := range tests {
		got := ParseHeaders(tt.input)
		if len(got) != len(tt.want) {
			t.Errorf("ParseHeaders(%q) = %v, want %v", tt.input, got, tt.want)
			continue
		}
		for k, v := range tt.want {
			if got[k] != v {
				t.Errorf("ParseHeaders(%q)[%q] = %q, want %q", tt.input, k, got[k], v)
			}
		}
	}
}

func TestOptionsFromEnv(t *testing.T) {
	tests := []struct {
		name         string
		env          map[string]string
		wantEndpoint string
		wantHeaders  map[string]string
	}{
		{
			name:        "empty",
			env:         map[string]string{},
			wantHeaders: map[string]string{},
		},
		{
			name: "generic collector",
			env: map[string]string{
				EnvEndpoint: "http://localhost:4318",
				EnvHeaders:  "authorization=Bearer xyz",
			},
			wantEndpoint: "http://localhost:4318",
			wantHeaders:  map[string]string{"authorization": "Bearer xyz"},
		},
		{
			name:         "honeycomb defaults",
			env:          map[string]string{EnvHoneycombKey: "key"},
			wantEndpoint: "https://api.honeycomb.io",
			wantHeaders: map[string]string{
				"x-honeycomb-team":    "key",
				"x-honeycomb-dataset": "cavern",
			},
		},
		{
			name: "honeycomb with extras",
			env: map[string]string{
				EnvHoneycombKey:     "key",
				EnvHoneycombDataset: "caves",
				EnvEndpoint:         "https://api.eu1.honeycomb.io",
				EnvHeaders:          "x-extra=1",
			},
			wantEndpoint: "https://api.eu1.honeycomb.io",
			wantHeaders: map[string]string{
				"x-honeycomb-team":    "key",
				"x-honeycomb-dataset": "caves",
				"x-extra":             "1",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := OptionsFromEnv(func(k string) string { return tt.env[k] })
			if opts.Endpoint != tt.wantEndpoint {
				t.Errorf("Endpoint = %q, want %q", opts.Endpoint, tt.wantEndpoint)
			}
			if len(opts.Headers) != len(tt.wantHeaders) {
				t.Fatalf("Headers = %v, want %v", opts.Headers, tt.wantHeaders)
			}
			for k, v := range tt.wantHeaders {
				if opts.Headers[k] != v {
					t.Errorf("Headers[%q] = %q, want %q", k, opts.Headers[k], v)
				}
			}
		})
	}
}

func TestTracerUsesGlobalProvider(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	_, span := Tracer("world").Start(context.Background(), "cave.generate")
	span.End()

	spans := recorder.Ended()
	if len(spans) != 1 {
		t.Fatalf("Expected 1 span, got %d", len(spans))
	}
	if spans[0].Name() != "cave.generate" {
		t.Errorf("Expected span name cave.generate, got %q", spans[0].Name())
	}
	if got := spans[0].InstrumentationScope().Name; got != "cavern/world" {
		t.Errorf("Expected scope cavern/world, got %q", got)
	}
}
