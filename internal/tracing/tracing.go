// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"context"

	jaegerpropagator "go.opentelemetry.io/contrib/propagators/jaeger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/canonical/renovation-service/internal/logging"
)

const tracerName = "renovation-service"

var _ TracingInterface = (*Tracer)(nil)

type Tracer struct {
	tracer trace.Tracer

	logger logging.LoggerInterface
}

func (t *Tracer) Start(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, name, opts...)
}

// NewTracer sets the global tracer provider up based on the config and
// returns a tracer for the service. With tracing disabled, or when the
// exporter cannot be created, spans are recorded by a noop provider.
func NewTracer(c *Config) *Tracer {
	t := new(Tracer)
	t.logger = c.Logger

	if !c.Enabled {
		t.tracer = noop.NewTracerProvider().Tracer(tracerName)
		return t
	}

	exporter, err := newExporter(c)
	if err != nil {
		c.Logger.Errorf("failed to create otel exporter, tracing disabled: %v", err)
		t.tracer = noop.NewTracerProvider().Tracer(tracerName)
		return t
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(
			resource.NewSchemaless(attribute.String("service.name", tracerName)),
		),
	)

	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(
		propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{},
			propagation.Baggage{},
			jaegerpropagator.Jaeger{},
		),
	)

	t.tracer = otel.Tracer(tracerName)
	return t
}

func newExporter(c *Config) (*otlptrace.Exporter, error) {
	if c.OtelGRPCEndpoint != "" {
		return otlptracegrpc.New(
			context.Background(),
			otlptracegrpc.WithEndpoint(c.OtelGRPCEndpoint),
			otlptracegrpc.WithInsecure(),
		)
	}

	return otlptracehttp.New(
		context.Background(),
		otlptracehttp.WithEndpoint(c.OtelHTTPEndpoint),
		otlptracehttp.WithInsecure(),
	)
}

func NewNoopTracer() *Tracer {
	t := new(Tracer)
	t.logger = logging.NewNoopLogger()
	t.tracer = noop.NewTracerProvider().Tracer(tracerName)
	return t
}
