// Package tracing sets up the global OpenTelemetry tracer provider.
package tracing

import (
	"context"
	"net"

	"github.com/code19m/errx"
	"github.com/spf13/cast"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.23.1"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/TechArp/CafeApp/meta"
)

// InitGlobalTracer installs a global tracer provider built from cfg and
// returns its shutdown function, intended to be deferred.
//
// With cfg.Disable a no-op provider is installed. Without cfg.ExporterHost
// spans are sampled and carry trace ids but are not exported.
func InitGlobalTracer(cfg Config) (func() error, error) {
	if cfg.Disable {
		otel.SetTracerProvider(noop.NewTracerProvider())
		return func() error { return nil }, nil
	}

	opts := []trace.TracerProviderOption{
		trace.WithSampler(trace.ParentBased(trace.TraceIDRatioBased(cfg.SampleRate))),
		trace.WithResource(newResource(cfg.Tags)),
	}

	if cfg.ExporterHost != "" {
		exporter, err := newExporter(cfg)
		if err != nil {
			return nil, errx.Wrap(err)
		}
		opts = append(opts, trace.WithBatcher(exporter))
	}

	tp := trace.NewTracerProvider(opts...)

	otel.SetTextMapPropagator(
		propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{},
			propagation.Baggage{},
		),
	)
	otel.SetTracerProvider(tp)

	return shutdownFunc(tp), nil
}

func newExporter(cfg Config) (*otlptrace.Exporter, error) {
	addr := net.JoinHostPort(cfg.ExporterHost, cast.ToString(cfg.ExporterPort))

	opts := []otlptracegrpc.Option{
		otlptracegrpc.WithInsecure(),
		otlptracegrpc.WithEndpoint(addr),
		otlptracegrpc.WithReconnectionPeriod(reconnectionPeriod),
	}
	if len(cfg.ExporterHeaders) > 0 {
		opts = append(opts, otlptracegrpc.WithHeaders(cfg.ExporterHeaders))
	}

	client := otlptracegrpc.NewClient(opts...)

	exporter, err := otlptrace.New(context.Background(), client)
	if err != nil {
		return nil, errx.Wrap(err, errx.WithDetails(errx.D{"exporter_addr": addr}))
	}
	return exporter, nil
}

func newResource(tags map[string]string) *resource.Resource {
	attrs := make([]attribute.KeyValue, 0, len(tags)+2)
	for k, v := range tags {
		attrs = append(attrs, attribute.String(k, v))
	}
	attrs = append(attrs,
		semconv.ServiceNameKey.String(meta.Service()),
		semconv.ServiceVersionKey.String(meta.Version()),
	)
	return resource.NewWithAttributes(semconv.SchemaURL, attrs...)
}

func shutdownFunc(tp *trace.TracerProvider) func() error {
	return func() error {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := tp.ForceFlush(ctx); err != nil {
			return errx.Wrap(err)
		}
		if err := tp.Shutdown(ctx); err != nil {
			return errx.Wrap(err)
		}
		return nil
	}
}
