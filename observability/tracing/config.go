package tracing

import "time"

const (
	reconnectionPeriod = 30 * time.Second
	shutdownTimeout    = 5 * time.Second
)

// Config holds the configuration for tracing.
type Config struct {
	// Disable installs a no-op tracer provider. No spans are recorded.
	Disable bool `yaml:"disable" default:"false"`

	// SampleRate is the fraction of root traces that are sampled, between 0 and 1.
	SampleRate float64 `yaml:"sample_rate" validate:"gte=0,lte=1" default:"1"`

	// ExporterHost is the OTLP collector host. Spans are recorded but not exported when empty.
	ExporterHost string `yaml:"exporter_host"`

	// ExporterPort is the OTLP gRPC port of the collector.
	ExporterPort int `yaml:"exporter_port" validate:"required_with=ExporterHost" default:"4317"`

	// ExporterHeaders are sent with every export, typically the collector API key.
	ExporterHeaders map[string]string `yaml:"exporter_headers" mask:"true"`

	// Tags are added as resource attributes to all spans.
	Tags map[string]string `yaml:"tags"`
}
