package telemetry

import (
	"context"

	"github.com/wayfind-dev/wayfind/pkg/routes"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Default tracer name for wayfind resolutions.
const defaultTracerName = "wayfind"

// TraceConfig configures resolution tracing.
type TraceConfig struct {
	// TracerName is the name of the tracer (default: "wayfind").
	TracerName string

	// AttributeExtractor adds custom attributes to each resolution
	// span. Called once per traced resolution.
	AttributeExtractor func(src routes.Context, opts routes.Options) []attribute.KeyValue

	// tracer is the resolved tracer instance.
	tracer trace.Tracer
}

// TraceOption configures resolution tracing.
type TraceOption func(*TraceConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) TraceOption {
	return func(c *TraceConfig) {
		c.TracerName = name
	}
}

// WithAttributeExtractor sets the custom attribute extractor.
func WithAttributeExtractor(fn func(src routes.Context, opts routes.Options) []attribute.KeyValue) TraceOption {
	return func(c *TraceConfig) {
		c.AttributeExtractor = fn
	}
}

// Tracer wraps route resolution in OpenTelemetry spans.
type Tracer struct {
	config TraceConfig
}

// NewTracer creates a resolution tracer.
func NewTracer(opts ...TraceOption) *Tracer {
	config := TraceConfig{TracerName: defaultTracerName}
	for _, opt := range opts {
		opt(&config)
	}
	config.tracer = otel.Tracer(config.TracerName)
	return &Tracer{config: config}
}

// Resolve runs a resolution inside a span. The span records the file
// count, the size of the resulting tree, and any resolution error.
func (t *Tracer) Resolve(ctx context.Context, src routes.Context, opts routes.Options) (*routes.RouteNode, error) {
	attrs := []attribute.KeyValue{
		attribute.String("wayfind.platform", opts.Platform),
		attribute.Int("wayfind.files", len(src.Keys())),
	}
	if t.config.AttributeExtractor != nil {
		attrs = append(attrs, t.config.AttributeExtractor(src, opts)...)
	}

	_, span := t.config.tracer.Start(ctx, "wayfind.resolve",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attrs...),
	)
	defer span.End()

	root, err := routes.Resolve(src, opts)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("wayfind.routes", CountNodes(root)))
	span.SetStatus(codes.Ok, "")
	return root, nil
}
