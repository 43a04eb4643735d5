package observability

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.27.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/yungbote/videoscripter-backend/internal/pkg/logger"
)

const (
	tracerName       = "github.com/yungbote/videoscripter-backend"
	serviceNamespace = "videoscripter"
)

// OtelConfig is resolved by the app config layer; nothing here reads the environment.
type OtelConfig struct {
	Enabled     bool
	ServiceName string
	Environment string
	Version     string

	// SampleRatio applies to root spans. Negative means "pick by environment".
	SampleRatio float64
	Endpoint    string
	Headers     map[string]string
	Insecure    bool

	// Deployment facts stamped on every span.
	DBDriver           string
	CatalogBackend     string
	CatalogSharedCache bool
	IngestConcurrency  int
}

var (
	otelOnce     sync.Once
	otelShutdown func(context.Context) error = func(context.Context) error { return nil }
)

func InitOTel(ctx context.Context, log *logger.Logger, cfg OtelConfig) func(context.Context) error {
	otelOnce.Do(func() {
		if !cfg.Enabled {
			return
		}
		res, err := resource.New(ctx, resource.WithAttributes(resourceAttributes(cfg)...))
		if err != nil && log != nil {
			log.Warn("otel resource init failed (continuing)", "error", err)
		}

		opts := []sdktrace.TracerProviderOption{
			sdktrace.WithSampler(sampler(cfg)),
			sdktrace.WithResource(res),
		}
		exporter, err := buildTraceExporter(ctx, log, cfg)
		if err != nil && log != nil {
			log.Warn("otel exporter init failed (continuing)", "error", err)
		}
		if exporter != nil {
			opts = append(opts, sdktrace.WithBatcher(exporter, sdktrace.WithBatchTimeout(5*time.Second)))
		}
		tp := sdktrace.NewTracerProvider(opts...)

		otel.SetTracerProvider(tp)
		otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{},
			propagation.Baggage{},
		))
		otelShutdown = tp.Shutdown
		if log != nil {
			log.Info("otel tracing initialized",
				"service", serviceName(cfg),
				"endpoint", cfg.Endpoint,
				"sample_ratio", sampleRatio(cfg),
			)
		}
	})
	return otelShutdown
}

// Tracer returns the service tracer from the global provider. Before InitOTel runs,
// or when tracing is disabled, spans are no-ops.
func Tracer() trace.Tracer {
	return otel.Tracer(tracerName)
}

func serviceName(cfg OtelConfig) string {
	if name := strings.TrimSpace(cfg.ServiceName); name != "" {
		return name
	}
	return serviceNamespace
}

func resourceAttributes(cfg OtelConfig) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		semconv.ServiceNameKey.String(serviceName(cfg)),
		semconv.ServiceNamespaceKey.String(serviceNamespace),
		attribute.String("deployment.environment", strings.TrimSpace(cfg.Environment)),
		attribute.Bool("videoscripter.catalog.shared_cache", cfg.CatalogSharedCache),
	}
	if v := strings.TrimSpace(cfg.Version); v != "" {
		attrs = append(attrs, semconv.ServiceVersionKey.String(v))
	}
	if d := strings.TrimSpace(cfg.DBDriver); d != "" {
		attrs = append(attrs, attribute.String("db.system", d))
	}
	if b := strings.TrimSpace(cfg.CatalogBackend); b != "" {
		attrs = append(attrs, attribute.String("videoscripter.catalog.backend", b))
	}
	if cfg.IngestConcurrency > 0 {
		attrs = append(attrs, attribute.Int("videoscripter.ingest.concurrency", cfg.IngestConcurrency))
	}
	return attrs
}

// sampleRatio keeps every trace outside production unless a ratio is configured.
func sampleRatio(cfg OtelConfig) float64 {
	r := cfg.SampleRatio
	if r < 0 {
		switch strings.ToLower(strings.TrimSpace(cfg.Environment)) {
		case "prod", "production":
			return 0.1
		default:
			return 1
		}
	}
	if r > 1 {
		return 1
	}
	return r
}

func sampler(cfg OtelConfig) sdktrace.Sampler {
	r := sampleRatio(cfg)
	switch {
	case r >= 1:
		return sdktrace.ParentBased(sdktrace.AlwaysSample())
	case r == 0:
		return sdktrace.ParentBased(sdktrace.NeverSample())
	default:
		return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(r))
	}
}

// ParseHeaders reads OTLP headers in the "k1=v1,k2=v2" form.
func ParseHeaders(raw string) map[string]string {
	headers := map[string]string{}
	for _, part := range strings.Split(raw, ",") {
		kv := strings.SplitN(strings.TrimSpace(part), "=", 2)
		if len(kv) != 2 {
			continue
		}
		key, val := strings.TrimSpace(kv[0]), strings.TrimSpace(kv[1])
		if key == "" || val == "" {
			continue
		}
		headers[key] = val
	}
	if len(headers) == 0 {
		return nil
	}
	return headers
}

func buildTraceExporter(ctx context.Context, log *logger.Logger, cfg OtelConfig) (sdktrace.SpanExporter, error) {
	if endpoint := strings.TrimSpace(cfg.Endpoint); endpoint != "" {
		opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(endpoint)}
		if cfg.Insecure {
			opts = append(opts, otlptracehttp.WithInsecure())
		}
		if len(cfg.Headers) > 0 {
			opts = append(opts, otlptracehttp.WithHeaders(cfg.Headers))
		}
		return otlptracehttp.New(ctx, opts...)
	}
	exp, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, err
	}
	if log != nil {
		log.Warn("otel using stdout exporter (no OTLP endpoint configured)")
	}
	return exp, nil
}
