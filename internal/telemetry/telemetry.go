// Package telemetry настраивает трассировку (OTLP/HTTP) и метрики (Prometheus).
package telemetry

import (
	"context"
	"errors"
	"net/http"

	"github.com/RoGogDBD/parcelrate/internal/config"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

type shutdownFunc func(context.Context) error

// Providers содержит активные компоненты телеметрии.
type Providers struct {
	// MetricsHandler равен nil, если метрики выключены.
	MetricsHandler http.Handler
	// Metrics равен nil, если выключены и трейсы, и метрики.
	Metrics   *Metrics
	shutdowns []shutdownFunc
}

// Shutdown останавливает провайдеры и собирает все ошибки.
func (p *Providers) Shutdown(ctx context.Context) error {
	if p == nil {
		return nil
	}
	var errs []error
	for _, shutdown := range p.shutdowns {
		errs = append(errs, shutdown(ctx))
	}
	return errors.Join(errs...)
}

// Middleware создает span на каждый HTTP-запрос.
func Middleware(operation string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return otelhttp.NewHandler(next, operation)
	}
}

// Init регистрирует глобальные провайдеры OpenTelemetry по настройкам cfg.
func Init(ctx context.Context, cfg config.TelemetryConfig) (*Providers, error) {
	p := &Providers{}
	if !cfg.TracesEnabled && !cfg.MetricsEnabled {
		return p, nil
	}

	res, err := resource.New(ctx, resource.WithAttributes(
		attribute.String("service.name", cfg.ServiceName),
		attribute.String("deployment.environment", cfg.Environment),
	))
	if err != nil {
		return nil, err
	}

	if cfg.TracesEnabled {
		tp, err := newTracerProvider(ctx, cfg, res)
		if err != nil {
			return nil, err
		}
		otel.SetTracerProvider(tp)
		p.shutdowns = append(p.shutdowns, tp.Shutdown)
	}

	if cfg.MetricsEnabled {
		mp, handler, err := newMeterProvider(res)
		if err != nil {
			return nil, errors.Join(err, p.Shutdown(ctx))
		}
		otel.SetMeterProvider(mp)
		p.MetricsHandler = handler
		p.shutdowns = append(p.shutdowns, mp.Shutdown)
	}

	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	if p.Metrics, err = NewMetrics(); err != nil {
		return nil, errors.Join(err, p.Shutdown(ctx))
	}
	return p, nil
}

func newTracerProvider(ctx context.Context, cfg config.TelemetryConfig, res *resource.Resource) (*sdktrace.TracerProvider, error) {
	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(cfg.OTLPEndpoint)}
	if cfg.OTLPInsecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.TraceSampleRatio))),
	), nil
}

// newMeterProvider использует отдельный реестр, а не prometheus.DefaultRegisterer,
// чтобы повторная инициализация не падала на дублирующейся регистрации.
func newMeterProvider(res *resource.Resource) (*sdkmetric.MeterProvider, http.Handler, error) {
	registry := prom.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	exporter, err := otelprom.New(otelprom.WithRegisterer(registry))
	if err != nil {
		return nil, nil, err
	}
	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(exporter),
	)
	return mp, promhttp.HandlerFor(registry, promhttp.HandlerOpts{}), nil
}
