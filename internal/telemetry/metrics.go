package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/RoGogDBD/parcelrate"

// Metrics содержит доменные инструменты метрик.
// Нулевой указатель допустим: все методы становятся no-op.
type Metrics struct {
	quotes        metric.Int64Counter
	quoteTotal    metric.Float64Histogram
	packages      metric.Int64Counter
	kafkaMessages metric.Int64Counter
	cacheLookups  metric.Int64Counter
}

// NewMetrics регистрирует инструменты в глобальном MeterProvider.
func NewMetrics() (*Metrics, error) {
	meter := otel.Meter(instrumentationName)

	quotes, err := meter.Int64Counter("parcelrate_quotes_total",
		metric.WithDescription("Number of computed shipping quotes"))
	if err != nil {
		return nil, err
	}
	quoteTotal, err := meter.Float64Histogram("parcelrate_quote_amount",
		metric.WithDescription("Computed shipping price"))
	if err != nil {
		return nil, err
	}
	packages, err := meter.Int64Counter("parcelrate_packages_registered_total",
		metric.WithDescription("Number of registered packages"))
	if err != nil {
		return nil, err
	}
	kafkaMessages, err := meter.Int64Counter("parcelrate_kafka_messages_total",
		metric.WithDescription("Consumed package messages by outcome"))
	if err != nil {
		return nil, err
	}
	cacheLookups, err := meter.Int64Counter("parcelrate_tier_cache_lookups_total",
		metric.WithDescription("Tier cache lookups by result"))
	if err != nil {
		return nil, err
	}

	return &Metrics{
		quotes:        quotes,
		quoteTotal:    quoteTotal,
		packages:      packages,
		kafkaMessages: kafkaMessages,
		cacheLookups:  cacheLookups,
	}, nil
}

func (m *Metrics) QuoteComputed(ctx context.Context, tierName string, total float64) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("tier", tierName))
	m.quotes.Add(ctx, 1, attrs)
	m.quoteTotal.Record(ctx, total, attrs)
}

func (m *Metrics) PackageRegistered(ctx context.Context, source string) {
	if m == nil {
		return
	}
	m.packages.Add(ctx, 1, metric.WithAttributes(attribute.String("source", source)))
}

// KafkaMessage учитывает сообщение с исходом processed, retried или dlq.
func (m *Metrics) KafkaMessage(ctx context.Context, outcome string) {
	if m == nil {
		return
	}
	m.kafkaMessages.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

func (m *Metrics) CacheLookup(ctx context.Context, hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cacheLookups.Add(ctx, 1, metric.WithAttributes(attribute.String("result", result)))
}
