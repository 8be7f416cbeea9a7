package telemetry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/RoGogDBD/parcelrate/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDisabled(t *testing.T) {
	p, err := Init(context.Background(), config.TelemetryConfig{})
	require.NoError(t, err)
	assert.Nil(t, p.MetricsHandler)
	assert.Nil(t, p.Metrics)
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestNilMetricsAreNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.QuoteComputed(context.Background(), "standard", 100)
		m.PackageRegistered(context.Background(), "http")
		m.KafkaMessage(context.Background(), "dlq")
		m.CacheLookup(context.Background(), true)
	})
}

func TestMetricsEndpoint(t *testing.T) {
	p, err := Init(context.Background(), config.TelemetryConfig{
		ServiceName:      "parcelrate-test",
		MetricsEnabled:   true,
		TraceSampleRatio: 1,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Shutdown(context.Background()) })

	require.NotNil(t, p.Metrics)
	p.Metrics.QuoteComputed(context.Background(), "standard", 17000)

	rr := httptest.NewRecorder()
	p.MetricsHandler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "parcelrate_quotes_total")
}
