package observability_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Spencer4792/jwt-pizza-service/internal/observability"
)

func TestMetricsCounters(t *testing.T) {
	metrics := observability.NewMetrics()

	metrics.RecordRequest("/api/order", "POST", 200, 5*time.Millisecond)
	metrics.RecordRequest("/api/order", "POST", 200, 7*time.Millisecond)
	metrics.RecordError("/api/auth", "PUT", "UNAUTHORIZED")

	assert.Equal(t, int64(2), metrics.RequestCount("/api/order", "POST", 200))
	assert.Equal(t, int64(0), metrics.RequestCount("/api/order", "GET", 200))
	assert.Equal(t, int64(1), metrics.ErrorCount("/api/auth", "PUT", "UNAUTHORIZED"))
}

func TestMetricsReset(t *testing.T) {
	metrics := observability.NewMetrics()

	metrics.RecordRequest("/", "GET", 200, time.Millisecond)
	metrics.Reset()

	assert.Equal(t, int64(0), metrics.RequestCount("/", "GET", 200))
}
