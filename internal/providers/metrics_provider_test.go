package providers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"bevlog/internal/structures"
)

type stubStatsSource struct {
	beverages int
	logs      int
}

func (s *stubStatsSource) BeverageCount() int { return s.beverages }
func (s *stubStatsSource) LogCount() int      { return s.logs }

func TestHttpStatusBucket(t *testing.T) {
	assert.Equal(t, "1xx", httpStatusBucket(100))
	assert.Equal(t, "2xx", httpStatusBucket(201))
	assert.Equal(t, "3xx", httpStatusBucket(302))
	assert.Equal(t, "4xx", httpStatusBucket(404))
	assert.Equal(t, "5xx", httpStatusBucket(500))
}

func TestNewMetricsProvider_DisabledReturnsNoop(t *testing.T) {
	conf := &structures.Config{Metrics: structures.MetricsConfig{Enabled: false}}
	m := NewMetricsProvider(conf, &stubStatsSource{})
	assert.IsType(t, &noopMetrics{}, m)

	// noop must accept every call without side effects
	m.IncRequestsTotal("/logs", 201)
	m.ObserveRequestDuration("/logs", time.Millisecond)
	m.IncCacheHits()
	m.IncCacheMisses()
	m.ObservePersistenceDuration(time.Millisecond)
}

// Constructed once per test binary: promauto registers collectors in the
// default registry and a second construction would panic.
func TestNewMetricsProvider_Enabled(t *testing.T) {
	conf := &structures.Config{Metrics: structures.MetricsConfig{Enabled: true}}
	m := NewMetricsProvider(conf, &stubStatsSource{beverages: 6, logs: 2})
	assert.IsType(t, &MetricsProvider{}, m)

	m.IncRequestsTotal("/stats", 200)
	m.ObserveRequestDuration("/stats", 5*time.Millisecond)
	m.IncCacheHits()
	m.IncCacheMisses()
	m.ObservePersistenceDuration(2 * time.Millisecond)
}
