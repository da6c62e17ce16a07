package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bevlog/internal/services"
	"bevlog/internal/structures"
	"bevlog/internal/testutil"
)

func newHealthController() (*HealthController, services.TrackerServiceInterface) {
	conf := &structures.Config{
		Tracking: structures.TrackingConfig{EarlyMorningCutover: 8, DefaultLanguage: "en"},
	}
	service := services.NewTrackerService(testutil.NewMockStore(), &testutil.MockLogger{}, conf)
	return NewHealthController(service), service
}

func TestHealth(t *testing.T) {
	hc, service := newHealthController()

	_, err := service.AddLog("Beer", time.Now())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	hc.Health(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var resp healthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 6, resp.Beverages)
	assert.Equal(t, 1, resp.Logs)
	assert.GreaterOrEqual(t, resp.UptimeSeconds, 0.0)
	assert.NotEmpty(t, resp.Uptime)
}

func TestHealth_MethodNotAllowed(t *testing.T) {
	hc, _ := newHealthController()

	req := httptest.NewRequest(http.MethodPost, "/health", nil)
	rr := httptest.NewRecorder()
	hc.Health(rr, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0h0m0s", formatDuration(0))
	assert.Equal(t, "0h1m30s", formatDuration(90*time.Second))
	assert.Equal(t, "25h0m5s", formatDuration(25*time.Hour+5*time.Second))
}
