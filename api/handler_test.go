package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
)

type errorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newTestApp(t *testing.T) (*fiber.App, *SimulationMetrics, *prometheus.Registry) {
	t.Helper()
	cfg, err := config.Load(t.TempDir())
	require.NoError(t, err)

	registry := prometheus.NewRegistry()
	metrics := NewSimulationMetrics(registry)

	app := fiber.New()
	SetupRoutes(app, NewSchedulerHandlerImpl(cfg, metrics), registry, nil)
	return app, metrics, registry
}

func post(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

const fcfsBody = `{
	"algorithm": "FCFS",
	"processes": [
		{"id": "P1", "arrival": 0, "burst": 3},
		{"id": "P2", "arrival": 2, "burst": 2},
		{"id": "P3", "arrival": 4, "burst": 1}
	]
}`

func TestSimulateEndpoint(t *testing.T) {
	app, metrics, _ := newTestApp(t)

	resp := post(t, app, "/api/v1/simulate", fcfsBody)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	out := decode[responses.SimulationResponse](t, resp)
	assert.Equal(t, []responses.ExecutionSegment{
		{ProcessID: "P1", Start: 0, End: 3},
		{ProcessID: "P2", Start: 3, End: 5},
		{ProcessID: "P3", Start: 5, End: 6},
	}, out.Gantt)
	assert.Equal(t, 6, out.Metrics.Makespan)

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.simulations.WithLabelValues("FCFS", "ok")))
}

func TestAlgorithmEndpointOverridesBodyTag(t *testing.T) {
	app, _, _ := newTestApp(t)

	resp := post(t, app, "/api/v1/rr", `{
		"algorithm": "FCFS",
		"quantum": 2,
		"processes": [
			{"id": "P1", "arrival": 0, "burst": 5},
			{"id": "P2", "arrival": 1, "burst": 3},
			{"id": "P3", "arrival": 2, "burst": 1}
		]
	}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	out := decode[responses.SimulationResponse](t, resp)
	require.Len(t, out.Gantt, 6)
	assert.Equal(t, responses.ExecutionSegment{ProcessID: "P1", Start: 0, End: 2}, out.Gantt[0])
}

func TestSimulateClientErrors(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		body    string
		message string
	}{
		{
			name:    "unsupported algorithm",
			path:    "/api/v1/simulate",
			body:    `{"algorithm": "LOTTERY", "processes": [{"id": "P1", "arrival": 0, "burst": 1}]}`,
			message: "unsupported algorithm",
		},
		{
			name:    "invalid quantum",
			path:    "/api/v1/rr",
			body:    `{"quantum": 0, "processes": [{"id": "P1", "arrival": 0, "burst": 1}]}`,
			message: "quantum must be a positive integer",
		},
		{
			name:    "malformed json",
			path:    "/api/v1/simulate",
			body:    `{"algorithm": `,
			message: "invalid request format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _, _ := newTestApp(t)
			resp := post(t, app, tt.path, tt.body)
			require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

			envelope := decode[errorEnvelope](t, resp)
			assert.Equal(t, codeBadRequest, envelope.Error.Code)
			assert.Contains(t, envelope.Error.Message, tt.message)
		})
	}
}

func TestRejectedSimulationsAreCounted(t *testing.T) {
	app, metrics, _ := newTestApp(t)
	resp := post(t, app, "/api/v1/simulate", `{"algorithm": "LOTTERY", "processes": []}`)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.simulations.WithLabelValues("unknown", "rejected")))
}

func TestAllAlgorithmsEndpoint(t *testing.T) {
	app, _, _ := newTestApp(t)

	resp := post(t, app, "/api/v1/all", fcfsBody)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	out := decode[map[requests.Algorithm]responses.SimulationResponse](t, resp)
	require.Len(t, out, len(requests.Algorithms()))
	for algorithm, result := range out {
		assert.Len(t, result.PerProcess, 3, "%s", algorithm)
		assert.Equal(t, 6, result.Metrics.Makespan, "%s keeps the CPU busy until 6", algorithm)
	}
}

func TestEmptyProcessListReturnsZeroMetrics(t *testing.T) {
	app, _, _ := newTestApp(t)

	resp := post(t, app, "/api/v1/simulate", `{"algorithm": "MLFQ", "processes": []}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	out := decode[responses.SimulationResponse](t, resp)
	assert.Empty(t, out.Gantt)
	assert.Empty(t, out.PerProcess)
	assert.Zero(t, out.Metrics.Makespan)
	assert.Zero(t, out.Metrics.Throughput)
}

func TestHealthAndMetricsEndpoints(t *testing.T) {
	app, _, _ := newTestApp(t)
	post(t, app, "/api/v1/simulate", fcfsBody).Body.Close()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `scheduler_simulations_total{algorithm="FCFS",outcome="ok"} 1`)
}

func TestRateLimitedRoutes(t *testing.T) {
	cfg, err := config.Load(t.TempDir())
	require.NoError(t, err)

	app := fiber.New()
	SetupRoutes(app, NewSchedulerHandlerImpl(cfg, nil), nil, NewClientLimiter(0.001, 1))

	resp := post(t, app, "/api/v1/simulate", fcfsBody)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = post(t, app, "/api/v1/simulate", fcfsBody)
	require.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
	body := decode[errorEnvelope](t, resp)
	assert.Equal(t, "RATE_LIMITED", body.Error.Code)

	health, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, health.StatusCode)
}

func TestClientLimiterIsPerClient(t *testing.T) {
	limiter := NewClientLimiter(0.001, 1)
	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.False(t, limiter.Allow("10.0.0.1"))
	assert.True(t, limiter.Allow("10.0.0.2"))
}
