package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gokatarajesh/trivia-api/internal/config"
	"github.com/gokatarajesh/trivia-api/internal/metrics"
)

var testCORS = config.CORS{
	AllowedOrigins: []string{"*"},
	AllowedMethods: []string{"GET", "PUT", "POST", "DELETE", "OPTIONS"},
	AllowedHeaders: []string{"Content-Type", "Authorization"},
	MaxAge:         600,
}

func okHandler(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}
}

func newTestRouter(t *testing.T, opts Options) http.Handler {
	t.Helper()
	return NewRouter(testCORS, zerolog.Nop(), Handlers{
		Categories: okHandler(`{"route":"categories"}`),
		Questions:  okHandler(`{"route":"questions"}`),
		Question: func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"id":"` + r.PathValue("id") + `"}`))
		},
		CategoryQuestion: okHandler(`{"route":"category questions"}`),
		Quizzes: func(w http.ResponseWriter, r *http.Request) {
			panic("boom")
		},
	}, opts)
}

func serve(h http.Handler, method, target string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRoutesServedWithAndWithoutPrefix(t *testing.T) {
	h := newTestRouter(t, Options{})

	for _, target := range []string{"/categories", "/api/categories"} {
		rec := serve(h, http.MethodGet, target, nil)
		assert.Equal(t, http.StatusOK, rec.Code, target)
		assert.JSONEq(t, `{"route":"categories"}`, rec.Body.String())
	}

	rec := serve(h, http.MethodDelete, "/api/questions/42", nil)
	assert.JSONEq(t, `{"id":"42"}`, rec.Body.String())
}

func TestUnknownRouteIsJSONNotFound(t *testing.T) {
	rec := serve(newTestRouter(t, Options{}), http.MethodGet, "/nope", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":404,"message":"Resources not found"}`, rec.Body.String())
}

func TestCORSHeaders(t *testing.T) {
	rec := serve(newTestRouter(t, Options{}), http.MethodGet, "/questions", map[string]string{"Origin": "http://localhost:3000"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.JSONEq(t, `{"route":"questions"}`, rec.Body.String())
}

func TestCORSPreflight(t *testing.T) {
	h := newTestRouter(t, Options{})

	rec := serve(h, http.MethodOptions, "/questions", map[string]string{
		"Origin":                         "http://localhost:3000",
		"Access-Control-Request-Method":  http.MethodDelete,
		"Access-Control-Request-Headers": "Content-Type",
	})
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, http.MethodDelete, rec.Header().Get("Access-Control-Allow-Methods"))
	assert.True(t, strings.EqualFold("Content-Type", rec.Header().Get("Access-Control-Allow-Headers")))
	assert.Equal(t, "600", rec.Header().Get("Access-Control-Max-Age"))

	rec = serve(h, http.MethodOptions, "/questions", map[string]string{
		"Origin":                        "http://localhost:3000",
		"Access-Control-Request-Method": http.MethodPatch,
	})
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Methods"))
}

func TestCORSExplicitOrigins(t *testing.T) {
	corsCfg := testCORS
	corsCfg.AllowedOrigins = []string{"http://trivia.example"}
	h := NewRouter(corsCfg, zerolog.Nop(), Handlers{Categories: okHandler(`{}`)}, Options{})

	rec := serve(h, http.MethodGet, "/categories", map[string]string{"Origin": "http://trivia.example"})
	assert.Equal(t, "http://trivia.example", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Values("Vary"), "Origin")

	rec = serve(h, http.MethodGet, "/categories", map[string]string{"Origin": "http://evil.example"})
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestPanicBecomesUnprocessable(t *testing.T) {
	rec := serve(newTestRouter(t, Options{}), http.MethodPost, "/quizzes", nil)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Can't be processed", body["message"])
}

func TestRequestIDEchoedOrGenerated(t *testing.T) {
	h := newTestRouter(t, Options{})

	rec := serve(h, http.MethodGet, "/categories", map[string]string{RequestIDHeader: "abc-123"})
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))

	rec = serve(h, http.MethodGet, "/categories", nil)
	assert.Len(t, rec.Header().Get(RequestIDHeader), 36)
}

func TestReadyzChecksDependencies(t *testing.T) {
	healthy := Dependency{Name: "postgres", Ping: func(context.Context) error { return nil }}
	broken := Dependency{Name: "redis", Ping: func(context.Context) error { return errors.New("refused") }}

	rec := serve(newTestRouter(t, Options{Dependencies: []Dependency{healthy}}), http.MethodGet, "/readyz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(newTestRouter(t, Options{Dependencies: []Dependency{healthy, broken}}), http.MethodGet, "/readyz", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = serve(newTestRouter(t, Options{}), http.MethodGet, "/healthz", nil)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestMetricsRecordedPerRoutePattern(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	h := newTestRouter(t, Options{Metrics: m, Gatherer: reg})

	serve(h, http.MethodDelete, "/questions/1", nil)
	serve(h, http.MethodDelete, "/api/questions/2", nil)
	serve(h, http.MethodPost, "/quizzes", nil)

	// Both mount points share one route label.
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Requests.WithLabelValues("/questions/{id}", http.MethodDelete, "200")))

	rec := serve(h, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "trivia_http_requests_total"))
}
