package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"pet-clinic-rowstore/internal/middleware"
	"pet-clinic-rowstore/internal/platform/logger"
	"pet-clinic-rowstore/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogging_LevelByStatus(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.Logging(logger.NewZap(zap.New(core))))
	r.Get("/ok", func(w http.ResponseWriter, r *http.Request) {
		middleware.LoggerFrom(r.Context()).Debug("inside handler", nil)
		w.WriteHeader(http.StatusOK)
	})
	r.Get("/boom", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	for _, path := range []string{"/ok", "/boom"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	if n := logs.FilterMessage("inside handler").Len(); n != 1 {
		t.Fatalf("expected handler log, got %d", n)
	}
	errs := logs.FilterMessage("http request").FilterLevelExact(zapcore.ErrorLevel).All()
	if len(errs) != 1 {
		t.Fatalf("expected one error-level request log, got %d", len(errs))
	}
	fields := errs[0].ContextMap()
	if fields["path"] != "/boom" {
		t.Fatalf("unexpected path %v", fields["path"])
	}
	if fields["request_id"] == "" || fields["request_id"] == nil {
		t.Fatal("expected request_id field")
	}
}

func TestMetrics_UsesRoutePattern(t *testing.T) {
	c := metrics.NewCollector("test")

	r := chi.NewRouter()
	r.Use(middleware.Metrics(c))
	r.Get("/pets/{petID}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	for _, id := range []string{"a", "b", "c"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/pets/"+id, nil))
	}

	got := testutil.ToFloat64(c.HTTPRequests.WithLabelValues(http.MethodGet, "/pets/{petID}", "404"))
	if got != 3 {
		t.Fatalf("expected 3 requests on route pattern, got %v", got)
	}
}

func TestMetrics_NilCollectorIsPassThrough(t *testing.T) {
	h := middleware.Metrics(nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusTeapot {
		t.Fatalf("unexpected status %d", rec.Code)
	}
}
