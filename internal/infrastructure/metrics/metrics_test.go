package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"consultoria_xpto/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
)

func TestRecorder_Engagements(t *testing.T) {
	r := NewRecorder()

	r.ObserveCompletion(entities.Engagement{Tier: "Pro", DeadlineMet: true, CommissionPercent: 12, CommissionValue: decimal.NewFromInt(1200)})
	r.ObserveCompletion(entities.Engagement{Tier: "Pro", DeadlineMet: true, CommissionPercent: 12, CommissionValue: decimal.NewFromInt(300)})
	r.ObserveCancellation(entities.Engagement{Tier: "Basic"})

	if got := testutil.ToFloat64(r.completions.WithLabelValues("Pro", "true")); got != 2 {
		t.Fatalf("expected 2 completions, got %v", got)
	}
	if got := testutil.ToFloat64(r.commission.WithLabelValues("12")); got != 1500 {
		t.Fatalf("expected commission 1500, got %v", got)
	}
	if got := testutil.ToFloat64(r.cancellations.WithLabelValues("Basic")); got != 1 {
		t.Fatalf("expected 1 cancellation, got %v", got)
	}
}

func TestRecorder_NilIsNoop(t *testing.T) {
	var r *Recorder
	r.ObserveCompletion(entities.Engagement{})
	r.ObserveCancellation(entities.Engagement{})
}

func TestRecorder_GinMiddlewareAndHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRecorder()

	router := gin.New()
	router.Use(r.GinMiddleware())
	router.GET("/v1/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	router.GET("/metrics", gin.WrapH(r.Handler()))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := testutil.ToFloat64(r.httpRequests.WithLabelValues("/v1/ping", "GET", "200")); got != 1 {
		t.Fatalf("expected 1 request, got %v", got)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if !strings.Contains(w.Body.String(), "consultoria_http_requests_total") {
		t.Fatalf("expected exposition to include request counter")
	}
}
