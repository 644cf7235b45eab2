package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"consultoria_xpto/internal/adapter/persistence/repository"
	"consultoria_xpto/internal/infrastructure/config"
	"consultoria_xpto/internal/infrastructure/metrics"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func fixtureRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	repo := repository.NewEngagementFixtureRepository(repository.FixtureEngagements())
	router, err := NewRouter(config.Config{DeadlineDefaultMaxDays: 30}, repo, metrics.NewRecorder(), zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return router
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestNewRouter_Ping(t *testing.T) {
	w := do(fixtureRouter(t), http.MethodGet, "/v1/ping", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestNewRouter_RejectsNegativeDefault(t *testing.T) {
	repo := repository.NewEngagementFixtureRepository(nil)
	if _, err := NewRouter(config.Config{DeadlineDefaultMaxDays: -1}, repo, metrics.NewRecorder(), zap.NewNop()); err == nil {
		t.Fatalf("expected error for negative default")
	}
}

func TestNewRouter_EngagementFlow(t *testing.T) {
	r := fixtureRouter(t)

	w := do(r, http.MethodPost, "/v1/engagements",
		`{"client_name":"Acme","type":"consulting","tier":"Basic","consultant":"Jane","start_date":"2024-03-01","end_date":"2024-03-15","consulting_value":"10000"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var created map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	id, _ := created["id"].(string)
	if id == "" || created["status"] != "in_progress" {
		t.Fatalf("unexpected created body: %+v", created)
	}

	w = do(r, http.MethodPost, "/v1/engagements/"+id+"/complete", `{"rating":5,"completion_date":"2024-03-11"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var done map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &done); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if done["deadline_met"] != true || done["commission_percent"] != float64(12) || done["commission_value"] != "1200" {
		t.Fatalf("unexpected completion: %+v", done)
	}

	w = do(r, http.MethodPost, "/v1/engagements/"+id+"/pause", "")
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 after completion, got %d", w.Code)
	}

	w = do(r, http.MethodGet, "/v1/engagements?consultant=Jane", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), id) {
		t.Fatalf("expected list to include %s, got %d %s", id, w.Code, w.Body.String())
	}
}

func TestNewRouter_Dashboard(t *testing.T) {
	r := fixtureRouter(t)

	w := do(r, http.MethodGet, "/v1/dashboard/stats?consultant=todos", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var stats map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &stats); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if stats["total_projects"] != float64(len(repository.FixtureEngagements())) {
		t.Fatalf("unexpected stats: %+v", stats)
	}

	w = do(r, http.MethodGet, "/v1/dashboard/breakdown/tier", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	w = do(r, http.MethodGet, "/v1/dashboard/breakdown/region", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestNewRouter_Metrics(t *testing.T) {
	r := fixtureRouter(t)
	do(r, http.MethodGet, "/v1/ping", "")

	w := do(r, http.MethodGet, "/metrics", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `route="/v1/ping"`) {
		t.Fatalf("expected ping to be counted, got %d", w.Code)
	}
}

func TestNewRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("fixture", func(t *testing.T) {
		repo, err := newRepository(ctx, config.Config{DataSource: config.DataSourceFixture}, zap.NewNop())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := repo.(*repository.EngagementFixtureRepository); !ok {
			t.Fatalf("expected fixture repository, got %T", repo)
		}
	})

	t.Run("dynamodb", func(t *testing.T) {
		cfg := config.Config{
			DataSource: config.DataSourceDynamoDB,
			DynamoDB:   config.DynamoDBConfig{Region: "us-east-1", AccessKeyID: "local", SecretAccessKey: "local", TableName: "engagements"},
		}
		repo, err := newRepository(ctx, cfg, zap.NewNop())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := repo.(*repository.EngagementDynamoRepository); !ok {
			t.Fatalf("expected dynamodb repository, got %T", repo)
		}
	})

	t.Run("fallback wraps live", func(t *testing.T) {
		cfg := config.Config{
			DataSource:      config.DataSourceDynamoDB,
			FixtureFallback: true,
			DynamoDB:        config.DynamoDBConfig{Region: "us-east-1", AccessKeyID: "local", SecretAccessKey: "local"},
		}
		repo, err := newRepository(ctx, cfg, zap.NewNop())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := repo.(*repository.FallbackRepository); !ok {
			t.Fatalf("expected fallback repository, got %T", repo)
		}
	})

	t.Run("unknown", func(t *testing.T) {
		if _, err := newRepository(ctx, config.Config{DataSource: "redis"}, zap.NewNop()); err == nil {
			t.Fatalf("expected error")
		}
	})
}
