package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"consultoria_xpto/internal/adapter/http/handlers/mocks"
	"consultoria_xpto/internal/domain/analytics"
	"consultoria_xpto/internal/domain/entities"
	"consultoria_xpto/internal/usecase"
	"consultoria_xpto/pkg"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func engagementRouter(h *EngagementHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/engagements", h.ListEngagements)
	r.POST("/v1/engagements", h.CreateEngagement)
	r.GET("/v1/engagements/:id", h.GetEngagement)
	r.PATCH("/v1/engagements/:id", h.UpdateEngagement)
	r.DELETE("/v1/engagements/:id", h.DeleteEngagement)
	r.POST("/v1/engagements/:id/pause", h.PauseEngagement)
	r.POST("/v1/engagements/:id/resume", h.ResumeEngagement)
	r.POST("/v1/engagements/:id/complete", h.CompleteEngagement)
	r.POST("/v1/engagements/:id/cancel", h.CancelEngagement)
	return r
}

func serve(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sampleEngagement() entities.Engagement {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return entities.Engagement{
		ID:              "eng-1",
		ClientName:      "Acme",
		Type:            entities.EngagementTypeConsulting,
		Tier:            entities.TierPro,
		StartDate:       time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		ConsultingValue: decimal.NewFromInt(15000),
		Status:          entities.EngagementStatusInProgress,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) pkg.HTTPError {
	t.Helper()
	var body pkg.HTTPError
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body: %v", err)
	}
	return body
}

func TestEngagementHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("passes the filter through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIEngagementUseCase(ctrl)
		r := engagementRouter(NewEngagementHandler(uc, nil))

		uc.EXPECT().List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, f analytics.FilterSpec) ([]entities.Engagement, error) {
				if f.Consultant != "Jane" || f.From == nil || f.From.Day() != 5 || f.To != nil {
					t.Fatalf("unexpected filter: %+v", f)
				}
				return []entities.Engagement{sampleEngagement()}, nil
			})

		w := serve(r, http.MethodGet, "/v1/engagements?consultant=Jane&from=2024-01-05", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil || len(got) != 1 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if got[0]["consulting_value"] != "15000" || got[0]["rating"] != nil {
			t.Fatalf("unexpected item: %+v", got[0])
		}
	})

	t.Run("bad date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIEngagementUseCase(ctrl)
		r := engagementRouter(NewEngagementHandler(uc, nil))

		w := serve(r, http.MethodGet, "/v1/engagements?to=31-01-2024", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Code != "INVALID_REQUEST" || body.Details == "" {
			t.Fatalf("unexpected error body: %+v", body)
		}
	})

	t.Run("repository failure is 500 without details", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIEngagementUseCase(ctrl)
		r := engagementRouter(NewEngagementHandler(uc, nil))
		uc.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, errors.New("dynamodb down"))

		w := serve(r, http.MethodGet, "/v1/engagements", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Details != "" {
			t.Fatalf("expected hidden details, got %+v", body)
		}
	})
}

func TestEngagementHandler_Get(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name string
		err  error
		code int
	}{
		{"found", nil, http.StatusOK},
		{"not found", usecase.ErrEngagementNotFound, http.StatusNotFound},
		{"invalid id", usecase.ErrInvalidEngagementID, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIEngagementUseCase(ctrl)
			r := engagementRouter(NewEngagementHandler(uc, nil))

			ret := sampleEngagement()
			if tc.err != nil {
				ret = entities.Engagement{}
			}
			uc.EXPECT().GetByID(gomock.Any(), "eng-1").Return(ret, tc.err)

			w := serve(r, http.MethodGet, "/v1/engagements/eng-1", "")
			if w.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, w.Code)
			}
		})
	}
}

func TestEngagementHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIEngagementUseCase(ctrl)
		r := engagementRouter(NewEngagementHandler(uc, nil))

		w := serve(r, http.MethodPost, "/v1/engagements", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing required field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIEngagementUseCase(ctrl)
		r := engagementRouter(NewEngagementHandler(uc, nil))

		w := serve(r, http.MethodPost, "/v1/engagements", `{"type":"consulting","tier":"Pro","start_date":"2024-03-01"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIEngagementUseCase(ctrl)
		r := engagementRouter(NewEngagementHandler(uc, nil))

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, cmd usecase.NewEngagement) (entities.Engagement, error) {
				if cmd.ClientName != "Acme" || !cmd.ConsultingValue.Equal(decimal.RequireFromString("15000.25")) {
					t.Fatalf("unexpected command: %+v", cmd)
				}
				return sampleEngagement(), nil
			})

		w := serve(r, http.MethodPost, "/v1/engagements",
			`{"client_name":"Acme","type":"consulting","tier":"Pro","start_date":"2024-03-01","end_date":"2024-04-01","consulting_value":"15000.25"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("use case validation error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIEngagementUseCase(ctrl)
		r := engagementRouter(NewEngagementHandler(uc, nil))
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(entities.Engagement{}, entities.NewValidationError("type", "must be consulting or upsell"))

		w := serve(r, http.MethodPost, "/v1/engagements",
			`{"client_name":"Acme","type":"audit","tier":"Pro","start_date":"2024-03-01"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestEngagementHandler_UpdateAndDelete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("closed engagement", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIEngagementUseCase(ctrl)
		r := engagementRouter(NewEngagementHandler(uc, nil))
		uc.EXPECT().Update(gomock.Any(), "eng-1", gomock.Any()).Return(entities.Engagement{}, usecase.ErrEngagementClosed)

		w := serve(r, http.MethodPatch, "/v1/engagements/eng-1", `{"client_name":"Acme Ltd"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("updated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIEngagementUseCase(ctrl)
		r := engagementRouter(NewEngagementHandler(uc, nil))
		uc.EXPECT().Update(gomock.Any(), "eng-1", gomock.Any()).
			DoAndReturn(func(_ any, _ string, ch usecase.EngagementChanges) (entities.Engagement, error) {
				if ch.ClientName == nil || *ch.ClientName != "Acme Ltd" || ch.Tier != nil {
					t.Fatalf("unexpected changes: %+v", ch)
				}
				return sampleEngagement(), nil
			})

		w := serve(r, http.MethodPatch, "/v1/engagements/eng-1", `{"client_name":"Acme Ltd"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("deleted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIEngagementUseCase(ctrl)
		r := engagementRouter(NewEngagementHandler(uc, nil))
		uc.EXPECT().Delete(gomock.Any(), "eng-1").Return(nil)

		w := serve(r, http.MethodDelete, "/v1/engagements/eng-1", "")
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestEngagementHandler_Lifecycle(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("pause", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIEngagementUseCase(ctrl)
		r := engagementRouter(NewEngagementHandler(uc, nil))
		paused := sampleEngagement()
		paused.Status = entities.EngagementStatusPaused
		uc.EXPECT().Pause(gomock.Any(), "eng-1").Return(paused, nil)

		w := serve(r, http.MethodPost, "/v1/engagements/eng-1/pause", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("resume from wrong state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIEngagementUseCase(ctrl)
		r := engagementRouter(NewEngagementHandler(uc, nil))
		uc.EXPECT().Resume(gomock.Any(), "eng-1").Return(entities.Engagement{}, usecase.ErrInvalidTransition)

		w := serve(r, http.MethodPost, "/v1/engagements/eng-1/resume", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Code != "INVALID_TRANSITION" {
			t.Fatalf("unexpected error body: %+v", body)
		}
	})

	t.Run("cancel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIEngagementUseCase(ctrl)
		r := engagementRouter(NewEngagementHandler(uc, nil))
		uc.EXPECT().Cancel(gomock.Any(), "eng-1").Return(sampleEngagement(), nil)

		w := serve(r, http.MethodPost, "/v1/engagements/eng-1/cancel", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("complete with rating", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIEngagementUseCase(ctrl)
		r := engagementRouter(NewEngagementHandler(uc, nil))

		uc.EXPECT().Complete(gomock.Any(), "eng-1", gomock.Any()).
			DoAndReturn(func(_ any, _ string, cmd usecase.CompleteEngagement) (entities.Engagement, error) {
				if v, ok := cmd.Rating.Value(); !ok || v != 5 {
					t.Fatalf("unexpected rating: %v", cmd.Rating)
				}
				if cmd.CompletionDate == nil || cmd.CompletionDate.Day() != 20 {
					t.Fatalf("unexpected completion date: %v", cmd.CompletionDate)
				}
				done := sampleEngagement()
				done.Status = entities.EngagementStatusCompleted
				done.Rating = cmd.Rating
				done.CommissionPercent = 12
				done.CommissionValue = decimal.NewFromInt(1800)
				return done, nil
			})

		w := serve(r, http.MethodPost, "/v1/engagements/eng-1/complete", `{"rating":5,"completion_date":"2024-03-20"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var got map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if got["commission_value"] != "1800" || got["rating"] != float64(5) {
			t.Fatalf("unexpected body: %+v", got)
		}
	})

	t.Run("complete without body is unrated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIEngagementUseCase(ctrl)
		r := engagementRouter(NewEngagementHandler(uc, nil))
		uc.EXPECT().Complete(gomock.Any(), "eng-1", gomock.Any()).
			DoAndReturn(func(_ any, _ string, cmd usecase.CompleteEngagement) (entities.Engagement, error) {
				if cmd.Rating.IsSet() {
					t.Fatalf("expected no rating")
				}
				return sampleEngagement(), nil
			})

		w := serve(r, http.MethodPost, "/v1/engagements/eng-1/complete", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("complete with out of range rating", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIEngagementUseCase(ctrl)
		r := engagementRouter(NewEngagementHandler(uc, nil))

		w := serve(r, http.MethodPost, "/v1/engagements/eng-1/complete", `{"rating":7}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
