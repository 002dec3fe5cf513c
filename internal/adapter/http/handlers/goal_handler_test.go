package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"capitalys/internal/adapter/http/handlers/mocks"
	"capitalys/internal/adapter/http/middleware"
	"capitalys/internal/domain/entities"
	"capitalys/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func authedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.UserIDKey, "user-1")
	})
	return r
}

func testGoal() entities.FinancialGoal {
	now := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	return entities.FinancialGoal{
		ID:               "goal-1",
		UserID:           "user-1",
		AssetType:        "automovel",
		EstimatedValue:   85000,
		AvailableCapital: 25000,
		DesiredTerm:      36,
		UrgencyLevel:     entities.UrgencyMedia,
		IsActive:         true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

const goalPayload = `{"asset_type":"automovel","estimated_value":85000,"available_capital":25000,"desired_term":36,"urgency_level":"media"}`

func TestGoalHandler_SubmitAndAnalyze(t *testing.T) {
	t.Run("resolved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		goals := mocks.NewMockIGoalUseCase(ctrl)
		analysis := mocks.NewMockIGoalAnalysisUseCase(ctrl)
		h := NewGoalHandler(goals, analysis, mocks.NewMockIDecisionUseCase(ctrl))

		analysis.EXPECT().SubmitAndAwait(gomock.Any(), "user-1", gomock.Any()).Return(usecase.GoalAnalysis{
			Status: usecase.AnalysisResolved,
			Goal:   testGoal(),
			Decision: &entities.DecisionResult{
				ID:                  "dec-1",
				GoalID:              "goal-1",
				RecommendedStrategy: entities.StrategyConsorcio,
				Ranking:             []entities.StrategyOption{{Type: "consorcio", Name: "Consórcio"}},
			},
		}, nil)

		r := authedRouter()
		r.POST("/v1/goals/analyze", h.SubmitAndAnalyze)

		req := httptest.NewRequest(http.MethodPost, "/v1/goals/analyze", bytes.NewBufferString(goalPayload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["status"] != "resolvida" {
			t.Fatalf("expected status resolvida, got %v", body["status"])
		}
		if body["decision"] == nil {
			t.Fatal("expected decision in response")
		}
	})

	t.Run("still processing returns 202", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		goals := mocks.NewMockIGoalUseCase(ctrl)
		analysis := mocks.NewMockIGoalAnalysisUseCase(ctrl)
		h := NewGoalHandler(goals, analysis, mocks.NewMockIDecisionUseCase(ctrl))

		analysis.EXPECT().SubmitAndAwait(gomock.Any(), "user-1", gomock.Any()).Return(usecase.GoalAnalysis{
			Status: usecase.AnalysisProcessing,
			Goal:   testGoal(),
		}, nil)

		r := authedRouter()
		r.POST("/v1/goals/analyze", h.SubmitAndAnalyze)

		req := httptest.NewRequest(http.MethodPost, "/v1/goals/analyze", bytes.NewBufferString(goalPayload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusAccepted {
			t.Fatalf("expected 202, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["status"] != "processando" {
			t.Fatalf("expected status processando, got %v", body["status"])
		}
		if _, hasDecision := body["decision"]; hasDecision {
			t.Fatal("expected no decision while processing")
		}
	})

	t.Run("incomplete profile returns 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		goals := mocks.NewMockIGoalUseCase(ctrl)
		analysis := mocks.NewMockIGoalAnalysisUseCase(ctrl)
		h := NewGoalHandler(goals, analysis, mocks.NewMockIDecisionUseCase(ctrl))

		analysis.EXPECT().SubmitAndAwait(gomock.Any(), "user-1", gomock.Any()).
			Return(usecase.GoalAnalysis{}, &usecase.IncompleteProfileError{Missing: []string{"Faixa de renda", "Perfil de risco"}})

		r := authedRouter()
		r.POST("/v1/goals/analyze", h.SubmitAndAnalyze)

		req := httptest.NewRequest(http.MethodPost, "/v1/goals/analyze", bytes.NewBufferString(goalPayload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["code"] != "PROFILE_INCOMPLETE" {
			t.Fatalf("expected PROFILE_INCOMPLETE, got %s", body["code"])
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		goals := mocks.NewMockIGoalUseCase(ctrl)
		analysis := mocks.NewMockIGoalAnalysisUseCase(ctrl)
		h := NewGoalHandler(goals, analysis, mocks.NewMockIDecisionUseCase(ctrl))

		r := authedRouter()
		r.POST("/v1/goals/analyze", h.SubmitAndAnalyze)

		req := httptest.NewRequest(http.MethodPost, "/v1/goals/analyze", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestGoalHandler_GetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		goals := mocks.NewMockIGoalUseCase(ctrl)
		decisions := mocks.NewMockIDecisionUseCase(ctrl)
		h := NewGoalHandler(goals, mocks.NewMockIGoalAnalysisUseCase(ctrl), decisions)

		goals.EXPECT().GetByID(gomock.Any(), "goal-1", "user-1").Return(testGoal(), nil)
		decisions.EXPECT().LatestByGoalID(gomock.Any(), "goal-1").
			Return(&entities.DecisionResult{ID: "dec-1", GoalID: "goal-1", RecommendedStrategy: entities.StrategyConsorcio}, nil)
		decisions.EXPECT().HistoryByGoalID(gomock.Any(), "goal-1").Return(nil, nil)

		r := authedRouter()
		r.GET("/v1/goals/:id", h.GetByID)

		req := httptest.NewRequest(http.MethodGet, "/v1/goals/goal-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["estimated_value_formatted"] != "R$ 85.000,00" {
			t.Fatalf("expected formatted value, got %v", body["estimated_value_formatted"])
		}
		decisionBody, ok := body["decision"].(map[string]any)
		if !ok || decisionBody["id"] != "dec-1" {
			t.Fatalf("expected latest decision in detail, got %v", body["decision"])
		}
	})

	t.Run("decision reads degrade", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		goals := mocks.NewMockIGoalUseCase(ctrl)
		decisions := mocks.NewMockIDecisionUseCase(ctrl)
		h := NewGoalHandler(goals, mocks.NewMockIGoalAnalysisUseCase(ctrl), decisions)

		goals.EXPECT().GetByID(gomock.Any(), "goal-1", "user-1").Return(testGoal(), nil)
		decisions.EXPECT().LatestByGoalID(gomock.Any(), "goal-1").Return(nil, errors.New("table offline"))
		decisions.EXPECT().HistoryByGoalID(gomock.Any(), "goal-1").Return(nil, errors.New("table offline"))

		r := authedRouter()
		r.GET("/v1/goals/:id", h.GetByID)

		req := httptest.NewRequest(http.MethodGet, "/v1/goals/goal-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 despite decision read failures, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if _, hasDecision := body["decision"]; hasDecision {
			t.Fatal("expected decision omitted when the read fails")
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		goals := mocks.NewMockIGoalUseCase(ctrl)
		h := NewGoalHandler(goals, mocks.NewMockIGoalAnalysisUseCase(ctrl), mocks.NewMockIDecisionUseCase(ctrl))

		goals.EXPECT().GetByID(gomock.Any(), "goal-x", "user-1").
			Return(entities.FinancialGoal{}, usecase.ErrGoalNotFound)

		r := authedRouter()
		r.GET("/v1/goals/:id", h.GetByID)

		req := httptest.NewRequest(http.MethodGet, "/v1/goals/goal-x", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestGoalHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	goals := mocks.NewMockIGoalUseCase(ctrl)
	h := NewGoalHandler(goals, mocks.NewMockIGoalAnalysisUseCase(ctrl), mocks.NewMockIDecisionUseCase(ctrl))

	goals.EXPECT().ListByUser(gomock.Any(), "user-1", true, 5).
		Return([]entities.FinancialGoal{testGoal()}, nil)

	r := authedRouter()
	r.GET("/v1/goals", h.List)

	req := httptest.NewRequest(http.MethodGet, "/v1/goals?limit=5", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(body) != 1 {
		t.Fatalf("expected 1 goal, got %d", len(body))
	}
}

func TestGoalHandler_Archive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	goals := mocks.NewMockIGoalUseCase(ctrl)
	h := NewGoalHandler(goals, mocks.NewMockIGoalAnalysisUseCase(ctrl), mocks.NewMockIDecisionUseCase(ctrl))

	archived := testGoal()
	archived.IsActive = false
	goals.EXPECT().Archive(gomock.Any(), "goal-1", "user-1").Return(archived, nil)

	r := authedRouter()
	r.PATCH("/v1/goals/:id/archive", h.Archive)

	req := httptest.NewRequest(http.MethodPatch, "/v1/goals/goal-1/archive", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestGoalHandler_InternalError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	goals := mocks.NewMockIGoalUseCase(ctrl)
	h := NewGoalHandler(goals, mocks.NewMockIGoalAnalysisUseCase(ctrl), mocks.NewMockIDecisionUseCase(ctrl))

	goals.EXPECT().GetByID(gomock.Any(), "goal-1", "user-1").
		Return(entities.FinancialGoal{}, errors.New("transport"))

	r := authedRouter()
	r.GET("/v1/goals/:id", h.GetByID)

	req := httptest.NewRequest(http.MethodGet, "/v1/goals/goal-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}
