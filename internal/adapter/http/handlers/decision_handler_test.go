package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"capitalys/internal/adapter/http/handlers/mocks"
	"capitalys/internal/domain/entities"
	"capitalys/internal/usecase"

	"go.uber.org/mock/gomock"
)

func testDecision() *entities.DecisionResult {
	return &entities.DecisionResult{
		ID:                  "dec-1",
		GoalID:              "goal-1",
		RecommendedStrategy: entities.StrategyConsorcio,
		Ranking: []entities.StrategyOption{
			{Type: entities.StrategyConsorcio, Name: "Consórcio", Score: 85},
			{Type: entities.StrategyRendaFixa, Name: "Renda Fixa", Score: 78},
		},
		Explanation:      "Explicação",
		ExplanationTitle: "Por que Consórcio?",
		AnalysisDate:     time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC),
		CreatedAt:        time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC),
	}
}

func TestDecisionHandler_GetLatest(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		goals := mocks.NewMockIGoalUseCase(ctrl)
		decisions := mocks.NewMockIDecisionUseCase(ctrl)
		h := NewDecisionHandler(goals, decisions)

		goals.EXPECT().GetByID(gomock.Any(), "goal-1", "user-1").Return(testGoal(), nil)
		decisions.EXPECT().LatestByGoalID(gomock.Any(), "goal-1").Return(testDecision(), nil)

		r := authedRouter()
		r.GET("/v1/goals/:id/decision", h.GetLatest)

		req := httptest.NewRequest(http.MethodGet, "/v1/goals/goal-1/decision", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["recommended_strategy_label"] != "Consórcio" {
			t.Fatalf("expected strategy label, got %v", body["recommended_strategy_label"])
		}
		ranking, ok := body["ranking"].([]any)
		if !ok || len(ranking) != 2 {
			t.Fatalf("expected 2 ranked strategies, got %v", body["ranking"])
		}
	})

	t.Run("analysis still pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		goals := mocks.NewMockIGoalUseCase(ctrl)
		decisions := mocks.NewMockIDecisionUseCase(ctrl)
		h := NewDecisionHandler(goals, decisions)

		goals.EXPECT().GetByID(gomock.Any(), "goal-1", "user-1").Return(testGoal(), nil)
		decisions.EXPECT().LatestByGoalID(gomock.Any(), "goal-1").Return(nil, nil)

		r := authedRouter()
		r.GET("/v1/goals/:id/decision", h.GetLatest)

		req := httptest.NewRequest(http.MethodGet, "/v1/goals/goal-1/decision", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["code"] != "DECISION_NOT_FOUND" {
			t.Fatalf("expected DECISION_NOT_FOUND, got %v", body["code"])
		}
	})

	t.Run("foreign goal resolves not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		goals := mocks.NewMockIGoalUseCase(ctrl)
		decisions := mocks.NewMockIDecisionUseCase(ctrl)
		h := NewDecisionHandler(goals, decisions)

		goals.EXPECT().GetByID(gomock.Any(), "goal-9", "user-1").
			Return(entities.FinancialGoal{}, usecase.ErrGoalNotFound)

		r := authedRouter()
		r.GET("/v1/goals/:id/decision", h.GetLatest)

		req := httptest.NewRequest(http.MethodGet, "/v1/goals/goal-9/decision", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestDecisionHandler_GetHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	goals := mocks.NewMockIGoalUseCase(ctrl)
	decisions := mocks.NewMockIDecisionUseCase(ctrl)
	h := NewDecisionHandler(goals, decisions)

	selic := 13.25
	goals.EXPECT().GetByID(gomock.Any(), "goal-1", "user-1").Return(testGoal(), nil)
	decisions.EXPECT().HistoryByGoalID(gomock.Any(), "goal-1").Return([]entities.DecisionHistory{
		{
			ID:                "hist-1",
			GoalID:            "goal-1",
			PreviousStrategy:  entities.StrategyRendaFixa,
			NewStrategy:       entities.StrategyConsorcio,
			IndicatorChanged:  string(entities.IndicatorSelic),
			NewIndicatorValue: &selic,
			Reason:            "reavaliação periódica",
			ChangedAt:         time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC),
		},
	}, nil)

	r := authedRouter()
	r.GET("/v1/goals/:id/history", h.GetHistory)

	req := httptest.NewRequest(http.MethodGet, "/v1/goals/goal-1/history", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	var body []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(body) != 1 {
		t.Fatalf("expected 1 history entry, got %d", len(body))
	}
	if body[0]["new_strategy"] != entities.StrategyConsorcio {
		t.Fatalf("unexpected new strategy %v", body[0]["new_strategy"])
	}
}
