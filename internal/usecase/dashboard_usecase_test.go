package usecase

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"capitalys/internal/domain/entities"
	mock_interfaces "capitalys/internal/usecase/interfaces/mocks"
)

func TestDashboardOverview_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	goals := mock_interfaces.NewMockIGoalRepository(ctrl)
	insights := mock_interfaces.NewMockIInsightRepository(ctrl)
	indicators := mock_interfaces.NewMockIIndicatorRepository(ctrl)

	goals.EXPECT().ListByUser(gomock.Any(), "user-1", true, dashboardGoalLimit).
		Return([]entities.FinancialGoal{carGoal()}, nil)
	insights.EXPECT().Latest(gomock.Any()).
		Return(&entities.Insight{ID: "ins-1", ScenarioLabel: "Selic em queda"}, nil)
	indicators.EXPECT().LatestAnalyses(gomock.Any()).
		Return([]entities.IndicatorAnalysis{{ID: "ia-1", IndicatorType: entities.IndicatorSelic}}, nil)

	uc := NewDashboardUseCase(goals, insights, indicators)

	out, err := uc.Overview(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Goals) != 1 || out.Goals[0].ID != "goal-1" {
		t.Fatalf("unexpected goals: %+v", out.Goals)
	}
	if out.Insight == nil || out.Insight.ID != "ins-1" {
		t.Fatalf("unexpected insight: %+v", out.Insight)
	}
	if len(out.Indicators) != 1 {
		t.Fatalf("unexpected indicators: %+v", out.Indicators)
	}
	if out.Greeting == "" {
		t.Fatal("expected a greeting")
	}
}

func TestDashboardOverview_MarketReadsAreDecorative(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	goals := mock_interfaces.NewMockIGoalRepository(ctrl)
	insights := mock_interfaces.NewMockIInsightRepository(ctrl)
	indicators := mock_interfaces.NewMockIIndicatorRepository(ctrl)

	goals.EXPECT().ListByUser(gomock.Any(), "user-1", true, dashboardGoalLimit).
		Return([]entities.FinancialGoal{}, nil)
	insights.EXPECT().Latest(gomock.Any()).Return(nil, errors.New("table missing"))
	indicators.EXPECT().LatestAnalyses(gomock.Any()).Return(nil, errors.New("table missing"))

	uc := NewDashboardUseCase(goals, insights, indicators)

	out, err := uc.Overview(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("market failures must not break the dashboard, got %v", err)
	}
	if out.Insight != nil || out.Indicators != nil {
		t.Fatalf("expected empty market context, got %+v", out)
	}
}

func TestDashboardOverview_GoalsReadIsFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	goals := mock_interfaces.NewMockIGoalRepository(ctrl)
	insights := mock_interfaces.NewMockIInsightRepository(ctrl)
	indicators := mock_interfaces.NewMockIIndicatorRepository(ctrl)

	goals.EXPECT().ListByUser(gomock.Any(), "user-1", true, dashboardGoalLimit).
		Return(nil, errors.New("transport"))

	uc := NewDashboardUseCase(goals, insights, indicators)

	_, err := uc.Overview(context.Background(), "user-1")
	if err == nil {
		t.Fatal("expected error when goal listing fails")
	}
}
