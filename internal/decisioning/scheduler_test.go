package decisioning

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"capitalys/internal/domain/entities"
	mock_interfaces "capitalys/internal/usecase/interfaces/mocks"
)

type schedulerDeps struct {
	workerDeps *workerDeps
	goals      *mock_interfaces.MockIGoalRepository
	history    *mock_interfaces.MockIDecisionHistoryRepository
}

func newSchedulerDeps(t *testing.T) (*schedulerDeps, *gomock.Controller) {
	wd, ctrl := newWorkerDeps(t)
	return &schedulerDeps{
		workerDeps: wd,
		goals:      mock_interfaces.NewMockIGoalRepository(ctrl),
		history:    mock_interfaces.NewMockIDecisionHistoryRepository(ctrl),
	}, ctrl
}

func (d *schedulerDeps) scheduler() *Scheduler {
	return NewScheduler(
		d.workerDeps.worker(0),
		d.goals,
		d.workerDeps.decisions,
		d.history,
		d.workerDeps.indicators,
		"@every 30m",
		zerolog.Nop(),
	)
}

func TestSchedulerRecordsStrategyTransition(t *testing.T) {
	deps, ctrl := newSchedulerDeps(t)
	defer ctrl.Finish()
	wd := deps.workerDeps

	goal := carGoal(entities.UrgencyMedia)
	deps.goals.EXPECT().ListActive(gomock.Any()).Return([]entities.FinancialGoal{goal}, nil)

	// Previous run recommended fixed income; the engine now picks
	// consorcio for this goal, so a transition must be logged.
	wd.decisions.EXPECT().LatestByGoalID(gomock.Any(), "goal-1").
		Return(&entities.DecisionResult{ID: "dec-0", GoalID: "goal-1", RecommendedStrategy: entities.StrategyRendaFixa}, nil)

	wd.profiles.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(entities.FinancialProfile{}, nil)
	wd.indicators.EXPECT().LatestByType(gomock.Any(), entities.IndicatorSelic).
		Return(&entities.EconomicIndicator{IndicatorType: entities.IndicatorSelic, Value: 13.25}, nil).
		Times(2)
	wd.decisions.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, d entities.DecisionResult, _ json.RawMessage) (entities.DecisionResult, error) {
			return d, nil
		})

	deps.history.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, h entities.DecisionHistory) (entities.DecisionHistory, error) {
			assert.Equal(t, "goal-1", h.GoalID)
			assert.Equal(t, entities.StrategyRendaFixa, h.PreviousStrategy)
			assert.Equal(t, entities.StrategyConsorcio, h.NewStrategy)
			assert.Equal(t, string(entities.IndicatorSelic), h.IndicatorChanged)
			require.NotNil(t, h.NewIndicatorValue)
			assert.InDelta(t, 13.25, *h.NewIndicatorValue, 0.001)
			assert.False(t, h.ChangedAt.IsZero())
			return h, nil
		})

	deps.scheduler().ReevaluateAll(context.Background())
}

func TestSchedulerSkipsUnchangedRecommendation(t *testing.T) {
	deps, ctrl := newSchedulerDeps(t)
	defer ctrl.Finish()
	wd := deps.workerDeps

	goal := carGoal(entities.UrgencyMedia)
	deps.goals.EXPECT().ListActive(gomock.Any()).Return([]entities.FinancialGoal{goal}, nil)

	wd.decisions.EXPECT().LatestByGoalID(gomock.Any(), "goal-1").
		Return(&entities.DecisionResult{ID: "dec-0", GoalID: "goal-1", RecommendedStrategy: entities.StrategyConsorcio}, nil)
	wd.profiles.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(entities.FinancialProfile{}, nil)
	wd.indicators.EXPECT().LatestByType(gomock.Any(), entities.IndicatorSelic).Return(nil, nil)
	wd.decisions.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, d entities.DecisionResult, _ json.RawMessage) (entities.DecisionResult, error) {
			return d, nil
		})
	// No history expectation: same strategy means no transition row.

	deps.scheduler().ReevaluateAll(context.Background())
}

func TestSchedulerSkipsNeverAnalyzedGoals(t *testing.T) {
	deps, ctrl := newSchedulerDeps(t)
	defer ctrl.Finish()
	wd := deps.workerDeps

	deps.goals.EXPECT().ListActive(gomock.Any()).
		Return([]entities.FinancialGoal{carGoal(entities.UrgencyMedia)}, nil)
	wd.decisions.EXPECT().LatestByGoalID(gomock.Any(), "goal-1").Return(nil, nil)
	// No Create expectation: goals without a first decision are left to
	// the worker's own event path.

	deps.scheduler().ReevaluateAll(context.Background())
}
