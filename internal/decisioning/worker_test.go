package decisioning

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"capitalys/internal/domain/entities"
	"capitalys/internal/events"
	mock_interfaces "capitalys/internal/usecase/interfaces/mocks"
)

type workerDeps struct {
	bus        *events.Bus
	feed       *events.DecisionFeed
	decisions  *mock_interfaces.MockIDecisionResultRepository
	profiles   *mock_interfaces.MockIFinancialProfileRepository
	indicators *mock_interfaces.MockIIndicatorRepository
}

func newWorkerDeps(t *testing.T) (*workerDeps, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	bus := events.NewBus(zerolog.Nop())
	return &workerDeps{
		bus:        bus,
		feed:       events.NewDecisionFeed(bus),
		decisions:  mock_interfaces.NewMockIDecisionResultRepository(ctrl),
		profiles:   mock_interfaces.NewMockIFinancialProfileRepository(ctrl),
		indicators: mock_interfaces.NewMockIIndicatorRepository(ctrl),
	}, ctrl
}

func (d *workerDeps) worker(delay time.Duration) *Worker {
	return NewWorker(d.bus, d.feed, NewEngine(), d.decisions, d.profiles, d.indicators, delay, zerolog.Nop())
}

func TestWorkerAnalyzePersistsAndAnnounces(t *testing.T) {
	deps, ctrl := newWorkerDeps(t)
	defer ctrl.Finish()

	goal := carGoal(entities.UrgencyMedia)
	deps.profiles.EXPECT().GetByUserID(gomock.Any(), "user-1").
		Return(entities.FinancialProfile{RiskProfile: entities.RiskModerado}, nil)
	deps.indicators.EXPECT().LatestByType(gomock.Any(), entities.IndicatorSelic).
		Return(&entities.EconomicIndicator{IndicatorType: entities.IndicatorSelic, Value: 13.25}, nil)
	deps.decisions.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, d entities.DecisionResult, rankingRaw json.RawMessage) (entities.DecisionResult, error) {
			require.NotEmpty(t, d.ID)
			require.Equal(t, "goal-1", d.GoalID)

			var ranking []StrategyScore
			require.NoError(t, json.Unmarshal(rankingRaw, &ranking))
			require.Len(t, ranking, 3)
			assert.Positive(t, ranking[0].TotalCost)

			d.Ranking = entities.NormalizeRanking(rankingRaw)
			return d, nil
		})

	resultCh, cancel := deps.feed.Subscribe("goal-1")
	defer cancel()

	saved, err := deps.worker(0).Analyze(context.Background(), goal)
	require.NoError(t, err)
	assert.Equal(t, entities.StrategyConsorcio, saved.RecommendedStrategy)
	assert.NotEmpty(t, saved.Explanation)

	select {
	case announced := <-resultCh:
		require.NotNil(t, announced)
		assert.Equal(t, saved.ID, announced.ID)
	case <-time.After(time.Second):
		t.Fatal("expected decision announcement on the feed")
	}
}

func TestWorkerRunProcessesGoalEvents(t *testing.T) {
	deps, ctrl := newWorkerDeps(t)
	defer ctrl.Finish()

	deps.profiles.EXPECT().GetByUserID(gomock.Any(), "user-1").
		Return(entities.FinancialProfile{}, nil)
	deps.indicators.EXPECT().LatestByType(gomock.Any(), entities.IndicatorSelic).
		Return(nil, nil)
	deps.decisions.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, d entities.DecisionResult, rankingRaw json.RawMessage) (entities.DecisionResult, error) {
			d.Ranking = entities.NormalizeRanking(rankingRaw)
			return d, nil
		})

	ctx, cancelRun := context.WithCancel(context.Background())
	defer cancelRun()

	w := deps.worker(5 * time.Millisecond)
	go w.Run(ctx)
	time.Sleep(10 * time.Millisecond)

	resultCh, cancel := deps.feed.Subscribe("goal-1")
	defer cancel()

	deps.feed.PublishGoalCreated(carGoal(entities.UrgencyMedia))

	select {
	case announced := <-resultCh:
		require.NotNil(t, announced)
		assert.Equal(t, "goal-1", announced.GoalID)
	case <-time.After(2 * time.Second):
		t.Fatal("expected worker to produce a decision")
	}
}

func TestWorkerAnalyzeToleratesProfileAndSelicFailures(t *testing.T) {
	deps, ctrl := newWorkerDeps(t)
	defer ctrl.Finish()

	deps.profiles.EXPECT().GetByUserID(gomock.Any(), "user-1").
		Return(entities.FinancialProfile{}, errors.New("transport"))
	deps.indicators.EXPECT().LatestByType(gomock.Any(), entities.IndicatorSelic).
		Return(nil, errors.New("transport"))
	deps.decisions.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, d entities.DecisionResult, _ json.RawMessage) (entities.DecisionResult, error) {
			return d, nil
		})

	saved, err := deps.worker(0).Analyze(context.Background(), carGoal(entities.UrgencyMedia))
	require.NoError(t, err)
	assert.NotEmpty(t, saved.RecommendedStrategy)
}

func TestWorkerAnalyzeSurfacesWriteFailure(t *testing.T) {
	deps, ctrl := newWorkerDeps(t)
	defer ctrl.Finish()

	deps.profiles.EXPECT().GetByUserID(gomock.Any(), "user-1").
		Return(entities.FinancialProfile{}, nil)
	deps.indicators.EXPECT().LatestByType(gomock.Any(), entities.IndicatorSelic).
		Return(nil, nil)
	deps.decisions.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(entities.DecisionResult{}, errors.New("write failed"))

	_, err := deps.worker(0).Analyze(context.Background(), carGoal(entities.UrgencyMedia))
	require.Error(t, err)
}
