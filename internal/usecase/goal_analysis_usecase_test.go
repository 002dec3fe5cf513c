package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"capitalys/internal/domain/entities"
	mock_interfaces "capitalys/internal/usecase/interfaces/mocks"
)

// stubGoalCreator stands in for IGoalUseCase so tests control the created
// goal id. (The generated mock for IGoalUseCase lives in the handlers mocks
// package, which cannot be imported here without a cycle.)
type stubGoalCreator struct {
	goal entities.FinancialGoal
	err  error
}

func (s *stubGoalCreator) Create(context.Context, string, CreateGoalInput) (entities.FinancialGoal, error) {
	return s.goal, s.err
}

func (s *stubGoalCreator) GetByID(context.Context, string, string) (entities.FinancialGoal, error) {
	panic("not used")
}

func (s *stubGoalCreator) ListByUser(context.Context, string, bool, int) ([]entities.FinancialGoal, error) {
	panic("not used")
}

func (s *stubGoalCreator) Archive(context.Context, string, string) (entities.FinancialGoal, error) {
	panic("not used")
}

func carGoal() entities.FinancialGoal {
	return entities.FinancialGoal{
		ID:               "goal-1",
		UserID:           "user-1",
		AssetType:        "automovel",
		EstimatedValue:   85000,
		AvailableCapital: 25000,
		DesiredTerm:      36,
		UrgencyLevel:     entities.UrgencyMedia,
		IsActive:         true,
	}
}

func carInput() CreateGoalInput {
	return CreateGoalInput{
		AssetType:        "automovel",
		EstimatedValue:   85000,
		AvailableCapital: 25000,
		DesiredTerm:      36,
		UrgencyLevel:     entities.UrgencyMedia,
	}
}

type feedHarness struct {
	events      chan *entities.DecisionResult
	cancelCalls int
}

func expectSubscribe(feed *mock_interfaces.MockIDecisionFeed, goalID string) *feedHarness {
	h := &feedHarness{events: make(chan *entities.DecisionResult, 4)}
	feed.EXPECT().Subscribe(goalID).Return(
		(<-chan *entities.DecisionResult)(h.events),
		func() { h.cancelCalls++ },
	)
	return h
}

func TestGoalAnalysis_CreationFailureIsFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	decisions := mock_interfaces.NewMockIDecisionResultRepository(ctrl)
	feed := mock_interfaces.NewMockIDecisionFeed(ctrl)
	// No Subscribe expectation: a failed creation must never open one.

	uc := NewGoalAnalysisUseCase(&stubGoalCreator{err: errors.New("write failed")}, decisions, feed, time.Second)

	_, err := uc.SubmitAndAwait(context.Background(), "user-1", carInput())
	if err == nil || err.Error() != "write failed" {
		t.Fatalf("expected creation error, got %v", err)
	}
}

func TestGoalAnalysis_ImmediateReadWinsTheRace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	decisions := mock_interfaces.NewMockIDecisionResultRepository(ctrl)
	feed := mock_interfaces.NewMockIDecisionFeed(ctrl)
	h := expectSubscribe(feed, "goal-1")

	existing := &entities.DecisionResult{ID: "dec-1", GoalID: "goal-1", RecommendedStrategy: entities.StrategyConsorcio}
	decisions.EXPECT().LatestByGoalID(gomock.Any(), "goal-1").Return(existing, nil)

	uc := NewGoalAnalysisUseCase(&stubGoalCreator{goal: carGoal()}, decisions, feed, time.Minute)

	out, err := uc.SubmitAndAwait(context.Background(), "user-1", carInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Status != AnalysisResolved {
		t.Fatalf("expected resolved, got %s", out.Status)
	}
	if out.Decision == nil || out.Decision.ID != "dec-1" {
		t.Fatalf("unexpected decision: %+v", out.Decision)
	}
	if h.cancelCalls != 1 {
		t.Fatalf("expected exactly one subscription teardown, got %d", h.cancelCalls)
	}
}

func TestGoalAnalysis_ResolvesViaSubscriptionEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	decisions := mock_interfaces.NewMockIDecisionResultRepository(ctrl)
	feed := mock_interfaces.NewMockIDecisionFeed(ctrl)
	h := expectSubscribe(feed, "goal-1")

	saved := &entities.DecisionResult{ID: "dec-1", GoalID: "goal-1", RecommendedStrategy: entities.StrategyConsorcio}
	gomock.InOrder(
		decisions.EXPECT().LatestByGoalID(gomock.Any(), "goal-1").Return(nil, nil),
		decisions.EXPECT().LatestByGoalID(gomock.Any(), "goal-1").Return(saved, nil),
	)

	uc := NewGoalAnalysisUseCase(&stubGoalCreator{goal: carGoal()}, decisions, feed, time.Minute)

	go func() {
		time.Sleep(20 * time.Millisecond)
		h.events <- saved
	}()

	start := time.Now()
	out, err := uc.SubmitAndAwait(context.Background(), "user-1", carInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Status != AnalysisResolved || out.Decision == nil || out.Decision.RecommendedStrategy != "consorcio" {
		t.Fatalf("unexpected outcome: %+v", out)
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Fatalf("resolution should not wait for the deadline, took %s", elapsed)
	}
	if h.cancelCalls != 1 {
		t.Fatalf("expected exactly one subscription teardown, got %d", h.cancelCalls)
	}
}

func TestGoalAnalysis_TimeoutEndsAsProcessing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	decisions := mock_interfaces.NewMockIDecisionResultRepository(ctrl)
	feed := mock_interfaces.NewMockIDecisionFeed(ctrl)
	h := expectSubscribe(feed, "goal-1")

	// Immediate read plus the deadline re-read, both empty.
	decisions.EXPECT().LatestByGoalID(gomock.Any(), "goal-1").Return(nil, nil).Times(2)

	uc := NewGoalAnalysisUseCase(&stubGoalCreator{goal: carGoal()}, decisions, feed, 30*time.Millisecond)

	out, err := uc.SubmitAndAwait(context.Background(), "user-1", carInput())
	if err != nil {
		t.Fatalf("timeout is not an error, got %v", err)
	}
	if out.Status != AnalysisProcessing {
		t.Fatalf("expected processing, got %s", out.Status)
	}
	if out.Decision != nil {
		t.Fatalf("expected no decision, got %+v", out.Decision)
	}
	if out.Goal.ID != "goal-1" {
		t.Fatalf("expected created goal in outcome, got %+v", out.Goal)
	}
	if h.cancelCalls != 1 {
		t.Fatalf("expected exactly one subscription teardown, got %d", h.cancelCalls)
	}
}

func TestGoalAnalysis_ReadErrorsAreTransient(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	decisions := mock_interfaces.NewMockIDecisionResultRepository(ctrl)
	feed := mock_interfaces.NewMockIDecisionFeed(ctrl)
	h := expectSubscribe(feed, "goal-1")

	// Immediate read fails, the event-triggered re-read fails, the deadline
	// re-read fails: none of them may abort the submission.
	decisions.EXPECT().LatestByGoalID(gomock.Any(), "goal-1").Return(nil, errors.New("transport")).Times(3)

	uc := NewGoalAnalysisUseCase(&stubGoalCreator{goal: carGoal()}, decisions, feed, 60*time.Millisecond)

	h.events <- &entities.DecisionResult{ID: "dec-1", GoalID: "goal-1"}

	out, err := uc.SubmitAndAwait(context.Background(), "user-1", carInput())
	if err != nil {
		t.Fatalf("read errors must not fail the submission, got %v", err)
	}
	if out.Status != AnalysisProcessing {
		t.Fatalf("expected processing, got %s", out.Status)
	}
	if h.cancelCalls != 1 {
		t.Fatalf("expected exactly one subscription teardown, got %d", h.cancelCalls)
	}
}

func TestGoalAnalysis_ContextCancellationTearsDown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	decisions := mock_interfaces.NewMockIDecisionResultRepository(ctrl)
	feed := mock_interfaces.NewMockIDecisionFeed(ctrl)
	h := expectSubscribe(feed, "goal-1")

	decisions.EXPECT().LatestByGoalID(gomock.Any(), "goal-1").Return(nil, nil)

	uc := NewGoalAnalysisUseCase(&stubGoalCreator{goal: carGoal()}, decisions, feed, time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err := uc.SubmitAndAwait(ctx, "user-1", carInput())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if h.cancelCalls != 1 {
		t.Fatalf("expected exactly one subscription teardown, got %d", h.cancelCalls)
	}
}

func TestGoalAnalysis_NoTransitionAfterTerminalState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	decisions := mock_interfaces.NewMockIDecisionResultRepository(ctrl)
	feed := mock_interfaces.NewMockIDecisionFeed(ctrl)
	h := expectSubscribe(feed, "goal-1")

	existing := &entities.DecisionResult{ID: "dec-1", GoalID: "goal-1"}
	decisions.EXPECT().LatestByGoalID(gomock.Any(), "goal-1").Return(existing, nil)

	uc := NewGoalAnalysisUseCase(&stubGoalCreator{goal: carGoal()}, decisions, feed, time.Minute)

	out, err := uc.SubmitAndAwait(context.Background(), "user-1", carInput())
	if err != nil || out.Status != AnalysisResolved {
		t.Fatalf("unexpected outcome: %+v %v", out, err)
	}

	// A late event after the terminal state must not trigger further reads
	// (the mock would fail on an unexpected LatestByGoalID call) and must
	// not tear down twice.
	h.events <- existing
	time.Sleep(20 * time.Millisecond)
	if h.cancelCalls != 1 {
		t.Fatalf("expected exactly one subscription teardown, got %d", h.cancelCalls)
	}
}
