package usecase

import (
	"context"
	"log"
	"time"

	"capitalys/internal/domain/entities"
	"capitalys/internal/usecase/interfaces"
)

// AnalysisStatus is the terminal outcome of one goal submission.
type AnalysisStatus string

const (
	// AnalysisResolved means a decision result was found before the deadline.
	AnalysisResolved AnalysisStatus = "resolvida"
	// AnalysisProcessing means the goal was created but no decision arrived
	// within the deadline. Not an error: the analysis is still pending and
	// the client may poll the goal later.
	AnalysisProcessing AnalysisStatus = "processando"
)

// GoalAnalysis is the single terminal outcome surfaced per submission.
type GoalAnalysis struct {
	Status   AnalysisStatus
	Goal     entities.FinancialGoal
	Decision *entities.DecisionResult
}

const DefaultAnalysisWaitTimeout = 20 * time.Second

// IGoalAnalysisUseCase coordinates goal submission with the asynchronous
// decisioning workflow.
type IGoalAnalysisUseCase interface {
	SubmitAndAwait(ctx context.Context, userID string, input CreateGoalInput) (GoalAnalysis, error)
}

// GoalAnalysisUseCase waits for the decision result of a freshly created
// goal using three racing signals: one immediate read (the workflow may have
// finished before the subscription was live), a push subscription keyed to
// the goal id, and a deadline timer with one final read. Whichever signal
// wins produces the only terminal transition; subscription and timer are
// torn down on every exit path.
type GoalAnalysisUseCase struct {
	goals       IGoalUseCase
	decisions   interfaces.IDecisionResultRepository
	feed        interfaces.IDecisionFeed
	waitTimeout time.Duration
}

var _ IGoalAnalysisUseCase = (*GoalAnalysisUseCase)(nil)

func NewGoalAnalysisUseCase(
	goals IGoalUseCase,
	decisions interfaces.IDecisionResultRepository,
	feed interfaces.IDecisionFeed,
	waitTimeout time.Duration,
) *GoalAnalysisUseCase {
	if waitTimeout <= 0 {
		waitTimeout = DefaultAnalysisWaitTimeout
	}
	return &GoalAnalysisUseCase{goals: goals, decisions: decisions, feed: feed, waitTimeout: waitTimeout}
}

// SubmitAndAwait creates the goal and blocks until exactly one terminal
// outcome: a decision result, a still-processing notice, or an error. Only
// the creation write can fail the submission; decision reads that error are
// logged and treated as "not found yet".
func (u *GoalAnalysisUseCase) SubmitAndAwait(ctx context.Context, userID string, input CreateGoalInput) (GoalAnalysis, error) {
	goal, err := u.goals.Create(ctx, userID, input)
	if err != nil {
		return GoalAnalysis{}, err
	}

	// Subscribe before the first read so a write landing between the read
	// and the subscription cannot be missed.
	events, cancel := u.feed.Subscribe(goal.ID)
	defer cancel()

	timer := time.NewTimer(u.waitTimeout)
	defer timer.Stop()

	if decision := u.readLatest(ctx, goal.ID); decision != nil {
		return GoalAnalysis{Status: AnalysisResolved, Goal: goal, Decision: decision}, nil
	}

	for {
		select {
		case <-ctx.Done():
			log.Printf("[analysis][usecase] submission abandoned goal_id=%s err=%v", goal.ID, ctx.Err())
			return GoalAnalysis{}, ctx.Err()

		case <-events:
			// The event is only a wake-up: re-read for the authoritative
			// latest row.
			if decision := u.readLatest(ctx, goal.ID); decision != nil {
				log.Printf("[analysis][usecase] resolved via subscription goal_id=%s", goal.ID)
				return GoalAnalysis{Status: AnalysisResolved, Goal: goal, Decision: decision}, nil
			}

		case <-timer.C:
			if decision := u.readLatest(ctx, goal.ID); decision != nil {
				log.Printf("[analysis][usecase] resolved on deadline re-read goal_id=%s", goal.ID)
				return GoalAnalysis{Status: AnalysisResolved, Goal: goal, Decision: decision}, nil
			}
			log.Printf("[analysis][usecase] deadline reached goal_id=%s timeout=%s", goal.ID, u.waitTimeout)
			return GoalAnalysis{Status: AnalysisProcessing, Goal: goal}, nil
		}
	}
}

func (u *GoalAnalysisUseCase) readLatest(ctx context.Context, goalID string) *entities.DecisionResult {
	decision, err := u.decisions.LatestByGoalID(ctx, goalID)
	if err != nil {
		// Transient by contract: a failed read never fails the submission.
		log.Printf("[analysis][usecase] decision read failed goal_id=%s err=%v", goalID, err)
		return nil
	}
	return decision
}
