package usecase

import (
	"context"
	"strings"

	"capitalys/internal/domain/entities"
	"capitalys/internal/usecase/interfaces"
)

// IDecisionUseCase reads decision results and their transition history for
// one goal. Results arrive already normalized from the repository.
type IDecisionUseCase interface {
	LatestByGoalID(ctx context.Context, goalID string) (*entities.DecisionResult, error)
	HistoryByGoalID(ctx context.Context, goalID string) ([]entities.DecisionHistory, error)
}

type DecisionUseCase struct {
	results interfaces.IDecisionResultRepository
	history interfaces.IDecisionHistoryRepository
}

var _ IDecisionUseCase = (*DecisionUseCase)(nil)

func NewDecisionUseCase(results interfaces.IDecisionResultRepository, history interfaces.IDecisionHistoryRepository) *DecisionUseCase {
	return &DecisionUseCase{results: results, history: history}
}

func (u *DecisionUseCase) LatestByGoalID(ctx context.Context, goalID string) (*entities.DecisionResult, error) {
	goalID = strings.TrimSpace(goalID)
	if goalID == "" {
		return nil, ErrInvalidGoalID
	}
	return u.results.LatestByGoalID(ctx, goalID)
}

func (u *DecisionUseCase) HistoryByGoalID(ctx context.Context, goalID string) ([]entities.DecisionHistory, error) {
	goalID = strings.TrimSpace(goalID)
	if goalID == "" {
		return nil, ErrInvalidGoalID
	}
	return u.history.ListByGoalID(ctx, goalID)
}
