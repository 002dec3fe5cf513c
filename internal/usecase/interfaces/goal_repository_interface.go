package interfaces

import (
	"context"

	"capitalys/internal/domain/entities"
)

// IGoalRepository abstracts DynamoDB persistence for FinancialGoal.
//
// Every user-facing read is owner-filtered: a goal that exists but belongs
// to another user behaves exactly like a missing goal.
type IGoalRepository interface {
	Create(ctx context.Context, g entities.FinancialGoal) (entities.FinancialGoal, error)
	GetByID(ctx context.Context, id, userID string) (entities.FinancialGoal, error)
	ListByUser(ctx context.Context, userID string, onlyActive bool, limit int) ([]entities.FinancialGoal, error)
	ListActive(ctx context.Context) ([]entities.FinancialGoal, error)
	Archive(ctx context.Context, id, userID string) (entities.FinancialGoal, error)
}
