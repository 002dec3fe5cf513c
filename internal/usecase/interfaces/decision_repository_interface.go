package interfaces

import (
	"context"
	"encoding/json"

	"capitalys/internal/domain/entities"
)

// IDecisionResultRepository abstracts DynamoDB persistence for
// DecisionResult rows.
//
// The ranking is written as the raw JSON document the producer emitted and
// normalized on read, so rows from either workflow generation coexist.
// LatestByGoalID returns nil (not an error) when no result exists yet.
type IDecisionResultRepository interface {
	Create(ctx context.Context, d entities.DecisionResult, rankingRaw json.RawMessage) (entities.DecisionResult, error)
	LatestByGoalID(ctx context.Context, goalID string) (*entities.DecisionResult, error)
	ListByGoalID(ctx context.Context, goalID string) ([]entities.DecisionResult, error)
}

// IDecisionHistoryRepository persists the append-only strategy transition
// log for a goal.
type IDecisionHistoryRepository interface {
	Create(ctx context.Context, h entities.DecisionHistory) (entities.DecisionHistory, error)
	ListByGoalID(ctx context.Context, goalID string) ([]entities.DecisionHistory, error)
}
