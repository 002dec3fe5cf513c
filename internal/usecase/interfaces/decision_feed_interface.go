package interfaces

import "capitalys/internal/domain/entities"

// IDecisionFeed is the push channel over decision result writes.
//
// Subscribe opens a subscription keyed to one goal id; the cancel func is
// idempotent and must run on every exit path so that at most one
// subscription per submission is ever live. Events are a wake-up signal:
// consumers re-read the store for the authoritative latest row.
type IDecisionFeed interface {
	Subscribe(goalID string) (<-chan *entities.DecisionResult, func())
	PublishGoalCreated(goal entities.FinancialGoal)
}
