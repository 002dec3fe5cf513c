package events

import (
	"time"

	"capitalys/internal/domain/entities"
)

// DecisionFeed adapts the bus to the narrow surface the usecases need: a
// push subscription keyed by goal id plus publish hooks for goal and
// decision writers.
type DecisionFeed struct {
	bus *Bus
}

func NewDecisionFeed(bus *Bus) *DecisionFeed {
	return &DecisionFeed{bus: bus}
}

// Subscribe opens a push subscription for decision results of one goal.
// Events carry the saved decision; callers re-read the store for the
// authoritative latest row.
func (f *DecisionFeed) Subscribe(goalID string) (<-chan *entities.DecisionResult, func()) {
	events, cancel := f.bus.Subscribe(goalID, DecisionSaved)

	out := make(chan *entities.DecisionResult, subscriberBuffer)
	go func() {
		defer close(out)
		for ev := range events {
			select {
			case out <- ev.Decision:
			default:
			}
		}
	}()
	return out, cancel
}

func (f *DecisionFeed) PublishGoalCreated(goal entities.FinancialGoal) {
	f.bus.Publish(Event{
		Type:   GoalCreated,
		GoalID: goal.ID,
		Goal:   &goal,
		At:     time.Now().UTC(),
	})
}

func (f *DecisionFeed) PublishDecisionSaved(decision entities.DecisionResult) {
	f.bus.Publish(Event{
		Type:     DecisionSaved,
		GoalID:   decision.GoalID,
		Decision: &decision,
		At:       time.Now().UTC(),
	})
}
