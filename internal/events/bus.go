package events

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"capitalys/internal/domain/entities"
)

type EventType string

const (
	GoalCreated   EventType = "goal.created"
	DecisionSaved EventType = "decision.saved"
)

// Event is a notification published by writers of goals and decision
// results. Decision is already normalized by the publisher.
type Event struct {
	Type     EventType                `json:"type"`
	GoalID   string                   `json:"goal_id"`
	Goal     *entities.FinancialGoal  `json:"goal,omitempty"`
	Decision *entities.DecisionResult `json:"decision,omitempty"`
	At       time.Time                `json:"at"`
}

const subscriberBuffer = 16

type subscriber struct {
	ch     chan Event
	types  map[EventType]struct{}
	goalID string
}

func (s *subscriber) wants(ev Event) bool {
	if s.goalID != "" && s.goalID != ev.GoalID {
		return false
	}
	if len(s.types) == 0 {
		return true
	}
	_, ok := s.types[ev.Type]
	return ok
}

// Bus fans events out to in-process subscribers. Delivery is best-effort:
// a subscriber that stops draining its channel loses events rather than
// blocking publishers.
type Bus struct {
	mu     sync.RWMutex
	subs   map[int]*subscriber
	nextID int
	log    zerolog.Logger
}

func NewBus(log zerolog.Logger) *Bus {
	return &Bus{
		subs: make(map[int]*subscriber),
		log:  log.With().Str("component", "event_bus").Logger(),
	}
}

// Subscribe registers interest in events for one goal (empty goalID matches
// all goals) and the given types (none matches all types). The returned
// cancel func is idempotent and must be called on every exit path; after it
// returns no further events are delivered and the channel is closed.
func (b *Bus) Subscribe(goalID string, types ...EventType) (<-chan Event, func()) {
	sub := &subscriber{
		ch:     make(chan Event, subscriberBuffer),
		types:  make(map[EventType]struct{}, len(types)),
		goalID: goalID,
	}
	for _, t := range types {
		sub.types[t] = struct{}{}
	}

	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs[id] = sub
	b.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			close(sub.ch)
			b.mu.Unlock()
		})
	}
	return sub.ch, cancel
}

// Publish delivers the event to every matching subscriber without blocking.
func (b *Bus) Publish(ev Event) {
	if ev.At.IsZero() {
		ev.At = time.Now().UTC()
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, sub := range b.subs {
		if !sub.wants(ev) {
			continue
		}
		select {
		case sub.ch <- ev:
		default:
			b.log.Warn().
				Str("event_type", string(ev.Type)).
				Str("goal_id", ev.GoalID).
				Msg("subscriber buffer full, dropping event")
		}
	}
}
