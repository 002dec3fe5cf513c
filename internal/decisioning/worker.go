package decisioning

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"capitalys/internal/domain/entities"
	"capitalys/internal/events"
	"capitalys/internal/usecase/interfaces"
)

// Worker consumes goal creation events and produces decision results.
//
// Each goal is scored once, after a short processing delay that models the
// analysis taking real time. The saved result is announced on the bus so
// blocked submissions and open streams pick it up.
type Worker struct {
	bus        *events.Bus
	feed       *events.DecisionFeed
	engine     *Engine
	decisions  interfaces.IDecisionResultRepository
	profiles   interfaces.IFinancialProfileRepository
	indicators interfaces.IIndicatorRepository
	delay      time.Duration
	log        zerolog.Logger
}

func NewWorker(
	bus *events.Bus,
	feed *events.DecisionFeed,
	engine *Engine,
	decisions interfaces.IDecisionResultRepository,
	profiles interfaces.IFinancialProfileRepository,
	indicators interfaces.IIndicatorRepository,
	delay time.Duration,
	log zerolog.Logger,
) *Worker {
	return &Worker{
		bus:        bus,
		feed:       feed,
		engine:     engine,
		decisions:  decisions,
		profiles:   profiles,
		indicators: indicators,
		delay:      delay,
		log:        log.With().Str("component", "decision_worker").Logger(),
	}
}

// Run blocks consuming goal creation events until ctx is cancelled.
func (w *Worker) Run(ctx context.Context) {
	eventsCh, cancel := w.bus.Subscribe("", events.GoalCreated)
	defer cancel()

	w.log.Info().Dur("processing_delay", w.delay).Msg("decision worker started")
	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("decision worker stopped")
			return
		case ev, ok := <-eventsCh:
			if !ok {
				return
			}
			if ev.Goal == nil {
				w.log.Warn().Str("goal_id", ev.GoalID).Msg("goal event without payload, skipping")
				continue
			}
			w.process(ctx, *ev.Goal)
		}
	}
}

func (w *Worker) process(ctx context.Context, goal entities.FinancialGoal) {
	if w.delay > 0 {
		select {
		case <-ctx.Done():
			return
		case <-time.After(w.delay):
		}
	}

	if _, err := w.Analyze(ctx, goal); err != nil {
		w.log.Error().Err(err).Str("goal_id", goal.ID).Msg("analysis failed")
	}
}

// Analyze scores the goal, persists the result and announces it. Also used
// by the reevaluation scheduler.
func (w *Worker) Analyze(ctx context.Context, goal entities.FinancialGoal) (entities.DecisionResult, error) {
	profile, err := w.profiles.GetByUserID(ctx, goal.UserID)
	if err != nil {
		w.log.Warn().Err(err).Str("goal_id", goal.ID).Msg("profile read failed, scoring without it")
		profile = entities.FinancialProfile{}
	}

	selic := w.currentSelic(ctx)
	eval := w.engine.Evaluate(goal, profile, selic)

	rankingRaw, err := json.Marshal(eval.Ranking)
	if err != nil {
		return entities.DecisionResult{}, err
	}

	now := time.Now().UTC()
	result := entities.DecisionResult{
		ID:                  uuid.NewString(),
		GoalID:              goal.ID,
		RecommendedStrategy: eval.Recommended.Type,
		Explanation:         eval.Explanation,
		ExplanationTitle:    eval.ExplanationTitle,
		AnalysisDate:        now,
		CreatedAt:           now,
	}

	saved, err := w.decisions.Create(ctx, result, rankingRaw)
	if err != nil {
		return entities.DecisionResult{}, err
	}

	w.log.Info().
		Str("goal_id", goal.ID).
		Str("decision_id", saved.ID).
		Str("strategy", saved.RecommendedStrategy).
		Float64("selic", selic).
		Msg("decision saved")

	w.feed.PublishDecisionSaved(saved)
	return saved, nil
}

func (w *Worker) currentSelic(ctx context.Context) float64 {
	ind, err := w.indicators.LatestByType(ctx, entities.IndicatorSelic)
	if err != nil {
		w.log.Warn().Err(err).Msg("selic read failed, using default rate")
		return DefaultSelicRate
	}
	if ind == nil {
		return DefaultSelicRate
	}
	return ind.Value
}
