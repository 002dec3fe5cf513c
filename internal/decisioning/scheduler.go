package decisioning

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"capitalys/internal/domain/entities"
	"capitalys/internal/usecase/interfaces"
)

// Scheduler periodically re-scores every active goal so recommendations
// track indicator movement. When a re-score flips the recommended
// strategy, the transition is appended to the decision history with the
// Selic delta that drove it.
type Scheduler struct {
	worker     *Worker
	goals      interfaces.IGoalRepository
	decisions  interfaces.IDecisionResultRepository
	history    interfaces.IDecisionHistoryRepository
	indicators interfaces.IIndicatorRepository
	cron       *cron.Cron
	spec       string
	log        zerolog.Logger
}

func NewScheduler(
	worker *Worker,
	goals interfaces.IGoalRepository,
	decisions interfaces.IDecisionResultRepository,
	history interfaces.IDecisionHistoryRepository,
	indicators interfaces.IIndicatorRepository,
	spec string,
	log zerolog.Logger,
) *Scheduler {
	return &Scheduler{
		worker:     worker,
		goals:      goals,
		decisions:  decisions,
		history:    history,
		indicators: indicators,
		cron:       cron.New(),
		spec:       spec,
		log:        log.With().Str("component", "reevaluation_scheduler").Logger(),
	}
}

// Start registers the reevaluation job and starts the cron loop.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.ReevaluateAll(ctx)
	})
	if err != nil {
		return err
	}
	s.cron.Start()
	s.log.Info().Str("schedule", s.spec).Msg("reevaluation scheduler started")
	return nil
}

// Stop halts the cron loop and waits for a running job to finish.
func (s *Scheduler) Stop() {
	stopCtx := s.cron.Stop()
	<-stopCtx.Done()
	s.log.Info().Msg("reevaluation scheduler stopped")
}

// ReevaluateAll re-scores every active goal once.
func (s *Scheduler) ReevaluateAll(ctx context.Context) {
	goals, err := s.goals.ListActive(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("active goal listing failed")
		return
	}
	s.log.Info().Int("goals", len(goals)).Msg("reevaluation pass started")

	for _, goal := range goals {
		if err := s.reevaluate(ctx, goal); err != nil {
			s.log.Error().Err(err).Str("goal_id", goal.ID).Msg("reevaluation failed")
		}
	}
}

func (s *Scheduler) reevaluate(ctx context.Context, goal entities.FinancialGoal) error {
	previous, err := s.decisions.LatestByGoalID(ctx, goal.ID)
	if err != nil {
		return err
	}
	if previous == nil {
		// Never analyzed, the worker will get to it through its own path.
		return nil
	}

	fresh, err := s.worker.Analyze(ctx, goal)
	if err != nil {
		return err
	}
	if fresh.RecommendedStrategy == previous.RecommendedStrategy {
		return nil
	}

	entry := entities.DecisionHistory{
		ID:               uuid.NewString(),
		GoalID:           goal.ID,
		PreviousStrategy: previous.RecommendedStrategy,
		NewStrategy:      fresh.RecommendedStrategy,
		Reason:           "reavaliação periódica",
		ChangedAt:        time.Now().UTC(),
	}
	// The rate that drove the previous decision is not stored, so only
	// the current observation is attributed.
	if selic := s.selicAt(ctx); selic != nil {
		entry.IndicatorChanged = string(entities.IndicatorSelic)
		entry.NewIndicatorValue = selic
	}

	if _, err := s.history.Create(ctx, entry); err != nil {
		return err
	}
	s.log.Info().
		Str("goal_id", goal.ID).
		Str("previous", entry.PreviousStrategy).
		Str("new", entry.NewStrategy).
		Msg("recommendation changed")
	return nil
}

func (s *Scheduler) selicAt(ctx context.Context) *float64 {
	ind, err := s.indicators.LatestByType(ctx, entities.IndicatorSelic)
	if err != nil || ind == nil {
		return nil
	}
	v := ind.Value
	return &v
}
