package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"capitalys/internal/domain/entities"
	"capitalys/internal/usecase/interfaces"
)

var ErrInvalidStrategy = errors.New("invalid selected strategy")

// IPartnerInterestUseCase registers a user's interest in one ranked
// strategy and forwards it to the partner network.
type IPartnerInterestUseCase interface {
	Register(ctx context.Context, userID, goalID, selectedStrategy string) (entities.PartnerInterest, error)
}

type PartnerInterestUseCase struct {
	repo      interfaces.IPartnerInterestRepository
	goals     interfaces.IGoalRepository
	decisions interfaces.IDecisionResultRepository
	notifier  interfaces.IPartnerNotifier
}

var _ IPartnerInterestUseCase = (*PartnerInterestUseCase)(nil)

func NewPartnerInterestUseCase(
	repo interfaces.IPartnerInterestRepository,
	goals interfaces.IGoalRepository,
	decisions interfaces.IDecisionResultRepository,
	notifier interfaces.IPartnerNotifier,
) *PartnerInterestUseCase {
	return &PartnerInterestUseCase{repo: repo, goals: goals, decisions: decisions, notifier: notifier}
}

// Register links the interest to the goal's current decision result when one
// exists. The partner notification is fire-and-forget: a delivery failure is
// logged and the registration still succeeds.
func (u *PartnerInterestUseCase) Register(ctx context.Context, userID, goalID, selectedStrategy string) (entities.PartnerInterest, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.PartnerInterest{}, ErrInvalidUserID
	}
	goalID = strings.TrimSpace(goalID)
	if goalID == "" {
		return entities.PartnerInterest{}, ErrInvalidGoalID
	}
	selectedStrategy = strings.TrimSpace(selectedStrategy)
	if selectedStrategy == "" {
		return entities.PartnerInterest{}, ErrInvalidStrategy
	}

	goal, err := u.goals.GetByID(ctx, goalID, userID)
	if err != nil {
		return entities.PartnerInterest{}, err
	}
	if goal.ID == "" {
		return entities.PartnerInterest{}, ErrGoalNotFound
	}

	decisionID := ""
	if decision, err := u.decisions.LatestByGoalID(ctx, goalID); err != nil {
		log.Printf("[partner][usecase] decision lookup failed goal_id=%s err=%v", goalID, err)
	} else if decision != nil {
		decisionID = decision.ID
	}

	pi := entities.PartnerInterest{
		ID:               uuid.NewString(),
		UserID:           userID,
		GoalID:           goalID,
		DecisionResultID: decisionID,
		SelectedStrategy: selectedStrategy,
		CreatedAt:        time.Now().UTC(),
	}

	created, err := u.repo.Create(ctx, pi)
	if err != nil {
		return entities.PartnerInterest{}, err
	}
	log.Printf("[partner][usecase] interest registered goal_id=%s strategy=%s interest_id=%s", goalID, selectedStrategy, created.ID)

	if u.notifier != nil {
		if err := u.notifier.NotifyInterest(ctx, created, goal); err != nil {
			log.Printf("[partner][usecase] partner notification failed interest_id=%s err=%v", created.ID, err)
		}
	}
	return created, nil
}
