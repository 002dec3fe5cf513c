package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"capitalys/internal/domain/entities"
	"capitalys/internal/usecase/interfaces"
)

var (
	ErrGoalNotFound     = errors.New("goal not found")
	ErrInvalidUserID    = errors.New("invalid user id")
	ErrInvalidGoalID    = errors.New("invalid goal id")
	ErrInvalidAssetType = errors.New("invalid asset type")
	ErrInvalidGoalValue = errors.New("invalid estimated value")
	ErrInvalidTerm      = errors.New("invalid desired term")
	ErrInvalidUrgency   = errors.New("invalid urgency level")
)

// IncompleteProfileError blocks goal creation while the user's financial
// profile is missing required fields. Missing holds the user-facing field
// names for the error message.
type IncompleteProfileError struct {
	Missing []string
}

func (e *IncompleteProfileError) Error() string {
	return fmt.Sprintf("financial profile incomplete, missing: %s", strings.Join(e.Missing, ", "))
}

// CreateGoalInput is the domain command for goal creation.
type CreateGoalInput struct {
	AssetType        string
	EstimatedValue   float64
	AvailableCapital float64
	DesiredTerm      int
	UrgencyLevel     entities.UrgencyLevel
}

// IGoalUseCase exposes financial goal operations.
//
// Create enforces the profile completeness gate before any write: the store
// itself accepts goals regardless of profile state, so the check lives here.
type IGoalUseCase interface {
	Create(ctx context.Context, userID string, input CreateGoalInput) (entities.FinancialGoal, error)
	GetByID(ctx context.Context, id, userID string) (entities.FinancialGoal, error)
	ListByUser(ctx context.Context, userID string, onlyActive bool, limit int) ([]entities.FinancialGoal, error)
	Archive(ctx context.Context, id, userID string) (entities.FinancialGoal, error)
}

type GoalUseCase struct {
	repo     interfaces.IGoalRepository
	profiles interfaces.IFinancialProfileRepository
	feed     interfaces.IDecisionFeed
}

var _ IGoalUseCase = (*GoalUseCase)(nil)

func NewGoalUseCase(repo interfaces.IGoalRepository, profiles interfaces.IFinancialProfileRepository, feed interfaces.IDecisionFeed) *GoalUseCase {
	return &GoalUseCase{repo: repo, profiles: profiles, feed: feed}
}

func (u *GoalUseCase) Create(ctx context.Context, userID string, input CreateGoalInput) (entities.FinancialGoal, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.FinancialGoal{}, ErrInvalidUserID
	}

	input.AssetType = strings.TrimSpace(input.AssetType)
	if input.AssetType == "" {
		return entities.FinancialGoal{}, ErrInvalidAssetType
	}
	if input.EstimatedValue <= 0 {
		return entities.FinancialGoal{}, ErrInvalidGoalValue
	}
	if input.AvailableCapital < 0 {
		return entities.FinancialGoal{}, ErrInvalidGoalValue
	}
	if input.DesiredTerm <= 0 {
		return entities.FinancialGoal{}, ErrInvalidTerm
	}
	if input.UrgencyLevel == "" {
		input.UrgencyLevel = entities.UrgencyMedia
	}
	if !input.UrgencyLevel.Valid() {
		return entities.FinancialGoal{}, ErrInvalidUrgency
	}

	// Completeness gate: block before any write.
	profile, err := u.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return entities.FinancialGoal{}, err
	}
	if missing := profile.MissingFields(); len(missing) > 0 {
		log.Printf("[goal][usecase] profile incomplete user_id=%s missing=%q", userID, missing)
		return entities.FinancialGoal{}, &IncompleteProfileError{Missing: missing}
	}

	now := time.Now().UTC()
	g := entities.FinancialGoal{
		ID:               uuid.NewString(),
		UserID:           userID,
		AssetType:        input.AssetType,
		EstimatedValue:   input.EstimatedValue,
		AvailableCapital: input.AvailableCapital,
		DesiredTerm:      input.DesiredTerm,
		UrgencyLevel:     input.UrgencyLevel,
		IsActive:         true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	created, err := u.repo.Create(ctx, g)
	if err != nil {
		return entities.FinancialGoal{}, err
	}
	log.Printf("[goal][usecase] created goal_id=%s user_id=%s asset_type=%q", created.ID, userID, created.AssetType)

	if u.feed != nil {
		u.feed.PublishGoalCreated(created)
	}
	return created, nil
}

func (u *GoalUseCase) GetByID(ctx context.Context, id, userID string) (entities.FinancialGoal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.FinancialGoal{}, ErrInvalidGoalID
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.FinancialGoal{}, ErrInvalidUserID
	}

	g, err := u.repo.GetByID(ctx, id, userID)
	if err != nil {
		return entities.FinancialGoal{}, err
	}
	if g.ID == "" {
		return entities.FinancialGoal{}, ErrGoalNotFound
	}
	return g, nil
}

func (u *GoalUseCase) ListByUser(ctx context.Context, userID string, onlyActive bool, limit int) ([]entities.FinancialGoal, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	return u.repo.ListByUser(ctx, userID, onlyActive, limit)
}

func (u *GoalUseCase) Archive(ctx context.Context, id, userID string) (entities.FinancialGoal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.FinancialGoal{}, ErrInvalidGoalID
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.FinancialGoal{}, ErrInvalidUserID
	}

	g, err := u.repo.Archive(ctx, id, userID)
	if err != nil {
		return entities.FinancialGoal{}, err
	}
	if g.ID == "" {
		return entities.FinancialGoal{}, ErrGoalNotFound
	}
	return g, nil
}
