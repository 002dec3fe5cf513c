package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"capitalys/internal/domain/entities"
	"capitalys/internal/usecase/interfaces"
)

// SaveProfileInput is the domain command for the financial profile upsert.
type SaveProfileInput struct {
	IncomeRange     string
	CreditStatus    string
	RiskProfile     entities.RiskProfile
	IncomeStability entities.IncomeStability
	Dependents      int
}

// IFinancialProfileUseCase exposes the financial profile operations.
//
// Save applies the same completeness validation the profile form does: a
// partially filled payload is rejected with the missing field names instead
// of being written.
type IFinancialProfileUseCase interface {
	GetByUserID(ctx context.Context, userID string) (entities.FinancialProfile, error)
	Save(ctx context.Context, userID string, input SaveProfileInput) (entities.FinancialProfile, error)
}

type FinancialProfileUseCase struct {
	repo interfaces.IFinancialProfileRepository
}

var _ IFinancialProfileUseCase = (*FinancialProfileUseCase)(nil)

func NewFinancialProfileUseCase(repo interfaces.IFinancialProfileRepository) *FinancialProfileUseCase {
	return &FinancialProfileUseCase{repo: repo}
}

func (u *FinancialProfileUseCase) GetByUserID(ctx context.Context, userID string) (entities.FinancialProfile, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.FinancialProfile{}, ErrInvalidUserID
	}
	return u.repo.GetByUserID(ctx, userID)
}

func (u *FinancialProfileUseCase) Save(ctx context.Context, userID string, input SaveProfileInput) (entities.FinancialProfile, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.FinancialProfile{}, ErrInvalidUserID
	}
	if input.Dependents < 0 {
		input.Dependents = 0
	}

	now := time.Now().UTC()
	p := entities.FinancialProfile{
		UserID:          userID,
		IncomeRange:     strings.TrimSpace(input.IncomeRange),
		CreditStatus:    strings.TrimSpace(input.CreditStatus),
		RiskProfile:     input.RiskProfile,
		IncomeStability: input.IncomeStability,
		Dependents:      input.Dependents,
		UpdatedAt:       now,
	}

	if missing := p.MissingFields(); len(missing) > 0 {
		return entities.FinancialProfile{}, &IncompleteProfileError{Missing: missing}
	}

	existing, err := u.repo.GetByUserID(ctx, userID)
	if err != nil {
		return entities.FinancialProfile{}, err
	}
	if existing.ID != "" {
		p.ID = existing.ID
		p.CreatedAt = existing.CreatedAt
	} else {
		p.ID = uuid.NewString()
		p.CreatedAt = now
	}

	saved, err := u.repo.Upsert(ctx, p)
	if err != nil {
		return entities.FinancialProfile{}, err
	}
	log.Printf("[profile][usecase] saved user_id=%s profile_id=%s", userID, saved.ID)
	return saved, nil
}
