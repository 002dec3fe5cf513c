package interfaces

import (
	"context"

	"capitalys/internal/domain/entities"
)

// IFinancialProfileRepository persists the per-user financial profile.
// GetByUserID returns the zero value when the user has no profile yet.
type IFinancialProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (entities.FinancialProfile, error)
	Upsert(ctx context.Context, p entities.FinancialProfile) (entities.FinancialProfile, error)
}
