package interfaces

import (
	"context"

	"capitalys/internal/domain/entities"
)

// IPartnerInterestRepository persists partner interest rows. Write-only from
// the application's point of view.
type IPartnerInterestRepository interface {
	Create(ctx context.Context, pi entities.PartnerInterest) (entities.PartnerInterest, error)
}

// IPartnerNotifier forwards a registered interest to the accredited partner
// network (e.g. an outbound webhook). Failures are logged by callers and
// never abort the registration.
type IPartnerNotifier interface {
	NotifyInterest(ctx context.Context, pi entities.PartnerInterest, goal entities.FinancialGoal) error
}
