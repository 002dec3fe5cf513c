package response

import (
	"time"

	"capitalys/internal/domain/entities"
)

type FinancialProfileResponse struct {
	ID                   string    `json:"id"`
	IncomeRange          string    `json:"income_range"`
	CreditStatus         string    `json:"credit_status"`
	RiskProfile          string    `json:"risk_profile"`
	RiskProfileLabel     string    `json:"risk_profile_label,omitempty"`
	IncomeStability      string    `json:"income_stability"`
	IncomeStabilityLabel string    `json:"income_stability_label,omitempty"`
	Dependents           int       `json:"dependents"`
	IsComplete           bool      `json:"is_complete"`
	MissingFields        []string  `json:"missing_fields,omitempty"`
	UpdatedAt            time.Time `json:"updated_at"`
}

func FromFinancialProfile(p entities.FinancialProfile) FinancialProfileResponse {
	return FinancialProfileResponse{
		ID:                   p.ID,
		IncomeRange:          p.IncomeRange,
		CreditStatus:         p.CreditStatus,
		RiskProfile:          string(p.RiskProfile),
		RiskProfileLabel:     entities.RiskProfileLabels[p.RiskProfile],
		IncomeStability:      string(p.IncomeStability),
		IncomeStabilityLabel: entities.IncomeStabilityLabels[p.IncomeStability],
		Dependents:           p.Dependents,
		IsComplete:           p.IsComplete(),
		MissingFields:        p.MissingFields(),
		UpdatedAt:            p.UpdatedAt,
	}
}
