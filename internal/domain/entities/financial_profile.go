package entities

import "time"

type RiskProfile string

const (
	RiskConservador RiskProfile = "conservador"
	RiskModerado    RiskProfile = "moderado"
	RiskAgressivo   RiskProfile = "agressivo"
)

type IncomeStability string

const (
	StabilityCLT         IncomeStability = "clt"
	StabilityAutonomo    IncomeStability = "autonomo"
	StabilityPJ          IncomeStability = "pj"
	StabilityNaoInformado IncomeStability = "nao_informado"
)

// FinancialProfile is the per-user self-reported income/credit/risk record
// used to personalize goal analysis.
//
// Storage model (DynamoDB):
//   - PK: user_id (at most one row per user; writes are upserts)
//
// Completeness of this record gates goal creation. The gate is advisory and
// enforced only on the creation path; the store itself accepts partial rows.
type FinancialProfile struct {
	ID              string          `json:"id"`
	UserID          string          `json:"user_id"`
	IncomeRange     string          `json:"income_range"`
	CreditStatus    string          `json:"credit_status"`
	RiskProfile     RiskProfile     `json:"risk_profile"`
	IncomeStability IncomeStability `json:"income_stability"`
	Dependents      int             `json:"dependents"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// MissingFields returns the user-facing names of required fields that are
// still empty. Dependents is optional and never reported.
func (p FinancialProfile) MissingFields() []string {
	var missing []string
	if p.IncomeRange == "" {
		missing = append(missing, "Faixa de renda")
	}
	if p.CreditStatus == "" {
		missing = append(missing, "Situação de crédito")
	}
	if p.RiskProfile == "" {
		missing = append(missing, "Perfil de risco")
	}
	if p.IncomeStability == "" {
		missing = append(missing, "Estabilidade de renda")
	}
	return missing
}

// IsComplete reports whether all four required fields are filled.
func (p FinancialProfile) IsComplete() bool {
	return len(p.MissingFields()) == 0
}
