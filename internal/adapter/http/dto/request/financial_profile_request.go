package request

import "strings"

// SaveProfileRequest is the payload for the financial profile upsert. All
// four qualitative fields are required for the profile to be considered
// complete; binding only enforces presence, completeness is validated by
// the use case so the error can name the missing fields.
type SaveProfileRequest struct {
	IncomeRange     string `json:"income_range"`
	CreditStatus    string `json:"credit_status"`
	RiskProfile     string `json:"risk_profile"`
	IncomeStability string `json:"income_stability"`
	Dependents      int    `json:"dependents"`
}

func (r SaveProfileRequest) ResolveRiskProfile() string {
	return strings.ToLower(strings.TrimSpace(r.RiskProfile))
}

func (r SaveProfileRequest) ResolveIncomeStability() string {
	return strings.ToLower(strings.TrimSpace(r.IncomeStability))
}
