package entities

import "time"

// UrgencyLevel classifies how soon the user needs the asset.

type UrgencyLevel string

const (
	UrgencyBaixa   UrgencyLevel = "baixa"
	UrgencyMedia   UrgencyLevel = "media"
	UrgencyAlta    UrgencyLevel = "alta"
	UrgencyUrgente UrgencyLevel = "urgente"
)

// Valid reports whether the level is one of the closed set.
func (u UrgencyLevel) Valid() bool {
	switch u {
	case UrgencyBaixa, UrgencyMedia, UrgencyAlta, UrgencyUrgente:
		return true
	}
	return false
}

// FinancialGoal is a user's declared intention to acquire an asset under
// stated financial constraints.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id
//
// Goals are immutable after creation except for IsActive (archival).
// Each goal is owned by exactly one user; every read is owner-filtered.
type FinancialGoal struct {
	ID               string       `json:"id"`
	UserID           string       `json:"user_id"`
	AssetType        string       `json:"asset_type"`
	EstimatedValue   float64      `json:"estimated_value"`
	AvailableCapital float64      `json:"available_capital"`
	DesiredTerm      int          `json:"desired_term"`
	UrgencyLevel     UrgencyLevel `json:"urgency_level"`
	IsActive         bool         `json:"is_active"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
}
