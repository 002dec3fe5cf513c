package request

import "strings"

// CreateGoalRequest is the payload for goal submission.
type CreateGoalRequest struct {
	AssetType        string  `json:"asset_type" binding:"required"`
	EstimatedValue   float64 `json:"estimated_value" binding:"required"`
	AvailableCapital float64 `json:"available_capital"`
	DesiredTerm      int     `json:"desired_term" binding:"required"`
	UrgencyLevel     string  `json:"urgency_level"`
}

func (r CreateGoalRequest) ResolveAssetType() string {
	return strings.TrimSpace(r.AssetType)
}

func (r CreateGoalRequest) ResolveUrgency() string {
	return strings.ToLower(strings.TrimSpace(r.UrgencyLevel))
}
