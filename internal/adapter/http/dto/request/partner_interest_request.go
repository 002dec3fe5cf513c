package request

import "strings"

// PartnerInterestRequest registers interest in one ranked strategy.
type PartnerInterestRequest struct {
	GoalID           string `json:"goal_id" binding:"required"`
	SelectedStrategy string `json:"selected_strategy" binding:"required"`
}

func (r PartnerInterestRequest) ResolveGoalID() string {
	return strings.TrimSpace(r.GoalID)
}

func (r PartnerInterestRequest) ResolveStrategy() string {
	return strings.ToLower(strings.TrimSpace(r.SelectedStrategy))
}
