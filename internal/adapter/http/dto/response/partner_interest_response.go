package response

import (
	"time"

	"capitalys/internal/domain/entities"
)

type PartnerInterestResponse struct {
	ID                    string    `json:"id"`
	GoalID                string    `json:"goal_id"`
	DecisionResultID      string    `json:"decision_result_id,omitempty"`
	SelectedStrategy      string    `json:"selected_strategy"`
	SelectedStrategyLabel string    `json:"selected_strategy_label"`
	CreatedAt             time.Time `json:"created_at"`
}

func FromPartnerInterest(pi entities.PartnerInterest) PartnerInterestResponse {
	return PartnerInterestResponse{
		ID:                    pi.ID,
		GoalID:                pi.GoalID,
		DecisionResultID:      pi.DecisionResultID,
		SelectedStrategy:      pi.SelectedStrategy,
		SelectedStrategyLabel: entities.StrategyLabel(pi.SelectedStrategy),
		CreatedAt:             pi.CreatedAt,
	}
}
