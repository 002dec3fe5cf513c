package entities

import "time"

// PartnerInterest records that a user asked to be contacted by an accredited
// partner about one of the ranked strategies.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Fire-and-forget: the application writes it and never reads it back.
type PartnerInterest struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	GoalID           string    `json:"goal_id"`
	DecisionResultID string    `json:"decision_result_id,omitempty"`
	SelectedStrategy string    `json:"selected_strategy"`
	CreatedAt        time.Time `json:"created_at"`
}
