package response

import (
	"time"

	"capitalys/internal/domain/entities"
	"capitalys/pkg"
)

type GoalResponse struct {
	ID                      string    `json:"id"`
	AssetType               string    `json:"asset_type"`
	EstimatedValue          float64   `json:"estimated_value"`
	EstimatedValueFormatted string    `json:"estimated_value_formatted"`
	AvailableCapital        float64   `json:"available_capital"`
	DesiredTerm             int       `json:"desired_term"`
	UrgencyLevel            string    `json:"urgency_level"`
	UrgencyLabel            string    `json:"urgency_label"`
	IsActive                bool      `json:"is_active"`
	CreatedAt               time.Time `json:"created_at"`
	UpdatedAt               time.Time `json:"updated_at"`
}

func FromGoal(g entities.FinancialGoal) GoalResponse {
	return GoalResponse{
		ID:                      g.ID,
		AssetType:               g.AssetType,
		EstimatedValue:          g.EstimatedValue,
		EstimatedValueFormatted: pkg.FormatCurrency(g.EstimatedValue),
		AvailableCapital:        g.AvailableCapital,
		DesiredTerm:             g.DesiredTerm,
		UrgencyLevel:            string(g.UrgencyLevel),
		UrgencyLabel:            entities.UrgencyLabels[g.UrgencyLevel],
		IsActive:                g.IsActive,
		CreatedAt:               g.CreatedAt,
		UpdatedAt:               g.UpdatedAt,
	}
}

// GoalDetailResponse is the single-goal read: the goal itself plus its
// latest decision (absent while the analysis is pending) and the strategy
// transition history.
type GoalDetailResponse struct {
	GoalResponse
	Decision *DecisionResponse         `json:"decision,omitempty"`
	History  []DecisionHistoryResponse `json:"history"`
}

func FromGoalDetail(g entities.FinancialGoal, decision *entities.DecisionResult, history []entities.DecisionHistory) GoalDetailResponse {
	return GoalDetailResponse{
		GoalResponse: FromGoal(g),
		Decision:     FromDecision(decision),
		History:      FromDecisionHistory(history),
	}
}

func FromGoals(goals []entities.FinancialGoal) []GoalResponse {
	out := make([]GoalResponse, 0, len(goals))
	for _, g := range goals {
		out = append(out, FromGoal(g))
	}
	return out
}
