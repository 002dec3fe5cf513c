package response

import (
	"time"

	"capitalys/internal/domain/entities"
	"capitalys/pkg"
)

type DecisionResponse struct {
	ID                       string                    `json:"id"`
	GoalID                   string                    `json:"goal_id"`
	RecommendedStrategy      string                    `json:"recommended_strategy"`
	RecommendedStrategyLabel string                    `json:"recommended_strategy_label"`
	Ranking                  []entities.StrategyOption `json:"ranking"`
	Explanation              string                    `json:"explanation,omitempty"`
	ExplanationTitle         string                    `json:"explanation_title,omitempty"`
	AnalysisDate             string                    `json:"analysis_date"`
	CreatedAt                time.Time                 `json:"created_at"`
}

// FromDecision maps an already-normalized decision result. Ranking entries
// carry display strings regardless of which generation wrote the row.
func FromDecision(d *entities.DecisionResult) *DecisionResponse {
	if d == nil {
		return nil
	}
	return &DecisionResponse{
		ID:                       d.ID,
		GoalID:                   d.GoalID,
		RecommendedStrategy:      d.RecommendedStrategy,
		RecommendedStrategyLabel: entities.StrategyLabel(d.RecommendedStrategy),
		Ranking:                  d.Ranking,
		Explanation:              d.Explanation,
		ExplanationTitle:         d.ExplanationTitle,
		AnalysisDate:             pkg.FormatDate(d.AnalysisDate.Format(time.RFC3339)),
		CreatedAt:                d.CreatedAt,
	}
}

type DecisionHistoryResponse struct {
	ID                string   `json:"id"`
	GoalID            string   `json:"goal_id"`
	PreviousStrategy  string   `json:"previous_strategy"`
	NewStrategy       string   `json:"new_strategy"`
	IndicatorChanged  string   `json:"indicator_changed,omitempty"`
	OldIndicatorValue *float64 `json:"old_indicator_value,omitempty"`
	NewIndicatorValue *float64 `json:"new_indicator_value,omitempty"`
	Reason            string   `json:"reason,omitempty"`
	ChangedAt         string   `json:"changed_at"`
}

func FromDecisionHistory(entries []entities.DecisionHistory) []DecisionHistoryResponse {
	out := make([]DecisionHistoryResponse, 0, len(entries))
	for _, h := range entries {
		out = append(out, DecisionHistoryResponse{
			ID:                h.ID,
			GoalID:            h.GoalID,
			PreviousStrategy:  h.PreviousStrategy,
			NewStrategy:       h.NewStrategy,
			IndicatorChanged:  h.IndicatorChanged,
			OldIndicatorValue: h.OldIndicatorValue,
			NewIndicatorValue: h.NewIndicatorValue,
			Reason:            h.Reason,
			ChangedAt:         pkg.FormatDateTime(h.ChangedAt),
		})
	}
	return out
}
