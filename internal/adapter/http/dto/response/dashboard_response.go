package response

import (
	"capitalys/internal/domain/entities"
)

type InsightResponse struct {
	ID              string `json:"id"`
	ScenarioLabel   string `json:"scenario_label"`
	InsightText     string `json:"insight_text"`
	ScenarioSummary string `json:"scenario_summary,omitempty"`
}

type IndicatorAnalysisResponse struct {
	IndicatorType string   `json:"indicator_type"`
	IndicatorName string   `json:"indicator_name"`
	CurrentValue  float64  `json:"current_value"`
	Variation     *float64 `json:"variation,omitempty"`
	Trend         string   `json:"trend,omitempty"`
}

type DashboardResponse struct {
	Greeting   string                      `json:"greeting"`
	Goals      []GoalResponse              `json:"goals"`
	Insight    *InsightResponse            `json:"insight,omitempty"`
	Indicators []IndicatorAnalysisResponse `json:"indicators"`
}

func FromDashboard(greeting string, goals []entities.FinancialGoal, insight *entities.Insight, indicators []entities.IndicatorAnalysis) DashboardResponse {
	resp := DashboardResponse{
		Greeting:   greeting,
		Goals:      FromGoals(goals),
		Indicators: make([]IndicatorAnalysisResponse, 0, len(indicators)),
	}
	if insight != nil {
		resp.Insight = &InsightResponse{
			ID:              insight.ID,
			ScenarioLabel:   insight.ScenarioLabel,
			InsightText:     insight.InsightText,
			ScenarioSummary: insight.ScenarioSummary,
		}
	}
	for _, a := range indicators {
		resp.Indicators = append(resp.Indicators, IndicatorAnalysisResponse{
			IndicatorType: string(a.IndicatorType),
			IndicatorName: entities.IndicatorNames[a.IndicatorType],
			CurrentValue:  a.CurrentValue,
			Variation:     a.Variation,
			Trend:         string(a.Trend),
		})
	}
	return resp
}
