package response

import "capitalys/internal/domain/entities"

// GoalAnalysisResponse is the submission outcome: the created goal plus its
// decision when the analysis finished inside the wait window. Status is
// "resolvida" or "processando".
type GoalAnalysisResponse struct {
	Status   string            `json:"status"`
	Goal     GoalResponse      `json:"goal"`
	Decision *DecisionResponse `json:"decision,omitempty"`
}

func FromAnalysis(status string, goal entities.FinancialGoal, decision *entities.DecisionResult) GoalAnalysisResponse {
	return GoalAnalysisResponse{
		Status:   status,
		Goal:     FromGoal(goal),
		Decision: FromDecision(decision),
	}
}
