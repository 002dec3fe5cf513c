package entities

import "time"

// Strategy type tags produced by the decisioning engine. Older rows written
// by previous workflow revisions may carry free-form variants; readers go
// through the normalizer and must not assume this closed set.
const (
	StrategyConsorcio = "consorcio"
	StrategyRendaFixa = "renda_fixa"
	StrategyCredito   = "credito"
)

// StrategyOption is one ranked entry within a DecisionResult.
//
// Cost, installment and time are display strings: ranking payloads have
// shipped in two generations (numeric fields vs pre-formatted strings) and
// the normalizer coerces both into this shape.
type StrategyOption struct {
	Type               string   `json:"tipo"`
	Name               string   `json:"nome"`
	TotalCost          string   `json:"custo_total"`
	MonthlyInstallment string   `json:"parcela_mensal"`
	TimeToComplete     string   `json:"tempo_para_conquista"`
	Advantages         []string `json:"vantagens"`
	Score              float64  `json:"score"`
}

// DecisionResult is the computed, ranked set of financing strategies for a
// goal.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (goal_id-index): goal_id
//
// A goal may accumulate several results over time; the most recently created
// one is authoritative. The ranking attribute is persisted as the raw JSON
// document produced by the writer, whatever its generation, and normalized
// on read.
type DecisionResult struct {
	ID                  string           `json:"id"`
	GoalID              string           `json:"goal_id"`
	RecommendedStrategy string           `json:"recommended_strategy"`
	Ranking             []StrategyOption `json:"ranking"`
	Explanation         string           `json:"explanation"`
	ExplanationTitle    string           `json:"explanation_title"`
	AnalysisDate        time.Time        `json:"analysis_date"`
	CreatedAt           time.Time        `json:"created_at"`
}

// DecisionHistory records a prior-strategy to new-strategy transition for a
// goal, optionally attributing it to an economic indicator delta.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (goal_id-index): goal_id
//
// Append-only; rows are never mutated.
type DecisionHistory struct {
	ID                string    `json:"id"`
	GoalID            string    `json:"goal_id"`
	PreviousStrategy  string    `json:"previous_strategy"`
	NewStrategy       string    `json:"new_strategy"`
	IndicatorChanged  string    `json:"indicator_changed,omitempty"`
	OldIndicatorValue *float64  `json:"old_indicator_value,omitempty"`
	NewIndicatorValue *float64  `json:"new_indicator_value,omitempty"`
	Reason            string    `json:"reason,omitempty"`
	ChangedAt         time.Time `json:"changed_at"`
}
