package entities

import "time"

type IndicatorType string

const (
	IndicatorSelic IndicatorType = "selic"
	IndicatorIPCA  IndicatorType = "ipca"
	IndicatorPIB   IndicatorType = "pib_crescimento"
)

type IndicatorTrend string

const (
	TrendAlta    IndicatorTrend = "alta"
	TrendQueda   IndicatorTrend = "queda"
	TrendEstavel IndicatorTrend = "estavel"
)

// EconomicIndicator is a raw indicator observation ingested from an external
// source (Selic, IPCA, PIB growth).
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (indicator_type-index): indicator_type
type EconomicIndicator struct {
	ID            string        `json:"id"`
	IndicatorType IndicatorType `json:"indicator_type"`
	Value         float64       `json:"value"`
	ReferenceDate string        `json:"reference_date"`
	Source        string        `json:"source,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
}

// IndicatorAnalysis is a derived reading of one indicator: current value,
// variation against the previous observation and the resulting trend.
type IndicatorAnalysis struct {
	ID            string         `json:"id"`
	IndicatorType IndicatorType  `json:"indicator_type"`
	CurrentValue  float64        `json:"current_value"`
	Variation     *float64       `json:"variation,omitempty"`
	Trend         IndicatorTrend `json:"trend,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
}

// Insight is a short market commentary shown on the dashboard.
type Insight struct {
	ID              string    `json:"id"`
	ScenarioLabel   string    `json:"scenario_label"`
	InsightText     string    `json:"insight_text"`
	ScenarioSummary string    `json:"scenario_summary,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}
