package interfaces

import (
	"context"

	"capitalys/internal/domain/entities"
)

// IIndicatorRepository reads economic indicator observations and their
// derived analyses. Both return nil/empty when nothing has been ingested.
type IIndicatorRepository interface {
	LatestByType(ctx context.Context, t entities.IndicatorType) (*entities.EconomicIndicator, error)
	LatestAnalyses(ctx context.Context) ([]entities.IndicatorAnalysis, error)
}

// IInsightRepository reads dashboard insights. Latest returns nil when none
// exist.
type IInsightRepository interface {
	Latest(ctx context.Context) (*entities.Insight, error)
}
