package repository

import (
	"context"
	"sort"
	"time"

	"capitalys/internal/domain/entities"
	"capitalys/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultIndicatorsTableName        = "economic_indicators"
	defaultIndicatorAnalysesTableName = "indicator_analysis"
	defaultInsightsTableName          = "insights"
	indicatorsTypeIndex               = "indicator_type-index"
)

type economicIndicatorItem struct {
	ID            string  `dynamodbav:"id"`
	IndicatorType string  `dynamodbav:"indicator_type"`
	Value         float64 `dynamodbav:"value"`
	ReferenceDate string  `dynamodbav:"reference_date"`
	Source        string  `dynamodbav:"source,omitempty"`
	CreatedAt     string  `dynamodbav:"created_at"`
}

type indicatorAnalysisItem struct {
	ID            string   `dynamodbav:"id"`
	IndicatorType string   `dynamodbav:"indicator_type"`
	CurrentValue  float64  `dynamodbav:"current_value"`
	Variation     *float64 `dynamodbav:"variation,omitempty"`
	Trend         string   `dynamodbav:"trend,omitempty"`
	CreatedAt     string   `dynamodbav:"created_at"`
}

type insightItem struct {
	ID              string `dynamodbav:"id"`
	ScenarioLabel   string `dynamodbav:"scenario_label"`
	InsightText     string `dynamodbav:"insight_text"`
	ScenarioSummary string `dynamodbav:"scenario_summary,omitempty"`
	CreatedAt       string `dynamodbav:"created_at"`
}

// IndicatorDynamoRepository reads economic indicator observations and their
// derived analyses from DynamoDB. Both tables are written by an external
// ingestion job; this repository is read-only.
//
// Table requirements:
//   - economic_indicators: PK id, GSI indicator_type-index (PK: indicator_type)
//   - indicator_analysis:  PK id

type IndicatorDynamoRepository struct {
	ddb           *dynamodb.Client
	tableName     string
	analysesTable string
}

var _ interfaces.IIndicatorRepository = (*IndicatorDynamoRepository)(nil)

func NewIndicatorDynamoRepository(ddb *dynamodb.Client) *IndicatorDynamoRepository {
	return &IndicatorDynamoRepository{
		ddb:           ddb,
		tableName:     getenvDefault("INDICATORS_TABLE", defaultIndicatorsTableName),
		analysesTable: getenvDefault("INDICATOR_ANALYSES_TABLE", defaultIndicatorAnalysesTableName),
	}
}

// LatestByType returns the most recent observation for one indicator, nil
// when none has been ingested yet.
func (r *IndicatorDynamoRepository) LatestByType(ctx context.Context, t entities.IndicatorType) (*entities.EconomicIndicator, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(indicatorsTypeIndex),
		KeyConditionExpression: aws.String("indicator_type = :t"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":t": &types.AttributeValueMemberS{Value: string(t)},
		},
	})
	if err != nil {
		return nil, err
	}
	if len(out.Items) == 0 {
		return nil, nil
	}

	var latest *entities.EconomicIndicator
	for _, raw := range out.Items {
		var it economicIndicatorItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		ind := fromEconomicIndicatorItem(it)
		if latest == nil || ind.CreatedAt.After(latest.CreatedAt) {
			latest = &ind
		}
	}
	return latest, nil
}

// LatestAnalyses returns the most recent analysis per indicator type.
func (r *IndicatorDynamoRepository) LatestAnalyses(ctx context.Context) ([]entities.IndicatorAnalysis, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.analysesTable),
	})
	if err != nil {
		return nil, err
	}

	latest := make(map[entities.IndicatorType]entities.IndicatorAnalysis)
	for _, raw := range out.Items {
		var it indicatorAnalysisItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
		a := entities.IndicatorAnalysis{
			ID:            it.ID,
			IndicatorType: entities.IndicatorType(it.IndicatorType),
			CurrentValue:  it.CurrentValue,
			Variation:     it.Variation,
			Trend:         entities.IndicatorTrend(it.Trend),
			CreatedAt:     createdAt,
		}
		if prev, ok := latest[a.IndicatorType]; !ok || a.CreatedAt.After(prev.CreatedAt) {
			latest[a.IndicatorType] = a
		}
	}

	analyses := make([]entities.IndicatorAnalysis, 0, len(latest))
	for _, a := range latest {
		analyses = append(analyses, a)
	}
	sort.Slice(analyses, func(i, j int) bool {
		return analyses[i].IndicatorType < analyses[j].IndicatorType
	})
	return analyses, nil
}

func fromEconomicIndicatorItem(it economicIndicatorItem) entities.EconomicIndicator {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.EconomicIndicator{
		ID:            it.ID,
		IndicatorType: entities.IndicatorType(it.IndicatorType),
		Value:         it.Value,
		ReferenceDate: it.ReferenceDate,
		Source:        it.Source,
		CreatedAt:     createdAt,
	}
}

// InsightDynamoRepository reads dashboard insights from DynamoDB.
//
// Table requirements:
//   - insights: PK id

type InsightDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInsightRepository = (*InsightDynamoRepository)(nil)

func NewInsightDynamoRepository(ddb *dynamodb.Client) *InsightDynamoRepository {
	return &InsightDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INSIGHTS_TABLE", defaultInsightsTableName),
	}
}

// Latest returns the most recent insight, nil when the table is empty.
func (r *InsightDynamoRepository) Latest(ctx context.Context) (*entities.Insight, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	var latest *entities.Insight
	for _, raw := range out.Items {
		var it insightItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
		ins := entities.Insight{
			ID:              it.ID,
			ScenarioLabel:   it.ScenarioLabel,
			InsightText:     it.InsightText,
			ScenarioSummary: it.ScenarioSummary,
			CreatedAt:       createdAt,
		}
		if latest == nil || ins.CreatedAt.After(latest.CreatedAt) {
			latest = &ins
		}
	}
	return latest, nil
}
