package repository

import (
	"context"
	"encoding/json"
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
	defaultDecisionResultsTableName = "decision_results"
	decisionResultsGoalIDIndex      = "goal_id-index"
)

type decisionResultItem struct {
	ID                  string `dynamodbav:"id"`
	GoalID              string `dynamodbav:"goal_id"`
	RecommendedStrategy string `dynamodbav:"recommended_strategy"`
	RankingRaw          string `dynamodbav:"ranking"`
	Explanation         string `dynamodbav:"explanation,omitempty"`
	ExplanationTitle    string `dynamodbav:"explanation_title,omitempty"`
	AnalysisDate        string `dynamodbav:"analysis_date"`
	CreatedAt           string `dynamodbav:"created_at"`
}

// DecisionResultDynamoRepository persists DecisionResult entities in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: goal_id-index (PK: goal_id)
//
// The ranking attribute stores the producer's JSON document verbatim. Rows
// written by older workflow revisions carry a different ranking shape, so
// reads run the document through the normalizer instead of unmarshalling a
// fixed struct.

type DecisionResultDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDecisionResultRepository = (*DecisionResultDynamoRepository)(nil)

func NewDecisionResultDynamoRepository(ddb *dynamodb.Client) *DecisionResultDynamoRepository {
	return &DecisionResultDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DECISION_RESULTS_TABLE", defaultDecisionResultsTableName),
	}
}

func (r *DecisionResultDynamoRepository) Create(ctx context.Context, d entities.DecisionResult, rankingRaw json.RawMessage) (entities.DecisionResult, error) {
	it := decisionResultItem{
		ID:                  d.ID,
		GoalID:              d.GoalID,
		RecommendedStrategy: d.RecommendedStrategy,
		RankingRaw:          string(rankingRaw),
		Explanation:         d.Explanation,
		ExplanationTitle:    d.ExplanationTitle,
		AnalysisDate:        d.AnalysisDate.UTC().Format(time.RFC3339Nano),
		CreatedAt:           d.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.DecisionResult{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.DecisionResult{}, err
	}

	d.Ranking = entities.NormalizeRanking(rankingRaw)
	return d, nil
}

func (r *DecisionResultDynamoRepository) LatestByGoalID(ctx context.Context, goalID string) (*entities.DecisionResult, error) {
	results, err := r.ListByGoalID(ctx, goalID)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return &results[0], nil
}

// ListByGoalID returns all results for a goal, most recent first.
func (r *DecisionResultDynamoRepository) ListByGoalID(ctx context.Context, goalID string) ([]entities.DecisionResult, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(decisionResultsGoalIDIndex),
		KeyConditionExpression: aws.String("goal_id = :gid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":gid": &types.AttributeValueMemberS{Value: goalID},
		},
	})
	if err != nil {
		return nil, err
	}

	results := make([]entities.DecisionResult, 0, len(out.Items))
	for _, raw := range out.Items {
		var it decisionResultItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		results = append(results, fromDecisionResultItem(it))
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].CreatedAt.After(results[j].CreatedAt)
	})
	return results, nil
}

func fromDecisionResultItem(it decisionResultItem) entities.DecisionResult {
	analysisDate, _ := time.Parse(time.RFC3339Nano, it.AnalysisDate)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.DecisionResult{
		ID:                  it.ID,
		GoalID:              it.GoalID,
		RecommendedStrategy: it.RecommendedStrategy,
		Ranking:             entities.NormalizeRanking(it.RankingRaw),
		Explanation:         it.Explanation,
		ExplanationTitle:    it.ExplanationTitle,
		AnalysisDate:        analysisDate,
		CreatedAt:           createdAt,
	}
}
