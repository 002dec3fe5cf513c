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
	defaultDecisionHistoryTableName = "decision_history"
	decisionHistoryGoalIDIndex      = "goal_id-index"
)

type decisionHistoryItem struct {
	ID                string   `dynamodbav:"id"`
	GoalID            string   `dynamodbav:"goal_id"`
	PreviousStrategy  string   `dynamodbav:"previous_strategy,omitempty"`
	NewStrategy       string   `dynamodbav:"new_strategy"`
	IndicatorChanged  string   `dynamodbav:"indicator_changed,omitempty"`
	OldIndicatorValue *float64 `dynamodbav:"old_indicator_value,omitempty"`
	NewIndicatorValue *float64 `dynamodbav:"new_indicator_value,omitempty"`
	Reason            string   `dynamodbav:"reason,omitempty"`
	ChangedAt         string   `dynamodbav:"changed_at"`
}

// DecisionHistoryDynamoRepository persists the append-only strategy
// transition log in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: goal_id-index (PK: goal_id)

type DecisionHistoryDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDecisionHistoryRepository = (*DecisionHistoryDynamoRepository)(nil)

func NewDecisionHistoryDynamoRepository(ddb *dynamodb.Client) *DecisionHistoryDynamoRepository {
	return &DecisionHistoryDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DECISION_HISTORY_TABLE", defaultDecisionHistoryTableName),
	}
}

func (r *DecisionHistoryDynamoRepository) Create(ctx context.Context, h entities.DecisionHistory) (entities.DecisionHistory, error) {
	it := decisionHistoryItem{
		ID:                h.ID,
		GoalID:            h.GoalID,
		PreviousStrategy:  h.PreviousStrategy,
		NewStrategy:       h.NewStrategy,
		IndicatorChanged:  h.IndicatorChanged,
		OldIndicatorValue: h.OldIndicatorValue,
		NewIndicatorValue: h.NewIndicatorValue,
		Reason:            h.Reason,
		ChangedAt:         h.ChangedAt.UTC().Format(time.RFC3339Nano),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.DecisionHistory{}, err
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
		return entities.DecisionHistory{}, err
	}
	return h, nil
}

// ListByGoalID returns the transition log for a goal, most recent first.
func (r *DecisionHistoryDynamoRepository) ListByGoalID(ctx context.Context, goalID string) ([]entities.DecisionHistory, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(decisionHistoryGoalIDIndex),
		KeyConditionExpression: aws.String("goal_id = :gid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":gid": &types.AttributeValueMemberS{Value: goalID},
		},
	})
	if err != nil {
		return nil, err
	}

	entries := make([]entities.DecisionHistory, 0, len(out.Items))
	for _, raw := range out.Items {
		var it decisionHistoryItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		changedAt, _ := time.Parse(time.RFC3339Nano, it.ChangedAt)
		entries = append(entries, entities.DecisionHistory{
			ID:                it.ID,
			GoalID:            it.GoalID,
			PreviousStrategy:  it.PreviousStrategy,
			NewStrategy:       it.NewStrategy,
			IndicatorChanged:  it.IndicatorChanged,
			OldIndicatorValue: it.OldIndicatorValue,
			NewIndicatorValue: it.NewIndicatorValue,
			Reason:            it.Reason,
			ChangedAt:         changedAt,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ChangedAt.After(entries[j].ChangedAt)
	})
	return entries, nil
}
