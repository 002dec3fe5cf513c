package repository

import (
	"context"
	"errors"
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
	defaultGoalsTableName = "financial_goals"
	goalsUserIDIndex      = "user_id-index"
)

type goalItem struct {
	ID               string  `dynamodbav:"id"`
	UserID           string  `dynamodbav:"user_id"`
	AssetType        string  `dynamodbav:"asset_type"`
	EstimatedValue   float64 `dynamodbav:"estimated_value"`
	AvailableCapital float64 `dynamodbav:"available_capital"`
	DesiredTerm      int     `dynamodbav:"desired_term"`
	UrgencyLevel     string  `dynamodbav:"urgency_level"`
	IsActive         bool    `dynamodbav:"is_active"`
	CreatedAt        string  `dynamodbav:"created_at"`
	UpdatedAt        string  `dynamodbav:"updated_at"`
}

// GoalDynamoRepository persists FinancialGoal entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)

type GoalDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IGoalRepository = (*GoalDynamoRepository)(nil)

func NewGoalDynamoRepository(ddb *dynamodb.Client) *GoalDynamoRepository {
	return &GoalDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("GOALS_TABLE", defaultGoalsTableName),
	}
}

func (r *GoalDynamoRepository) Create(ctx context.Context, g entities.FinancialGoal) (entities.FinancialGoal, error) {
	it := toGoalItem(g)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.FinancialGoal{}, err
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
		return entities.FinancialGoal{}, err
	}
	return g, nil
}

func (r *GoalDynamoRepository) GetByID(ctx context.Context, id, userID string) (entities.FinancialGoal, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.FinancialGoal{}, err
	}
	if len(out.Item) == 0 {
		return entities.FinancialGoal{}, nil
	}

	var it goalItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.FinancialGoal{}, err
	}
	// Ownership check: a goal id from another user resolves as not found.
	if it.UserID != userID {
		return entities.FinancialGoal{}, nil
	}
	return fromGoalItem(it), nil
}

func (r *GoalDynamoRepository) ListByUser(ctx context.Context, userID string, onlyActive bool, limit int) ([]entities.FinancialGoal, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(goalsUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, err
	}

	goals := make([]entities.FinancialGoal, 0, len(out.Items))
	for _, raw := range out.Items {
		var it goalItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		if onlyActive && !it.IsActive {
			continue
		}
		goals = append(goals, fromGoalItem(it))
	}

	sort.Slice(goals, func(i, j int) bool {
		return goals[i].CreatedAt.After(goals[j].CreatedAt)
	})
	if limit > 0 && len(goals) > limit {
		goals = goals[:limit]
	}
	return goals, nil
}

func (r *GoalDynamoRepository) ListActive(ctx context.Context) ([]entities.FinancialGoal, error) {
	var goals []entities.FinancialGoal
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(r.tableName),
			FilterExpression: aws.String("is_active = :active"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":active": &types.AttributeValueMemberBOOL{Value: true},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it goalItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			goals = append(goals, fromGoalItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return goals, nil
}

func (r *GoalDynamoRepository) Archive(ctx context.Context, id, userID string) (entities.FinancialGoal, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #user_id = :uid"),
		UpdateExpression:    aws.String("SET #is_active = :inactive, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid":        &types.AttributeValueMemberS{Value: userID},
			":inactive":   &types.AttributeValueMemberBOOL{Value: false},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#user_id":    "user_id",
			"#is_active":  "is_active",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.FinancialGoal{}, nil
		}
		return entities.FinancialGoal{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.FinancialGoal{}, nil
	}

	var it goalItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.FinancialGoal{}, err
	}
	return fromGoalItem(it), nil
}

func toGoalItem(g entities.FinancialGoal) goalItem {
	return goalItem{
		ID:               g.ID,
		UserID:           g.UserID,
		AssetType:        g.AssetType,
		EstimatedValue:   g.EstimatedValue,
		AvailableCapital: g.AvailableCapital,
		DesiredTerm:      g.DesiredTerm,
		UrgencyLevel:     string(g.UrgencyLevel),
		IsActive:         g.IsActive,
		CreatedAt:        g.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:        g.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromGoalItem(it goalItem) entities.FinancialGoal {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.FinancialGoal{
		ID:               it.ID,
		UserID:           it.UserID,
		AssetType:        it.AssetType,
		EstimatedValue:   it.EstimatedValue,
		AvailableCapital: it.AvailableCapital,
		DesiredTerm:      it.DesiredTerm,
		UrgencyLevel:     entities.UrgencyLevel(it.UrgencyLevel),
		IsActive:         it.IsActive,
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}
}
