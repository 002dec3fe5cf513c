package repository

import (
	"context"
	"time"

	"capitalys/internal/domain/entities"
	"capitalys/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultPartnerInterestTableName = "partner_interest"

type partnerInterestItem struct {
	ID               string `dynamodbav:"id"`
	UserID           string `dynamodbav:"user_id"`
	GoalID           string `dynamodbav:"goal_id"`
	DecisionResultID string `dynamodbav:"decision_result_id,omitempty"`
	SelectedStrategy string `dynamodbav:"selected_strategy"`
	CreatedAt        string `dynamodbav:"created_at"`
}

// PartnerInterestDynamoRepository persists PartnerInterest entities in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Write-only from the application's perspective; partner tooling consumes
// the table directly.

type PartnerInterestDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPartnerInterestRepository = (*PartnerInterestDynamoRepository)(nil)

func NewPartnerInterestDynamoRepository(ddb *dynamodb.Client) *PartnerInterestDynamoRepository {
	return &PartnerInterestDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PARTNER_INTEREST_TABLE", defaultPartnerInterestTableName),
	}
}

func (r *PartnerInterestDynamoRepository) Create(ctx context.Context, pi entities.PartnerInterest) (entities.PartnerInterest, error) {
	it := partnerInterestItem{
		ID:               pi.ID,
		UserID:           pi.UserID,
		GoalID:           pi.GoalID,
		DecisionResultID: pi.DecisionResultID,
		SelectedStrategy: pi.SelectedStrategy,
		CreatedAt:        pi.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.PartnerInterest{}, err
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
		return entities.PartnerInterest{}, err
	}
	return pi, nil
}
