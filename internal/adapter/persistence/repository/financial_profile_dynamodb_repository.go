package repository

import (
	"context"
	"time"

	"capitalys/internal/domain/entities"
	"capitalys/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultProfilesTableName = "user_financial_profile"

type financialProfileItem struct {
	UserID          string `dynamodbav:"user_id"`
	ID              string `dynamodbav:"id"`
	IncomeRange     string `dynamodbav:"income_range"`
	CreditStatus    string `dynamodbav:"credit_status"`
	RiskProfile     string `dynamodbav:"risk_profile"`
	IncomeStability string `dynamodbav:"income_stability"`
	Dependents      int    `dynamodbav:"dependents"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

// FinancialProfileDynamoRepository persists FinancialProfile entities in
// DynamoDB.
//
// Table requirements:
//   - PK: user_id (string)
//
// One row per user; Upsert overwrites unconditionally.

type FinancialProfileDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IFinancialProfileRepository = (*FinancialProfileDynamoRepository)(nil)

func NewFinancialProfileDynamoRepository(ddb *dynamodb.Client) *FinancialProfileDynamoRepository {
	return &FinancialProfileDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROFILES_TABLE", defaultProfilesTableName),
	}
}

func (r *FinancialProfileDynamoRepository) GetByUserID(ctx context.Context, userID string) (entities.FinancialProfile, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"user_id": &types.AttributeValueMemberS{Value: userID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.FinancialProfile{}, err
	}
	if len(out.Item) == 0 {
		return entities.FinancialProfile{}, nil
	}

	var it financialProfileItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.FinancialProfile{}, err
	}
	return fromFinancialProfileItem(it), nil
}

func (r *FinancialProfileDynamoRepository) Upsert(ctx context.Context, p entities.FinancialProfile) (entities.FinancialProfile, error) {
	it := financialProfileItem{
		UserID:          p.UserID,
		ID:              p.ID,
		IncomeRange:     p.IncomeRange,
		CreditStatus:    p.CreditStatus,
		RiskProfile:     string(p.RiskProfile),
		IncomeStability: string(p.IncomeStability),
		Dependents:      p.Dependents,
		CreatedAt:       p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:       p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.FinancialProfile{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.FinancialProfile{}, err
	}
	return p, nil
}

func fromFinancialProfileItem(it financialProfileItem) entities.FinancialProfile {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.FinancialProfile{
		ID:              it.ID,
		UserID:          it.UserID,
		IncomeRange:     it.IncomeRange,
		CreditStatus:    it.CreditStatus,
		RiskProfile:     entities.RiskProfile(it.RiskProfile),
		IncomeStability: entities.IncomeStability(it.IncomeStability),
		Dependents:      it.Dependents,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}
}
