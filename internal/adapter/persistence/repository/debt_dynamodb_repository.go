package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"nexupay/internal/domain/entities"
	"nexupay/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultDebtsTableName = "debts"
	debtsDebtorIndex      = "debtor_id-index"
)

type debtItem struct {
	ID               string `dynamodbav:"id"`
	DebtorID         string `dynamodbav:"debtor_id"`
	CRMID            string `dynamodbav:"crm_id,omitempty"`
	CRMType          string `dynamodbav:"crm_type,omitempty"`
	Name             string `dynamodbav:"name"`
	Amount           string `dynamodbav:"amount"`
	RemainingAmount  string `dynamodbav:"remaining_amount"`
	Status           string `dynamodbav:"status"`
	DueDate          string `dynamodbav:"due_date,omitempty"`
	OriginalCreditor string `dynamodbav:"original_creditor,omitempty"`
	Description      string `dynamodbav:"description,omitempty"`
	CreatedAt        string `dynamodbav:"created_at"`
	UpdatedAt        string `dynamodbav:"updated_at"`
}

// DebtDynamoRepository persists the canonical debt records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: debtor_id-index (PK: debtor_id)

type DebtDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDebtRepository = (*DebtDynamoRepository)(nil)

func NewDebtDynamoRepository(ddb *dynamodb.Client) *DebtDynamoRepository {
	return &DebtDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DEBTS_TABLE", defaultDebtsTableName),
	}
}

func (r *DebtDynamoRepository) Create(ctx context.Context, d entities.Debt) (entities.Debt, error) {
	it := toDebtItem(d)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Debt{}, err
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
		return entities.Debt{}, err
	}
	return d, nil
}

func (r *DebtDynamoRepository) GetByID(ctx context.Context, id string) (entities.Debt, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Debt{}, err
	}
	if len(out.Item) == 0 {
		return entities.Debt{}, nil
	}

	var it debtItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Debt{}, err
	}
	return fromDebtItem(it), nil
}

func (r *DebtDynamoRepository) ListByDebtorID(ctx context.Context, debtorID string) ([]entities.Debt, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(debtsDebtorIndex),
		KeyConditionExpression: aws.String("debtor_id = :debtor_id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":debtor_id": &types.AttributeValueMemberS{Value: debtorID},
		},
	})
	if err != nil {
		return nil, err
	}

	debts := make([]entities.Debt, 0, len(out.Items))
	for _, raw := range out.Items {
		var it debtItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		debts = append(debts, fromDebtItem(it))
	}
	return debts, nil
}

func (r *DebtDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.DebtStatus, remainingAmount float64) (entities.Debt, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #remaining_amount = :remaining_amount, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":           &types.AttributeValueMemberS{Value: string(status)},
			":remaining_amount": &types.AttributeValueMemberS{Value: floatToString(remainingAmount)},
			":updated_at":       &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":               "id",
			"#status":           "status",
			"#remaining_amount": "remaining_amount",
			"#updated_at":       "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Debt{}, nil
		}
		return entities.Debt{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Debt{}, nil
	}
	var it debtItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Debt{}, err
	}
	return fromDebtItem(it), nil
}

func (r *DebtDynamoRepository) UpdateCRMRef(ctx context.Context, id string, crmID string, crmType entities.CRMType) (entities.Debt, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #crm_id = :crm_id, #crm_type = :crm_type, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":crm_id":     &types.AttributeValueMemberS{Value: crmID},
			":crm_type":   &types.AttributeValueMemberS{Value: string(crmType)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#crm_id":     "crm_id",
			"#crm_type":   "crm_type",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Debt{}, nil
		}
		return entities.Debt{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Debt{}, nil
	}
	var it debtItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Debt{}, err
	}
	return fromDebtItem(it), nil
}

func toDebtItem(d entities.Debt) debtItem {
	it := debtItem{
		ID:               d.ID,
		DebtorID:         d.DebtorID,
		CRMID:            d.CRMID,
		CRMType:          string(d.CRMType),
		Name:             d.Name,
		Amount:           floatToString(d.Amount),
		RemainingAmount:  floatToString(d.RemainingAmount),
		Status:           string(d.Status),
		OriginalCreditor: d.OriginalCreditor,
		Description:      d.Description,
		CreatedAt:        d.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:        d.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if !d.DueDate.IsZero() {
		it.DueDate = d.DueDate.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromDebtItem(it debtItem) entities.Debt {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	dueDate, _ := time.Parse(time.RFC3339Nano, it.DueDate)
	amount, _ := strconv.ParseFloat(it.Amount, 64)
	remaining, _ := strconv.ParseFloat(it.RemainingAmount, 64)
	return entities.Debt{
		ID:               it.ID,
		DebtorID:         it.DebtorID,
		CRMID:            it.CRMID,
		CRMType:          entities.CRMType(it.CRMType),
		Name:             it.Name,
		Amount:           amount,
		RemainingAmount:  remaining,
		Status:           entities.DebtStatus(it.Status),
		DueDate:          dueDate,
		OriginalCreditor: it.OriginalCreditor,
		Description:      it.Description,
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}
}
