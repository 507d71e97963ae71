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
	defaultDebtorsTableName = "debtors"
	debtorsEmailIndex       = "email-index"
)

type debtorItem struct {
	ID             string `dynamodbav:"id"`
	CRMID          string `dynamodbav:"crm_id,omitempty"`
	CRMType        string `dynamodbav:"crm_type,omitempty"`
	FirstName      string `dynamodbav:"first_name"`
	LastName       string `dynamodbav:"last_name"`
	Email          string `dynamodbav:"email"`
	Phone          string `dynamodbav:"phone,omitempty"`
	RUT            string `dynamodbav:"rut,omitempty"`
	TotalDebt      string `dynamodbav:"total_debt"`
	PlatformUserID string `dynamodbav:"platform_user_id"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
}

// DebtorDynamoRepository persists the canonical debtor records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: email-index (PK: email)

type DebtorDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDebtorRepository = (*DebtorDynamoRepository)(nil)

func NewDebtorDynamoRepository(ddb *dynamodb.Client) *DebtorDynamoRepository {
	return &DebtorDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DEBTORS_TABLE", defaultDebtorsTableName),
	}
}

func (r *DebtorDynamoRepository) Create(ctx context.Context, c entities.Contact) (entities.Contact, error) {
	it := toDebtorItem(c)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Contact{}, err
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
		return entities.Contact{}, err
	}
	return c, nil
}

func (r *DebtorDynamoRepository) GetByID(ctx context.Context, id string) (entities.Contact, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Contact{}, err
	}
	if len(out.Item) == 0 {
		return entities.Contact{}, nil
	}

	var it debtorItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Contact{}, err
	}
	return fromDebtorItem(it), nil
}

func (r *DebtorDynamoRepository) GetByEmail(ctx context.Context, email string) (entities.Contact, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(debtorsEmailIndex),
		KeyConditionExpression: aws.String("email = :email"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":email": &types.AttributeValueMemberS{Value: email},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Contact{}, err
	}
	if len(out.Items) == 0 {
		return entities.Contact{}, nil
	}

	var it debtorItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Contact{}, err
	}
	return fromDebtorItem(it), nil
}

func (r *DebtorDynamoRepository) List(ctx context.Context, limit int) ([]entities.Contact, error) {
	input := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	if limit > 0 {
		input.Limit = aws.Int32(int32(limit))
	}
	out, err := r.ddb.Scan(ctx, input)
	if err != nil {
		return nil, err
	}

	debtors := make([]entities.Contact, 0, len(out.Items))
	for _, raw := range out.Items {
		var it debtorItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		debtors = append(debtors, fromDebtorItem(it))
	}
	return debtors, nil
}

func (r *DebtorDynamoRepository) UpdateCRMRef(ctx context.Context, id string, crmID string, crmType entities.CRMType) (entities.Contact, error) {
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
			return entities.Contact{}, nil
		}
		return entities.Contact{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Contact{}, nil
	}
	var it debtorItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Contact{}, err
	}
	return fromDebtorItem(it), nil
}

func toDebtorItem(c entities.Contact) debtorItem {
	return debtorItem{
		ID:             c.ID,
		CRMID:          c.CRMID,
		CRMType:        string(c.CRMType),
		FirstName:      c.FirstName,
		LastName:       c.LastName,
		Email:          c.Email,
		Phone:          c.Phone,
		RUT:            c.RUT,
		TotalDebt:      floatToString(c.TotalDebt),
		PlatformUserID: c.PlatformUserID,
		CreatedAt:      c.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:      c.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromDebtorItem(it debtorItem) entities.Contact {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	totalDebt, _ := strconv.ParseFloat(it.TotalDebt, 64)
	return entities.Contact{
		ID:             it.ID,
		CRMID:          it.CRMID,
		CRMType:        entities.CRMType(it.CRMType),
		FirstName:      it.FirstName,
		LastName:       it.LastName,
		Email:          it.Email,
		Phone:          it.Phone,
		RUT:            it.RUT,
		TotalDebt:      totalDebt,
		PlatformUserID: it.PlatformUserID,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
