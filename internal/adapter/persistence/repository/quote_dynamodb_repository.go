package repository

import (
	"context"
	"errors"
	"time"

	"gadget_garage/internal/domain/entities"
	"gadget_garage/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const defaultQuotesTableName = entities.CollectionQuotes

type quoteItem struct {
	ID          string `dynamodbav:"id"`
	Collection  string `dynamodbav:"collection"`
	Name        string `dynamodbav:"name,omitempty"`
	Email       string `dynamodbav:"email,omitempty"`
	Phone       string `dynamodbav:"phone,omitempty"`
	ServiceType string `dynamodbav:"service_type,omitempty"`
	Description string `dynamodbav:"description,omitempty"`
	Urgency     string `dynamodbav:"urgency,omitempty"`
	Status      string `dynamodbav:"status"`
	CreatedAt   string `dynamodbav:"created_at"`

	FirstName  string `dynamodbav:"first_name,omitempty"`
	LastName   string `dynamodbav:"last_name,omitempty"`
	DeviceType string `dynamodbav:"device_type,omitempty"`
	Issue      string `dynamodbav:"issue,omitempty"`
}

// QuoteDynamoRepository persists QuoteRequest documents in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI created_at-index: collection (string) + created_at (string)
type QuoteDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
	newID     func() string
	now       func() time.Time
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb DynamoDBAPI, tableName string) *QuoteDynamoRepository {
	if tableName == "" {
		tableName = defaultQuotesTableName
	}
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
		newID:     uuid.NewString,
		now:       time.Now,
	}
}

// Create stores q under a fresh id and the server timestamp, returning the stored document.
func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.QuoteRequest) (entities.QuoteRequest, error) {
	q.ID = r.newID()
	q.CreatedAt = r.now().UTC()

	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.QuoteRequest{}, err
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
		return entities.QuoteRequest{}, classifyStoreError("create quote", err)
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.QuoteRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.QuoteRequest{}, classifyStoreError("get quote", err)
	}
	if len(out.Item) == 0 {
		return entities.QuoteRequest{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.QuoteRequest{}, err
	}
	return fromQuoteItem(it), nil
}

// ListNewestFirst returns every quote ordered by created_at descending.
func (r *QuoteDynamoRepository) ListNewestFirst(ctx context.Context) ([]entities.QuoteRequest, error) {
	items, err := queryNewestFirst(ctx, r.ddb, r.tableName, entities.CollectionQuotes)
	if err != nil {
		return nil, classifyStoreError("list quotes", err)
	}

	var rows []quoteItem
	if err := attributevalue.UnmarshalListOfMaps(items, &rows); err != nil {
		return nil, err
	}

	out := make([]entities.QuoteRequest, 0, len(rows))
	for _, it := range rows {
		out = append(out, fromQuoteItem(it))
	}
	return out, nil
}

// Delete removes one quote. It reports false when no document had that id.
func (r *QuoteDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 idKey(id),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, classifyStoreError("delete quote", err)
	}
	return true, nil
}

func toQuoteItem(q entities.QuoteRequest) quoteItem {
	return quoteItem{
		ID:          q.ID,
		Collection:  entities.CollectionQuotes,
		Name:        q.Name,
		Email:       q.Email,
		Phone:       q.Phone,
		ServiceType: q.ServiceType,
		Description: q.Description,
		Urgency:     string(q.Urgency),
		Status:      string(q.Status),
		CreatedAt:   formatTimestamp(q.CreatedAt),
		FirstName:   q.FirstName,
		LastName:    q.LastName,
		DeviceType:  q.DeviceType,
		Issue:       q.Issue,
	}
}

func fromQuoteItem(it quoteItem) entities.QuoteRequest {
	return entities.QuoteRequest{
		ID:          it.ID,
		Name:        it.Name,
		Email:       it.Email,
		Phone:       it.Phone,
		ServiceType: it.ServiceType,
		Description: it.Description,
		Urgency:     entities.Urgency(it.Urgency),
		Status:      entities.RequestStatus(it.Status),
		CreatedAt:   parseTimestamp(entities.CollectionQuotes, it.ID, it.CreatedAt),
		FirstName:   it.FirstName,
		LastName:    it.LastName,
		DeviceType:  it.DeviceType,
		Issue:       it.Issue,
	}
}
