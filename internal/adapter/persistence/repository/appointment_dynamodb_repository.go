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

const defaultAppointmentsTableName = entities.CollectionAppointments

type appointmentItem struct {
	ID         string `dynamodbav:"id"`
	Collection string `dynamodbav:"collection"`
	Service    string `dynamodbav:"service,omitempty"`
	Date       string `dynamodbav:"date,omitempty"`
	Time       string `dynamodbav:"time,omitempty"`
	Status     string `dynamodbav:"status"`
	CreatedAt  string `dynamodbav:"created_at"`

	Name    string `dynamodbav:"name,omitempty"`
	Address string `dynamodbav:"address,omitempty"`
}

// AppointmentDynamoRepository persists Appointment documents in DynamoDB.
// Same table layout as QuoteDynamoRepository.
type AppointmentDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
	newID     func() string
	now       func() time.Time
}

var _ interfaces.IAppointmentRepository = (*AppointmentDynamoRepository)(nil)

func NewAppointmentDynamoRepository(ddb DynamoDBAPI, tableName string) *AppointmentDynamoRepository {
	if tableName == "" {
		tableName = defaultAppointmentsTableName
	}
	return &AppointmentDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
		newID:     uuid.NewString,
		now:       time.Now,
	}
}

func (r *AppointmentDynamoRepository) Create(ctx context.Context, a entities.Appointment) (entities.Appointment, error) {
	a.ID = r.newID()
	a.CreatedAt = r.now().UTC()

	av, err := attributevalue.MarshalMap(toAppointmentItem(a))
	if err != nil {
		return entities.Appointment{}, err
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
		return entities.Appointment{}, classifyStoreError("create appointment", err)
	}
	return a, nil
}

func (r *AppointmentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Appointment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Appointment{}, classifyStoreError("get appointment", err)
	}
	if len(out.Item) == 0 {
		return entities.Appointment{}, nil
	}

	var it appointmentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Appointment{}, err
	}
	return fromAppointmentItem(it), nil
}

func (r *AppointmentDynamoRepository) ListNewestFirst(ctx context.Context) ([]entities.Appointment, error) {
	items, err := queryNewestFirst(ctx, r.ddb, r.tableName, entities.CollectionAppointments)
	if err != nil {
		return nil, classifyStoreError("list appointments", err)
	}

	var rows []appointmentItem
	if err := attributevalue.UnmarshalListOfMaps(items, &rows); err != nil {
		return nil, err
	}

	out := make([]entities.Appointment, 0, len(rows))
	for _, it := range rows {
		out = append(out, fromAppointmentItem(it))
	}
	return out, nil
}

func (r *AppointmentDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
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
		return false, classifyStoreError("delete appointment", err)
	}
	return true, nil
}

func toAppointmentItem(a entities.Appointment) appointmentItem {
	return appointmentItem{
		ID:         a.ID,
		Collection: entities.CollectionAppointments,
		Service:    a.Service,
		Date:       a.Date,
		Time:       a.Time,
		Status:     string(a.Status),
		CreatedAt:  formatTimestamp(a.CreatedAt),
		Name:       a.Name,
		Address:    a.Address,
	}
}

func fromAppointmentItem(it appointmentItem) entities.Appointment {
	return entities.Appointment{
		ID:        it.ID,
		Service:   it.Service,
		Date:      it.Date,
		Time:      it.Time,
		Status:    entities.RequestStatus(it.Status),
		CreatedAt: parseTimestamp(entities.CollectionAppointments, it.ID, it.CreatedAt),
		Name:      it.Name,
		Address:   it.Address,
	}
}
