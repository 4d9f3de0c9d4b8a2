package repository

import (
	"context"
	"time"

	"gadget_garage/internal/infrastructure/database"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	log "github.com/sirupsen/logrus"
)

// timestampLayout is fixed width so created_at sorts lexicographically.
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

// parseTimestamp accepts the fixed-width layout and any RFC 3339 value. Rows
// that cannot be parsed keep a zero time.
func parseTimestamp(collection, id, raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	if t, err := time.Parse(timestampLayout, raw); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return t.UTC()
	}
	log.Printf("[%s][repository] unparseable created_at id=%s value=%q", collection, id, raw)
	return time.Time{}
}

func idKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}

// queryNewestFirst walks every page of the created_at index for one collection.
// The index is keyed by collection (constant per table) and sorted by created_at.
func queryNewestFirst(ctx context.Context, ddb DynamoDBAPI, tableName, collection string) ([]map[string]types.AttributeValue, error) {
	p := dynamodb.NewQueryPaginator(ddb, &dynamodb.QueryInput{
		TableName:              aws.String(tableName),
		IndexName:              aws.String(database.CreatedAtIndex),
		KeyConditionExpression: aws.String("#collection = :collection"),
		ExpressionAttributeNames: map[string]string{
			"#collection": "collection",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":collection": &types.AttributeValueMemberS{Value: collection},
		},
		ScanIndexForward: aws.Bool(false),
	})

	items := make([]map[string]types.AttributeValue, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		items = append(items, page.Items...)
	}
	return items, nil
}
