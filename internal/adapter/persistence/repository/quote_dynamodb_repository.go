package repository

import (
	"context"
	"strconv"
	"time"

	"flashlink/internal/domain/entities"
	"flashlink/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultQuotesTableName = "quotes"

type quoteItem struct {
	ID            string `dynamodbav:"id"`
	Weight        string `dynamodbav:"weight"`
	ShippingType  string `dynamodbav:"shipping_type"`
	EstimatedCost string `dynamodbav:"estimated_cost"`
	DeliveryTime  string `dynamodbav:"delivery_time"`
	CustomerName  string `dynamodbav:"customer_name,omitempty"`
	CustomerEmail string `dynamodbav:"customer_email,omitempty"`
	CustomerPhone string `dynamodbav:"customer_phone,omitempty"`
	Status        string `dynamodbav:"status"`
	CreatedAt     string `dynamodbav:"created_at"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string, uuid)

type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
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
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) List(ctx context.Context) ([]entities.Quote, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	quotes := make([]entities.Quote, 0, len(out.Items))
	for _, raw := range out.Items {
		var it quoteItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		quotes = append(quotes, fromQuoteItem(it))
	}
	return quotes, nil
}

func toQuoteItem(q entities.Quote) quoteItem {
	return quoteItem{
		ID:            q.ID,
		Weight:        floatToString(q.Weight),
		ShippingType:  string(q.ShippingType),
		EstimatedCost: floatToString(q.EstimatedCost),
		DeliveryTime:  q.DeliveryTime,
		CustomerName:  q.CustomerName,
		CustomerEmail: q.CustomerEmail,
		CustomerPhone: q.CustomerPhone,
		Status:        string(q.Status),
		CreatedAt:     q.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromQuoteItem(it quoteItem) entities.Quote {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	weight, _ := strconv.ParseFloat(it.Weight, 64)
	cost, _ := strconv.ParseFloat(it.EstimatedCost, 64)
	return entities.Quote{
		ID:            it.ID,
		Weight:        weight,
		ShippingType:  entities.ShippingType(it.ShippingType),
		EstimatedCost: cost,
		DeliveryTime:  it.DeliveryTime,
		CustomerName:  it.CustomerName,
		CustomerEmail: it.CustomerEmail,
		CustomerPhone: it.CustomerPhone,
		Status:        entities.QuoteStatus(it.Status),
		CreatedAt:     createdAt,
	}
}
