package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"flashlink/internal/domain/entities"
	"flashlink/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName = "payments"
	paymentsOrderNumberIndex = "order_number-index"
)

type paymentItem struct {
	IntentID      string `dynamodbav:"intent_id"`
	OrderNumber   string `dynamodbav:"order_number"`
	CustomerName  string `dynamodbav:"customer_name"`
	CustomerEmail string `dynamodbav:"customer_email"`
	Amount        string `dynamodbav:"amount"`
	Currency      string `dynamodbav:"currency"`
	Status        string `dynamodbav:"status"`
	PaymentMethod string `dynamodbav:"payment_method,omitempty"`
	ReceiptURL    string `dynamodbav:"receipt_url,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
	CompletedAt   string `dynamodbav:"completed_at,omitempty"`
}

// PaymentDynamoRepository persists PaymentRecord entities in DynamoDB.
//
// Table requirements:
//   - PK: intent_id (string)
//   - GSI: order_number-index (PK: order_number)
//
// The table's conditional writes carry the whole coordination story:
// insert-if-absent on intent_id and update-if-still-pending for the
// terminal transition. A conditional miss comes back as a zero-value
// record with a nil error so callers can branch on the resulting state.

type PaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.PaymentRecord) (entities.PaymentRecord, error) {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return entities.PaymentRecord{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#intent_id)"),
		ExpressionAttributeNames: map[string]string{
			"#intent_id": "intent_id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.PaymentRecord{}, nil
		}
		return entities.PaymentRecord{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) GetByIntentID(ctx context.Context, intentID string) (entities.PaymentRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"intent_id": &types.AttributeValueMemberS{Value: intentID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentRecord{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentRecord{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) GetByOrderNumber(ctx context.Context, orderNumber string) (entities.PaymentRecord, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsOrderNumberIndex),
		KeyConditionExpression: aws.String("order_number = :ord"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ord": &types.AttributeValueMemberS{Value: orderNumber},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	if len(out.Items) == 0 {
		return entities.PaymentRecord{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.PaymentRecord{}, err
	}
	return fromPaymentItem(it), nil
}

// MarkSucceeded applies the pending -> succeeded transition. The status
// condition makes the transition happen at most once no matter how many
// confirmations race; losers get a zero-value record back.
func (r *PaymentDynamoRepository) MarkSucceeded(ctx context.Context, intentID, paymentMethod, receiptURL string) (entities.PaymentRecord, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"intent_id": &types.AttributeValueMemberS{Value: intentID},
		},
		ConditionExpression: aws.String("attribute_exists(#intent_id) AND #status = :pending"),
		UpdateExpression:    aws.String("SET #status = :succeeded, #completed_at = :now, #payment_method = :method, #receipt_url = :receipt"),
		ExpressionAttributeNames: map[string]string{
			"#intent_id":      "intent_id",
			"#status":         "status",
			"#completed_at":   "completed_at",
			"#payment_method": "payment_method",
			"#receipt_url":    "receipt_url",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending":   &types.AttributeValueMemberS{Value: string(entities.PaymentStatusPending)},
			":succeeded": &types.AttributeValueMemberS{Value: string(entities.PaymentStatusSucceeded)},
			":now":       &types.AttributeValueMemberS{Value: now},
			":method":    &types.AttributeValueMemberS{Value: paymentMethod},
			":receipt":   &types.AttributeValueMemberS{Value: receiptURL},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.PaymentRecord{}, nil
		}
		return entities.PaymentRecord{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.PaymentRecord{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.PaymentRecord{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) List(ctx context.Context) ([]entities.PaymentRecord, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	records := make([]entities.PaymentRecord, 0, len(out.Items))
	for _, raw := range out.Items {
		var it paymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		records = append(records, fromPaymentItem(it))
	}
	return records, nil
}

func toPaymentItem(p entities.PaymentRecord) paymentItem {
	it := paymentItem{
		IntentID:      p.IntentID,
		OrderNumber:   p.OrderNumber,
		CustomerName:  p.CustomerName,
		CustomerEmail: p.CustomerEmail,
		Amount:        floatToString(p.Amount),
		Currency:      p.Currency,
		Status:        string(p.Status),
		PaymentMethod: p.PaymentMethod,
		ReceiptURL:    p.ReceiptURL,
		CreatedAt:     p.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if p.CompletedAt != nil {
		it.CompletedAt = p.CompletedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromPaymentItem(it paymentItem) entities.PaymentRecord {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	amount, _ := strconv.ParseFloat(it.Amount, 64)
	rec := entities.PaymentRecord{
		IntentID:      it.IntentID,
		OrderNumber:   it.OrderNumber,
		CustomerName:  it.CustomerName,
		CustomerEmail: it.CustomerEmail,
		Amount:        amount,
		Currency:      it.Currency,
		Status:        entities.PaymentStatus(it.Status),
		PaymentMethod: it.PaymentMethod,
		ReceiptURL:    it.ReceiptURL,
		CreatedAt:     createdAt,
	}
	if it.CompletedAt != "" {
		if completedAt, err := time.Parse(time.RFC3339Nano, it.CompletedAt); err == nil {
			rec.CompletedAt = &completedAt
		}
	}
	return rec
}
