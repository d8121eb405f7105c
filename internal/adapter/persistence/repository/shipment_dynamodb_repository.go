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

const defaultShipmentsTableName = "shipments"

type trackingUpdateItem struct {
	Status   string `dynamodbav:"status"`
	Location string `dynamodbav:"location"`
	Date     string `dynamodbav:"date"`
	Note     string `dynamodbav:"note"`
}

type shipmentItem struct {
	OrderNumber       string               `dynamodbav:"order_number"`
	CustomerName      string               `dynamodbav:"customer_name"`
	CustomerEmail     string               `dynamodbav:"customer_email"`
	CustomerPhone     string               `dynamodbav:"customer_phone"`
	Origin            string               `dynamodbav:"origin"`
	Destination       string               `dynamodbav:"destination"`
	Weight            string               `dynamodbav:"weight"`
	ShippingType      string               `dynamodbav:"shipping_type"`
	Cost              string               `dynamodbav:"cost"`
	PaymentStatus     string               `dynamodbav:"payment_status"`
	PaymentIntentID   string               `dynamodbav:"payment_intent_id,omitempty"`
	Status            string               `dynamodbav:"status"`
	TrackingUpdates   []trackingUpdateItem `dynamodbav:"tracking_updates"`
	CreatedAt         string               `dynamodbav:"created_at"`
	EstimatedDelivery string               `dynamodbav:"estimated_delivery"`
}

// ShipmentDynamoRepository persists Shipment entities in DynamoDB.
//
// Table requirements:
//   - PK: order_number (string)
//
// Insert is conditional on the order number being absent; the tracking
// history is a list attribute extended with list_append, so prior
// entries are never rewritten.

type ShipmentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IShipmentRepository = (*ShipmentDynamoRepository)(nil)

func NewShipmentDynamoRepository(ddb *dynamodb.Client) *ShipmentDynamoRepository {
	return &ShipmentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SHIPMENTS_TABLE", defaultShipmentsTableName),
	}
}

func (r *ShipmentDynamoRepository) Create(ctx context.Context, s entities.Shipment) (entities.Shipment, error) {
	av, err := attributevalue.MarshalMap(toShipmentItem(s))
	if err != nil {
		return entities.Shipment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#order_number)"),
		ExpressionAttributeNames: map[string]string{
			"#order_number": "order_number",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Shipment{}, nil
		}
		return entities.Shipment{}, err
	}
	return s, nil
}

func (r *ShipmentDynamoRepository) GetByOrderNumber(ctx context.Context, orderNumber string) (entities.Shipment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"order_number": &types.AttributeValueMemberS{Value: orderNumber},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Shipment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Shipment{}, nil
	}

	var it shipmentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Shipment{}, err
	}
	return fromShipmentItem(it), nil
}

// AppendTracking sets the snapshot status and appends one tracking
// entry in a single write.
func (r *ShipmentDynamoRepository) AppendTracking(ctx context.Context, orderNumber string, status entities.ShipmentStatus, update entities.TrackingUpdate) (entities.Shipment, error) {
	entry, err := attributevalue.Marshal([]trackingUpdateItem{toTrackingUpdateItem(update)})
	if err != nil {
		return entities.Shipment{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"order_number": &types.AttributeValueMemberS{Value: orderNumber},
		},
		ConditionExpression: aws.String("attribute_exists(#order_number)"),
		UpdateExpression:    aws.String("SET #status = :status, #updates = list_append(#updates, :entry)"),
		ExpressionAttributeNames: map[string]string{
			"#order_number": "order_number",
			"#status":       "status",
			"#updates":      "tracking_updates",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
			":entry":  entry,
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Shipment{}, nil
		}
		return entities.Shipment{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Shipment{}, nil
	}

	var it shipmentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Shipment{}, err
	}
	return fromShipmentItem(it), nil
}

func (r *ShipmentDynamoRepository) List(ctx context.Context) ([]entities.Shipment, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	shipments := make([]entities.Shipment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it shipmentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		shipments = append(shipments, fromShipmentItem(it))
	}
	return shipments, nil
}

func toShipmentItem(s entities.Shipment) shipmentItem {
	updates := make([]trackingUpdateItem, 0, len(s.TrackingUpdates))
	for _, u := range s.TrackingUpdates {
		updates = append(updates, toTrackingUpdateItem(u))
	}
	return shipmentItem{
		OrderNumber:       s.OrderNumber,
		CustomerName:      s.CustomerName,
		CustomerEmail:     s.CustomerEmail,
		CustomerPhone:     s.CustomerPhone,
		Origin:            s.Origin,
		Destination:       s.Destination,
		Weight:            floatToString(s.Weight),
		ShippingType:      string(s.ShippingType),
		Cost:              floatToString(s.Cost),
		PaymentStatus:     string(s.PaymentStatus),
		PaymentIntentID:   s.PaymentIntentID,
		Status:            string(s.Status),
		TrackingUpdates:   updates,
		CreatedAt:         s.CreatedAt.UTC().Format(time.RFC3339Nano),
		EstimatedDelivery: s.EstimatedDelivery.UTC().Format(time.RFC3339Nano),
	}
}

func fromShipmentItem(it shipmentItem) entities.Shipment {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	estimatedDelivery, _ := time.Parse(time.RFC3339Nano, it.EstimatedDelivery)
	weight, _ := strconv.ParseFloat(it.Weight, 64)
	cost, _ := strconv.ParseFloat(it.Cost, 64)

	updates := make([]entities.TrackingUpdate, 0, len(it.TrackingUpdates))
	for _, u := range it.TrackingUpdates {
		date, _ := time.Parse(time.RFC3339Nano, u.Date)
		updates = append(updates, entities.TrackingUpdate{
			Status:   entities.ShipmentStatus(u.Status),
			Location: u.Location,
			Date:     date,
			Note:     u.Note,
		})
	}

	return entities.Shipment{
		OrderNumber:       it.OrderNumber,
		CustomerName:      it.CustomerName,
		CustomerEmail:     it.CustomerEmail,
		CustomerPhone:     it.CustomerPhone,
		Origin:            it.Origin,
		Destination:       it.Destination,
		Weight:            weight,
		ShippingType:      entities.ShippingType(it.ShippingType),
		Cost:              cost,
		PaymentStatus:     entities.PaymentState(it.PaymentStatus),
		PaymentIntentID:   it.PaymentIntentID,
		Status:            entities.ShipmentStatus(it.Status),
		TrackingUpdates:   updates,
		CreatedAt:         createdAt,
		EstimatedDelivery: estimatedDelivery,
	}
}

func toTrackingUpdateItem(u entities.TrackingUpdate) trackingUpdateItem {
	return trackingUpdateItem{
		Status:   string(u.Status),
		Location: u.Location,
		Date:     u.Date.UTC().Format(time.RFC3339Nano),
		Note:     u.Note,
	}
}
