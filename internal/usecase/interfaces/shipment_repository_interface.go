package interfaces

import (
	"context"
	"flashlink/internal/domain/entities"
)

// IShipmentRepository abstracts DynamoDB persistence for Shipment.
//
// Create is insert-if-absent on order number: a second insert for the
// same order returns a zero-value shipment and a nil error. Tracking
// history is append-only; AppendTracking never rewrites prior entries.

type IShipmentRepository interface {
	Create(ctx context.Context, s entities.Shipment) (entities.Shipment, error)
	GetByOrderNumber(ctx context.Context, orderNumber string) (entities.Shipment, error)
	AppendTracking(ctx context.Context, orderNumber string, status entities.ShipmentStatus, update entities.TrackingUpdate) (entities.Shipment, error)
	List(ctx context.Context) ([]entities.Shipment, error)
}
