package interfaces

import (
	"context"
	"flashlink/internal/domain/entities"
)

// INotifier is the fire-and-forget notification port. Implementations
// may send email or push events; the caller logs failures and never
// rolls back state because of them.

type INotifier interface {
	PaymentSucceeded(ctx context.Context, shipment entities.Shipment) error
}
