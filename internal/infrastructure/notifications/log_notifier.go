package notifications

import (
	"context"
	"log"

	"flashlink/internal/domain/entities"
	"flashlink/internal/usecase/interfaces"
)

// LogNotifier is the shipped notification adapter: it records the event
// and nothing more. Outbound email lives behind the same port in a
// separate service; swapping the adapter does not touch the core flow.

type LogNotifier struct{}

var _ interfaces.INotifier = (*LogNotifier)(nil)

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) PaymentSucceeded(_ context.Context, shipment entities.Shipment) error {
	log.Printf("[notify] payment succeeded order_number=%s customer_email=%s cost=%.2f", shipment.OrderNumber, shipment.CustomerEmail, shipment.Cost)
	return nil
}
