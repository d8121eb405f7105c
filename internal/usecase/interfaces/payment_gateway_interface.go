package interfaces

import "context"

// Gateway-side intent statuses the application cares about. The gateway
// is the source of truth for payment state; anything other than
// succeeded means the customer has not completed the charge.
const (
	IntentStatusSucceeded = "succeeded"
)

// IntentRequest is the input to create-intent. Amount is in the
// gateway's minor units (cents); the order metadata rides along for
// audit and manual reconciliation of orphaned intents.
type IntentRequest struct {
	AmountMinor   int64
	Currency      string
	OrderNumber   string
	CustomerName  string
	CustomerEmail string
	Weight        float64
	ShippingType  string
	Description   string
}

// Intent is the gateway's view of a charge attempt. ClientSecret is an
// opaque token the browser uses to complete authentication directly
// with the gateway; PaymentMethod and ReceiptURL are populated once the
// charge succeeded.
type Intent struct {
	ID            string
	ClientSecret  string
	Status        string
	PaymentMethod string
	ReceiptURL    string
}

// IPaymentGateway abstracts the external payment provider (e.g. Stripe).
//
// Only the capability contract the coordinator needs: open a charge and
// re-read its status. Completing the charge happens between the
// customer's browser and the gateway, outside this system.
type IPaymentGateway interface {
	CreateIntent(ctx context.Context, req IntentRequest) (Intent, error)
	GetIntent(ctx context.Context, intentID string) (Intent, error)
}
