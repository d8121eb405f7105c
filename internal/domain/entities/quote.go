package entities

import "time"

// QuoteStatus tracks what happened to a saved quote.

type QuoteStatus string

const (
	QuoteStatusPending   QuoteStatus = "pending"
	QuoteStatusConfirmed QuoteStatus = "confirmed"
	QuoteStatusCancelled QuoteStatus = "cancelled"
)

// Quote is a saved shipping cost estimate. The cost is always computed
// server-side from weight and shipping type; a client-submitted cost is
// never persisted.
//
// Storage model (DynamoDB):
//   - PK: id (uuid)

type Quote struct {
	ID            string       `json:"id"`
	Weight        float64      `json:"weight"`
	ShippingType  ShippingType `json:"shippingType"`
	EstimatedCost float64      `json:"estimatedCost"`
	DeliveryTime  string       `json:"deliveryTime"`
	CustomerName  string       `json:"customerName,omitempty"`
	CustomerEmail string       `json:"customerEmail,omitempty"`
	CustomerPhone string       `json:"customerPhone,omitempty"`
	Status        QuoteStatus  `json:"status"`
	CreatedAt     time.Time    `json:"createdAt"`
}
