package entities

import "time"

// PaymentStatus represents the lifecycle of one attempted charge.
//
// Transitions only move forward: pending is the initial state and the
// only legal source of a transition; succeeded, failed and canceled are
// terminal.

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusSucceeded PaymentStatus = "succeeded"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusCanceled  PaymentStatus = "canceled"
)

// Terminal reports whether no further transition is legal from s.
func (s PaymentStatus) Terminal() bool {
	switch s {
	case PaymentStatusSucceeded, PaymentStatusFailed, PaymentStatusCanceled:
		return true
	}
	return false
}

// PaymentRecord is one attempted charge against the payment gateway.
//
// Storage model (DynamoDB):
//   - PK: intent_id (gateway-assigned, globally unique)
//   - GSI: order_number-index (PK: order_number)
//
// Uniqueness of intent_id is enforced by the store on insert; the
// pending -> terminal transition is a conditional update. Records are
// never deleted.

type PaymentRecord struct {
	IntentID      string        `json:"intentId"`
	OrderNumber   string        `json:"orderNumber"`
	CustomerName  string        `json:"customerName"`
	CustomerEmail string        `json:"customerEmail"`
	Amount        float64       `json:"amount"`
	Currency      string        `json:"currency"`
	Status        PaymentStatus `json:"status"`
	PaymentMethod string        `json:"paymentMethod,omitempty"`
	ReceiptURL    string        `json:"receiptUrl,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
	CompletedAt   *time.Time    `json:"completedAt,omitempty"`
}
