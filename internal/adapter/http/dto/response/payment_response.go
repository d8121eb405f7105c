package response

import (
	"time"

	"flashlink/internal/domain/entities"
	"flashlink/internal/usecase"
)

// PaymentIntentResponse carries what the browser needs to complete the
// charge with the gateway directly.

type PaymentIntentResponse struct {
	ClientToken string `json:"clientToken"`
	OrderNumber string `json:"orderNumber"`
	IntentID    string `json:"intentId"`
}

func FromIntentResult(r usecase.IntentResult) PaymentIntentResponse {
	return PaymentIntentResponse{
		ClientToken: r.ClientToken,
		OrderNumber: r.OrderNumber,
		IntentID:    r.IntentID,
	}
}

type PaymentConfirmResponse struct {
	OrderNumber string           `json:"orderNumber"`
	Shipment    ShipmentResponse `json:"shipment"`
	ReceiptURL  string           `json:"receiptUrl,omitempty"`
}

func FromConfirmResult(r usecase.ConfirmResult) PaymentConfirmResponse {
	return PaymentConfirmResponse{
		OrderNumber: r.OrderNumber,
		Shipment:    FromShipment(r.Shipment),
		ReceiptURL:  r.ReceiptURL,
	}
}

type PaymentResponse struct {
	IntentID      string     `json:"intentId"`
	OrderNumber   string     `json:"orderNumber"`
	CustomerName  string     `json:"customerName"`
	CustomerEmail string     `json:"customerEmail"`
	Amount        float64    `json:"amount"`
	Currency      string     `json:"currency"`
	Status        string     `json:"status"`
	PaymentMethod string     `json:"paymentMethod,omitempty"`
	ReceiptURL    string     `json:"receiptUrl,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	CompletedAt   *time.Time `json:"completedAt,omitempty"`
}

func FromPaymentRecord(p entities.PaymentRecord) PaymentResponse {
	return PaymentResponse{
		IntentID:      p.IntentID,
		OrderNumber:   p.OrderNumber,
		CustomerName:  p.CustomerName,
		CustomerEmail: p.CustomerEmail,
		Amount:        p.Amount,
		Currency:      p.Currency,
		Status:        string(p.Status),
		PaymentMethod: p.PaymentMethod,
		ReceiptURL:    p.ReceiptURL,
		CreatedAt:     p.CreatedAt,
		CompletedAt:   p.CompletedAt,
	}
}

func FromPaymentRecords(records []entities.PaymentRecord) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(records))
	for _, p := range records {
		out = append(out, FromPaymentRecord(p))
	}
	return out
}
