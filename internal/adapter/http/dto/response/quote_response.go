package response

import (
	"time"

	"flashlink/internal/domain/entities"
)

type QuoteResponse struct {
	ID            string    `json:"id"`
	Weight        float64   `json:"weight"`
	ShippingType  string    `json:"shippingType"`
	EstimatedCost float64   `json:"estimatedCost"`
	DeliveryTime  string    `json:"deliveryTime"`
	CustomerName  string    `json:"customerName,omitempty"`
	CustomerEmail string    `json:"customerEmail,omitempty"`
	CustomerPhone string    `json:"customerPhone,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		ID:            q.ID,
		Weight:        q.Weight,
		ShippingType:  string(q.ShippingType),
		EstimatedCost: q.EstimatedCost,
		DeliveryTime:  q.DeliveryTime,
		CustomerName:  q.CustomerName,
		CustomerEmail: q.CustomerEmail,
		CustomerPhone: q.CustomerPhone,
		Status:        string(q.Status),
		CreatedAt:     q.CreatedAt,
	}
}

func FromQuotes(quotes []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromQuote(q))
	}
	return out
}
