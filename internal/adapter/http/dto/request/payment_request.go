package request

// PaymentIntentRequest opens a charge with the gateway.

type PaymentIntentRequest struct {
	Amount        float64 `json:"amount"`
	Weight        float64 `json:"weight"`
	ShippingType  string  `json:"shippingType"`
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	CustomerPhone string  `json:"customerPhone"`
}

// PaymentConfirmRequest is the client's claim that a payment succeeded.
// The server treats every field as untrusted and re-verifies against the
// gateway and the stored record.

type PaymentConfirmRequest struct {
	IntentID      string  `json:"intentId"`
	OrderNumber   string  `json:"orderNumber"`
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	CustomerPhone string  `json:"customerPhone"`
	Weight        float64 `json:"weight"`
	ShippingType  string  `json:"shippingType"`
	Amount        float64 `json:"amount"`
}
