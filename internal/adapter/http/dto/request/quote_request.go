package request

// QuoteRequest is the payload for quote creation. Cost is never part of
// the payload; the server always recomputes it from weight and type.

type QuoteRequest struct {
	Weight        float64 `json:"weight"`
	ShippingType  string  `json:"shippingType"`
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	CustomerPhone string  `json:"customerPhone"`
}
