package request

// ShipmentCreateRequest is the manual booking payload: an operator books
// a shipment without going through the payment flow.

type ShipmentCreateRequest struct {
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	CustomerPhone string  `json:"customerPhone"`
	Weight        float64 `json:"weight"`
	ShippingType  string  `json:"shippingType"`
	Cost          float64 `json:"cost"`
}

// ShipmentStatusUpdateRequest is one admin-side status update. All
// fields are optional; missing ones fall back to the current status,
// "In Transit" and "Status updated".

type ShipmentStatusUpdateRequest struct {
	Status   string `json:"status"`
	Location string `json:"location"`
	Note     string `json:"note"`
}
