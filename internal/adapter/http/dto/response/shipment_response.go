package response

import (
	"time"

	"flashlink/internal/domain/entities"
)

type TrackingUpdateResponse struct {
	Status   string    `json:"status"`
	Location string    `json:"location"`
	Date     time.Time `json:"date"`
	Note     string    `json:"note"`
}

type ShipmentResponse struct {
	OrderNumber       string                   `json:"orderNumber"`
	CustomerName      string                   `json:"customerName"`
	CustomerEmail     string                   `json:"customerEmail"`
	CustomerPhone     string                   `json:"customerPhone"`
	Origin            string                   `json:"origin"`
	Destination       string                   `json:"destination"`
	Weight            float64                  `json:"weight"`
	ShippingType      string                   `json:"shippingType"`
	Cost              float64                  `json:"cost"`
	PaymentStatus     string                   `json:"paymentStatus"`
	PaymentIntentID   string                   `json:"paymentIntentId,omitempty"`
	Status            string                   `json:"status"`
	TrackingUpdates   []TrackingUpdateResponse `json:"trackingUpdates"`
	CreatedAt         time.Time                `json:"createdAt"`
	EstimatedDelivery time.Time                `json:"estimatedDelivery"`
}

func FromShipment(s entities.Shipment) ShipmentResponse {
	updates := make([]TrackingUpdateResponse, 0, len(s.TrackingUpdates))
	for _, u := range s.TrackingUpdates {
		updates = append(updates, TrackingUpdateResponse{
			Status:   string(u.Status),
			Location: u.Location,
			Date:     u.Date,
			Note:     u.Note,
		})
	}
	return ShipmentResponse{
		OrderNumber:       s.OrderNumber,
		CustomerName:      s.CustomerName,
		CustomerEmail:     s.CustomerEmail,
		CustomerPhone:     s.CustomerPhone,
		Origin:            s.Origin,
		Destination:       s.Destination,
		Weight:            s.Weight,
		ShippingType:      string(s.ShippingType),
		Cost:              s.Cost,
		PaymentStatus:     string(s.PaymentStatus),
		PaymentIntentID:   s.PaymentIntentID,
		Status:            string(s.Status),
		TrackingUpdates:   updates,
		CreatedAt:         s.CreatedAt,
		EstimatedDelivery: s.EstimatedDelivery,
	}
}

func FromShipments(shipments []entities.Shipment) []ShipmentResponse {
	out := make([]ShipmentResponse, 0, len(shipments))
	for _, s := range shipments {
		out = append(out, FromShipment(s))
	}
	return out
}
