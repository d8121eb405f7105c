package entities

import "time"

// ShippingType is the transport mode a customer picks at quote time.

type ShippingType string

const (
	ShippingTypeSea     ShippingType = "sea"
	ShippingTypeAir     ShippingType = "air"
	ShippingTypeExpress ShippingType = "express"
)

func (t ShippingType) Valid() bool {
	switch t {
	case ShippingTypeSea, ShippingTypeAir, ShippingTypeExpress:
		return true
	}
	return false
}

// ShipmentStatus is the current physical state of a shipment.
//
// The statuses form a forward-ordered chain; UpdateStatus enforces that
// ordering (see CanTransitionTo). Backward moves are operator
// corrections and are only accepted when the tracker is configured to
// allow rollback.

type ShipmentStatus string

const (
	ShipmentStatusPending        ShipmentStatus = "pending"
	ShipmentStatusPickedUp       ShipmentStatus = "picked_up"
	ShipmentStatusInTransit      ShipmentStatus = "in_transit"
	ShipmentStatusCustoms        ShipmentStatus = "customs"
	ShipmentStatusOutForDelivery ShipmentStatus = "out_for_delivery"
	ShipmentStatusDelivered      ShipmentStatus = "delivered"
)

var shipmentStatusOrder = map[ShipmentStatus]int{
	ShipmentStatusPending:        0,
	ShipmentStatusPickedUp:       1,
	ShipmentStatusInTransit:      2,
	ShipmentStatusCustoms:        3,
	ShipmentStatusOutForDelivery: 4,
	ShipmentStatusDelivered:      5,
}

func (s ShipmentStatus) Valid() bool {
	_, ok := shipmentStatusOrder[s]
	return ok
}

// CanTransitionTo reports whether moving from s to next is a forward
// transition. Re-entering the current status is allowed so operators can
// record a new location or note without changing state.
func (s ShipmentStatus) CanTransitionTo(next ShipmentStatus) bool {
	from, ok := shipmentStatusOrder[s]
	if !ok {
		return false
	}
	to, ok := shipmentStatusOrder[next]
	if !ok {
		return false
	}
	return to >= from
}

// PaymentState is the shipment-side view of whether the order was paid.

type PaymentState string

const (
	PaymentStatePending PaymentState = "pending"
	PaymentStatePaid    PaymentState = "paid"
	PaymentStateFailed  PaymentState = "failed"
)

// TrackingUpdate is one immutable waypoint in a shipment's journey.
// Entries are only ever appended, never mutated or removed.

type TrackingUpdate struct {
	Status   ShipmentStatus `json:"status"`
	Location string         `json:"location"`
	Date     time.Time      `json:"date"`
	Note     string         `json:"note"`
}

// Shipment is a physical delivery, created after a confirmed payment or
// directly by an operator booking.
//
// Storage model (DynamoDB):
//   - PK: order_number
//
// The store rejects a second insert for the same order number; that
// constraint, not application locking, is what keeps duplicate
// confirmations from producing duplicate shipments.

type Shipment struct {
	OrderNumber       string           `json:"orderNumber"`
	CustomerName      string           `json:"customerName"`
	CustomerEmail     string           `json:"customerEmail"`
	CustomerPhone     string           `json:"customerPhone"`
	Origin            string           `json:"origin"`
	Destination       string           `json:"destination"`
	Weight            float64          `json:"weight"`
	ShippingType      ShippingType     `json:"shippingType"`
	Cost              float64          `json:"cost"`
	PaymentStatus     PaymentState     `json:"paymentStatus"`
	PaymentIntentID   string           `json:"paymentIntentId,omitempty"`
	Status            ShipmentStatus   `json:"status"`
	TrackingUpdates   []TrackingUpdate `json:"trackingUpdates"`
	CreatedAt         time.Time        `json:"createdAt"`
	EstimatedDelivery time.Time        `json:"estimatedDelivery"`
}

// NewShipmentParams carries everything needed to assemble a shipment.
// Both the payment-confirmation path and the manual booking path go
// through NewShipment so the first tracking entry and the estimated
// delivery date are computed the same way.
type NewShipmentParams struct {
	OrderNumber     string
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	Origin          string
	Destination     string
	Weight          float64
	ShippingType    ShippingType
	Cost            float64
	PaymentStatus   PaymentState
	PaymentIntentID string
	DeliveryDays    int
	FirstNote       string
	Now             time.Time
}

// NewShipment assembles a shipment in its initial state: status pending
// and a single tracking entry written at creation time.
func NewShipment(p NewShipmentParams) Shipment {
	now := p.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}
	paymentStatus := p.PaymentStatus
	if paymentStatus == "" {
		paymentStatus = PaymentStatePending
	}
	return Shipment{
		OrderNumber:       p.OrderNumber,
		CustomerName:      p.CustomerName,
		CustomerEmail:     p.CustomerEmail,
		CustomerPhone:     p.CustomerPhone,
		Origin:            p.Origin,
		Destination:       p.Destination,
		Weight:            p.Weight,
		ShippingType:      p.ShippingType,
		Cost:              p.Cost,
		PaymentStatus:     paymentStatus,
		PaymentIntentID:   p.PaymentIntentID,
		Status:            ShipmentStatusPending,
		CreatedAt:         now,
		EstimatedDelivery: now.AddDate(0, 0, p.DeliveryDays),
		TrackingUpdates: []TrackingUpdate{{
			Status:   ShipmentStatusPending,
			Location: p.Origin,
			Date:     now,
			Note:     p.FirstNote,
		}},
	}
}
