package usecase

import "flashlink/internal/domain/entities"

// Tariffs is the pricing and routing configuration handed to each
// usecase at construction. Nothing in the application reads rates or
// delivery tables from ambient state.

type Tariffs struct {
	// RatePerKg is the shipping cost per kilogram by transport mode.
	RatePerKg map[entities.ShippingType]float64

	// DeliveryTime is the customer-facing delivery window label.
	DeliveryTime map[entities.ShippingType]string

	// DeliveryDays feeds the estimated delivery date on shipment
	// creation. DefaultDeliveryDays applies when the type is missing
	// from the table.
	DeliveryDays        map[entities.ShippingType]int
	DefaultDeliveryDays int

	// Currency is the single settlement currency.
	Currency string

	// Origin and Destination are the route endpoints of the service.
	Origin      string
	Destination string
}

// DefaultTariffs returns the production tariff table.
func DefaultTariffs() Tariffs {
	return Tariffs{
		RatePerKg: map[entities.ShippingType]float64{
			entities.ShippingTypeSea:     2.5,
			entities.ShippingTypeAir:     9.0,
			entities.ShippingTypeExpress: 15.0,
		},
		DeliveryTime: map[entities.ShippingType]string{
			entities.ShippingTypeSea:     "25-35 days",
			entities.ShippingTypeAir:     "7-12 days",
			entities.ShippingTypeExpress: "3-5 days",
		},
		DeliveryDays: map[entities.ShippingType]int{
			entities.ShippingTypeSea:     30,
			entities.ShippingTypeAir:     10,
			entities.ShippingTypeExpress: 5,
		},
		DefaultDeliveryDays: 10,
		Currency:            "usd",
		Origin:              "China",
		Destination:         "Burundi",
	}
}

// deliveryDaysFor resolves the delivery-day estimate for a shipping
// type, falling back to the default for unrecognized types.
func (t Tariffs) deliveryDaysFor(shippingType entities.ShippingType) int {
	if days, ok := t.DeliveryDays[shippingType]; ok {
		return days
	}
	return t.DefaultDeliveryDays
}
