package usecase

import (
	"context"
	"errors"
	"log"
	"math"
	"strings"
	"time"

	"flashlink/internal/domain/entities"
	"flashlink/internal/usecase/interfaces"
	"flashlink/pkg/ordernum"
)

var (
	ErrShipmentNotFound           = errors.New("shipment not found")
	ErrShipmentAlreadyExists      = errors.New("shipment already exists for this order")
	ErrInvalidShipmentStatus      = errors.New("invalid shipment status")
	ErrStatusTransitionNotAllowed = errors.New("shipment status transition not allowed")
	ErrInvalidShipmentInput       = errors.New("invalid shipment input")
)

// CreateShipmentInput is the manual booking path: an operator books a
// shipment without going through the payment flow.
type CreateShipmentInput struct {
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Weight        float64
	ShippingType  entities.ShippingType
	Cost          float64
}

// UpdateStatusInput is one admin-side status update. Status, Location
// and Note are all optional; missing fields fall back to the current
// status, "In Transit" and "Status updated".
type UpdateStatusInput struct {
	OrderNumber string
	Status      entities.ShipmentStatus
	Location    string
	Note        string
}

// IShipmentUseCase owns shipment state and its append-only tracking
// history.

type IShipmentUseCase interface {
	Create(ctx context.Context, in CreateShipmentInput) (entities.Shipment, error)
	UpdateStatus(ctx context.Context, in UpdateStatusInput) (entities.Shipment, error)
	TrackByOrderNumber(ctx context.Context, orderNumber string) (entities.Shipment, error)
	List(ctx context.Context) ([]entities.Shipment, error)
}

// ShipmentUseCaseOptions tunes lifecycle enforcement.
type ShipmentUseCaseOptions struct {
	// AllowStatusRollback permits backward transitions (e.g. delivered
	// back to in_transit) as an operator correction path. Off by
	// default: the physical lifecycle only moves forward.
	AllowStatusRollback bool
}

type ShipmentUseCase struct {
	repo    interfaces.IShipmentRepository
	tariffs Tariffs
	opts    ShipmentUseCaseOptions

	newOrderNumber func() string
}

var _ IShipmentUseCase = (*ShipmentUseCase)(nil)

func NewShipmentUseCase(repo interfaces.IShipmentRepository, tariffs Tariffs, opts ShipmentUseCaseOptions) *ShipmentUseCase {
	return &ShipmentUseCase{
		repo:           repo,
		tariffs:        tariffs,
		opts:           opts,
		newOrderNumber: ordernum.Next,
	}
}

func (u *ShipmentUseCase) Create(ctx context.Context, in CreateShipmentInput) (entities.Shipment, error) {
	in.CustomerName = strings.TrimSpace(in.CustomerName)
	in.CustomerEmail = strings.TrimSpace(in.CustomerEmail)
	if in.CustomerName == "" || in.CustomerEmail == "" {
		return entities.Shipment{}, ErrInvalidShipmentInput
	}
	if in.Weight <= 0 || math.IsNaN(in.Weight) {
		return entities.Shipment{}, ErrInvalidShipmentInput
	}
	if !in.ShippingType.Valid() {
		return entities.Shipment{}, ErrInvalidShipmentInput
	}

	orderNumber := u.newOrderNumber()
	created, err := u.repo.Create(ctx, entities.NewShipment(entities.NewShipmentParams{
		OrderNumber:   orderNumber,
		CustomerName:  in.CustomerName,
		CustomerEmail: in.CustomerEmail,
		CustomerPhone: defaultString(in.CustomerPhone, "N/A"),
		Origin:        u.tariffs.Origin,
		Destination:   u.tariffs.Destination,
		Weight:        in.Weight,
		ShippingType:  in.ShippingType,
		Cost:          in.Cost,
		DeliveryDays:  u.tariffs.deliveryDaysFor(in.ShippingType),
		FirstNote:     "Order received and processing",
	}))
	if err != nil {
		log.Printf("[shipment][usecase] create failed order_number=%s err=%v", orderNumber, err)
		return entities.Shipment{}, err
	}
	if created.OrderNumber == "" {
		// Order numbers are generated fresh; a collision here means the
		// generator misbehaved, not a business conflict.
		log.Printf("[shipment][usecase] order number collision order_number=%s", orderNumber)
		return entities.Shipment{}, ErrShipmentAlreadyExists
	}
	log.Printf("[shipment][usecase] create success order_number=%s type=%s", created.OrderNumber, created.ShippingType)
	return created, nil
}

// UpdateStatus moves the snapshot status forward (when a new status is
// given) and always appends exactly one tracking entry. Out-of-order
// statuses are rejected unless rollback is enabled.
func (u *ShipmentUseCase) UpdateStatus(ctx context.Context, in UpdateStatusInput) (entities.Shipment, error) {
	orderNumber := strings.TrimSpace(in.OrderNumber)
	if orderNumber == "" {
		return entities.Shipment{}, ErrShipmentNotFound
	}

	current, err := u.repo.GetByOrderNumber(ctx, orderNumber)
	if err != nil {
		return entities.Shipment{}, err
	}
	if current.OrderNumber == "" {
		return entities.Shipment{}, ErrShipmentNotFound
	}

	nextStatus := current.Status
	if in.Status != "" {
		if !in.Status.Valid() {
			return entities.Shipment{}, ErrInvalidShipmentStatus
		}
		if !current.Status.CanTransitionTo(in.Status) && !u.opts.AllowStatusRollback {
			log.Printf("[shipment][usecase] transition rejected order_number=%s from=%s to=%s", orderNumber, current.Status, in.Status)
			return entities.Shipment{}, ErrStatusTransitionNotAllowed
		}
		nextStatus = in.Status
	}

	updated, err := u.repo.AppendTracking(ctx, orderNumber, nextStatus, entities.TrackingUpdate{
		Status:   nextStatus,
		Location: defaultString(in.Location, "In Transit"),
		Date:     time.Now().UTC(),
		Note:     defaultString(in.Note, "Status updated"),
	})
	if err != nil {
		return entities.Shipment{}, err
	}
	if updated.OrderNumber == "" {
		return entities.Shipment{}, ErrShipmentNotFound
	}
	log.Printf("[shipment][usecase] status update order_number=%s status=%s entries=%d", orderNumber, nextStatus, len(updated.TrackingUpdates))
	return updated, nil
}

func (u *ShipmentUseCase) TrackByOrderNumber(ctx context.Context, orderNumber string) (entities.Shipment, error) {
	orderNumber = strings.TrimSpace(orderNumber)
	if orderNumber == "" {
		return entities.Shipment{}, ErrShipmentNotFound
	}
	s, err := u.repo.GetByOrderNumber(ctx, orderNumber)
	if err != nil {
		return entities.Shipment{}, err
	}
	if s.OrderNumber == "" {
		return entities.Shipment{}, ErrShipmentNotFound
	}
	return s, nil
}

func (u *ShipmentUseCase) List(ctx context.Context) ([]entities.Shipment, error) {
	return u.repo.List(ctx)
}
