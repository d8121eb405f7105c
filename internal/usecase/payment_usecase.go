package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"

	"flashlink/internal/domain/entities"
	"flashlink/internal/usecase/interfaces"
	"flashlink/pkg/ordernum"
)

var (
	ErrInvalidPaymentAmount = errors.New("invalid payment amount")
	ErrMissingCustomerInfo  = errors.New("missing customer information")
	ErrInvalidIntentID      = errors.New("invalid payment intent id")
	ErrPaymentGateway       = errors.New("payment gateway failure")
	ErrIntentAlreadyExists  = errors.New("payment intent already recorded")
	ErrPaymentNotFound      = errors.New("payment not found")
	ErrPaymentClaimMismatch = errors.New("payment claim does not match recorded intent")
	ErrPaymentNotCompleted  = errors.New("payment not completed")
	ErrPaymentStateConflict = errors.New("payment record in conflicting terminal state")
)

// CreateIntentInput is the customer's request to open a charge.
type CreateIntentInput struct {
	Amount        float64
	Weight        float64
	ShippingType  entities.ShippingType
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
}

// IntentResult is what the browser needs to complete the charge with
// the gateway directly.
type IntentResult struct {
	ClientToken string
	OrderNumber string
	IntentID    string
}

// ConfirmInput is the client's claim that a payment succeeded. Every
// field is untrusted; the gateway and the stored record are the sources
// of truth.
type ConfirmInput struct {
	IntentID      string
	OrderNumber   string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Weight        float64
	ShippingType  entities.ShippingType
	Amount        float64
}

// ConfirmResult is the confirmed order with its freshly created (or
// previously created, on a duplicate confirm) shipment.
type ConfirmResult struct {
	OrderNumber string
	Shipment    entities.Shipment
	ReceiptURL  string
}

// IPaymentUseCase is the order payment lifecycle: open an intent with
// the gateway, then reconcile the client's confirmation against the
// gateway and create the shipment exactly once.

type IPaymentUseCase interface {
	CreateIntent(ctx context.Context, in CreateIntentInput) (IntentResult, error)
	Confirm(ctx context.Context, in ConfirmInput) (ConfirmResult, error)
	GetByOrderNumber(ctx context.Context, orderNumber string) (entities.PaymentRecord, error)
	ListPayments(ctx context.Context) ([]entities.PaymentRecord, error)
}

type PaymentUseCase struct {
	payments  interfaces.IPaymentRepository
	shipments interfaces.IShipmentRepository
	gateway   interfaces.IPaymentGateway
	notifier  interfaces.INotifier
	tariffs   Tariffs

	// newOrderNumber is swappable for tests.
	newOrderNumber func() string
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(
	payments interfaces.IPaymentRepository,
	shipments interfaces.IShipmentRepository,
	gateway interfaces.IPaymentGateway,
	notifier interfaces.INotifier,
	tariffs Tariffs,
) *PaymentUseCase {
	return &PaymentUseCase{
		payments:       payments,
		shipments:      shipments,
		gateway:        gateway,
		notifier:       notifier,
		tariffs:        tariffs,
		newOrderNumber: ordernum.Next,
	}
}

// CreateIntent opens a charge with the gateway and records a pending
// payment keyed by the gateway's intent id.
//
// Ordering is create-remote-then-persist: a gateway failure leaves no
// local record, and a persist failure after a successful remote create
// is logged with the intent id so it can be reconciled manually rather
// than disappearing silently.
func (u *PaymentUseCase) CreateIntent(ctx context.Context, in CreateIntentInput) (IntentResult, error) {
	if in.Amount <= 0 || math.IsNaN(in.Amount) || math.IsInf(in.Amount, 0) {
		return IntentResult{}, ErrInvalidPaymentAmount
	}
	in.CustomerName = strings.TrimSpace(in.CustomerName)
	in.CustomerEmail = strings.TrimSpace(in.CustomerEmail)
	if in.CustomerName == "" || in.CustomerEmail == "" {
		return IntentResult{}, ErrMissingCustomerInfo
	}

	orderNumber := u.newOrderNumber()
	amountMinor := int64(math.Round(in.Amount * 100))
	log.Printf("[payment][usecase] create-intent start order_number=%s amount_minor=%d", orderNumber, amountMinor)

	intent, err := u.gateway.CreateIntent(ctx, interfaces.IntentRequest{
		AmountMinor:   amountMinor,
		Currency:      u.tariffs.Currency,
		OrderNumber:   orderNumber,
		CustomerName:  in.CustomerName,
		CustomerEmail: in.CustomerEmail,
		Weight:        in.Weight,
		ShippingType:  string(in.ShippingType),
		Description:   fmt.Sprintf("Flash Link Shipping - Order %s", orderNumber),
	})
	if err != nil {
		log.Printf("[payment][usecase] gateway create-intent failed order_number=%s err=%v", orderNumber, err)
		return IntentResult{}, fmt.Errorf("%w: %v", ErrPaymentGateway, err)
	}

	created, err := u.payments.Create(ctx, entities.PaymentRecord{
		IntentID:      intent.ID,
		OrderNumber:   orderNumber,
		CustomerName:  in.CustomerName,
		CustomerEmail: in.CustomerEmail,
		Amount:        in.Amount,
		Currency:      u.tariffs.Currency,
		Status:        entities.PaymentStatusPending,
	})
	if err != nil {
		// Remote intent exists with no local record; the order number in
		// the intent metadata is the reconciliation handle.
		log.Printf("[payment][usecase] persist failed after remote create intent_id=%s order_number=%s err=%v", intent.ID, orderNumber, err)
		return IntentResult{}, err
	}
	if created.IntentID == "" {
		log.Printf("[payment][usecase] intent id collision intent_id=%s order_number=%s", intent.ID, orderNumber)
		return IntentResult{}, ErrIntentAlreadyExists
	}

	log.Printf("[payment][usecase] create-intent success intent_id=%s order_number=%s", intent.ID, orderNumber)
	return IntentResult{
		ClientToken: intent.ClientSecret,
		OrderNumber: orderNumber,
		IntentID:    intent.ID,
	}, nil
}

// Confirm reconciles a client's success claim against the gateway and
// creates the shipment for the order exactly once.
//
// The conditional pending->succeeded transition decides a single winner
// among concurrent duplicate confirms; everyone else observes the
// resulting state and returns the same shipment. A retry that finds the
// payment already succeeded but no shipment (a crash in the window
// between the two writes) heals it through the same insert-if-absent
// path.
func (u *PaymentUseCase) Confirm(ctx context.Context, in ConfirmInput) (ConfirmResult, error) {
	in.IntentID = strings.TrimSpace(in.IntentID)
	if in.IntentID == "" {
		return ConfirmResult{}, ErrInvalidIntentID
	}
	log.Printf("[payment][usecase] confirm start intent_id=%s", in.IntentID)

	rec, err := u.payments.GetByIntentID(ctx, in.IntentID)
	if err != nil {
		return ConfirmResult{}, err
	}
	if rec.IntentID == "" {
		log.Printf("[payment][usecase] confirm unknown intent intent_id=%s", in.IntentID)
		return ConfirmResult{}, ErrPaymentNotFound
	}
	if in.OrderNumber != rec.OrderNumber || in.Amount != rec.Amount {
		log.Printf("[payment][usecase] confirm claim mismatch intent_id=%s claimed_order=%s recorded_order=%s", in.IntentID, in.OrderNumber, rec.OrderNumber)
		return ConfirmResult{}, ErrPaymentClaimMismatch
	}

	intent, err := u.gateway.GetIntent(ctx, in.IntentID)
	if err != nil {
		log.Printf("[payment][usecase] gateway lookup failed intent_id=%s err=%v", in.IntentID, err)
		return ConfirmResult{}, fmt.Errorf("%w: %v", ErrPaymentGateway, err)
	}
	if intent.Status != interfaces.IntentStatusSucceeded {
		log.Printf("[payment][usecase] confirm rejected intent_id=%s gateway_status=%s", in.IntentID, intent.Status)
		return ConfirmResult{}, ErrPaymentNotCompleted
	}

	updated, err := u.payments.MarkSucceeded(ctx, in.IntentID, intent.PaymentMethod, intent.ReceiptURL)
	if err != nil {
		return ConfirmResult{}, err
	}
	won := updated.IntentID != ""
	if !won {
		current, err := u.payments.GetByIntentID(ctx, in.IntentID)
		if err != nil {
			return ConfirmResult{}, err
		}
		if current.Status != entities.PaymentStatusSucceeded {
			// Gateway says succeeded but the record went failed/canceled;
			// forward-only transitions make this a manual reconciliation case.
			log.Printf("[payment][usecase] confirm state conflict intent_id=%s record_status=%s", in.IntentID, current.Status)
			return ConfirmResult{}, ErrPaymentStateConflict
		}
	}

	var shipment entities.Shipment
	if won {
		shipment, err = u.ensureShipment(ctx, rec, in)
	} else {
		shipment, err = u.shipments.GetByOrderNumber(ctx, rec.OrderNumber)
		if err == nil && shipment.OrderNumber == "" {
			shipment, err = u.ensureShipment(ctx, rec, in)
		}
	}
	if err != nil {
		return ConfirmResult{}, err
	}

	log.Printf("[payment][usecase] confirm success intent_id=%s order_number=%s winner=%t", in.IntentID, rec.OrderNumber, won)
	return ConfirmResult{
		OrderNumber: rec.OrderNumber,
		Shipment:    shipment,
		ReceiptURL:  intent.ReceiptURL,
	}, nil
}

// ensureShipment inserts the order's shipment if absent and returns
// whichever shipment ends up stored. Only a fresh insert triggers the
// notification port.
func (u *PaymentUseCase) ensureShipment(ctx context.Context, rec entities.PaymentRecord, in ConfirmInput) (entities.Shipment, error) {
	created, err := u.shipments.Create(ctx, entities.NewShipment(entities.NewShipmentParams{
		OrderNumber:     rec.OrderNumber,
		CustomerName:    rec.CustomerName,
		CustomerEmail:   rec.CustomerEmail,
		CustomerPhone:   defaultString(in.CustomerPhone, "N/A"),
		Origin:          u.tariffs.Origin,
		Destination:     u.tariffs.Destination,
		Weight:          in.Weight,
		ShippingType:    in.ShippingType,
		Cost:            rec.Amount,
		PaymentStatus:   entities.PaymentStatePaid,
		PaymentIntentID: rec.IntentID,
		DeliveryDays:    u.tariffs.deliveryDaysFor(in.ShippingType),
		FirstNote:       "Payment confirmed. Order processing started.",
	}))
	if err != nil {
		return entities.Shipment{}, err
	}
	if created.OrderNumber != "" {
		u.notifyPaymentSucceeded(ctx, created)
		return created, nil
	}
	// Lost the insert race; the stored shipment is the one that counts.
	return u.shipments.GetByOrderNumber(ctx, rec.OrderNumber)
}

func (u *PaymentUseCase) notifyPaymentSucceeded(ctx context.Context, shipment entities.Shipment) {
	if u.notifier == nil {
		return
	}
	if err := u.notifier.PaymentSucceeded(ctx, shipment); err != nil {
		log.Printf("[payment][usecase] notification failed order_number=%s err=%v", shipment.OrderNumber, err)
	}
}

func (u *PaymentUseCase) GetByOrderNumber(ctx context.Context, orderNumber string) (entities.PaymentRecord, error) {
	orderNumber = strings.TrimSpace(orderNumber)
	if orderNumber == "" {
		return entities.PaymentRecord{}, ErrPaymentNotFound
	}
	rec, err := u.payments.GetByOrderNumber(ctx, orderNumber)
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	if rec.IntentID == "" {
		return entities.PaymentRecord{}, ErrPaymentNotFound
	}
	return rec, nil
}

func (u *PaymentUseCase) ListPayments(ctx context.Context) ([]entities.PaymentRecord, error) {
	return u.payments.List(ctx)
}

func defaultString(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
