package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"flashlink/internal/usecase/interfaces"

	stripe "github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

var ErrMissingStripeSecretKey = errors.New("missing STRIPE_SECRET_KEY")
var ErrStripeGatewayNotConfigured = errors.New("stripe gateway not configured")

// StripeGateway implements the payment gateway port against Stripe's
// PaymentIntents API. In mock mode (local development without gateway
// credentials) intents are kept in memory and report succeeded, so the
// full intent/confirm flow can be exercised end to end.

type StripeGateway struct {
	sc       *client.API
	mockMode bool

	mu          sync.Mutex
	mockIntents map[string]interfaces.Intent
}

var _ interfaces.IPaymentGateway = (*StripeGateway)(nil)

func NewStripeGateway(secretKey string) (*StripeGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &StripeGateway{mockMode: true, mockIntents: map[string]interfaces.Intent{}}, nil
	}

	if secretKey == "" {
		log.Printf("[payment][gateway] missing STRIPE_SECRET_KEY")
		return nil, ErrMissingStripeSecretKey
	}

	sc := &client.API{}
	sc.Init(secretKey, nil)
	log.Printf("[payment][gateway] Stripe client initialized")

	return &StripeGateway{sc: sc}, nil
}

func (g *StripeGateway) CreateIntent(ctx context.Context, req interfaces.IntentRequest) (interfaces.Intent, error) {
	if g != nil && g.mockMode {
		return g.mockCreateIntent(req), nil
	}
	if g == nil || g.sc == nil {
		return interfaces.Intent{}, ErrStripeGatewayNotConfigured
	}
	log.Printf("[payment][gateway] create-intent start order_number=%s amount_minor=%d", req.OrderNumber, req.AmountMinor)

	params := &stripe.PaymentIntentParams{
		Params:       stripe.Params{Context: ctx},
		Amount:       stripe.Int64(req.AmountMinor),
		Currency:     stripe.String(req.Currency),
		ReceiptEmail: stripe.String(req.CustomerEmail),
		Description:  stripe.String(req.Description),
	}
	params.AddMetadata("orderNumber", req.OrderNumber)
	params.AddMetadata("customerName", req.CustomerName)
	params.AddMetadata("customerEmail", req.CustomerEmail)
	params.AddMetadata("weight", strconv.FormatFloat(req.Weight, 'f', -1, 64))
	params.AddMetadata("shippingType", req.ShippingType)

	pi, err := g.sc.PaymentIntents.New(params)
	if err != nil {
		log.Printf("[payment][gateway] create-intent failed order_number=%s err=%v", req.OrderNumber, err)
		return interfaces.Intent{}, err
	}

	log.Printf("[payment][gateway] create-intent success intent_id=%s status=%s", pi.ID, pi.Status)
	return fromPaymentIntent(pi), nil
}

func (g *StripeGateway) GetIntent(ctx context.Context, intentID string) (interfaces.Intent, error) {
	if g != nil && g.mockMode {
		return g.mockGetIntent(intentID)
	}
	if g == nil || g.sc == nil {
		return interfaces.Intent{}, ErrStripeGatewayNotConfigured
	}

	params := &stripe.PaymentIntentParams{Params: stripe.Params{Context: ctx}}
	params.AddExpand("latest_charge")

	pi, err := g.sc.PaymentIntents.Get(intentID, params)
	if err != nil {
		log.Printf("[payment][gateway] get-intent failed intent_id=%s err=%v", intentID, err)
		return interfaces.Intent{}, err
	}

	log.Printf("[payment][gateway] get-intent success intent_id=%s status=%s", pi.ID, pi.Status)
	return fromPaymentIntent(pi), nil
}

func fromPaymentIntent(pi *stripe.PaymentIntent) interfaces.Intent {
	intent := interfaces.Intent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Status:       string(pi.Status),
	}
	if pi.PaymentMethod != nil {
		intent.PaymentMethod = pi.PaymentMethod.ID
	}
	if pi.LatestCharge != nil {
		intent.ReceiptURL = pi.LatestCharge.ReceiptURL
	}
	return intent
}

func (g *StripeGateway) mockCreateIntent(req interfaces.IntentRequest) interfaces.Intent {
	id := fmt.Sprintf("pi_mock_%d", time.Now().UTC().UnixNano())
	intent := interfaces.Intent{
		ID:           id,
		ClientSecret: id + "_secret_mock",
		Status:       interfaces.IntentStatusSucceeded,
		ReceiptURL:   "https://receipts.example/" + req.OrderNumber,
	}

	g.mu.Lock()
	g.mockIntents[id] = intent
	g.mu.Unlock()

	log.Printf("[payment][gateway] mock create-intent intent_id=%s order_number=%s", id, req.OrderNumber)
	return intent
}

func (g *StripeGateway) mockGetIntent(intentID string) (interfaces.Intent, error) {
	g.mu.Lock()
	intent, ok := g.mockIntents[intentID]
	g.mu.Unlock()
	if !ok {
		return interfaces.Intent{}, fmt.Errorf("mock intent not found: %s", intentID)
	}
	return intent, nil
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "STRIPE_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
