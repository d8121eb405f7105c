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

	"github.com/google/uuid"
)

var (
	ErrInvalidWeight       = errors.New("invalid weight")
	ErrInvalidShippingType = errors.New("invalid shipping type")
)

// RateEstimate is the rate calculator output: what the trip costs and
// how long it takes.
type RateEstimate struct {
	Cost         float64
	DeliveryTime string
}

// CreateQuoteInput carries a customer's quote request. Cost is not part
// of the input on purpose: it is always recomputed server-side.
type CreateQuoteInput struct {
	Weight        float64
	ShippingType  entities.ShippingType
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
}

// IQuoteUseCase exposes the rate calculator and quote persistence.
//
//   - Calculate is the pure rate function: weight x rate[type].
//   - CreateQuote persists a quote with a server-computed cost.

type IQuoteUseCase interface {
	Calculate(weight float64, shippingType entities.ShippingType) (RateEstimate, error)
	CreateQuote(ctx context.Context, in CreateQuoteInput) (entities.Quote, error)
	ListQuotes(ctx context.Context) ([]entities.Quote, error)
}

type QuoteUseCase struct {
	repo    interfaces.IQuoteRepository
	tariffs Tariffs
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, tariffs Tariffs) *QuoteUseCase {
	return &QuoteUseCase{repo: repo, tariffs: tariffs}
}

// Calculate returns the cost estimate and delivery window for a
// weight/type pair. Deterministic, no side effects.
func (u *QuoteUseCase) Calculate(weight float64, shippingType entities.ShippingType) (RateEstimate, error) {
	if weight <= 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
		return RateEstimate{}, ErrInvalidWeight
	}
	rate, ok := u.tariffs.RatePerKg[shippingType]
	if !ok {
		return RateEstimate{}, ErrInvalidShippingType
	}
	return RateEstimate{
		Cost:         weight * rate,
		DeliveryTime: u.tariffs.DeliveryTime[shippingType],
	}, nil
}

func (u *QuoteUseCase) CreateQuote(ctx context.Context, in CreateQuoteInput) (entities.Quote, error) {
	estimate, err := u.Calculate(in.Weight, in.ShippingType)
	if err != nil {
		log.Printf("[quote][usecase] create rejected weight=%v type=%s err=%v", in.Weight, in.ShippingType, err)
		return entities.Quote{}, err
	}

	q := entities.Quote{
		ID:            uuid.NewString(),
		Weight:        in.Weight,
		ShippingType:  in.ShippingType,
		EstimatedCost: estimate.Cost,
		DeliveryTime:  estimate.DeliveryTime,
		CustomerName:  strings.TrimSpace(in.CustomerName),
		CustomerEmail: strings.TrimSpace(in.CustomerEmail),
		CustomerPhone: strings.TrimSpace(in.CustomerPhone),
		Status:        entities.QuoteStatusPending,
		CreatedAt:     time.Now().UTC(),
	}

	created, err := u.repo.Create(ctx, q)
	if err != nil {
		log.Printf("[quote][usecase] create failed quote_id=%s err=%v", q.ID, err)
		return entities.Quote{}, err
	}
	log.Printf("[quote][usecase] create success quote_id=%s cost=%.2f type=%s", created.ID, created.EstimatedCost, created.ShippingType)
	return created, nil
}

func (u *QuoteUseCase) ListQuotes(ctx context.Context) ([]entities.Quote, error) {
	return u.repo.List(ctx)
}
