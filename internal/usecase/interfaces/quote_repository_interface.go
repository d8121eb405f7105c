package interfaces

import (
	"context"
	"flashlink/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for Quote.

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	List(ctx context.Context) ([]entities.Quote, error)
}
