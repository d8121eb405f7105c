package interfaces

import (
	"context"
	"flashlink/internal/domain/entities"
)

// IPaymentRepository abstracts DynamoDB persistence for PaymentRecord.
//
// Conditional-write contract (the application relies on it instead of
// locks):
//   - Create is insert-if-absent on intent id; when the intent id
//     already exists it returns a zero-value record and a nil error.
//   - MarkSucceeded applies only while the record is still pending;
//     when the condition fails it returns a zero-value record and a nil
//     error so the caller can inspect the resulting state.

type IPaymentRepository interface {
	Create(ctx context.Context, p entities.PaymentRecord) (entities.PaymentRecord, error)
	GetByIntentID(ctx context.Context, intentID string) (entities.PaymentRecord, error)
	GetByOrderNumber(ctx context.Context, orderNumber string) (entities.PaymentRecord, error)
	MarkSucceeded(ctx context.Context, intentID, paymentMethod, receiptURL string) (entities.PaymentRecord, error)
	List(ctx context.Context) ([]entities.PaymentRecord, error)
}
