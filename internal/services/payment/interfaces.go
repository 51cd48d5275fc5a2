package payment

import (
	"context"

	"github.com/google/uuid"

	"paygate/internal/models"
	"paygate/internal/services/bank"
)

// Service is the payment processing pipeline: it validates requests,
// forwards accepted ones to the acquiring bank, persists every
// outcome, and serves lookups.
type Service interface {
	// Process runs one payment through the pipeline and returns the
	// persisted outcome. Process accepts a nil request (it becomes a
	// rejected outcome) and returns an error only when the store
	// itself fails.
	Process(ctx context.Context, req *models.PaymentRequest) (*models.Payment, error)

	// Get returns the outcome stored under id, or the store's
	// not-found error.
	Get(ctx context.Context, id uuid.UUID) (*models.Payment, error)
}

// Dependencies required by the payment service.

type Validator interface {
	Validate(req *models.PaymentRequest) error
}

type BankClient interface {
	Authorize(ctx context.Context, req *models.PaymentRequest) (*bank.Authorization, error)
}

type Store interface {
	Put(ctx context.Context, payment *models.Payment) error
	Get(ctx context.Context, id uuid.UUID) (*models.Payment, error)
}
