// Package repositories provides the storage layer for processed
// payments.
package repositories

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"paygate/internal/models"
)

// ErrPaymentNotFound is returned by Get when no payment exists under
// the given identifier.
var ErrPaymentNotFound = errors.New("payment not found")

// PaymentRepository stores processed payment outcomes. Identifiers
// are unique by construction, so Put never observes a duplicate.
// Stored outcomes are immutable: there is no update or delete.
type PaymentRepository interface {
	Put(ctx context.Context, payment *models.Payment) error
	Get(ctx context.Context, id uuid.UUID) (*models.Payment, error)
}

// MemoryPaymentRepository is the in-memory, process-local store used
// by default. Safe for concurrent use.
type MemoryPaymentRepository struct {
	mu       sync.RWMutex
	payments map[uuid.UUID]models.Payment
}

// NewMemoryPaymentRepository returns an empty in-memory store.
func NewMemoryPaymentRepository() *MemoryPaymentRepository {
	return &MemoryPaymentRepository{
		payments: make(map[uuid.UUID]models.Payment),
	}
}

// Put stores the payment under its identifier. The payment is copied
// so later mutation by the caller cannot reach the stored record.
func (r *MemoryPaymentRepository) Put(_ context.Context, payment *models.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payments[payment.ID] = *payment
	return nil
}

// Get returns a copy of the stored payment or ErrPaymentNotFound.
func (r *MemoryPaymentRepository) Get(_ context.Context, id uuid.UUID) (*models.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	payment, ok := r.payments[id]
	if !ok {
		return nil, ErrPaymentNotFound
	}
	return &payment, nil
}
