// Package payment orchestrates the gateway's processing pipeline:
// identifier generation, validation, the acquiring bank call, and
// persistence of the terminal outcome.
package payment

import (
	"context"
	"log"

	"github.com/google/uuid"

	"paygate/internal/models"
)

type service struct {
	validator Validator
	bank      BankClient
	store     Store
}

// NewService creates a new payment service.
func NewService(validator Validator, bankClient BankClient, store Store) Service {
	return &service{
		validator: validator,
		bank:      bankClient,
		store:     store,
	}
}

// Process decides the terminal status for one request and persists
// exactly one outcome before returning it:
//
//	validation failure        -> Rejected (bank never called)
//	bank call failure         -> Rejected
//	bank authorized           -> Authorized
//	bank not authorized       -> Declined
//
// The identifier is generated before validation so that every
// outcome, including rejected ones, is retrievable by id. Diagnostic
// reasons go to the log; the returned outcome carries only the
// status.
func (s *service) Process(ctx context.Context, req *models.PaymentRequest) (*models.Payment, error) {
	id := uuid.New()

	if err := s.validator.Validate(req); err != nil {
		log.Printf("payment %s rejected: %v", id, err)
		return s.persist(ctx, id, models.StatusRejected, req)
	}

	auth, err := s.bank.Authorize(ctx, req)
	if err != nil {
		log.Printf("payment %s rejected by bank processing: %v", id, err)
		return s.persist(ctx, id, models.StatusRejected, req)
	}

	status := models.StatusDeclined
	if auth.Authorized {
		status = models.StatusAuthorized
	}
	return s.persist(ctx, id, status, req)
}

// Get returns the outcome stored under id.
func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.Payment, error) {
	return s.store.Get(ctx, id)
}

func (s *service) persist(ctx context.Context, id uuid.UUID, status models.PaymentStatus, req *models.PaymentRequest) (*models.Payment, error) {
	payment := &models.Payment{
		ID:     id,
		Status: status,
	}
	// req is nil when the body could not be parsed; the outcome then
	// carries only the identifier and status.
	if req != nil {
		payment.CardNumberLastFour = models.LastFour(req.CardNumber)
		payment.ExpiryMonth = req.ExpiryMonth
		payment.ExpiryYear = req.ExpiryYear
		payment.Currency = req.Currency
		payment.Amount = req.Amount
	}

	if err := s.store.Put(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}
