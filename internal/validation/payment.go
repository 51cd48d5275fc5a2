// Package validation implements the business rules a payment request
// must satisfy before it is forwarded to the acquiring bank.
package validation

import (
	"regexp"
	"strings"
	"time"

	"paygate/internal/errors"
	"paygate/internal/models"
)

var (
	cardNumberPattern = regexp.MustCompile(`^[0-9]{14,19}$`)
	cvvPattern        = regexp.MustCompile(`^[0-9]{3,4}$`)
)

// supportedCurrencies holds the 3-letter codes the gateway accepts,
// keyed by their uppercase form.
var supportedCurrencies = map[string]struct{}{
	"EUR": {},
	"USD": {},
	"GBP": {},
}

// PaymentValidator checks payment requests against the gateway's
// acceptance rules. It is stateless apart from its clock and safe for
// concurrent use.
type PaymentValidator struct {
	now func() time.Time
}

// NewPaymentValidator returns a validator using the system clock.
func NewPaymentValidator() *PaymentValidator {
	return &PaymentValidator{now: time.Now}
}

// NewPaymentValidatorWithClock returns a validator with an injected
// clock, for deterministic expiry checks in tests.
func NewPaymentValidatorWithClock(now func() time.Time) *PaymentValidator {
	return &PaymentValidator{now: now}
}

// Validate runs the acceptance rules in a fixed order and returns a
// ValidationError for the first rule that fails:
//
//   - the request must be present
//   - card number: present, numeric, 14-19 digits
//   - expiry month between 1 and 12, expiry year-month in the future
//   - currency: present, one of EUR/USD/GBP (case-insensitive)
//   - amount greater than zero
//   - CVV: present, numeric, 3-4 digits
//
// Validate never contacts external services and never mutates the
// request.
func (v *PaymentValidator) Validate(req *models.PaymentRequest) error {
	if req == nil {
		return errors.NewValidationError("Request cannot be null")
	}

	if req.CardNumber == "" {
		return errors.NewValidationError("Card number is missing from the request")
	}

	if !cardNumberPattern.MatchString(req.CardNumber) {
		return errors.NewValidationError("Card number must be numeric and between 14 and 19 digits long")
	}

	if req.ExpiryMonth < 1 || req.ExpiryMonth > 12 {
		return errors.NewValidationError("Expiry month must be between 1 and 12")
	}

	// A card expires at the end of its printed year-month, so the
	// current year-month already counts as expired.
	now := v.now()
	if req.ExpiryYear < now.Year() ||
		(req.ExpiryYear == now.Year() && req.ExpiryMonth <= int(now.Month())) {
		return errors.NewValidationError("Card has expired")
	}

	if req.Currency == "" {
		return errors.NewValidationError("Currency is missing from the request")
	}

	if _, ok := supportedCurrencies[strings.ToUpper(req.Currency)]; !ok {
		return errors.NewValidationError("Unsupported currency")
	}

	if req.Amount <= 0 {
		return errors.NewValidationError("Amount must be greater than zero")
	}

	if req.CVV == "" {
		return errors.NewValidationError("CVV is missing from the request")
	}

	if !cvvPattern.MatchString(req.CVV) {
		return errors.NewValidationError("CVV must be 3-4 digits and numeric")
	}

	return nil
}
