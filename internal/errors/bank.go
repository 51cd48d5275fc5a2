package errors

// BankFailure identifies why an acquiring bank call failed. The set is
// closed: every transport or protocol problem maps onto one of these.
type BankFailure string

const (
	// BankInvalidRequest covers an HTTP 400 from the bank.
	BankInvalidRequest BankFailure = "Invalid payment request"
	// BankUnavailable covers an HTTP 503 from the bank.
	BankUnavailable BankFailure = "Acquiring Bank unavailable"
	// BankRequestFailed covers everything else: timeouts, DNS errors,
	// cancelled requests, unexpected status codes, malformed bodies.
	BankRequestFailed BankFailure = "Bank request failed"
)

// BankError is returned by the bank client when a payment could not be
// processed. Err carries the underlying cause for logging.
type BankError struct {
	Reason BankFailure
	Err    error
}

func (e *BankError) Error() string {
	if e.Err != nil {
		return string(e.Reason) + ": " + e.Err.Error()
	}
	return string(e.Reason)
}

func (e *BankError) Unwrap() error {
	return e.Err
}

// NewBankError builds a BankError with the given reason and cause.
func NewBankError(reason BankFailure, err error) *BankError {
	return &BankError{Reason: reason, Err: err}
}
