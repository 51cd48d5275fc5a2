package models

import "github.com/google/uuid"

// PaymentStatus is the terminal status of a processed payment. The
// constant values double as the wire representation.
type PaymentStatus string

const (
	// StatusAuthorized means the acquiring bank approved the payment.
	StatusAuthorized PaymentStatus = "Authorized"
	// StatusDeclined means the acquiring bank refused the payment.
	StatusDeclined PaymentStatus = "Declined"
	// StatusRejected means the payment never reached the bank (the
	// request failed validation) or the bank call itself failed.
	StatusRejected PaymentStatus = "Rejected"
)

// PaymentRequest is a merchant's payment submission. Card number and
// CVV are strings: leading zeros are significant and neither field is
// ever treated as a number.
type PaymentRequest struct {
	CardNumber  string `json:"card_number"`
	ExpiryMonth int    `json:"expiry_month"`
	ExpiryYear  int    `json:"expiry_year"`
	Currency    string `json:"currency"`
	Amount      int64  `json:"amount"`
	CVV         string `json:"cvv"`
}

// Payment is the persisted outcome of one processed request and the
// response body for both POST and GET. The full card number and the
// CVV never appear here; only the last four characters of the card
// survive processing.
type Payment struct {
	ID                 uuid.UUID     `json:"id"`
	Status             PaymentStatus `json:"status"`
	CardNumberLastFour string        `json:"card_number_last_four"`
	ExpiryMonth        int           `json:"expiry_month"`
	ExpiryYear         int           `json:"expiry_year"`
	Currency           string        `json:"currency"`
	Amount             int64         `json:"amount"`
}

// LastFour returns the literal last four characters of a card number,
// preserving leading zeros. Returns the input unchanged when it is
// shorter than four characters.
func LastFour(cardNumber string) string {
	if len(cardNumber) < 4 {
		return cardNumber
	}
	return cardNumber[len(cardNumber)-4:]
}
