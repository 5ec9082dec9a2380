// Package payment wraps the external payment provider behind a narrow
// interface so checkout can be tested without a network dependency.
package payment

import (
	"context"
	"fmt"
)

type LineItem struct {
	Name            string
	Currency        string
	UnitAmountCents int64
	Quantity        int
}

type CheckoutParams struct {
	LineItems  []LineItem
	SuccessURL string
	CancelURL  string
}

// CheckoutSession is the provider-issued record of one checkout attempt.
type CheckoutSession struct {
	ID            string `json:"id"`
	URL           string `json:"url"`
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`
	AmountTotal   int64  `json:"amount_total"`
	Currency      string `json:"currency"`
}

// Client is everything the shop needs from the provider. Create has side
// effects on the provider side, so callers make exactly one attempt and
// never retry blindly.
type Client interface {
	CreateCheckoutSession(ctx context.Context, p CheckoutParams) (CheckoutSession, error)
	RetrieveCheckoutSession(ctx context.Context, id string) (CheckoutSession, error)
}

// ProviderError carries the provider's HTTP status and a short message safe
// to log; handlers map it to a generic 500 for clients.
type ProviderError struct {
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("payment provider: status=%d message=%q", e.StatusCode, e.Message)
}
