// Package payment wraps the external payment provider behind a small
// interface so handlers can be exercised with a fake gateway in tests.
package payment

import (
	"context"
	"errors"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

// ErrInvalidAmount is returned when the requested charge amount is not a
// positive number of cents.
var ErrInvalidAmount = errors.New("amount must be positive")

// IntentCreator mints a payment intent for the given amount in minor
// currency units and returns the client secret the front end uses to
// confirm the payment.
type IntentCreator interface {
	CreateIntent(ctx context.Context, amountCents int64, currency string) (string, error)
}

// StripeGateway implements IntentCreator against the Stripe API.
type StripeGateway struct {
	client *client.API
}

// NewStripeGateway creates a gateway authenticated with the given secret key.
func NewStripeGateway(apiKey string) *StripeGateway {
	sc := &client.API{}
	sc.Init(apiKey, nil)
	return &StripeGateway{client: sc}
}

// CreateIntent creates a card payment intent and returns its client secret.
func (g *StripeGateway) CreateIntent(ctx context.Context, amountCents int64, currency string) (string, error) {
	if amountCents <= 0 {
		return "", ErrInvalidAmount
	}
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amountCents),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	pi, err := g.client.PaymentIntents.New(params)
	if err != nil {
		return "", err
	}
	return pi.ClientSecret, nil
}
