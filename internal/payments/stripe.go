package payments

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"
)

// IntentCreator creates a payment intent for an amount already converted to
// minor units and returns the opaque client secret. Nothing else from the
// processor is ever exposed to callers.
type IntentCreator interface {
	CreateIntent(ctx context.Context, amountMinor int64, currency string) (string, error)
}

// StripeClient is the production IntentCreator.
type StripeClient struct{}

func NewStripeClient(secretKey string) *StripeClient {
	stripe.Key = secretKey
	return &StripeClient{}
}

func (s *StripeClient) CreateIntent(ctx context.Context, amountMinor int64, currency string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amountMinor),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	pi, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("create payment intent: %w", err)
	}
	return pi.ClientSecret, nil
}
