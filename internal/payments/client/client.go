// Package client wraps the Stripe payment-intent API.
package client

import (
	"context"
	"fmt"

	stripe "github.com/stripe/stripe-go/v83"
	"github.com/stripe/stripe-go/v83/paymentintent"
)

// Client creates payment intents against Stripe.
type Client struct{}

// New configures the Stripe SDK with the account's secret key.
func New(secretKey string) *Client {
	stripe.Key = secretKey
	return &Client{}
}

// CreateIntent opens a payment intent for the given amount in minor
// units and returns the client secret the front end completes the
// payment with.
func (c *Client) CreateIntent(ctx context.Context, amount int64, currency, email, registrationID string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		ReceiptEmail:       stripe.String(email),
	}
	params.Context = ctx
	params.AddMetadata("registrationId", registrationID)

	pi, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("create payment intent: %w", err)
	}
	return pi.ClientSecret, nil
}
