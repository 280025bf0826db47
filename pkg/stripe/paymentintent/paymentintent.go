// Package paymentintent is a typed binding for the Stripe PaymentIntents
// API: the parameter trees, the enum catalogs, and one operation method per
// REST endpoint. The intent lifecycle itself lives on Stripe's side; this
// package holds no state beyond the backend it calls through.
package paymentintent

import (
	"github.com/ledgerworks/stripe-client/pkg/stripe"
)

// LastPaymentError describes the most recent failed payment attempt.
type LastPaymentError struct {
	Type        stripe.ErrorType `json:"type"`
	Charge      string           `json:"charge"`
	Code        string           `json:"code"`
	DeclineCode string           `json:"decline_code"`
	DocURL      string           `json:"doc_url"`
	Message     string           `json:"message"`
	Param       string           `json:"param"`
}

// NextActionRedirectToURL tells the integration where to send the customer
// to complete authentication.
type NextActionRedirectToURL struct {
	ReturnURL string `json:"return_url"`
	URL       string `json:"url"`
}

// NextAction is the action the integration must perform before the payment
// can proceed.
type NextAction struct {
	Type            string                   `json:"type"`
	RedirectToURL   *NextActionRedirectToURL `json:"redirect_to_url"`
	UseStripeSDKRaw map[string]interface{}   `json:"use_stripe_sdk"`
}

// TransferData is the decoded transfer routing of the intent.
type TransferData struct {
	Amount      int64  `json:"amount"`
	Destination string `json:"destination"`
}

// AutomaticPaymentMethods is the decoded automatic payment method setting.
type AutomaticPaymentMethods struct {
	Enabled bool `json:"enabled"`
}

// PaymentIntent is the decoded API resource returned by every operation.
// Enum-typed fields keep unknown future tokens as their raw string rather
// than failing the decode.
type PaymentIntent struct {
	ID                        string                   `json:"id"`
	Object                    string                   `json:"object"`
	Amount                    int64                    `json:"amount"`
	AmountCapturable          int64                    `json:"amount_capturable"`
	AmountReceived            int64                    `json:"amount_received"`
	Application               string                   `json:"application"`
	ApplicationFeeAmount      *int64                   `json:"application_fee_amount"`
	AutomaticPaymentMethods   *AutomaticPaymentMethods `json:"automatic_payment_methods"`
	CanceledAt                *int64                   `json:"canceled_at"`
	CancellationReason        CancellationReason       `json:"cancellation_reason"`
	CaptureMethod             CaptureMethod            `json:"capture_method"`
	ClientSecret              string                   `json:"client_secret"`
	ConfirmationMethod        ConfirmationMethod       `json:"confirmation_method"`
	Created                   int64                    `json:"created"`
	Currency                  stripe.Currency          `json:"currency"`
	Customer                  string                   `json:"customer"`
	Description               string                   `json:"description"`
	LastPaymentError          *LastPaymentError        `json:"last_payment_error"`
	LatestCharge              string                   `json:"latest_charge"`
	Livemode                  bool                     `json:"livemode"`
	Metadata                  map[string]string        `json:"metadata"`
	NextAction                *NextAction              `json:"next_action"`
	OnBehalfOf                string                   `json:"on_behalf_of"`
	PaymentMethod             string                   `json:"payment_method"`
	PaymentMethodTypes        []PaymentMethodType      `json:"payment_method_types"`
	ReceiptEmail              string                   `json:"receipt_email"`
	SetupFutureUsage          SetupFutureUsage         `json:"setup_future_usage"`
	Shipping                  *stripe.ShippingDetails  `json:"shipping"`
	StatementDescriptor       string                   `json:"statement_descriptor"`
	StatementDescriptorSuffix string                   `json:"statement_descriptor_suffix"`
	Status                    Status                   `json:"status"`
	TransferData              *TransferData            `json:"transfer_data"`
	TransferGroup             string                   `json:"transfer_group"`
}

// ListResult is one page of intents from the list endpoint. Callers page
// manually with the cursor fields on ListParams.
type ListResult struct {
	Object  string           `json:"object"`
	Data    []*PaymentIntent `json:"data"`
	HasMore bool             `json:"has_more"`
	URL     string           `json:"url"`
}
