package paymentintent

import (
	"context"
	"net/http"

	"github.com/ledgerworks/stripe-client/pkg/metrics"
	"github.com/ledgerworks/stripe-client/pkg/stripe"
)

const (
	metricsStructName = "stripe.paymentintent.client"

	basePath = "/payment_intents"
)

// Client invokes the PaymentIntents endpoints through a stripe.Backend.
// It holds no state of its own; a single Client is safe for concurrent use
// if the backend is.
type Client struct {
	backend stripe.Backend
}

// NewClient returns a Client calling through the provided backend.
func NewClient(backend stripe.Backend) *Client {
	return &Client{
		backend: backend,
	}
}

// New creates a PaymentIntent.
func (c *Client) New(ctx context.Context, params *CreateParams, opts ...stripe.CallOption) (*PaymentIntent, error) {
	tracer := metrics.TraceMethodCall(ctx, metricsStructName, "New")
	defer tracer.End()

	var intent PaymentIntent
	err := c.backend.Call(ctx, http.MethodPost, basePath, params, &intent, opts...)
	if err != nil {
		tracer.OnError(err)
		return nil, err
	}
	return &intent, nil
}

// Get retrieves a PaymentIntent by id. params may be nil.
func (c *Client) Get(ctx context.Context, id string, params *RetrieveParams, opts ...stripe.CallOption) (*PaymentIntent, error) {
	tracer := metrics.TraceMethodCall(ctx, metricsStructName, "Get")
	defer tracer.End()

	var intent PaymentIntent
	err := c.backend.Call(ctx, http.MethodGet, basePath+"/"+id, params, &intent, opts...)
	if err != nil {
		tracer.OnError(err)
		return nil, err
	}
	return &intent, nil
}

// Update mutates a PaymentIntent's properties.
func (c *Client) Update(ctx context.Context, id string, params *UpdateParams, opts ...stripe.CallOption) (*PaymentIntent, error) {
	tracer := metrics.TraceMethodCall(ctx, metricsStructName, "Update")
	defer tracer.End()

	var intent PaymentIntent
	err := c.backend.Call(ctx, http.MethodPost, basePath+"/"+id, params, &intent, opts...)
	if err != nil {
		tracer.OnError(err)
		return nil, err
	}
	return &intent, nil
}

// Confirm confirms that the customer intends to pay with the current or
// provided payment method.
func (c *Client) Confirm(ctx context.Context, id string, params *ConfirmParams, opts ...stripe.CallOption) (*PaymentIntent, error) {
	tracer := metrics.TraceMethodCall(ctx, metricsStructName, "Confirm")
	defer tracer.End()

	var intent PaymentIntent
	err := c.backend.Call(ctx, http.MethodPost, basePath+"/"+id+"/confirm", params, &intent, opts...)
	if err != nil {
		tracer.OnError(err)
		return nil, err
	}
	return &intent, nil
}

// Capture captures the funds of an uncaptured PaymentIntent in the
// requires_capture state.
func (c *Client) Capture(ctx context.Context, id string, params *CaptureParams, opts ...stripe.CallOption) (*PaymentIntent, error) {
	tracer := metrics.TraceMethodCall(ctx, metricsStructName, "Capture")
	defer tracer.End()

	var intent PaymentIntent
	err := c.backend.Call(ctx, http.MethodPost, basePath+"/"+id+"/capture", params, &intent, opts...)
	if err != nil {
		tracer.OnError(err)
		return nil, err
	}
	return &intent, nil
}

// Cancel cancels a PaymentIntent that has not yet succeeded.
func (c *Client) Cancel(ctx context.Context, id string, params *CancelParams, opts ...stripe.CallOption) (*PaymentIntent, error) {
	tracer := metrics.TraceMethodCall(ctx, metricsStructName, "Cancel")
	defer tracer.End()

	var intent PaymentIntent
	err := c.backend.Call(ctx, http.MethodPost, basePath+"/"+id+"/cancel", params, &intent, opts...)
	if err != nil {
		tracer.OnError(err)
		return nil, err
	}
	return &intent, nil
}

// IncrementAuthorization raises the authorized amount of an uncaptured
// intent.
func (c *Client) IncrementAuthorization(ctx context.Context, id string, params *IncrementAuthorizationParams, opts ...stripe.CallOption) (*PaymentIntent, error) {
	tracer := metrics.TraceMethodCall(ctx, metricsStructName, "IncrementAuthorization")
	defer tracer.End()

	var intent PaymentIntent
	err := c.backend.Call(ctx, http.MethodPost, basePath+"/"+id+"/increment_authorization", params, &intent, opts...)
	if err != nil {
		tracer.OnError(err)
		return nil, err
	}
	return &intent, nil
}

// VerifyMicrodeposits verifies a bank account using the amounts or the
// descriptor code from the microdeposits.
func (c *Client) VerifyMicrodeposits(ctx context.Context, id string, params *VerifyMicrodepositsParams, opts ...stripe.CallOption) (*PaymentIntent, error) {
	tracer := metrics.TraceMethodCall(ctx, metricsStructName, "VerifyMicrodeposits")
	defer tracer.End()

	var intent PaymentIntent
	err := c.backend.Call(ctx, http.MethodPost, basePath+"/"+id+"/verify_microdeposits", params, &intent, opts...)
	if err != nil {
		tracer.OnError(err)
		return nil, err
	}
	return &intent, nil
}

// ApplyCustomerBalance pays some or all of the intent from the customer's
// cash balance.
func (c *Client) ApplyCustomerBalance(ctx context.Context, id string, params *ApplyCustomerBalanceParams, opts ...stripe.CallOption) (*PaymentIntent, error) {
	tracer := metrics.TraceMethodCall(ctx, metricsStructName, "ApplyCustomerBalance")
	defer tracer.End()

	var intent PaymentIntent
	err := c.backend.Call(ctx, http.MethodPost, basePath+"/"+id+"/apply_customer_balance", params, &intent, opts...)
	if err != nil {
		tracer.OnError(err)
		return nil, err
	}
	return &intent, nil
}

// List returns one page of PaymentIntents. params may be nil.
func (c *Client) List(ctx context.Context, params *ListParams, opts ...stripe.CallOption) (*ListResult, error) {
	tracer := metrics.TraceMethodCall(ctx, metricsStructName, "List")
	defer tracer.End()

	var page ListResult
	err := c.backend.Call(ctx, http.MethodGet, basePath, params, &page, opts...)
	if err != nil {
		tracer.OnError(err)
		return nil, err
	}
	return &page, nil
}

// Search returns one page of PaymentIntents matching a search query.
func (c *Client) Search(ctx context.Context, params *SearchParams, opts ...stripe.CallOption) (*SearchResult, error) {
	tracer := metrics.TraceMethodCall(ctx, metricsStructName, "Search")
	defer tracer.End()

	var page SearchResult
	err := c.backend.Call(ctx, http.MethodGet, basePath+"/search", params, &page, opts...)
	if err != nil {
		tracer.OnError(err)
		return nil, err
	}
	return &page, nil
}
