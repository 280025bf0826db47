package paymentintent

import (
	"github.com/ledgerworks/stripe-client/pkg/stripe"
	"github.com/ledgerworks/stripe-client/pkg/stripe/form"
)

// AutomaticPaymentMethodsParams opts the intent into Stripe-managed payment
// method selection.
type AutomaticPaymentMethodsParams struct {
	Enabled bool `form:"enabled"`
}

// TransferDataParams routes the payment to a connected account at creation.
// Destination cannot be changed after the intent is created.
type TransferDataParams struct {
	Destination string `form:"destination"`
	Amount      *int64 `form:"amount"`
}

// NewTransferDataParams returns transfer data with the required destination.
func NewTransferDataParams(destination string) *TransferDataParams {
	return &TransferDataParams{
		Destination: destination,
	}
}

// UpdateTransferDataParams is the reduced transfer_data accepted after
// creation: only the amount may change.
type UpdateTransferDataParams struct {
	Amount *int64 `form:"amount"`
}

// CreatedParams is the untagged created filter on List: either an exact Unix
// timestamp or a range query, encoded without a discriminator.
type CreatedParams struct {
	timestamp *int64
	query     *stripe.RangeQueryParams
}

// CreatedAt filters on an exact creation timestamp.
func CreatedAt(timestamp int64) *CreatedParams {
	return &CreatedParams{timestamp: &timestamp}
}

// CreatedWithin filters on a creation timestamp range.
func CreatedWithin(query stripe.RangeQueryParams) *CreatedParams {
	return &CreatedParams{query: &query}
}

// AppendTo implements form.Appender.
func (p *CreatedParams) AppendTo(values *form.Values, keyParts []string) {
	if p.timestamp != nil {
		form.AppendTo(values, *p.timestamp, keyParts)
		return
	}
	if p.query != nil {
		form.AppendTo(values, p.query, keyParts)
	}
}

// CreateParams are the inputs of the create operation. Amount is in the
// smallest currency unit and must be positive, at most eight digits.
type CreateParams struct {
	Amount   int64           `form:"amount"`
	Currency stripe.Currency `form:"currency"`

	ApplicationFeeAmount    *int64                         `form:"application_fee_amount"`
	AutomaticPaymentMethods *AutomaticPaymentMethodsParams `form:"automatic_payment_methods"`
	CaptureMethod           *CaptureMethod                 `form:"capture_method"`
	// Confirm attempts confirmation immediately, in the same request.
	Confirm                   *bool                         `form:"confirm"`
	ConfirmationMethod        *ConfirmationMethod           `form:"confirmation_method"`
	Customer                  *string                       `form:"customer"`
	Description               *string                       `form:"description"`
	ErrorOnRequiresAction     *bool                         `form:"error_on_requires_action"`
	Expand                    []string                      `form:"expand"`
	Mandate                   *string                       `form:"mandate"`
	MandateData               *MandateDataParams            `form:"mandate_data"`
	Metadata                  map[string]string             `form:"metadata"`
	OffSession                *OffSessionParams             `form:"off_session"`
	OnBehalfOf                *string                       `form:"on_behalf_of"`
	PaymentMethod             *string                       `form:"payment_method"`
	PaymentMethodData         *PaymentMethodDataParams      `form:"payment_method_data"`
	PaymentMethodOptions      *PaymentMethodOptionsParams   `form:"payment_method_options"`
	PaymentMethodTypes        []PaymentMethodType           `form:"payment_method_types"`
	RadarOptions              *RadarOptionsParams           `form:"radar_options"`
	ReceiptEmail              *string                       `form:"receipt_email"`
	ReturnURL                 *string                       `form:"return_url"`
	SetupFutureUsage          *SetupFutureUsage             `form:"setup_future_usage"`
	Shipping                  *stripe.ShippingDetailsParams `form:"shipping"`
	StatementDescriptor       *string                       `form:"statement_descriptor"`
	StatementDescriptorSuffix *string                       `form:"statement_descriptor_suffix"`
	TransferData              *TransferDataParams           `form:"transfer_data"`
	TransferGroup             *string                       `form:"transfer_group"`
	UseStripeSDK              *bool                         `form:"use_stripe_sdk"`
}

// NewCreateParams returns create parameters with the required amount and
// currency. Every optional field starts absent.
func NewCreateParams(amount int64, currency stripe.Currency) *CreateParams {
	return &CreateParams{
		Amount:   amount,
		Currency: currency,
	}
}

// UpdateParams are the inputs of the update operation. The shape parallels
// CreateParams minus confirmation-only fields; transfer_data is reduced
// because the destination is fixed at creation.
type UpdateParams struct {
	Amount                    *int64                        `form:"amount"`
	ApplicationFeeAmount      *int64                        `form:"application_fee_amount"`
	CaptureMethod             *CaptureMethod                `form:"capture_method"`
	Currency                  *stripe.Currency              `form:"currency"`
	Customer                  *string                       `form:"customer"`
	Description               *string                       `form:"description"`
	Expand                    []string                      `form:"expand"`
	Metadata                  map[string]string             `form:"metadata"`
	PaymentMethod             *string                       `form:"payment_method"`
	PaymentMethodData         *PaymentMethodDataParams      `form:"payment_method_data"`
	PaymentMethodOptions      *PaymentMethodOptionsParams   `form:"payment_method_options"`
	PaymentMethodTypes        []PaymentMethodType           `form:"payment_method_types"`
	ReceiptEmail              *string                       `form:"receipt_email"`
	SetupFutureUsage          *SetupFutureUsage             `form:"setup_future_usage"`
	Shipping                  *stripe.ShippingDetailsParams `form:"shipping"`
	StatementDescriptor       *string                       `form:"statement_descriptor"`
	StatementDescriptorSuffix *string                       `form:"statement_descriptor_suffix"`
	TransferData              *UpdateTransferDataParams     `form:"transfer_data"`
	TransferGroup             *string                       `form:"transfer_group"`
}

// NewUpdateParams returns empty update parameters.
func NewUpdateParams() *UpdateParams {
	return &UpdateParams{}
}

// ConfirmParams are the inputs of the confirm operation.
type ConfirmParams struct {
	CaptureMethod         *CaptureMethod                `form:"capture_method"`
	ErrorOnRequiresAction *bool                         `form:"error_on_requires_action"`
	Expand                []string                      `form:"expand"`
	Mandate               *string                       `form:"mandate"`
	MandateData           *ConfirmMandateDataParams     `form:"mandate_data"`
	OffSession            *OffSessionParams             `form:"off_session"`
	PaymentMethod         *string                       `form:"payment_method"`
	PaymentMethodData     *PaymentMethodDataParams      `form:"payment_method_data"`
	PaymentMethodOptions  *PaymentMethodOptionsParams   `form:"payment_method_options"`
	PaymentMethodTypes    []PaymentMethodType           `form:"payment_method_types"`
	RadarOptions          *RadarOptionsParams           `form:"radar_options"`
	ReceiptEmail          *string                       `form:"receipt_email"`
	ReturnURL             *string                       `form:"return_url"`
	SetupFutureUsage      *SetupFutureUsage             `form:"setup_future_usage"`
	Shipping              *stripe.ShippingDetailsParams `form:"shipping"`
	UseStripeSDK          *bool                         `form:"use_stripe_sdk"`
}

// NewConfirmParams returns empty confirm parameters.
func NewConfirmParams() *ConfirmParams {
	return &ConfirmParams{}
}

// CaptureParams are the inputs of the capture operation. AmountToCapture
// defaults to the full capturable amount; any excess authorization is
// automatically refunded.
type CaptureParams struct {
	AmountToCapture           *int64                    `form:"amount_to_capture"`
	ApplicationFeeAmount      *int64                    `form:"application_fee_amount"`
	Expand                    []string                  `form:"expand"`
	StatementDescriptor       *string                   `form:"statement_descriptor"`
	StatementDescriptorSuffix *string                   `form:"statement_descriptor_suffix"`
	TransferData              *UpdateTransferDataParams `form:"transfer_data"`
}

// NewCaptureParams returns empty capture parameters.
func NewCaptureParams() *CaptureParams {
	return &CaptureParams{}
}

// CancelParams are the inputs of the cancel operation.
type CancelParams struct {
	CancellationReason *CancellationReason `form:"cancellation_reason"`
	Expand             []string            `form:"expand"`
}

// NewCancelParams returns empty cancel parameters.
func NewCancelParams() *CancelParams {
	return &CancelParams{}
}

// IncrementAuthorizationParams are the inputs of the increment_authorization
// operation. Amount is the new total and must exceed the currently
// authorized amount.
type IncrementAuthorizationParams struct {
	Amount int64 `form:"amount"`

	ApplicationFeeAmount *int64                    `form:"application_fee_amount"`
	Description          *string                   `form:"description"`
	Expand               []string                  `form:"expand"`
	Metadata             map[string]string         `form:"metadata"`
	StatementDescriptor  *string                   `form:"statement_descriptor"`
	TransferData         *UpdateTransferDataParams `form:"transfer_data"`
}

// NewIncrementAuthorizationParams returns increment parameters with the
// required amount.
func NewIncrementAuthorizationParams(amount int64) *IncrementAuthorizationParams {
	return &IncrementAuthorizationParams{
		Amount: amount,
	}
}

// ListParams are the inputs of the list operation.
type ListParams struct {
	Created  *CreatedParams `form:"created"`
	Customer *string        `form:"customer"`
	stripe.ListParams
}

// NewListParams returns empty list parameters.
func NewListParams() *ListParams {
	return &ListParams{}
}

// RetrieveParams are the inputs of the retrieve operation. ClientSecret is
// required when retrieving with a publishable key.
type RetrieveParams struct {
	ClientSecret *string  `form:"client_secret"`
	Expand       []string `form:"expand"`
}

// NewRetrieveParams returns empty retrieve parameters.
func NewRetrieveParams() *RetrieveParams {
	return &RetrieveParams{}
}

// SearchParams are the inputs of the search operation.
type SearchParams struct {
	stripe.SearchParams
}

// NewSearchParams returns search parameters with the required query.
func NewSearchParams(query string) *SearchParams {
	return &SearchParams{
		SearchParams: stripe.SearchParams{
			Query: query,
		},
	}
}

// VerifyMicrodepositsParams are the inputs of the verify_microdeposits
// operation. Callers supply either the two deposit amounts in cents or the
// six-character descriptor code beginning with SM; the server rejects
// neither-or-both.
type VerifyMicrodepositsParams struct {
	Amounts        []int64  `form:"amounts"`
	DescriptorCode *string  `form:"descriptor_code"`
	Expand         []string `form:"expand"`
}

// NewVerifyMicrodepositsParams returns empty verification parameters.
func NewVerifyMicrodepositsParams() *VerifyMicrodepositsParams {
	return &VerifyMicrodepositsParams{}
}

// ApplyCustomerBalanceParams are the inputs of the apply_customer_balance
// operation. Amount defaults to the lesser of the outstanding amount and the
// available balance.
type ApplyCustomerBalanceParams struct {
	Amount   *int64           `form:"amount"`
	Currency *stripe.Currency `form:"currency"`
	Expand   []string         `form:"expand"`
}

// NewApplyCustomerBalanceParams returns empty apply parameters.
func NewApplyCustomerBalanceParams() *ApplyCustomerBalanceParams {
	return &ApplyCustomerBalanceParams{}
}
