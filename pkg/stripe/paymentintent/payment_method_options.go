package paymentintent

// PaymentMethodOptionsParams configures method-specific behavior on a
// Create, Update, or Confirm call. Every sub-record carries its own
// setup_future_usage; the accepted token subset varies by method and is
// noted per field.
type PaymentMethodOptionsParams struct {
	ACSSDebit        *ACSSDebitOptionsParams        `form:"acss_debit"`
	Affirm           *AffirmOptionsParams           `form:"affirm"`
	AfterpayClearpay *AfterpayClearpayOptionsParams `form:"afterpay_clearpay"`
	Alipay           *AlipayOptionsParams           `form:"alipay"`
	AUBECSDebit      *AUBECSDebitOptionsParams      `form:"au_becs_debit"`
	BACSDebit        *BACSDebitOptionsParams        `form:"bacs_debit"`
	Bancontact       *BancontactOptionsParams       `form:"bancontact"`
	BLIK             *BLIKOptionsParams             `form:"blik"`
	Boleto           *BoletoOptionsParams           `form:"boleto"`
	Card             *CardOptionsParams             `form:"card"`
	CustomerBalance  *CustomerBalanceOptionsParams  `form:"customer_balance"`
	EPS              *EPSOptionsParams              `form:"eps"`
	FPX              *FPXOptionsParams              `form:"fpx"`
	Giropay          *GiropayOptionsParams          `form:"giropay"`
	Grabpay          *GrabpayOptionsParams          `form:"grabpay"`
	Ideal            *IdealOptionsParams            `form:"ideal"`
	Klarna           *KlarnaOptionsParams           `form:"klarna"`
	Konbini          *KonbiniOptionsParams          `form:"konbini"`
	Link             *LinkOptionsParams             `form:"link"`
	OXXO             *OXXOOptionsParams             `form:"oxxo"`
	P24              *P24OptionsParams              `form:"p24"`
	PayNow           *PayNowOptionsParams           `form:"paynow"`
	Pix              *PixOptionsParams              `form:"pix"`
	PromptPay        *PromptPayOptionsParams        `form:"promptpay"`
	SEPADebit        *SEPADebitOptionsParams        `form:"sepa_debit"`
	Sofort           *SofortOptionsParams           `form:"sofort"`
	USBankAccount    *USBankAccountOptionsParams    `form:"us_bank_account"`
	WeChatPay        *WeChatPayOptionsParams        `form:"wechat_pay"`
}

// ACSSDebitOptionsParams configures Canadian pre-authorized debits.
type ACSSDebitOptionsParams struct {
	MandateOptions *ACSSDebitMandateOptionsParams `form:"mandate_options"`
	// SetupFutureUsage accepts none, off_session, and on_session.
	SetupFutureUsage   *MethodSetupFutureUsage `form:"setup_future_usage"`
	VerificationMethod *VerificationMethod     `form:"verification_method"`
}

// ACSSDebitMandateOptionsParams shapes the pre-authorized debit agreement.
type ACSSDebitMandateOptionsParams struct {
	CustomMandateURL    *string                 `form:"custom_mandate_url"`
	IntervalDescription *string                 `form:"interval_description"`
	PaymentSchedule     *MandatePaymentSchedule `form:"payment_schedule"`
	TransactionType     *MandateTransactionType `form:"transaction_type"`
}

// AffirmOptionsParams configures Affirm payments.
type AffirmOptionsParams struct {
	// SetupFutureUsage accepts none only.
	SetupFutureUsage *MethodSetupFutureUsage `form:"setup_future_usage"`
}

// AfterpayClearpayOptionsParams configures Afterpay/Clearpay payments.
type AfterpayClearpayOptionsParams struct {
	// Reference is an order identifier shown on the customer's statement.
	Reference *string `form:"reference"`
	// SetupFutureUsage accepts none only.
	SetupFutureUsage *MethodSetupFutureUsage `form:"setup_future_usage"`
}

// AlipayOptionsParams configures Alipay payments.
type AlipayOptionsParams struct {
	// SetupFutureUsage accepts none and off_session.
	SetupFutureUsage *MethodSetupFutureUsage `form:"setup_future_usage"`
}

// AUBECSDebitOptionsParams configures BECS direct debits.
type AUBECSDebitOptionsParams struct {
	// SetupFutureUsage accepts none, off_session, and on_session.
	SetupFutureUsage *MethodSetupFutureUsage `form:"setup_future_usage"`
}

// BACSDebitOptionsParams configures BACS direct debits.
type BACSDebitOptionsParams struct {
	// SetupFutureUsage accepts none, off_session, and on_session.
	SetupFutureUsage *MethodSetupFutureUsage `form:"setup_future_usage"`
}

// BancontactOptionsParams configures Bancontact payments.
type BancontactOptionsParams struct {
	PreferredLanguage *BancontactPreferredLanguage `form:"preferred_language"`
	// SetupFutureUsage accepts none and off_session.
	SetupFutureUsage *MethodSetupFutureUsage `form:"setup_future_usage"`
}

// BLIKOptionsParams configures BLIK payments.
type BLIKOptionsParams struct {
	// Code is the six-digit token the customer generated in their bank app.
	Code *string `form:"code"`
}

// BoletoOptionsParams configures Boleto vouchers.
type BoletoOptionsParams struct {
	ExpiresAfterDays *int64 `form:"expires_after_days"`
	// SetupFutureUsage accepts none, off_session, and on_session.
	SetupFutureUsage *MethodSetupFutureUsage `form:"setup_future_usage"`
}

// CardOptionsParams configures card payments.
type CardOptionsParams struct {
	// CVCToken references a cvc_update token collected client-side.
	CVCToken       *string                   `form:"cvc_token"`
	Installments   *InstallmentsParams       `form:"installments"`
	MandateOptions *CardMandateOptionsParams `form:"mandate_options"`
	// Moto flags a mail-order/telephone-order payment, exempting it from SCA.
	Moto                *bool                `form:"moto"`
	Network             *CardNetwork         `form:"network"`
	RequestThreeDSecure *RequestThreeDSecure `form:"request_three_d_secure"`
	// SetupFutureUsage accepts none, off_session, and on_session.
	SetupFutureUsage               *MethodSetupFutureUsage `form:"setup_future_usage"`
	StatementDescriptorSuffixKana  *string                 `form:"statement_descriptor_suffix_kana"`
	StatementDescriptorSuffixKanji *string                 `form:"statement_descriptor_suffix_kanji"`
}

// InstallmentsParams enables and selects a card installment plan.
type InstallmentsParams struct {
	Enabled *bool                  `form:"enabled"`
	Plan    *InstallmentPlanParams `form:"plan"`
}

// InstallmentPlanParams is the installment plan the customer chose.
type InstallmentPlanParams struct {
	Count    int64                   `form:"count"`
	Interval InstallmentPlanInterval `form:"interval"`
	Type     InstallmentPlanType     `form:"type"`
}

// NewInstallmentPlanParams returns a fixed-count monthly installment plan.
func NewInstallmentPlanParams(count int64) *InstallmentPlanParams {
	return &InstallmentPlanParams{
		Count:    count,
		Interval: InstallmentPlanIntervalMonth,
		Type:     InstallmentPlanTypeFixedCount,
	}
}

// CardMandateOptionsParams is the eMandate required for recurring card
// payments in India.
type CardMandateOptionsParams struct {
	Amount     int64                 `form:"amount"`
	AmountType CardMandateAmountType `form:"amount_type"`
	Interval   CardMandateInterval   `form:"interval"`
	// Reference is the merchant's mandate identifier.
	Reference string `form:"reference"`
	StartDate int64  `form:"start_date"`

	Description *string `form:"description"`
	EndDate     *int64  `form:"end_date"`
	// IntervalCount is required unless Interval is sporadic.
	IntervalCount  *int64                     `form:"interval_count"`
	SupportedTypes []CardMandateSupportedType `form:"supported_types"`
}

// NewCardMandateOptionsParams returns card mandate options with the required
// fields populated.
func NewCardMandateOptionsParams(
	amount int64,
	amountType CardMandateAmountType,
	interval CardMandateInterval,
	reference string,
	startDate int64,
) *CardMandateOptionsParams {
	return &CardMandateOptionsParams{
		Amount:     amount,
		AmountType: amountType,
		Interval:   interval,
		Reference:  reference,
		StartDate:  startDate,
	}
}

// CustomerBalanceOptionsParams configures payments funded by the customer's
// cash balance.
type CustomerBalanceOptionsParams struct {
	BankTransfer *BankTransferOptionsParams `form:"bank_transfer"`
	FundingType  *FundingType               `form:"funding_type"`
	// SetupFutureUsage accepts none only.
	SetupFutureUsage *MethodSetupFutureUsage `form:"setup_future_usage"`
}

// BankTransferOptionsParams configures the transfer used to top up the
// customer balance.
type BankTransferOptionsParams struct {
	Type                  BankTransferType             `form:"type"`
	EUBankTransfer        *EUBankTransferOptionsParams `form:"eu_bank_transfer"`
	RequestedAddressTypes []RequestedAddressType       `form:"requested_address_types"`
}

// NewBankTransferOptionsParams returns bank transfer options with the
// required transfer type.
func NewBankTransferOptionsParams(transferType BankTransferType) *BankTransferOptionsParams {
	return &BankTransferOptionsParams{
		Type: transferType,
	}
}

// EUBankTransferOptionsParams selects the country of an EU bank transfer.
type EUBankTransferOptionsParams struct {
	Country string `form:"country"`
}

// EPSOptionsParams configures EPS payments.
type EPSOptionsParams struct {
	// SetupFutureUsage accepts none only.
	SetupFutureUsage *MethodSetupFutureUsage `form:"setup_future_usage"`
}

// FPXOptionsParams configures FPX payments.
type FPXOptionsParams struct {
	// SetupFutureUsage accepts none only.
	SetupFutureUsage *MethodSetupFutureUsage `form:"setup_future_usage"`
}

// GiropayOptionsParams configures giropay payments.
type GiropayOptionsParams struct {
	// SetupFutureUsage accepts none only.
	SetupFutureUsage *MethodSetupFutureUsage `form:"setup_future_usage"`
}

// GrabpayOptionsParams configures GrabPay payments.
type GrabpayOptionsParams struct {
	// SetupFutureUsage accepts none only.
	SetupFutureUsage *MethodSetupFutureUsage `form:"setup_future_usage"`
}

// IdealOptionsParams configures iDEAL payments.
type IdealOptionsParams struct {
	// SetupFutureUsage accepts none and off_session.
	SetupFutureUsage *MethodSetupFutureUsage `form:"setup_future_usage"`
}

// KlarnaOptionsParams configures Klarna payments.
type KlarnaOptionsParams struct {
	PreferredLocale *KlarnaPreferredLocale `form:"preferred_locale"`
	// SetupFutureUsage accepts none only.
	SetupFutureUsage *MethodSetupFutureUsage `form:"setup_future_usage"`
}

// KonbiniOptionsParams configures Konbini vouchers.
type KonbiniOptionsParams struct {
	// ConfirmationNumber is printed on the voucher for register payment.
	ConfirmationNumber *string `form:"confirmation_number"`
	ExpiresAfterDays   *int64  `form:"expires_after_days"`
	ExpiresAt          *int64  `form:"expires_at"`
	ProductDescription *string `form:"product_description"`
	// SetupFutureUsage accepts none only.
	SetupFutureUsage *MethodSetupFutureUsage `form:"setup_future_usage"`
}

// LinkOptionsParams configures Link payments.
type LinkOptionsParams struct {
	PersistentToken *string `form:"persistent_token"`
	// SetupFutureUsage accepts none and off_session.
	SetupFutureUsage *MethodSetupFutureUsage `form:"setup_future_usage"`
}

// OXXOOptionsParams configures OXXO vouchers.
type OXXOOptionsParams struct {
	ExpiresAfterDays *int64 `form:"expires_after_days"`
	// SetupFutureUsage accepts none only.
	SetupFutureUsage *MethodSetupFutureUsage `form:"setup_future_usage"`
}

// P24OptionsParams configures Przelewy24 payments.
type P24OptionsParams struct {
	// SetupFutureUsage accepts none only.
	SetupFutureUsage    *MethodSetupFutureUsage `form:"setup_future_usage"`
	TosShownAndAccepted *bool                   `form:"tos_shown_and_accepted"`
}

// PayNowOptionsParams configures PayNow payments.
type PayNowOptionsParams struct {
	// SetupFutureUsage accepts none only.
	SetupFutureUsage *MethodSetupFutureUsage `form:"setup_future_usage"`
}

// PixOptionsParams configures Pix payments.
type PixOptionsParams struct {
	ExpiresAfterSeconds *int64 `form:"expires_after_seconds"`
	ExpiresAt           *int64 `form:"expires_at"`
	// SetupFutureUsage accepts none only.
	SetupFutureUsage *MethodSetupFutureUsage `form:"setup_future_usage"`
}

// PromptPayOptionsParams configures PromptPay payments.
type PromptPayOptionsParams struct {
	// SetupFutureUsage accepts none only.
	SetupFutureUsage *MethodSetupFutureUsage `form:"setup_future_usage"`
}

// SEPADebitOptionsParams configures SEPA direct debits.
type SEPADebitOptionsParams struct {
	MandateOptions *SEPADebitMandateOptionsParams `form:"mandate_options"`
	// SetupFutureUsage accepts none, off_session, and on_session.
	SetupFutureUsage *MethodSetupFutureUsage `form:"setup_future_usage"`
}

// SEPADebitMandateOptionsParams has no fields today; its presence opts into
// mandate configuration defaults.
type SEPADebitMandateOptionsParams struct{}

// SofortOptionsParams configures Sofort payments.
type SofortOptionsParams struct {
	PreferredLanguage *SofortPreferredLanguage `form:"preferred_language"`
	// SetupFutureUsage accepts none and off_session.
	SetupFutureUsage *MethodSetupFutureUsage `form:"setup_future_usage"`
}

// USBankAccountOptionsParams configures ACH direct debits.
type USBankAccountOptionsParams struct {
	FinancialConnections *FinancialConnectionsOptionsParams `form:"financial_connections"`
	Networks             *USBankAccountNetworksParams       `form:"networks"`
	// SetupFutureUsage accepts none, off_session, and on_session.
	SetupFutureUsage   *MethodSetupFutureUsage `form:"setup_future_usage"`
	VerificationMethod *VerificationMethod     `form:"verification_method"`
}

// FinancialConnectionsOptionsParams configures the Financial Connections
// session used to collect the account.
type FinancialConnectionsOptionsParams struct {
	Permissions []FinancialConnectionsPermission `form:"permissions"`
	ReturnURL   *string                          `form:"return_url"`
}

// USBankAccountNetworksParams restricts the networks a debit may use.
type USBankAccountNetworksParams struct {
	Requested []USBankAccountNetwork `form:"requested"`
}

// WeChatPayOptionsParams configures WeChat Pay payments.
type WeChatPayOptionsParams struct {
	// AppID is required when Client is android or ios.
	AppID  *string         `form:"app_id"`
	Client WeChatPayClient `form:"client"`
	// SetupFutureUsage accepts none only.
	SetupFutureUsage *MethodSetupFutureUsage `form:"setup_future_usage"`
}

// NewWeChatPayOptionsParams returns WeChat Pay options with the required
// client platform.
func NewWeChatPayOptionsParams(client WeChatPayClient) *WeChatPayOptionsParams {
	return &WeChatPayOptionsParams{
		Client: client,
	}
}
