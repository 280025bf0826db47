package paymentintent

import (
	"github.com/ledgerworks/stripe-client/pkg/stripe"
)

// PaymentMethodDataParams creates a payment method inline on a Create,
// Update, or Confirm call. Type is the required discriminator; the populated
// per-method sub-record is expected to match it, though only the server
// rejects a mismatch. Empty sub-records still emit their key, which is how
// Stripe reads method selection.
type PaymentMethodDataParams struct {
	Type PaymentMethodType `form:"type"`

	ACSSDebit        *ACSSDebitDataParams        `form:"acss_debit"`
	Affirm           *AffirmDataParams           `form:"affirm"`
	AfterpayClearpay *AfterpayClearpayDataParams `form:"afterpay_clearpay"`
	Alipay           *AlipayDataParams           `form:"alipay"`
	AUBECSDebit      *AUBECSDebitDataParams      `form:"au_becs_debit"`
	BACSDebit        *BACSDebitDataParams        `form:"bacs_debit"`
	Bancontact       *BancontactDataParams       `form:"bancontact"`
	BLIK             *BLIKDataParams             `form:"blik"`
	Boleto           *BoletoDataParams           `form:"boleto"`
	CustomerBalance  *CustomerBalanceDataParams  `form:"customer_balance"`
	EPS              *EPSDataParams              `form:"eps"`
	FPX              *FPXDataParams              `form:"fpx"`
	Giropay          *GiropayDataParams          `form:"giropay"`
	Grabpay          *GrabpayDataParams          `form:"grabpay"`
	Ideal            *IdealDataParams            `form:"ideal"`
	Klarna           *KlarnaDataParams           `form:"klarna"`
	Konbini          *KonbiniDataParams          `form:"konbini"`
	Link             *LinkDataParams             `form:"link"`
	OXXO             *OXXODataParams             `form:"oxxo"`
	P24              *P24DataParams              `form:"p24"`
	PayNow           *PayNowDataParams           `form:"paynow"`
	Pix              *PixDataParams              `form:"pix"`
	PromptPay        *PromptPayDataParams        `form:"promptpay"`
	SEPADebit        *SEPADebitDataParams        `form:"sepa_debit"`
	Sofort           *SofortDataParams           `form:"sofort"`
	USBankAccount    *USBankAccountDataParams    `form:"us_bank_account"`
	WeChatPay        *WeChatPayDataParams        `form:"wechat_pay"`

	BillingDetails *stripe.BillingDetailsParams `form:"billing_details"`
	Metadata       map[string]string            `form:"metadata"`
	RadarOptions   *RadarOptionsParams          `form:"radar_options"`
}

// NewPaymentMethodDataParams returns payment method data for the provided
// method type. Optional fields start absent.
func NewPaymentMethodDataParams(methodType PaymentMethodType) *PaymentMethodDataParams {
	return &PaymentMethodDataParams{
		Type: methodType,
	}
}

// RadarOptionsParams forwards a Radar session, a snapshot of browser and
// device metadata used by Stripe's fraud engine.
type RadarOptionsParams struct {
	Session *string `form:"session"`
}

// ACSSDebitDataParams is a Canadian pre-authorized debit bank account.
type ACSSDebitDataParams struct {
	AccountNumber     string `form:"account_number"`
	InstitutionNumber string `form:"institution_number"`
	TransitNumber     string `form:"transit_number"`
}

// NewACSSDebitDataParams returns ACSS debit details with the required fields
// populated.
func NewACSSDebitDataParams(accountNumber, institutionNumber, transitNumber string) *ACSSDebitDataParams {
	return &ACSSDebitDataParams{
		AccountNumber:     accountNumber,
		InstitutionNumber: institutionNumber,
		TransitNumber:     transitNumber,
	}
}

// AffirmDataParams has no fields; its presence selects the method.
type AffirmDataParams struct{}

// AfterpayClearpayDataParams has no fields; its presence selects the method.
type AfterpayClearpayDataParams struct{}

// AlipayDataParams has no fields; its presence selects the method.
type AlipayDataParams struct{}

// AUBECSDebitDataParams is an Australian BECS direct debit bank account.
type AUBECSDebitDataParams struct {
	AccountNumber string `form:"account_number"`
	BSBNumber     string `form:"bsb_number"`
}

// NewAUBECSDebitDataParams returns BECS debit details with the required
// fields populated.
func NewAUBECSDebitDataParams(accountNumber, bsbNumber string) *AUBECSDebitDataParams {
	return &AUBECSDebitDataParams{
		AccountNumber: accountNumber,
		BSBNumber:     bsbNumber,
	}
}

// BACSDebitDataParams is a UK BACS direct debit bank account.
type BACSDebitDataParams struct {
	AccountNumber *string `form:"account_number"`
	SortCode      *string `form:"sort_code"`
}

// BancontactDataParams has no fields; its presence selects the method.
type BancontactDataParams struct{}

// BLIKDataParams has no fields; its presence selects the method.
type BLIKDataParams struct{}

// BoletoDataParams identifies the payer of a Boleto voucher.
type BoletoDataParams struct {
	// TaxID is the payer's CPF (individuals) or CNPJ (companies).
	TaxID string `form:"tax_id"`
}

// NewBoletoDataParams returns Boleto details with the required tax id.
func NewBoletoDataParams(taxID string) *BoletoDataParams {
	return &BoletoDataParams{
		TaxID: taxID,
	}
}

// CustomerBalanceDataParams has no fields; its presence selects the method.
type CustomerBalanceDataParams struct{}

// EPSDataParams selects the customer's EPS bank.
type EPSDataParams struct {
	Bank *EPSBank `form:"bank"`
}

// FPXDataParams selects the customer's FPX bank.
type FPXDataParams struct {
	Bank FPXBank `form:"bank"`
}

// NewFPXDataParams returns FPX details with the required bank.
func NewFPXDataParams(bank FPXBank) *FPXDataParams {
	return &FPXDataParams{
		Bank: bank,
	}
}

// GiropayDataParams has no fields; its presence selects the method.
type GiropayDataParams struct{}

// GrabpayDataParams has no fields; its presence selects the method.
type GrabpayDataParams struct{}

// IdealDataParams selects the customer's iDEAL bank.
type IdealDataParams struct {
	Bank *IdealBank `form:"bank"`
}

// KlarnaDataParams carries the customer details Klarna requires.
type KlarnaDataParams struct {
	DOB *KlarnaDOBParams `form:"dob"`
}

// KlarnaDOBParams is the customer's date of birth.
type KlarnaDOBParams struct {
	Day   int64 `form:"day"`
	Month int64 `form:"month"`
	Year  int64 `form:"year"`
}

// NewKlarnaDOBParams returns a date of birth with the required fields
// populated.
func NewKlarnaDOBParams(day, month, year int64) *KlarnaDOBParams {
	return &KlarnaDOBParams{
		Day:   day,
		Month: month,
		Year:  year,
	}
}

// KonbiniDataParams has no fields; its presence selects the method.
type KonbiniDataParams struct{}

// LinkDataParams has no fields; its presence selects the method.
type LinkDataParams struct{}

// OXXODataParams has no fields; its presence selects the method.
type OXXODataParams struct{}

// P24DataParams selects the customer's Przelewy24 bank.
type P24DataParams struct {
	Bank *P24Bank `form:"bank"`
}

// PayNowDataParams has no fields; its presence selects the method.
type PayNowDataParams struct{}

// PixDataParams has no fields; its presence selects the method.
type PixDataParams struct{}

// PromptPayDataParams has no fields; its presence selects the method.
type PromptPayDataParams struct{}

// SEPADebitDataParams is a SEPA direct debit bank account.
type SEPADebitDataParams struct {
	IBAN string `form:"iban"`
}

// NewSEPADebitDataParams returns SEPA debit details with the required IBAN.
func NewSEPADebitDataParams(iban string) *SEPADebitDataParams {
	return &SEPADebitDataParams{
		IBAN: iban,
	}
}

// SofortDataParams carries the customer's bank country.
type SofortDataParams struct {
	Country SofortCountry `form:"country"`
}

// NewSofortDataParams returns Sofort details with the required country.
func NewSofortDataParams(country SofortCountry) *SofortDataParams {
	return &SofortDataParams{
		Country: country,
	}
}

// USBankAccountDataParams is a US bank account, supplied directly or through
// a Financial Connections account.
type USBankAccountDataParams struct {
	AccountHolderType           *AccountHolderType `form:"account_holder_type"`
	AccountNumber               *string            `form:"account_number"`
	AccountType                 *AccountType       `form:"account_type"`
	FinancialConnectionsAccount *string            `form:"financial_connections_account"`
	RoutingNumber               *string            `form:"routing_number"`
}

// WeChatPayDataParams has no fields; its presence selects the method.
type WeChatPayDataParams struct{}
