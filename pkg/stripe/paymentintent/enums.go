package paymentintent

import (
	"github.com/pkg/errors"
)

// parseToken resolves a wire token against a closed catalog. Matching is
// case-sensitive and exact. Outbound encoding never goes through here; the
// declared constants are the wire strings.
func parseToken[T ~string](kind string, catalog []T, raw string) (T, error) {
	for _, v := range catalog {
		if string(v) == raw {
			return v, nil
		}
	}
	var zero T
	return zero, errors.Errorf("unknown %s token: %q", kind, raw)
}

// PaymentMethodType selects a payment method family on a PaymentIntent.
type PaymentMethodType string

const (
	PaymentMethodTypeACSSDebit        PaymentMethodType = "acss_debit"
	PaymentMethodTypeAffirm           PaymentMethodType = "affirm"
	PaymentMethodTypeAfterpayClearpay PaymentMethodType = "afterpay_clearpay"
	PaymentMethodTypeAlipay           PaymentMethodType = "alipay"
	PaymentMethodTypeAUBECSDebit      PaymentMethodType = "au_becs_debit"
	PaymentMethodTypeBACSDebit        PaymentMethodType = "bacs_debit"
	PaymentMethodTypeBancontact       PaymentMethodType = "bancontact"
	PaymentMethodTypeBLIK             PaymentMethodType = "blik"
	PaymentMethodTypeBoleto           PaymentMethodType = "boleto"
	PaymentMethodTypeCustomerBalance  PaymentMethodType = "customer_balance"
	PaymentMethodTypeEPS              PaymentMethodType = "eps"
	PaymentMethodTypeFPX              PaymentMethodType = "fpx"
	PaymentMethodTypeGiropay          PaymentMethodType = "giropay"
	PaymentMethodTypeGrabpay          PaymentMethodType = "grabpay"
	PaymentMethodTypeIdeal            PaymentMethodType = "ideal"
	PaymentMethodTypeKlarna           PaymentMethodType = "klarna"
	PaymentMethodTypeKonbini          PaymentMethodType = "konbini"
	PaymentMethodTypeLink             PaymentMethodType = "link"
	PaymentMethodTypeOXXO             PaymentMethodType = "oxxo"
	PaymentMethodTypeP24              PaymentMethodType = "p24"
	PaymentMethodTypePayNow           PaymentMethodType = "paynow"
	PaymentMethodTypePix              PaymentMethodType = "pix"
	PaymentMethodTypePromptPay        PaymentMethodType = "promptpay"
	PaymentMethodTypeSEPADebit        PaymentMethodType = "sepa_debit"
	PaymentMethodTypeSofort           PaymentMethodType = "sofort"
	PaymentMethodTypeUSBankAccount    PaymentMethodType = "us_bank_account"
	PaymentMethodTypeWeChatPay        PaymentMethodType = "wechat_pay"
)

var paymentMethodTypes = []PaymentMethodType{
	PaymentMethodTypeACSSDebit, PaymentMethodTypeAffirm, PaymentMethodTypeAfterpayClearpay,
	PaymentMethodTypeAlipay, PaymentMethodTypeAUBECSDebit, PaymentMethodTypeBACSDebit,
	PaymentMethodTypeBancontact, PaymentMethodTypeBLIK, PaymentMethodTypeBoleto,
	PaymentMethodTypeCustomerBalance, PaymentMethodTypeEPS, PaymentMethodTypeFPX,
	PaymentMethodTypeGiropay, PaymentMethodTypeGrabpay, PaymentMethodTypeIdeal,
	PaymentMethodTypeKlarna, PaymentMethodTypeKonbini, PaymentMethodTypeLink,
	PaymentMethodTypeOXXO, PaymentMethodTypeP24, PaymentMethodTypePayNow,
	PaymentMethodTypePix, PaymentMethodTypePromptPay, PaymentMethodTypeSEPADebit,
	PaymentMethodTypeSofort, PaymentMethodTypeUSBankAccount, PaymentMethodTypeWeChatPay,
}

func (v PaymentMethodType) String() string { return string(v) }

// ParsePaymentMethodType resolves a payment method type wire token.
func ParsePaymentMethodType(raw string) (PaymentMethodType, error) {
	return parseToken("payment method type", paymentMethodTypes, raw)
}

// CaptureMethod controls when funds are captured after authorization.
type CaptureMethod string

const (
	CaptureMethodAutomatic CaptureMethod = "automatic"
	CaptureMethodManual    CaptureMethod = "manual"
)

var captureMethods = []CaptureMethod{CaptureMethodAutomatic, CaptureMethodManual}

func (v CaptureMethod) String() string { return string(v) }

// ParseCaptureMethod resolves a capture method wire token.
func ParseCaptureMethod(raw string) (CaptureMethod, error) {
	return parseToken("capture method", captureMethods, raw)
}

// ConfirmationMethod controls whether confirmation requires the secret key.
type ConfirmationMethod string

const (
	ConfirmationMethodAutomatic ConfirmationMethod = "automatic"
	ConfirmationMethodManual    ConfirmationMethod = "manual"
)

var confirmationMethods = []ConfirmationMethod{ConfirmationMethodAutomatic, ConfirmationMethodManual}

func (v ConfirmationMethod) String() string { return string(v) }

// ParseConfirmationMethod resolves a confirmation method wire token.
func ParseConfirmationMethod(raw string) (ConfirmationMethod, error) {
	return parseToken("confirmation method", confirmationMethods, raw)
}

// SetupFutureUsage indicates how an attached payment method will be reused.
// The top-level field accepts off_session and on_session only.
type SetupFutureUsage string

const (
	SetupFutureUsageOffSession SetupFutureUsage = "off_session"
	SetupFutureUsageOnSession  SetupFutureUsage = "on_session"
)

var setupFutureUsages = []SetupFutureUsage{SetupFutureUsageOffSession, SetupFutureUsageOnSession}

func (v SetupFutureUsage) String() string { return string(v) }

// ParseSetupFutureUsage resolves a top-level setup_future_usage wire token.
func ParseSetupFutureUsage(raw string) (SetupFutureUsage, error) {
	return parseToken("setup future usage", setupFutureUsages, raw)
}

// MethodSetupFutureUsage is the per-method setup_future_usage. Each payment
// method accepts a subset of these tokens; the accepted subset is documented
// on the owning options field. Mismatches are rejected server-side.
type MethodSetupFutureUsage string

const (
	MethodSetupFutureUsageNone       MethodSetupFutureUsage = "none"
	MethodSetupFutureUsageOffSession MethodSetupFutureUsage = "off_session"
	MethodSetupFutureUsageOnSession  MethodSetupFutureUsage = "on_session"
)

var methodSetupFutureUsages = []MethodSetupFutureUsage{
	MethodSetupFutureUsageNone, MethodSetupFutureUsageOffSession, MethodSetupFutureUsageOnSession,
}

func (v MethodSetupFutureUsage) String() string { return string(v) }

// ParseMethodSetupFutureUsage resolves a per-method setup_future_usage wire token.
func ParseMethodSetupFutureUsage(raw string) (MethodSetupFutureUsage, error) {
	return parseToken("per-method setup future usage", methodSetupFutureUsages, raw)
}

// CancellationReason is the merchant-supplied reason for canceling an intent.
type CancellationReason string

const (
	CancellationReasonAbandoned           CancellationReason = "abandoned"
	CancellationReasonDuplicate           CancellationReason = "duplicate"
	CancellationReasonFraudulent          CancellationReason = "fraudulent"
	CancellationReasonRequestedByCustomer CancellationReason = "requested_by_customer"
)

var cancellationReasons = []CancellationReason{
	CancellationReasonAbandoned, CancellationReasonDuplicate,
	CancellationReasonFraudulent, CancellationReasonRequestedByCustomer,
}

func (v CancellationReason) String() string { return string(v) }

// ParseCancellationReason resolves a cancellation reason wire token.
func ParseCancellationReason(raw string) (CancellationReason, error) {
	return parseToken("cancellation reason", cancellationReasons, raw)
}

// Status is the server-side lifecycle state of a PaymentIntent. It only
// appears on the inbound path; unknown tokens decode as their raw string.
type Status string

const (
	StatusRequiresPaymentMethod Status = "requires_payment_method"
	StatusRequiresConfirmation  Status = "requires_confirmation"
	StatusRequiresAction        Status = "requires_action"
	StatusProcessing            Status = "processing"
	StatusRequiresCapture       Status = "requires_capture"
	StatusCanceled              Status = "canceled"
	StatusSucceeded             Status = "succeeded"
)

var statuses = []Status{
	StatusRequiresPaymentMethod, StatusRequiresConfirmation, StatusRequiresAction,
	StatusProcessing, StatusRequiresCapture, StatusCanceled, StatusSucceeded,
}

func (v Status) String() string { return string(v) }

// ParseStatus resolves a PaymentIntent status wire token.
func ParseStatus(raw string) (Status, error) {
	return parseToken("payment intent status", statuses, raw)
}

// MandatePaymentSchedule is the debit schedule of a Canadian pre-authorized
// debit mandate.
type MandatePaymentSchedule string

const (
	MandatePaymentScheduleCombined MandatePaymentSchedule = "combined"
	MandatePaymentScheduleInterval MandatePaymentSchedule = "interval"
	MandatePaymentScheduleSporadic MandatePaymentSchedule = "sporadic"
)

var mandatePaymentSchedules = []MandatePaymentSchedule{
	MandatePaymentScheduleCombined, MandatePaymentScheduleInterval, MandatePaymentScheduleSporadic,
}

func (v MandatePaymentSchedule) String() string { return string(v) }

// ParseMandatePaymentSchedule resolves a mandate payment schedule wire token.
func ParseMandatePaymentSchedule(raw string) (MandatePaymentSchedule, error) {
	return parseToken("mandate payment schedule", mandatePaymentSchedules, raw)
}

// MandateTransactionType classifies the account a mandate debits.
type MandateTransactionType string

const (
	MandateTransactionTypeBusiness MandateTransactionType = "business"
	MandateTransactionTypePersonal MandateTransactionType = "personal"
)

var mandateTransactionTypes = []MandateTransactionType{
	MandateTransactionTypeBusiness, MandateTransactionTypePersonal,
}

func (v MandateTransactionType) String() string { return string(v) }

// ParseMandateTransactionType resolves a mandate transaction type wire token.
func ParseMandateTransactionType(raw string) (MandateTransactionType, error) {
	return parseToken("mandate transaction type", mandateTransactionTypes, raw)
}

// CardMandateAmountType states whether the mandated amount is exact or a cap.
type CardMandateAmountType string

const (
	CardMandateAmountTypeFixed   CardMandateAmountType = "fixed"
	CardMandateAmountTypeMaximum CardMandateAmountType = "maximum"
)

var cardMandateAmountTypes = []CardMandateAmountType{
	CardMandateAmountTypeFixed, CardMandateAmountTypeMaximum,
}

func (v CardMandateAmountType) String() string { return string(v) }

// ParseCardMandateAmountType resolves a card mandate amount type wire token.
func ParseCardMandateAmountType(raw string) (CardMandateAmountType, error) {
	return parseToken("card mandate amount type", cardMandateAmountTypes, raw)
}

// CardMandateInterval is the recurrence interval of a card eMandate.
// interval_count is required unless the interval is sporadic.
type CardMandateInterval string

const (
	CardMandateIntervalDay      CardMandateInterval = "day"
	CardMandateIntervalWeek     CardMandateInterval = "week"
	CardMandateIntervalMonth    CardMandateInterval = "month"
	CardMandateIntervalYear     CardMandateInterval = "year"
	CardMandateIntervalSporadic CardMandateInterval = "sporadic"
)

var cardMandateIntervals = []CardMandateInterval{
	CardMandateIntervalDay, CardMandateIntervalWeek, CardMandateIntervalMonth,
	CardMandateIntervalYear, CardMandateIntervalSporadic,
}

func (v CardMandateInterval) String() string { return string(v) }

// ParseCardMandateInterval resolves a card mandate interval wire token.
func ParseCardMandateInterval(raw string) (CardMandateInterval, error) {
	return parseToken("card mandate interval", cardMandateIntervals, raw)
}

// CardMandateSupportedType is a regional mandate scheme.
type CardMandateSupportedType string

const (
	CardMandateSupportedTypeIndia CardMandateSupportedType = "india"
)

var cardMandateSupportedTypes = []CardMandateSupportedType{CardMandateSupportedTypeIndia}

func (v CardMandateSupportedType) String() string { return string(v) }

// ParseCardMandateSupportedType resolves a card mandate supported type wire token.
func ParseCardMandateSupportedType(raw string) (CardMandateSupportedType, error) {
	return parseToken("card mandate supported type", cardMandateSupportedTypes, raw)
}

// VerificationMethod selects how a bank account is verified before debiting.
type VerificationMethod string

const (
	VerificationMethodAutomatic     VerificationMethod = "automatic"
	VerificationMethodInstant       VerificationMethod = "instant"
	VerificationMethodMicrodeposits VerificationMethod = "microdeposits"
)

var verificationMethods = []VerificationMethod{
	VerificationMethodAutomatic, VerificationMethodInstant, VerificationMethodMicrodeposits,
}

func (v VerificationMethod) String() string { return string(v) }

// ParseVerificationMethod resolves a verification method wire token.
func ParseVerificationMethod(raw string) (VerificationMethod, error) {
	return parseToken("verification method", verificationMethods, raw)
}

// CardNetwork restricts the network a card charge routes over.
type CardNetwork string

const (
	CardNetworkAmex            CardNetwork = "amex"
	CardNetworkCartesBancaires CardNetwork = "cartes_bancaires"
	CardNetworkDiners          CardNetwork = "diners"
	CardNetworkDiscover        CardNetwork = "discover"
	CardNetworkInterac         CardNetwork = "interac"
	CardNetworkJCB             CardNetwork = "jcb"
	CardNetworkMastercard      CardNetwork = "mastercard"
	CardNetworkUnionpay        CardNetwork = "unionpay"
	CardNetworkUnknown         CardNetwork = "unknown"
	CardNetworkVisa            CardNetwork = "visa"
)

var cardNetworks = []CardNetwork{
	CardNetworkAmex, CardNetworkCartesBancaires, CardNetworkDiners, CardNetworkDiscover,
	CardNetworkInterac, CardNetworkJCB, CardNetworkMastercard, CardNetworkUnionpay,
	CardNetworkUnknown, CardNetworkVisa,
}

func (v CardNetwork) String() string { return string(v) }

// ParseCardNetwork resolves a card network wire token.
func ParseCardNetwork(raw string) (CardNetwork, error) {
	return parseToken("card network", cardNetworks, raw)
}

// RequestThreeDSecure controls when 3D Secure authentication is requested.
type RequestThreeDSecure string

const (
	RequestThreeDSecureAny       RequestThreeDSecure = "any"
	RequestThreeDSecureAutomatic RequestThreeDSecure = "automatic"
)

var requestThreeDSecures = []RequestThreeDSecure{
	RequestThreeDSecureAny, RequestThreeDSecureAutomatic,
}

func (v RequestThreeDSecure) String() string { return string(v) }

// ParseRequestThreeDSecure resolves a 3DS request mode wire token.
func ParseRequestThreeDSecure(raw string) (RequestThreeDSecure, error) {
	return parseToken("3DS request mode", requestThreeDSecures, raw)
}

// InstallmentPlanInterval is the billing interval of a card installment plan.
// Only monthly plans exist.
type InstallmentPlanInterval string

const (
	InstallmentPlanIntervalMonth InstallmentPlanInterval = "month"
)

var installmentPlanIntervals = []InstallmentPlanInterval{InstallmentPlanIntervalMonth}

func (v InstallmentPlanInterval) String() string { return string(v) }

// ParseInstallmentPlanInterval resolves an installment plan interval wire token.
func ParseInstallmentPlanInterval(raw string) (InstallmentPlanInterval, error) {
	return parseToken("installment plan interval", installmentPlanIntervals, raw)
}

// InstallmentPlanType is the shape of a card installment plan.
type InstallmentPlanType string

const (
	InstallmentPlanTypeFixedCount InstallmentPlanType = "fixed_count"
)

var installmentPlanTypes = []InstallmentPlanType{InstallmentPlanTypeFixedCount}

func (v InstallmentPlanType) String() string { return string(v) }

// ParseInstallmentPlanType resolves an installment plan type wire token.
func ParseInstallmentPlanType(raw string) (InstallmentPlanType, error) {
	return parseToken("installment plan type", installmentPlanTypes, raw)
}

// BankTransferType is the regional scheme of a customer balance bank transfer.
type BankTransferType string

const (
	BankTransferTypeEUBankTransfer BankTransferType = "eu_bank_transfer"
	BankTransferTypeGBBankTransfer BankTransferType = "gb_bank_transfer"
	BankTransferTypeJPBankTransfer BankTransferType = "jp_bank_transfer"
	BankTransferTypeMXBankTransfer BankTransferType = "mx_bank_transfer"
)

var bankTransferTypes = []BankTransferType{
	BankTransferTypeEUBankTransfer, BankTransferTypeGBBankTransfer,
	BankTransferTypeJPBankTransfer, BankTransferTypeMXBankTransfer,
}

func (v BankTransferType) String() string { return string(v) }

// ParseBankTransferType resolves a bank transfer type wire token.
func ParseBankTransferType(raw string) (BankTransferType, error) {
	return parseToken("bank transfer type", bankTransferTypes, raw)
}

// RequestedAddressType is a bank address format the customer may be shown for
// a bank transfer.
type RequestedAddressType string

const (
	RequestedAddressTypeIBAN     RequestedAddressType = "iban"
	RequestedAddressTypeSEPA     RequestedAddressType = "sepa"
	RequestedAddressTypeSortCode RequestedAddressType = "sort_code"
	RequestedAddressTypeSPEI     RequestedAddressType = "spei"
	RequestedAddressTypeZengin   RequestedAddressType = "zengin"
)

var requestedAddressTypes = []RequestedAddressType{
	RequestedAddressTypeIBAN, RequestedAddressTypeSEPA, RequestedAddressTypeSortCode,
	RequestedAddressTypeSPEI, RequestedAddressTypeZengin,
}

func (v RequestedAddressType) String() string { return string(v) }

// ParseRequestedAddressType resolves a requested address type wire token.
func ParseRequestedAddressType(raw string) (RequestedAddressType, error) {
	return parseToken("requested address type", requestedAddressTypes, raw)
}

// FundingType is how a customer balance is funded.
type FundingType string

const (
	FundingTypeBankTransfer FundingType = "bank_transfer"
)

var fundingTypes = []FundingType{FundingTypeBankTransfer}

func (v FundingType) String() string { return string(v) }

// ParseFundingType resolves a funding type wire token.
func ParseFundingType(raw string) (FundingType, error) {
	return parseToken("funding type", fundingTypes, raw)
}

// USBankAccountNetwork is an ACH-family network a debit may route over.
type USBankAccountNetwork string

const (
	USBankAccountNetworkACH            USBankAccountNetwork = "ach"
	USBankAccountNetworkUSDomesticWire USBankAccountNetwork = "us_domestic_wire"
)

var usBankAccountNetworks = []USBankAccountNetwork{
	USBankAccountNetworkACH, USBankAccountNetworkUSDomesticWire,
}

func (v USBankAccountNetwork) String() string { return string(v) }

// ParseUSBankAccountNetwork resolves a US bank account network wire token.
func ParseUSBankAccountNetwork(raw string) (USBankAccountNetwork, error) {
	return parseToken("US bank account network", usBankAccountNetworks, raw)
}

// FinancialConnectionsPermission is data access requested through Financial
// Connections.
type FinancialConnectionsPermission string

const (
	FinancialConnectionsPermissionBalances      FinancialConnectionsPermission = "balances"
	FinancialConnectionsPermissionOwnership     FinancialConnectionsPermission = "ownership"
	FinancialConnectionsPermissionPaymentMethod FinancialConnectionsPermission = "payment_method"
	FinancialConnectionsPermissionTransactions  FinancialConnectionsPermission = "transactions"
)

var financialConnectionsPermissions = []FinancialConnectionsPermission{
	FinancialConnectionsPermissionBalances, FinancialConnectionsPermissionOwnership,
	FinancialConnectionsPermissionPaymentMethod, FinancialConnectionsPermissionTransactions,
}

func (v FinancialConnectionsPermission) String() string { return string(v) }

// ParseFinancialConnectionsPermission resolves a Financial Connections
// permission wire token.
func ParseFinancialConnectionsPermission(raw string) (FinancialConnectionsPermission, error) {
	return parseToken("financial connections permission", financialConnectionsPermissions, raw)
}

// AccountHolderType classifies a bank account's owner.
type AccountHolderType string

const (
	AccountHolderTypeCompany    AccountHolderType = "company"
	AccountHolderTypeIndividual AccountHolderType = "individual"
)

var accountHolderTypes = []AccountHolderType{AccountHolderTypeCompany, AccountHolderTypeIndividual}

func (v AccountHolderType) String() string { return string(v) }

// ParseAccountHolderType resolves an account holder type wire token.
func ParseAccountHolderType(raw string) (AccountHolderType, error) {
	return parseToken("account holder type", accountHolderTypes, raw)
}

// AccountType classifies a US bank account.
type AccountType string

const (
	AccountTypeChecking AccountType = "checking"
	AccountTypeSavings  AccountType = "savings"
)

var accountTypes = []AccountType{AccountTypeChecking, AccountTypeSavings}

func (v AccountType) String() string { return string(v) }

// ParseAccountType resolves an account type wire token.
func ParseAccountType(raw string) (AccountType, error) {
	return parseToken("account type", accountTypes, raw)
}

// WeChatPayClient is the platform the WeChat Pay flow runs on.
type WeChatPayClient string

const (
	WeChatPayClientAndroid WeChatPayClient = "android"
	WeChatPayClientIOS     WeChatPayClient = "ios"
	WeChatPayClientWeb     WeChatPayClient = "web"
)

var weChatPayClients = []WeChatPayClient{
	WeChatPayClientAndroid, WeChatPayClientIOS, WeChatPayClientWeb,
}

func (v WeChatPayClient) String() string { return string(v) }

// ParseWeChatPayClient resolves a WeChat Pay client wire token.
func ParseWeChatPayClient(raw string) (WeChatPayClient, error) {
	return parseToken("wechat pay client", weChatPayClients, raw)
}

// CustomerAcceptanceType is how a mandate was accepted.
type CustomerAcceptanceType string

const (
	CustomerAcceptanceTypeOffline CustomerAcceptanceType = "offline"
	CustomerAcceptanceTypeOnline  CustomerAcceptanceType = "online"
)

var customerAcceptanceTypes = []CustomerAcceptanceType{
	CustomerAcceptanceTypeOffline, CustomerAcceptanceTypeOnline,
}

func (v CustomerAcceptanceType) String() string { return string(v) }

// ParseCustomerAcceptanceType resolves a customer acceptance type wire token.
func ParseCustomerAcceptanceType(raw string) (CustomerAcceptanceType, error) {
	return parseToken("customer acceptance type", customerAcceptanceTypes, raw)
}

// SearchResultObject is the object tag of the search response envelope.
type SearchResultObject string

const (
	SearchResultObjectSearchResult SearchResultObject = "search_result"
)

var searchResultObjects = []SearchResultObject{SearchResultObjectSearchResult}

func (v SearchResultObject) String() string { return string(v) }

// ParseSearchResultObject resolves a search result object tag.
func ParseSearchResultObject(raw string) (SearchResultObject, error) {
	return parseToken("search result object", searchResultObjects, raw)
}
