package paymentintent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePaymentMethodType(t *testing.T) {
	for _, methodType := range paymentMethodTypes {
		parsed, err := ParsePaymentMethodType(methodType.String())
		require.NoError(t, err)
		assert.Equal(t, methodType, parsed)
	}

	_, err := ParsePaymentMethodType("credit_card")
	assert.Error(t, err)

	// Matching is exact, never case-folded.
	_, err = ParsePaymentMethodType("Card")
	assert.Error(t, err)
}

func TestEnumCatalogsAreWellFormed(t *testing.T) {
	for _, tc := range []struct {
		name   string
		tokens []string
		parse  func(string) (string, error)
	}{
		{"payment_method_type", tokenStrings(paymentMethodTypes), parseAsString(ParsePaymentMethodType)},
		{"capture_method", tokenStrings(captureMethods), parseAsString(ParseCaptureMethod)},
		{"confirmation_method", tokenStrings(confirmationMethods), parseAsString(ParseConfirmationMethod)},
		{"setup_future_usage", tokenStrings(setupFutureUsages), parseAsString(ParseSetupFutureUsage)},
		{"method_setup_future_usage", tokenStrings(methodSetupFutureUsages), parseAsString(ParseMethodSetupFutureUsage)},
		{"cancellation_reason", tokenStrings(cancellationReasons), parseAsString(ParseCancellationReason)},
		{"status", tokenStrings(statuses), parseAsString(ParseStatus)},
		{"mandate_payment_schedule", tokenStrings(mandatePaymentSchedules), parseAsString(ParseMandatePaymentSchedule)},
		{"mandate_transaction_type", tokenStrings(mandateTransactionTypes), parseAsString(ParseMandateTransactionType)},
		{"card_mandate_amount_type", tokenStrings(cardMandateAmountTypes), parseAsString(ParseCardMandateAmountType)},
		{"card_mandate_interval", tokenStrings(cardMandateIntervals), parseAsString(ParseCardMandateInterval)},
		{"card_mandate_supported_type", tokenStrings(cardMandateSupportedTypes), parseAsString(ParseCardMandateSupportedType)},
		{"verification_method", tokenStrings(verificationMethods), parseAsString(ParseVerificationMethod)},
		{"card_network", tokenStrings(cardNetworks), parseAsString(ParseCardNetwork)},
		{"request_three_d_secure", tokenStrings(requestThreeDSecures), parseAsString(ParseRequestThreeDSecure)},
		{"installment_plan_interval", tokenStrings(installmentPlanIntervals), parseAsString(ParseInstallmentPlanInterval)},
		{"installment_plan_type", tokenStrings(installmentPlanTypes), parseAsString(ParseInstallmentPlanType)},
		{"bank_transfer_type", tokenStrings(bankTransferTypes), parseAsString(ParseBankTransferType)},
		{"requested_address_type", tokenStrings(requestedAddressTypes), parseAsString(ParseRequestedAddressType)},
		{"funding_type", tokenStrings(fundingTypes), parseAsString(ParseFundingType)},
		{"us_bank_account_network", tokenStrings(usBankAccountNetworks), parseAsString(ParseUSBankAccountNetwork)},
		{"financial_connections_permission", tokenStrings(financialConnectionsPermissions), parseAsString(ParseFinancialConnectionsPermission)},
		{"account_holder_type", tokenStrings(accountHolderTypes), parseAsString(ParseAccountHolderType)},
		{"account_type", tokenStrings(accountTypes), parseAsString(ParseAccountType)},
		{"wechat_pay_client", tokenStrings(weChatPayClients), parseAsString(ParseWeChatPayClient)},
		{"customer_acceptance_type", tokenStrings(customerAcceptanceTypes), parseAsString(ParseCustomerAcceptanceType)},
		{"search_result_object", tokenStrings(searchResultObjects), parseAsString(ParseSearchResultObject)},
		{"eps_bank", tokenStrings(epsBanks), parseAsString(ParseEPSBank)},
		{"fpx_bank", tokenStrings(fpxBanks), parseAsString(ParseFPXBank)},
		{"ideal_bank", tokenStrings(idealBanks), parseAsString(ParseIdealBank)},
		{"p24_bank", tokenStrings(p24Banks), parseAsString(ParseP24Bank)},
		{"klarna_preferred_locale", tokenStrings(klarnaPreferredLocales), parseAsString(ParseKlarnaPreferredLocale)},
		{"bancontact_preferred_language", tokenStrings(bancontactPreferredLanguages), parseAsString(ParseBancontactPreferredLanguage)},
		{"sofort_preferred_language", tokenStrings(sofortPreferredLanguages), parseAsString(ParseSofortPreferredLanguage)},
		{"sofort_country", tokenStrings(sofortCountries), parseAsString(ParseSofortCountry)},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			seen := make(map[string]struct{})
			for _, token := range tc.tokens {
				require.NotEmpty(t, token)

				_, dup := seen[token]
				require.False(t, dup, "duplicate token %q", token)
				seen[token] = struct{}{}

				parsed, err := tc.parse(token)
				require.NoError(t, err)
				assert.Equal(t, token, parsed)
			}

			_, err := tc.parse("no_such_token")
			assert.Error(t, err)
		})
	}
}

func TestBankCatalogSizes(t *testing.T) {
	assert.Len(t, epsBanks, 28)
	assert.Len(t, fpxBanks, 22)
	assert.Len(t, idealBanks, 13)
	assert.Len(t, p24Banks, 25)
	assert.Len(t, klarnaPreferredLocales, 40)
	assert.Len(t, paymentMethodTypes, 27)
}

func TestParseStatus(t *testing.T) {
	parsed, err := ParseStatus("requires_payment_method")
	require.NoError(t, err)
	assert.Equal(t, StatusRequiresPaymentMethod, parsed)

	_, err = ParseStatus("pending")
	assert.Error(t, err)
}

func TestParseBankTokens(t *testing.T) {
	fpx, err := ParseFPXBank("hsbc")
	require.NoError(t, err)
	assert.Equal(t, FPXBankHsbc, fpx)

	ideal, err := ParseIdealBank("abn_amro")
	require.NoError(t, err)
	assert.Equal(t, IdealBankAbnAmro, ideal)

	// Tokens do not cross catalogs.
	_, err = ParseEPSBank("abn_amro")
	assert.Error(t, err)
}

func TestParseKlarnaPreferredLocale(t *testing.T) {
	// Locale tags keep their region casing on the wire.
	locale, err := ParseKlarnaPreferredLocale("da-DK")
	require.NoError(t, err)
	assert.Equal(t, KlarnaPreferredLocaleDaDK, locale)

	_, err = ParseKlarnaPreferredLocale("da-dk")
	assert.Error(t, err)
}

func tokenStrings[T ~string](catalog []T) []string {
	out := make([]string, len(catalog))
	for i, v := range catalog {
		out[i] = string(v)
	}
	return out
}

func parseAsString[T ~string](parse func(string) (T, error)) func(string) (string, error) {
	return func(raw string) (string, error) {
		v, err := parse(raw)
		return string(v), err
	}
}
