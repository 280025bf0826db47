package paymentintent

import (
	"strconv"

	"github.com/ledgerworks/stripe-client/pkg/stripe/form"
)

// OffSessionParams is the untagged off_session sum: the wire form is either
// a boolean or one of the tokens one_off / recurring, with no discriminator
// key. Exactly one variant is ever active.
type OffSessionParams struct {
	enabled *bool
	usage   string
}

// OffSession marks the payment as made with or without the customer present.
func OffSession(enabled bool) *OffSessionParams {
	return &OffSessionParams{enabled: &enabled}
}

// OffSessionOneOff marks a one-off off-session payment.
func OffSessionOneOff() *OffSessionParams {
	return &OffSessionParams{usage: "one_off"}
}

// OffSessionRecurring marks a recurring off-session payment.
func OffSessionRecurring() *OffSessionParams {
	return &OffSessionParams{usage: "recurring"}
}

// AppendTo implements form.Appender.
func (p *OffSessionParams) AppendTo(values *form.Values, keyParts []string) {
	if p.enabled != nil {
		values.Add(form.FormatKey(keyParts), strconv.FormatBool(*p.enabled))
		return
	}
	if p.usage != "" {
		values.Add(form.FormatKey(keyParts), p.usage)
	}
}

// MandateDataParams is the mandate_data shape accepted with a secret key:
// the acceptance type is caller-chosen and online acceptance requires the
// customer's IP and user agent.
type MandateDataParams struct {
	CustomerAcceptance CustomerAcceptanceParams `form:"customer_acceptance"`
}

// NewMandateDataParams returns mandate data with the required acceptance
// record.
func NewMandateDataParams(acceptance CustomerAcceptanceParams) *MandateDataParams {
	return &MandateDataParams{
		CustomerAcceptance: acceptance,
	}
}

// CustomerAcceptanceParams records how the customer granted the mandate.
type CustomerAcceptanceParams struct {
	Type       CustomerAcceptanceType   `form:"type"`
	AcceptedAt *int64                   `form:"accepted_at"`
	Offline    *OfflineAcceptanceParams `form:"offline"`
	Online     *OnlineAcceptanceParams  `form:"online"`
}

// OfflineAcceptanceParams has no fields; its presence records offline
// acceptance.
type OfflineAcceptanceParams struct{}

// OnlineAcceptanceParams captures the session in which the customer accepted
// the mandate.
type OnlineAcceptanceParams struct {
	IPAddress string `form:"ip_address"`
	UserAgent string `form:"user_agent"`
}

// ClientKeyMandateDataParams is the mandate_data shape accepted with a
// publishable key. The acceptance type is fixed to online; IP and user agent
// are inferred server-side when omitted.
type ClientKeyMandateDataParams struct {
	CustomerAcceptance ClientKeyCustomerAcceptanceParams `form:"customer_acceptance"`
}

// NewClientKeyMandateDataParams returns client-key mandate data with the
// acceptance type pinned to online.
func NewClientKeyMandateDataParams() *ClientKeyMandateDataParams {
	return &ClientKeyMandateDataParams{
		CustomerAcceptance: ClientKeyCustomerAcceptanceParams{
			Type:   CustomerAcceptanceTypeOnline,
			Online: &ClientKeyOnlineParams{},
		},
	}
}

// ClientKeyCustomerAcceptanceParams records online acceptance under a
// publishable key.
type ClientKeyCustomerAcceptanceParams struct {
	Type   CustomerAcceptanceType `form:"type"`
	Online *ClientKeyOnlineParams `form:"online"`
}

// ClientKeyOnlineParams optionally pins the acceptance session details.
type ClientKeyOnlineParams struct {
	IPAddress *string `form:"ip_address"`
	UserAgent *string `form:"user_agent"`
}

// ConfirmMandateDataParams is the untagged mandate_data sum on Confirm:
// either the secret-key or the client-key record, encoded without a
// discriminator.
type ConfirmMandateDataParams struct {
	secretKey *MandateDataParams
	clientKey *ClientKeyMandateDataParams
}

// MandateDataFromSecretKey wraps the secret-key mandate record.
func MandateDataFromSecretKey(params *MandateDataParams) *ConfirmMandateDataParams {
	return &ConfirmMandateDataParams{secretKey: params}
}

// MandateDataFromClientKey wraps the client-key mandate record.
func MandateDataFromClientKey(params *ClientKeyMandateDataParams) *ConfirmMandateDataParams {
	return &ConfirmMandateDataParams{clientKey: params}
}

// AppendTo implements form.Appender.
func (p *ConfirmMandateDataParams) AppendTo(values *form.Values, keyParts []string) {
	if p.secretKey != nil {
		form.AppendTo(values, p.secretKey, keyParts)
		return
	}
	if p.clientKey != nil {
		form.AppendTo(values, p.clientKey, keyParts)
	}
}
