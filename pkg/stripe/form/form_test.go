package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerworks/stripe-client/pkg/pointer"
)

type childParams struct {
	Name  string  `form:"name"`
	Phone *string `form:"phone"`
}

type markerParams struct{}

type testParams struct {
	Amount   int64             `form:"amount"`
	Currency string            `form:"currency"`
	Fee      *int64            `form:"application_fee_amount"`
	Confirm  *bool             `form:"confirm"`
	Child    *childParams      `form:"shipping"`
	Expand   []string          `form:"expand"`
	Metadata map[string]string `form:"metadata"`
	Marker   *markerParams     `form:"alipay"`
	Skipped  string            `form:"-"`
	hidden   string
}

func TestEncode_RequiredAndOptional(t *testing.T) {
	values, err := Encode(&testParams{Amount: 2000, Currency: "usd", Skipped: "x", hidden: "y"})
	require.NoError(t, err)
	assert.Equal(t, "amount=2000&currency=usd", values.Encode())
}

func TestEncode_NestedAndScalars(t *testing.T) {
	values, err := Encode(&testParams{
		Amount:   1500,
		Currency: "eur",
		Fee:      pointer.Int64(123),
		Confirm:  pointer.Bool(true),
		Child: &childParams{
			Name:  "Jenny Rosen",
			Phone: pointer.String("555-1234"),
		},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"123"}, values.Get("application_fee_amount"))
	assert.Equal(t, []string{"true"}, values.Get("confirm"))
	assert.Equal(t, []string{"Jenny Rosen"}, values.Get("shipping[name]"))
	assert.Equal(t, []string{"555-1234"}, values.Get("shipping[phone]"))
}

func TestEncode_SliceIndexing(t *testing.T) {
	values, err := Encode(&testParams{Expand: []string{"latest_charge", "customer"}})
	require.NoError(t, err)

	assert.Equal(t, []string{"latest_charge"}, values.Get("expand[0]"))
	assert.Equal(t, []string{"customer"}, values.Get("expand[1]"))
}

func TestEncode_MapSortedDeterministic(t *testing.T) {
	params := &testParams{Metadata: map[string]string{"zebra": "1", "alpha": "2"}}

	first, err := Encode(params)
	require.NoError(t, err)
	second, err := Encode(params)
	require.NoError(t, err)

	assert.Equal(t, first.Encode(), second.Encode())
	assert.Contains(t, first.Encode(), "metadata%5Balpha%5D=2&metadata%5Bzebra%5D=1")
}

func TestEncode_EmptyMarkerEmitsParentKey(t *testing.T) {
	values, err := Encode(&testParams{Marker: &markerParams{}})
	require.NoError(t, err)

	assert.Equal(t, []string{""}, values.Get("alipay"))
}

func TestEncode_UntypedNil(t *testing.T) {
	values, err := Encode(nil)
	require.NoError(t, err)
	assert.Zero(t, values.Len())
	assert.Equal(t, "", values.Encode())
}

func TestEncode_TypedNilPointer(t *testing.T) {
	var params *testParams
	values, err := Encode(params)
	require.NoError(t, err)
	assert.Zero(t, values.Len())
}

func TestAppendTo_UntypedNil(t *testing.T) {
	values := &Values{}
	AppendTo(values, nil, []string{"mandate_data"})
	assert.Zero(t, values.Len())
}

func TestEncode_NilOptionalOmitsKey(t *testing.T) {
	values, err := Encode(&testParams{})
	require.NoError(t, err)

	for _, key := range []string{"application_fee_amount", "confirm", "shipping[name]", "alipay"} {
		assert.Empty(t, values.Get(key))
	}
}

type sumParam struct {
	token string
}

func (s sumParam) AppendTo(values *Values, keyParts []string) {
	values.Add(FormatKey(keyParts), s.token)
}

type sumHolder struct {
	Sum *sumParam `form:"off_session"`
}

func TestEncode_AppenderControlsWireForm(t *testing.T) {
	values, err := Encode(&sumHolder{Sum: &sumParam{token: "one_off"}})
	require.NoError(t, err)
	assert.Equal(t, "off_session=one_off", values.Encode())
}

func TestFormatKey(t *testing.T) {
	assert.Equal(t, "", FormatKey(nil))
	assert.Equal(t, "amount", FormatKey([]string{"amount"}))
	assert.Equal(t,
		"payment_method_options[card][request_three_d_secure]",
		FormatKey([]string{"payment_method_options", "card", "request_three_d_secure"}))
}
