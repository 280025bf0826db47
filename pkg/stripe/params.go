package stripe

// Currency is a three-letter ISO 4217 code, lowercased, e.g. "usd".
type Currency string

// RangeQueryParams bounds a Unix-seconds timestamp field, encoded as
// field[gt]=..., field[gte]=..., and so on.
type RangeQueryParams struct {
	GreaterThan        *int64 `form:"gt"`
	GreaterThanOrEqual *int64 `form:"gte"`
	LessThan           *int64 `form:"lt"`
	LessThanOrEqual    *int64 `form:"lte"`
}

// ListParams carries the cursor fields shared by list endpoints. Limit is
// clamped server-side to 1-100 and defaults to 10.
type ListParams struct {
	EndingBefore  *string  `form:"ending_before"`
	Limit         *int64   `form:"limit"`
	StartingAfter *string  `form:"starting_after"`
	Expand        []string `form:"expand"`
}

// SearchParams carries the fields shared by search endpoints. Query uses
// Stripe's search query language.
type SearchParams struct {
	Query  string   `form:"query"`
	Limit  *int64   `form:"limit"`
	Page   *string  `form:"page"`
	Expand []string `form:"expand"`
}

// AddressParams is a postal address.
type AddressParams struct {
	City       *string `form:"city"`
	Country    *string `form:"country"`
	Line1      *string `form:"line1"`
	Line2      *string `form:"line2"`
	PostalCode *string `form:"postal_code"`
	State      *string `form:"state"`
}

// BillingDetailsParams describes the owner of a payment method.
type BillingDetailsParams struct {
	Address *AddressParams `form:"address"`
	Email   *string        `form:"email"`
	Name    *string        `form:"name"`
	Phone   *string        `form:"phone"`
}

// ShippingDetailsParams describes where and to whom a purchase ships.
type ShippingDetailsParams struct {
	Address        AddressParams `form:"address"`
	Name           string        `form:"name"`
	Carrier        *string       `form:"carrier"`
	Phone          *string       `form:"phone"`
	TrackingNumber *string       `form:"tracking_number"`
}

// NewShippingDetailsParams returns shipping details with the required fields
// populated.
func NewShippingDetailsParams(address AddressParams, name string) *ShippingDetailsParams {
	return &ShippingDetailsParams{
		Address: address,
		Name:    name,
	}
}

// Address is the decoded form of a postal address.
type Address struct {
	City       string `json:"city"`
	Country    string `json:"country"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2"`
	PostalCode string `json:"postal_code"`
	State      string `json:"state"`
}

// ShippingDetails is the decoded form of shipping information.
type ShippingDetails struct {
	Address        Address `json:"address"`
	Name           string  `json:"name"`
	Carrier        string  `json:"carrier"`
	Phone          string  `json:"phone"`
	TrackingNumber string  `json:"tracking_number"`
}
