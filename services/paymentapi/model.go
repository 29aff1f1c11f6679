package paymentapi

import (
	"encoding/json"
	"fmt"

	"github.com/shopfront/braintreebridge/lib/myerrors"
)

const (
	// ProviderBraintree is the paymentProvider value for all payments created by this component
	ProviderBraintree = "Braintree"
)

type PaymentStatus string

const (
	// PaymentStatusInit means "created, not yet settled"
	PaymentStatusInit PaymentStatus = "init"
)

// Money is an amount in minor units (cents)
type Money struct {
	CurrencyCode string `json:"currencyCode"`
	CentAmount   int64  `json:"centAmount"`
}

type Address struct {
	FirstName            string `json:"firstName,omitempty" form:"firstName"`
	LastName             string `json:"lastName,omitempty" form:"lastName"`
	StreetName           string `json:"streetName,omitempty" form:"streetName"`
	StreetNumber         string `json:"streetNumber,omitempty" form:"streetNumber"`
	AdditionalStreetInfo string `json:"additionalStreetInfo,omitempty" form:"additionalStreetInfo"`
	PostalCode           string `json:"postalCode,omitempty" form:"postalCode"`
	City                 string `json:"city,omitempty" form:"city"`
	Region               string `json:"region,omitempty" form:"region"`
	Country              string `json:"country,omitempty" form:"country"`
	Company              string `json:"company,omitempty" form:"company"`
	Phone                string `json:"phone,omitempty" form:"phone"`
}

// LineItem is the gateway-facing line-item shape, relayed for level-3 reporting
type LineItem struct {
	Name           string `json:"name,omitempty"`
	Kind           string `json:"kind"`
	Quantity       string `json:"quantity"`
	UnitAmount     string `json:"unitAmount"`
	UnitOfMeasure  string `json:"unitOfMeasure,omitempty"`
	TotalAmount    string `json:"totalAmount"`
	TaxAmount      string `json:"taxAmount,omitempty"`
	DiscountAmount string `json:"discountAmount,omitempty"`
	ProductCode    string `json:"productCode,omitempty"`
	CommodityCode  string `json:"commodityCode,omitempty"`
}

// Shipping is the gateway-facing shipping-address shape
type Shipping struct {
	Company            string `json:"company,omitempty"`
	CountryCodeAlpha2  string `json:"countryCodeAlpha2,omitempty"`
	CountryCodeAlpha3  string `json:"countryCodeAlpha3,omitempty"`
	CountryCodeNumeric string `json:"countryCodeNumeric,omitempty"`
	CountryName        string `json:"countryName,omitempty"`
	ExtendedAddress    string `json:"extendedAddress,omitempty"`
	FirstName          string `json:"firstName,omitempty"`
	LastName           string `json:"lastName,omitempty"`
	Locality           string `json:"locality,omitempty"`
	PostalCode         string `json:"postalCode,omitempty"`
	Region             string `json:"region,omitempty"`
	StreetAddress      string `json:"streetAddress,omitempty"`
}

type CartLineItem struct {
	ID         string `json:"lineItemId,omitempty"`
	Name       string `json:"name"`
	Quantity   int    `json:"count"`
	Price      Money  `json:"price"`
	TotalPrice Money  `json:"totalPrice"`
}

type ShippingRate struct {
	Price Money `json:"price"`
}

type ShippingMethod struct {
	ShippingMethodID string         `json:"shippingMethodId,omitempty"`
	Name             string         `json:"name,omitempty"`
	Rates            []ShippingRate `json:"rates,omitempty"`
}

// Payment is a payment record as embedded in the cart aggregate.
// Debug is an opaque backend-assigned blob carrying the gateway-facing
// payment id and version, independent of the cart-level version.
type Payment struct {
	ID              string        `json:"id"`
	PaymentProvider string        `json:"paymentProvider"`
	AmountPlanned   Money         `json:"amountPlanned"`
	PaymentStatus   PaymentStatus `json:"paymentStatus"`
	PaymentMethod   string        `json:"paymentMethod"`
	Debug           string        `json:"debug,omitempty"`
}

type PaymentDebug struct {
	ID      string `json:"id"`
	Version int    `json:"version"`
}

func (p Payment) DebugInfo() (PaymentDebug, error) {
	debug := PaymentDebug{}
	err := json.Unmarshal([]byte(p.Debug), &debug)
	if err != nil {
		return PaymentDebug{}, myerrors.NewInternalError(fmt.Errorf("error decoding debug blob of payment %s: %s", p.ID, err))
	}

	return debug, nil
}

// Cart is the mutable aggregate owned by the commerce backend.
// This component reads it and appends payments, never deletes.
type Cart struct {
	CartID                   string           `json:"cartId"`
	CartVersion              int              `json:"cartVersion"`
	Email                    string           `json:"email,omitempty"`
	Sum                      Money            `json:"sum"`
	LineItems                []CartLineItem   `json:"lineItems,omitempty"`
	ShippingAddress          *Address         `json:"shippingAddress,omitempty"`
	BillingAddress           *Address         `json:"billingAddress,omitempty"`
	AvailableShippingMethods []ShippingMethod `json:"availableShippingMethods,omitempty"`
	Payments                 []Payment        `json:"payments,omitempty"`
}

// Session is the pass-through session data handed over by the host action-routing layer
type Session struct {
	AccountID string `json:"accountId,omitempty" form:"accountId"`
	CartID    string `json:"cartId,omitempty" form:"cartId"`
}
