package checkoutbraintree

import (
	"time"

	"github.com/shopfront/braintreebridge/services/braintree"
	"github.com/shopfront/braintreebridge/services/paymentapi"
)

type Config struct {
	MerchantID string
}

// PurchaseContext is the audit record kept per payment. It is maintained by
// the event handlers, not by the command path, so a replayed event converges
// on the same state.
type PurchaseContext struct {
	PaymentUID    string
	CreatedAt     time.Time
	LastModified  *time.Time
	AccountUID    string
	CartUID       string
	AmountInCents int64
	Currency      string
	ForVault      bool
	Outcome       string
	Retried       bool
	Success       bool
}

type createPaymentResponse struct {
	Success              bool                       `json:"success"`
	PaymentID            string                     `json:"paymentId"`
	PaymentVersion       int                        `json:"paymentVersion"`
	AmountPlanned        paymentapi.Money           `json:"amountPlanned"`
	RequestAmountPlanned *paymentapi.Money          `json:"requestAmountPlanned,omitempty"`
	LineItems            []paymentapi.CartLineItem  `json:"lineItems"`
	ShippingMethod       *paymentapi.ShippingMethod `json:"shippingMethod,omitempty"`
	BraintreeCustomerID  string                     `json:"braintreeCustomerId,omitempty"`
	CustomerVersion      int                        `json:"customerVersion,omitempty"`
	SessionData          *paymentapi.Session        `json:"sessionData,omitempty"`
}

type clientTokenRequest struct {
	PaymentID      string             `json:"paymentId"`
	PaymentVersion int                `json:"paymentVersion"`
	Session        paymentapi.Session `json:"session,omitempty"`
}

type clientTokenResponse struct {
	ClientToken    string              `json:"clientToken"`
	PaymentVersion int                 `json:"paymentVersion"`
	SessionData    *paymentapi.Session `json:"sessionData,omitempty"`
}

type vaultPaymentMethodRequest struct {
	CustomerID         string `json:"customerId"`
	CustomerVersion    int    `json:"customerVersion"`
	PaymentMethodNonce string `json:"paymentMethodNonce"`
}

type localPaymentIDRequest struct {
	PaymentID      string             `json:"paymentId"`
	PaymentVersion int                `json:"paymentVersion"`
	LocalPaymentID string             `json:"localPaymentId"`
	Session        paymentapi.Session `json:"session,omitempty"`
}

type localPaymentIDResponse struct {
	PaymentVersion int                 `json:"paymentVersion"`
	SessionData    *paymentapi.Session `json:"sessionData,omitempty"`
}

type achVaultTokenRequest struct {
	PaymentMethodNonce string             `json:"paymentMethodNonce"`
	Session            paymentapi.Session `json:"session,omitempty"`
}

type achVaultTokenResponse struct {
	Status      bool                `json:"status"`
	Token       string              `json:"token,omitempty"`
	Verified    bool                `json:"verified,omitempty"`
	Message     string              `json:"message,omitempty"`
	SessionData *paymentapi.Session `json:"sessionData,omitempty"`
}

type purchaseRequest struct {
	braintree.PurchaseRequest
	Session paymentapi.Session `json:"session,omitempty"`
}

type purchaseResponse struct {
	Result      braintree.PurchaseResult `json:"result"`
	SessionData *paymentapi.Session      `json:"sessionData,omitempty"`
}
