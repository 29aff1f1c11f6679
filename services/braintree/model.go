package braintree

import (
	"github.com/shopfront/braintreebridge/services/paymentapi"
)

// Custom-type keys and field names of the gateway relay protocol.
// The backend forwards the *Request fields to Braintree and stores the reply
// on the matching *Response field of the same record.
const (
	PaymentTypeKey  = "braintree-payment-type"
	CustomerTypeKey = "braintree-customer-type"

	FieldBraintreeCustomerID          = "braintreeCustomerId"
	FieldBraintreeOrderID             = "BraintreeOrderId"
	FieldCreateRequest                = "createRequest"
	FieldGetClientTokenRequest        = "getClientTokenRequest"
	FieldGetClientTokenResponse       = "getClientTokenResponse"
	FieldTransactionSaleRequest       = "transactionSaleRequest"
	FieldTransactionSaleResponse      = "transactionSaleResponse"
	FieldFindTransactionRequest       = "findTransactionRequest"
	FieldFindTransactionResponse      = "findTransactionResponse"
	FieldVaultRequest                 = "vaultRequest"
	FieldVaultResponse                = "vaultResponse"
	FieldLocalPaymentMethodsPaymentID = "LocalPaymentMethodsPaymentId"
)

// Customer is the gateway-side view of a backend customer record
type Customer struct {
	BraintreeCustomerID string
	FirstName           string
	LastName            string
	Email               string
	Company             string
	CustomerVersion     int
}

type ClientTokenResult struct {
	ClientToken    string
	PaymentVersion int
}

type TransactionSaleResponse struct {
	Success               bool   `json:"success"`
	Message               string `json:"message,omitempty"`
	Amount                string `json:"amount,omitempty"`
	CurrencyISOCode       string `json:"currencyIsoCode,omitempty"`
	PaymentInstrumentType string `json:"paymentInstrumentType,omitempty"`
	NetworkTransactionID  string `json:"networkTransactionId,omitempty"`
	ProcessorResponseCode string `json:"processorResponseCode,omitempty"`
	ProcessorResponseText string `json:"processorResponseText,omitempty"`
}

type FindTransactionResponse struct {
	Status bool `json:"status"`
}

type VaultTokenResponse struct {
	Token    string `json:"token,omitempty"`
	Verified bool   `json:"verified,omitempty"`
	Message  string `json:"message,omitempty"`
}

// Outcome tells the caller how a sale concluded, including whether a
// resubmission was needed after an ambiguous first attempt.
type Outcome string

const (
	OutcomeConfirmed           Outcome = "confirmed"
	OutcomeRetriedAndConfirmed Outcome = "retriedAndConfirmed"
	OutcomeRetriedAndFailed    Outcome = "retriedAndFailed"
	OutcomeInconclusive        Outcome = "inconclusive"
)

type PurchaseRequest struct {
	PaymentID             string                `json:"paymentId"`
	PaymentVersion        int                   `json:"paymentVersion"`
	AccountID             string                `json:"accountId,omitempty"`
	Amount                string                `json:"amount,omitempty"`
	PaymentMethodNonce    string                `json:"paymentMethodNonce"`
	StoreInVaultOnSuccess bool                  `json:"storeInVaultOnSuccess,omitempty"`
	MerchantAccountID     string                `json:"merchantAccountId,omitempty"`
	DeviceData            string                `json:"deviceData,omitempty"`
	LineItems             []paymentapi.LineItem `json:"lineItems,omitempty"`
	Shipping              *paymentapi.Shipping  `json:"shipping,omitempty"`
	TaxAmount             string                `json:"taxAmount,omitempty"`
	ShippingAmount        string                `json:"shippingAmount,omitempty"`
	DiscountAmount        string                `json:"discountAmount,omitempty"`
}

type PurchaseResult struct {
	Outcome        Outcome                 `json:"outcome"`
	Sale           TransactionSaleResponse `json:"transactionSaleResponse"`
	SalePresent    bool                    `json:"salePresent"`
	PaymentVersion int                     `json:"paymentVersion"`
}

// saleRequest is the sparse gateway payload: a field is put on the wire only
// when the caller supplied it.
type saleRequest struct {
	Amount             string                `json:"amount,omitempty"`
	PaymentMethodNonce string                `json:"paymentMethodNonce"`
	CustomerID         string                `json:"customerId,omitempty"`
	Customer           *saleCustomer         `json:"customer,omitempty"`
	Options            *saleOptions          `json:"options,omitempty"`
	MerchantAccountID  string                `json:"merchantAccountId,omitempty"`
	DeviceData         string                `json:"deviceData,omitempty"`
	LineItems          []paymentapi.LineItem `json:"lineItems,omitempty"`
	Shipping           *paymentapi.Shipping  `json:"shipping,omitempty"`
	TaxAmount          string                `json:"taxAmount,omitempty"`
	ShippingAmount     string                `json:"shippingAmount,omitempty"`
	DiscountAmount     string                `json:"discountAmount,omitempty"`
}

type saleCustomer struct {
	ID        string `json:"id,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email,omitempty"`
	Company   string `json:"company,omitempty"`
}

type saleOptions struct {
	StoreInVaultOnSuccess bool `json:"store_in_vault_on_success,omitempty"`
}

type clientTokenRequest struct {
	MerchantID string `json:"merchantId,omitempty"`
	CustomerID string `json:"customerId,omitempty"`
}
