package paymentapi

import (
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreatePaymentRequestFromJSON(t *testing.T) {
	body := `{
		"session": {"accountId": "acc-123", "cartId": "cart-456"},
		"account": {"email": "marc@home.nl"},
		"billing": {"firstName": "Marc", "lastName": "Grol", "city": "Utrecht", "country": "NL"}
	}`
	httpReq := httptest.NewRequest("POST", "/braintree/payment", strings.NewReader(body))
	httpReq.Header.Set("Content-Type", "application/json")

	req, err := NewFromRequest(httpReq)
	assert.NoError(t, err)
	assert.Equal(t, "acc-123", req.Session.AccountID)
	assert.Equal(t, "cart-456", req.Session.CartID)
	assert.Equal(t, "marc@home.nl", req.Account.Email)
	assert.Nil(t, req.Shipping)
	assert.Equal(t, "Utrecht", req.Billing.City)
}

func TestCreatePaymentRequestFromForm(t *testing.T) {
	values := url.Values{}
	values.Set("session.accountId", "acc-123")
	values.Set("session.cartId", "cart-456")
	values.Set("account.email", "marc@home.nl")

	httpReq := httptest.NewRequest("POST", "/braintree/payment", strings.NewReader(values.Encode()))
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	req, err := NewFromRequest(httpReq)
	assert.NoError(t, err)
	assert.Equal(t, "acc-123", req.Session.AccountID)
	assert.Equal(t, "cart-456", req.Session.CartID)
	assert.Equal(t, "marc@home.nl", req.Account.Email)
}

func TestCreatePaymentRequestInvalidJSON(t *testing.T) {
	httpReq := httptest.NewRequest("POST", "/braintree/payment", strings.NewReader(`{"session":`))
	httpReq.Header.Set("Content-Type", "application/json")

	_, err := NewFromRequest(httpReq)
	assert.Error(t, err)
}

func TestPaymentDebugInfo(t *testing.T) {
	payment := Payment{
		ID:    "pay-1",
		Debug: `{"id": "bt-pay-1", "version": 3}`,
	}

	debug, err := payment.DebugInfo()
	assert.NoError(t, err)
	assert.Equal(t, "bt-pay-1", debug.ID)
	assert.Equal(t, 3, debug.Version)
}

func TestPaymentDebugInfoMalformed(t *testing.T) {
	payment := Payment{
		ID:    "pay-1",
		Debug: `not-json`,
	}

	_, err := payment.DebugInfo()
	assert.Error(t, err)
}
