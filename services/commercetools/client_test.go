package commercetools

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shopfront/braintreebridge/lib/myerrors"
	"github.com/shopfront/braintreebridge/lib/myhttpclient"
)

func TestGetCustomer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/my-project/customers/cust-123", r.URL.Path)
		assert.Equal(t, "Bearer my-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "cust-123",
			"version": 7,
			"firstName": "Marc",
			"lastName": "Grol",
			"email": "marc@home.nl",
			"custom": {"fields": {"braintreeCustomerId": "bt-cust-1"}}
		}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	customer, err := client.GetCustomer(context.TODO(), "cust-123")
	assert.NoError(t, err)
	assert.Equal(t, "cust-123", customer.ID)
	assert.Equal(t, 7, customer.Version)

	btCustomerID, found := customer.Custom.Field("braintreeCustomerId")
	assert.True(t, found)
	assert.Equal(t, "bt-cust-1", btCustomerID)
}

func TestGetCustomerNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.GetCustomer(context.TODO(), "cust-unknown")
	assert.Error(t, err)
	assert.Equal(t, http.StatusNotFound, myerrors.GetHTTPStatus(err))
}

func TestUpdatePayment(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/my-project/payments/pay-123", r.URL.Path)

		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)

		update := UpdateRequest{}
		err = json.Unmarshal(body, &update)
		assert.NoError(t, err)
		assert.Equal(t, 3, update.Version)
		assert.Len(t, update.Actions, 1)
		assert.Equal(t, "setCustomField", update.Actions[0].Action)
		assert.Equal(t, "transactionSaleRequest", update.Actions[0].Name)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "pay-123",
			"version": 4,
			"custom": {"fields": {"transactionSaleResponse": "{\"success\": true}"}}
		}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	payment, err := client.UpdatePayment(context.TODO(), "pay-123", 3, []UpdateAction{
		SetCustomFieldAction("transactionSaleRequest", `{"amount": "12.34"}`),
	})
	assert.NoError(t, err)
	assert.Equal(t, 4, payment.Version)

	saleResponse, found := payment.Custom.Field("transactionSaleResponse")
	assert.True(t, found)
	assert.Contains(t, saleResponse, "success")
}

func TestUpdateCartErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.UpdateCart(context.TODO(), "cart-123", 1, []UpdateAction{
		SetCustomerEmailAction("marc@home.nl"),
	})
	assert.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, myerrors.GetHTTPStatus(err))
}

func newTestClient(baseURL string) *restClient {
	return NewClient(Config{
		APIURL:     baseURL,
		ProjectKey: "my-project",
		AuthToken:  "my-token",
	}, myhttpclient.New())
}
