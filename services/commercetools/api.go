package commercetools

import (
	"context"

	"github.com/shopfront/braintreebridge/services/paymentapi"
)

//go:generate mockgen -source=api.go -package commercetools -destination client_mock.go Client
type Client interface {
	GetCustomer(c context.Context, customerID string) (CustomerRecord, error)
	UpdateCustomer(c context.Context, customerID string, version int, actions []UpdateAction) (CustomerRecord, error)
	UpdatePayment(c context.Context, paymentID string, version int, actions []UpdateAction) (PaymentRecord, error)
	GetCart(c context.Context, cartID string) (paymentapi.Cart, error)
	UpdateCart(c context.Context, cartID string, version int, actions []UpdateAction) (paymentapi.Cart, error)
}
