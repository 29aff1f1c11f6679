package checkoutbraintree

import (
	"context"

	"github.com/shopfront/braintreebridge/services/braintree"
	"github.com/shopfront/braintreebridge/services/commercetools"
	"github.com/shopfront/braintreebridge/services/paymentapi"
)

//go:generate mockgen -source=api.go -package checkoutbraintree -destination api_mock.go Gateway,CartClient
type Gateway interface {
	GetCustomer(c context.Context, accountID string) (braintree.Customer, error)
	GetClientToken(c context.Context, paymentID string, paymentVersion int, accountID string, merchantID string) (braintree.ClientTokenResult, error)
	Purchase(c context.Context, req braintree.PurchaseRequest) (braintree.PurchaseResult, error)
	PureVault(c context.Context, customerID string, customerVersion int, nonce string) error
	CreateCustomer(c context.Context, accountID string, version int) error
	SetLocalPaymentID(c context.Context, paymentID string, version int, localPaymentID string) (int, error)
	CreateAchVaultToken(c context.Context, accountID string, version int, nonce string) (braintree.VaultTokenResponse, error)
}

type CartClient interface {
	GetCart(c context.Context, cartID string) (paymentapi.Cart, error)
	UpdateCart(c context.Context, cartID string, version int, actions []commercetools.UpdateAction) (paymentapi.Cart, error)
}
