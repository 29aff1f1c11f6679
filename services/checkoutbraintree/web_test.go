package checkoutbraintree

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/shopfront/braintreebridge/lib/myevents"
	"github.com/shopfront/braintreebridge/lib/mypublisher"
	"github.com/shopfront/braintreebridge/lib/mypubsub"
	"github.com/shopfront/braintreebridge/lib/mystore"
	"github.com/shopfront/braintreebridge/lib/mytime"
	"github.com/shopfront/braintreebridge/lib/myuuid"
	"github.com/shopfront/braintreebridge/services/braintree"
	"github.com/shopfront/braintreebridge/services/commercetools"
	"github.com/shopfront/braintreebridge/services/paymentapi"
	"github.com/shopfront/braintreebridge/services/paymentevents"
)

func TestCheckoutBraintreeService(t *testing.T) {

	t.Run("Create payment appends fresh payment with shipping in amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _, gateway, cartClient, uuider, _, _, publisher := setup(t, ctrl)

		// given: three shipping methods, the last one counts
		cart := cartFixture(10, 10000, 3)
		cartClient.EXPECT().GetCart(gomock.Any(), "cart-1").Return(cart, nil)
		gateway.EXPECT().GetCustomer(gomock.Any(), "acc-1").Return(braintree.Customer{
			BraintreeCustomerID: "bt-cust-1",
			CustomerVersion:     7,
		}, nil)
		uuider.EXPECT().Create().Return("uuid-1")

		cartAfter := cartFixture(11, 10000, 3)
		cartAfter.Payments = []paymentapi.Payment{paymentFixture(10500)}
		cartClient.EXPECT().UpdateCart(gomock.Any(), "cart-1", 10, []commercetools.UpdateAction{
			commercetools.AddPaymentAction(paymentapi.Payment{
				ID:              "uuid-1",
				PaymentProvider: "Braintree",
				AmountPlanned:   paymentapi.Money{CurrencyCode: "EUR", CentAmount: 10500},
				PaymentStatus:   paymentapi.PaymentStatusInit,
			}),
		}).Return(cartAfter, nil)

		publisher.EXPECT().Publish(gomock.Any(), paymentevents.TopicName, paymentevents.PaymentCreated{
			PaymentUID:    "bt-pay-1",
			CartUID:       "cart-1",
			AccountUID:    "acc-1",
			AmountInCents: 10500,
			Currency:      "EUR",
		}).Return(nil)

		// when
		request, err := http.NewRequest(http.MethodPost, "/braintree/payment", strings.NewReader(`{
			"session": {"accountId": "acc-1", "cartId": "cart-1"}
		}`))
		assert.NoError(t, err)
		request.Header.Set("Content-Type", "application/json")
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		got := response.Body.String()
		assert.Contains(t, got, `"paymentId": "bt-pay-1"`)
		assert.Contains(t, got, `"paymentVersion": 5`)
		assert.Contains(t, got, `"centAmount": 10500`)
		assert.Contains(t, got, `"braintreeCustomerId": "bt-cust-1"`)
		assert.Contains(t, got, `"cartId": "cart-1"`)
	})

	t.Run("Create payment without shipping methods uses bare cart total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _, _, cartClient, uuider, _, _, publisher := setup(t, ctrl)

		// given
		cart := cartFixture(10, 10000, 0)
		cartClient.EXPECT().GetCart(gomock.Any(), "cart-1").Return(cart, nil)
		uuider.EXPECT().Create().Return("uuid-1")

		cartAfter := cartFixture(11, 10000, 0)
		cartAfter.Payments = []paymentapi.Payment{paymentFixture(10000)}
		cartClient.EXPECT().UpdateCart(gomock.Any(), "cart-1", 10, gomock.Any()).Return(cartAfter, nil)
		publisher.EXPECT().Publish(gomock.Any(), paymentevents.TopicName, gomock.Any()).Return(nil)

		// when
		request, err := http.NewRequest(http.MethodPost, "/braintree/payment", strings.NewReader(`{
			"session": {"cartId": "cart-1"}
		}`))
		assert.NoError(t, err)
		request.Header.Set("Content-Type", "application/json")
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		assert.Contains(t, response.Body.String(), `"centAmount": 10000`)
	})

	t.Run("Create payment skips creation when equivalent payment pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _, _, cartClient, _, _, _, publisher := setup(t, ctrl)

		// given: pending Braintree payment with the same amount, no UpdateCart may follow
		cart := cartFixture(10, 10000, 1)
		cart.Payments = []paymentapi.Payment{paymentFixture(10300)}
		cartClient.EXPECT().GetCart(gomock.Any(), "cart-1").Return(cart, nil)
		publisher.EXPECT().Publish(gomock.Any(), paymentevents.TopicName, gomock.Any()).Return(nil)

		// when
		request, err := http.NewRequest(http.MethodPost, "/braintree/payment", strings.NewReader(`{
			"session": {"cartId": "cart-1"}
		}`))
		assert.NoError(t, err)
		request.Header.Set("Content-Type", "application/json")
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		assert.Contains(t, response.Body.String(), `"paymentId": "bt-pay-1"`)
	})

	t.Run("Create payment falls back billing address to shipping", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _, _, cartClient, uuider, _, _, publisher := setup(t, ctrl)

		// given
		address := paymentapi.Address{City: "Utrecht", Country: "NL"}
		cart := cartFixture(10, 10000, 0)
		cartClient.EXPECT().GetCart(gomock.Any(), "cart-1").Return(cart, nil)
		cartPatched := cartFixture(11, 10000, 0)
		cartClient.EXPECT().UpdateCart(gomock.Any(), "cart-1", 10, []commercetools.UpdateAction{
			commercetools.SetCustomerEmailAction("marc@home.nl"),
			commercetools.SetShippingAddressAction(address),
			commercetools.SetBillingAddressAction(address),
		}).Return(cartPatched, nil)

		uuider.EXPECT().Create().Return("uuid-1")
		cartAfter := cartFixture(12, 10000, 0)
		cartAfter.Payments = []paymentapi.Payment{paymentFixture(10000)}
		cartClient.EXPECT().UpdateCart(gomock.Any(), "cart-1", 11, gomock.Any()).Return(cartAfter, nil)
		publisher.EXPECT().Publish(gomock.Any(), paymentevents.TopicName, gomock.Any()).Return(nil)

		// when: only a shipping address is supplied
		request, err := http.NewRequest(http.MethodPost, "/braintree/payment", strings.NewReader(`{
			"session": {"cartId": "cart-1"},
			"account": {"email": "marc@home.nl"},
			"shipping": {"city": "Utrecht", "country": "NL"}
		}`))
		assert.NoError(t, err)
		request.Header.Set("Content-Type", "application/json")
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
	})

	t.Run("Create payment falls back shipping address to billing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _, _, cartClient, uuider, _, _, publisher := setup(t, ctrl)

		// given
		address := paymentapi.Address{City: "Den Haag", Country: "NL"}
		cart := cartFixture(10, 10000, 0)
		cartClient.EXPECT().GetCart(gomock.Any(), "cart-1").Return(cart, nil)
		cartPatched := cartFixture(11, 10000, 0)
		cartClient.EXPECT().UpdateCart(gomock.Any(), "cart-1", 10, []commercetools.UpdateAction{
			commercetools.SetShippingAddressAction(address),
			commercetools.SetBillingAddressAction(address),
		}).Return(cartPatched, nil)

		uuider.EXPECT().Create().Return("uuid-1")
		cartAfter := cartFixture(12, 10000, 0)
		cartAfter.Payments = []paymentapi.Payment{paymentFixture(10000)}
		cartClient.EXPECT().UpdateCart(gomock.Any(), "cart-1", 11, gomock.Any()).Return(cartAfter, nil)
		publisher.EXPECT().Publish(gomock.Any(), paymentevents.TopicName, gomock.Any()).Return(nil)

		// when: only a billing address is supplied
		request, err := http.NewRequest(http.MethodPost, "/braintree/payment", strings.NewReader(`{
			"session": {"cartId": "cart-1"},
			"billing": {"city": "Den Haag", "country": "NL"}
		}`))
		assert.NoError(t, err)
		request.Header.Set("Content-Type", "application/json")
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
	})

	t.Run("Create payment with empty email leaves cart unpatched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _, _, cartClient, uuider, _, _, publisher := setup(t, ctrl)

		// given: the supplied address may not reach the cart either
		cart := cartFixture(10, 10000, 0)
		cartClient.EXPECT().GetCart(gomock.Any(), "cart-1").Return(cart, nil)
		uuider.EXPECT().Create().Return("uuid-1")

		cartAfter := cartFixture(11, 10000, 0)
		cartAfter.Payments = []paymentapi.Payment{paymentFixture(10000)}
		cartClient.EXPECT().UpdateCart(gomock.Any(), "cart-1", 10, []commercetools.UpdateAction{
			commercetools.AddPaymentAction(paymentapi.Payment{
				ID:              "uuid-1",
				PaymentProvider: "Braintree",
				AmountPlanned:   paymentapi.Money{CurrencyCode: "EUR", CentAmount: 10000},
				PaymentStatus:   paymentapi.PaymentStatusInit,
			}),
		}).Return(cartAfter, nil)
		publisher.EXPECT().Publish(gomock.Any(), paymentevents.TopicName, gomock.Any()).Return(nil)

		// when
		request, err := http.NewRequest(http.MethodPost, "/braintree/payment", strings.NewReader(`{
			"session": {"cartId": "cart-1"},
			"account": {"email": ""},
			"shipping": {"city": "Utrecht", "country": "NL"}
		}`))
		assert.NoError(t, err)
		request.Header.Set("Content-Type", "application/json")
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
	})

	t.Run("Create payment for vault is zero-amount and always appended", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _, gateway, cartClient, uuider, _, _, publisher := setup(t, ctrl)

		// given: a pending payment may not suppress the vault payment
		cart := cartFixture(10, 10000, 1)
		cart.Payments = []paymentapi.Payment{paymentFixture(10500)}
		cartClient.EXPECT().GetCart(gomock.Any(), "cart-1").Return(cart, nil)
		gateway.EXPECT().GetCustomer(gomock.Any(), "acc-1").Return(braintree.Customer{
			BraintreeCustomerID: "bt-cust-1",
			CustomerVersion:     7,
		}, nil)
		uuider.EXPECT().Create().Return("uuid-1")

		cartAfter := cartFixture(11, 10000, 1)
		cartAfter.Payments = []paymentapi.Payment{paymentFixture(10500), paymentFixture(0)}
		cartClient.EXPECT().UpdateCart(gomock.Any(), "cart-1", 10, []commercetools.UpdateAction{
			commercetools.AddPaymentAction(paymentapi.Payment{
				ID:              "uuid-1",
				PaymentProvider: "Braintree",
				AmountPlanned:   paymentapi.Money{CurrencyCode: "EUR", CentAmount: 0},
				PaymentStatus:   paymentapi.PaymentStatusInit,
			}),
		}).Return(cartAfter, nil)
		publisher.EXPECT().Publish(gomock.Any(), paymentevents.TopicName, paymentevents.PaymentCreated{
			PaymentUID: "bt-pay-1",
			CartUID:    "cart-1",
			AccountUID: "acc-1",
			Currency:   "EUR",
			ForVault:   true,
		}).Return(nil)

		// when
		request, err := http.NewRequest(http.MethodPost, "/braintree/payment/vault", strings.NewReader(`{
			"session": {"accountId": "acc-1", "cartId": "cart-1"}
		}`))
		assert.NoError(t, err)
		request.Header.Set("Content-Type", "application/json")
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		got := response.Body.String()
		assert.Contains(t, got, `"centAmount": 0`)
		assert.Contains(t, got, `"requestAmountPlanned"`)
		assert.Contains(t, got, `"customerVersion": 7`)
		assert.Contains(t, got, `"lineItems": []`)
	})

	t.Run("Get client token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _, gateway, _, _, _, _, _ := setup(t, ctrl)

		// given
		gateway.EXPECT().GetClientToken(gomock.Any(), "bt-pay-1", 5, "acc-1", "MyMerchant").
			Return(braintree.ClientTokenResult{ClientToken: "token-abc", PaymentVersion: 6}, nil)

		// when
		request, err := http.NewRequest(http.MethodPost, "/braintree/clienttoken", strings.NewReader(`{
			"paymentId": "bt-pay-1",
			"paymentVersion": 5,
			"session": {"accountId": "acc-1"}
		}`))
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		got := response.Body.String()
		assert.Contains(t, got, `"clientToken": "token-abc"`)
		assert.Contains(t, got, `"paymentVersion": 6`)
	})

	t.Run("Vault payment method replies bare status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _, gateway, _, _, _, _, publisher := setup(t, ctrl)

		// given
		gateway.EXPECT().PureVault(gomock.Any(), "bt-cust-1", 7, "nonce-1").Return(nil)
		publisher.EXPECT().Publish(gomock.Any(), paymentevents.TopicName, paymentevents.PaymentMethodVaulted{
			CustomerUID: "bt-cust-1",
		}).Return(nil)

		// when
		request, err := http.NewRequest(http.MethodPost, "/braintree/paymentmethod/vault", strings.NewReader(`{
			"customerId": "bt-cust-1",
			"customerVersion": 7,
			"paymentMethodNonce": "nonce-1"
		}`))
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		assert.Empty(t, response.Body.String())
	})

	t.Run("Set local-payment id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _, gateway, _, _, _, _, _ := setup(t, ctrl)

		// given
		gateway.EXPECT().SetLocalPaymentID(gomock.Any(), "bt-pay-1", 5, "local-1").Return(6, nil)

		// when
		request, err := http.NewRequest(http.MethodPost, "/braintree/payment/localpayment", strings.NewReader(`{
			"paymentId": "bt-pay-1",
			"paymentVersion": 5,
			"localPaymentId": "local-1"
		}`))
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		assert.Contains(t, response.Body.String(), `"paymentVersion": 6`)
	})

	t.Run("ACH vault token requires registration", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _, _, _, _, _, _, _ := setup(t, ctrl)

		// when: no account in the session
		request, err := http.NewRequest(http.MethodPost, "/braintree/ach/vaulttoken", strings.NewReader(`{
			"paymentMethodNonce": "nonce-1"
		}`))
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then: soft failure, still a 200
		assert.Equal(t, 200, response.Code)
		got := response.Body.String()
		assert.Contains(t, got, `"status": false`)
		assert.Contains(t, got, "In order to use ACH you need to register")
	})

	t.Run("ACH vault token creates gateway customer lazily", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _, gateway, _, _, _, _, publisher := setup(t, ctrl)

		// given: first fetch has no gateway customer, the re-fetch after creation does
		gomock.InOrder(
			gateway.EXPECT().GetCustomer(gomock.Any(), "acc-1").Return(braintree.Customer{CustomerVersion: 7}, nil),
			gateway.EXPECT().CreateCustomer(gomock.Any(), "acc-1", 7).Return(nil),
			gateway.EXPECT().GetCustomer(gomock.Any(), "acc-1").Return(braintree.Customer{
				BraintreeCustomerID: "bt-cust-1",
				CustomerVersion:     8,
			}, nil),
			gateway.EXPECT().CreateAchVaultToken(gomock.Any(), "acc-1", 8, "nonce-1").Return(braintree.VaultTokenResponse{
				Token:    "vault-token-1",
				Verified: true,
			}, nil),
		)
		publisher.EXPECT().Publish(gomock.Any(), paymentevents.TopicName, paymentevents.AchVaultTokenCreated{
			AccountUID: "acc-1",
			Verified:   true,
		}).Return(nil)

		// when
		request, err := http.NewRequest(http.MethodPost, "/braintree/ach/vaulttoken", strings.NewReader(`{
			"paymentMethodNonce": "nonce-1",
			"session": {"accountId": "acc-1"}
		}`))
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		got := response.Body.String()
		assert.Contains(t, got, `"status": true`)
		assert.Contains(t, got, `"token": "vault-token-1"`)
		assert.Contains(t, got, `"verified": true`)
	})

	t.Run("Purchase relays reconciliation result", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _, gateway, _, _, _, _, publisher := setup(t, ctrl)

		// given
		gateway.EXPECT().Purchase(gomock.Any(), braintree.PurchaseRequest{
			PaymentID:          "bt-pay-1",
			PaymentVersion:     5,
			Amount:             "105.00",
			PaymentMethodNonce: "nonce-1",
		}).Return(braintree.PurchaseResult{
			Outcome:        braintree.OutcomeRetriedAndConfirmed,
			Sale:           braintree.TransactionSaleResponse{Success: true, PaymentInstrumentType: "us_bank_account"},
			SalePresent:    true,
			PaymentVersion: 8,
		}, nil)
		publisher.EXPECT().Publish(gomock.Any(), paymentevents.TopicName, paymentevents.PurchaseCompleted{
			PaymentUID:    "bt-pay-1",
			Outcome:       "retriedAndConfirmed",
			Retried:       true,
			Success:       true,
			PaymentMethod: "us_bank_account",
		}).Return(nil)

		// when
		request, err := http.NewRequest(http.MethodPost, "/braintree/purchase", strings.NewReader(`{
			"paymentId": "bt-pay-1",
			"paymentVersion": 5,
			"amount": "105.00",
			"paymentMethodNonce": "nonce-1"
		}`))
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		got := response.Body.String()
		assert.Contains(t, got, `"outcome": "retriedAndConfirmed"`)
		assert.Contains(t, got, `"paymentVersion": 8`)
	})

	t.Run("Purchase resolves account from session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _, gateway, _, _, _, _, publisher := setup(t, ctrl)

		// given: the body carries no accountId, the session does
		gateway.EXPECT().Purchase(gomock.Any(), braintree.PurchaseRequest{
			PaymentID:          "bt-pay-1",
			PaymentVersion:     5,
			AccountID:          "acc-1",
			PaymentMethodNonce: "nonce-1",
		}).Return(braintree.PurchaseResult{
			Outcome:        braintree.OutcomeConfirmed,
			Sale:           braintree.TransactionSaleResponse{Success: true},
			SalePresent:    true,
			PaymentVersion: 6,
		}, nil)
		publisher.EXPECT().Publish(gomock.Any(), paymentevents.TopicName, paymentevents.PurchaseCompleted{
			PaymentUID: "bt-pay-1",
			Outcome:    "confirmed",
			Success:    true,
		}).Return(nil)

		// when
		request, err := http.NewRequest(http.MethodPost, "/braintree/purchase", strings.NewReader(`{
			"paymentId": "bt-pay-1",
			"paymentVersion": 5,
			"paymentMethodNonce": "nonce-1",
			"session": {"accountId": "acc-1"}
		}`))
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		assert.Contains(t, response.Body.String(), `"outcome": "confirmed"`)
	})

	t.Run("Purchase with declined sale is published as failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _, gateway, _, _, _, _, publisher := setup(t, ctrl)

		// given: the reply decoded fine but the gateway declined the charge
		gateway.EXPECT().Purchase(gomock.Any(), gomock.Any()).Return(braintree.PurchaseResult{
			Outcome: braintree.OutcomeConfirmed,
			Sale: braintree.TransactionSaleResponse{
				Success:               false,
				ProcessorResponseCode: "2000",
				ProcessorResponseText: "Do Not Honor",
			},
			SalePresent:    true,
			PaymentVersion: 6,
		}, nil)
		publisher.EXPECT().Publish(gomock.Any(), paymentevents.TopicName, paymentevents.PurchaseCompleted{
			PaymentUID:     "bt-pay-1",
			Outcome:        "confirmed",
			Retried:        false,
			Success:        false,
			ProcessorReply: "Do Not Honor",
		}).Return(nil)

		// when
		request, err := http.NewRequest(http.MethodPost, "/braintree/purchase", strings.NewReader(`{
			"paymentId": "bt-pay-1",
			"paymentVersion": 5,
			"paymentMethodNonce": "nonce-1"
		}`))
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		assert.Contains(t, response.Body.String(), `"success": false`)
	})

	t.Run("Purchase-completed event updates audit store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ctx, router, storer, _, _, _, nower, _, _ := setup(t, ctrl)

		// given
		nower.EXPECT().Now().Return(mytime.ExampleTime)
		_ = storer.Put(ctx, "bt-pay-1", PurchaseContext{
			PaymentUID:    "bt-pay-1",
			CreatedAt:     mytime.ExampleTime,
			CartUID:       "cart-1",
			AmountInCents: 10500,
			Currency:      "EUR",
		})

		// when
		request, err := http.NewRequest(http.MethodPost, "/api/braintree/event",
			strings.NewReader(pushRequestFor(t, paymentevents.PurchaseCompleted{
				PaymentUID: "bt-pay-1",
				Outcome:    "retriedAndConfirmed",
				Retried:    true,
				Success:    true,
			})))
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)

		purchaseContext, exists, _ := storer.Get(ctx, "bt-pay-1")
		assert.True(t, exists)
		assert.Equal(t, "retriedAndConfirmed", purchaseContext.Outcome)
		assert.True(t, purchaseContext.Retried)
		assert.True(t, purchaseContext.Success)
		assert.Equal(t, "cart-1", purchaseContext.CartUID)
	})

	t.Run("Fetch purchase audit record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ctx, router, storer, _, _, _, _, _, _ := setup(t, ctrl)

		// given
		_ = storer.Put(ctx, "bt-pay-1", PurchaseContext{
			PaymentUID: "bt-pay-1",
			CreatedAt:  mytime.ExampleTime,
			Outcome:    "confirmed",
			Success:    true,
		})

		// when
		request, err := http.NewRequest(http.MethodGet, "/braintree/purchase/bt-pay-1", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		assert.Contains(t, response.Body.String(), `"Outcome": "confirmed"`)
	})
}

func setup(t *testing.T, ctrl *gomock.Controller) (context.Context, *mux.Router, mystore.Store[PurchaseContext], *MockGateway, *MockCartClient, *myuuid.MockUUIDer, *mytime.MockNower, *mypubsub.MockPubSub, *mypublisher.MockPublisher) {
	c := context.TODO()
	storer, _, _ := mystore.NewInMemoryStore[PurchaseContext](c)
	gateway := NewMockGateway(ctrl)
	cartClient := NewMockCartClient(ctrl)
	uuider := myuuid.NewMockUUIDer(ctrl)
	nower := mytime.NewMockNower(ctrl)
	subscriber := mypubsub.NewMockPubSub(ctrl)
	publisher := mypublisher.NewMockPublisher(ctrl)

	sut, err := NewWebService(Config{
		MerchantID: "MyMerchant",
	}, gateway, cartClient, storer, uuider, nower, subscriber, publisher)
	assert.NoError(t, err)
	router := mux.NewRouter()

	// These are called by the following call to RegisterEndpoints
	publisher.EXPECT().CreateTopic(c, paymentevents.TopicName).Return(nil)
	subscriber.EXPECT().CreateTopic(c, paymentevents.TopicName).Return(nil)
	subscriber.EXPECT().Subscribe(c, paymentevents.TopicName, "http://localhost:8080/api/braintree/event").Return(nil)

	err = sut.RegisterEndpoints(c, router)
	assert.NoError(t, err)

	return c, router, storer, gateway, cartClient, uuider, nower, subscriber, publisher
}

func cartFixture(version int, centAmount int64, shippingMethodCount int) paymentapi.Cart {
	methods := []paymentapi.ShippingMethod{}
	for i := 0; i < shippingMethodCount; i++ {
		rate := int64(100 * (i + 3))
		methods = append(methods, paymentapi.ShippingMethod{
			Name: "method",
			Rates: []paymentapi.ShippingRate{
				{Price: paymentapi.Money{CurrencyCode: "EUR", CentAmount: rate}},
			},
		})
	}

	return paymentapi.Cart{
		CartID:      "cart-1",
		CartVersion: version,
		Sum:         paymentapi.Money{CurrencyCode: "EUR", CentAmount: centAmount},
		LineItems: []paymentapi.CartLineItem{
			{Name: "tennis racket", Quantity: 1, TotalPrice: paymentapi.Money{CurrencyCode: "EUR", CentAmount: centAmount}},
		},
		AvailableShippingMethods: methods,
	}
}

func paymentFixture(centAmount int64) paymentapi.Payment {
	return paymentapi.Payment{
		ID:              "uuid-1",
		PaymentProvider: "Braintree",
		AmountPlanned:   paymentapi.Money{CurrencyCode: "EUR", CentAmount: centAmount},
		PaymentStatus:   paymentapi.PaymentStatusInit,
		Debug:           `{"id": "bt-pay-1", "version": 5}`,
	}
}

func pushRequestFor(t *testing.T, event myevents.Event) string {
	payload, err := json.Marshal(event)
	assert.NoError(t, err)

	envelope, err := json.Marshal(myevents.EventEnvelope{
		UID:           "event-1",
		Topic:         paymentevents.TopicName,
		AggregateUID:  event.GetAggregateName(),
		EventTypeName: event.GetEventTypeName(),
		EventPayload:  string(payload),
	})
	assert.NoError(t, err)

	pushRequest, err := json.Marshal(myevents.PushRequest{
		Message: myevents.PushMessage{Data: envelope},
	})
	assert.NoError(t, err)

	return string(pushRequest)
}
