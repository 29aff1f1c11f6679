package checkoutbraintree

import (
	"context"
	"fmt"

	"github.com/shopfront/braintreebridge/lib/myerrors"
	"github.com/shopfront/braintreebridge/lib/mylog"
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

const achRegistrationRequired = "In order to use ACH you need to register"

type service struct {
	merchantID    string
	gateway       Gateway
	cartClient    CartClient
	purchaseStore mystore.Store[PurchaseContext]
	uuider        myuuid.UUIDer
	nower         mytime.Nower
	logger        mylog.Logger
	subscriber    mypubsub.PubSub
	publisher     mypublisher.Publisher
}

// Use dependency injection to isolate the infrastructure and easy testing
func newCommandService(cfg Config, gateway Gateway, cartClient CartClient, purchaseStore mystore.Store[PurchaseContext], uuider myuuid.UUIDer, nower mytime.Nower, logger mylog.Logger, subscriber mypubsub.PubSub, publisher mypublisher.Publisher) (*service, error) {
	return &service{
		merchantID:    cfg.MerchantID,
		gateway:       gateway,
		cartClient:    cartClient,
		purchaseStore: purchaseStore,
		uuider:        uuider,
		nower:         nower,
		logger:        logger,
		subscriber:    subscriber,
		publisher:     publisher,
	}, nil
}

func (s *service) CreateTopics(c context.Context) error {
	err := s.publisher.CreateTopic(c, paymentevents.TopicName)
	if err != nil {
		return fmt.Errorf("error creating topic %s: %s", paymentevents.TopicName, err)
	}

	return nil
}

// createPayment appends a Braintree payment to the cart unless an equivalent
// one is already pending. With forVault set the payment is zero-amount and is
// always appended.
func (s *service) createPayment(c context.Context, req paymentapi.CreatePaymentRequest, forVault bool) (*createPaymentResponse, error) {
	cartUID := req.Session.CartID
	accountUID := req.Session.AccountID

	s.logger.Log(c, cartUID, mylog.SeverityInfo, "Create payment for cart %s (forVault=%t)", cartUID, forVault)

	cart, err := s.cartClient.GetCart(c, cartUID)
	if err != nil {
		return nil, err
	}

	braintreeCustomerID := ""
	customerVersion := 0
	if accountUID != "" {
		customer, err := s.gateway.GetCustomer(c, accountUID)
		if err != nil {
			return nil, err
		}
		braintreeCustomerID = customer.BraintreeCustomerID
		customerVersion = customer.CustomerVersion
	}

	cart, err = s.patchCart(c, cart, req)
	if err != nil {
		return nil, err
	}

	requestedAmount := plannedAmount(cart)
	amount := requestedAmount
	if forVault {
		amount = paymentapi.Money{CurrencyCode: cart.Sum.CurrencyCode, CentAmount: 0}
	}

	if forVault || !hasPendingPayment(cart, amount) {
		cart, err = s.cartClient.UpdateCart(c, cart.CartID, cart.CartVersion, []commercetools.UpdateAction{
			commercetools.AddPaymentAction(paymentapi.Payment{
				ID:              s.uuider.Create(),
				PaymentProvider: paymentapi.ProviderBraintree,
				AmountPlanned:   amount,
				PaymentStatus:   paymentapi.PaymentStatusInit,
			}),
		})
		if err != nil {
			return nil, err
		}
	}

	if len(cart.Payments) == 0 {
		return nil, myerrors.NewInternalError(fmt.Errorf("cart %s carries no payment after create", cartUID))
	}
	lastPayment := cart.Payments[len(cart.Payments)-1]
	debug, err := lastPayment.DebugInfo()
	if err != nil {
		return nil, err
	}

	err = s.publisher.Publish(c, paymentevents.TopicName, paymentevents.PaymentCreated{
		PaymentUID:    debug.ID,
		CartUID:       cartUID,
		AccountUID:    accountUID,
		AmountInCents: amount.CentAmount,
		Currency:      amount.CurrencyCode,
		ForVault:      forVault,
	})
	if err != nil {
		return nil, myerrors.NewInternalError(fmt.Errorf("error publishing event: %s", err))
	}

	resp := &createPaymentResponse{
		Success:             true,
		PaymentID:           debug.ID,
		PaymentVersion:      debug.Version,
		AmountPlanned:       amount,
		LineItems:           cart.LineItems,
		ShippingMethod:      selectedShippingMethod(cart),
		BraintreeCustomerID: braintreeCustomerID,
	}
	if forVault {
		resp.RequestAmountPlanned = &requestedAmount
		resp.CustomerVersion = customerVersion
		resp.LineItems = []paymentapi.CartLineItem{}
	}

	return resp, nil
}

// patchCart applies the inbound account patch to the cart. An omitted address
// falls back to its counterpart so both sides end up filled. An empty email
// aborts the whole patch, addresses included.
func (s *service) patchCart(c context.Context, cart paymentapi.Cart, req paymentapi.CreatePaymentRequest) (paymentapi.Cart, error) {
	if req.Account != nil && req.Account.Email == "" {
		return cart, nil
	}

	actions := []commercetools.UpdateAction{}

	if req.Account != nil && req.Account.Email != "" {
		actions = append(actions, commercetools.SetCustomerEmailAction(req.Account.Email))
	}

	shipping := req.Shipping
	if shipping == nil {
		shipping = req.Billing
	}
	billing := req.Billing
	if billing == nil {
		billing = req.Shipping
	}
	if shipping != nil {
		actions = append(actions, commercetools.SetShippingAddressAction(*shipping))
	}
	if billing != nil {
		actions = append(actions, commercetools.SetBillingAddressAction(*billing))
	}

	if len(actions) == 0 {
		return cart, nil
	}

	return s.cartClient.UpdateCart(c, cart.CartID, cart.CartVersion, actions)
}

// plannedAmount is the cart total plus the first rate of the last available
// shipping method
func plannedAmount(cart paymentapi.Cart) paymentapi.Money {
	amount := cart.Sum

	method := selectedShippingMethod(cart)
	if method != nil && len(method.Rates) > 0 {
		amount.CentAmount += method.Rates[0].Price.CentAmount
	}

	return amount
}

func selectedShippingMethod(cart paymentapi.Cart) *paymentapi.ShippingMethod {
	if len(cart.AvailableShippingMethods) == 0 {
		return nil
	}

	return &cart.AvailableShippingMethods[len(cart.AvailableShippingMethods)-1]
}

func hasPendingPayment(cart paymentapi.Cart, amount paymentapi.Money) bool {
	for _, payment := range cart.Payments {
		if payment.PaymentProvider == paymentapi.ProviderBraintree &&
			payment.PaymentStatus == paymentapi.PaymentStatusInit &&
			payment.AmountPlanned.CentAmount == amount.CentAmount {
			return true
		}
	}

	return false
}

func (s *service) getClientToken(c context.Context, req clientTokenRequest) (*clientTokenResponse, error) {
	s.logger.Log(c, req.PaymentID, mylog.SeverityInfo, "Get client token for payment %s", req.PaymentID)

	result, err := s.gateway.GetClientToken(c, req.PaymentID, req.PaymentVersion, req.Session.AccountID, s.merchantID)
	if err != nil {
		return nil, err
	}

	return &clientTokenResponse{
		ClientToken:    result.ClientToken,
		PaymentVersion: result.PaymentVersion,
	}, nil
}

func (s *service) vaultPaymentMethod(c context.Context, req vaultPaymentMethodRequest) error {
	s.logger.Log(c, req.CustomerID, mylog.SeverityInfo, "Vault payment method for customer %s", req.CustomerID)

	err := s.gateway.PureVault(c, req.CustomerID, req.CustomerVersion, req.PaymentMethodNonce)
	if err != nil {
		return err
	}

	err = s.publisher.Publish(c, paymentevents.TopicName, paymentevents.PaymentMethodVaulted{
		CustomerUID: req.CustomerID,
	})
	if err != nil {
		return myerrors.NewInternalError(fmt.Errorf("error publishing event: %s", err))
	}

	return nil
}

func (s *service) setLocalPaymentID(c context.Context, req localPaymentIDRequest) (*localPaymentIDResponse, error) {
	s.logger.Log(c, req.PaymentID, mylog.SeverityInfo, "Set local-payment id on payment %s", req.PaymentID)

	version, err := s.gateway.SetLocalPaymentID(c, req.PaymentID, req.PaymentVersion, req.LocalPaymentID)
	if err != nil {
		return nil, err
	}

	return &localPaymentIDResponse{
		PaymentVersion: version,
	}, nil
}

// getAchVaultToken requires an authenticated account. The gateway customer is
// created lazily: the backend assigns the braintreeCustomerId asynchronously,
// so a re-fetch is needed after creation.
func (s *service) getAchVaultToken(c context.Context, req achVaultTokenRequest) (*achVaultTokenResponse, error) {
	accountUID := req.Session.AccountID
	if accountUID == "" {
		return &achVaultTokenResponse{
			Status:  false,
			Message: achRegistrationRequired,
		}, nil
	}

	s.logger.Log(c, accountUID, mylog.SeverityInfo, "Get ACH vault token for account %s", accountUID)

	customer, err := s.gateway.GetCustomer(c, accountUID)
	if err != nil {
		return nil, err
	}

	if customer.BraintreeCustomerID == "" {
		err = s.gateway.CreateCustomer(c, accountUID, customer.CustomerVersion)
		if err != nil {
			return nil, err
		}

		customer, err = s.gateway.GetCustomer(c, accountUID)
		if err != nil {
			return nil, err
		}
	}

	vault, err := s.gateway.CreateAchVaultToken(c, accountUID, customer.CustomerVersion, req.PaymentMethodNonce)
	if err != nil {
		return nil, err
	}

	if vault.Token == "" {
		return &achVaultTokenResponse{
			Status:  false,
			Message: vault.Message,
		}, nil
	}

	err = s.publisher.Publish(c, paymentevents.TopicName, paymentevents.AchVaultTokenCreated{
		AccountUID: accountUID,
		Verified:   vault.Verified,
	})
	if err != nil {
		return nil, myerrors.NewInternalError(fmt.Errorf("error publishing event: %s", err))
	}

	return &achVaultTokenResponse{
		Status:   true,
		Token:    vault.Token,
		Verified: vault.Verified,
	}, nil
}

func (s *service) createPurchase(c context.Context, req purchaseRequest) (*purchaseResponse, error) {
	s.logger.Log(c, req.PaymentID, mylog.SeverityInfo, "Purchase on payment %s", req.PaymentID)

	// the authenticated account travels in the session; an explicit body value wins
	if req.AccountID == "" {
		req.AccountID = req.Session.AccountID
	}

	result, err := s.gateway.Purchase(c, req.PurchaseRequest)
	if err != nil {
		return nil, err
	}

	retried := result.Outcome == braintree.OutcomeRetriedAndConfirmed || result.Outcome == braintree.OutcomeRetriedAndFailed
	// a confirmed outcome can still carry a declined sale
	success := result.Sale.Success || (result.Outcome == braintree.OutcomeConfirmed && !result.SalePresent)

	err = s.publisher.Publish(c, paymentevents.TopicName, paymentevents.PurchaseCompleted{
		PaymentUID:     req.PaymentID,
		Outcome:        string(result.Outcome),
		Retried:        retried,
		Success:        success,
		PaymentMethod:  result.Sale.PaymentInstrumentType,
		ProcessorReply: result.Sale.ProcessorResponseText,
	})
	if err != nil {
		return nil, myerrors.NewInternalError(fmt.Errorf("error publishing event: %s", err))
	}

	return &purchaseResponse{
		Result: result,
	}, nil
}

func (s *service) getPurchaseContext(c context.Context, paymentUID string) (PurchaseContext, error) {
	purchaseContext, found, err := s.purchaseStore.Get(c, paymentUID)
	if err != nil {
		return PurchaseContext{}, myerrors.NewInternalError(err)
	}
	if !found {
		return PurchaseContext{}, myerrors.NewNotFoundError(fmt.Errorf("purchase with uid %s not found", paymentUID))
	}

	return purchaseContext, nil
}
