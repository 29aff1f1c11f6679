package braintree

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/shopfront/braintreebridge/lib/myerrors"
	"github.com/shopfront/braintreebridge/lib/mylog"
	"github.com/shopfront/braintreebridge/lib/myuuid"
	"github.com/shopfront/braintreebridge/services/commercetools"
)

const thankYouMessage = "Thank you for your purchase!"

// Adapter speaks the gateway relay protocol: it never contacts Braintree
// directly but writes request fields on backend records and reads the reply
// fields the backend stores next to them.
type Adapter struct {
	client commercetools.Client
	uuider myuuid.UUIDer
	logger mylog.Logger
}

func NewAdapter(client commercetools.Client, uuider myuuid.UUIDer) *Adapter {
	return &Adapter{
		client: client,
		uuider: uuider,
		logger: mylog.New("braintree"),
	}
}

func (a Adapter) GetCustomer(c context.Context, accountID string) (Customer, error) {
	record, err := a.client.GetCustomer(c, accountID)
	if err != nil {
		return Customer{}, fmt.Errorf("error fetching customer %s: %s", accountID, err)
	}

	braintreeCustomerID, _ := record.Custom.Field(FieldBraintreeCustomerID)

	return Customer{
		BraintreeCustomerID: braintreeCustomerID,
		FirstName:           record.FirstName,
		LastName:            record.LastName,
		Email:               record.Email,
		Company:             record.CompanyName,
		CustomerVersion:     record.Version,
	}, nil
}

func (a Adapter) GetClientToken(c context.Context, paymentID string, paymentVersion int, accountID string, merchantID string) (ClientTokenResult, error) {
	tokenRequest := clientTokenRequest{
		MerchantID: merchantID,
	}
	if accountID != "" {
		customer, err := a.GetCustomer(c, accountID)
		if err != nil {
			return ClientTokenResult{}, err
		}
		tokenRequest.CustomerID = customer.BraintreeCustomerID
	}

	requestJSON, err := json.Marshal(tokenRequest)
	if err != nil {
		return ClientTokenResult{}, myerrors.NewInternalError(fmt.Errorf("error serializing client-token request: %s", err))
	}

	payment, err := a.client.UpdatePayment(c, paymentID, paymentVersion, []commercetools.UpdateAction{
		commercetools.SetCustomTypeAction(PaymentTypeKey, map[string]string{
			FieldGetClientTokenRequest: string(requestJSON),
			FieldBraintreeOrderID:      a.uuider.Create(),
		}),
	})
	if err != nil {
		return ClientTokenResult{}, err
	}

	clientToken, found := payment.Custom.Field(FieldGetClientTokenResponse)
	if !found {
		return ClientTokenResult{}, myerrors.NewInternalError(fmt.Errorf("payment %s carries no client-token reply", paymentID))
	}

	return ClientTokenResult{
		ClientToken:    clientToken,
		PaymentVersion: payment.Version,
	}, nil
}

// Purchase submits a sale and reconciles an ambiguous outcome: when the reply
// field is absent, a transaction lookup decides between accepting the sale as
// settled and resubmitting it exactly once at the original record version.
func (a Adapter) Purchase(c context.Context, req PurchaseRequest) (PurchaseResult, error) {
	saleJSON, err := a.composeSaleRequest(c, req)
	if err != nil {
		return PurchaseResult{}, err
	}

	payment, err := a.submitSale(c, req.PaymentID, req.PaymentVersion, saleJSON)
	if err != nil {
		return PurchaseResult{}, err
	}

	sale, present, err := a.decodeSale(payment)
	if err != nil {
		return PurchaseResult{}, err
	}
	if present {
		return PurchaseResult{
			Outcome:        OutcomeConfirmed,
			Sale:           sale,
			SalePresent:    true,
			PaymentVersion: payment.Version,
		}, nil
	}

	a.logger.Log(c, req.PaymentID, mylog.SeverityWarn, "No sale reply on payment %s, starting transaction lookup", req.PaymentID)

	lookedUp, err := a.client.UpdatePayment(c, req.PaymentID, payment.Version, []commercetools.UpdateAction{
		commercetools.SetCustomFieldAction(FieldFindTransactionRequest, "{}"),
	})
	if err != nil {
		return PurchaseResult{}, err
	}

	lookup := FindTransactionResponse{}
	err = decodeField(lookedUp.Custom, FieldFindTransactionResponse, &lookup)
	if err != nil {
		return PurchaseResult{}, err
	}

	if lookup.Status {
		// the gateway settled the sale, resubmitting would charge twice
		return PurchaseResult{
			Outcome:        OutcomeConfirmed,
			SalePresent:    false,
			PaymentVersion: lookedUp.Version,
		}, nil
	}

	a.logger.Log(c, req.PaymentID, mylog.SeverityWarn, "Transaction lookup negative for payment %s, resubmitting sale once", req.PaymentID)

	retried, err := a.submitSale(c, req.PaymentID, req.PaymentVersion, saleJSON)
	if err != nil {
		return PurchaseResult{}, err
	}

	sale, present, err = a.decodeSale(retried)
	if err != nil {
		return PurchaseResult{}, err
	}
	if !present {
		return PurchaseResult{
			Outcome:        OutcomeInconclusive,
			PaymentVersion: retried.Version,
		}, nil
	}

	outcome := OutcomeRetriedAndFailed
	if sale.Success {
		outcome = OutcomeRetriedAndConfirmed
	}

	return PurchaseResult{
		Outcome:        outcome,
		Sale:           sale,
		SalePresent:    true,
		PaymentVersion: retried.Version,
	}, nil
}

// PureVault stores the payment method on the gateway customer. The vault
// request field carries the bare nonce, not a json document.
func (a Adapter) PureVault(c context.Context, customerID string, customerVersion int, nonce string) error {
	_, err := a.client.UpdateCustomer(c, customerID, customerVersion, []commercetools.UpdateAction{
		commercetools.SetCustomFieldAction(FieldVaultRequest, nonce),
	})

	return err
}

// CreateCustomer asks the backend to register the account with the gateway.
// The assigned braintreeCustomerId only appears on a subsequent fetch.
func (a Adapter) CreateCustomer(c context.Context, accountID string, version int) error {
	_, err := a.client.UpdateCustomer(c, accountID, version, []commercetools.UpdateAction{
		commercetools.SetCustomTypeAction(CustomerTypeKey, map[string]string{
			FieldCreateRequest: "{}",
		}),
	})

	return err
}

func (a Adapter) SetLocalPaymentID(c context.Context, paymentID string, version int, localPaymentID string) (int, error) {
	payment, err := a.client.UpdatePayment(c, paymentID, version, []commercetools.UpdateAction{
		commercetools.SetCustomFieldAction(FieldLocalPaymentMethodsPaymentID, localPaymentID),
	})
	if err != nil {
		return 0, err
	}

	return payment.Version, nil
}

func (a Adapter) CreateAchVaultToken(c context.Context, accountID string, version int, nonce string) (VaultTokenResponse, error) {
	customer, err := a.client.UpdateCustomer(c, accountID, version, []commercetools.UpdateAction{
		commercetools.SetCustomFieldAction(FieldVaultRequest, nonce),
	})
	if err != nil {
		return VaultTokenResponse{}, err
	}

	vault := VaultTokenResponse{}
	err = decodeField(customer.Custom, FieldVaultResponse, &vault)
	if err != nil {
		return VaultTokenResponse{}, err
	}

	return vault, nil
}

func (a Adapter) composeSaleRequest(c context.Context, req PurchaseRequest) (string, error) {
	sale := saleRequest{
		Amount:             req.Amount,
		PaymentMethodNonce: req.PaymentMethodNonce,
		MerchantAccountID:  req.MerchantAccountID,
		DeviceData:         req.DeviceData,
		LineItems:          req.LineItems,
		Shipping:           req.Shipping,
		TaxAmount:          req.TaxAmount,
		ShippingAmount:     req.ShippingAmount,
		DiscountAmount:     req.DiscountAmount,
	}

	if req.AccountID != "" {
		customer, err := a.GetCustomer(c, req.AccountID)
		if err != nil {
			return "", err
		}
		if customer.BraintreeCustomerID != "" {
			sale.CustomerID = customer.BraintreeCustomerID
		} else {
			sale.Customer = &saleCustomer{
				ID:        req.AccountID,
				FirstName: customer.FirstName,
				LastName:  customer.LastName,
				Email:     customer.Email,
				Company:   customer.Company,
			}
		}
	}

	if req.StoreInVaultOnSuccess {
		sale.Options = &saleOptions{StoreInVaultOnSuccess: true}
	}

	saleJSON, err := json.Marshal(sale)
	if err != nil {
		return "", myerrors.NewInternalError(fmt.Errorf("error serializing sale request: %s", err))
	}

	return string(saleJSON), nil
}

func (a Adapter) submitSale(c context.Context, paymentID string, version int, saleJSON string) (commercetools.PaymentRecord, error) {
	return a.client.UpdatePayment(c, paymentID, version, []commercetools.UpdateAction{
		commercetools.SetCustomFieldAction(FieldTransactionSaleRequest, saleJSON),
	})
}

// decodeSale returns present=false when the reply field is absent. That
// absence is meaningful: it triggers the reconciliation path.
func (a Adapter) decodeSale(payment commercetools.PaymentRecord) (TransactionSaleResponse, bool, error) {
	raw, found := payment.Custom.Field(FieldTransactionSaleResponse)
	if !found {
		return TransactionSaleResponse{}, false, nil
	}

	sale := TransactionSaleResponse{}
	err := json.Unmarshal([]byte(raw), &sale)
	if err != nil {
		return TransactionSaleResponse{}, false, myerrors.NewInternalError(
			fmt.Errorf("error parsing field %s of payment %s: %s", FieldTransactionSaleResponse, payment.ID, err))
	}

	applyProcessorCode(&sale)

	return sale, true, nil
}

// applyProcessorCode forces success on approval codes 1000-1999, overruling
// the gateway's own success flag.
func applyProcessorCode(sale *TransactionSaleResponse) {
	code, err := strconv.Atoi(sale.ProcessorResponseCode)
	if err != nil {
		return
	}

	if code >= 1000 && code <= 1999 {
		sale.Success = true
		sale.Message = thankYouMessage
	}
}

func decodeField(custom *commercetools.CustomFields, name string, target any) error {
	raw, found := custom.Field(name)
	if !found {
		return myerrors.NewInternalError(fmt.Errorf("record carries no field %s", name))
	}

	err := json.Unmarshal([]byte(raw), target)
	if err != nil {
		return myerrors.NewInternalError(fmt.Errorf("error parsing field %s: %s", name, err))
	}

	return nil
}
