package commercetools

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/shopfront/braintreebridge/lib/myerrors"
	"github.com/shopfront/braintreebridge/lib/myhttpclient"
	"github.com/shopfront/braintreebridge/services/paymentapi"
)

type restClient struct {
	config Config
	sender myhttpclient.HTTPSender
}

func NewClient(config Config, sender myhttpclient.HTTPSender) *restClient {
	return &restClient{
		config: config,
		sender: sender,
	}
}

func (cl restClient) GetCustomer(c context.Context, customerID string) (CustomerRecord, error) {
	customer := CustomerRecord{}
	err := cl.get(c, fmt.Sprintf("/customers/%s", customerID), &customer)
	if err != nil {
		return CustomerRecord{}, err
	}

	return customer, nil
}

func (cl restClient) UpdateCustomer(c context.Context, customerID string, version int, actions []UpdateAction) (CustomerRecord, error) {
	customer := CustomerRecord{}
	err := cl.update(c, fmt.Sprintf("/customers/%s", customerID), version, actions, &customer)
	if err != nil {
		return CustomerRecord{}, err
	}

	return customer, nil
}

func (cl restClient) UpdatePayment(c context.Context, paymentID string, version int, actions []UpdateAction) (PaymentRecord, error) {
	payment := PaymentRecord{}
	err := cl.update(c, fmt.Sprintf("/payments/%s", paymentID), version, actions, &payment)
	if err != nil {
		return PaymentRecord{}, err
	}

	return payment, nil
}

func (cl restClient) GetCart(c context.Context, cartID string) (paymentapi.Cart, error) {
	cart := paymentapi.Cart{}
	err := cl.get(c, fmt.Sprintf("/carts/%s", cartID), &cart)
	if err != nil {
		return paymentapi.Cart{}, err
	}

	return cart, nil
}

func (cl restClient) UpdateCart(c context.Context, cartID string, version int, actions []UpdateAction) (paymentapi.Cart, error) {
	cart := paymentapi.Cart{}
	err := cl.update(c, fmt.Sprintf("/carts/%s", cartID), version, actions, &cart)
	if err != nil {
		return paymentapi.Cart{}, err
	}

	return cart, nil
}

func (cl restClient) get(c context.Context, path string, response any) error {
	return cl.send(c, http.MethodGet, path, nil, response)
}

func (cl restClient) update(c context.Context, path string, version int, actions []UpdateAction, response any) error {
	requestBody, err := json.Marshal(UpdateRequest{
		Version: version,
		Actions: actions,
	})
	if err != nil {
		return myerrors.NewInternalError(fmt.Errorf("error serializing update for %s: %s", path, err))
	}

	return cl.send(c, http.MethodPost, path, requestBody, response)
}

func (cl restClient) send(c context.Context, method string, path string, requestBody []byte, response any) error {
	url := fmt.Sprintf("%s/%s%s", cl.config.APIURL, cl.config.ProjectKey, path)
	headers := map[string]string{
		"Authorization": fmt.Sprintf("Bearer %s", cl.config.AuthToken),
	}

	httpStatus, responseBody, err := cl.sender.Send(c, method, url, headers, requestBody)
	if err != nil {
		return myerrors.NewUnavailableError(fmt.Errorf("error sending %s %s: %s", method, path, err))
	}

	if httpStatus == http.StatusNotFound {
		return myerrors.NewNotFoundError(fmt.Errorf("%s not found", path))
	}
	if httpStatus >= http.StatusMultipleChoices {
		return myerrors.NewInternalError(fmt.Errorf("error response on %s %s: http status %d", method, path, httpStatus))
	}

	err = json.Unmarshal(responseBody, response)
	if err != nil {
		return myerrors.NewInternalError(fmt.Errorf("error parsing response of %s %s: %s", method, path, err))
	}

	return nil
}
