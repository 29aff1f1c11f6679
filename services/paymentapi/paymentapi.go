package paymentapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	formcodec "github.com/go-playground/form/v4"

	"github.com/shopfront/braintreebridge/lib/myerrors"
)

// CreatePaymentRequest is the inbound envelope for the create-payment actions.
// The storefront posts it either as json or as a classic form submit.
type CreatePaymentRequest struct {
	Session  Session       `json:"session" form:"session"`
	Account  *AccountPatch `json:"account,omitempty" form:"account"`
	Shipping *Address      `json:"shipping,omitempty" form:"shipping"`
	Billing  *Address      `json:"billing,omitempty" form:"billing"`
}

type AccountPatch struct {
	Email string `json:"email,omitempty" form:"email"`
}

func NewFromRequest(r *http.Request) (CreatePaymentRequest, error) {
	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "application/x-www-form-urlencoded") {
		err := r.ParseForm()
		if err != nil {
			return CreatePaymentRequest{}, myerrors.NewInvalidInputError(err)
		}
		return NewFromValues(r.PostForm)
	}

	req := CreatePaymentRequest{}
	if r.Body == nil || r.ContentLength == 0 {
		return req, nil
	}

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		return CreatePaymentRequest{}, myerrors.NewInvalidInputError(fmt.Errorf("error decoding json body: %s", err))
	}

	return req, nil
}

func NewFromValues(values url.Values) (CreatePaymentRequest, error) {
	req := CreatePaymentRequest{}
	err := formcodec.NewDecoder().Decode(&req, values)
	if err != nil {
		return req, myerrors.NewInvalidInputError(fmt.Errorf("error decoding form: %s", err))
	}

	return req, nil
}

func (r CreatePaymentRequest) ToForm() (url.Values, error) {
	values, err := formcodec.NewEncoder().Encode(r)
	if err != nil {
		return nil, fmt.Errorf("error encoding form: %s", err)
	}

	return values, nil
}
