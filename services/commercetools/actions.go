package commercetools

import (
	"github.com/shopfront/braintreebridge/services/paymentapi"
)

const (
	actionSetCustomType      = "setCustomType"
	actionSetCustomField     = "setCustomField"
	actionSetCustomerEmail   = "setCustomerEmail"
	actionSetShippingAddress = "setShippingAddress"
	actionSetBillingAddress  = "setBillingAddress"
	actionAddPayment         = "addPayment"
)

// SetCustomTypeAction attaches a custom type to a record and seeds its fields.
// The backend relays gateway-bound fields and stores replies on sibling fields.
func SetCustomTypeAction(typeKey string, fields map[string]string) UpdateAction {
	return UpdateAction{
		Action: actionSetCustomType,
		Type: &TypeReference{
			TypeID: "type",
			Key:    typeKey,
		},
		Fields: fields,
	}
}

func SetCustomFieldAction(name string, value string) UpdateAction {
	return UpdateAction{
		Action: actionSetCustomField,
		Name:   name,
		Value:  value,
	}
}

func SetCustomerEmailAction(email string) UpdateAction {
	return UpdateAction{
		Action: actionSetCustomerEmail,
		Email:  email,
	}
}

func SetShippingAddressAction(address paymentapi.Address) UpdateAction {
	return UpdateAction{
		Action:  actionSetShippingAddress,
		Address: &address,
	}
}

func SetBillingAddressAction(address paymentapi.Address) UpdateAction {
	return UpdateAction{
		Action:  actionSetBillingAddress,
		Address: &address,
	}
}

func AddPaymentAction(payment paymentapi.Payment) UpdateAction {
	return UpdateAction{
		Action:  actionAddPayment,
		Payment: &payment,
	}
}
