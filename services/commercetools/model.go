package commercetools

import (
	"github.com/shopfront/braintreebridge/services/paymentapi"
)

type Config struct {
	APIURL     string
	ProjectKey string
	AuthToken  string
}

// TypeReference points at a custom-type definition by key
type TypeReference struct {
	TypeID string `json:"typeId,omitempty"`
	Key    string `json:"key,omitempty"`
}

// UpdateAction is the single loose action shape of the backend update protocol.
// Which fields are set depends on Action; unset fields are omitted on the wire.
type UpdateAction struct {
	Action  string              `json:"action"`
	Name    string              `json:"name,omitempty"`
	Value   string              `json:"value,omitempty"`
	Type    *TypeReference      `json:"type,omitempty"`
	Fields  map[string]string   `json:"fields,omitempty"`
	Email   string              `json:"email,omitempty"`
	Address *paymentapi.Address `json:"address,omitempty"`
	Payment *paymentapi.Payment `json:"payment,omitempty"`
}

type UpdateRequest struct {
	Version int            `json:"version"`
	Actions []UpdateAction `json:"actions"`
}

// CustomFields is the custom-field bag the backend relays to the gateway.
// Replies from the gateway land in sibling fields of the same bag.
type CustomFields struct {
	Type   TypeReference     `json:"type,omitempty"`
	Fields map[string]string `json:"fields,omitempty"`
}

func (cf *CustomFields) Field(name string) (string, bool) {
	if cf == nil || cf.Fields == nil {
		return "", false
	}
	value, found := cf.Fields[name]

	return value, found
}

type CustomerRecord struct {
	ID          string        `json:"id"`
	Version     int           `json:"version"`
	FirstName   string        `json:"firstName,omitempty"`
	LastName    string        `json:"lastName,omitempty"`
	Email       string        `json:"email,omitempty"`
	CompanyName string        `json:"companyName,omitempty"`
	Custom      *CustomFields `json:"custom,omitempty"`
}

type PaymentRecord struct {
	ID            string           `json:"id"`
	Version       int              `json:"version"`
	AmountPlanned paymentapi.Money `json:"amountPlanned,omitempty"`
	Custom        *CustomFields    `json:"custom,omitempty"`
}
