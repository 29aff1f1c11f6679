package paymentevents

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopfront/braintreebridge/lib/myerrors"
	"github.com/shopfront/braintreebridge/lib/myevents"
)

const (
	TopicName                = "payment"
	paymentCreatedName       = TopicName + ".created"
	purchaseCompletedName    = TopicName + ".purchaseCompleted"
	paymentMethodVaultedName = TopicName + ".methodVaulted"
	achVaultTokenCreatedName = TopicName + ".achVaultTokenCreated"
)

type PaymentEventService interface {
	Subscribe(c context.Context) error
	OnPaymentCreated(c context.Context, topic string, event PaymentCreated) error
	OnPurchaseCompleted(c context.Context, topic string, event PurchaseCompleted) error
}

func DispatchEvent(c context.Context, reader io.Reader, service PaymentEventService) error {
	envelope, err := myevents.ParseEventEnvelope(reader)
	if err != nil {
		return myerrors.NewInvalidInputError(err)
	}

	switch envelope.EventTypeName {
	case paymentCreatedName:
		{
			event := PaymentCreated{}
			err := json.Unmarshal([]byte(envelope.EventPayload), &event)
			if err != nil {
				return myerrors.NewInvalidInputError(err)
			}
			return service.OnPaymentCreated(c, envelope.Topic, event)
		}
	case purchaseCompletedName:
		{
			event := PurchaseCompleted{}
			err := json.Unmarshal([]byte(envelope.EventPayload), &event)
			if err != nil {
				return myerrors.NewInvalidInputError(err)
			}
			return service.OnPurchaseCompleted(c, envelope.Topic, event)
		}
	default:
		return myerrors.NewNotImplementedError(fmt.Errorf("unknown event %s", envelope.EventTypeName))
	}
}

type PaymentCreated struct {
	PaymentUID    string
	CartUID       string
	AccountUID    string
	AmountInCents int64
	Currency      string
	ForVault      bool
}

func (e PaymentCreated) GetEventTypeName() string {
	return paymentCreatedName
}

func (e PaymentCreated) GetAggregateName() string {
	return e.PaymentUID
}

type PurchaseCompleted struct {
	PaymentUID     string
	Outcome        string
	Retried        bool
	Success        bool
	PaymentMethod  string
	ProcessorReply string
}

func (e PurchaseCompleted) GetEventTypeName() string {
	return purchaseCompletedName
}

func (e PurchaseCompleted) GetAggregateName() string {
	return e.PaymentUID
}

type PaymentMethodVaulted struct {
	CustomerUID string
}

func (e PaymentMethodVaulted) GetEventTypeName() string {
	return paymentMethodVaultedName
}

func (e PaymentMethodVaulted) GetAggregateName() string {
	return e.CustomerUID
}

type AchVaultTokenCreated struct {
	AccountUID string
	Verified   bool
}

func (e AchVaultTokenCreated) GetEventTypeName() string {
	return achVaultTokenCreatedName
}

func (e AchVaultTokenCreated) GetAggregateName() string {
	return e.AccountUID
}
