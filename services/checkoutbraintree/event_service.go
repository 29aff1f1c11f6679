package checkoutbraintree

import (
	"context"
	"fmt"

	"github.com/shopfront/braintreebridge/lib/myerrors"
	"github.com/shopfront/braintreebridge/lib/myhttp"
	"github.com/shopfront/braintreebridge/services/paymentevents"
)

// The audit store is maintained here, on the subscribing side, so command
// handlers stay write-free and replayed events converge on the same state.

func (s *service) Subscribe(c context.Context) error {
	err := s.subscriber.CreateTopic(c, paymentevents.TopicName)
	if err != nil {
		return fmt.Errorf("error creating topic %s: %s", paymentevents.TopicName, err)
	}

	err = s.subscriber.Subscribe(c, paymentevents.TopicName, myhttp.GuessHostnameWithScheme()+"/api/braintree/event")
	if err != nil {
		return fmt.Errorf("error subscribing to topic %s: %s", paymentevents.TopicName, err)
	}

	return nil
}

func (s *service) OnPaymentCreated(c context.Context, topic string, event paymentevents.PaymentCreated) error {
	now := s.nower.Now()

	return s.purchaseStore.RunInTransaction(c, func(c context.Context) error {
		// must be idempotent

		purchaseContext, found, err := s.purchaseStore.Get(c, event.PaymentUID)
		if err != nil {
			return myerrors.NewInternalError(err)
		}
		if !found {
			purchaseContext = PurchaseContext{
				PaymentUID: event.PaymentUID,
				CreatedAt:  now,
			}
		}

		purchaseContext.CartUID = event.CartUID
		purchaseContext.AccountUID = event.AccountUID
		purchaseContext.AmountInCents = event.AmountInCents
		purchaseContext.Currency = event.Currency
		purchaseContext.ForVault = event.ForVault

		return s.purchaseStore.Put(c, event.PaymentUID, purchaseContext)
	})
}

func (s *service) OnPurchaseCompleted(c context.Context, topic string, event paymentevents.PurchaseCompleted) error {
	now := s.nower.Now()

	return s.purchaseStore.RunInTransaction(c, func(c context.Context) error {
		// must be idempotent

		purchaseContext, found, err := s.purchaseStore.Get(c, event.PaymentUID)
		if err != nil {
			return myerrors.NewInternalError(err)
		}
		if !found {
			purchaseContext = PurchaseContext{
				PaymentUID: event.PaymentUID,
				CreatedAt:  now,
			}
		}

		purchaseContext.LastModified = &now
		purchaseContext.Outcome = event.Outcome
		purchaseContext.Retried = event.Retried
		purchaseContext.Success = event.Success

		return s.purchaseStore.Put(c, event.PaymentUID, purchaseContext)
	})
}
