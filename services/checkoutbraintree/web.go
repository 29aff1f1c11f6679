package checkoutbraintree

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/shopfront/braintreebridge/lib/mycontext"
	"github.com/shopfront/braintreebridge/lib/myerrors"
	"github.com/shopfront/braintreebridge/lib/myhttp"
	"github.com/shopfront/braintreebridge/lib/mylog"
	"github.com/shopfront/braintreebridge/lib/mypublisher"
	"github.com/shopfront/braintreebridge/lib/mypubsub"
	"github.com/shopfront/braintreebridge/lib/mystore"
	"github.com/shopfront/braintreebridge/lib/mytime"
	"github.com/shopfront/braintreebridge/lib/myuuid"
	"github.com/shopfront/braintreebridge/services/paymentapi"
	"github.com/shopfront/braintreebridge/services/paymentevents"
)

type webService struct {
	logger  mylog.Logger
	service *service
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewWebService(cfg Config, gateway Gateway, cartClient CartClient, purchaseStore mystore.Store[PurchaseContext], uuider myuuid.UUIDer, nower mytime.Nower, subscriber mypubsub.PubSub, publisher mypublisher.Publisher) (*webService, error) {
	logger := mylog.New("checkoutbraintree")
	s, err := newCommandService(cfg, gateway, cartClient, purchaseStore, uuider, nower, logger, subscriber, publisher)
	if err != nil {
		return nil, err
	}

	return &webService{
		logger:  logger,
		service: s,
	}, nil
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc("/braintree/payment", s.createPaymentPage(false)).Methods("POST")
	router.HandleFunc("/braintree/payment/vault", s.createPaymentPage(true)).Methods("POST")
	router.HandleFunc("/braintree/clienttoken", s.getClientTokenPage()).Methods("POST")
	router.HandleFunc("/braintree/paymentmethod/vault", s.vaultPaymentMethodPage()).Methods("POST")
	router.HandleFunc("/braintree/payment/localpayment", s.setLocalPaymentIDPage()).Methods("POST")
	router.HandleFunc("/braintree/ach/vaulttoken", s.getAchVaultTokenPage()).Methods("POST")
	router.HandleFunc("/braintree/purchase", s.createPurchasePage()).Methods("POST")
	router.HandleFunc("/braintree/purchase/{paymentUID}", s.getPurchasePage()).Methods("GET")

	err := s.service.CreateTopics(c)
	if err != nil {
		return err
	}

	// Listen for events on our own topic to keep the audit store up-to-date
	router.HandleFunc("/api/braintree/event", s.handleEventEnvelope()).Methods("POST")

	err = s.service.Subscribe(c)
	if err != nil {
		return err
	}

	return nil
}

func (s *webService) createPaymentPage(forVault bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		req, err := paymentapi.NewFromRequest(r)
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInvalidInputError(fmt.Errorf("error parsing request: %s", err)))
			return
		}
		if req.Session.CartID == "" {
			errorWriter.WriteError(c, w, 2, myerrors.NewInvalidInputError(fmt.Errorf("missing cartId")))
			return
		}

		resp, err := s.service.createPayment(c, req, forVault)
		if err != nil {
			errorWriter.WriteError(c, w, 3, err)
			return
		}

		resp.SessionData = &req.Session
		errorWriter.Write(c, w, http.StatusOK, resp)
	}
}

func (s *webService) getClientTokenPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		req := clientTokenRequest{}
		err := json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInvalidInputError(fmt.Errorf("error parsing request: %s", err)))
			return
		}
		if req.PaymentID == "" {
			errorWriter.WriteError(c, w, 2, myerrors.NewInvalidInputError(fmt.Errorf("missing paymentId")))
			return
		}

		resp, err := s.service.getClientToken(c, req)
		if err != nil {
			errorWriter.WriteError(c, w, 3, err)
			return
		}

		resp.SessionData = &req.Session
		errorWriter.Write(c, w, http.StatusOK, resp)
	}
}

// vaultPaymentMethodPage replies with a bare status code, there is no body
func (s *webService) vaultPaymentMethodPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)

		req := vaultPaymentMethodRequest{}
		err := json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			s.logger.Log(c, "", mylog.SeverityWarn, "Error parsing vault request: %s", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		err = s.service.vaultPaymentMethod(c, req)
		if err != nil {
			s.logger.Log(c, req.CustomerID, mylog.SeverityWarn, "Error vaulting payment method: %s", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}

func (s *webService) setLocalPaymentIDPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		req := localPaymentIDRequest{}
		err := json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInvalidInputError(fmt.Errorf("error parsing request: %s", err)))
			return
		}

		resp, err := s.service.setLocalPaymentID(c, req)
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		resp.SessionData = &req.Session
		errorWriter.Write(c, w, http.StatusOK, resp)
	}
}

// getAchVaultTokenPage always replies 200: a business-level refusal is a
// soft failure carried in the body
func (s *webService) getAchVaultTokenPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		req := achVaultTokenRequest{}
		err := json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInvalidInputError(fmt.Errorf("error parsing request: %s", err)))
			return
		}

		resp, err := s.service.getAchVaultToken(c, req)
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		resp.SessionData = &req.Session
		errorWriter.Write(c, w, http.StatusOK, resp)
	}
}

func (s *webService) createPurchasePage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		req := purchaseRequest{}
		err := json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInvalidInputError(fmt.Errorf("error parsing request: %s", err)))
			return
		}
		if req.PaymentID == "" || req.PaymentMethodNonce == "" {
			errorWriter.WriteError(c, w, 2, myerrors.NewInvalidInputError(fmt.Errorf("missing paymentId or paymentMethodNonce")))
			return
		}

		resp, err := s.service.createPurchase(c, req)
		if err != nil {
			errorWriter.WriteError(c, w, 3, err)
			return
		}

		resp.SessionData = &req.Session
		errorWriter.Write(c, w, http.StatusOK, resp)
	}
}

func (s *webService) getPurchasePage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		paymentUID := mux.Vars(r)["paymentUID"]

		purchaseContext, err := s.service.getPurchaseContext(c, paymentUID)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, purchaseContext)
	}
}

func (s *webService) handleEventEnvelope() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		err := paymentevents.DispatchEvent(c, r.Body, s.service)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, myhttp.SuccessResponse{
			Message: "Successfully processed event",
		})
	}
}
