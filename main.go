package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"github.com/shopfront/braintreebridge/lib/myhttpclient"
	"github.com/shopfront/braintreebridge/lib/mypublisher"
	"github.com/shopfront/braintreebridge/lib/mypubsub"
	"github.com/shopfront/braintreebridge/lib/myqueue"
	"github.com/shopfront/braintreebridge/lib/mystore"
	"github.com/shopfront/braintreebridge/lib/mytime"
	"github.com/shopfront/braintreebridge/lib/myuuid"
	"github.com/shopfront/braintreebridge/services/braintree"
	"github.com/shopfront/braintreebridge/services/checkoutbraintree"
	"github.com/shopfront/braintreebridge/services/commercetools"
)

func main() {
	c := context.Background()

	router := mux.NewRouter()

	nower := mytime.RealNower{}
	uuider := myuuid.RealUUIDer{}

	queue, queueCleanup, err := myqueue.New(c)
	if err != nil {
		log.Fatalf("Error creating task queue: %s", err)
	}
	defer queueCleanup()

	pubsub, pubsubCleanup, err := mypubsub.New(c)
	if err != nil {
		log.Fatalf("Error creating pubsub: %s", err)
	}
	defer pubsubCleanup()

	publisher, publisherCleanup, err := mypublisher.New(c, pubsub, queue, nower)
	if err != nil {
		log.Fatalf("Error creating publisher: %s", err)
	}
	defer publisherCleanup()
	publisher.RegisterEndpoints(c, router)

	backendClient := commercetools.NewClient(commercetools.Config{
		APIURL:     mandatoryEnv("CT_API_URL"),
		ProjectKey: mandatoryEnv("CT_PROJECT_KEY"),
		AuthToken:  mandatoryEnv("CT_AUTH_TOKEN"),
	}, myhttpclient.New())

	gateway := braintree.NewAdapter(backendClient, uuider)

	purchaseStore, purchaseStoreCleanup, err := mystore.New[checkoutbraintree.PurchaseContext](c)
	if err != nil {
		log.Fatalf("Error creating purchase store: %s", err)
	}
	defer purchaseStoreCleanup()

	checkoutService, err := checkoutbraintree.NewWebService(checkoutbraintree.Config{
		MerchantID: os.Getenv("BT_MERCHANT_ID"),
	}, gateway, backendClient, purchaseStore, uuider, nower, pubsub, publisher)
	if err != nil {
		log.Fatalf("Error creating checkout service: %s", err)
	}
	err = checkoutService.RegisterEndpoints(c, router)
	if err != nil {
		log.Fatalf("Error registering checkout service: %s", err)
	}

	startWebServerBlocking(router)
}

func mandatoryEnv(name string) string {
	value := os.Getenv(name)
	if value == "" {
		log.Fatalf("Missing mandatory env var %s", name)
	}

	return value
}

func startWebServerBlocking(router *mux.Router) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting webserver on port %s (try http://localhost:%s)", port, port)
	err := http.ListenAndServe(fmt.Sprintf(":%s", port), router)
	if err != nil {
		log.Fatalf("Error starting webserver on port %s: %s", port, err)
	}
}
