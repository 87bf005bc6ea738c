package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/mintusarker/shopping-site-server-code/api"
	"github.com/mintusarker/shopping-site-server-code/config"
	"github.com/mintusarker/shopping-site-server-code/internal/auth"
	"github.com/mintusarker/shopping-site-server-code/internal/billing"
	"github.com/mintusarker/shopping-site-server-code/internal/repository"
	"github.com/mintusarker/shopping-site-server-code/internal/service/payment"
	"github.com/mintusarker/shopping-site-server-code/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := store.Connect(ctx, cfg.MongoURI, cfg.DatabaseName)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err := client.Close(context.Background()); err != nil {
			log.Printf("mongo disconnect: %v", err)
		}
	}()
	log.Printf("connected to mongo, database %s", cfg.DatabaseName)

	db := client.Database()
	products := repository.NewProductRepository(db)
	bookings := repository.NewBookingRepository(db)
	payments := repository.NewPaymentRepository(db)
	users := repository.NewUserRepository(db)
	newArrivals := repository.NewCatalogRepository(db, repository.CollectionNewArrivals)
	topSelling := repository.NewCatalogRepository(db, repository.CollectionTopSelling)

	tokens := auth.NewTokenService(cfg.AccessTokenSecret)
	stripeClient := billing.NewStripeClient(cfg.StripeSecretKey)
	paymentSvc := payment.NewService(payments, bookings)

	router := api.NewRouter(cfg.AllowOrigins, tokens, api.Handlers{
		Auth:        api.NewAuthHandler(tokens, users),
		Products:    api.NewProductHandler(products),
		Bookings:    api.NewBookingHandler(bookings),
		Payments:    api.NewPaymentHandler(paymentSvc, payments, stripeClient),
		Users:       api.NewUserHandler(users),
		NewArrivals: api.NewCatalogHandler(newArrivals),
		TopSelling:  api.NewCatalogHandler(topSelling),
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	log.Printf("server running on port %s", cfg.Port)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}
}
