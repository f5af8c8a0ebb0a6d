// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"courier/internal/ai"
	"courier/internal/config"
	httptransport "courier/internal/http"
	"courier/internal/infra"
	"courier/internal/maps"
	"courier/internal/modules/booking"
	"courier/internal/modules/notify"
	"courier/internal/modules/pricing"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)

	bookingStore := booking.NewStore(dbPool)
	bookingSvc := booking.NewService(bookingStore, booking.Config{
		PreserveRiderOnReopen: cfg.Booking.PreserveRiderOnReopen,
	})

	notifyStore := notify.NewStore(dbPool)
	notifySender := notify.NewQueueSender(redisClient, cfg.Redis.NotifyQueue)
	notifySvc := notify.NewService(notifyStore, notifySender)

	var routes pricing.RouteEstimator
	if cfg.Maps.APIKey != "" {
		routeSvc, err := maps.NewRouteService(cfg.Maps.APIKey)
		if err != nil {
			log.Fatalf("maps init: %v", err)
		}
		routes = routeSvc
	}
	pricingSvc := pricing.NewService(pricing.NewStore(dbPool), routes)

	var assistant ai.NoteSuggester
	if cfg.AI.GeminiKey != "" {
		provider, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey)
		if err != nil {
			log.Fatalf("gemini init: %v", err)
		}
		defer provider.Close()
		assistant = provider
	}

	router := httptransport.NewRouter(httptransport.RouterDeps{
		Booking:   bookingSvc,
		Notify:    notifySvc,
		Pricing:   pricingSvc,
		Assistant: assistant,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: router}

	go func() {
		<-ctx.Done()
		_ = server.Shutdown(context.Background())
	}()

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
