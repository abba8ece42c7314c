package main

import (
	"carRental/internal/billing"
	"carRental/internal/config"
	"carRental/internal/http-server/handlers/booking/createBooking"
	"carRental/internal/http-server/handlers/booking/decideBooking"
	"carRental/internal/http-server/handlers/booking/deleteBooking"
	"carRental/internal/http-server/handlers/booking/listBranchBookings"
	"carRental/internal/http-server/handlers/booking/listCarBookings"
	"carRental/internal/http-server/handlers/booking/listPendingBookings"
	"carRental/internal/http-server/handlers/booking/listUserBookings"
	"carRental/internal/http-server/handlers/branch/createBranch"
	"carRental/internal/http-server/handlers/car/createCar"
	"carRental/internal/http-server/handlers/car/listCars"
	"carRental/internal/http-server/handlers/journey/deleteJourney"
	"carRental/internal/http-server/handlers/journey/endJourney"
	"carRental/internal/http-server/handlers/journey/listJourneys"
	"carRental/internal/http-server/handlers/journey/startJourney"
	"carRental/internal/http-server/handlers/journey/updateJourney"
	"carRental/internal/http-server/middleware/identity"
	"carRental/internal/http-server/middleware/mwlogger"
	"carRental/internal/lib/logger/handlers/slogpretty"
	"carRental/internal/lib/logger/sl"
	"carRental/internal/storage/postgres"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting car rental", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	storage, err := postgres.InitDB(&cfg.Database, setupPricer(cfg))
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)
	router.Use(cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE"},
		AllowedHeaders: []string{"Content-Type", identity.HeaderUserID, identity.HeaderUserRole},
	}).Handler)
	router.Use(identity.New(log))

	router.Post("/bookings", createBooking.New(log, storage))
	router.Get("/bookings/pending", listPendingBookings.New(log, storage))
	router.Get("/bookings/my", listUserBookings.New(log, storage))
	router.Post("/bookings/{id}/decision", decideBooking.New(log, storage))
	router.Delete("/bookings/{id}", deleteBooking.New(log, storage))

	router.Post("/branches", createBranch.New(log, storage))
	router.Get("/branches/{id}/bookings", listBranchBookings.New(log, storage))

	router.Post("/cars", createCar.New(log, storage))
	router.Get("/cars", listCars.New(log, storage))
	router.Get("/cars/{id}/bookings", listCarBookings.New(log, storage))
	router.Post("/cars/{id}/journeys", startJourney.New(log, storage))

	router.Get("/journeys", listJourneys.New(log, storage))
	router.Post("/journeys/{id}/end", endJourney.New(log, storage))
	router.Patch("/journeys/{id}", updateJourney.New(log, storage))
	router.Delete("/journeys/{id}", deleteJourney.New(log, storage))

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		if err = srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = storage.Close(); err != nil {
		log.Error("failed to close postgres connection", sl.Err(err))
	}

	log.Info("postgres connection closed")
}

func setupPricer(cfg *config.Config) billing.Pricer {
	if cfg.Billing.Mode == "flat" {
		return billing.Flat{Amount: cfg.Billing.FlatAmount}
	}
	return billing.PerDay{}
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
