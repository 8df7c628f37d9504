package main

import (
	"net/http"
	"os"

	"parksmart/internal/api"
	"parksmart/internal/auth"
	"parksmart/internal/catalog"
	"parksmart/internal/config"
	"parksmart/internal/logging"
	"parksmart/internal/metrics"
	"parksmart/internal/repository"
	"parksmart/internal/service"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}
	logger := logging.New(cfg.Logging)
	metrics.Register()

	store, err := repository.NewStore(cfg.Store.Path)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open store")
	}
	defer store.Close()

	lots := catalog.DefaultStore()
	bookingRepo := repository.NewBookingRepository(store)

	var sms *service.SMSSender
	if cfg.Notify.SMSEnabled {
		sms = service.NewSMSSender(cfg.Notify.TwilioAccountSID, cfg.Notify.TwilioAuthToken, cfg.Notify.TwilioFromNumber)
	}
	notifySvc := service.NewNotifyService(
		notifyChannel(cfg.Notify), store, sms,
		cfg.Notify.SenderName, cfg.Notify.SenderEmail, logger,
	)
	bookingSvc := service.NewBookingService(lots, bookingRepo, notifySvc, cfg.Booking.ResetAfter, logger)

	if cfg.Jobs.Enabled {
		jobSvc := service.NewJobService(bookingRepo, store, cfg.Jobs.NotificationRetention, logger)
		c := cron.New()
		if _, err := c.AddFunc(cfg.Jobs.Schedule, jobSvc.Run); err != nil {
			logger.Fatal().Err(err).Str("schedule", cfg.Jobs.Schedule).Msg("invalid jobs schedule")
		}
		c.Start()
		defer c.Stop()
	}

	verifier := buildVerifier(cfg.Auth)
	secret := []byte(cfg.Auth.JWTSecret)

	lotHandler := api.NewLotHandler(lots)
	bookingHandler := api.NewBookingHandler(bookingSvc, notifySvc)
	authHandler := api.NewAuthHandler(verifier, secret)

	r := mux.NewRouter()
	r.Use(auth.IdentityMiddleware(secret))

	r.HandleFunc("/api/lots", lotHandler.ListLots).Methods("GET")
	r.HandleFunc("/api/lots/{id}", lotHandler.GetLot).Methods("GET")
	r.HandleFunc("/api/quote", lotHandler.Quote).Methods("POST")
	r.HandleFunc("/api/bookings", bookingHandler.CreateBooking).Methods("POST")
	r.HandleFunc("/api/bookings", bookingHandler.ListBookings).Methods("GET")
	r.HandleFunc("/api/bookings/{code}/notification", bookingHandler.GetNotificationOutcome).Methods("GET")
	r.HandleFunc("/api/notifications", bookingHandler.ListNotifications).Methods("GET")
	r.HandleFunc("/api/login", authHandler.Login).Methods("POST")

	r.Handle("/metrics", promhttp.Handler()).Methods("GET")
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	}).Methods("GET")

	cors := handlers.CORS(
		handlers.AllowedOrigins(cfg.Server.AllowedOrigins),
		handlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization", api.SessionHeader}),
		handlers.ExposedHeaders([]string{api.SessionHeader}),
	)

	handler := cors(handlers.CombinedLoggingHandler(os.Stdout, r))

	logger.Info().Str("port", cfg.Server.Port).Msg("server running")
	if err := http.ListenAndServe(":"+cfg.Server.Port, handler); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}

// notifyChannel picks the single active delivery transport. Returning nil
// leaves the dispatcher in simulated mode.
func notifyChannel(cfg config.NotifyConfig) service.Channel {
	switch cfg.Channel {
	case "sendgrid":
		return service.NewSendGridChannel(cfg.SendGridAPIKey)
	case "smtp":
		return service.NewSMTPChannel(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
	case "relay":
		return service.NewRelayChannel(cfg.RelayURL)
	default:
		return nil
	}
}

// buildVerifier selects the credential-verifier variant: the hard-coded
// demo credential when one is provisioned, otherwise the delegated
// identity-provider token check.
func buildVerifier(cfg config.AuthConfig) auth.Verifier {
	if cfg.DemoPasswordHash != "" {
		return auth.NewStaticVerifier(cfg.DemoEmail, cfg.DemoName, cfg.DemoPasswordHash)
	}
	return auth.NewDelegatedVerifier(cfg.JWTSecret)
}
