package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"regrelay/config"
	_ "regrelay/docs"
	"regrelay/internal/adapters/administrate"
	"regrelay/internal/adapters/email"
	httpdelivery "regrelay/internal/delivery/http"
	"regrelay/internal/delivery/http/controllers"
	"regrelay/internal/delivery/http/middleware"
	"regrelay/internal/services"
)

// @title Registration Relay API
// @version 1.0
// @description Relay between the public registration page and the Administrate training-management GraphQL API.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}
	logger := config.NewLogger(cfg.Environment)

	client := administrate.NewClient(nil, cfg.ProviderEndpoint, cfg.ProviderToken)

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:          cfg.Email.AWSRegion,
			AccessKeyID:     cfg.Email.AWSAccessKeyID,
			SecretAccessKey: cfg.Email.AWSSecretKey,
		},
	})
	if err != nil {
		log.Fatalf("mailer: %v", err)
	}
	emailSvc := services.NewEmailService(mailer, email.NewTemplateRenderer())

	eventResolver := services.NewEventResolver(client)
	contactResolver := services.NewContactResolver(client, cfg.DefaultAccountID)
	registrationSvc := services.NewRegistrationService(eventResolver, contactResolver, client, emailSvc, logger)
	publisherSvc := services.NewPublisherService(eventResolver, client, cfg.CustomFieldKey)
	diagSvc := services.NewDiagnosticsService(client, cfg.ProviderEndpoint, cfg.ProviderToken)

	mux := httpdelivery.NewRouter(
		controllers.NewRegistrationController(logger, registrationSvc),
		controllers.NewEventController(logger, eventResolver),
		controllers.NewPublishController(logger, publisherSvc, cfg.SiteBase),
		controllers.NewDiagController(logger, diagSvc),
	)
	handler := middleware.CORS(cfg.AllowedOrigins, middleware.LoggingMiddleware(logger, mux))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	go func() {
		logger.Info("listening", "port", cfg.Port, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown", "err", err)
	}
	logger.Info("stopped")
}
