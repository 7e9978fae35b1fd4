package app

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/islasuds/wholesale/internal/dal/postgres"
	"github.com/islasuds/wholesale/internal/dal/rabbitmq"
	applicationrepo "github.com/islasuds/wholesale/internal/dal/repositories/application/postgres"
	sessionrepo "github.com/islasuds/wholesale/internal/dal/repositories/session/postgres"
	"github.com/islasuds/wholesale/internal/identity"
	"github.com/islasuds/wholesale/internal/otel"
	"github.com/islasuds/wholesale/internal/service/services/portalsvc"
	"github.com/islasuds/wholesale/internal/session"
	httptransport "github.com/islasuds/wholesale/internal/transport/http"
	"github.com/islasuds/wholesale/internal/worker/notify"
	"github.com/spf13/viper"
)

// App represents the application.
type App struct {
	portalSvc      *portalsvc.PortalService
	transport      *httptransport.HTTPTransport
	notifyWorker   *notify.Worker
	postgresClient *postgres.Client
	rabbitMqClient *rabbitmq.Client
	otelController *otel.OtelController
}

// MustNewApp creates a new application.
func MustNewApp() *App {
	otelController := otel.MustInitOtel()
	postgresClient := postgres.MustNewClient()
	rabbitMqClient := rabbitmq.MustNewClient()

	if _, err := rabbitMqClient.DeclareQueue(rabbitmq.DeclareQueueConfig{
		Name:    viper.GetString("rabbitmq.applications.queue"),
		Durable: true,
	}); err != nil {
		panic(err)
	}

	applicationRepository := applicationrepo.NewApplicationRepository(postgresClient)
	sessionRepository := sessionrepo.NewSessionRepository(postgresClient)

	identityClient := identity.NewClient(
		viper.GetString("identity.endpoint"),
		viper.GetString("identity.token"),
	)

	sessions := session.NewStore(sessionRepository)

	portalSvc := portalsvc.MustNewPortalService(
		portalsvc.WithIdentityProvider(identityClient),
		portalsvc.WithApplicationRepository(applicationRepository),
	)

	transport := httptransport.NewHTTPTransport(portalSvc, sessions)
	transport.RegisterRoutes()

	notifyWorker := notify.NewWorker(applicationRepository, rabbitMqClient)

	return &App{
		portalSvc:      portalSvc,
		transport:      transport,
		notifyWorker:   notifyWorker,
		postgresClient: postgresClient,
		rabbitMqClient: rabbitMqClient,
		otelController: otelController,
	}
}

// Run starts the application.
// Tracks interrupt signal to gracefully shut down the application.
func (a *App) Run() {
	// Create a channel to receive OS signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	workerCtx, cancelWorker := context.WithCancel(context.Background())
	defer cancelWorker()

	go func() {
		slog.Info("Starting HTTP server")
		if err := a.transport.Run(); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()

	go func() {
		slog.Info("Starting application forwarding worker")
		a.notifyWorker.Start(workerCtx)
	}()

	<-stop
	slog.Info("Shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.transport.Shutdown(ctx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	} else {
		slog.Info("HTTP server stopped gracefully")
	}

	a.notifyWorker.Stop()

	if err := a.rabbitMqClient.Close(); err != nil {
		slog.Error("RabbitMQ connection close error", "error", err)
	} else {
		slog.Info("RabbitMQ connection closed gracefully")
	}

	a.postgresClient.Close()
	slog.Info("Database connection closed gracefully")

	if err := a.otelController.Shutdown(); err != nil {
		slog.Error("Trace provider shutdown error", "error", err)
	}

	slog.Info("Application shutdown complete")
}
