package httptransport

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/islasuds/wholesale/internal/service/models/wholesaleorder"
	"github.com/islasuds/wholesale/internal/service/services/portalsvc"
	"github.com/islasuds/wholesale/internal/session"
	"github.com/islasuds/wholesale/internal/transport/http/callback"
	"github.com/islasuds/wholesale/internal/transport/http/dashboard"
	listorders "github.com/islasuds/wholesale/internal/transport/http/list_orders"
	"github.com/islasuds/wholesale/internal/transport/http/logout"
	"github.com/islasuds/wholesale/internal/transport/http/register"
	"github.com/islasuds/wholesale/pkg/http/middleware/trace"
	"github.com/islasuds/wholesale/pkg/logger"
	"github.com/spf13/viper"
)

type service interface {
	HandleCallback(ctx context.Context, sess portalsvc.Session) portalsvc.Redirect
	Logout(ctx context.Context, sess portalsvc.Session) portalsvc.Redirect
	ListOrders(ctx context.Context, sess portalsvc.Session, after string) (wholesaleorder.Page, *portalsvc.Redirect)
	Dashboard(ctx context.Context, sess portalsvc.Session) (portalsvc.DashboardData, *portalsvc.Redirect)
	Register(ctx context.Context, form portalsvc.RegistrationForm) portalsvc.RegistrationResult
}

type HTTPTransport struct {
	server   *http.Server
	router   *chi.Mux
	service  service
	sessions *session.Store
}

func NewHTTPTransport(service service, sessions *session.Store) *HTTPTransport {
	router := newRouter()
	server := newServer(router)
	return &HTTPTransport{
		server:   server,
		router:   router,
		service:  service,
		sessions: sessions,
	}
}

func (h *HTTPTransport) Run() error {
	return h.server.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (h *HTTPTransport) Shutdown(ctx context.Context) error {
	return h.server.Shutdown(ctx)
}

// RegisterRoutes registers the wholesale portal routes.
func (h *HTTPTransport) RegisterRoutes() {
	h.router.Route("/wholesale", func(r chi.Router) {
		r.Get("/login/callback", h.callback)
		r.Get("/logout", h.logout)
		r.Post("/logout", h.logout)
		r.Get("/orders", h.listOrders)
		r.Get("/dashboard", h.dashboard)
		r.Get("/register", h.registerForm)
		r.Post("/register", h.register)
	})
}

func (h *HTTPTransport) callback(w http.ResponseWriter, r *http.Request) {
	callback.Handle(w, r, h.service, h.sessions)
}

func (h *HTTPTransport) logout(w http.ResponseWriter, r *http.Request) {
	logout.Handle(w, r, h.service, h.sessions)
}

func (h *HTTPTransport) listOrders(w http.ResponseWriter, r *http.Request) {
	listorders.Handle(w, r, h.service, h.sessions)
}

func (h *HTTPTransport) dashboard(w http.ResponseWriter, r *http.Request) {
	dashboard.Handle(w, r, h.service, h.sessions)
}

func (h *HTTPTransport) registerForm(w http.ResponseWriter, r *http.Request) {
	register.HandleForm(w, r)
}

func (h *HTTPTransport) register(w http.ResponseWriter, r *http.Request) {
	register.Handle(w, r, h.service)
}

func newRouter() *chi.Mux {
	router := chi.NewMux()
	router.Use(middleware.RequestID)
	router.Use(logger.NewLoggerMiddleware(slog.Default()))
	router.Use(trace.NewTraceMiddleware)

	allowedOrigins := viper.GetStringSlice("server.http.cors.allowed_origins")
	allowedMethods := viper.GetStringSlice("server.http.cors.allowed_methods")
	allowedHeaders := viper.GetStringSlice("server.http.cors.allowed_headers")
	exposedHeaders := viper.GetStringSlice("server.http.cors.exposed_headers")
	allowCredentials := viper.GetBool("server.http.cors.allow_credentials")
	maxAge := viper.GetInt("server.http.cors.max_age")

	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   allowedMethods,
		AllowedHeaders:   allowedHeaders,
		ExposedHeaders:   exposedHeaders,
		AllowCredentials: allowCredentials,
		MaxAge:           maxAge,
	})

	router.Use(c.Handler)

	return router
}

func newServer(router http.Handler) *http.Server {
	return &http.Server{
		Addr:    "0.0.0.0:" + viper.GetString("server.http.port"),
		Handler: router,
	}
}
