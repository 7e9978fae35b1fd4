package portalsvc

import (
	"context"
	"encoding/json"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/islasuds/wholesale/internal/dal/interfaces/iapplicationrepo"
	"github.com/islasuds/wholesale/internal/routes"
)

// identityProvider is the portal's view of the customer-account service.
type identityProvider interface {
	Query(ctx context.Context, document string, variables map[string]any) (json.RawMessage, error)
	Logout(ctx context.Context) error
}

// Session is the narrow view of the browser session the portal needs.
// Committing is the transport's job; the portal only decides the contents.
type Session interface {
	CustomerID() string
	Set(customerID string)
	Unset()
}

// Redirect aborts the current request in favor of a new location. It is a
// value, not a panic: every call site handles it alongside the success path.
type Redirect struct {
	Location string
}

// PortalService implements the wholesale portal's auth and order-data access.
type PortalService struct {
	identity     identityProvider
	applications iapplicationrepo.IApplicationRepository
	validate     *validator.Validate
}

// option is a function that configures the PortalService.
type option func(*PortalService)

// MustNewPortalService creates a new PortalService.
func MustNewPortalService(opts ...option) *PortalService {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	s := &PortalService{validate: validate}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// WithIdentityProvider sets the customer-account client for the PortalService.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithIdentityProvider(identity identityProvider) option {
	return func(s *PortalService) {
		s.identity = identity
	}
}

// WithApplicationRepository sets the wholesale application storage for the PortalService.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithApplicationRepository(repo iapplicationrepo.IApplicationRepository) option {
	return func(s *PortalService) {
		s.applications = repo
	}
}

// RequireCustomer is the gate in front of every protected route: it returns
// the session's customer id, or a login redirect when the session is
// anonymous. It never queries the identity provider.
func (s *PortalService) RequireCustomer(sess Session) (string, *Redirect) {
	customerID := sess.CustomerID()
	if customerID == "" {
		return "", &Redirect{Location: routes.Login}
	}

	return customerID, nil
}
