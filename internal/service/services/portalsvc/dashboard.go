package portalsvc

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/islasuds/wholesale/internal/routes"
	"github.com/islasuds/wholesale/internal/service/models/customer"
)

// DashboardData is the customer summary behind the portal's landing page.
type DashboardData struct {
	CustomerID string            `json:"customerId"`
	FirstName  string            `json:"firstName"`
	LastName   string            `json:"lastName"`
	Company    *customer.Company `json:"company,omitempty"`
}

// Dashboard returns the logged-in customer's summary, re-verifying B2B status
// against the provider. A customer whose company association has been removed
// since login is logged out and rejected. A provider failure degrades to a
// summary with only the session's customer id.
func (s *PortalService) Dashboard(ctx context.Context, sess Session) (DashboardData, *Redirect) {
	customerID, redirect := s.RequireCustomer(sess)
	if redirect != nil {
		return DashboardData{}, redirect
	}

	data, err := s.identity.Query(ctx, customerDocument, nil)
	if err != nil {
		slog.Warn("dashboard customer query failed, serving session data only", "error", err)

		return DashboardData{CustomerID: customerID}, nil
	}

	var payload customerData
	if err := json.Unmarshal(data, &payload); err != nil || payload.Customer == nil {
		slog.Warn("dashboard customer query returned no payload, serving session data only")

		return DashboardData{CustomerID: customerID}, nil
	}

	company := payload.Customer.B2BCompany()
	if company == nil {
		sess.Unset()
		slog.Info("customer lost company association, logging out", "customer_id", customerID)

		return DashboardData{}, &Redirect{Location: routes.LoginWithError(routes.ErrNotB2B)}
	}

	return DashboardData{
		CustomerID: payload.Customer.ID,
		FirstName:  payload.Customer.FirstName,
		LastName:   payload.Customer.LastName,
		Company:    company,
	}, nil
}
