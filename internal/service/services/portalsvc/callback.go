package portalsvc

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/islasuds/wholesale/internal/routes"
	"github.com/islasuds/wholesale/internal/service/models/customer"
)

const customerDocument = `query CallbackCustomer {
  customer {
    id
    firstName
    lastName
    companyContacts(first: 1) {
      edges {
        node {
          company {
            id
            name
          }
        }
      }
    }
  }
}`

type customerData struct {
	Customer *customer.Customer `json:"customer"`
}

// HandleCallback converts a completed OAuth exchange into a session decision.
// Four terminal outcomes: provider failure and missing payload send the
// visitor back to login with the session untouched; a B2B customer is
// admitted; a B2C customer is rejected and any stale login is cleared.
// The company check runs exactly once, after the query resolves and before
// any session mutation.
func (s *PortalService) HandleCallback(ctx context.Context, sess Session) Redirect {
	data, err := s.identity.Query(ctx, customerDocument, nil)
	if err != nil {
		slog.Error("identity query failed during login callback", "error", err)

		return Redirect{Location: routes.LoginWithError(routes.ErrAuthFailed)}
	}

	var payload customerData
	if err := json.Unmarshal(data, &payload); err != nil || payload.Customer == nil {
		slog.Warn("login callback returned no customer payload")

		return Redirect{Location: routes.Login}
	}

	company := payload.Customer.B2BCompany()
	if company == nil {
		sess.Unset()
		slog.Info("rejected retail customer at wholesale login", "customer_id", payload.Customer.ID)

		return Redirect{Location: routes.LoginWithError(routes.ErrNotB2B)}
	}

	sess.Set(payload.Customer.ID)
	slog.Info("wholesale customer logged in",
		"customer_id", payload.Customer.ID,
		"company_id", company.ID,
	)

	return Redirect{Location: routes.Dashboard}
}
