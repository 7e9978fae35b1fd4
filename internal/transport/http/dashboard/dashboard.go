package dashboard

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/islasuds/wholesale/internal/service/services/portalsvc"
	"github.com/islasuds/wholesale/internal/session"
)

// service is an interface for the service layer.
type service interface {
	Dashboard(ctx context.Context, sess portalsvc.Session) (portalsvc.DashboardData, *portalsvc.Redirect)
}

// Handle serves the portal landing page data. The service may log the
// customer out when B2B re-verification fails, so the session is committed
// before any redirect.
func Handle(w http.ResponseWriter, r *http.Request, service service, sessions *session.Store) {
	sess := sessions.Load(r.Context(), r)

	data, redirect := service.Dashboard(r.Context(), sess)

	if err := sess.Commit(r.Context(), w); err != nil {
		slog.Error("Error committing session after dashboard", "error", err)
	}

	if redirect != nil {
		http.Redirect(w, r, redirect.Location, http.StatusFound)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Error sending response for dashboard", "error", err)
	}
}
