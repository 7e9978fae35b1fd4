package logout

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/islasuds/wholesale/internal/service/services/portalsvc"
	"github.com/islasuds/wholesale/internal/session"
)

// service is an interface for the service layer.
type service interface {
	Logout(ctx context.Context, sess portalsvc.Session) portalsvc.Redirect
}

// Handle clears the session and sends the visitor back to the login page.
func Handle(w http.ResponseWriter, r *http.Request, service service, sessions *session.Store) {
	sess := sessions.Load(r.Context(), r)

	redirect := service.Logout(r.Context(), sess)

	if err := sess.Commit(r.Context(), w); err != nil {
		slog.Error("Error committing session after logout", "error", err)
	}

	http.Redirect(w, r, redirect.Location, http.StatusFound)
}
