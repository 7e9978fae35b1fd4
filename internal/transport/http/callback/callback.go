package callback

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/islasuds/wholesale/internal/service/services/portalsvc"
	"github.com/islasuds/wholesale/internal/session"
)

// service is an interface for the service layer.
type service interface {
	HandleCallback(ctx context.Context, sess portalsvc.Session) portalsvc.Redirect
}

// Handle finishes the OAuth login: the service decides the session contents
// and the redirect, then the session is committed so the Set-Cookie header
// rides along with the redirect response.
func Handle(w http.ResponseWriter, r *http.Request, service service, sessions *session.Store) {
	sess := sessions.Load(r.Context(), r)

	redirect := service.HandleCallback(r.Context(), sess)

	if err := sess.Commit(r.Context(), w); err != nil {
		slog.Error("Error committing session after login callback", "error", err)
	}

	http.Redirect(w, r, redirect.Location, http.StatusFound)
}
