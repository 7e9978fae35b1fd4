package portalsvc

import (
	"context"
	"log/slog"

	"github.com/islasuds/wholesale/internal/routes"
)

// Logout clears the session and invalidates the provider-side login. A failed
// provider logout is logged but never surfaced; the local session is gone
// either way.
func (s *PortalService) Logout(ctx context.Context, sess Session) Redirect {
	sess.Unset()

	if err := s.identity.Logout(ctx); err != nil {
		slog.Warn("identity provider logout failed", "error", err)
	}

	return Redirect{Location: routes.Login}
}
