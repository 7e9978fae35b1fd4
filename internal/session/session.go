package session

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/islasuds/wholesale/internal/dal/interfaces/isessionrepo"
	"github.com/spf13/viper"
)

const (
	defaultCookieName = "islasuds_wholesale_session"
	defaultTTLHours   = 24
)

// Store loads and commits browser sessions. The cookie carries only an opaque
// random token; the customer id lives in a server-side row behind
// isessionrepo.ISessionRepository.
type Store struct {
	repo       isessionrepo.ISessionRepository
	cookieName string
	ttl        time.Duration
	secure     bool
}

// NewStore creates a session store configured from viper.
func NewStore(repo isessionrepo.ISessionRepository) *Store {
	cookieName := viper.GetString("session.cookie_name")
	if cookieName == "" {
		cookieName = defaultCookieName
	}

	ttlHours := viper.GetInt("session.ttl_hours")
	if ttlHours == 0 {
		ttlHours = defaultTTLHours
	}

	return &Store{
		repo:       repo,
		cookieName: cookieName,
		ttl:        time.Duration(ttlHours) * time.Hour,
		secure:     viper.GetBool("session.cookie_secure"),
	}
}

// Load resolves the request's session. A missing cookie, an unknown token or
// a repository failure all yield an anonymous session; the caller cannot tell
// the difference and does not need to.
func (s *Store) Load(ctx context.Context, r *http.Request) *Session {
	sess := &Session{store: s}

	cookie, err := r.Cookie(s.cookieName)
	if err != nil || cookie.Value == "" {
		return sess
	}
	sess.token = cookie.Value

	customerID, err := s.repo.Get(ctx, cookie.Value)
	if err != nil {
		if !errors.Is(err, isessionrepo.ErrNotFound) {
			slog.Warn("session lookup failed, treating request as anonymous", "error", err)
		}

		return sess
	}
	sess.customerID = customerID

	return sess
}

// Session is one browser client's session. It holds at most a customer id.
// Mutations are buffered until Commit.
type Session struct {
	store      *Store
	token      string
	customerID string
	dirty      bool
}

// CustomerID returns the stored customer id, or "" for an anonymous session.
func (s *Session) CustomerID() string {
	return s.customerID
}

// Set stores the customer id. Takes effect on Commit.
func (s *Session) Set(customerID string) {
	s.customerID = customerID
	s.dirty = true
}

// Unset clears the session. Takes effect on Commit.
func (s *Session) Unset() {
	s.customerID = ""
	s.dirty = true
}

// Commit persists buffered mutations and writes the matching Set-Cookie
// header. Committing an untouched session is a no-op, so handlers can commit
// unconditionally before responding.
func (s *Session) Commit(ctx context.Context, w http.ResponseWriter) error {
	if !s.dirty {
		return nil
	}

	if s.customerID == "" {
		if s.token != "" {
			if err := s.store.repo.Delete(ctx, s.token); err != nil {
				return err
			}
			s.token = ""
		}
		s.setCookie(w, "", -1)
		s.dirty = false

		return nil
	}

	if s.token == "" {
		s.token = uuid.NewString()
	}
	if err := s.store.repo.Save(ctx, s.token, s.customerID, time.Now().Add(s.store.ttl)); err != nil {
		return err
	}
	s.setCookie(w, s.token, int(s.store.ttl.Seconds()))
	s.dirty = false

	return nil
}

func (s *Session) setCookie(w http.ResponseWriter, value string, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.store.cookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   s.store.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
