package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/islasuds/wholesale/internal/dal/interfaces/isessionrepo"
	"github.com/islasuds/wholesale/internal/dal/postgres"
	"github.com/jackc/pgx/v5"
)

// SessionRepository implements session persistence for PostgreSQL.
type SessionRepository struct {
	pgClient *postgres.Client
}

// NewSessionRepository creates a new session repository.
func NewSessionRepository(pgClient *postgres.Client) *SessionRepository {
	return &SessionRepository{
		pgClient: pgClient,
	}
}

// Get returns the customer id for a non-expired session token.
func (r *SessionRepository) Get(ctx context.Context, token string) (string, error) {
	query, args, err := sq.Select("customer_id").
		From("wholesale_sessions").
		Where(sq.Eq{"token": token}).
		Where(sq.Gt{"expires_at": time.Now()}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to build session select query: %w", err)
	}

	var customerID string
	err = r.pgClient.Pool().QueryRow(ctx, query, args...).Scan(&customerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", isessionrepo.ErrNotFound
		}

		return "", fmt.Errorf("failed to query session: %w", err)
	}

	return customerID, nil
}

// Save inserts or refreshes a session row.
func (r *SessionRepository) Save(
	ctx context.Context,
	token string,
	customerID string,
	expiresAt time.Time,
) error {
	now := time.Now()

	query, args, err := sq.Insert("wholesale_sessions").
		Columns("token", "customer_id", "created_at", "updated_at", "expires_at").
		Values(token, customerID, now, now, expiresAt).
		Suffix(`ON CONFLICT (token) DO UPDATE
			SET customer_id = EXCLUDED.customer_id,
			    updated_at = EXCLUDED.updated_at,
			    expires_at = EXCLUDED.expires_at`).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build session insert query: %w", err)
	}

	if _, err := r.pgClient.Pool().Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

// Delete removes a session row.
func (r *SessionRepository) Delete(ctx context.Context, token string) error {
	query, args, err := sq.Delete("wholesale_sessions").
		Where(sq.Eq{"token": token}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build session delete query: %w", err)
	}

	if _, err := r.pgClient.Pool().Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}
