package postgres

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/islasuds/wholesale/internal/dal/postgres"
	"github.com/islasuds/wholesale/internal/service/models/application"
)

// ApplicationRepository implements wholesale application storage for PostgreSQL.
type ApplicationRepository struct {
	pgClient *postgres.Client
}

// NewApplicationRepository creates a new application repository.
func NewApplicationRepository(pgClient *postgres.Client) *ApplicationRepository {
	return &ApplicationRepository{
		pgClient: pgClient,
	}
}

// Insert stores a new application and returns its id.
func (r *ApplicationRepository) Insert(
	ctx context.Context,
	app application.Application,
) (int64, error) {
	now := time.Now()

	query, args, err := sq.Insert("wholesale_applications").
		Columns(
			"name",
			"email",
			"phone",
			"business_name",
			"message",
			"status",
			"retry_count",
			"last_error",
			"created_at",
			"updated_at",
			"next_retry_at",
		).
		Values(
			app.Name,
			app.Email,
			app.Phone,
			app.BusinessName,
			app.Message,
			application.StatusPending,
			0,
			"",
			now,
			now,
			now,
		).
		Suffix("RETURNING id").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build application insert query: %w", err)
	}

	var id int64
	if err := r.pgClient.Pool().QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to insert application: %w", err)
	}

	return id, nil
}

// GetPending retrieves applications that are ready to be forwarded.
func (r *ApplicationRepository) GetPending(
	ctx context.Context,
	limit int,
) ([]application.Application, error) {
	query, args, err := sq.Select(
		"id",
		"name",
		"email",
		"phone",
		"business_name",
		"message",
		"status",
		"retry_count",
		"last_error",
		"created_at",
		"updated_at",
		"next_retry_at",
	).
		From("wholesale_applications").
		Where(sq.Eq{"status": application.StatusPending}).
		Where(sq.LtOrEq{"next_retry_at": time.Now()}).
		OrderBy("created_at ASC").
		Limit(uint64(limit)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build pending applications query: %w", err)
	}

	rows, err := r.pgClient.Pool().Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending applications: %w", err)
	}
	defer rows.Close()

	var result []application.Application
	for rows.Next() {
		var app application.Application
		err := rows.Scan(
			&app.ID,
			&app.Name,
			&app.Email,
			&app.Phone,
			&app.BusinessName,
			&app.Message,
			&app.Status,
			&app.RetryCount,
			&app.LastError,
			&app.CreatedAt,
			&app.UpdatedAt,
			&app.NextRetryAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan application: %w", err)
		}
		result = append(result, app)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}

// MarkSent flags an application as delivered to the CRM queue.
func (r *ApplicationRepository) MarkSent(ctx context.Context, id int64) error {
	query, args, err := sq.Update("wholesale_applications").
		Set("status", application.StatusSent).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build mark sent query: %w", err)
	}

	if _, err := r.pgClient.Pool().Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to mark application sent: %w", err)
	}

	return nil
}

// UpdateRetry updates retry count and error information.
func (r *ApplicationRepository) UpdateRetry(
	ctx context.Context,
	id int64,
	retryCount int,
	lastError string,
	nextRetryAt time.Time,
) error {
	query, args, err := sq.Update("wholesale_applications").
		Set("retry_count", retryCount).
		Set("last_error", lastError).
		Set("next_retry_at", nextRetryAt).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build retry update query: %w", err)
	}

	if _, err := r.pgClient.Pool().Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to update application retry: %w", err)
	}

	return nil
}
