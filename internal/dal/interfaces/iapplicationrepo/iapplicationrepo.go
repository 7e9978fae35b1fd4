package iapplicationrepo

import (
	"context"
	"time"

	"github.com/islasuds/wholesale/internal/service/models/application"
)

// IApplicationRepository defines the interface for wholesale application storage.
type IApplicationRepository interface {
	// Insert stores a new application and returns its id
	Insert(ctx context.Context, app application.Application) (int64, error)

	// GetPending retrieves applications that are ready to be forwarded
	GetPending(ctx context.Context, limit int) ([]application.Application, error)

	// MarkSent flags an application as delivered to the CRM queue
	MarkSent(ctx context.Context, id int64) error

	// UpdateRetry updates retry count and error information
	UpdateRetry(
		ctx context.Context,
		id int64,
		retryCount int,
		lastError string,
		nextRetryAt time.Time,
	) error
}
