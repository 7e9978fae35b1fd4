package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"math"
	"time"

	"github.com/islasuds/wholesale/internal/dal/interfaces/iapplicationrepo"
	"github.com/spf13/viper"
)

// broker is the slice of the message client the worker uses.
type broker interface {
	Publish(routingKey string, contentType string, body []byte) error
}

// Worker forwards pending wholesale applications to the CRM queue. The CRM
// itself is an external collaborator; the portal only guarantees delivery
// into the queue, with retries.
type Worker struct {
	applications iapplicationrepo.IApplicationRepository
	broker       broker
	queue        string
	pollInterval time.Duration
	batchSize    int
	stopCh       chan struct{}
}

// NewWorker creates a new application forwarding worker.
func NewWorker(applications iapplicationrepo.IApplicationRepository, broker broker) *Worker {
	queue := viper.GetString("rabbitmq.applications.queue")
	if queue == "" {
		queue = "wholesale.applications"
	}

	pollIntervalSeconds := viper.GetInt("rabbitmq.applications.poll_interval_seconds")
	if pollIntervalSeconds == 0 {
		pollIntervalSeconds = 10
	}

	batchSize := viper.GetInt("rabbitmq.applications.batch_size")
	if batchSize == 0 {
		batchSize = 100
	}

	return &Worker{
		applications: applications,
		broker:       broker,
		queue:        queue,
		pollInterval: time.Duration(pollIntervalSeconds) * time.Second,
		batchSize:    batchSize,
		stopCh:       make(chan struct{}),
	}
}

// Start begins forwarding pending applications.
func (w *Worker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	slog.Info("Application forwarding worker started",
		"queue", w.queue,
		"poll_interval", w.pollInterval,
		"batch_size", w.batchSize,
	)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Application forwarding worker shutting down")

			return
		case <-w.stopCh:
			slog.Info("Application forwarding worker stopped")

			return
		case <-ticker.C:
			w.forwardApplications(ctx)
		}
	}
}

// Stop stops the worker.
func (w *Worker) Stop() {
	close(w.stopCh)
}

// forwardApplications publishes pending applications and schedules retries
// with exponential backoff on failure.
func (w *Worker) forwardApplications(ctx context.Context) {
	pending, err := w.applications.GetPending(ctx, w.batchSize)
	if err != nil {
		slog.Error("Failed to get pending applications", "error", err)

		return
	}

	if len(pending) == 0 {
		return
	}

	slog.Info("Forwarding wholesale applications", "count", len(pending))

	for _, app := range pending {
		payload, err := json.Marshal(app)
		if err != nil {
			slog.Error("Failed to marshal application", "application_id", app.ID, "error", err)

			continue
		}

		if err := w.broker.Publish(w.queue, "application/json", payload); err != nil {
			newRetryCount := app.RetryCount + 1
			backoffSeconds := math.Pow(2, float64(newRetryCount)) * 30 // 60s, 120s, 240s, etc.
			nextRetryAt := time.Now().Add(time.Duration(backoffSeconds) * time.Second)

			slog.Warn("Failed to publish application, will retry",
				"application_id", app.ID,
				"retry_count", newRetryCount,
				"next_retry", nextRetryAt,
				"error", err,
			)

			if err := w.applications.UpdateRetry(ctx, app.ID, newRetryCount, err.Error(), nextRetryAt); err != nil {
				slog.Error("Failed to update retry information", "application_id", app.ID, "error", err)
			}

			continue
		}

		if err := w.applications.MarkSent(ctx, app.ID); err != nil {
			slog.Error("Failed to mark application sent", "application_id", app.ID, "error", err)
		} else {
			slog.Info("Application forwarded to CRM queue", "application_id", app.ID)
		}
	}
}
