package application

import "time"

// Status of a wholesale application in the forwarding pipeline.
const (
	StatusPending = "pending"
	StatusSent    = "sent"
)

// Application is a submitted wholesale account request. It is stored
// locally and forwarded to the CRM queue by the notify worker; the CRM
// itself is an external collaborator.
type Application struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	BusinessName string    `json:"businessName"`
	Message      string    `json:"message"`
	Status       string    `json:"status"`
	RetryCount   int       `json:"retryCount"`
	LastError    string    `json:"lastError"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	NextRetryAt  time.Time `json:"nextRetryAt"`
}
