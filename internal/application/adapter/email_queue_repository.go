// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/cashflowd/backend/internal/domain/entity"
)

// EmailQueueRepository defines the interface for email queue persistence operations.
type EmailQueueRepository interface {
	// Create inserts a new email job into the queue.
	Create(ctx context.Context, job *entity.EmailJob) error

	// Update updates an existing email job.
	Update(ctx context.Context, job *entity.EmailJob) error

	// GetPendingJobs retrieves up to limit pending jobs whose scheduled
	// time has passed.
	GetPendingJobs(ctx context.Context, limit int) ([]*entity.EmailJob, error)

	// ExistsByDedupeKey checks whether a job with the dedupe key was ever
	// queued, regardless of its status.
	ExistsByDedupeKey(ctx context.Context, dedupeKey string) (bool, error)
}

// SendEmailInput holds the rendered email ready for delivery.
type SendEmailInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult holds the provider's response for a sent email.
type SendEmailResult struct {
	ProviderID string
}

// EmailSender defines the interface for the email delivery provider.
type EmailSender interface {
	// Send delivers a single email.
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}
