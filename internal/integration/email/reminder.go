// Package email provides bill reminder scheduling and delivery.
package email

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cashflowd/backend/internal/application/adapter"
	"github.com/cashflowd/backend/internal/application/usecase/cashflow"
	"github.com/cashflowd/backend/internal/domain/entity"
	domainerror "github.com/cashflowd/backend/internal/domain/error"
)

// ReminderScheduler scans upcoming bill occurrences and enqueues one
// reminder email per (bill, due date). The dedupe key makes repeated scans
// of overlapping horizons idempotent.
type ReminderScheduler struct {
	queue        adapter.EmailQueueRepository
	billRepo     adapter.RecurringBillRepository
	userRepo     adapter.UserRepository
	horizonDays  int
	scanInterval time.Duration
}

// ReminderConfig holds configuration for the reminder scheduler.
type ReminderConfig struct {
	HorizonDays  int
	ScanInterval time.Duration
}

// DefaultReminderConfig returns the default reminder configuration.
func DefaultReminderConfig() ReminderConfig {
	return ReminderConfig{
		HorizonDays:  3,
		ScanInterval: 6 * time.Hour,
	}
}

// NewReminderScheduler creates a new reminder scheduler.
func NewReminderScheduler(
	queue adapter.EmailQueueRepository,
	billRepo adapter.RecurringBillRepository,
	userRepo adapter.UserRepository,
	config ReminderConfig,
) *ReminderScheduler {
	return &ReminderScheduler{
		queue:        queue,
		billRepo:     billRepo,
		userRepo:     userRepo,
		horizonDays:  config.HorizonDays,
		scanInterval: config.ScanInterval,
	}
}

// Start begins the scheduler loop. It blocks until the context is cancelled.
func (s *ReminderScheduler) Start(ctx context.Context) {
	slog.Info("Reminder scheduler started",
		"horizon_days", s.horizonDays,
		"scan_interval", s.scanInterval,
	)

	ticker := time.NewTicker(s.scanInterval)
	defer ticker.Stop()

	// Scan immediately on start, then on ticker
	s.ScanOnce(ctx, time.Now().UTC())

	for {
		select {
		case <-ctx.Done():
			slog.Info("Reminder scheduler shutting down")
			return
		case <-ticker.C:
			s.ScanOnce(ctx, time.Now().UTC())
		}
	}
}

// ScanOnce enqueues reminders for every bill occurrence due within the
// horizon for all users who opted into reminders. A failure on one user
// does not abort the scan for the rest.
func (s *ReminderScheduler) ScanOnce(ctx context.Context, now time.Time) {
	recipients, err := s.userRepo.FindReminderRecipients(ctx)
	if err != nil {
		slog.Error("Failed to load reminder recipients", "error", err)
		return
	}

	start := now.Truncate(24 * time.Hour)
	end := start.AddDate(0, 0, s.horizonDays)

	queued := 0
	for _, user := range recipients {
		n, err := s.scanUser(ctx, user, start, end)
		if err != nil {
			slog.Error("Reminder scan failed for user",
				"user_id", user.ID,
				"error", err,
			)
			continue
		}
		queued += n
	}

	if queued > 0 {
		slog.Info("Bill reminders queued", "count", queued)
	}
}

func (s *ReminderScheduler) scanUser(ctx context.Context, user *entity.User, start, end time.Time) (int, error) {
	bills, err := s.billRepo.FindActiveByUser(ctx, user.ID)
	if err != nil {
		return 0, err
	}

	queued := 0
	for _, bill := range bills {
		occurrences, err := cashflow.ProjectOccurrences(cashflow.RuleFromBill(bill), start, end)
		if err != nil {
			return queued, err
		}

		for _, occ := range occurrences {
			n, err := s.enqueueReminder(ctx, user, bill, occ.EventDate)
			if err != nil {
				return queued, err
			}
			queued += n
		}
	}

	return queued, nil
}

// enqueueReminder queues a single reminder unless one was already queued
// for the same bill and due date. Returns the number of jobs created (0 or 1).
func (s *ReminderScheduler) enqueueReminder(ctx context.Context, user *entity.User, bill *entity.RecurringBill, dueDate time.Time) (int, error) {
	dedupeKey := reminderDedupeKey(bill, dueDate)

	exists, err := s.queue.ExistsByDedupeKey(ctx, dedupeKey)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, nil
	}

	subject := fmt.Sprintf("Upcoming bill: %s due %s", bill.Name, dueDate.Format("Jan 2"))

	templateData := map[string]interface{}{
		"user_name": user.Name,
		"bill_name": bill.Name,
		"amount":    bill.Amount.StringFixed(2),
		"currency":  user.Currency,
		"due_date":  dueDate.Format("Monday, January 2, 2006"),
	}

	job := entity.NewEmailJob(
		entity.TemplateBillReminder,
		user.Email,
		user.Name,
		subject,
		dedupeKey,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return 0, domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue bill reminder",
			err,
		)
	}

	return 1, nil
}

func reminderDedupeKey(bill *entity.RecurringBill, dueDate time.Time) string {
	return fmt.Sprintf("bill-reminder:%s:%s", bill.ID, dueDate.Format("2006-01-02"))
}
