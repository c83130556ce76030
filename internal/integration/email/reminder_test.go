package email

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cashflowd/backend/internal/domain/entity"
	"github.com/cashflowd/backend/internal/integration/email/templates"
)

type fakeEmailQueue struct {
	jobs    []*entity.EmailJob
	failAll bool
}

func (q *fakeEmailQueue) Create(ctx context.Context, job *entity.EmailJob) error {
	if q.failAll {
		return errors.New("queue unavailable")
	}
	q.jobs = append(q.jobs, job)
	return nil
}

func (q *fakeEmailQueue) Update(ctx context.Context, job *entity.EmailJob) error {
	for i, existing := range q.jobs {
		if existing.ID == job.ID {
			q.jobs[i] = job
			return nil
		}
	}
	return errors.New("job not found")
}

func (q *fakeEmailQueue) GetPendingJobs(ctx context.Context, limit int) ([]*entity.EmailJob, error) {
	now := time.Now().UTC()
	var pending []*entity.EmailJob
	for _, job := range q.jobs {
		if job.Status == entity.EmailStatusPending && !job.ScheduledAt.After(now) {
			pending = append(pending, job)
			if len(pending) == limit {
				break
			}
		}
	}
	return pending, nil
}

func (q *fakeEmailQueue) ExistsByDedupeKey(ctx context.Context, dedupeKey string) (bool, error) {
	for _, job := range q.jobs {
		if job.DedupeKey == dedupeKey {
			return true, nil
		}
	}
	return false, nil
}

type fakeBillRepo struct {
	bills []*entity.RecurringBill
}

func (r *fakeBillRepo) Create(ctx context.Context, bill *entity.RecurringBill) error { return nil }
func (r *fakeBillRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.RecurringBill, error) {
	return nil, errors.New("not implemented")
}
func (r *fakeBillRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.RecurringBill, error) {
	return r.bills, nil
}
func (r *fakeBillRepo) FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]*entity.RecurringBill, error) {
	var active []*entity.RecurringBill
	for _, b := range r.bills {
		if b.UserID == userID && b.Active {
			active = append(active, b)
		}
	}
	return active, nil
}
func (r *fakeBillRepo) Update(ctx context.Context, bill *entity.RecurringBill) error { return nil }
func (r *fakeBillRepo) Delete(ctx context.Context, id uuid.UUID) error               { return nil }
func (r *fakeBillRepo) LatestModification(ctx context.Context, userID uuid.UUID) (time.Time, error) {
	return time.Time{}, nil
}

type fakeUserRepo struct {
	recipients []*entity.User
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error { return nil }
func (r *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return nil, errors.New("not implemented")
}
func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return nil, errors.New("not implemented")
}
func (r *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return false, nil
}
func (r *fakeUserRepo) FindReminderRecipients(ctx context.Context) ([]*entity.User, error) {
	return r.recipients, nil
}

func reminderFixture() (*fakeEmailQueue, *ReminderScheduler, *entity.User, *entity.RecurringBill) {
	user := &entity.User{
		ID:            uuid.New(),
		Email:         "ana@example.com",
		Name:          "Ana",
		Currency:      "USD",
		BillReminders: true,
	}
	bill := &entity.RecurringBill{
		ID:         uuid.New(),
		UserID:     user.ID,
		Name:       "Rent",
		Amount:     decimal.NewFromInt(1200),
		DueDay:     15,
		Recurrence: entity.RecurrenceMonthly,
		AnchorDate: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		Active:     true,
	}

	queue := &fakeEmailQueue{}
	scheduler := NewReminderScheduler(
		queue,
		&fakeBillRepo{bills: []*entity.RecurringBill{bill}},
		&fakeUserRepo{recipients: []*entity.User{user}},
		ReminderConfig{HorizonDays: 3, ScanInterval: time.Hour},
	)

	return queue, scheduler, user, bill
}

func TestReminderScheduler_QueuesUpcomingBill(t *testing.T) {
	queue, scheduler, user, bill := reminderFixture()

	// March 13 + 3-day horizon covers the March 15 due date.
	scheduler.ScanOnce(context.Background(), time.Date(2025, 3, 13, 9, 0, 0, 0, time.UTC))

	if len(queue.jobs) != 1 {
		t.Fatalf("expected 1 queued job, got %d", len(queue.jobs))
	}

	job := queue.jobs[0]
	if job.TemplateType != entity.TemplateBillReminder {
		t.Errorf("expected bill_reminder template, got %s", job.TemplateType)
	}
	if job.RecipientEmail != user.Email {
		t.Errorf("expected recipient %s, got %s", user.Email, job.RecipientEmail)
	}
	wantKey := "bill-reminder:" + bill.ID.String() + ":2025-03-15"
	if job.DedupeKey != wantKey {
		t.Errorf("expected dedupe key %s, got %s", wantKey, job.DedupeKey)
	}
	if job.TemplateData["amount"] != "1200.00" {
		t.Errorf("expected amount 1200.00, got %v", job.TemplateData["amount"])
	}
}

func TestReminderScheduler_RepeatedScansAreIdempotent(t *testing.T) {
	queue, scheduler, _, _ := reminderFixture()

	now := time.Date(2025, 3, 13, 9, 0, 0, 0, time.UTC)
	scheduler.ScanOnce(context.Background(), now)
	scheduler.ScanOnce(context.Background(), now.Add(6*time.Hour))
	scheduler.ScanOnce(context.Background(), now.Add(24*time.Hour))

	if len(queue.jobs) != 1 {
		t.Fatalf("expected 1 queued job after overlapping scans, got %d", len(queue.jobs))
	}
}

func TestReminderScheduler_NoBillDueInHorizon(t *testing.T) {
	queue, scheduler, _, _ := reminderFixture()

	// March 1 + 3 days does not reach the 15th.
	scheduler.ScanOnce(context.Background(), time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))

	if len(queue.jobs) != 0 {
		t.Fatalf("expected no queued jobs, got %d", len(queue.jobs))
	}
}

func TestWorker_SendsQueuedReminder(t *testing.T) {
	queue, scheduler, user, _ := reminderFixture()
	scheduler.ScanOnce(context.Background(), time.Date(2025, 3, 13, 9, 0, 0, 0, time.UTC))

	renderer, err := templates.NewRenderer()
	if err != nil {
		t.Fatalf("failed to build renderer: %v", err)
	}

	sender := NewMockEmailSender()
	worker := NewWorker(queue, sender, renderer, DefaultWorkerConfig())
	worker.ProcessNow(context.Background())

	if len(sender.SentEmails) != 1 {
		t.Fatalf("expected 1 sent email, got %d", len(sender.SentEmails))
	}
	sent := sender.SentEmails[0]
	if sent.To != user.Email {
		t.Errorf("expected recipient %s, got %s", user.Email, sent.To)
	}
	if sent.HTML == "" || sent.Text == "" {
		t.Error("expected both HTML and text bodies to be rendered")
	}

	if queue.jobs[0].Status != entity.EmailStatusSent {
		t.Errorf("expected job status sent, got %s", queue.jobs[0].Status)
	}
	if queue.jobs[0].ProviderID == "" {
		t.Error("expected provider ID to be recorded")
	}
}

func TestWorker_TemporaryFailureSchedulesRetry(t *testing.T) {
	queue, scheduler, _, _ := reminderFixture()
	scheduler.ScanOnce(context.Background(), time.Date(2025, 3, 13, 9, 0, 0, 0, time.UTC))

	renderer, err := templates.NewRenderer()
	if err != nil {
		t.Fatalf("failed to build renderer: %v", err)
	}

	sender := NewMockEmailSender()
	sender.SetFailure(errors.New("429 too many requests"), false)

	worker := NewWorker(queue, sender, renderer, DefaultWorkerConfig())
	worker.ProcessNow(context.Background())

	job := queue.jobs[0]
	if job.Status != entity.EmailStatusPending {
		t.Fatalf("expected job back to pending for retry, got %s", job.Status)
	}
	if job.Attempts != 1 {
		t.Errorf("expected 1 attempt, got %d", job.Attempts)
	}
}

func TestWorker_PermanentFailureMarksFailed(t *testing.T) {
	queue, scheduler, _, _ := reminderFixture()
	scheduler.ScanOnce(context.Background(), time.Date(2025, 3, 13, 9, 0, 0, 0, time.UTC))

	renderer, err := templates.NewRenderer()
	if err != nil {
		t.Fatalf("failed to build renderer: %v", err)
	}

	sender := NewMockEmailSender()
	sender.SetFailure(errors.New("422 validation error"), true)

	worker := NewWorker(queue, sender, renderer, DefaultWorkerConfig())
	worker.ProcessNow(context.Background())

	job := queue.jobs[0]
	if job.Status != entity.EmailStatusFailed {
		t.Fatalf("expected job failed, got %s", job.Status)
	}
}
