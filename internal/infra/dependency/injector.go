// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/cashflowd/backend/config"
	"github.com/cashflowd/backend/internal/application/adapter"
	"github.com/cashflowd/backend/internal/application/usecase/auth"
	"github.com/cashflowd/backend/internal/application/usecase/bill"
	"github.com/cashflowd/backend/internal/application/usecase/cashflow"
	"github.com/cashflowd/backend/internal/application/usecase/category"
	"github.com/cashflowd/backend/internal/application/usecase/event"
	"github.com/cashflowd/backend/internal/application/usecase/income"
	"github.com/cashflowd/backend/internal/application/usecase/transaction"
	"github.com/cashflowd/backend/internal/infra/server/router"
	"github.com/cashflowd/backend/internal/integration/adapters"
	"github.com/cashflowd/backend/internal/integration/email"
	"github.com/cashflowd/backend/internal/integration/email/templates"
	"github.com/cashflowd/backend/internal/integration/entrypoint/controller"
	"github.com/cashflowd/backend/internal/integration/entrypoint/middleware"
	"github.com/cashflowd/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config            *config.Config
	DB                *gorm.DB
	Redis             *redis.Client
	Router            *router.Router
	EmailWorker       *email.Worker
	ReminderScheduler *email.ReminderScheduler
}

// NewInjector creates a new dependency injector with all dependencies wired.
// The Redis client is optional: without it the timeline cache and the login
// rate limiter are disabled, everything else works.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Injector, error) {
	// Repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	billRepo := persistence.NewRecurringBillRepository(db)
	incomeRepo := persistence.NewRecurringIncomeRepository(db)
	eventRepo := persistence.NewCashflowEventRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)

	// Adapters
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)

	var timelineCache adapter.TimelineCache
	if redisClient != nil && cfg.Projection.CacheEnabled {
		timelineCache = adapters.NewTimelineCache(redisClient)
	}

	// Auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

	// Cashflow timeline use case
	timelineUseCase := cashflow.NewGetTimelineUseCase(
		billRepo,
		incomeRepo,
		eventRepo,
		transactionRepo,
		timelineCache,
		cfg.Projection.CacheTTL,
	)

	// Bill use cases
	createBillUseCase := bill.NewCreateBillUseCase(billRepo, categoryRepo)
	listBillsUseCase := bill.NewListBillsUseCase(billRepo)
	updateBillUseCase := bill.NewUpdateBillUseCase(billRepo, categoryRepo)
	stopBillUseCase := bill.NewStopBillUseCase(billRepo)
	reactivateBillUseCase := bill.NewReactivateBillUseCase(billRepo)
	deleteBillUseCase := bill.NewDeleteBillUseCase(billRepo)

	// Income use cases
	createIncomeUseCase := income.NewCreateIncomeUseCase(incomeRepo)
	listIncomesUseCase := income.NewListIncomesUseCase(incomeRepo)
	updateIncomeUseCase := income.NewUpdateIncomeUseCase(incomeRepo)
	stopIncomeUseCase := income.NewStopIncomeUseCase(incomeRepo)
	reactivateIncomeUseCase := income.NewReactivateIncomeUseCase(incomeRepo)
	deleteIncomeUseCase := income.NewDeleteIncomeUseCase(incomeRepo)

	// Event use cases
	createEventUseCase := event.NewCreateEventUseCase(eventRepo)
	updateEventUseCase := event.NewUpdateEventUseCase(eventRepo, billRepo, incomeRepo)
	deleteEventUseCase := event.NewDeleteEventUseCase(eventRepo, billRepo, incomeRepo)

	// Transaction use cases
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo)
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)

	// Category use cases
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)

	// Controllers
	healthController := controller.NewHealthController(
		func() bool {
			sqlDB, err := db.DB()
			if err != nil {
				return false
			}
			return sqlDB.Ping() == nil
		},
		func() bool {
			if redisClient == nil {
				return false
			}
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return redisClient.Ping(ctx).Err() == nil
		},
	)

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
	)

	cashflowController := controller.NewCashflowController(timelineUseCase)

	billController := controller.NewBillController(
		createBillUseCase,
		listBillsUseCase,
		updateBillUseCase,
		stopBillUseCase,
		reactivateBillUseCase,
		deleteBillUseCase,
	)

	incomeController := controller.NewIncomeController(
		createIncomeUseCase,
		listIncomesUseCase,
		updateIncomeUseCase,
		stopIncomeUseCase,
		reactivateIncomeUseCase,
		deleteIncomeUseCase,
	)

	eventController := controller.NewEventController(
		createEventUseCase,
		updateEventUseCase,
		deleteEventUseCase,
	)

	transactionController := controller.NewTransactionController(
		createTransactionUseCase,
		listTransactionsUseCase,
		deleteTransactionUseCase,
	)

	categoryController := controller.NewCategoryController(
		createCategoryUseCase,
		listCategoriesUseCase,
	)

	// Middleware. Higher login rate limits in test environments to avoid
	// flaky integration runs.
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(redisClient, "login", 1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter(redisClient, "login")
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(
		healthController,
		authController,
		cashflowController,
		billController,
		incomeController,
		eventController,
		transactionController,
		categoryController,
		loginRateLimiter,
		authMiddleware,
	)

	// Email delivery: reminder scheduler fills the queue, worker drains it.
	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize email templates: %w", err)
	}

	var sender adapter.EmailSender
	if cfg.Email.ResendAPIKey != "" {
		sender = email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	} else {
		sender = email.NewMockEmailSender()
	}

	emailWorker := email.NewWorker(emailQueueRepo, sender, renderer, email.WorkerConfig{
		PollInterval: cfg.Email.PollInterval,
		BatchSize:    cfg.Email.BatchSize,
	})

	reminderScheduler := email.NewReminderScheduler(emailQueueRepo, billRepo, userRepo, email.ReminderConfig{
		HorizonDays:  cfg.Reminder.HorizonDays,
		ScanInterval: cfg.Reminder.ScanInterval,
	})

	return &Injector{
		Config:            cfg,
		DB:                db,
		Redis:             redisClient,
		Router:            r,
		EmailWorker:       emailWorker,
		ReminderScheduler: reminderScheduler,
	}, nil
}
