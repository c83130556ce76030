// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/cashflowd/backend/internal/integration/entrypoint/controller"
	"github.com/cashflowd/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	authController        *controller.AuthController
	cashflowController    *controller.CashflowController
	billController        *controller.BillController
	incomeController      *controller.IncomeController
	eventController       *controller.EventController
	transactionController *controller.TransactionController
	categoryController    *controller.CategoryController
	loginRateLimiter      *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	cashflowController *controller.CashflowController,
	billController *controller.BillController,
	incomeController *controller.IncomeController,
	eventController *controller.EventController,
	transactionController *controller.TransactionController,
	categoryController *controller.CategoryController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		authController:        authController,
		cashflowController:    cashflowController,
		billController:        billController,
		incomeController:      incomeController,
		eventController:       eventController,
		transactionController: transactionController,
		categoryController:    categoryController,
		loginRateLimiter:      loginRateLimiter,
		authMiddleware:        authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Default middleware: logger and recovery
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.RefreshToken)
				auth.POST("/logout", r.authController.Logout)
			}
		}

		if r.cashflowController != nil && r.authMiddleware != nil {
			cashflow := v1.Group("/cashflow")
			cashflow.Use(r.authMiddleware.Authenticate())
			{
				cashflow.GET("", r.cashflowController.GetTimeline)
			}
		}

		if r.billController != nil && r.authMiddleware != nil {
			bills := v1.Group("/bills")
			bills.Use(r.authMiddleware.Authenticate())
			{
				bills.GET("", r.billController.List)
				bills.POST("", r.billController.Create)
				bills.PATCH("/:id", r.billController.Update)
				bills.POST("/:id/stop", r.billController.Stop)
				bills.POST("/:id/reactivate", r.billController.Reactivate)
				bills.DELETE("/:id", r.billController.Delete)
			}
		}

		if r.incomeController != nil && r.authMiddleware != nil {
			incomes := v1.Group("/incomes")
			incomes.Use(r.authMiddleware.Authenticate())
			{
				incomes.GET("", r.incomeController.List)
				incomes.POST("", r.incomeController.Create)
				incomes.PATCH("/:id", r.incomeController.Update)
				incomes.POST("/:id/stop", r.incomeController.Stop)
				incomes.POST("/:id/reactivate", r.incomeController.Reactivate)
				incomes.DELETE("/:id", r.incomeController.Delete)
			}
		}

		if r.eventController != nil && r.authMiddleware != nil {
			events := v1.Group("/events")
			events.Use(r.authMiddleware.Authenticate())
			{
				events.POST("", r.eventController.Create)
				events.PATCH("/:id", r.eventController.Update)
				events.DELETE("/:id", r.eventController.Delete)
			}
		}

		if r.transactionController != nil && r.authMiddleware != nil {
			transactions := v1.Group("/transactions")
			transactions.Use(r.authMiddleware.Authenticate())
			{
				transactions.GET("", r.transactionController.List)
				transactions.POST("", r.transactionController.Create)
				transactions.DELETE("/:id", r.transactionController.Delete)
			}
		}

		if r.categoryController != nil && r.authMiddleware != nil {
			categories := v1.Group("/categories")
			categories.Use(r.authMiddleware.Authenticate())
			{
				categories.GET("", r.categoryController.List)
				categories.POST("", r.categoryController.Create)
			}
		}
	}
}
