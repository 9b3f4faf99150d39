// Package router wires handlers and middleware into the HTTP surface.
package router

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "cashtrackr/internal/docs" // Import swagger docs
	"cashtrackr/internal/handlers"
	"cashtrackr/internal/middleware"
	"cashtrackr/internal/services"
)

// Dependencies are the services and helpers the routes are built from.
type Dependencies struct {
	Users       services.UserServicer
	Budgets     services.BudgetServicer
	Expenses    services.ExpenseServicer
	Audit       services.AuditServicer
	Issuer      *middleware.TokenIssuer
	AuthLimiter *middleware.RateLimiter

	// TrustedProxies may set X-Forwarded-For. Nil trusts none, so the rate
	// limiter keys on the peer address.
	TrustedProxies []string
}

// New builds the Gin engine serving the API under /api.
func New(deps Dependencies) (*gin.Engine, error) {
	authHandler := handlers.NewAuthHandler(deps.Users, deps.Issuer)
	budgetHandler := handlers.NewBudgetHandler(deps.Budgets, deps.Audit)
	expenseHandler := handlers.NewExpenseHandler(deps.Expenses, deps.Audit)

	router := gin.New()
	if err := router.SetTrustedProxies(deps.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(cors())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authenticate := middleware.AuthMiddleware(deps.Issuer, deps.Users)
	validInput := middleware.HandleInputErrors()

	// Auth routes
	auth := api.Group("/auth")
	if deps.AuthLimiter != nil {
		auth.Use(middleware.RateLimit(deps.AuthLimiter))
	}
	auth.POST("/create-account", middleware.BindBody[handlers.CreateAccountRequest](), validInput, authHandler.CreateAccount)
	auth.POST("/confirm-account", middleware.BindBody[handlers.TokenRequest](), validInput, authHandler.ConfirmAccount)
	auth.POST("/login", middleware.BindBody[handlers.LoginRequest](), validInput, authHandler.Login)
	auth.POST("/forgot-password", middleware.BindBody[handlers.EmailRequest](), validInput, authHandler.ForgotPassword)
	auth.POST("/validate-token", middleware.BindBody[handlers.TokenRequest](), validInput, authHandler.ValidateToken)
	auth.POST("/reset-password/:token", middleware.BindBody[handlers.ResetPasswordRequest](), validInput, authHandler.ResetPassword)
	auth.GET("/user", authenticate, authHandler.GetUser)
	auth.POST("/update-password", authenticate, middleware.BindBody[handlers.UpdatePasswordRequest](), validInput, authHandler.UpdatePassword)
	auth.POST("/check-password", authenticate, middleware.BindBody[handlers.PasswordRequest](), validInput, authHandler.CheckPassword)

	// Budget routes
	budgets := api.Group("/budgets", authenticate)
	budgets.GET("", budgetHandler.GetBudgets)
	budgets.POST("", middleware.BindBody[handlers.BudgetRequest](), validInput, budgetHandler.CreateBudget)
	budgets.GET("/export", budgetHandler.ExportBudgets)

	budgetGate := middleware.BudgetGate(deps.Budgets)
	budget := budgets.Group("/:budgetId", middleware.ValidateID("budgetId"))
	budget.GET("", validInput, budgetGate, budgetHandler.GetBudget)
	budget.PUT("", middleware.BindBody[handlers.BudgetRequest](), validInput, budgetGate, budgetHandler.UpdateBudget)
	budget.DELETE("", validInput, budgetGate, budgetHandler.DeleteBudget)

	// Expense routes, nested under an owned budget
	budget.GET("/expenses", validInput, budgetGate, expenseHandler.GetExpenses)
	budget.POST("/expenses", middleware.BindBody[handlers.ExpenseRequest](), validInput, budgetGate, expenseHandler.CreateExpense)

	expenseGate := middleware.ExpenseGate(deps.Expenses)
	expense := budget.Group("/expenses/:expenseId", middleware.ValidateID("expenseId"))
	expense.GET("", validInput, budgetGate, expenseGate, expenseHandler.GetExpense)
	expense.PUT("", middleware.BindBody[handlers.ExpenseRequest](), validInput, budgetGate, expenseGate, expenseHandler.UpdateExpense)
	expense.DELETE("", validInput, budgetGate, expenseGate, expenseHandler.DeleteExpense)

	return router, nil
}

func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
