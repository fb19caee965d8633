// internal/handler/routes.go
package handler

import (
	"budget-tracker/internal/storage"

	"github.com/gin-gonic/gin"
)

// Store is everything the API needs from persistence.
type Store interface {
	storage.ProfileStorage
	storage.CategoryStorage
	storage.TransactionStorage
	storage.BudgetStorage
	storage.RecurringStorage
}

// RegisterRoutes вешает все ресурсы API на группу, уже закрытую авторизацией.
func RegisterRoutes(rg gin.IRoutes, store Store, runner RecurringRunner) {
	profiles := NewProfileHandler(store)
	rg.GET("/profile", profiles.GetProfile)
	rg.POST("/profile", profiles.CreateProfile)
	rg.PATCH("/profile", profiles.UpdateProfile)
	rg.POST("/profile/rebalance", profiles.Rebalance)

	categories := NewCategoryHandler(store)
	rg.GET("/categories", categories.ListCategories)
	rg.POST("/categories", categories.CreateCategory)
	rg.GET("/categories/:id", categories.GetCategory)
	rg.PATCH("/categories/:id", categories.UpdateCategory)
	rg.DELETE("/categories/:id", categories.DeleteCategory)

	transactions := NewTransactionHandler(store)
	rg.GET("/transactions", transactions.ListTransactions)
	rg.POST("/transactions", transactions.CreateTransaction)
	rg.GET("/transactions/:id", transactions.GetTransaction)
	rg.PATCH("/transactions/:id", transactions.UpdateTransaction)
	rg.DELETE("/transactions/:id", transactions.DeleteTransaction)

	insights := NewInsightsHandler(store)
	rg.GET("/insights", insights.GetInsights)
	rg.GET("/insights/allocation-summary", insights.GetAllocationSummary)

	budgets := NewBudgetHandler(store)
	rg.GET("/budgets", budgets.ListBudgets)
	rg.POST("/budgets", budgets.CreateBudget)
	rg.GET("/budgets/progress", budgets.GetProgress)
	rg.GET("/budgets/:id", budgets.GetBudget)
	rg.PATCH("/budgets/:id", budgets.UpdateBudget)
	rg.DELETE("/budgets/:id", budgets.DeleteBudget)

	rules := NewRecurringHandler(store, runner)
	rg.GET("/recurring", rules.ListRecurring)
	rg.POST("/recurring", rules.CreateRecurring)
	rg.POST("/recurring/run", rules.RunRecurring)
	rg.GET("/recurring/:id", rules.GetRecurring)
	rg.PATCH("/recurring/:id", rules.UpdateRecurring)
	rg.DELETE("/recurring/:id", rules.DeleteRecurring)
}
