package routes

import (
	"database/sql"

	"github.com/beuelvinc/pageloot-hw/handlers"
	"github.com/beuelvinc/pageloot-hw/services"

	"github.com/gin-gonic/gin"
)

// SetupUserRoutes wires the user collection.
func SetupUserRoutes(rg *gin.RouterGroup, db *sql.DB) {
	userHandler := &handlers.UserHandler{DB: db}

	rg.GET("/users/", userHandler.ListUsers)
	rg.POST("/users/", userHandler.CreateUser)
}

// SetupExpenseRoutes wires the expense collection and detail routes.
func SetupExpenseRoutes(rg *gin.RouterGroup, db *sql.DB) {
	expenseHandler := &handlers.ExpenseHandler{DB: db}

	rg.GET("/expenses/", expenseHandler.ListExpenses)
	rg.POST("/expenses/", expenseHandler.CreateExpense)
	rg.GET("/expenses/:id/", expenseHandler.GetExpense)
	rg.PUT("/expenses/:id/", expenseHandler.UpdateExpense)
	rg.DELETE("/expenses/:id/", expenseHandler.DeleteExpense)
}

// SetupReportRoutes wires the read-only query routes. The :id segment
// is the owning user's id here.
func SetupReportRoutes(rg *gin.RouterGroup, db *sql.DB) {
	reportService := services.NewReportService(db)
	reportHandler := handlers.NewReportHandler(reportService)

	rg.GET("/expenses/:id/date-range/", reportHandler.ExpensesByDateRange)
	rg.GET("/expenses/:id/category-summary/", reportHandler.CategorySummary)
}
