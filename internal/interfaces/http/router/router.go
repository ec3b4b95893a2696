package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/studyhall/backend/internal/interfaces/http/handler"
)

// Handlers bundles every HTTP handler the API exposes
type Handlers struct {
	Auth         *handler.AuthHandler
	User         *handler.UserHandler
	Branch       *handler.BranchHandler
	Seat         *handler.SeatHandler
	Shift        *handler.ShiftHandler
	Student      *handler.StudentHandler
	Availability *handler.AvailabilityHandler
	Collection   *handler.CollectionHandler
	Advance      *handler.AdvancePaymentHandler
	Expense      *handler.ExpenseHandler
	Report       *handler.ReportHandler
}

// Setup registers the full route table under /api/v1.
// Global middleware (request ID, CORS, JWT, maintenance) is expected to
// already be attached to the engine by the caller.
func Setup(engine *gin.Engine, h Handlers) {
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := engine.Group("/api/v1")

	auth := api.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.RefreshToken)
		auth.POST("/logout", h.Auth.Logout)
		auth.GET("/me", h.Auth.GetCurrentUser)
		auth.PUT("/password", h.Auth.ChangePassword)
	}

	users := api.Group("/users")
	{
		users.POST("", h.User.Create)
		users.GET("", h.User.List)
		users.GET("/:id", h.User.Get)
		users.POST("/:id/deactivate", h.User.Deactivate)
		users.POST("/:id/activate", h.User.Activate)
	}

	branches := api.Group("/branches")
	{
		branches.POST("", h.Branch.Create)
		branches.GET("", h.Branch.List)
		branches.GET("/:id", h.Branch.Get)
		branches.PUT("/:id", h.Branch.Update)
		branches.DELETE("/:id", h.Branch.Delete)
	}

	seats := api.Group("/seats")
	{
		seats.POST("", h.Seat.Create)
		seats.GET("", h.Seat.List)
		seats.GET("/:id", h.Seat.Get)
		seats.PUT("/:id", h.Seat.Update)
		seats.DELETE("/:id", h.Seat.Delete)
	}

	shifts := api.Group("/shifts")
	{
		shifts.POST("", h.Shift.Create)
		shifts.GET("", h.Shift.List)
		shifts.PUT("/:id", h.Shift.Update)
		shifts.DELETE("/:id", h.Shift.Delete)
	}

	students := api.Group("/students")
	{
		students.POST("", h.Student.Enroll)
		students.GET("", h.Student.List)
		students.GET("/:id", h.Student.Get)
		students.PUT("/:id", h.Student.Update)
		students.DELETE("/:id", h.Student.Delete)
		students.POST("/:id/deactivate", h.Student.Deactivate)
		students.POST("/:id/activate", h.Student.Activate)
		students.POST("/:id/renew", h.Student.Renew)
		students.GET("/:id/advances", h.Advance.ListByStudent)
	}

	availability := api.Group("/availability")
	{
		availability.GET("/shifts/:shiftId/seats", h.Availability.SeatsForShift)
		availability.GET("/seats/:seatId/shifts", h.Availability.ShiftsForSeat)
	}

	collections := api.Group("/collections")
	{
		collections.GET("", h.Collection.List)
		collections.GET("/:id", h.Collection.Get)
		collections.POST("/:id/pay-due", h.Collection.PayDue)
		collections.DELETE("/:id", h.Collection.Delete)
	}

	advances := api.Group("/advances")
	{
		advances.POST("", h.Advance.Create)
		advances.GET("", h.Advance.List)
		advances.DELETE("/:id", h.Advance.Delete)
	}

	expenses := api.Group("/expenses")
	{
		expenses.POST("", h.Expense.Create)
		expenses.GET("", h.Expense.List)
		expenses.GET("/:id", h.Expense.Get)
		expenses.PUT("/:id", h.Expense.Update)
		expenses.DELETE("/:id", h.Expense.Delete)
	}

	reports := api.Group("/reports")
	{
		reports.GET("/monthly", h.Report.Monthly)
		reports.GET("/transactions", h.Report.Transactions)
	}
}
