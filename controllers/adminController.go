package controllers

import (
	"CarePoint/handlers"
	"CarePoint/middlewares"

	"github.com/gin-gonic/gin"
)

// SetupAdminRoutes wires the staff-facing surface: appointment and
// transaction management, the patient roster, report uploads and facility
// administration.
func SetupAdminRoutes(router *gin.Engine, hospitalHandler *handlers.HospitalHandler, appointmentHandler *handlers.AppointmentHandler, transactionHandler *handlers.TransactionHandler, reportHandler *handlers.ReportHandler, authHandler *handlers.AuthHandler) {
	desk := router.Group("/").Use(
		middlewares.TokenAuthMiddleware(),
		middlewares.RoleAuthMiddleware("Admin", "Doctor", "Staff"),
	)
	{
		desk.GET("/appointments", appointmentHandler.GetAllAppointments)
		desk.GET("/appointments/:id", appointmentHandler.GetAppointmentByID)
		desk.POST("/appointments", appointmentHandler.CreateAppointment)
		desk.PUT("/appointments/:id/complete", appointmentHandler.MarkCompleted)
		desk.DELETE("/appointments/:id", appointmentHandler.DeleteAppointment)

		desk.GET("/transactions", transactionHandler.GetAllTransactions)
		desk.GET("/transactions/:id", transactionHandler.GetTransactionByID)
		desk.PUT("/transactions/:id/mark-paid", transactionHandler.MarkPaid)
		desk.PUT("/transactions/:id/status", transactionHandler.EditStatus)
		desk.DELETE("/transactions/:id", transactionHandler.DeleteTransaction)

		desk.GET("/patients", authHandler.GetPatients)
	}

	reports := router.Group("/").Use(
		middlewares.TokenAuthMiddleware(),
		middlewares.RoleAuthMiddleware("Admin", "Doctor", "Staff"),
	)
	{
		reports.POST("/reports", reportHandler.UploadReport)
		reports.GET("/reports/:id", reportHandler.GetReportByID)
		reports.PUT("/reports/:id", reportHandler.UpdateReport)
		reports.DELETE("/reports/:id", reportHandler.DeleteReport)
		reports.GET("/patients/:patient_id/reports", reportHandler.GetPatientReports)
		reports.GET("/patients/:patient_id/reports/latest", reportHandler.GetPatientLatestReport)
	}

	facilities := router.Group("/hospitals").Use(
		middlewares.TokenAuthMiddleware(),
		middlewares.RoleAuthMiddleware("Admin"),
	)
	{
		facilities.POST("", hospitalHandler.CreateHospital)
		facilities.PUT("/:id", hospitalHandler.UpdateHospital)
		facilities.DELETE("/:id", hospitalHandler.DeleteHospital)
	}
}
