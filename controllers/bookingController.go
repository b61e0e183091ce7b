package controllers

import (
	"CarePoint/handlers"
	"CarePoint/middlewares"

	"github.com/gin-gonic/gin"
)

// SetupBookingRoutes wires the patient-facing booking surface: the
// hospital and service pickers, the slot grid, the payment step and the
// personal record views.
func SetupBookingRoutes(router *gin.Engine, hospitalHandler *handlers.HospitalHandler, appointmentHandler *handlers.AppointmentHandler, paymentHandler *handlers.PaymentHandler, reportHandler *handlers.ReportHandler) {
	// Pickers are public so the booking screens render before login.
	router.GET("/hospitals", hospitalHandler.GetAllHospitals)
	router.GET("/hospitals/:id", hospitalHandler.GetHospitalByID)
	router.GET("/services", handlers.GetServices)
	router.GET("/services/:id", handlers.GetServiceByID)

	booking := router.Group("/").Use(middlewares.TokenAuthMiddleware())
	{
		booking.GET("/booking/slots", appointmentHandler.GetTimeSlots)
		booking.GET("/booking/fully-booked-dates", appointmentHandler.GetFullyBookedDates)

		// The slot picker hands its selection over as query parameters;
		// the payment method and details travel in the body.
		booking.POST("/payment-gateway", paymentHandler.PaymentGateway)

		booking.GET("/my/appointments", appointmentHandler.GetMyAppointments)
		booking.GET("/my/reports", reportHandler.GetMyReports)
	}
}
