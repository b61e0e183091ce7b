package handlers

import (
	"CarePoint/middlewares"
	"CarePoint/services"
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

type AppointmentHandler struct {
	service      *services.AppointmentService
	availability *services.AvailabilityService
	booking      *services.BookingService
	payments     *services.PaymentService
	transactions *services.TransactionService
}

func NewAppointmentHandler(service *services.AppointmentService, availability *services.AvailabilityService, booking *services.BookingService, payments *services.PaymentService, transactions *services.TransactionService) *AppointmentHandler {
	return &AppointmentHandler{
		service:      service,
		availability: availability,
		booking:      booking,
		payments:     payments,
		transactions: transactions,
	}
}

// gridFor picks the slot grid for the caller: the admin desk keeps one
// extra evening slot.
func gridFor(c *gin.Context) services.SlotGrid {
	role, err := middlewares.ExtractUserRoleFromContext(c.Request.Context())
	if err == nil && (role == "Admin" || role == "Staff") {
		return services.ExtendedGrid
	}
	return services.StandardGrid
}

// GetTimeSlots returns the day grid for a facility and date with booked
// slots flagged.
func (h *AppointmentHandler) GetTimeSlots(c *gin.Context) {
	hospitalID := c.Query("hospitalId")
	date := c.Query("date")
	if hospitalID == "" || date == "" {
		c.JSON(400, gin.H{"error": "hospitalId and date are required"})
		return
	}

	slots, err := h.availability.TimeSlots(c.Request.Context(), hospitalID, date, gridFor(c))
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"slots": slots})
}

// GetFullyBookedDates returns the dates the date picker should disable.
func (h *AppointmentHandler) GetFullyBookedDates(c *gin.Context) {
	hospitalID := c.Query("hospitalId")
	if hospitalID == "" {
		c.JSON(400, gin.H{"error": "hospitalId is required"})
		return
	}

	from := c.DefaultQuery("from", time.Now().Format("2006-01-02"))
	days, err := strconv.Atoi(c.DefaultQuery("days", "30"))
	if err != nil || days < 1 || days > 90 {
		c.JSON(400, gin.H{"error": "invalid days"})
		return
	}

	dates, err := h.availability.FullyBookedDates(c.Request.Context(), hospitalID, from, days, gridFor(c))
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"fullyBookedDates": dates})
}

// GetMyAppointments lists the calling patient's own appointments.
func (h *AppointmentHandler) GetMyAppointments(c *gin.Context) {
	ctx := c.Request.Context()
	userIDStr, err := middlewares.ExtractUserIDFromContext(ctx)
	if err != nil {
		c.JSON(401, gin.H{"error": "Unauthorized"})
		return
	}
	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		c.JSON(500, gin.H{"error": "Invalid user ID"})
		return
	}

	appointments, err := h.service.GetByUser(ctx, userID)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, appointments)
}

// GetAllAppointments lists appointments within the caller's facility scope.
func (h *AppointmentHandler) GetAllAppointments(c *gin.Context) {
	ctx := c.Request.Context()
	hospitalID := effectiveHospital(ctx, c.Query("hospitalId"))

	appointments, err := h.service.GetAll(ctx, hospitalID)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, appointments)
}

func (h *AppointmentHandler) GetAppointmentByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid appointment ID"})
		return
	}

	appointment, err := h.service.GetByID(c.Request.Context(), uint(id))
	if err != nil || appointment == nil {
		c.JSON(404, gin.H{"error": "Appointment not found"})
		return
	}
	c.JSON(200, appointment)
}

// adminBookingBody is the admin desk booking form: the booking fields plus
// the patient identity and any payment details, in one submission.
type adminBookingBody struct {
	services.BookingRequest
	services.PaymentDetails
	PatientID   int64  `json:"patient_id"`
	PatientName string `json:"patient_name"`
}

// CreateAppointment books on behalf of a patient from the admin desk.
// Same-day entry is allowed and the extended grid applies.
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var body adminBookingBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}
	if body.PatientID == 0 || body.PatientName == "" {
		c.JSON(400, gin.H{"error": "patient_id and patient_name are required"})
		return
	}

	ctx := c.Request.Context()
	params, err := h.booking.AttemptBook(ctx, body.BookingRequest, services.FloorToday, services.ExtendedGrid)
	if err != nil {
		c.JSON(bookingErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	user := services.BookingUser{ID: body.PatientID, Name: body.PatientName}
	record, err := h.payments.RecordPayment(ctx, *params, user, body.PaymentDetails, services.AdminDesk)
	if err != nil {
		c.JSON(bookingErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, record)
}

// MarkCompleted moves an appointment to Completed after the visit.
func (h *AppointmentHandler) MarkCompleted(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid appointment ID"})
		return
	}

	if err := h.transactions.MarkCompleted(c.Request.Context(), uint(id)); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.Status(200)
}

func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid appointment ID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), uint(id)); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(204, gin.H{"message": "Appointment deleted"})
}

// bookingErrorStatus maps the booking form errors onto HTTP codes; anything
// else is a server-side failure.
func bookingErrorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrSlotTaken):
		return 409
	case errors.Is(err, services.ErrMissingField),
		errors.Is(err, services.ErrPastDate),
		errors.Is(err, services.ErrMissingPaymentDetails):
		return 400
	default:
		return 500
	}
}
