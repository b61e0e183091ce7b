package handlers

import (
	"CarePoint/middlewares"
	"CarePoint/services"
	"strconv"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	booking     *services.BookingService
	payments    *services.PaymentService
	userService services.UserService
}

func NewPaymentHandler(booking *services.BookingService, payments *services.PaymentService, userService services.UserService) *PaymentHandler {
	return &PaymentHandler{
		booking:     booking,
		payments:    payments,
		userService: userService,
	}
}

// PaymentGateway records a patient booking. The booking selection arrives
// as query parameters carried over from the slot picker (hospitalId, date,
// time, serviceId, doctorId); the payment method and its details arrive in
// the request body.
func (h *PaymentHandler) PaymentGateway(c *gin.Context) {
	var body struct {
		PaymentType string `json:"payment_type"`
		services.PaymentDetails
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}

	req := services.BookingRequest{
		HospitalID:  c.Query("hospitalId"),
		Date:        c.Query("date"),
		Time:        c.Query("time"),
		PaymentType: body.PaymentType,
	}
	if serviceID, err := strconv.Atoi(c.Query("serviceId")); err == nil {
		req.ServiceID = serviceID
	}
	if doctorID, err := strconv.ParseInt(c.Query("doctorId"), 10, 64); err == nil {
		req.DoctorID = &doctorID
	}

	ctx := c.Request.Context()
	params, err := h.booking.AttemptBook(ctx, req, services.FloorTomorrow, services.StandardGrid)
	if err != nil {
		c.JSON(bookingErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

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
	user, err := h.userService.GetUserByID(ctx, userID)
	if err != nil || user == nil {
		c.JSON(404, gin.H{"error": "User not found"})
		return
	}

	bookingUser := services.BookingUser{ID: user.ID, Name: user.FullName}
	if bookingUser.Name == "" {
		bookingUser.Name = user.Username
	}

	record, err := h.payments.RecordPayment(ctx, *params, bookingUser, body.PaymentDetails, services.SelfService)
	if err != nil {
		c.JSON(bookingErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, record)
}
