package handlers

import (
	"CarePoint/middlewares"
	"CarePoint/services"

	"github.com/gin-gonic/gin"
)

type TransactionHandler struct {
	service *services.TransactionService
}

func NewTransactionHandler(service *services.TransactionService) *TransactionHandler {
	return &TransactionHandler{service: service}
}

// GetAllTransactions lists transactions within the caller's facility scope.
func (h *TransactionHandler) GetAllTransactions(c *gin.Context) {
	ctx := c.Request.Context()
	hospitalID := effectiveHospital(ctx, c.Query("hospitalId"))

	transactions, err := h.service.GetAll(ctx, hospitalID)
	if err != nil {
		middlewares.HttpError(c, "Failed to list transactions", 500, err)
		return
	}
	c.JSON(200, transactions)
}

func (h *TransactionHandler) GetTransactionByID(c *gin.Context) {
	transaction, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil || transaction == nil {
		c.JSON(404, gin.H{"error": "Transaction not found"})
		return
	}
	c.JSON(200, transaction)
}

// MarkPaid confirms payment for a transaction and schedules the linked
// appointment.
func (h *TransactionHandler) MarkPaid(c *gin.Context) {
	if err := h.service.MarkPaid(c.Request.Context(), c.Param("id")); err != nil {
		middlewares.HttpError(c, "Failed to mark transaction paid", 500, err)
		return
	}
	c.Status(200)
}

// EditStatus sets a transaction's status and derives the appointment's
// status from it.
func (h *TransactionHandler) EditStatus(c *gin.Context) {
	var body struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.service.EditStatus(c.Request.Context(), c.Param("id"), body.Status); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	c.Status(200)
}

// DeleteTransaction removes a transaction record. The linked appointment
// is left in place.
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		middlewares.HttpError(c, "Failed to delete transaction", 500, err)
		return
	}
	c.JSON(204, gin.H{"message": "Transaction deleted"})
}
