package handlers

import (
	"CarePoint/models"
	"CarePoint/services"

	"github.com/gin-gonic/gin"
)

type HospitalHandler struct {
	service *services.HospitalService
}

func NewHospitalHandler(service *services.HospitalService) *HospitalHandler {
	return &HospitalHandler{service: service}
}

func (h *HospitalHandler) CreateHospital(c *gin.Context) {
	var hospital models.Hospital
	if err := c.ShouldBindJSON(&hospital); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}
	if err := h.service.Create(c.Request.Context(), &hospital); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, hospital)
}

// GetAllHospitals lists every facility; the booking screens use this to
// populate the hospital picker.
func (h *HospitalHandler) GetAllHospitals(c *gin.Context) {
	hospitals, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, hospitals)
}

func (h *HospitalHandler) GetHospitalByID(c *gin.Context) {
	hospital, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil || hospital == nil {
		c.JSON(404, gin.H{"error": "Hospital not found"})
		return
	}
	c.JSON(200, hospital)
}

func (h *HospitalHandler) UpdateHospital(c *gin.Context) {
	var hospital models.Hospital
	if err := c.ShouldBindJSON(&hospital); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}
	hospital.ID = c.Param("id")

	if err := h.service.Update(c.Request.Context(), &hospital); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, hospital)
}

func (h *HospitalHandler) DeleteHospital(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(204, gin.H{"message": "Hospital deleted"})
}
