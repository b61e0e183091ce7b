package handlers

import (
	"CarePoint/models"
	"strconv"

	"github.com/gin-gonic/gin"
)

// GetServices returns the static service catalog the booking screens
// render.
func GetServices(c *gin.Context) {
	c.JSON(200, models.ServiceCatalog())
}

// GetServiceByID returns a single catalog entry.
func GetServiceByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid service ID"})
		return
	}

	service, err := models.LookupService(id)
	if err != nil {
		c.JSON(404, gin.H{"error": "Service not found"})
		return
	}
	c.JSON(200, service)
}
