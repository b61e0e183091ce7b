package handlers

import (
	"CarePoint/middlewares"
	"CarePoint/models"
	"CarePoint/services"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	service *services.ReportService
}

func NewReportHandler(service *services.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// UploadReport stores a report file and its metadata. The request is
// multipart: form fields plus the file under "report_file".
func (h *ReportHandler) UploadReport(c *gin.Context) {
	patientID, err := strconv.ParseInt(c.PostForm("patient_id"), 10, 64)
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid patient ID"})
		return
	}
	doctorID, err := strconv.ParseInt(c.PostForm("doctor_id"), 10, 64)
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid doctor ID"})
		return
	}

	file, header, err := c.Request.FormFile("report_file")
	if err != nil {
		c.JSON(400, gin.H{"error": "report_file is required"})
		return
	}
	defer file.Close()

	ctx := c.Request.Context()
	report := &models.Report{
		PatientID:      patientID,
		PatientName:    c.PostForm("patient_name"),
		DoctorID:       doctorID,
		HospitalID:     middlewares.ExtractUserHospitalFromContext(ctx),
		ReportType:     c.PostForm("report_type"),
		ReportCategory: c.PostForm("report_category"),
		TestDate:       c.PostForm("test_date"),
		DoctorComments: c.PostForm("doctor_comments"),
	}
	if report.ReportType == "" {
		c.JSON(400, gin.H{"error": "report_type is required"})
		return
	}

	if err := h.service.Upload(ctx, report, file, header); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, report)
}

// UpdateReport edits a report's metadata and optionally replaces its file.
func (h *ReportHandler) UpdateReport(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid report ID"})
		return
	}

	ctx := c.Request.Context()
	report, err := h.service.GetByID(ctx, uint(id))
	if err != nil || report == nil {
		c.JSON(404, gin.H{"error": "Report not found"})
		return
	}

	if v := c.PostForm("report_type"); v != "" {
		report.ReportType = v
	}
	if v := c.PostForm("report_category"); v != "" {
		report.ReportCategory = v
	}
	if v := c.PostForm("test_date"); v != "" {
		report.TestDate = v
	}
	if v := c.PostForm("doctor_comments"); v != "" {
		report.DoctorComments = v
	}

	file, header, err := c.Request.FormFile("report_file")
	if err == nil {
		defer file.Close()
	} else {
		file, header = nil, nil
	}

	if err := h.service.Update(ctx, report, file, header); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, report)
}

func (h *ReportHandler) GetReportByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid report ID"})
		return
	}

	report, err := h.service.GetByID(c.Request.Context(), uint(id))
	if err != nil || report == nil {
		c.JSON(404, gin.H{"error": "Report not found"})
		return
	}
	c.JSON(200, report)
}

// GetPatientReports lists every report for a patient, newest first.
func (h *ReportHandler) GetPatientReports(c *gin.Context) {
	patientID, err := strconv.ParseInt(c.Param("patient_id"), 10, 64)
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid patient ID"})
		return
	}

	reports, err := h.service.GetAllByPatient(c.Request.Context(), patientID)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, reports)
}

// GetPatientLatestReport returns a patient's most recent report, which the
// report view screen opens by default.
func (h *ReportHandler) GetPatientLatestReport(c *gin.Context) {
	patientID, err := strconv.ParseInt(c.Param("patient_id"), 10, 64)
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid patient ID"})
		return
	}

	report, err := h.service.GetByPatient(c.Request.Context(), patientID)
	if err != nil || report == nil {
		c.JSON(404, gin.H{"error": "Report not found"})
		return
	}
	c.JSON(200, report)
}

// GetMyReports lists the calling patient's own reports.
func (h *ReportHandler) GetMyReports(c *gin.Context) {
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

	reports, err := h.service.GetAllByPatient(ctx, userID)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, reports)
}

func (h *ReportHandler) DeleteReport(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid report ID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), uint(id)); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(204, gin.H{"message": "Report deleted"})
}
