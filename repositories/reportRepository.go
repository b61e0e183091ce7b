package repositories

import (
	"CarePoint/cache"
	"CarePoint/database"
	"CarePoint/models"
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type ReportRepository struct {
	cache *cache.Cache
}

func NewReportRepository(cache *cache.Cache) *ReportRepository {
	return &ReportRepository{cache: cache}
}

func (r *ReportRepository) Create(ctx context.Context, report *models.Report) error {
	lockKey := fmt.Sprintf("report_lock:%d", report.PatientID)
	return withLock(ctx, lockKey, func() error {
		if err := database.DB.Create(report).Error; err != nil {
			return fmt.Errorf("failed to create report: %w", err)
		}
		return r.invalidate(ctx, report.PatientID)
	})
}

func (r *ReportRepository) GetByID(ctx context.Context, id uint) (*models.Report, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var report models.Report
	err := database.DB.First(&report, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	return &report, nil
}

// GetByPatient returns the patient's most recent report. The store allows
// several reports per patient but the view and edit screens work on the
// first match only.
func (r *ReportRepository) GetByPatient(ctx context.Context, patientID int64) (*models.Report, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var report models.Report
	err := database.DB.Where("patient_id = ?", patientID).
		Order("created_at DESC").
		First(&report).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get report for patient: %w", err)
	}
	return &report, nil
}

func (r *ReportRepository) GetAllByPatient(ctx context.Context, patientID int64) ([]models.Report, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var reports []models.Report
	err := database.DB.Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Find(&reports).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get reports for patient: %w", err)
	}
	return reports, nil
}

func (r *ReportRepository) Update(ctx context.Context, report *models.Report) error {
	lockKey := fmt.Sprintf("report_lock:%d", report.PatientID)
	return withLock(ctx, lockKey, func() error {
		if err := database.DB.Save(report).Error; err != nil {
			return fmt.Errorf("failed to update report: %w", err)
		}
		return r.invalidate(ctx, report.PatientID)
	})
}

func (r *ReportRepository) Delete(ctx context.Context, id uint) error {
	var report models.Report
	if err := database.DB.First(&report, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to find report: %w", err)
	}

	lockKey := fmt.Sprintf("report_lock:%d", report.PatientID)
	return withLock(ctx, lockKey, func() error {
		if err := database.DB.Delete(&models.Report{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete report: %w", err)
		}
		return r.invalidate(ctx, report.PatientID)
	})
}

func (r *ReportRepository) invalidate(ctx context.Context, patientID int64) error {
	return r.cache.Delete(ctx, fmt.Sprintf("report_cache:%d", patientID))
}
