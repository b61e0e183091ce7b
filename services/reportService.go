package services

import (
	"CarePoint/models"
	"CarePoint/repositories"
	"CarePoint/storage"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
)

type ReportService struct {
	repository *repositories.ReportRepository
	blobs      *storage.BlobStore
}

func NewReportService(repository *repositories.ReportRepository, blobs *storage.BlobStore) *ReportService {
	return &ReportService{repository: repository, blobs: blobs}
}

// Upload stores the report file in blob storage, resolves its retrievable
// URL, and writes the metadata row.
func (s *ReportService) Upload(ctx context.Context, report *models.Report, file multipart.File, header *multipart.FileHeader) error {
	objectKey, err := s.blobs.UploadReport(ctx, report.PatientID, file, header)
	if err != nil {
		return err
	}

	reportURL, err := s.blobs.RetrievableURL(ctx, objectKey)
	if err != nil {
		return err
	}

	report.FileName = header.Filename
	report.ReportURL = reportURL
	return s.repository.Create(ctx, report)
}

// Update edits report metadata; when a replacement file is provided it is
// uploaded and the URL refreshed first.
func (s *ReportService) Update(ctx context.Context, report *models.Report, file multipart.File, header *multipart.FileHeader) error {
	if file != nil && header != nil {
		objectKey, err := s.blobs.UploadReport(ctx, report.PatientID, file, header)
		if err != nil {
			return err
		}
		reportURL, err := s.blobs.RetrievableURL(ctx, objectKey)
		if err != nil {
			return err
		}
		report.FileName = header.Filename
		report.ReportURL = reportURL
	}
	return s.repository.Update(ctx, report)
}

func (s *ReportService) GetByID(ctx context.Context, id uint) (*models.Report, error) {
	return s.repository.GetByID(ctx, id)
}

// GetByPatient returns the patient's current report, meaning the most
// recently uploaded one.
func (s *ReportService) GetByPatient(ctx context.Context, patientID int64) (*models.Report, error) {
	return s.repository.GetByPatient(ctx, patientID)
}

func (s *ReportService) GetAllByPatient(ctx context.Context, patientID int64) ([]models.Report, error) {
	return s.repository.GetAllByPatient(ctx, patientID)
}

// Delete removes the metadata row and the stored file.
func (s *ReportService) Delete(ctx context.Context, id uint) error {
	report, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if report == nil {
		return errors.New("report not found")
	}

	if err := s.repository.Delete(ctx, id); err != nil {
		return err
	}

	objectKey := fmt.Sprintf("reports/%d/%s", report.PatientID, report.FileName)
	return s.blobs.Remove(ctx, objectKey)
}
