package services

import (
	"CarePoint/models"
	"CarePoint/repositories"
	"context"
)

type AppointmentService struct {
	repository repositories.AppointmentStore
}

func NewAppointmentService(repository repositories.AppointmentStore) *AppointmentService {
	return &AppointmentService{repository: repository}
}

func (s *AppointmentService) GetByID(ctx context.Context, id uint) (*models.Appointment, error) {
	return s.repository.GetByID(ctx, id)
}

func (s *AppointmentService) GetAll(ctx context.Context, hospitalID string) ([]models.Appointment, error) {
	return s.repository.GetAll(ctx, hospitalID)
}

func (s *AppointmentService) GetByUser(ctx context.Context, userID int64) ([]models.Appointment, error) {
	return s.repository.GetByUser(ctx, userID)
}

func (s *AppointmentService) Delete(ctx context.Context, id uint) error {
	return s.repository.Delete(ctx, id)
}
