package services

import (
	"CarePoint/models"
	"CarePoint/repositories"
	"CarePoint/utils"
	"context"
	"fmt"
)

type HospitalService struct {
	repository *repositories.HospitalRepository
}

func NewHospitalService(repository *repositories.HospitalRepository) *HospitalService {
	return &HospitalService{repository: repository}
}

func (s *HospitalService) Create(ctx context.Context, hospital *models.Hospital) error {
	if err := utils.ValidateHospitalData(*hospital); err != nil {
		return fmt.Errorf("invalid hospital data: %w", err)
	}
	return s.repository.Create(ctx, hospital)
}

func (s *HospitalService) GetByID(ctx context.Context, id string) (*models.Hospital, error) {
	return s.repository.GetByID(ctx, id)
}

func (s *HospitalService) GetAll(ctx context.Context) ([]models.Hospital, error) {
	return s.repository.GetAll(ctx)
}

func (s *HospitalService) Update(ctx context.Context, hospital *models.Hospital) error {
	if err := utils.ValidateHospitalData(*hospital); err != nil {
		return fmt.Errorf("invalid hospital data: %w", err)
	}
	return s.repository.Update(ctx, hospital)
}

func (s *HospitalService) Delete(ctx context.Context, id string) error {
	return s.repository.Delete(ctx, id)
}
