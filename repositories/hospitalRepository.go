package repositories

import (
	"CarePoint/cache"
	"CarePoint/database"
	"CarePoint/models"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	HospitalCacheExpiry = 7 * 24 * time.Hour
)

type HospitalRepository struct {
	cache *cache.Cache
}

func NewHospitalRepository(cache *cache.Cache) *HospitalRepository {
	return &HospitalRepository{cache: cache}
}

func (r *HospitalRepository) Create(ctx context.Context, hospital *models.Hospital) error {
	if hospital.ID == "" {
		hospital.ID = uuid.New().String()
	}
	lockKey := fmt.Sprintf("hospital_lock:%s", hospital.ID)
	return withLock(ctx, lockKey, func() error {
		if err := database.DB.Create(hospital).Error; err != nil {
			return fmt.Errorf("failed to create hospital: %w", err)
		}
		return r.invalidate(ctx, hospital.ID)
	})
}

func (r *HospitalRepository) GetByID(ctx context.Context, id string) (*models.Hospital, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.getHospitalCacheKey(id)
	cachedHospital, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cachedHospital != "" {
		var hospital models.Hospital
		if err := json.Unmarshal([]byte(cachedHospital), &hospital); err == nil {
			return &hospital, nil
		}
	} else if err != nil && err != redis.Nil {
		log.Printf("Failed to get hospital from cache: %v", err)
	}

	var hospital models.Hospital
	err = database.DB.First(&hospital, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get hospital: %w", err)
	}

	hospitalJSON, err := json.Marshal(hospital)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal hospital: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, hospitalJSON, HospitalCacheExpiry); err != nil {
		log.Printf("Failed to set hospital in cache: %v", err)
	}

	return &hospital, nil
}

func (r *HospitalRepository) GetAll(ctx context.Context) ([]models.Hospital, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := "hospitals_cache"
	cachedHospitals, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cachedHospitals != "" {
		var hospitals []models.Hospital
		if err := json.Unmarshal([]byte(cachedHospitals), &hospitals); err == nil {
			return hospitals, nil
		}
	} else if err != nil && err != redis.Nil {
		log.Printf("Failed to get hospitals from cache: %v", err)
	}

	var hospitals []models.Hospital
	if err := database.DB.Order("name ASC").Find(&hospitals).Error; err != nil {
		return nil, fmt.Errorf("failed to get hospitals: %w", err)
	}

	hospitalsJSON, err := json.Marshal(hospitals)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal hospitals: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, hospitalsJSON, HospitalCacheExpiry); err != nil {
		log.Printf("Failed to set hospitals in cache: %v", err)
	}

	return hospitals, nil
}

func (r *HospitalRepository) Update(ctx context.Context, hospital *models.Hospital) error {
	lockKey := fmt.Sprintf("hospital_lock:%s", hospital.ID)
	return withLock(ctx, lockKey, func() error {
		if err := database.DB.Save(hospital).Error; err != nil {
			return fmt.Errorf("failed to update hospital: %w", err)
		}
		return r.invalidate(ctx, hospital.ID)
	})
}

// Delete removes the hospital only. Appointments and transactions keep their
// weak hospital_id references.
func (r *HospitalRepository) Delete(ctx context.Context, id string) error {
	lockKey := fmt.Sprintf("hospital_lock:%s", id)
	return withLock(ctx, lockKey, func() error {
		if err := database.DB.Delete(&models.Hospital{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete hospital: %w", err)
		}
		return r.invalidate(ctx, id)
	})
}

func (r *HospitalRepository) invalidate(ctx context.Context, id string) error {
	if err := r.cache.Delete(ctx, r.getHospitalCacheKey(id)); err != nil {
		return fmt.Errorf("failed to delete hospital cache: %w", err)
	}
	return r.cache.Delete(ctx, "hospitals_cache")
}

func (r *HospitalRepository) getHospitalCacheKey(id string) string {
	return fmt.Sprintf("hospital_cache:%s", id)
}
