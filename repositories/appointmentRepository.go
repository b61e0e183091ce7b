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
	"gorm.io/gorm"
)

const (
	AppointmentCacheExpiry = 24 * time.Hour
)

// AppointmentStore is the persistence contract the booking and payment
// services depend on.
type AppointmentStore interface {
	Create(ctx context.Context, appointment *models.Appointment) error
	GetByID(ctx context.Context, id uint) (*models.Appointment, error)
	GetAll(ctx context.Context, hospitalID string) ([]models.Appointment, error)
	GetByUser(ctx context.Context, userID int64) ([]models.Appointment, error)
	BookedTimes(ctx context.Context, hospitalID, date string) ([]string, error)
	CountByDate(ctx context.Context, hospitalID, date string) (int64, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
	SetTransactionID(ctx context.Context, id uint, transactionID string) error
	Delete(ctx context.Context, id uint) error
}

type AppointmentRepository struct {
	cache *cache.Cache
}

func NewAppointmentRepository(cache *cache.Cache) *AppointmentRepository {
	return &AppointmentRepository{cache: cache}
}

func (r *AppointmentRepository) Create(ctx context.Context, appointment *models.Appointment) error {
	// Lock on the slot triple so two writers in the same process fight over
	// the same key. Concurrent sessions on other instances can still both
	// pass the availability check; there is no store-level uniqueness.
	lockKey := fmt.Sprintf("slot_lock:%s_%s_%s", appointment.HospitalID, appointment.Date, appointment.Time)
	return withLock(ctx, lockKey, func() error {
		if err := database.DB.Create(appointment).Error; err != nil {
			return fmt.Errorf("failed to create appointment: %w", err)
		}
		return r.invalidate(ctx, appointment.HospitalID)
	})
}

func (r *AppointmentRepository) GetByID(ctx context.Context, id uint) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.getAppointmentCacheKey(id)
	cachedAppointment, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cachedAppointment != "" {
		var appointment models.Appointment
		if err := json.Unmarshal([]byte(cachedAppointment), &appointment); err == nil {
			return &appointment, nil
		}
	} else if err != nil && err != redis.Nil {
		log.Printf("Failed to get appointment from cache: %v", err)
	}

	var appointment models.Appointment
	err = database.DB.First(&appointment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}

	appointmentJSON, err := json.Marshal(appointment)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal appointment: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, appointmentJSON, AppointmentCacheExpiry); err != nil {
		log.Printf("Failed to set appointment in cache: %v", err)
	}

	return &appointment, nil
}

// GetAll returns appointments, newest first. An empty hospitalID returns
// every hospital's appointments (admin view); otherwise results are scoped
// to the given facility (staff and doctor views).
func (r *AppointmentRepository) GetAll(ctx context.Context, hospitalID string) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.getListCacheKey(hospitalID)
	cachedAppointments, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cachedAppointments != "" {
		var appointments []models.Appointment
		if err := json.Unmarshal([]byte(cachedAppointments), &appointments); err == nil {
			return appointments, nil
		}
	} else if err != nil && err != redis.Nil {
		log.Printf("Failed to get appointments from cache: %v", err)
	}

	query := database.DB.Order("created_at DESC")
	if hospitalID != "" {
		query = query.Where("hospital_id = ?", hospitalID)
	}

	var appointments []models.Appointment
	if err := query.Find(&appointments).Error; err != nil {
		return nil, fmt.Errorf("failed to get appointments: %w", err)
	}

	appointmentsJSON, err := json.Marshal(appointments)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal appointments: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, appointmentsJSON, AppointmentCacheExpiry); err != nil {
		log.Printf("Failed to set appointments in cache: %v", err)
	}

	return appointments, nil
}

func (r *AppointmentRepository) GetByUser(ctx context.Context, userID int64) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var appointments []models.Appointment
	err := database.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get appointments for user: %w", err)
	}
	return appointments, nil
}

// BookedTimes returns the time labels already taken for a facility and date.
// Matching is plain string equality on date and time, the same rule the
// booking screens use.
func (r *AppointmentRepository) BookedTimes(ctx context.Context, hospitalID, date string) ([]string, error) {
	var times []string
	err := database.DB.Model(&models.Appointment{}).
		Where("hospital_id = ? AND date = ?", hospitalID, date).
		Pluck("time", &times).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get booked times: %w", err)
	}
	return times, nil
}

func (r *AppointmentRepository) CountByDate(ctx context.Context, hospitalID, date string) (int64, error) {
	var count int64
	err := database.DB.Model(&models.Appointment{}).
		Where("hospital_id = ? AND date = ?", hospitalID, date).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count appointments: %w", err)
	}
	return count, nil
}

func (r *AppointmentRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	lockKey := fmt.Sprintf("appointment_lock:%d", id)
	return withLock(ctx, lockKey, func() error {
		result := database.DB.Model(&models.Appointment{}).
			Where("id = ?", id).
			Update("status", status)
		if result.Error != nil {
			return fmt.Errorf("failed to update appointment status: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return errors.New("appointment not found")
		}
		return r.invalidateOne(ctx, id)
	})
}

// SetTransactionID patches the back-reference onto an appointment after its
// transaction has been created. This is the third write of the booking
// sequence.
func (r *AppointmentRepository) SetTransactionID(ctx context.Context, id uint, transactionID string) error {
	result := database.DB.Model(&models.Appointment{}).
		Where("id = ?", id).
		Update("transaction_id", transactionID)
	if result.Error != nil {
		return fmt.Errorf("failed to set transaction id: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("appointment not found")
	}
	return r.invalidateOne(ctx, id)
}

func (r *AppointmentRepository) Delete(ctx context.Context, id uint) error {
	lockKey := fmt.Sprintf("appointment_lock:%d", id)
	return withLock(ctx, lockKey, func() error {
		if err := database.DB.Delete(&models.Appointment{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete appointment: %w", err)
		}
		return r.invalidateOne(ctx, id)
	})
}

func (r *AppointmentRepository) invalidate(ctx context.Context, hospitalID string) error {
	if err := r.cache.Delete(ctx, r.getListCacheKey(hospitalID)); err != nil {
		return fmt.Errorf("failed to delete appointment list cache: %w", err)
	}
	return r.cache.DeleteAll(ctx, "appointments_cache*")
}

func (r *AppointmentRepository) invalidateOne(ctx context.Context, id uint) error {
	if err := r.cache.Delete(ctx, r.getAppointmentCacheKey(id)); err != nil {
		return fmt.Errorf("failed to delete appointment cache: %w", err)
	}
	return r.cache.DeleteAll(ctx, "appointments_cache*")
}

func (r *AppointmentRepository) getAppointmentCacheKey(id uint) string {
	return fmt.Sprintf("appointment_cache:%d", id)
}

func (r *AppointmentRepository) getListCacheKey(hospitalID string) string {
	if hospitalID == "" {
		return "appointments_cache:all"
	}
	return fmt.Sprintf("appointments_cache:%s", hospitalID)
}
