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
	TransactionCacheExpiry = 24 * time.Hour
)

// TransactionStore is the persistence contract the payment recorder and the
// status transition manager depend on.
type TransactionStore interface {
	Create(ctx context.Context, transaction *models.Transaction) error
	GetByID(ctx context.Context, id string) (*models.Transaction, error)
	GetAll(ctx context.Context, hospitalID string) ([]models.Transaction, error)
	UpdateStatus(ctx context.Context, id string, status string) error
	Delete(ctx context.Context, id string) error
}

type TransactionRepository struct {
	cache *cache.Cache
}

func NewTransactionRepository(cache *cache.Cache) *TransactionRepository {
	return &TransactionRepository{cache: cache}
}

func (r *TransactionRepository) Create(ctx context.Context, transaction *models.Transaction) error {
	lockKey := fmt.Sprintf("transaction_lock:appointment_%d", transaction.AppointmentID)
	return withLock(ctx, lockKey, func() error {
		// Obtain the next sequence value outside the insert
		var nextID string
		if err := database.DB.Raw("SELECT 'TXN-' || LPAD(nextval('transaction_id_seq')::TEXT, 6, '0')").Scan(&nextID).Error; err != nil {
			return fmt.Errorf("failed to obtain next sequence value: %w", err)
		}
		transaction.TransactionID = nextID

		if err := database.DB.Create(transaction).Error; err != nil {
			return fmt.Errorf("failed to create transaction: %w", err)
		}
		return r.invalidate(ctx, transaction.TransactionID)
	})
}

func (r *TransactionRepository) GetByID(ctx context.Context, id string) (*models.Transaction, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.getTransactionCacheKey(id)
	cachedTransaction, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cachedTransaction != "" {
		var transaction models.Transaction
		if err := json.Unmarshal([]byte(cachedTransaction), &transaction); err == nil {
			return &transaction, nil
		}
	} else if err != nil && err != redis.Nil {
		log.Printf("Failed to get transaction from cache: %v", err)
	}

	var transaction models.Transaction
	err = database.DB.First(&transaction, "transaction_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	transactionJSON, err := json.Marshal(transaction)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal transaction: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, transactionJSON, TransactionCacheExpiry); err != nil {
		log.Printf("Failed to set transaction in cache: %v", err)
	}

	return &transaction, nil
}

// GetAll returns transactions, newest first, scoped to a facility unless
// hospitalID is empty (admin view).
func (r *TransactionRepository) GetAll(ctx context.Context, hospitalID string) ([]models.Transaction, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.getListCacheKey(hospitalID)
	cachedTransactions, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cachedTransactions != "" {
		var transactions []models.Transaction
		if err := json.Unmarshal([]byte(cachedTransactions), &transactions); err == nil {
			return transactions, nil
		}
	} else if err != nil && err != redis.Nil {
		log.Printf("Failed to get transactions from cache: %v", err)
	}

	query := database.DB.Order("created_at DESC")
	if hospitalID != "" {
		query = query.Where("hospital_id = ?", hospitalID)
	}

	var transactions []models.Transaction
	if err := query.Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}

	transactionsJSON, err := json.Marshal(transactions)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal transactions: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, transactionsJSON, TransactionCacheExpiry); err != nil {
		log.Printf("Failed to set transactions in cache: %v", err)
	}

	return transactions, nil
}

func (r *TransactionRepository) UpdateStatus(ctx context.Context, id string, status string) error {
	lockKey := fmt.Sprintf("transaction_lock:%s", id)
	return withLock(ctx, lockKey, func() error {
		result := database.DB.Model(&models.Transaction{}).
			Where("transaction_id = ?", id).
			Update("status", status)
		if result.Error != nil {
			return fmt.Errorf("failed to update transaction status: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return errors.New("transaction not found")
		}
		return r.invalidate(ctx, id)
	})
}

// Delete removes only the transaction record. The appointment that
// referenced it keeps its stale transaction_id; there is no cascade.
func (r *TransactionRepository) Delete(ctx context.Context, id string) error {
	lockKey := fmt.Sprintf("transaction_lock:%s", id)
	return withLock(ctx, lockKey, func() error {
		if err := database.DB.Delete(&models.Transaction{}, "transaction_id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete transaction: %w", err)
		}
		return r.invalidate(ctx, id)
	})
}

func (r *TransactionRepository) invalidate(ctx context.Context, id string) error {
	if err := r.cache.Delete(ctx, r.getTransactionCacheKey(id)); err != nil {
		return fmt.Errorf("failed to delete transaction cache: %w", err)
	}
	return r.cache.DeleteAll(ctx, "transactions_cache*")
}

func (r *TransactionRepository) getTransactionCacheKey(id string) string {
	return fmt.Sprintf("transaction_cache:%s", id)
}

func (r *TransactionRepository) getListCacheKey(hospitalID string) string {
	if hospitalID == "" {
		return "transactions_cache:all"
	}
	return fmt.Sprintf("transactions_cache:%s", hospitalID)
}
