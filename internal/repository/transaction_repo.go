package repository

import (
	"errors"
	"time"

	"temani/internal/ledger"
	"temani/internal/models"

	"gorm.io/gorm"
)

// TransactionRepository is the database-backed ledger.Store. State changes
// use a guarded UPDATE (WHERE id AND state) so two concurrent transitions
// on the same row serialize at the database.
type TransactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Create(tx *models.Transaction) error {
	return r.db.Create(tx).Error
}

func (r *TransactionRepository) GetByID(id uint) (*models.Transaction, error) {
	var tx models.Transaction
	err := r.db.First(&tx, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ledger.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

func (r *TransactionRepository) GetByGatewayRef(ref string) (*models.Transaction, error) {
	var tx models.Transaction
	err := r.db.Where("gateway_ref = ?", ref).First(&tx).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ledger.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

func (r *TransactionRepository) CompareAndSwapState(id uint, from, to string, paidAt *time.Time) (bool, error) {
	updates := map[string]interface{}{
		"state":      to,
		"updated_at": time.Now(),
	}
	if paidAt != nil {
		updates["paid_at"] = *paidAt
	}
	res := r.db.Model(&models.Transaction{}).
		Where("id = ? AND state = ?", id, from).
		Updates(updates)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *TransactionRepository) ListByCustomer(customerID uint, limit int) ([]models.Transaction, error) {
	var txs []models.Transaction
	err := r.db.Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Limit(limit).
		Find(&txs).Error
	return txs, err
}
