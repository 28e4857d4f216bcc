package repository

import (
	"errors"

	"temani/internal/models"

	"gorm.io/gorm"
)

var ErrInsufficientBalance = errors.New("insufficient wallet balance")

type WalletRepository struct {
	db *gorm.DB
}

func NewWalletRepository(db *gorm.DB) *WalletRepository {
	return &WalletRepository{db: db}
}

func (r *WalletRepository) GetByUserID(userID uint) (*models.Wallet, error) {
	var w models.Wallet
	err := r.db.Where("user_id = ?", userID).First(&w).Error
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *WalletRepository) GetOrCreate(userID uint) (*models.Wallet, error) {
	w, err := r.GetByUserID(userID)
	if err == nil {
		return w, nil
	}
	w = &models.Wallet{UserID: userID, WithdrawableAmount: 0, Currency: "IDR"}
	if err := r.db.Create(w).Error; err != nil {
		return nil, err
	}
	return w, nil
}

// CreditWithdrawable adds settled earnings to a talent's withdrawable
// balance and records a history entry.
func (r *WalletRepository) CreditWithdrawable(userID uint, amount int64, entryType, reference string) error {
	w, err := r.GetOrCreate(userID)
	if err != nil {
		return err
	}
	if err := r.db.Model(w).
		Update("withdrawable_amount", gorm.Expr("withdrawable_amount + ?", amount)).Error; err != nil {
		return err
	}
	return r.db.Create(&models.WalletEntry{
		UserID:    userID,
		Amount:    amount,
		Type:      entryType,
		Reference: reference,
	}).Error
}

// DebitWithdrawable reverses earnings (refund of a paid transaction). The
// balance guard in the WHERE clause keeps concurrent debits from driving
// the balance negative.
func (r *WalletRepository) DebitWithdrawable(userID uint, amount int64, entryType, reference string) error {
	res := r.db.Model(&models.Wallet{}).
		Where("user_id = ? AND withdrawable_amount >= ?", userID, amount).
		Update("withdrawable_amount", gorm.Expr("withdrawable_amount - ?", amount))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInsufficientBalance
	}
	return r.db.Create(&models.WalletEntry{
		UserID:    userID,
		Amount:    -amount,
		Type:      entryType,
		Reference: reference,
	}).Error
}

func (r *WalletRepository) ListEntries(userID uint, limit int) ([]models.WalletEntry, error) {
	var entries []models.WalletEntry
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}
