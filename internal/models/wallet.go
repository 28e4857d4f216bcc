package models

import (
	"time"

	"gorm.io/gorm"
)

type Wallet struct {
	ID                 uint           `gorm:"primaryKey" json:"id"`
	UserID             uint           `gorm:"uniqueIndex;not null" json:"user_id"`
	WithdrawableAmount int64          `gorm:"not null;default:0" json:"withdrawable_amount"`
	Currency           string         `gorm:"size:3;default:'IDR'" json:"currency"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Wallet) TableName() string {
	return "wallets"
}

// WalletEntry records credits/debits for wallet history (talent earnings,
// refund reversals). Positive amount = credit, negative = debit.
type WalletEntry struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserID    uint           `gorm:"not null;index" json:"user_id"`
	Amount    int64          `gorm:"not null" json:"amount"`
	Type      string         `gorm:"size:30;not null;index" json:"type"` // EARNING, REFUND_REVERSAL
	Reference string         `gorm:"size:128" json:"reference"`          // gateway ref of the transaction
	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (WalletEntry) TableName() string {
	return "wallet_entries"
}
