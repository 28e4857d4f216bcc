package models

import "time"

// Transaction is the persisted financial record for one booking. The
// settlement breakdown is denormalized at creation time; later talent
// tier changes never touch a settled transaction. State and PaidAt are
// written only by the ledger.
type Transaction struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	BookingID   uint   `gorm:"not null;index" json:"booking_id"`
	CustomerID  uint   `gorm:"not null;index" json:"customer_id"`
	TalentID    uint   `gorm:"not null;index" json:"talent_id"`
	ServiceKind string `gorm:"size:20;not null" json:"service_kind"`

	BaseAmount        int64  `gorm:"not null" json:"base_amount"`
	SurchargeAmount   int64  `gorm:"not null" json:"surcharge_amount"`
	PlatformFee       int64  `gorm:"not null" json:"platform_fee"`
	CommissionAmount  int64  `gorm:"not null" json:"commission_amount"`
	TalentEarnings    int64  `gorm:"not null" json:"talent_earnings"`
	TotalCharged      int64  `gorm:"not null" json:"total_charged"`
	Currency          string `gorm:"size:3;default:'IDR'" json:"currency"`
	CommissionTier    string `gorm:"size:10;not null" json:"commission_tier"`
	CommissionRateBps int64  `gorm:"not null" json:"commission_rate_bps"`

	State      string     `gorm:"size:20;not null;index" json:"state"` // PENDING, PAID, FAILED, REFUNDED
	GatewayRef string     `gorm:"size:64;uniqueIndex;not null" json:"gateway_ref"`
	PaidAt     *time.Time `json:"paid_at"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`

	Booking Booking `gorm:"foreignKey:BookingID" json:"-"`
}

func (Transaction) TableName() string {
	return "transactions"
}

func (t *Transaction) IsPaid() bool { return t.State == "PAID" }
