package models

import (
	"time"

	"temani/internal/domain"

	"gorm.io/gorm"
)

type Booking struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	CustomerID  uint           `gorm:"not null;index" json:"customer_id"`
	TalentID    uint           `gorm:"not null;index" json:"talent_id"`
	ServiceKind string         `gorm:"size:20;not null;index" json:"service_kind"`
	Duration    int64          `gorm:"not null" json:"duration"` // unit depends on kind: hours, events or days
	CustomRate  int64          `json:"custom_rate"`              // rent-a-lover only
	Status      string         `gorm:"size:20;not null;index" json:"status"` // PENDING_PAYMENT, CONFIRMED, CANCELLED, COMPLETED
	ConfirmedAt *time.Time     `json:"confirmed_at"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	Talent TalentProfile `gorm:"foreignKey:TalentID" json:"-"`
}

func (Booking) TableName() string {
	return "bookings"
}

func (b *Booking) IsConfirmed() bool { return b.Status == domain.BookingConfirmed }
