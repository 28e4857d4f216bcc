package models

import (
	"time"

	"gorm.io/gorm"
)

// TalentProfile holds the subset of talent data the settlement engine
// reads: the track record behind commission tiering. Profile management
// (media, bio, availability) lives in the talent subsystem.
type TalentProfile struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	UserID          uint           `gorm:"uniqueIndex;not null" json:"user_id"`
	DisplayName     string         `gorm:"size:100;not null" json:"display_name"`
	CompletedOrders int            `gorm:"not null;default:0" json:"completed_orders"`
	RatingAvg       float64        `gorm:"not null;default:0" json:"rating_avg"` // 0-5
	JoinedAt        time.Time      `gorm:"not null" json:"joined_at"`
	IsActive        bool           `gorm:"default:true;index" json:"is_active"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

func (TalentProfile) TableName() string {
	return "talent_profiles"
}
