package repository

import (
	"time"

	"temani/internal/domain"
	"temani/internal/models"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(b *models.Booking) error {
	return r.db.Create(b).Error
}

func (r *BookingRepository) GetByID(id uint) (*models.Booking, error) {
	var b models.Booking
	err := r.db.First(&b, id).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// SetStatus syncs the booking lifecycle after a payment outcome.
// Confirmation stamps ConfirmedAt.
func (r *BookingRepository) SetStatus(id uint, status string) error {
	updates := map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	}
	if status == domain.BookingConfirmed {
		updates["confirmed_at"] = time.Now()
	}
	return r.db.Model(&models.Booking{}).Where("id = ?", id).Updates(updates).Error
}

func (r *BookingRepository) ListByCustomer(customerID uint, limit int) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Limit(limit).
		Find(&bookings).Error
	return bookings, err
}
