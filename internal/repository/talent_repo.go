package repository

import (
	"time"

	"temani/internal/models"
	"temani/internal/settlement"

	"gorm.io/gorm"
)

type TalentRepository struct {
	db *gorm.DB
}

func NewTalentRepository(db *gorm.DB) *TalentRepository {
	return &TalentRepository{db: db}
}

func (r *TalentRepository) Create(t *models.TalentProfile) error {
	return r.db.Create(t).Error
}

func (r *TalentRepository) GetByID(id uint) (*models.TalentProfile, error) {
	var t models.TalentProfile
	err := r.db.First(&t, id).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TalentRepository) Update(t *models.TalentProfile) error {
	return r.db.Save(t).Error
}

// Snapshot captures the classifier inputs at this instant. The tier
// derived from it is denormalized onto the transaction, so later edits
// to the profile never reprice a settled order.
func (r *TalentRepository) Snapshot(id uint) (settlement.TalentSnapshot, error) {
	t, err := r.GetByID(id)
	if err != nil {
		return settlement.TalentSnapshot{}, err
	}
	return settlement.TalentSnapshot{
		CompletedOrders:  t.CompletedOrders,
		AverageRating:    t.RatingAvg,
		AccountAgeMonths: monthsSince(t.JoinedAt, time.Now()),
	}, nil
}

func monthsSince(from, now time.Time) int {
	if now.Before(from) {
		return 0
	}
	months := (now.Year()-from.Year())*12 + int(now.Month()) - int(from.Month())
	if now.Day() < from.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}
