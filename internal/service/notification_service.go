package service

import (
	"encoding/json"
	"fmt"
	"log"

	"temani/internal/domain"
	"temani/internal/models"
	"temani/internal/repository"
)

// NotificationService persists notification rows and requests delivery
// from the external dispatcher. Delivery is fire-and-forget.
type NotificationService struct {
	repo *repository.NotificationRepository
}

func NewNotificationService(repo *repository.NotificationRepository) *NotificationService {
	return &NotificationService{repo: repo}
}

func (s *NotificationService) Notify(userID uint, notifType, title, body string, data map[string]interface{}) error {
	var dataJSON string
	if data != nil {
		b, _ := json.Marshal(data)
		dataJSON = string(b)
	}
	err := s.repo.Create(&models.Notification{
		UserID: userID,
		Type:   notifType,
		Title:  title,
		Body:   body,
		Data:   dataJSON,
	})
	if err != nil {
		return err
	}
	// Push delivery is handled by the external dispatcher.
	log.Printf("[Notify] user=%d type=%s", userID, notifType)
	return nil
}

func (s *NotificationService) NotifyPaymentConfirmed(userID uint, amount int64, reference string) error {
	return s.Notify(userID, domain.NotifPaymentConfirmed, "Payment confirmed",
		fmt.Sprintf("Your payment of %d IDR was successful.", amount),
		map[string]interface{}{"amount": amount, "reference": reference})
}

func (s *NotificationService) NotifyPaymentFailed(userID uint, reference string) error {
	return s.Notify(userID, domain.NotifPaymentFailed, "Payment failed",
		"Your payment did not go through. The booking was cancelled.",
		map[string]interface{}{"reference": reference})
}

func (s *NotificationService) NotifyPaymentRefunded(userID uint, amount int64, reference string) error {
	return s.Notify(userID, domain.NotifPaymentRefunded, "Payment refunded",
		fmt.Sprintf("Your payment of %d IDR was refunded.", amount),
		map[string]interface{}{"amount": amount, "reference": reference})
}

func (s *NotificationService) NotifyEarningsCredited(userID uint, amount int64, reference string) error {
	return s.Notify(userID, domain.NotifEarningsCredited, "Earnings credited",
		fmt.Sprintf("%d IDR was added to your withdrawable balance.", amount),
		map[string]interface{}{"amount": amount, "reference": reference})
}
