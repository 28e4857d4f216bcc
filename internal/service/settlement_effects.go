package service

import (
	"log"

	"temani/internal/domain"
	"temani/internal/models"
	"temani/internal/repository"
)

// SettlementEffects fans a committed transaction transition out to the
// downstream collaborators: booking status sync, party notifications and
// the talent wallet. Every step is best-effort; a failure here is logged
// and never rolls back the financial state change that triggered it.
type SettlementEffects struct {
	bookings *repository.BookingRepository
	talents  *repository.TalentRepository
	wallets  *repository.WalletRepository
	notif    *NotificationService
}

func NewSettlementEffects(
	bookings *repository.BookingRepository,
	talents *repository.TalentRepository,
	wallets *repository.WalletRepository,
	notif *NotificationService,
) *SettlementEffects {
	return &SettlementEffects{bookings: bookings, talents: talents, wallets: wallets, notif: notif}
}

func (e *SettlementEffects) PaymentSucceeded(tx *models.Transaction) {
	if err := e.bookings.SetStatus(tx.BookingID, domain.BookingConfirmed); err != nil {
		log.Printf("[Settlement effects] booking %d confirm failed: %v", tx.BookingID, err)
	}
	if err := e.notif.NotifyPaymentConfirmed(tx.CustomerID, tx.TotalCharged, tx.GatewayRef); err != nil {
		log.Printf("[Settlement effects] customer %d notify failed: %v", tx.CustomerID, err)
	}
	talentUserID, ok := e.talentUserID(tx.TalentID)
	if !ok {
		return
	}
	if err := e.wallets.CreditWithdrawable(talentUserID, tx.TalentEarnings, domain.WalletEntryEarning, tx.GatewayRef); err != nil {
		log.Printf("[Settlement effects] wallet credit for talent %d failed: %v", tx.TalentID, err)
		return
	}
	if err := e.notif.NotifyEarningsCredited(talentUserID, tx.TalentEarnings, tx.GatewayRef); err != nil {
		log.Printf("[Settlement effects] talent %d notify failed: %v", tx.TalentID, err)
	}
}

func (e *SettlementEffects) PaymentFailed(tx *models.Transaction) {
	if err := e.bookings.SetStatus(tx.BookingID, domain.BookingCancelled); err != nil {
		log.Printf("[Settlement effects] booking %d cancel failed: %v", tx.BookingID, err)
	}
	if err := e.notif.NotifyPaymentFailed(tx.CustomerID, tx.GatewayRef); err != nil {
		log.Printf("[Settlement effects] customer %d notify failed: %v", tx.CustomerID, err)
	}
}

func (e *SettlementEffects) PaymentRefunded(tx *models.Transaction) {
	if err := e.bookings.SetStatus(tx.BookingID, domain.BookingCancelled); err != nil {
		log.Printf("[Settlement effects] booking %d cancel failed: %v", tx.BookingID, err)
	}
	if err := e.notif.NotifyPaymentRefunded(tx.CustomerID, tx.TotalCharged, tx.GatewayRef); err != nil {
		log.Printf("[Settlement effects] customer %d notify failed: %v", tx.CustomerID, err)
	}
	talentUserID, ok := e.talentUserID(tx.TalentID)
	if !ok {
		return
	}
	// The earnings may already be withdrawn; reversal is best-effort.
	if err := e.wallets.DebitWithdrawable(talentUserID, tx.TalentEarnings, domain.WalletEntryRefundReversal, tx.GatewayRef); err != nil {
		log.Printf("[Settlement effects] wallet reversal for talent %d failed: %v", tx.TalentID, err)
	}
}

func (e *SettlementEffects) talentUserID(talentID uint) (uint, bool) {
	t, err := e.talents.GetByID(talentID)
	if err != nil {
		log.Printf("[Settlement effects] talent %d lookup failed: %v", talentID, err)
		return 0, false
	}
	return t.UserID, true
}
