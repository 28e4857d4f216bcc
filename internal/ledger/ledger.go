// Package ledger owns transaction records and their lifecycle. It is the
// only writer of transaction state: every transition goes through a
// compare-and-swap on the current state, so concurrent callbacks on the
// same transaction serialize instead of double-processing.
package ledger

import (
	"errors"
	"time"

	"temani/internal/domain"
	"temani/internal/models"
	"temani/internal/settlement"

	"github.com/google/uuid"
)

var (
	ErrNotFound          = errors.New("transaction not found")
	ErrIllegalTransition = errors.New("illegal transaction state transition")
)

// Store persists transactions. CompareAndSwapState must atomically move
// the row from `from` to `to` and report whether it won (a SQL UPDATE
// guarded by the current state, or an equivalent lock).
type Store interface {
	Create(tx *models.Transaction) error
	GetByID(id uint) (*models.Transaction, error)
	GetByGatewayRef(ref string) (*models.Transaction, error)
	CompareAndSwapState(id uint, from, to string, paidAt *time.Time) (bool, error)
}

type Ledger struct {
	store Store
}

func New(store Store) *Ledger {
	return &Ledger{store: store}
}

var legalTransitions = map[string]map[string]bool{
	domain.TxPending: {domain.TxPaid: true, domain.TxFailed: true},
	domain.TxPaid:    {domain.TxRefunded: true},
}

// CanTransition reports whether from -> to is a legal lifecycle move.
func CanTransition(from, to string) bool {
	return legalTransitions[from][to]
}

// Create opens a PENDING transaction for a booking, storing the breakdown
// fields verbatim and allocating a fresh gateway reference.
func (l *Ledger) Create(booking *models.Booking, b settlement.Breakdown) (*models.Transaction, error) {
	tx := &models.Transaction{
		BookingID:         booking.ID,
		CustomerID:        booking.CustomerID,
		TalentID:          booking.TalentID,
		ServiceKind:       booking.ServiceKind,
		BaseAmount:        b.BaseAmount,
		SurchargeAmount:   b.SurchargeAmount,
		PlatformFee:       b.PlatformFee,
		CommissionAmount:  b.CommissionAmount,
		TalentEarnings:    b.TalentEarnings,
		TotalCharged:      b.TotalCharged,
		CommissionTier:    b.Tier,
		CommissionRateBps: b.CommissionRateBps,
		State:             domain.TxPending,
		GatewayRef:        uuid.NewString(),
	}
	if err := l.store.Create(tx); err != nil {
		return nil, err
	}
	return tx, nil
}

func (l *Ledger) Get(id uint) (*models.Transaction, error) {
	return l.store.GetByID(id)
}

func (l *Ledger) GetByGatewayRef(ref string) (*models.Transaction, error) {
	return l.store.GetByGatewayRef(ref)
}

// Transition moves a transaction to target if that is legal from its
// current state. settledAt becomes PaidAt on PENDING -> PAID. A lost CAS
// race re-reads and re-validates, so a transition that became illegal
// mid-flight reports ErrIllegalTransition instead of clobbering the winner.
func (l *Ledger) Transition(id uint, target string, settledAt time.Time) (*models.Transaction, error) {
	for attempt := 0; attempt < 3; attempt++ {
		tx, err := l.store.GetByID(id)
		if err != nil {
			return nil, err
		}
		if !CanTransition(tx.State, target) {
			return tx, ErrIllegalTransition
		}
		var paidAt *time.Time
		if target == domain.TxPaid {
			t := settledAt
			paidAt = &t
		}
		won, err := l.store.CompareAndSwapState(id, tx.State, target, paidAt)
		if err != nil {
			return nil, err
		}
		if won {
			return l.store.GetByID(id)
		}
	}
	tx, err := l.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	return tx, ErrIllegalTransition
}
