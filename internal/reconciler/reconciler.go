// Package reconciler applies asynchronous payment-gateway callbacks to the
// transaction ledger. Delivery is at-least-once and out-of-order: the same
// event may arrive twice and a stale "pending" update may trail a "settled"
// one. Reconciliation is therefore idempotent, and side effects fire only
// on the one call that actually commits a transition.
package reconciler

import (
	"errors"
	"fmt"
	"log"
	"time"

	"temani/internal/domain"
	"temani/internal/ledger"
	"temani/internal/models"
)

// ErrUnknownTransaction means the gateway referenced a transaction this
// system has no record of. That is a cross-system consistency bug, never
// a normal race, so it is surfaced instead of acknowledged.
var ErrUnknownTransaction = errors.New("callback references unknown transaction")

// Event is an inbound, untrusted gateway notification.
type Event struct {
	GatewayRef string    `json:"gateway_ref"`
	Status     string    `json:"status"`
	FraudFlag  string    `json:"fraud_flag"`
	RawPayload string    `json:"-"`
	ReceivedAt time.Time `json:"-"`
}

// Result reports what reconciling one event did.
type Result struct {
	TransactionID uint   `json:"transaction_id"`
	PreviousState string `json:"previous_state"`
	State         string `json:"state"`
	Transitioned  bool   `json:"transitioned"`
	Duplicate     bool   `json:"duplicate"`
}

// Effects receives the downstream side effects of a committed transition.
// Implementations are best-effort: they log their own failures and never
// report back, so a lost notification cannot undo a financial state change.
type Effects interface {
	PaymentSucceeded(tx *models.Transaction)
	PaymentFailed(tx *models.Transaction)
	PaymentRefunded(tx *models.Transaction)
}

type Reconciler struct {
	ledger  *ledger.Ledger
	effects Effects
}

func New(l *ledger.Ledger, effects Effects) *Reconciler {
	return &Reconciler{ledger: l, effects: effects}
}

// MapStatus translates the gateway status vocabulary to a target internal
// state. Empty string means informational only, no transition. A capture
// settles only once the gateway's fraud check accepted it.
func MapStatus(status, fraudFlag string) string {
	switch status {
	case "settlement":
		return domain.TxPaid
	case "capture":
		if fraudFlag == "accept" {
			return domain.TxPaid
		}
		return ""
	case "deny", "cancel", "expire":
		return domain.TxFailed
	case "refund", "partial_refund":
		return domain.TxRefunded
	default:
		return ""
	}
}

// Reconcile looks up the transaction behind the event and applies the
// mapped transition. Duplicates (target equals current state) and stale
// out-of-order events (illegal from the current state) are successful
// no-ops; the gateway gets an acknowledgment either way so it stops
// retrying.
func (r *Reconciler) Reconcile(event Event) (*Result, error) {
	tx, err := r.ledger.GetByGatewayRef(event.GatewayRef)
	if errors.Is(err, ledger.ErrNotFound) {
		return nil, fmt.Errorf("%w: gateway_ref=%s", ErrUnknownTransaction, event.GatewayRef)
	}
	if err != nil {
		return nil, err
	}

	target := MapStatus(event.Status, event.FraudFlag)
	if target == "" {
		log.Printf("[Reconciler] informational status=%s fraud=%s for tx %d (state %s)", event.Status, event.FraudFlag, tx.ID, tx.State)
		return &Result{TransactionID: tx.ID, PreviousState: tx.State, State: tx.State}, nil
	}
	if tx.State == target {
		log.Printf("[Reconciler] duplicate delivery for tx %d: already %s", tx.ID, tx.State)
		return &Result{TransactionID: tx.ID, PreviousState: tx.State, State: tx.State, Duplicate: true}, nil
	}

	settledAt := event.ReceivedAt
	if settledAt.IsZero() {
		settledAt = time.Now()
	}
	updated, err := r.ledger.Transition(tx.ID, target, settledAt)
	if errors.Is(err, ledger.ErrIllegalTransition) {
		state := tx.State
		if updated != nil {
			state = updated.State
		}
		log.Printf("[Reconciler] stale event for tx %d: %s -> %s not legal, staying %s", tx.ID, state, target, state)
		return &Result{TransactionID: tx.ID, PreviousState: tx.State, State: state}, nil
	}
	if err != nil {
		return nil, err
	}

	// The CAS in the ledger guarantees exactly one caller reaches this
	// point per transition, so effects fire at most once.
	switch target {
	case domain.TxPaid:
		r.effects.PaymentSucceeded(updated)
	case domain.TxFailed:
		r.effects.PaymentFailed(updated)
	case domain.TxRefunded:
		r.effects.PaymentRefunded(updated)
	}
	return &Result{
		TransactionID: tx.ID,
		PreviousState: tx.State,
		State:         updated.State,
		Transitioned:  true,
	}, nil
}
