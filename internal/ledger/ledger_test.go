package ledger

import (
	"sync"
	"testing"
	"time"

	"temani/internal/domain"
	"temani/internal/models"
	"temani/internal/settlement"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLedger(t *testing.T) (*Ledger, *models.Transaction) {
	t.Helper()
	l := New(NewMemoryStore())
	booking := &models.Booking{ID: 7, CustomerID: 11, TalentID: 22, ServiceKind: domain.ServiceChat}
	tx, err := l.Create(booking, settlement.Breakdown{
		BaseAmount:        100_000,
		ServiceAmount:     100_000,
		PlatformFee:       10_000,
		CommissionAmount:  20_000,
		TalentEarnings:    80_000,
		TotalCharged:      110_000,
		Tier:              domain.TierFresh,
		CommissionRateBps: 2000,
	})
	require.NoError(t, err)
	return l, tx
}

func TestCreate(t *testing.T) {
	l, tx := newTestLedger(t)

	assert.Equal(t, domain.TxPending, tx.State)
	assert.NotEmpty(t, tx.GatewayRef)
	assert.Nil(t, tx.PaidAt)
	assert.Equal(t, int64(110_000), tx.TotalCharged)
	assert.Equal(t, domain.TierFresh, tx.CommissionTier)

	got, err := l.GetByGatewayRef(tx.GatewayRef)
	require.NoError(t, err)
	assert.Equal(t, tx.ID, got.ID)
}

func TestGetUnknown(t *testing.T) {
	l := New(NewMemoryStore())
	_, err := l.Get(99)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = l.GetByGatewayRef("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTransitionPendingToPaidSetsPaidAt(t *testing.T) {
	l, tx := newTestLedger(t)
	settledAt := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	got, err := l.Transition(tx.ID, domain.TxPaid, settledAt)
	require.NoError(t, err)
	assert.Equal(t, domain.TxPaid, got.State)
	require.NotNil(t, got.PaidAt)
	assert.True(t, got.PaidAt.Equal(settledAt))
}

func TestTransitionMatrix(t *testing.T) {
	legal := [][2]string{
		{domain.TxPending, domain.TxPaid},
		{domain.TxPending, domain.TxFailed},
		{domain.TxPaid, domain.TxRefunded},
	}
	illegal := [][2]string{
		{domain.TxPaid, domain.TxPending},
		{domain.TxPaid, domain.TxFailed},
		{domain.TxFailed, domain.TxPaid},
		{domain.TxFailed, domain.TxRefunded},
		{domain.TxRefunded, domain.TxPending},
		{domain.TxRefunded, domain.TxPaid},
		{domain.TxRefunded, domain.TxFailed},
		{domain.TxPending, domain.TxPending},
		{domain.TxPending, domain.TxRefunded},
	}
	for _, pair := range legal {
		assert.True(t, CanTransition(pair[0], pair[1]), "%s -> %s should be legal", pair[0], pair[1])
	}
	for _, pair := range illegal {
		assert.False(t, CanTransition(pair[0], pair[1]), "%s -> %s should be illegal", pair[0], pair[1])
	}
}

func TestTransitionIllegalIsNoOp(t *testing.T) {
	l, tx := newTestLedger(t)
	_, err := l.Transition(tx.ID, domain.TxPaid, time.Now())
	require.NoError(t, err)

	got, err := l.Transition(tx.ID, domain.TxFailed, time.Now())
	assert.ErrorIs(t, err, ErrIllegalTransition)
	require.NotNil(t, got)
	assert.Equal(t, domain.TxPaid, got.State)

	// Paid survives; refund is still reachable.
	got, err = l.Transition(tx.ID, domain.TxRefunded, time.Now())
	require.NoError(t, err)
	assert.Equal(t, domain.TxRefunded, got.State)

	_, err = l.Transition(tx.ID, domain.TxPaid, time.Now())
	assert.ErrorIs(t, err, ErrIllegalTransition)
}

func TestTransitionUnknownTransaction(t *testing.T) {
	l := New(NewMemoryStore())
	_, err := l.Transition(42, domain.TxPaid, time.Now())
	assert.ErrorIs(t, err, ErrNotFound)
}

// TestTransitionConcurrentRace fires competing paid/failed transitions at
// one transaction. The compare-and-swap must let exactly one through.
func TestTransitionConcurrentRace(t *testing.T) {
	l, tx := newTestLedger(t)

	const workers = 32
	var wg sync.WaitGroup
	var mu sync.Mutex
	wins := 0
	for i := 0; i < workers; i++ {
		target := domain.TxPaid
		if i%2 == 1 {
			target = domain.TxFailed
		}
		wg.Add(1)
		go func(target string) {
			defer wg.Done()
			if _, err := l.Transition(tx.ID, target, time.Now()); err == nil {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}(target)
	}
	wg.Wait()

	assert.Equal(t, 1, wins)
	got, err := l.Get(tx.ID)
	require.NoError(t, err)
	assert.Contains(t, []string{domain.TxPaid, domain.TxFailed}, got.State)
}
