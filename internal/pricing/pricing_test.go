package pricing

import (
	"testing"

	"temani/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuoteOrderHourlyKinds(t *testing.T) {
	q, err := QuoteOrder(domain.ServiceChat, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(50_000), q.Base)
	assert.Zero(t, q.Surcharge)

	q, err = QuoteOrder(domain.ServiceVoiceCall, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(40_000), q.Base)

	q, err = QuoteOrder(domain.ServiceVideoCall, 3, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(180_000), q.Base)
	assert.Zero(t, q.Surcharge)
}

func TestQuoteOrderOfflineDateBlocks(t *testing.T) {
	// Exactly the block floor: one full block.
	q, err := QuoteOrder(domain.ServiceOfflineDate, 3, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(350_000), q.Base)
	assert.Equal(t, int64(70_000), q.Surcharge) // 20% transport

	// One hour beyond the block adds the per-hour extra rate.
	q, err = QuoteOrder(domain.ServiceOfflineDate, 4, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(450_000), q.Base)
	assert.Equal(t, int64(90_000), q.Surcharge)

	// Below the block floor still bills one full block.
	q, err = QuoteOrder(domain.ServiceOfflineDate, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(350_000), q.Base)
}

func TestQuoteOrderPartyBuddy(t *testing.T) {
	q, err := QuoteOrder(domain.ServicePartyBuddy, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(200_000), q.Base)
	assert.Equal(t, int64(40_000), q.Surcharge)
}

func TestQuoteOrderRentALover(t *testing.T) {
	q, err := QuoteOrder(domain.ServiceRentALover, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(150_000), q.Base)

	// Talent-supplied rate overrides the daily rate; no transport surcharge.
	q, err = QuoteOrder(domain.ServiceRentALover, 2, 50_000)
	require.NoError(t, err)
	assert.Equal(t, int64(100_000), q.Base)
	assert.Zero(t, q.Surcharge)
}

func TestQuoteOrderCustomRateOnlyForRentALover(t *testing.T) {
	for _, kind := range []string{
		domain.ServiceChat,
		domain.ServiceVoiceCall,
		domain.ServiceVideoCall,
		domain.ServiceOfflineDate,
		domain.ServicePartyBuddy,
	} {
		_, err := QuoteOrder(kind, 1, 50_000)
		assert.ErrorIs(t, err, ErrInvalidOrder, "kind %s must reject a custom rate", kind)
	}
}

func TestQuoteOrderInvalid(t *testing.T) {
	_, err := QuoteOrder(domain.ServiceChat, 0, 0)
	assert.ErrorIs(t, err, ErrInvalidOrder)

	_, err = QuoteOrder(domain.ServiceChat, -3, 0)
	assert.ErrorIs(t, err, ErrInvalidOrder)

	_, err = QuoteOrder("SKYDIVING", 1, 0)
	assert.ErrorIs(t, err, ErrInvalidOrder)

	_, err = QuoteOrder(domain.ServiceRentALover, 1, -1)
	assert.ErrorIs(t, err, ErrInvalidOrder)
}
