package settlement

import (
	"math/rand"
	"testing"

	"temani/internal/domain"
	"temani/internal/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var freshTalent = TalentSnapshot{CompletedOrders: 3, AverageRating: 4.0, AccountAgeMonths: 1}

func TestComputeFreshTierScenario(t *testing.T) {
	// Service amount 100,000 at the 20% fresh rate.
	b, err := Compute(Order{
		ServiceKind: domain.ServiceRentALover,
		Duration:    2,
		CustomRate:  50_000,
	}, freshTalent)
	require.NoError(t, err)

	assert.Equal(t, int64(100_000), b.BaseAmount)
	assert.Zero(t, b.SurchargeAmount)
	assert.Equal(t, int64(100_000), b.ServiceAmount)
	assert.Equal(t, int64(20_000), b.CommissionAmount)
	assert.Equal(t, int64(80_000), b.TalentEarnings)
	assert.Equal(t, int64(10_000), b.PlatformFee)
	assert.Equal(t, int64(110_000), b.TotalCharged)
	assert.Equal(t, domain.TierFresh, b.Tier)
	assert.Equal(t, int64(2000), b.CommissionRateBps)
}

func TestComputeOfflineDateScenario(t *testing.T) {
	b, err := Compute(Order{ServiceKind: domain.ServiceOfflineDate, Duration: 3}, freshTalent)
	require.NoError(t, err)

	assert.Equal(t, int64(350_000), b.BaseAmount)
	assert.Equal(t, int64(70_000), b.SurchargeAmount)
	assert.Equal(t, int64(420_000), b.ServiceAmount)
	assert.Equal(t, int64(42_000), b.PlatformFee)
	assert.Equal(t, int64(462_000), b.TotalCharged)

	b, err = Compute(Order{ServiceKind: domain.ServiceOfflineDate, Duration: 4}, freshTalent)
	require.NoError(t, err)
	assert.Equal(t, int64(450_000), b.BaseAmount)
}

func TestComputeTierDenormalized(t *testing.T) {
	vip := TalentSnapshot{CompletedOrders: 200, AverageRating: 4.8, AccountAgeMonths: 24}
	b, err := Compute(Order{ServiceKind: domain.ServiceChat, Duration: 4}, vip)
	require.NoError(t, err)
	assert.Equal(t, domain.TierVip, b.Tier)
	assert.Equal(t, int64(1500), b.CommissionRateBps)
	assert.Equal(t, int64(15_000), b.CommissionAmount) // 15% of 100,000
	assert.Equal(t, int64(85_000), b.TalentEarnings)
}

func TestComputePropagatesPricingErrors(t *testing.T) {
	_, err := Compute(Order{ServiceKind: "BAD", Duration: 1}, freshTalent)
	assert.ErrorIs(t, err, pricing.ErrInvalidOrder)

	_, err = Compute(Order{ServiceKind: domain.ServiceChat, Duration: 0}, freshTalent)
	assert.ErrorIs(t, err, pricing.ErrInvalidOrder)
}

// TestComputeBreakdownSumsExactly checks the reconciliation invariants over
// a spread of random valid orders and talent histories: every field is
// rounded independently, so the parts must always sum to the totals.
func TestComputeBreakdownSumsExactly(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	kinds := []string{
		domain.ServiceChat,
		domain.ServiceVoiceCall,
		domain.ServiceVideoCall,
		domain.ServiceOfflineDate,
		domain.ServicePartyBuddy,
		domain.ServiceRentALover,
	}
	for i := 0; i < 500; i++ {
		order := Order{
			ServiceKind: kinds[rng.Intn(len(kinds))],
			Duration:    int64(rng.Intn(20) + 1),
		}
		if order.ServiceKind == domain.ServiceRentALover && rng.Intn(2) == 0 {
			order.CustomRate = int64(rng.Intn(400_000) + 10_000)
		}
		talent := TalentSnapshot{
			CompletedOrders:  rng.Intn(300),
			AverageRating:    float64(rng.Intn(51)) / 10,
			AccountAgeMonths: rng.Intn(36),
		}
		b, err := Compute(order, talent)
		require.NoError(t, err)

		assert.Equal(t, b.TotalCharged, b.BaseAmount+b.SurchargeAmount+b.PlatformFee,
			"customer total must reconcile for %+v", order)
		assert.Equal(t, b.ServiceAmount, b.CommissionAmount+b.TalentEarnings,
			"talent split must reconcile for %+v", order)
		assert.Equal(t, b.ServiceAmount, b.BaseAmount+b.SurchargeAmount)
		assert.GreaterOrEqual(t, b.TalentEarnings, int64(0))
		assert.Greater(t, b.TotalCharged, int64(0))
	}
}
