// Package settlement turns a service order into a financial breakdown:
// what the customer pays, what the platform keeps, what the talent earns.
package settlement

import (
	"temani/internal/commission"
	"temani/internal/domain"
	"temani/internal/pricing"
)

// Order is an immutable pricing request handed in by the booking flow.
type Order struct {
	CustomerID  uint
	TalentID    uint
	ServiceKind string
	Duration    int64
	// CustomRate is a talent-supplied per-day rate, rent-a-lover only.
	CustomRate int64
}

// TalentSnapshot is the slice of a talent profile the classifier reads.
type TalentSnapshot struct {
	CompletedOrders  int
	AverageRating    float64
	AccountAgeMonths int
}

// Breakdown is computed once per order and stored verbatim on the
// transaction. Invariants: Base+Surcharge+PlatformFee == TotalCharged and
// Commission+TalentEarnings == Base+Surcharge.
type Breakdown struct {
	BaseAmount        int64  `json:"base_amount"`
	SurchargeAmount   int64  `json:"surcharge_amount"`
	ServiceAmount     int64  `json:"service_amount"`
	PlatformFee       int64  `json:"platform_fee"`
	CommissionAmount  int64  `json:"commission_amount"`
	TalentEarnings    int64  `json:"talent_earnings"`
	TotalCharged      int64  `json:"total_charged"`
	Tier              string `json:"tier"`
	CommissionRateBps int64  `json:"commission_rate_bps"`
}

// Compute prices the order and splits the service amount three ways.
// Fee and commission are both taken from the service amount, not the
// customer total, so fees never compound. Each derived field is rounded
// half up independently; the remainder fields are differences, so the
// breakdown always sums exactly.
func Compute(order Order, talent TalentSnapshot) (Breakdown, error) {
	quote, err := pricing.QuoteOrder(order.ServiceKind, order.Duration, order.CustomRate)
	if err != nil {
		return Breakdown{}, err
	}
	serviceAmount := quote.Base + quote.Surcharge

	tier := commission.Classify(talent.CompletedOrders, talent.AverageRating, talent.AccountAgeMonths)
	rateBps := commission.RateBps(tier)

	commissionAmount := roundHalfUpBps(serviceAmount, rateBps)
	platformFee := roundHalfUpBps(serviceAmount, domain.PlatformFeeBps)

	return Breakdown{
		BaseAmount:        quote.Base,
		SurchargeAmount:   quote.Surcharge,
		ServiceAmount:     serviceAmount,
		PlatformFee:       platformFee,
		CommissionAmount:  commissionAmount,
		TalentEarnings:    serviceAmount - commissionAmount,
		TotalCharged:      serviceAmount + platformFee,
		Tier:              tier,
		CommissionRateBps: rateBps,
	}, nil
}

func roundHalfUpBps(amount, bps int64) int64 {
	return (amount*bps + 5_000) / 10_000
}
