// Package commission classifies a talent into a commission tier from a
// point-in-time snapshot of their track record. Classification is pure:
// the resulting rate is denormalized onto the transaction at settlement,
// so later profile edits never change a settled transaction.
package commission

import "temani/internal/domain"

// Tier thresholds. VIP is checked first so a talent clearing all three
// bars is never downgraded to ELITE.
const (
	vipMinOrders    = 100
	vipMinAgeMonths = 6
	eliteMinOrders  = 30
	minRating       = 4.5
)

func Classify(completedOrders int, averageRating float64, accountAgeMonths int) string {
	if accountAgeMonths >= vipMinAgeMonths && completedOrders >= vipMinOrders && averageRating >= minRating {
		return domain.TierVip
	}
	if completedOrders >= eliteMinOrders && averageRating >= minRating {
		return domain.TierElite
	}
	return domain.TierFresh
}

// RateBps returns the commission rate for a tier in basis points.
func RateBps(tier string) int64 {
	switch tier {
	case domain.TierVip:
		return 1500
	case domain.TierElite:
		return 1800
	default:
		return 2000
	}
}
