// Package pricing maps a service kind and duration to a base amount and
// surcharge. All amounts are whole IDR.
package pricing

import (
	"errors"
	"fmt"

	"temani/internal/domain"
)

var ErrInvalidOrder = errors.New("invalid order")

// Per-unit rates. Duration is interpreted per kind: hours for chat and
// call kinds, hours for offline dates, events for party buddy, days for
// rent-a-lover.
const (
	chatHourlyRate      int64 = 25_000
	voiceCallHourlyRate int64 = 40_000
	videoCallHourlyRate int64 = 60_000

	// Offline dates bill a fixed base for the first block of hours and a
	// per-hour rate beyond it. Shorter dates still pay the full block.
	offlineDateBlockHours int64 = 3
	offlineDateBlockRate  int64 = 350_000
	offlineDateExtraRate  int64 = 100_000

	partyBuddyEventRate int64 = 200_000

	rentALoverDailyRate int64 = 150_000
)

// Quote is the priced portion of an order before fees and commission.
type Quote struct {
	Base      int64 `json:"base"`
	Surcharge int64 `json:"surcharge"`
}

// QuoteOrder prices a service kind for the given duration. customRate
// overrides the daily rate for rent-a-lover only; any other kind rejects it.
func QuoteOrder(kind string, duration int64, customRate int64) (Quote, error) {
	if duration <= 0 {
		return Quote{}, fmt.Errorf("%w: duration must be positive, got %d", ErrInvalidOrder, duration)
	}
	if customRate < 0 {
		return Quote{}, fmt.Errorf("%w: custom rate must not be negative", ErrInvalidOrder)
	}
	if customRate > 0 && kind != domain.ServiceRentALover {
		return Quote{}, fmt.Errorf("%w: custom rate is only supported for %s", ErrInvalidOrder, domain.ServiceRentALover)
	}

	switch kind {
	case domain.ServiceChat:
		return Quote{Base: chatHourlyRate * duration}, nil
	case domain.ServiceVoiceCall:
		return Quote{Base: voiceCallHourlyRate * duration}, nil
	case domain.ServiceVideoCall:
		return Quote{Base: videoCallHourlyRate * duration}, nil
	case domain.ServiceOfflineDate:
		base := offlineDateBlockRate
		if duration > offlineDateBlockHours {
			base += offlineDateExtraRate * (duration - offlineDateBlockHours)
		}
		return Quote{Base: base, Surcharge: transportSurcharge(base)}, nil
	case domain.ServicePartyBuddy:
		base := partyBuddyEventRate * duration
		return Quote{Base: base, Surcharge: transportSurcharge(base)}, nil
	case domain.ServiceRentALover:
		rate := rentALoverDailyRate
		if customRate > 0 {
			rate = customRate
		}
		return Quote{Base: rate * duration}, nil
	default:
		return Quote{}, fmt.Errorf("%w: unknown service kind %q", ErrInvalidOrder, kind)
	}
}

// transportSurcharge rounds half up to the nearest whole IDR.
func transportSurcharge(amount int64) int64 {
	return (amount*domain.TransportSurchargeBps + 5_000) / 10_000
}
