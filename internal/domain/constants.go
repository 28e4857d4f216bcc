package domain

// Service kinds a customer can book.
const (
	ServiceChat        = "CHAT"
	ServiceVoiceCall   = "VOICE_CALL"
	ServiceVideoCall   = "VIDEO_CALL"
	ServiceOfflineDate = "OFFLINE_DATE"
	ServicePartyBuddy  = "PARTY_BUDDY"
	ServiceRentALover  = "RENT_A_LOVER"
)

// Transaction lifecycle states. Legal transitions:
// PENDING -> PAID, PENDING -> FAILED, PAID -> REFUNDED.
const (
	TxPending  = "PENDING"
	TxPaid     = "PAID"
	TxFailed   = "FAILED"
	TxRefunded = "REFUNDED"
)

const (
	BookingPendingPayment = "PENDING_PAYMENT"
	BookingConfirmed      = "CONFIRMED"
	BookingCancelled      = "CANCELLED"
	BookingCompleted      = "COMPLETED"
)

// Talent commission tiers.
const (
	TierFresh = "FRESH"
	TierElite = "ELITE"
	TierVip   = "VIP"
)

// PlatformFeeBps is charged to the customer on top of the service amount,
// independent of talent tier.
const PlatformFeeBps int64 = 1000 // 10%

// TransportSurchargeBps applies to in-person services (offline date, party buddy).
const TransportSurchargeBps int64 = 2000 // 20%

const (
	NotifPaymentConfirmed = "PAYMENT_CONFIRMED"
	NotifPaymentFailed    = "PAYMENT_FAILED"
	NotifPaymentRefunded  = "PAYMENT_REFUNDED"
	NotifEarningsCredited = "EARNINGS_CREDITED"
)

const (
	WalletEntryEarning        = "EARNING"
	WalletEntryRefundReversal = "REFUND_REVERSAL"
)
