package handler

import (
	"errors"
	"net/http"

	"temani/internal/domain"
	"temani/internal/ledger"
	"temani/internal/models"
	"temani/internal/pricing"
	"temani/internal/repository"
	"temani/internal/settlement"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingRepo *repository.BookingRepository
	talentRepo  *repository.TalentRepository
	ledger      *ledger.Ledger
}

func NewBookingHandler(bookingRepo *repository.BookingRepository, talentRepo *repository.TalentRepository, l *ledger.Ledger) *BookingHandler {
	return &BookingHandler{bookingRepo: bookingRepo, talentRepo: talentRepo, ledger: l}
}

// Create settles a service order: prices it against the talent's current
// tier, opens the booking and a PENDING transaction, and returns the
// breakdown plus the gateway reference the payment session will use.
func (h *BookingHandler) Create(c *gin.Context) {
	var req struct {
		CustomerID  uint   `json:"customer_id" binding:"required"`
		TalentID    uint   `json:"talent_id" binding:"required"`
		ServiceKind string `json:"service_kind" binding:"required"`
		Duration    int64  `json:"duration" binding:"required"`
		CustomRate  int64  `json:"custom_rate"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	talent, err := h.talentRepo.GetByID(req.TalentID)
	if err != nil || talent == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "talent not found"})
		return
	}
	if !talent.IsActive {
		c.JSON(http.StatusConflict, gin.H{"error": "talent is not accepting bookings"})
		return
	}
	snapshot, err := h.talentRepo.Snapshot(req.TalentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "talent snapshot failed"})
		return
	}
	order := settlement.Order{
		CustomerID:  req.CustomerID,
		TalentID:    req.TalentID,
		ServiceKind: req.ServiceKind,
		Duration:    req.Duration,
		CustomRate:  req.CustomRate,
	}
	breakdown, err := settlement.Compute(order, snapshot)
	if errors.Is(err, pricing.ErrInvalidOrder) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "settlement failed"})
		return
	}
	booking := &models.Booking{
		CustomerID:  req.CustomerID,
		TalentID:    req.TalentID,
		ServiceKind: req.ServiceKind,
		Duration:    req.Duration,
		CustomRate:  req.CustomRate,
		Status:      domain.BookingPendingPayment,
	}
	if err := h.bookingRepo.Create(booking); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "booking create failed"})
		return
	}
	tx, err := h.ledger.Create(booking, breakdown)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "transaction create failed"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"booking_id":     booking.ID,
		"transaction_id": tx.ID,
		"gateway_ref":    tx.GatewayRef,
		"breakdown":      breakdown,
	})
}

func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	booking, err := h.bookingRepo.GetByID(id)
	if err != nil || booking == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		return
	}
	c.JSON(http.StatusOK, booking)
}
