package handler

import (
	"net/http"
	"time"

	"temani/internal/commission"
	"temani/internal/models"
	"temani/internal/repository"

	"github.com/gin-gonic/gin"
)

type TalentHandler struct {
	talentRepo *repository.TalentRepository
}

func NewTalentHandler(talentRepo *repository.TalentRepository) *TalentHandler {
	return &TalentHandler{talentRepo: talentRepo}
}

func (h *TalentHandler) Create(c *gin.Context) {
	var req struct {
		UserID          uint    `json:"user_id" binding:"required"`
		DisplayName     string  `json:"display_name" binding:"required"`
		CompletedOrders int     `json:"completed_orders"`
		RatingAvg       float64 `json:"rating_avg" binding:"max=5"`
		JoinedAt        string  `json:"joined_at"` // RFC 3339, defaults to now
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	joined := time.Now()
	if req.JoinedAt != "" {
		t, err := time.Parse(time.RFC3339, req.JoinedAt)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "joined_at must be RFC 3339"})
			return
		}
		joined = t
	}
	talent := &models.TalentProfile{
		UserID:          req.UserID,
		DisplayName:     req.DisplayName,
		CompletedOrders: req.CompletedOrders,
		RatingAvg:       req.RatingAvg,
		JoinedAt:        joined,
		IsActive:        true,
	}
	if err := h.talentRepo.Create(talent); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	c.JSON(http.StatusCreated, talent)
}

// GetTier previews the commission tier the talent would settle at right
// now. The tier is never stored on the profile; it is recomputed from a
// snapshot at every settlement.
func (h *TalentHandler) GetTier(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	snapshot, err := h.talentRepo.Snapshot(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "talent not found"})
		return
	}
	tier := commission.Classify(snapshot.CompletedOrders, snapshot.AverageRating, snapshot.AccountAgeMonths)
	c.JSON(http.StatusOK, gin.H{
		"tier":                tier,
		"commission_rate_bps": commission.RateBps(tier),
		"completed_orders":    snapshot.CompletedOrders,
		"average_rating":      snapshot.AverageRating,
		"account_age_months":  snapshot.AccountAgeMonths,
	})
}
