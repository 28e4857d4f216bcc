package handler

import (
	"net/http"

	"temani/internal/repository"

	"github.com/gin-gonic/gin"
)

type WalletHandler struct {
	walletRepo *repository.WalletRepository
	talentRepo *repository.TalentRepository
}

func NewWalletHandler(walletRepo *repository.WalletRepository, talentRepo *repository.TalentRepository) *WalletHandler {
	return &WalletHandler{walletRepo: walletRepo, talentRepo: talentRepo}
}

func (h *WalletHandler) GetBalance(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	talent, err := h.talentRepo.GetByID(id)
	if err != nil || talent == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "talent not found"})
		return
	}
	w, err := h.walletRepo.GetOrCreate(talent.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "wallet lookup failed"})
		return
	}
	c.JSON(http.StatusOK, w)
}

func (h *WalletHandler) GetEntries(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	talent, err := h.talentRepo.GetByID(id)
	if err != nil || talent == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "talent not found"})
		return
	}
	entries, err := h.walletRepo.ListEntries(talent.UserID, 50)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "history lookup failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}
