package handler

import (
	"errors"
	"net/http"
	"strconv"

	"temani/internal/ledger"

	"github.com/gin-gonic/gin"
)

type TransactionHandler struct {
	ledger *ledger.Ledger
}

func NewTransactionHandler(l *ledger.Ledger) *TransactionHandler {
	return &TransactionHandler{ledger: l}
}

func (h *TransactionHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	tx, err := h.ledger.Get(id)
	if errors.Is(err, ledger.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "transaction not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}
	c.JSON(http.StatusOK, tx)
}

func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}
