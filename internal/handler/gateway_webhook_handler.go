package handler

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"temani/config"
	"temani/internal/models"
	"temani/internal/reconciler"
	"temani/internal/repository"

	"github.com/gin-gonic/gin"
)

// GatewayCallback is the webhook payload from the payment gateway.
type GatewayCallback struct {
	OrderID           string `json:"order_id"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	PaymentType       string `json:"payment_type"`
	TransactionTime   string `json:"transaction_time"`
	SettlementTime    string `json:"settlement_time"`
}

type GatewayWebhookHandler struct {
	reconciler *reconciler.Reconciler
	auditRepo  *repository.AuditLogRepository
	cfg        *config.Config
}

func NewGatewayWebhookHandler(r *reconciler.Reconciler, auditRepo *repository.AuditLogRepository, cfg *config.Config) *GatewayWebhookHandler {
	return &GatewayWebhookHandler{reconciler: r, auditRepo: auditRepo, cfg: cfg}
}

// Handle processes a gateway status notification. Duplicates and stale
// out-of-order events are acknowledged with 200 so the gateway stops
// retrying; an unknown reference is a consistency gap and answers 404.
func (h *GatewayWebhookHandler) Handle(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	if h.cfg.Gateway.WebhookSecret != "" {
		sig := c.GetHeader("X-Webhook-Signature")
		if !h.verifySignature(body, sig) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid signature"})
			return
		}
	}
	var payload GatewayCallback
	if err := json.Unmarshal(body, &payload); err != nil {
		log.Printf("[Gateway callback] json unmarshal error: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if payload.OrderID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "order_id required"})
		return
	}
	log.Printf("[Gateway callback] order_id=%s status=%s fraud=%s", payload.OrderID, payload.TransactionStatus, payload.FraudStatus)

	result, err := h.reconciler.Reconcile(reconciler.Event{
		GatewayRef: payload.OrderID,
		Status:     payload.TransactionStatus,
		FraudFlag:  payload.FraudStatus,
		RawPayload: string(body),
		ReceivedAt: settlementTime(payload),
	})
	if errors.Is(err, reconciler.ErrUnknownTransaction) {
		log.Printf("[Gateway callback] UNKNOWN transaction for order_id=%s; gateway and ledger disagree", payload.OrderID)
		h.audit(c, "callback_unknown_transaction", payload.OrderID)
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown transaction"})
		return
	}
	if err != nil {
		log.Printf("[Gateway callback] reconcile failed for order_id=%s: %v", payload.OrderID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "reconcile failed"})
		return
	}
	if result.Transitioned {
		h.audit(c, "transaction_"+result.State, payload.OrderID)
	}
	c.JSON(http.StatusOK, gin.H{"received": true, "result": result})
}

func settlementTime(p GatewayCallback) time.Time {
	for _, raw := range []string{p.SettlementTime, p.TransactionTime} {
		if raw == "" {
			continue
		}
		if t, err := time.Parse("2006-01-02 15:04:05", raw); err == nil {
			return t
		}
	}
	return time.Now()
}

func (h *GatewayWebhookHandler) audit(c *gin.Context, action, ref string) {
	entry := &models.AuditLog{
		Action:     action,
		Resource:   "transaction",
		ResourceID: ref,
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
	}
	if err := h.auditRepo.Create(entry); err != nil {
		log.Printf("[Gateway callback] audit write failed: %v", err)
	}
}

func (h *GatewayWebhookHandler) verifySignature(body []byte, signature string) bool {
	mac := hmac.New(sha256.New, []byte(h.cfg.Gateway.WebhookSecret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(signature), []byte(expected))
}
