package handlers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	razorpay "github.com/razorpay/razorpay-go"
	"github.com/sacknest/sacknest-backend/internal/config"
	"github.com/sacknest/sacknest-backend/internal/database"
	"github.com/sacknest/sacknest-backend/internal/models"
	"github.com/sacknest/sacknest-backend/internal/services"
	"github.com/sacknest/sacknest-backend/pkg/logger"
	"github.com/sacknest/sacknest-backend/pkg/utils"
)

type CreateOrderInput struct {
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	Currency      string  `json:"currency"`
	CustomerEmail string  `json:"customerEmail" binding:"required,email"`
	PackID        string  `json:"packId"`
}

type VerifyPaymentInput struct {
	RazorpayOrderID   string `json:"razorpayOrderId" binding:"required"`
	RazorpayPaymentID string `json:"razorpayPaymentId" binding:"required"`
	RazorpaySignature string `json:"razorpaySignature" binding:"required"`
}

// RazorpaySignature computes the hex HMAC-SHA256 the gateway signs its
// payment callback with: HMAC(secret, orderId + "|" + paymentId). Pure
// function, no network dependency.
func RazorpaySignature(orderID, paymentID, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(h.Sum(nil))
}

// CreateOrder opens a payment intent at the gateway and persists the terms
// as a local Order in created state. A failed persistence write fails the
// whole request; an order the store cannot see could never be verified or
// downloaded later.
func CreateOrder(c *gin.Context) {
	var input CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Amount and email required"})
		return
	}

	currency := input.Currency
	if currency == "" {
		currency = "INR"
	}
	if currency != "INR" && currency != "USD" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Currency must be INR or USD"})
		return
	}

	cfg := config.AppConfig
	if !cfg.RazorpayConfigured() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Razorpay not configured"})
		return
	}

	client := razorpay.NewClient(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)

	// Gateway wants minor units (paise / cents)
	amountInSubunits := int64(math.Round(input.Amount * 100))
	data := map[string]interface{}{
		"amount":   amountInSubunits,
		"currency": currency,
		"receipt":  utils.GenerateID("receipt"),
		"notes": map[string]interface{}{
			"customerEmail": input.CustomerEmail,
			"packId":        input.PackID,
		},
	}

	body, err := client.Order.Create(data, nil)
	if err != nil {
		logger.Error().Err(err).Msg("Razorpay order creation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order", "details": err.Error()})
		return
	}

	razorpayOrderID, _ := body["id"].(string)

	order := models.Order{
		ID:              utils.GenerateID("order"),
		RazorpayOrderID: razorpayOrderID,
		Amount:          input.Amount,
		Currency:        currency,
		Status:          models.OrderStatusCreated,
		CustomerEmail:   input.CustomerEmail,
		PackID:          input.PackID,
		CreatedAt:       time.Now(),
	}

	if err := database.DB.Create(&order).Error; err != nil {
		logger.Error().Err(err).Str("razorpay_order_id", razorpayOrderID).Msg("Failed to save order")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save order"})
		return
	}

	logger.Info().
		Str("order_id", order.ID).
		Str("razorpay_order_id", razorpayOrderID).
		Float64("amount", input.Amount).
		Str("currency", currency).
		Msg("Order created")

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"orderId":  razorpayOrderID,
		"amount":   amountInSubunits,
		"currency": currency,
		"key":      cfg.RazorpayKeyID,
	})
}

// VerifyPayment checks the gateway's signature over orderId|paymentId and
// marks the order paid on a match. A mismatch leaves the order in created
// state. Paid is terminal: re-verifying an already-paid order just
// re-acknowledges success.
func VerifyPayment(c *gin.Context) {
	var input VerifyPaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing payment details"})
		return
	}

	cfg := config.AppConfig
	if !cfg.RazorpayConfigured() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Razorpay not configured"})
		return
	}

	expected := RazorpaySignature(input.RazorpayOrderID, input.RazorpayPaymentID, cfg.RazorpayKeySecret)
	if !hmac.Equal([]byte(expected), []byte(input.RazorpaySignature)) {
		logger.Warn().Str("razorpay_order_id", input.RazorpayOrderID).Msg("Payment signature mismatch")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Payment verification failed"})
		return
	}

	var order models.Order
	if err := database.DB.Where(`"razorpayOrderId" = ?`, input.RazorpayOrderID).First(&order).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	if order.Status != models.OrderStatusPaid {
		updates := map[string]interface{}{
			"status":            models.OrderStatusPaid,
			"razorpayPaymentId": input.RazorpayPaymentID,
			"razorpaySignature": input.RazorpaySignature,
		}
		if err := database.DB.Model(&order).Updates(updates).Error; err != nil {
			logger.Error().Err(err).Str("razorpay_order_id", input.RazorpayOrderID).Msg("Failed to update order")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
			return
		}

		logger.Info().
			Str("razorpay_order_id", input.RazorpayOrderID).
			Str("razorpay_payment_id", input.RazorpayPaymentID).
			Msg("Payment verified")

		// Best-effort confirmation email; never blocks or fails the response
		if order.PackID != "" {
			var pack models.PremiumPack
			if err := database.DB.Where("id = ?", order.PackID).First(&pack).Error; err == nil {
				go services.SendPurchaseConfirmation(&order, &pack)
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Payment verified successfully",
		"orderId":   input.RazorpayOrderID,
		"paymentId": input.RazorpayPaymentID,
	})
}

type webhookEvent struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity struct {
				ID      string `json:"id"`
				OrderID string `json:"order_id"`
			} `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}

// HandleRazorpayWebhook ingests async gateway events. The gateway signs the
// raw body with the webhook secret; an unverified request is rejected so
// Razorpay keeps retrying instead of counting it delivered. The only state
// transition driven here is created -> failed; paid is never demoted, and
// success still flows through the synchronous verify callback.
func HandleRazorpayWebhook(c *gin.Context) {
	cfg := config.AppConfig
	if cfg.RazorpayWebhookSecret == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Webhook secret not configured"})
		return
	}

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, 1<<20))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unreadable payload"})
		return
	}

	mac := hmac.New(sha256.New, []byte(cfg.RazorpayWebhookSecret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(expected), []byte(c.GetHeader("X-Razorpay-Signature"))) {
		logger.Warn().Str("ip", c.ClientIP()).Msg("Webhook signature mismatch")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid webhook signature"})
		return
	}

	var event webhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Malformed payload"})
		return
	}

	if event.Event == "payment.failed" && event.Payload.Payment.Entity.OrderID != "" {
		// Guarded update: only a pending order can fail
		res := database.DB.Model(&models.Order{}).
			Where(`"razorpayOrderId" = ? AND status = ?`, event.Payload.Payment.Entity.OrderID, models.OrderStatusCreated).
			Update("status", models.OrderStatusFailed)
		if res.Error != nil {
			logger.Error().Err(res.Error).Str("razorpay_order_id", event.Payload.Payment.Entity.OrderID).Msg("Failed to record payment failure")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record event"})
			return
		}
		if res.RowsAffected > 0 {
			logger.Info().
				Str("razorpay_order_id", event.Payload.Payment.Entity.OrderID).
				Str("razorpay_payment_id", event.Payload.Payment.Entity.ID).
				Msg("Order marked failed via webhook")
		}
	}

	c.Status(http.StatusOK)
}
