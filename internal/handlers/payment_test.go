package handlers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sacknest/sacknest-backend/internal/database"
	"github.com/sacknest/sacknest-backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func paymentRouter() *gin.Engine {
	r := gin.New()
	r.POST("/api/razorpay/create-order", CreateOrder)
	r.POST("/api/razorpay/verify-payment", VerifyPayment)
	r.POST("/api/webhooks/razorpay", HandleRazorpayWebhook)
	return r
}

func postWebhook(r *gin.Engine, body, signature string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("POST", "/api/webhooks/razorpay", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if signature != "" {
		req.Header.Set("X-Razorpay-Signature", signature)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func webhookSignature(body, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(body))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestRazorpaySignature_Deterministic(t *testing.T) {
	sig := RazorpaySignature("order_abc", "pay_xyz", "secret")

	assert.Equal(t, sig, RazorpaySignature("order_abc", "pay_xyz", "secret"))

	// Any single-character mutation of either input changes the signature
	assert.NotEqual(t, sig, RazorpaySignature("order_abd", "pay_xyz", "secret"))
	assert.NotEqual(t, sig, RazorpaySignature("order_abc", "pay_xyy", "secret"))
	assert.NotEqual(t, sig, RazorpaySignature("order_abc", "pay_xyz", "secres"))
}

func TestCreateOrder_InvalidCurrency(t *testing.T) {
	SetupTestDB()

	w := performJSON(paymentRouter(), "POST", "/api/razorpay/create-order", map[string]interface{}{
		"amount":        499,
		"currency":      "EUR",
		"customerEmail": "a@b.com",
		"packId":        "pack_1",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Currency must be INR or USD", decodeBody(w)["error"])
}

func TestCreateOrder_MissingAmount(t *testing.T) {
	SetupTestDB()

	w := performJSON(paymentRouter(), "POST", "/api/razorpay/create-order", map[string]interface{}{
		"customerEmail": "a@b.com",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	database.DB.Model(&models.Order{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestVerifyPayment_TamperedSignature(t *testing.T) {
	SetupTestDB()

	order := models.Order{
		ID:              "order_1_test",
		RazorpayOrderID: "rzp_order_1",
		Amount:          499,
		Currency:        "INR",
		Status:          models.OrderStatusCreated,
		CustomerEmail:   "a@b.com",
		PackID:          "pack_1",
		CreatedAt:       time.Now(),
	}
	database.DB.Create(&order)

	valid := RazorpaySignature("rzp_order_1", "pay_1", "rzp_test_secret")
	tampered := valid[:len(valid)-1] + "0"
	if tampered == valid {
		tampered = valid[:len(valid)-1] + "1"
	}

	w := performJSON(paymentRouter(), "POST", "/api/razorpay/verify-payment", map[string]interface{}{
		"razorpayOrderId":   "rzp_order_1",
		"razorpayPaymentId": "pay_1",
		"razorpaySignature": tampered,
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Payment verification failed", decodeBody(w)["error"])

	// Order must stay in created state, not failed
	var got models.Order
	database.DB.Where("id = ?", "order_1_test").First(&got)
	assert.Equal(t, models.OrderStatusCreated, got.Status)
	assert.Empty(t, got.RazorpayPaymentID)
}

func TestVerifyPayment_ValidSignature(t *testing.T) {
	SetupTestDB()

	order := models.Order{
		ID:              "order_2_test",
		RazorpayOrderID: "rzp_order_2",
		Amount:          499,
		Currency:        "INR",
		Status:          models.OrderStatusCreated,
		CustomerEmail:   "a@b.com",
		CreatedAt:       time.Now(),
	}
	database.DB.Create(&order)

	sig := RazorpaySignature("rzp_order_2", "pay_2", "rzp_test_secret")

	w := performJSON(paymentRouter(), "POST", "/api/razorpay/verify-payment", map[string]interface{}{
		"razorpayOrderId":   "rzp_order_2",
		"razorpayPaymentId": "pay_2",
		"razorpaySignature": sig,
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decodeBody(w)["success"])

	var got models.Order
	database.DB.Where("id = ?", "order_2_test").First(&got)
	assert.Equal(t, models.OrderStatusPaid, got.Status)
	assert.Equal(t, "pay_2", got.RazorpayPaymentID)
}

func TestVerifyPayment_PaidIsTerminal(t *testing.T) {
	SetupTestDB()

	order := models.Order{
		ID:                "order_3_test",
		RazorpayOrderID:   "rzp_order_3",
		Amount:            9,
		Currency:          "USD",
		Status:            models.OrderStatusPaid,
		CustomerEmail:     "a@b.com",
		RazorpayPaymentID: "pay_original",
		CreatedAt:         time.Now(),
	}
	database.DB.Create(&order)

	sig := RazorpaySignature("rzp_order_3", "pay_replay", "rzp_test_secret")

	w := performJSON(paymentRouter(), "POST", "/api/razorpay/verify-payment", map[string]interface{}{
		"razorpayOrderId":   "rzp_order_3",
		"razorpayPaymentId": "pay_replay",
		"razorpaySignature": sig,
	})

	// Re-verification acknowledges success without rewriting the row
	assert.Equal(t, http.StatusOK, w.Code)

	var got models.Order
	database.DB.Where("id = ?", "order_3_test").First(&got)
	assert.Equal(t, models.OrderStatusPaid, got.Status)
	assert.Equal(t, "pay_original", got.RazorpayPaymentID)
}

func TestVerifyPayment_UnknownOrder(t *testing.T) {
	SetupTestDB()

	sig := RazorpaySignature("rzp_missing", "pay_x", "rzp_test_secret")

	w := performJSON(paymentRouter(), "POST", "/api/razorpay/verify-payment", map[string]interface{}{
		"razorpayOrderId":   "rzp_missing",
		"razorpayPaymentId": "pay_x",
		"razorpaySignature": sig,
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestWebhook_RejectsUnsignedPayload(t *testing.T) {
	SetupTestDB()

	order := models.Order{
		ID:              "order_wh1",
		RazorpayOrderID: "rzp_wh_1",
		Amount:          499,
		Currency:        "INR",
		Status:          models.OrderStatusCreated,
		CustomerEmail:   "a@b.com",
		CreatedAt:       time.Now(),
	}
	database.DB.Create(&order)

	body := `{"event":"payment.failed","payload":{"payment":{"entity":{"id":"pay_wh","order_id":"rzp_wh_1"}}}}`

	// No signature header at all must not be acknowledged
	w := postWebhook(paymentRouter(), body, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var got models.Order
	database.DB.Where("id = ?", "order_wh1").First(&got)
	assert.Equal(t, models.OrderStatusCreated, got.Status)
}

func TestWebhook_RejectsForgedSignature(t *testing.T) {
	SetupTestDB()

	order := models.Order{
		ID:              "order_wh2",
		RazorpayOrderID: "rzp_wh_2",
		Amount:          499,
		Currency:        "INR",
		Status:          models.OrderStatusCreated,
		CustomerEmail:   "a@b.com",
		CreatedAt:       time.Now(),
	}
	database.DB.Create(&order)

	body := `{"event":"payment.failed","payload":{"payment":{"entity":{"id":"pay_wh","order_id":"rzp_wh_2"}}}}`
	forged := webhookSignature(body, "some-other-secret")

	w := postWebhook(paymentRouter(), body, forged)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var got models.Order
	database.DB.Where("id = ?", "order_wh2").First(&got)
	assert.Equal(t, models.OrderStatusCreated, got.Status)
}

func TestWebhook_FailedEventMarksCreatedOrderFailed(t *testing.T) {
	SetupTestDB()

	order := models.Order{
		ID:              "order_wh3",
		RazorpayOrderID: "rzp_wh_3",
		Amount:          499,
		Currency:        "INR",
		Status:          models.OrderStatusCreated,
		CustomerEmail:   "a@b.com",
		CreatedAt:       time.Now(),
	}
	database.DB.Create(&order)

	body := `{"event":"payment.failed","payload":{"payment":{"entity":{"id":"pay_wh","order_id":"rzp_wh_3"}}}}`
	sig := webhookSignature(body, "whsec_test")

	w := postWebhook(paymentRouter(), body, sig)
	assert.Equal(t, http.StatusOK, w.Code)

	var got models.Order
	database.DB.Where("id = ?", "order_wh3").First(&got)
	assert.Equal(t, models.OrderStatusFailed, got.Status)
}

func TestWebhook_FailedEventNeverDemotesPaidOrder(t *testing.T) {
	SetupTestDB()

	order := models.Order{
		ID:                "order_wh4",
		RazorpayOrderID:   "rzp_wh_4",
		Amount:            499,
		Currency:          "INR",
		Status:            models.OrderStatusPaid,
		CustomerEmail:     "a@b.com",
		RazorpayPaymentID: "pay_done",
		CreatedAt:         time.Now(),
	}
	database.DB.Create(&order)

	body := `{"event":"payment.failed","payload":{"payment":{"entity":{"id":"pay_late","order_id":"rzp_wh_4"}}}}`
	sig := webhookSignature(body, "whsec_test")

	w := postWebhook(paymentRouter(), body, sig)
	assert.Equal(t, http.StatusOK, w.Code)

	var got models.Order
	database.DB.Where("id = ?", "order_wh4").First(&got)
	assert.Equal(t, models.OrderStatusPaid, got.Status)
	assert.Equal(t, "pay_done", got.RazorpayPaymentID)
}

func TestWebhook_UnknownEventAcknowledged(t *testing.T) {
	SetupTestDB()

	body := `{"event":"refund.processed","payload":{}}`
	sig := webhookSignature(body, "whsec_test")

	w := postWebhook(paymentRouter(), body, sig)
	assert.Equal(t, http.StatusOK, w.Code)
}
