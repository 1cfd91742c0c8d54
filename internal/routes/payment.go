package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sacknest/sacknest-backend/internal/handlers"
)

// RegisterPaymentRoutes wires the order lifecycle: intent creation,
// signature verification, public order lookup, and the download gate.
func RegisterPaymentRoutes(r gin.IRouter) {
	razorpay := r.Group("/razorpay")
	{
		razorpay.POST("/create-order", handlers.CreateOrder)
		razorpay.POST("/verify-payment", handlers.VerifyPayment)
	}

	// Webhooks verify the gateway signature internally, no bearer auth
	r.POST("/webhooks/razorpay", handlers.HandleRazorpayWebhook)

	r.GET("/orders/:orderId", handlers.GetOrder)
	r.GET("/download/:orderId", handlers.DownloadPack)
}
