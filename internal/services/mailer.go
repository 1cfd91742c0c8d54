package services

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/sacknest/sacknest-backend/internal/config"
	"github.com/sacknest/sacknest-backend/internal/models"
	"github.com/sacknest/sacknest-backend/pkg/logger"
)

// SendPurchaseConfirmation emails the customer a link to the download page
// after a payment verifies. Delivery is best effort: missing SMTP config or
// a send failure is logged and never fails the payment flow.
func SendPurchaseConfirmation(order *models.Order, pack *models.PremiumPack) {
	cfg := config.AppConfig
	if cfg.SMTPHost == "" || cfg.SMTPUser == "" || cfg.SMTPPass == "" {
		logger.Debug().Msg("SMTP not configured, skipping purchase confirmation email")
		return
	}

	port := cfg.SMTPPort
	if port == "" {
		port = "587"
	}
	sender := cfg.SMTPSender
	if sender == "" {
		sender = cfg.SMTPUser
	}

	symbol := "$"
	if order.Currency == "INR" {
		symbol = "₹"
	}
	downloadURL := fmt.Sprintf("%s/download/%s", strings.TrimRight(cfg.FrontendURL, "/"), order.RazorpayOrderID)

	var b strings.Builder
	fmt.Fprintf(&b, "From: SackNest <%s>\r\n", sender)
	fmt.Fprintf(&b, "To: %s\r\n", order.CustomerEmail)
	fmt.Fprintf(&b, "Subject: Your SackNest purchase: %s\r\n", pack.Name)
	b.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=\"UTF-8\"\r\n\r\n")
	fmt.Fprintf(&b, "Payment successful!\r\n\r\n")
	fmt.Fprintf(&b, "Pack: %s\r\nAmount: %s%.2f\r\nOrder ID: %s\r\n\r\n", pack.Name, symbol, order.Amount, order.RazorpayOrderID)
	fmt.Fprintf(&b, "Download your content here: %s\r\n\r\n", downloadURL)
	b.WriteString("Keep this email; the link stays valid for your order.\r\n")

	auth := smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPHost)
	addr := cfg.SMTPHost + ":" + port

	if err := smtp.SendMail(addr, auth, sender, []string{order.CustomerEmail}, []byte(b.String())); err != nil {
		logger.Warn().Err(err).Str("order_id", order.RazorpayOrderID).Msg("Failed to send purchase confirmation email")
		return
	}
	logger.Info().Str("order_id", order.RazorpayOrderID).Str("email", order.CustomerEmail).Msg("Purchase confirmation email sent")
}
