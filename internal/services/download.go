package services

import (
	"github.com/sacknest/sacknest-backend/internal/models"
	"github.com/sacknest/sacknest-backend/pkg/errors"
	"gorm.io/gorm"
)

// DownloadGrant is the release decision for a verified-paid order.
type DownloadGrant struct {
	DownloadURL string
	PackName    string
}

// ResolveDownload is the download gate: given a gateway order id it decides
// whether the associated pack file may be disclosed. The chain is strict:
// the order must exist, must be paid, and the pack must have a stored file.
// Each denial reason is distinguishable so the client can render the right
// state.
func ResolveDownload(db *gorm.DB, razorpayOrderID string) (*DownloadGrant, *errors.AppError) {
	var order models.Order
	if err := db.Where("\"razorpayOrderId\" = ?", razorpayOrderID).First(&order).Error; err != nil {
		return nil, errors.NotFound("Order not found")
	}

	if order.Status != models.OrderStatusPaid {
		return nil, errors.Forbidden("Payment not completed")
	}

	var pack models.PremiumPack
	if err := db.Where("id = ?", order.PackID).First(&pack).Error; err != nil || pack.FileURL == "" {
		// Content-provisioning gap, not a payment gap
		return nil, errors.NotFound("File not available")
	}

	return &DownloadGrant{DownloadURL: pack.FileURL, PackName: pack.Name}, nil
}
