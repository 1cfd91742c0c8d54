package models

import "time"

type OrderStatus string

const (
	OrderStatusCreated OrderStatus = "created"
	OrderStatusPaid    OrderStatus = "paid"
	// Reserved for gateway webhook callbacks; no synchronous path produces it.
	OrderStatusFailed OrderStatus = "failed"
)

// Order tracks one payment attempt against one pack. Status only ever
// advances created -> paid (or created -> failed); paid is terminal and
// requires a verified gateway signature.
type Order struct {
	ID string `gorm:"primaryKey;type:text" json:"id"`

	// Gateway-assigned identifier; doubles as the public capability key
	// for order lookup and download.
	RazorpayOrderID string `gorm:"column:razorpayOrderId;uniqueIndex" json:"razorpayOrderId"`

	Amount   float64     `json:"amount"`
	Currency string      `json:"currency"`
	Status   OrderStatus `gorm:"type:text;default:'created'" json:"status"`

	CustomerEmail string `gorm:"column:customerEmail" json:"customerEmail"`
	PackID        string `gorm:"column:packId" json:"packId,omitempty"`

	RazorpayPaymentID string `gorm:"column:razorpayPaymentId" json:"razorpayPaymentId,omitempty"`
	RazorpaySignature string `gorm:"column:razorpaySignature" json:"-"`

	CreatedAt time.Time `gorm:"column:createdAt" json:"createdAt"`
}
