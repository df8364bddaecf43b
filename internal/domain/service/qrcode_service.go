package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation services
type QRCodeService interface {
	// GenerateOrderQR generates a QR code image identifying an order
	GenerateOrderQR(orderID uuid.UUID) ([]byte, error)
}
