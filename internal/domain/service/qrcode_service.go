package service

import (
	"github.com/google/uuid"
)

// QRCodeService generates and parses QR codes that link dealers to a buyer request.
type QRCodeService interface {
	// GenerateRequestQR renders a PNG pointing at the request's public page.
	GenerateRequestQR(requestID uuid.UUID) ([]byte, error)

	// ParseRequestQR extracts the request id from scanned QR data.
	ParseRequestQR(qrData string) (uuid.UUID, error)
}
