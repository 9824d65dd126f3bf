package qrcode

import (
	"net/url"
	"strings"

	"carmarket/config"
	"carmarket/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize       = 256
	requestPathPrefix = "/dealer/requests/"
)

type qrcodeService struct {
	baseURL              string
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates the QR renderer for dealer-facing request links.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	qrCfg := cfg.QRCode
	if qrCfg == nil {
		qrCfg = &config.QRCodeConfig{}
	}

	size := qrCfg.Size
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		baseURL:              strings.TrimRight(qrCfg.BaseURL, "/"),
		size:                 size,
		errorCorrectionLevel: recoveryLevel(qrCfg.ErrorCorrectionLevel),
	}
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToLower(level) {
	case "l", "low":
		return qrcode.Low
	case "q", "high":
		return qrcode.High
	case "h", "highest":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// requestURL is the page a dealer lands on after scanning.
func (s *qrcodeService) requestURL(requestID uuid.UUID) string {
	return s.baseURL + requestPathPrefix + requestID.String()
}

// GenerateRequestQR renders a PNG that links to the request's dealer page
func (s *qrcodeService) GenerateRequestQR(requestID uuid.UUID) ([]byte, error) {
	qrCode, err := qrcode.New(s.requestURL(requestID), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseRequestQR accepts the scanned link and returns the request id in it
func (s *qrcodeService) ParseRequestQR(qrData string) (uuid.UUID, error) {
	parsed, err := url.Parse(strings.TrimSpace(qrData))
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse QR code data")
	}

	idx := strings.LastIndex(parsed.Path, requestPathPrefix)
	if idx < 0 {
		return uuid.Nil, errors.Errorf("not a request link: %s", parsed.Path)
	}

	requestID, err := uuid.Parse(strings.Trim(parsed.Path[idx+len(requestPathPrefix):], "/"))
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse request ID")
	}

	return requestID, nil
}
