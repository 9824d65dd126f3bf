package qrcode

import (
	"testing"

	"carmarket/config"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(size int, level string) *qrcodeService {
	cfg := &config.Config{QRCode: &config.QRCodeConfig{
		Size:                 size,
		ErrorCorrectionLevel: level,
		BaseURL:              "https://bil.example.no/",
	}}

	return NewQRCodeService(cfg).(*qrcodeService)
}

func TestRecoveryLevel(t *testing.T) {
	tests := []struct {
		in   string
		want qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"medium", qrcode.Medium},
		{"Q", qrcode.High},
		{"highest", qrcode.Highest},
		{"invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, recoveryLevel(tt.in))
		})
	}
}

func TestNewQRCodeService_Defaults(t *testing.T) {
	svc := NewQRCodeService(&config.Config{}).(*qrcodeService)
	assert.Equal(t, defaultSize, svc.size)
	assert.Equal(t, qrcode.Medium, svc.errorCorrectionLevel)
}

func TestQRCodeService_GenerateRequestQR(t *testing.T) {
	for _, size := range []int{128, 256, 512} {
		svc := newTestService(size, "M")

		pngBytes, err := svc.GenerateRequestQR(uuid.New())
		require.NoError(t, err)
		require.Greater(t, len(pngBytes), 4)

		// PNG magic number
		assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, pngBytes[:4])
	}
}

func TestQRCodeService_RequestURL(t *testing.T) {
	svc := newTestService(256, "M")
	id := uuid.MustParse("0f8fad5b-d9cb-469f-a165-70867728950e")

	assert.Equal(t, "https://bil.example.no/dealer/requests/0f8fad5b-d9cb-469f-a165-70867728950e", svc.requestURL(id))
}

func TestQRCodeService_ParseRequestQR(t *testing.T) {
	svc := newTestService(256, "M")
	id := uuid.New()

	got, err := svc.ParseRequestQR(svc.requestURL(id))
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = svc.ParseRequestQR("https://bil.example.no/buyer/requests/" + id.String())
	assert.Error(t, err)

	_, err = svc.ParseRequestQR("https://bil.example.no/dealer/requests/not-a-uuid")
	assert.Error(t, err)
}
