package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		errorCorrectionLevel string
		expected             qrcode.RecoveryLevel
	}{
		{"Low error correction", "L", qrcode.Low},
		{"Medium error correction", "M", qrcode.Medium},
		{"High error correction", "Q", qrcode.High},
		{"Highest error correction", "H", qrcode.Highest},
		{"Lower case level", "m", qrcode.Medium},
		{"Empty defaults to highest", "", qrcode.Highest},
		{"Unknown defaults to highest", "invalid", qrcode.Highest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQRCodeService(256, tt.errorCorrectionLevel)
			require.IsType(t, &qrcodeService{}, svc)
			assert.Equal(t, tt.expected, svc.(*qrcodeService).errorCorrectionLevel)
		})
	}
}

func TestNewQRCodeService_DefaultSize(t *testing.T) {
	svc := NewQRCodeService(0, "H")
	assert.Equal(t, defaultSize, svc.(*qrcodeService).size)
}

func TestQRCodeService_GenerateURLQR(t *testing.T) {
	svc := NewQRCodeService(256, "H")

	qrBytes, err := svc.GenerateURLQR("https://cards.example.com/card/card-abc123")
	require.NoError(t, err)
	require.NotEmpty(t, qrBytes)

	img, err := png.Decode(bytes.NewReader(qrBytes))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
	assert.Equal(t, 256, img.Bounds().Dy())
}

func TestQRCodeService_GenerateURLQR_DifferentSizes(t *testing.T) {
	for _, size := range []int{128, 256, 512} {
		svc := NewQRCodeService(size, "H")

		qrBytes, err := svc.GenerateURLQR("https://cards.example.com/card/card-abc123")
		require.NoError(t, err)

		img, err := png.Decode(bytes.NewReader(qrBytes))
		require.NoError(t, err)
		assert.Equal(t, size, img.Bounds().Dx())
	}
}

func TestQRCodeService_GenerateURLQR_Empty(t *testing.T) {
	_, err := NewQRCodeService(256, "H").GenerateURLQR("")
	assert.Error(t, err)
}
