package service

// QRCodeService defines the interface for QR code generation
type QRCodeService interface {
	// GenerateURLQR renders the URL as a PNG QR code
	GenerateURLQR(url string) ([]byte, error)
}
