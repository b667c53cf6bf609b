package impl

import (
	"encoding/base64"
	"io"
	"log/slog"
	"time"

	"bizcard/config"
)

var testNow = time.Date(2026, 5, 1, 9, 30, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testCardConfig() *config.Config {
	return &config.Config{
		QRCode: &config.QRCodeConfig{Size: 256, ErrorCorrectionLevel: "H", BaseURL: "https://cards.example.com/"},
		Card:   &config.CardConfig{SlugPrefix: "card-", SlugAttempts: 3, MaxHeroImageBytes: 1024},
	}
}

// pngDataURI returns a data URI whose payload sniffs as PNG.
func pngDataURI(size int) string {
	payload := append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, size)...)

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(payload)
}

// slugSequence returns a generator that yields the given slugs in order.
func slugSequence(slugs ...string) func() string {
	i := 0

	return func() string {
		s := slugs[i%len(slugs)]
		i++

		return s
	}
}

func ptr[T any](v T) *T {
	return &v
}
