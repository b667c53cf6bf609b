// Package slug generates and checks public card URL slugs.
package slug

import (
	"math/rand/v2"
	"regexp"
	"strings"
)

const (
	alphabet     = "0123456789abcdefghijklmnopqrstuvwxyz"
	suffixLength = 6
	// MaxLength bounds user-chosen slugs.
	MaxLength = 64
)

var pattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]{0,63}$`)

// Generate returns prefix followed by six random base36 characters, e.g. card-k3x9qa.
func Generate(prefix string) string {
	var b strings.Builder
	b.Grow(len(prefix) + suffixLength)
	b.WriteString(prefix)
	for range suffixLength {
		b.WriteByte(alphabet[rand.IntN(len(alphabet))])
	}

	return b.String()
}

// Valid reports whether s may be stored as a slug. Lookups never normalise,
// so this only guards what gets written.
func Valid(s string) bool {
	return pattern.MatchString(s)
}
