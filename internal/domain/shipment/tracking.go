package shipment

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
)

// TrackingCodeLength is the length of the public tracking code.
const TrackingCodeLength = 8

// NewTrackingCode draws 4 bytes from crypto/rand and hex-encodes them into an
// 8-character uppercase code. 32 bits is not collision-proof on its own; the
// caller must re-check against the store and retry on a unique violation.
func NewTrackingCode() (string, error) {
	buf := make([]byte, TrackingCodeLength/2)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return strings.ToUpper(hex.EncodeToString(buf)), nil
}

// NormalizeTrackingCode maps user input onto the stored form: trimmed and
// uppercased. Codes are matched case-insensitively everywhere.
func NormalizeTrackingCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
