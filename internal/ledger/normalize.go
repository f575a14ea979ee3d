package ledger

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/goodnatureofminers/cosign-orchestrator/pkg/symbol"
)

// NormalizeAddress strips hyphens and surrounding space and upper-cases the address.
func NormalizeAddress(address string) string {
	return strings.ToUpper(strings.TrimSpace(strings.ReplaceAll(address, "-", "")))
}

// NormalizeHash trims and upper-cases a hex hash.
func NormalizeHash(hash string) string {
	return strings.ToUpper(strings.TrimSpace(hash))
}

// DisplayAddress turns the hex-encoded 24-byte form returned by the REST API into base32.
// Anything else is normalized and returned as is.
func DisplayAddress(address string) string {
	normalized := NormalizeAddress(address)
	if len(normalized) != symbol.AddressSize*2 {
		return normalized
	}
	raw, err := hex.DecodeString(normalized)
	if err != nil {
		return normalized
	}
	var addr symbol.Address
	copy(addr[:], raw)
	return addr.String()
}

// ParseAddress normalizes and decodes an address.
func ParseAddress(address string) (symbol.Address, error) {
	return symbol.ParseAddress(DisplayAddress(address))
}

// ParseMosaicID accepts "0x"-prefixed hex, the 16-digit hex form used by the REST API,
// any string containing hex letters, or a decimal string.
func ParseMosaicID(s string) (uint64, error) {
	v := strings.TrimSpace(strings.ReplaceAll(s, "'", ""))
	if v == "" {
		return 0, fmt.Errorf("empty mosaic id")
	}
	lower := strings.ToLower(v)
	if strings.HasPrefix(lower, "0x") {
		return parseHex(lower[2:])
	}
	if len(v) == 16 || strings.ContainsAny(lower, "abcdef") {
		return parseHex(lower)
	}
	id, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		if hexID, hexErr := parseHex(lower); hexErr == nil {
			return hexID, nil
		}
		return 0, fmt.Errorf("parse mosaic id %q: %w", s, err)
	}
	return id, nil
}

// ParseAmount parses a decimal amount in base units.
func ParseAmount(s string) (uint64, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", s, err)
	}
	return v, nil
}

// FormatMosaicID renders a mosaic id as 16 upper-case hex digits.
func FormatMosaicID(id uint64) string {
	return fmt.Sprintf("%016X", id)
}

func parseHex(s string) (uint64, error) {
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("parse hex %q: %w", s, err)
	}
	return v, nil
}

// EncodeMessage prefixes a plain-text message with the 0x00 tag. Empty text encodes to no bytes.
func EncodeMessage(text string) []byte {
	if text == "" {
		return nil
	}
	out := make([]byte, 0, len(text)+1)
	out = append(out, 0)
	return append(out, text...)
}

// DecodeMessage reverses EncodeMessage for a hex payload. Invalid hex is returned unchanged.
func DecodeMessage(messageHex string) string {
	if messageHex == "" {
		return ""
	}
	raw, err := hex.DecodeString(messageHex)
	if err != nil {
		return messageHex
	}
	if len(raw) > 0 && raw[0] == 0 {
		raw = raw[1:]
	}
	return strings.ToValidUTF8(string(raw), "\uFFFD")
}
