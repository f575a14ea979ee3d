// Package symbol implements the subset of the Symbol ledger SDK the orchestrator needs:
// keys, addresses, the binary transaction layout, signing and hashing.
package symbol

import (
	"fmt"
	"strings"
	"time"
)

// NetworkType is the one-byte network identifier embedded in addresses and transactions.
type NetworkType uint8

const (
	MainnetType NetworkType = 0x68
	TestnetType NetworkType = 0x98
)

// Network describes static parameters of a Symbol network.
type Network struct {
	Name               string
	Identifier         NetworkType
	EpochAdjustment    time.Time
	GenerationHashSeed Hash256
	CurrencyMosaicID   uint64
}

var (
	Mainnet = &Network{
		Name:               "mainnet",
		Identifier:         MainnetType,
		EpochAdjustment:    time.Unix(1615853185, 0).UTC(),
		GenerationHashSeed: mustParseHash256("57F7DA205008026C776CB6AED843393F04CD458E0AA2D9F1D5F31A402072B2D6"),
		CurrencyMosaicID:   0x6BED913FA20223F8,
	}
	Testnet = &Network{
		Name:               "testnet",
		Identifier:         TestnetType,
		EpochAdjustment:    time.Unix(1667250467, 0).UTC(),
		GenerationHashSeed: mustParseHash256("49D6E1CE276A85B70EAFE52349AACCA389302E7A9754BCF1221E79494FC665A4"),
		CurrencyMosaicID:   0x72C0212E67A08BCE,
	}
)

// NetworkByName resolves "mainnet" or "testnet" (case-insensitive).
func NetworkByName(name string) (*Network, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case Mainnet.Name:
		return Mainnet, nil
	case Testnet.Name:
		return Testnet, nil
	default:
		return nil, fmt.Errorf("unknown network %q", name)
	}
}

// Timestamp converts wall-clock time to a network timestamp in milliseconds since the epoch adjustment.
func (n *Network) Timestamp(t time.Time) uint64 {
	ms := t.Sub(n.EpochAdjustment).Milliseconds()
	if ms < 0 {
		return 0
	}
	return uint64(ms)
}

// Time converts a network timestamp back to wall-clock time.
func (n *Network) Time(timestamp uint64) time.Time {
	return n.EpochAdjustment.Add(time.Duration(timestamp) * time.Millisecond)
}

// Deadline returns the network timestamp lying ttl after now.
func (n *Network) Deadline(now time.Time, ttl time.Duration) uint64 {
	return n.Timestamp(now.Add(ttl))
}
