package symbol

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/sha3"
)

const (
	HashSize       = 32
	PublicKeySize  = 32
	PrivateKeySize = 32
	SignatureSize  = 64
)

type (
	Hash256    [HashSize]byte
	PublicKey  [PublicKeySize]byte
	PrivateKey [PrivateKeySize]byte
	Signature  [SignatureSize]byte
)

func (h Hash256) String() string    { return upperHex(h[:]) }
func (k PublicKey) String() string  { return upperHex(k[:]) }
func (s Signature) String() string  { return upperHex(s[:]) }
func (k PrivateKey) String() string { return upperHex(k[:]) }

func (h Hash256) Bytes() []byte { return h[:] }

// IsZero reports whether the hash is all zeroes.
func (h Hash256) IsZero() bool { return h == Hash256{} }

// ParseHash256 decodes a 64-character hex string.
func ParseHash256(s string) (Hash256, error) {
	var h Hash256
	err := decodeFixed(h[:], s, "hash")
	return h, err
}

// ParsePublicKey decodes a 64-character hex string.
func ParsePublicKey(s string) (PublicKey, error) {
	var k PublicKey
	err := decodeFixed(k[:], s, "public key")
	return k, err
}

// ParsePrivateKey decodes a 64-character hex string.
func ParsePrivateKey(s string) (PrivateKey, error) {
	var k PrivateKey
	err := decodeFixed(k[:], s, "private key")
	return k, err
}

// ParseSignature decodes a 128-character hex string.
func ParseSignature(s string) (Signature, error) {
	var sig Signature
	err := decodeFixed(sig[:], s, "signature")
	return sig, err
}

// Sha3 returns the SHA3-256 digest of the concatenated parts.
func Sha3(parts ...[]byte) Hash256 {
	hasher := sha3.New256()
	for _, p := range parts {
		hasher.Write(p)
	}
	var h Hash256
	copy(h[:], hasher.Sum(nil))
	return h
}

// Account is an ed25519 key pair.
type Account struct {
	privateKey ed25519.PrivateKey
	publicKey  PublicKey
}

// NewAccount derives the key pair from a 32-byte private key.
func NewAccount(privateKey PrivateKey) *Account {
	priv := ed25519.NewKeyFromSeed(privateKey[:])
	acc := &Account{privateKey: priv}
	copy(acc.publicKey[:], priv.Public().(ed25519.PublicKey))
	return acc
}

// GenerateAccount creates an account from a fresh random private key.
func GenerateAccount() (*Account, error) {
	var pk PrivateKey
	if _, err := rand.Read(pk[:]); err != nil {
		return nil, fmt.Errorf("generate private key: %w", err)
	}
	return NewAccount(pk), nil
}

func (a *Account) PublicKey() PublicKey { return a.publicKey }

func (a *Account) PrivateKey() PrivateKey {
	var pk PrivateKey
	copy(pk[:], a.privateKey.Seed())
	return pk
}

// Address derives the account address on the given network.
func (a *Account) Address(n *Network) Address {
	return AddressFromPublicKey(n.Identifier, a.publicKey)
}

// Sign signs arbitrary bytes.
func (a *Account) Sign(data []byte) Signature {
	var sig Signature
	copy(sig[:], ed25519.Sign(a.privateKey, data))
	return sig
}

// Verify checks a signature made by the given public key.
func Verify(publicKey PublicKey, data []byte, sig Signature) bool {
	return ed25519.Verify(publicKey[:], data, sig[:])
}

func upperHex(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}

func decodeFixed(dst []byte, s, what string) error {
	raw, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("decode %s: %w", what, err)
	}
	if len(raw) != len(dst) {
		return fmt.Errorf("%s must be %d bytes, got %d", what, len(dst), len(raw))
	}
	copy(dst, raw)
	return nil
}

func mustParseHash256(s string) Hash256 {
	h, err := ParseHash256(s)
	if err != nil {
		panic(err)
	}
	return h
}
