package symbol

import (
	"bytes"
	"encoding/base32"
	"fmt"

	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // address derivation is defined over RIPEMD-160
)

const (
	AddressSize        = 24
	EncodedAddressSize = 39
	addressChecksumLen = 3
)

// Address is the decoded 24-byte account address.
type Address [AddressSize]byte

// AddressFromPublicKey derives network byte || ripemd160(sha3(pk)) || checksum.
func AddressFromPublicKey(network NetworkType, publicKey PublicKey) Address {
	partOne := Sha3(publicKey[:])

	rip := ripemd160.New()
	rip.Write(partOne[:])
	partTwo := rip.Sum(nil)

	var addr Address
	addr[0] = byte(network)
	copy(addr[1:21], partTwo)
	checksum := Sha3(addr[:21])
	copy(addr[21:], checksum[:addressChecksumLen])
	return addr
}

// ParseAddress decodes a 39-character base32 address and verifies its checksum.
func ParseAddress(s string) (Address, error) {
	var addr Address
	if len(s) != EncodedAddressSize {
		return addr, fmt.Errorf("address %q must be %d characters", s, EncodedAddressSize)
	}
	raw, err := base32.StdEncoding.DecodeString(s + "A")
	if err != nil {
		return addr, fmt.Errorf("decode address %q: %w", s, err)
	}
	copy(addr[:], raw[:AddressSize])

	checksum := Sha3(addr[:21])
	if !bytes.Equal(checksum[:addressChecksumLen], addr[21:]) {
		return addr, fmt.Errorf("address %q has invalid checksum", s)
	}
	return addr, nil
}

func (a Address) Network() NetworkType { return NetworkType(a[0]) }

func (a Address) String() string {
	padded := append(a[:], 0)
	return base32.StdEncoding.EncodeToString(padded)[:EncodedAddressSize]
}
