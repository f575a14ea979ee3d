package symbol

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
)

const (
	// CosignatureSize is version (8) + public key (32) + signature (64).
	CosignatureSize         = 8 + PublicKeySize + SignatureSize
	DetachedCosignatureSize = CosignatureSize + HashSize
)

// Cosignature is a signature over an aggregate's hash by a party other than its signer.
type Cosignature struct {
	Version         uint64
	SignerPublicKey PublicKey
	Signature       Signature
}

func (c Cosignature) appendTo(dst []byte) []byte {
	dst = binary.LittleEndian.AppendUint64(dst, c.Version)
	dst = append(dst, c.SignerPublicKey[:]...)
	return append(dst, c.Signature[:]...)
}

// DetachedCosignature is a cosignature announced separately from its parent transaction.
type DetachedCosignature struct {
	Cosignature
	ParentHash Hash256
}

// Serialize encodes the detached cosignature in its wire form.
func (d DetachedCosignature) Serialize() []byte {
	out := make([]byte, 0, DetachedCosignatureSize)
	out = d.Cosignature.appendTo(out)
	return append(out, d.ParentHash[:]...)
}

// JSON returns the cosignature announce body {"payload": HEX}.
func (d DetachedCosignature) JSON() (string, error) {
	body, err := json.Marshal(announcePayload{Payload: upperHex(d.Serialize())})
	if err != nil {
		return "", fmt.Errorf("marshal cosignature payload: %w", err)
	}
	return string(body), nil
}

// CosignHash signs a transaction hash directly.
func CosignHash(account *Account, hash Hash256) Cosignature {
	return Cosignature{
		SignerPublicKey: account.PublicKey(),
		Signature:       account.Sign(hash[:]),
	}
}

// CosignDetached builds a detached cosignature for an already announced transaction.
func CosignDetached(account *Account, parentHash Hash256) DetachedCosignature {
	return DetachedCosignature{Cosignature: CosignHash(account, parentHash), ParentHash: parentHash}
}

// VerifyCosignature checks that the cosignature signs hash.
func VerifyCosignature(hash Hash256, c Cosignature) bool {
	return Verify(c.SignerPublicKey, hash[:], c.Signature)
}
