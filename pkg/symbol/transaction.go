package symbol

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
)

// TransactionType is the numeric transaction type code used on the wire.
type TransactionType uint16

const (
	TypeTransfer            TransactionType = 0x4154
	TypeAggregateComplete   TransactionType = 0x4141
	TypeAggregateBonded     TransactionType = 0x4241
	TypeHashLock            TransactionType = 0x4148
	TypeSecretLock          TransactionType = 0x4152
	TypeSecretProof         TransactionType = 0x4252
	TypeMosaicDefinition    TransactionType = 0x414D
	TypeMosaicSupplyChange  TransactionType = 0x424D
	TypeNamespaceRegister   TransactionType = 0x414E
	TypeAccountKeyLink      TransactionType = 0x414C
	TypeMultisigAccountEdit TransactionType = 0x4155
)

const (
	headerSize         = 128
	embeddedHeaderSize = 48
	// signingOffset skips size, reserved, signature, signer and reserved fields.
	signingOffset = 4 + 4 + SignatureSize + PublicKeySize + 4
)

// Body is the type-specific part of a transaction.
type Body interface {
	Type() TransactionType
	Version() uint8
	Size() int
	appendTo(dst []byte) []byte
}

// Transaction is a top-level, signable transaction.
type Transaction struct {
	Signature       Signature
	SignerPublicKey PublicKey
	Network         NetworkType
	Fee             uint64
	Deadline        uint64
	Body            Body
}

// Size returns the serialized size in bytes.
func (t *Transaction) Size() int {
	return headerSize + t.Body.Size()
}

// Serialize encodes the transaction in its binary wire form.
func (t *Transaction) Serialize() []byte {
	size := t.Size()
	out := make([]byte, 0, size)
	out = binary.LittleEndian.AppendUint32(out, uint32(size))
	out = binary.LittleEndian.AppendUint32(out, 0)
	out = append(out, t.Signature[:]...)
	out = append(out, t.SignerPublicKey[:]...)
	out = binary.LittleEndian.AppendUint32(out, 0)
	out = append(out, t.Body.Version(), byte(t.Network))
	out = binary.LittleEndian.AppendUint16(out, uint16(t.Body.Type()))
	out = binary.LittleEndian.AppendUint64(out, t.Fee)
	out = binary.LittleEndian.AppendUint64(out, t.Deadline)
	return t.Body.appendTo(out)
}

// SigningBytes returns the part of the payload covered by the signer's signature.
// Aggregates only commit to their header and transactions hash so cosignatures can be appended later.
func (t *Transaction) SigningBytes() []byte {
	data := t.Serialize()[signingOffset:]
	if IsAggregate(t.Body.Type()) {
		return data[:headerSize-signingOffset+HashSize]
	}
	return data
}

// ApplyFee sets fee = (size + cosignatures * CosignatureSize) * multiplier.
func (t *Transaction) ApplyFee(multiplier uint64, cosignatures int) {
	t.Fee = uint64(t.Size()+cosignatures*CosignatureSize) * multiplier
}

// IsAggregate reports whether the type carries embedded transactions.
func IsAggregate(txType TransactionType) bool {
	return txType == TypeAggregateComplete || txType == TypeAggregateBonded
}

// EmbeddedTransaction is an inner transaction of an aggregate.
type EmbeddedTransaction struct {
	SignerPublicKey PublicKey
	Network         NetworkType
	Body            Body
}

func (e *EmbeddedTransaction) Size() int {
	return embeddedHeaderSize + e.Body.Size()
}

// Serialize encodes the embedded transaction without alignment padding.
func (e *EmbeddedTransaction) Serialize() []byte {
	size := e.Size()
	out := make([]byte, 0, size)
	out = binary.LittleEndian.AppendUint32(out, uint32(size))
	out = binary.LittleEndian.AppendUint32(out, 0)
	out = append(out, e.SignerPublicKey[:]...)
	out = binary.LittleEndian.AppendUint32(out, 0)
	out = append(out, e.Body.Version(), byte(e.Network))
	out = binary.LittleEndian.AppendUint16(out, uint16(e.Body.Type()))
	return e.Body.appendTo(out)
}

// SignTransaction signs the transaction for the network and returns the signature.
func SignTransaction(n *Network, account *Account, tx *Transaction) Signature {
	return account.Sign(append(n.GenerationHashSeed[:], tx.SigningBytes()...))
}

// VerifyTransaction checks the transaction signature against its signer.
func VerifyTransaction(n *Network, tx *Transaction) bool {
	return Verify(tx.SignerPublicKey, append(n.GenerationHashSeed[:], tx.SigningBytes()...), tx.Signature)
}

// HashTransaction computes the entity hash: sha3(signature || signer || seed || signing bytes).
func HashTransaction(n *Network, tx *Transaction) Hash256 {
	return Sha3(tx.Signature[:], tx.SignerPublicKey[:], n.GenerationHashSeed[:], tx.SigningBytes())
}

type announcePayload struct {
	Payload string `json:"payload"`
}

// AttachSignature stores the signature on the transaction and returns the JSON announce body.
func AttachSignature(tx *Transaction, sig Signature) (string, error) {
	tx.Signature = sig
	body, err := json.Marshal(announcePayload{Payload: upperHex(tx.Serialize())})
	if err != nil {
		return "", fmt.Errorf("marshal signed payload: %w", err)
	}
	return string(body), nil
}

func padding(size int) int {
	return (8 - size%8) % 8
}
