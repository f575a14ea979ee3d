package symbol

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"sort"
)

// Mosaic is an (id, amount) pair in base units.
type Mosaic struct {
	ID     uint64
	Amount uint64
}

const mosaicSize = 16

func appendMosaic(dst []byte, m Mosaic) []byte {
	dst = binary.LittleEndian.AppendUint64(dst, m.ID)
	return binary.LittleEndian.AppendUint64(dst, m.Amount)
}

// TransferBody moves mosaics and an optional message to a recipient.
type TransferBody struct {
	Recipient Address
	Mosaics   []Mosaic
	Message   []byte
}

// NewTransferBody sorts mosaics by id as the ledger requires.
func NewTransferBody(recipient Address, mosaics []Mosaic, message []byte) (*TransferBody, error) {
	if len(mosaics) > math.MaxUint8 {
		return nil, fmt.Errorf("too many mosaics: %d", len(mosaics))
	}
	if len(message) > math.MaxUint16 {
		return nil, fmt.Errorf("message too long: %d bytes", len(message))
	}
	sorted := make([]Mosaic, len(mosaics))
	copy(sorted, mosaics)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })
	return &TransferBody{Recipient: recipient, Mosaics: sorted, Message: message}, nil
}

func (b *TransferBody) Type() TransactionType { return TypeTransfer }
func (b *TransferBody) Version() uint8        { return 1 }

func (b *TransferBody) Size() int {
	return AddressSize + 2 + 1 + 4 + 1 + len(b.Mosaics)*mosaicSize + len(b.Message)
}

func (b *TransferBody) appendTo(dst []byte) []byte {
	dst = append(dst, b.Recipient[:]...)
	dst = binary.LittleEndian.AppendUint16(dst, uint16(len(b.Message)))
	dst = append(dst, uint8(len(b.Mosaics)))
	dst = binary.LittleEndian.AppendUint32(dst, 0)
	dst = append(dst, 0)
	for _, m := range b.Mosaics {
		dst = appendMosaic(dst, m)
	}
	return append(dst, b.Message...)
}

// AggregateBody bundles embedded transactions and their cosignatures.
type AggregateBody struct {
	Bonded           bool
	TransactionsHash Hash256
	Transactions     []*EmbeddedTransaction
	Cosignatures     []Cosignature
}

// NewAggregateBody commits to the embedded transactions in the given order.
func NewAggregateBody(bonded bool, transactions []*EmbeddedTransaction) (*AggregateBody, error) {
	if len(transactions) == 0 {
		return nil, errors.New("aggregate requires at least one embedded transaction")
	}
	for i, tx := range transactions {
		if tx == nil || tx.Body == nil {
			return nil, fmt.Errorf("embedded transaction %d is empty", i)
		}
		if IsAggregate(tx.Body.Type()) {
			return nil, fmt.Errorf("embedded transaction %d cannot be an aggregate", i)
		}
	}
	return &AggregateBody{
		Bonded:           bonded,
		TransactionsHash: HashEmbeddedTransactions(transactions),
		Transactions:     transactions,
	}, nil
}

func (b *AggregateBody) Type() TransactionType {
	if b.Bonded {
		return TypeAggregateBonded
	}
	return TypeAggregateComplete
}

func (b *AggregateBody) Version() uint8 { return 2 }

func (b *AggregateBody) payloadSize() int {
	size := 0
	for _, tx := range b.Transactions {
		s := tx.Size()
		size += s + padding(s)
	}
	return size
}

func (b *AggregateBody) Size() int {
	return HashSize + 4 + 4 + b.payloadSize() + len(b.Cosignatures)*CosignatureSize
}

func (b *AggregateBody) appendTo(dst []byte) []byte {
	dst = append(dst, b.TransactionsHash[:]...)
	dst = binary.LittleEndian.AppendUint32(dst, uint32(b.payloadSize()))
	dst = binary.LittleEndian.AppendUint32(dst, 0)
	for _, tx := range b.Transactions {
		raw := tx.Serialize()
		dst = append(dst, raw...)
		dst = append(dst, make([]byte, padding(len(raw)))...)
	}
	for _, c := range b.Cosignatures {
		dst = c.appendTo(dst)
	}
	return dst
}

// HashLockBody locks a deposit against the hash of an aggregate bonded transaction.
type HashLockBody struct {
	Mosaic   Mosaic
	Duration uint64
	Hash     Hash256
}

func (b *HashLockBody) Type() TransactionType { return TypeHashLock }
func (b *HashLockBody) Version() uint8        { return 1 }
func (b *HashLockBody) Size() int             { return mosaicSize + 8 + HashSize }

func (b *HashLockBody) appendTo(dst []byte) []byte {
	dst = appendMosaic(dst, b.Mosaic)
	dst = binary.LittleEndian.AppendUint64(dst, b.Duration)
	return append(dst, b.Hash[:]...)
}

// SecretLockBody locks funds until the proof of Secret is revealed or Duration blocks pass.
type SecretLockBody struct {
	Recipient     Address
	Secret        Hash256
	Mosaic        Mosaic
	Duration      uint64
	HashAlgorithm uint8
}

func (b *SecretLockBody) Type() TransactionType { return TypeSecretLock }
func (b *SecretLockBody) Version() uint8        { return 1 }
func (b *SecretLockBody) Size() int             { return AddressSize + HashSize + mosaicSize + 8 + 1 }

func (b *SecretLockBody) appendTo(dst []byte) []byte {
	dst = append(dst, b.Recipient[:]...)
	dst = append(dst, b.Secret[:]...)
	dst = appendMosaic(dst, b.Mosaic)
	dst = binary.LittleEndian.AppendUint64(dst, b.Duration)
	return append(dst, b.HashAlgorithm)
}

// SecretProofBody reveals Proof to unlock the secret lock identified by Secret.
type SecretProofBody struct {
	Recipient     Address
	Secret        Hash256
	HashAlgorithm uint8
	Proof         []byte
}

func (b *SecretProofBody) Type() TransactionType { return TypeSecretProof }
func (b *SecretProofBody) Version() uint8        { return 1 }
func (b *SecretProofBody) Size() int             { return AddressSize + HashSize + 2 + 1 + len(b.Proof) }

func (b *SecretProofBody) appendTo(dst []byte) []byte {
	dst = append(dst, b.Recipient[:]...)
	dst = append(dst, b.Secret[:]...)
	dst = binary.LittleEndian.AppendUint16(dst, uint16(len(b.Proof)))
	dst = append(dst, b.HashAlgorithm)
	return append(dst, b.Proof...)
}

// SecretFromBytes left-aligns a 20- or 32-byte secret into the 32-byte wire field.
func SecretFromBytes(secret []byte) (Hash256, error) {
	var h Hash256
	if len(secret) != 20 && len(secret) != HashSize {
		return h, fmt.Errorf("secret must be 20 or 32 bytes, got %d", len(secret))
	}
	copy(h[:], secret)
	return h, nil
}
