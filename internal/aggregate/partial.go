package aggregate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/goodnatureofminers/cosign-orchestrator/internal/ledger"
	"github.com/goodnatureofminers/cosign-orchestrator/pkg/symbol"
	"go.uber.org/zap"
)

// InnerTransaction is a decoded inner transaction of a partial aggregate.
type InnerTransaction struct {
	Type             string
	SignerPublicKey  string
	RecipientAddress string
	Mosaics          []symbol.Mosaic
	Message          string
	MessageHex       string
	Raw              json.RawMessage
}

// CosignatureInfo is a cosignature already collected by a partial aggregate.
type CosignatureInfo struct {
	SignerPublicKey string
	Signature       string
}

// CosignerInfo tells whether a cosigner has signed.
type CosignerInfo struct {
	PublicKey string
	Address   string
	HasSigned bool
}

// PartialTransaction is an announced aggregate bonded still collecting cosignatures.
type PartialTransaction struct {
	Hash              string
	SignerPublicKey   string
	Deadline          uint64
	InnerTransactions []InnerTransaction
	Cosignatures      []CosignatureInfo
	MissingCosigners  []string
	ExpiresIn         time.Duration
}

// Cosigners lists signed cosigners first, then the missing ones.
func (p PartialTransaction) Cosigners(n *symbol.Network) []CosignerInfo {
	out := make([]CosignerInfo, 0, len(p.Cosignatures)+len(p.MissingCosigners))
	add := func(publicKey string, signed bool) {
		info := CosignerInfo{PublicKey: publicKey, HasSigned: signed}
		if pk, err := symbol.ParsePublicKey(publicKey); err == nil {
			info.Address = symbol.AddressFromPublicKey(n.Identifier, pk).String()
		}
		out = append(out, info)
	}
	for _, c := range p.Cosignatures {
		add(c.SignerPublicKey, true)
	}
	for _, k := range p.MissingCosigners {
		add(k, false)
	}
	return out
}

type partialRecord struct {
	ID   string `json:"id"`
	Meta struct {
		Hash            string   `json:"hash"`
		CosignatureKeys []string `json:"cosignatureKeys"`
	} `json:"meta"`
	Transaction struct {
		SignerPublicKey string            `json:"signerPublicKey"`
		Deadline        ledger.Uint64     `json:"deadline"`
		Transactions    []json.RawMessage `json:"transactions"`
		Cosignatures    []struct {
			SignerPublicKey string `json:"signerPublicKey"`
			Signature       string `json:"signature"`
		} `json:"cosignatures"`
	} `json:"transaction"`
}

type innerRecord struct {
	Type             json.RawMessage `json:"type"`
	SignerPublicKey  string          `json:"signerPublicKey"`
	RecipientAddress string          `json:"recipientAddress"`
	Mosaics          []ledger.Mosaic `json:"mosaics"`
	Message          string          `json:"message"`
}

var errMissingHash = errors.New("partial transaction has no hash")

func (s *Service) parsePartial(raw json.RawMessage) (PartialTransaction, error) {
	var rec partialRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return PartialTransaction{}, err
	}
	hash := rec.Meta.Hash
	if hash == "" {
		hash = rec.ID
	}
	if hash == "" {
		return PartialTransaction{}, errMissingHash
	}

	inner := make([]InnerTransaction, 0, len(rec.Transaction.Transactions))
	for i, item := range rec.Transaction.Transactions {
		tx, err := parseInner(item)
		if err != nil {
			return PartialTransaction{}, fmt.Errorf("inner transaction %d: %w", i, err)
		}
		inner = append(inner, tx)
	}

	cosignatures := make([]CosignatureInfo, 0, len(rec.Transaction.Cosignatures))
	for _, c := range rec.Transaction.Cosignatures {
		cosignatures = append(cosignatures, CosignatureInfo{SignerPublicKey: c.SignerPublicKey, Signature: c.Signature})
	}

	deadline := uint64(rec.Transaction.Deadline)
	var expiresIn time.Duration
	if now := s.network.Timestamp(s.now()); deadline > now {
		expiresIn = time.Duration(deadline-now) * time.Millisecond
	}

	return PartialTransaction{
		Hash:              ledger.NormalizeHash(hash),
		SignerPublicKey:   rec.Transaction.SignerPublicKey,
		Deadline:          deadline,
		InnerTransactions: inner,
		Cosignatures:      cosignatures,
		MissingCosigners:  rec.Meta.CosignatureKeys,
		ExpiresIn:         expiresIn,
	}, nil
}

// parseInner accepts both {"transaction": {...}, "meta": {...}} and the bare inner object.
func parseInner(raw json.RawMessage) (InnerTransaction, error) {
	var wrapped struct {
		Transaction json.RawMessage `json:"transaction"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return InnerTransaction{}, err
	}
	body := raw
	if len(wrapped.Transaction) > 0 && !bytes.Equal(wrapped.Transaction, []byte("null")) {
		body = wrapped.Transaction
	}

	var rec innerRecord
	if err := json.Unmarshal(body, &rec); err != nil {
		return InnerTransaction{}, err
	}
	typeName, err := innerTypeName(rec.Type)
	if err != nil {
		return InnerTransaction{}, err
	}

	mosaics := make([]symbol.Mosaic, 0, len(rec.Mosaics))
	for _, m := range rec.Mosaics {
		id, amount := m.Resolve()
		mosaics = append(mosaics, symbol.Mosaic{ID: id, Amount: amount})
	}

	out := InnerTransaction{
		Type:            typeName,
		SignerPublicKey: rec.SignerPublicKey,
		Mosaics:         mosaics,
		Message:         ledger.DecodeMessage(rec.Message),
		MessageHex:      rec.Message,
		Raw:             body,
	}
	if rec.RecipientAddress != "" {
		out.RecipientAddress = ledger.DisplayAddress(rec.RecipientAddress)
	}
	return out, nil
}

// innerTypeName maps numeric codes to names and keeps string types as sent.
func innerTypeName(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ledger.TransactionTypeName(0), nil
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", err
		}
		if code, err := strconv.ParseUint(s, 10, 16); err == nil {
			return ledger.TransactionTypeName(code), nil
		}
		return s, nil
	}
	code, err := strconv.ParseUint(string(raw), 10, 16)
	if err != nil {
		return "", fmt.Errorf("parse transaction type %s: %w", raw, err)
	}
	return ledger.TransactionTypeName(code), nil
}

func pageItems(raw json.RawMessage) ([]json.RawMessage, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '[' {
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, err
		}
		return items, nil
	}
	var page struct {
		Data []json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &page); err != nil {
		return nil, err
	}
	return page.Data, nil
}

// FetchPartialTransactions lists partial transactions that need address's cosignature, or the
// wallet's when address is empty. Records that cannot be parsed are skipped.
func (s *Service) FetchPartialTransactions(ctx context.Context, address string) ([]PartialTransaction, error) {
	if address == "" {
		address = s.wallet.Address()
	}
	target := ledger.NormalizeAddress(address)
	if target == "" {
		return nil, nil
	}

	raw, err := s.client.Get(ctx, "/transactions/partial?address="+url.QueryEscape(target), "Fetch partial transactions")
	if err != nil {
		s.logger.Error("failed to fetch partial transactions", zap.String("address", target), zap.Error(err))
		return nil, err
	}
	items, err := pageItems(raw)
	if err != nil {
		return nil, fmt.Errorf("decode partial transactions: %w", err)
	}

	out := make([]PartialTransaction, 0, len(items))
	for i, item := range items {
		p, err := s.parsePartial(item)
		if err != nil {
			s.logger.Warn("skipping malformed partial transaction", zap.Int("index", i), zap.Error(err))
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// FetchPartialByHash returns nil without error when the node has no such partial transaction.
func (s *Service) FetchPartialByHash(ctx context.Context, hash string) (*PartialTransaction, error) {
	raw, err := s.client.GetOptional(ctx, "/transactions/partial/"+ledger.NormalizeHash(hash), "Fetch partial transaction by hash")
	if err != nil || raw == nil {
		return nil, err
	}
	p, err := s.parsePartial(raw)
	if err != nil {
		return nil, fmt.Errorf("decode partial transaction: %w", err)
	}
	return &p, nil
}
