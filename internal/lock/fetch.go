package lock

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/goodnatureofminers/cosign-orchestrator/internal/ledger"
	"go.uber.org/zap"
)

// SecretLockInfo is a secret lock record as reported by the node.
type SecretLockInfo struct {
	CompositeHash    string
	OwnerAddress     string
	RecipientAddress string
	MosaicID         uint64
	Amount           uint64
	EndHeight        uint64
	HashAlgorithm    Algorithm
	Secret           string
	Status           int
}

// HashLockInfo is a hash lock record as reported by the node.
type HashLockInfo struct {
	CompositeHash string
	OwnerAddress  string
	MosaicID      uint64
	Amount        uint64
	EndHeight     uint64
	Hash          string
	Status        int
}

// hexID decodes lock mosaic ids, which the node sends as bare hex strings.
type hexID uint64

func (h *hexID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(s), "0x"), "0X")
		v, err := strconv.ParseUint(s, 16, 64)
		if err != nil {
			return fmt.Errorf("parse mosaic id %q: %w", s, err)
		}
		*h = hexID(v)
		return nil
	}
	v, err := strconv.ParseUint(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("parse mosaic id %s: %w", data, err)
	}
	*h = hexID(v)
	return nil
}

type lockRecord struct {
	CompositeHash    string        `json:"compositeHash"`
	OwnerAddress     string        `json:"ownerAddress"`
	RecipientAddress string        `json:"recipientAddress"`
	MosaicID         hexID         `json:"mosaicId"`
	Amount           ledger.Uint64 `json:"amount"`
	EndHeight        ledger.Uint64 `json:"endHeight"`
	HashAlgorithm    uint8         `json:"hashAlgorithm"`
	Secret           string        `json:"secret"`
	Hash             string        `json:"hash"`
	Status           int           `json:"status"`
}

var errMissingCompositeHash = errors.New("lock record has no composite hash")

// decodeLockRecord accepts either {"lock": {...}} or the bare lock object.
func decodeLockRecord(raw json.RawMessage) (lockRecord, error) {
	var wrapped struct {
		Lock *lockRecord `json:"lock"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return lockRecord{}, err
	}
	rec := wrapped.Lock
	if rec == nil {
		rec = &lockRecord{}
		if err := json.Unmarshal(raw, rec); err != nil {
			return lockRecord{}, err
		}
	}
	if rec.CompositeHash == "" {
		return lockRecord{}, errMissingCompositeHash
	}
	return *rec, nil
}

func (r lockRecord) secretLock() SecretLockInfo {
	return SecretLockInfo{
		CompositeHash:    r.CompositeHash,
		OwnerAddress:     ledger.DisplayAddress(r.OwnerAddress),
		RecipientAddress: ledger.DisplayAddress(r.RecipientAddress),
		MosaicID:         uint64(r.MosaicID),
		Amount:           uint64(r.Amount),
		EndHeight:        uint64(r.EndHeight),
		HashAlgorithm:    Algorithm(r.HashAlgorithm),
		Secret:           r.Secret,
		Status:           r.Status,
	}
}

func (r lockRecord) hashLock() HashLockInfo {
	return HashLockInfo{
		CompositeHash: r.CompositeHash,
		OwnerAddress:  ledger.DisplayAddress(r.OwnerAddress),
		MosaicID:      uint64(r.MosaicID),
		Amount:        uint64(r.Amount),
		EndHeight:     uint64(r.EndHeight),
		Hash:          r.Hash,
		Status:        r.Status,
	}
}

// pageItems returns the elements of {"data": [...]} or of a bare array.
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

func (s *Service) targetAddress(address string) string {
	if address == "" {
		address = s.wallet.Address()
	}
	return ledger.NormalizeAddress(address)
}

func (s *Service) fetchLocks(ctx context.Context, kind, address, label string) ([]lockRecord, error) {
	target := s.targetAddress(address)
	if target == "" {
		return nil, nil
	}
	raw, err := s.client.Get(ctx, "/lock/"+kind+"?address="+url.QueryEscape(target), label)
	if err != nil {
		s.logger.Error("failed to fetch locks", zap.String("kind", kind), zap.String("address", target), zap.Error(err))
		return nil, err
	}
	items, err := pageItems(raw)
	if err != nil {
		return nil, fmt.Errorf("decode %s locks: %w", kind, err)
	}

	records := make([]lockRecord, 0, len(items))
	for i, item := range items {
		rec, err := decodeLockRecord(item)
		if err != nil {
			s.logger.Warn("skipping malformed lock record",
				zap.String("kind", kind),
				zap.Int("index", i),
				zap.Error(err),
			)
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

// FetchSecretLocks lists secret locks owned by address, or by the wallet when address is empty.
// Malformed records are skipped.
func (s *Service) FetchSecretLocks(ctx context.Context, address string) ([]SecretLockInfo, error) {
	records, err := s.fetchLocks(ctx, "secret", address, "Fetch secret locks")
	if err != nil {
		return nil, err
	}
	out := make([]SecretLockInfo, 0, len(records))
	for _, r := range records {
		out = append(out, r.secretLock())
	}
	return out, nil
}

// FetchHashLocks lists hash locks owned by address, or by the wallet when address is empty.
func (s *Service) FetchHashLocks(ctx context.Context, address string) ([]HashLockInfo, error) {
	records, err := s.fetchLocks(ctx, "hash", address, "Fetch hash locks")
	if err != nil {
		return nil, err
	}
	out := make([]HashLockInfo, 0, len(records))
	for _, r := range records {
		out = append(out, r.hashLock())
	}
	return out, nil
}

func (s *Service) fetchLock(ctx context.Context, endpoint, label string) (*lockRecord, error) {
	raw, err := s.client.GetOptional(ctx, endpoint, label)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	rec, err := decodeLockRecord(raw)
	if err != nil {
		return nil, fmt.Errorf("decode lock: %w", err)
	}
	return &rec, nil
}

// FetchSecretLockBySecret returns nil without error when no lock uses secret.
func (s *Service) FetchSecretLockBySecret(ctx context.Context, secret string) (*SecretLockInfo, error) {
	rec, err := s.fetchLock(ctx, "/lock/secret/"+ledger.NormalizeHash(secret), "Fetch secret lock by secret")
	if err != nil || rec == nil {
		return nil, err
	}
	info := rec.secretLock()
	return &info, nil
}

// FetchHashLockByHash returns nil without error when no lock references hash.
func (s *Service) FetchHashLockByHash(ctx context.Context, hash string) (*HashLockInfo, error) {
	rec, err := s.fetchLock(ctx, "/lock/hash/"+ledger.NormalizeHash(hash), "Fetch hash lock by hash")
	if err != nil || rec == nil {
		return nil, err
	}
	info := rec.hashLock()
	return &info, nil
}
