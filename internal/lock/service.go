// Package lock builds, announces and tracks secret locks, secret proofs and hash locks.
package lock

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goodnatureofminers/cosign-orchestrator/internal/ledger"
	"github.com/goodnatureofminers/cosign-orchestrator/internal/network"
	"github.com/goodnatureofminers/cosign-orchestrator/internal/status"
	"github.com/goodnatureofminers/cosign-orchestrator/pkg/symbol"
	"go.uber.org/zap"
)

const (
	HashLockDuration      uint64 = 480
	HashLockAmount        uint64 = 10_000_000
	MaxSecretLockDuration uint64 = 365 * 24 * 60
	DefaultFeeMultiplier  uint64 = 100

	// FallbackCurrencyMosaicID is used for hash lock deposits when the wallet reports no currency.
	// It is the mainnet currency and is wrong on any other network.
	FallbackCurrencyMosaicID uint64 = 0x6BED913FA20223F8

	deadlineTTL = 2 * time.Hour
)

// Service acts for one wallet against one node.
type Service struct {
	wallet  Wallet
	network *symbol.Network
	client  NodeClient
	poller  StatusPoller
	logger  *zap.Logger
	now     func() time.Time
}

// NewService wires a lock Service.
func NewService(wallet Wallet, client NodeClient, poller StatusPoller, logger *zap.Logger) (*Service, error) {
	if wallet == nil {
		return nil, errors.New("lock service wallet is required")
	}
	if client == nil {
		return nil, errors.New("lock service node client is required")
	}
	if poller == nil {
		return nil, errors.New("lock service status poller is required")
	}
	n, err := symbol.NetworkByName(wallet.NetworkName())
	if err != nil {
		return nil, fmt.Errorf("lock service: %w", err)
	}
	return &Service{
		wallet:  wallet,
		network: n,
		client:  client,
		poller:  poller,
		logger:  logger.Named("lock"),
		now:     time.Now,
	}, nil
}

func (s *Service) newTransaction(body symbol.Body, feeMultiplier uint64) *symbol.Transaction {
	tx := &symbol.Transaction{
		SignerPublicKey: s.wallet.PublicKey(),
		Network:         s.network.Identifier,
		Deadline:        s.network.Deadline(s.now(), deadlineTTL),
		Body:            body,
	}
	tx.ApplyFee(feeMultiplier, 0)
	return tx
}

// CreateSecretLock builds an unsigned secret lock transaction.
func (s *Service) CreateSecretLock(
	recipient string,
	mosaicID, amount uint64,
	secret []byte,
	duration uint64,
	algorithm Algorithm,
	feeMultiplier uint64,
) (*symbol.Transaction, error) {
	size, err := algorithm.SecretSize()
	if err != nil {
		return nil, err
	}
	if len(secret) != size {
		return nil, fmt.Errorf("secret for %s must be %d bytes, got %d", algorithm, size, len(secret))
	}
	if duration == 0 || duration > MaxSecretLockDuration {
		return nil, fmt.Errorf("secret lock duration must be between 1 and %d blocks, got %d", MaxSecretLockDuration, duration)
	}
	addr, err := ledger.ParseAddress(recipient)
	if err != nil {
		return nil, fmt.Errorf("recipient: %w", err)
	}
	wireSecret, err := symbol.SecretFromBytes(secret)
	if err != nil {
		return nil, err
	}

	return s.newTransaction(&symbol.SecretLockBody{
		Recipient:     addr,
		Secret:        wireSecret,
		Mosaic:        symbol.Mosaic{ID: mosaicID, Amount: amount},
		Duration:      duration,
		HashAlgorithm: uint8(algorithm),
	}, feeMultiplier), nil
}

// CreateSecretProof builds an unsigned claim transaction. Pairs whose proof does not hash to
// secret are rejected before reaching the node.
func (s *Service) CreateSecretProof(
	recipient string,
	secret, proof []byte,
	algorithm Algorithm,
	feeMultiplier uint64,
) (*symbol.Transaction, error) {
	if err := VerifySecretProof(secret, proof, algorithm); err != nil {
		return nil, err
	}
	addr, err := ledger.ParseAddress(recipient)
	if err != nil {
		return nil, fmt.Errorf("recipient: %w", err)
	}
	wireSecret, err := symbol.SecretFromBytes(secret)
	if err != nil {
		return nil, err
	}

	return s.newTransaction(&symbol.SecretProofBody{
		Recipient:     addr,
		Secret:        wireSecret,
		HashAlgorithm: uint8(algorithm),
		Proof:         append([]byte(nil), proof...),
	}, feeMultiplier), nil
}

// CreateHashLock builds a hash lock against the hash of aggregate, which must already be signed.
func (s *Service) CreateHashLock(
	ctx context.Context,
	aggregate *symbol.Transaction,
	lockAmount, duration, feeMultiplier uint64,
) (*symbol.Transaction, error) {
	if aggregate == nil || aggregate.Body == nil || aggregate.Body.Type() != symbol.TypeAggregateBonded {
		return nil, errors.New("hash lock requires an aggregate bonded transaction")
	}
	aggregateHash, err := s.wallet.Hash(aggregate)
	if err != nil {
		return nil, fmt.Errorf("hash aggregate: %w", err)
	}

	return s.newTransaction(&symbol.HashLockBody{
		Mosaic:   symbol.Mosaic{ID: s.currencyMosaicID(ctx), Amount: lockAmount},
		Duration: duration,
		Hash:     aggregateHash,
	}, feeMultiplier), nil
}

func (s *Service) currencyMosaicID(ctx context.Context) uint64 {
	id, err := s.wallet.CurrencyMosaicID(ctx)
	if err == nil && id != 0 {
		return id
	}
	s.logger.Warn("wallet reported no currency mosaic, using fallback",
		zap.String("network", s.network.Name),
		zap.String("mosaic_id", ledger.FormatMosaicID(FallbackCurrencyMosaicID)),
		zap.Error(err),
	)
	return FallbackCurrencyMosaicID
}

// SignTransaction signs tx with the wallet key.
func (s *Service) SignTransaction(tx *symbol.Transaction) (symbol.Signature, error) {
	return s.wallet.Sign(tx)
}

// AttachSignature stores sig on tx and returns the announce body.
func (s *Service) AttachSignature(tx *symbol.Transaction, sig symbol.Signature) (string, error) {
	return symbol.AttachSignature(tx, sig)
}

// CalculateTransactionHash returns the upper-case hex hash of tx.
func (s *Service) CalculateTransactionHash(tx *symbol.Transaction) (string, error) {
	h, err := s.wallet.Hash(tx)
	if err != nil {
		return "", err
	}
	return h.String(), nil
}

// CalculateFee returns size * feeMultiplier.
func (s *Service) CalculateFee(tx *symbol.Transaction, feeMultiplier uint64) uint64 {
	return uint64(tx.Size()) * feeMultiplier
}

// AnnounceTransaction submits a signed payload to /transactions.
func (s *Service) AnnounceTransaction(ctx context.Context, payload string) (json.RawMessage, error) {
	res, err := s.client.Put(ctx, "/transactions", "Announce transaction", payload)
	if err != nil {
		s.logger.Error("failed to announce transaction", zap.Error(err))
		return nil, err
	}
	s.logger.Info("transaction announced", zap.String("message", network.Message(res)))
	return res, nil
}

// signAndAnnounce signs tx, announces it and returns its hash.
func (s *Service) signAndAnnounce(ctx context.Context, tx *symbol.Transaction) (string, json.RawMessage, error) {
	sig, err := s.SignTransaction(tx)
	if err != nil {
		return "", nil, fmt.Errorf("sign transaction: %w", err)
	}
	payload, err := s.AttachSignature(tx, sig)
	if err != nil {
		return "", nil, err
	}
	hash, err := s.CalculateTransactionHash(tx)
	if err != nil {
		return "", nil, fmt.Errorf("hash transaction: %w", err)
	}
	res, err := s.AnnounceTransaction(ctx, payload)
	if err != nil {
		return hash, nil, err
	}
	return hash, res, nil
}

// SecretLockRequest describes a secret lock to create. A fresh proof is generated for it.
type SecretLockRequest struct {
	Recipient     string
	MosaicID      uint64
	Amount        uint64
	Duration      uint64
	Algorithm     Algorithm
	FeeMultiplier uint64
}

// SecretLockResult is returned after announcing a secret lock. Proof must be kept to claim it.
type SecretLockResult struct {
	Hash       string
	Secret     string
	Proof      string
	Algorithm  Algorithm
	APIMessage string
	Response   json.RawMessage
}

// CreateAndAnnounceSecretLock generates a secret/proof pair, then builds, signs and announces the lock.
func (s *Service) CreateAndAnnounceSecretLock(ctx context.Context, req SecretLockRequest) (SecretLockResult, error) {
	pair, err := GenerateSecretProof(req.Algorithm)
	if err != nil {
		return SecretLockResult{}, err
	}
	tx, err := s.CreateSecretLock(req.Recipient, req.MosaicID, req.Amount, pair.Secret, req.Duration, req.Algorithm, req.FeeMultiplier)
	if err != nil {
		return SecretLockResult{}, err
	}
	hash, res, err := s.signAndAnnounce(ctx, tx)
	if err != nil {
		return SecretLockResult{}, err
	}
	return SecretLockResult{
		Hash:       hash,
		Secret:     pair.SecretHex(),
		Proof:      pair.ProofHex(),
		Algorithm:  req.Algorithm,
		APIMessage: network.Message(res),
		Response:   res,
	}, nil
}

// SecretProofRequest claims a secret lock. Secret and Proof are hex.
type SecretProofRequest struct {
	Recipient     string
	Secret        string
	Proof         string
	Algorithm     Algorithm
	FeeMultiplier uint64
}

// SecretProofResult is returned after announcing a secret proof.
type SecretProofResult struct {
	Hash       string
	Secret     string
	Proof      string
	APIMessage string
	Response   json.RawMessage
}

// CreateAndAnnounceSecretProof builds, signs and announces a claim.
func (s *Service) CreateAndAnnounceSecretProof(ctx context.Context, req SecretProofRequest) (SecretProofResult, error) {
	secret, err := hex.DecodeString(strings.TrimSpace(req.Secret))
	if err != nil {
		return SecretProofResult{}, fmt.Errorf("decode secret: %w", err)
	}
	proof, err := hex.DecodeString(strings.TrimSpace(req.Proof))
	if err != nil {
		return SecretProofResult{}, fmt.Errorf("decode proof: %w", err)
	}
	tx, err := s.CreateSecretProof(req.Recipient, secret, proof, req.Algorithm, req.FeeMultiplier)
	if err != nil {
		return SecretProofResult{}, err
	}
	hash, res, err := s.signAndAnnounce(ctx, tx)
	if err != nil {
		return SecretProofResult{}, err
	}
	return SecretProofResult{
		Hash:       hash,
		Secret:     strings.ToUpper(hex.EncodeToString(secret)),
		Proof:      strings.ToUpper(hex.EncodeToString(proof)),
		APIMessage: network.Message(res),
		Response:   res,
	}, nil
}

// HashLockResult is returned after announcing a hash lock.
type HashLockResult struct {
	Hash          string
	AggregateHash string
	LockAmount    uint64
	Duration      uint64
	APIMessage    string
	Response      json.RawMessage
}

// CreateAndAnnounceHashLock locks lockAmount of the currency against the signed aggregate.
func (s *Service) CreateAndAnnounceHashLock(
	ctx context.Context,
	aggregate *symbol.Transaction,
	lockAmount, duration, feeMultiplier uint64,
) (HashLockResult, error) {
	tx, err := s.CreateHashLock(ctx, aggregate, lockAmount, duration, feeMultiplier)
	if err != nil {
		return HashLockResult{}, err
	}
	aggregateHash, err := s.CalculateTransactionHash(aggregate)
	if err != nil {
		return HashLockResult{}, fmt.Errorf("hash aggregate: %w", err)
	}
	hash, res, err := s.signAndAnnounce(ctx, tx)
	if err != nil {
		return HashLockResult{}, err
	}
	return HashLockResult{
		Hash:          hash,
		AggregateHash: aggregateHash,
		LockAmount:    lockAmount,
		Duration:      duration,
		APIMessage:    network.Message(res),
		Response:      res,
	}, nil
}

// WaitForConfirmation blocks until hash is confirmed, failed or opts.Timeout passes.
func (s *Service) WaitForConfirmation(ctx context.Context, hash string, opts status.Options) error {
	return s.poller.WaitForConfirmation(ctx, hash, opts)
}
