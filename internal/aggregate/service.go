// Package aggregate builds, cosigns and announces aggregate complete and bonded transactions.
package aggregate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/cosign-orchestrator/internal/ledger"
	"github.com/goodnatureofminers/cosign-orchestrator/internal/lock"
	"github.com/goodnatureofminers/cosign-orchestrator/internal/network"
	"github.com/goodnatureofminers/cosign-orchestrator/internal/status"
	"github.com/goodnatureofminers/cosign-orchestrator/pkg/symbol"
	"go.uber.org/zap"
)

const (
	MaxInnerTransactions = 100
	MaxCosigners         = 25
	// SizePerCosignature is the fee headroom reserved for each expected cosignature.
	SizePerCosignature   = symbol.CosignatureSize
	DefaultFeeMultiplier = uint64(100)

	deadlineTTL = 2 * time.Hour
)

var (
	ErrHashLockRejected   = errors.New("failed to announce hash lock transaction")
	ErrPartialNotFound    = errors.New("partial transaction not found")
	ErrTooManyInner       = fmt.Errorf("aggregate supports at most %d inner transactions", MaxInnerTransactions)
	ErrTooManyCosigners   = fmt.Errorf("aggregate supports at most %d cosigners", MaxCosigners)
	ErrNotAggregate       = errors.New("transaction is not an aggregate")
	ErrNoInnerTransaction = errors.New("aggregate requires at least one inner transaction")
)

// Service acts for one wallet against one node.
type Service struct {
	wallet  Wallet
	network *symbol.Network
	client  NodeClient
	poller  StatusPoller
	locker  HashLocker
	logger  *zap.Logger
	now     func() time.Time
}

// NewService wires an aggregate Service. locker builds the hash locks bonded aggregates need.
func NewService(wallet Wallet, client NodeClient, poller StatusPoller, locker HashLocker, logger *zap.Logger) (*Service, error) {
	if wallet == nil {
		return nil, errors.New("aggregate service wallet is required")
	}
	if client == nil {
		return nil, errors.New("aggregate service node client is required")
	}
	if poller == nil {
		return nil, errors.New("aggregate service status poller is required")
	}
	if locker == nil {
		return nil, errors.New("aggregate service hash locker is required")
	}
	n, err := symbol.NetworkByName(wallet.NetworkName())
	if err != nil {
		return nil, fmt.Errorf("aggregate service: %w", err)
	}
	return &Service{
		wallet:  wallet,
		network: n,
		client:  client,
		poller:  poller,
		locker:  locker,
		logger:  logger.Named("aggregate"),
		now:     time.Now,
	}, nil
}

// CreateEmbeddedTransfer builds an inner transfer signed by signerPublicKey.
// A non-empty message is tagged as plain text.
func (s *Service) CreateEmbeddedTransfer(
	signerPublicKey, recipient string,
	mosaics []symbol.Mosaic,
	message string,
) (*symbol.EmbeddedTransaction, error) {
	signer, err := symbol.ParsePublicKey(signerPublicKey)
	if err != nil {
		return nil, fmt.Errorf("signer: %w", err)
	}
	addr, err := ledger.ParseAddress(recipient)
	if err != nil {
		return nil, fmt.Errorf("recipient: %w", err)
	}
	body, err := symbol.NewTransferBody(addr, mosaics, ledger.EncodeMessage(message))
	if err != nil {
		return nil, err
	}
	return &symbol.EmbeddedTransaction{
		SignerPublicKey: signer,
		Network:         s.network.Identifier,
		Body:            body,
	}, nil
}

func (s *Service) createAggregate(
	bonded bool,
	inner []*symbol.EmbeddedTransaction,
	feeMultiplier uint64,
	requiredCosigners int,
) (*symbol.Transaction, error) {
	if len(inner) == 0 {
		return nil, ErrNoInnerTransaction
	}
	if len(inner) > MaxInnerTransactions {
		return nil, fmt.Errorf("%w: got %d", ErrTooManyInner, len(inner))
	}
	if requiredCosigners < 0 || requiredCosigners > MaxCosigners {
		return nil, fmt.Errorf("%w: got %d", ErrTooManyCosigners, requiredCosigners)
	}
	body, err := symbol.NewAggregateBody(bonded, inner)
	if err != nil {
		return nil, err
	}
	tx := &symbol.Transaction{
		SignerPublicKey: s.wallet.PublicKey(),
		Network:         s.network.Identifier,
		Deadline:        s.network.Deadline(s.now(), deadlineTTL),
		Body:            body,
	}
	tx.ApplyFee(feeMultiplier, requiredCosigners)
	return tx, nil
}

// CreateAggregateComplete wraps inner in an aggregate complete, reserving fee for requiredCosigners.
func (s *Service) CreateAggregateComplete(
	inner []*symbol.EmbeddedTransaction,
	feeMultiplier uint64,
	requiredCosigners int,
) (*symbol.Transaction, error) {
	return s.createAggregate(false, inner, feeMultiplier, requiredCosigners)
}

// CreateAggregateBonded wraps inner in an aggregate bonded that collects cosignatures after announcement.
func (s *Service) CreateAggregateBonded(inner []*symbol.EmbeddedTransaction, feeMultiplier uint64) (*symbol.Transaction, error) {
	return s.createAggregate(true, inner, feeMultiplier, 0)
}

// CreateHashLock builds the hash lock for a signed aggregate bonded.
func (s *Service) CreateHashLock(
	ctx context.Context,
	aggregate *symbol.Transaction,
	lockAmount, duration, feeMultiplier uint64,
) (*symbol.Transaction, error) {
	return s.locker.CreateHashLock(ctx, aggregate, lockAmount, duration, feeMultiplier)
}

// SignTransaction signs tx with the wallet key.
func (s *Service) SignTransaction(tx *symbol.Transaction) (symbol.Signature, error) {
	return s.wallet.Sign(tx)
}

// CosignTransaction builds a cosignature by the wallet. With a nil signature the transaction
// hash is signed; otherwise the supplied signature is wrapped as is.
func (s *Service) CosignTransaction(tx *symbol.Transaction, signature *symbol.Signature) (symbol.Cosignature, error) {
	if signature != nil {
		return symbol.Cosignature{SignerPublicKey: s.wallet.PublicKey(), Signature: *signature}, nil
	}
	hash, err := s.wallet.Hash(tx)
	if err != nil {
		return symbol.Cosignature{}, fmt.Errorf("hash transaction: %w", err)
	}
	account := s.wallet.CreateAccount(s.wallet.PrivateKey())
	return symbol.CosignHash(account, hash), nil
}

// AttachSignature stores sig on tx and returns the announce body.
func (s *Service) AttachSignature(tx *symbol.Transaction, sig symbol.Signature) (string, error) {
	return symbol.AttachSignature(tx, sig)
}

// AttachCosignature appends c to an aggregate before announcement.
func (s *Service) AttachCosignature(tx *symbol.Transaction, c symbol.Cosignature) error {
	body, ok := tx.Body.(*symbol.AggregateBody)
	if !ok {
		return ErrNotAggregate
	}
	if len(body.Cosignatures) >= MaxCosigners {
		return ErrTooManyCosigners
	}
	body.Cosignatures = append(body.Cosignatures, c)
	return nil
}

// CalculateTransactionHash returns the upper-case hex hash of tx.
func (s *Service) CalculateTransactionHash(tx *symbol.Transaction) (string, error) {
	h, err := s.wallet.Hash(tx)
	if err != nil {
		return "", err
	}
	return h.String(), nil
}

// CalculateFee returns (size + cosignatures * 104) * feeMultiplier.
func (s *Service) CalculateFee(tx *symbol.Transaction, cosignatures int, feeMultiplier uint64) uint64 {
	return uint64(tx.Size()+cosignatures*SizePerCosignature) * feeMultiplier
}

func (s *Service) put(ctx context.Context, endpoint, label, payload string) (json.RawMessage, error) {
	res, err := s.client.Put(ctx, endpoint, label, payload)
	if err != nil {
		s.logger.Error("announce failed", zap.String("endpoint", endpoint), zap.Error(err))
		return nil, err
	}
	s.logger.Info("announced",
		zap.String("endpoint", endpoint),
		zap.String("message", network.Message(res)),
	)
	return res, nil
}

// AnnounceTransaction submits a signed payload to /transactions.
func (s *Service) AnnounceTransaction(ctx context.Context, payload string) (json.RawMessage, error) {
	return s.put(ctx, "/transactions", "Announce transaction", payload)
}

// AnnouncePartial submits a signed aggregate bonded to /transactions/partial.
func (s *Service) AnnouncePartial(ctx context.Context, payload string) (json.RawMessage, error) {
	return s.put(ctx, "/transactions/partial", "Announce partial transaction", payload)
}

// CosignPartial confirms the partial transaction exists and announces a detached cosignature over its hash.
func (s *Service) CosignPartial(ctx context.Context, hash string) (json.RawMessage, error) {
	hash = ledger.NormalizeHash(hash)
	parent, err := symbol.ParseHash256(hash)
	if err != nil {
		return nil, fmt.Errorf("partial hash: %w", err)
	}
	raw, err := s.client.GetOptional(ctx, "/transactions/partial/"+hash, "Fetch partial for cosigning")
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: %s", ErrPartialNotFound, hash)
	}

	account := s.wallet.CreateAccount(s.wallet.PrivateKey())
	payload, err := symbol.CosignDetached(account, parent).JSON()
	if err != nil {
		return nil, err
	}
	res, err := s.put(ctx, "/transactions/cosignature", "Announce cosignature", payload)
	if err != nil {
		return nil, err
	}
	s.logger.Info("cosignature announced", zap.String("hash", hash))
	return res, nil
}

// CompleteOptions configures CreateAndAnnounceAggregateComplete.
type CompleteOptions struct {
	// Cosignatures collected elsewhere, attached as is.
	Cosignatures []symbol.Cosignature
	// Cosigners held in process; each cosigns the aggregate hash before announcement.
	Cosigners     []*symbol.Account
	FeeMultiplier uint64
}

// CompleteResult is returned after announcing an aggregate complete.
type CompleteResult struct {
	Hash       string
	APIMessage string
	Response   json.RawMessage
}

// CreateAndAnnounceAggregateComplete builds, signs, cosigns and announces an aggregate complete.
func (s *Service) CreateAndAnnounceAggregateComplete(
	ctx context.Context,
	inner []*symbol.EmbeddedTransaction,
	opts CompleteOptions,
) (CompleteResult, error) {
	if opts.FeeMultiplier == 0 {
		opts.FeeMultiplier = DefaultFeeMultiplier
	}
	cosigners := len(opts.Cosignatures) + len(opts.Cosigners)
	tx, err := s.CreateAggregateComplete(inner, opts.FeeMultiplier, cosigners)
	if err != nil {
		return CompleteResult{}, err
	}

	sig, err := s.SignTransaction(tx)
	if err != nil {
		return CompleteResult{}, fmt.Errorf("sign aggregate: %w", err)
	}
	tx.Signature = sig
	hash, err := s.wallet.Hash(tx)
	if err != nil {
		return CompleteResult{}, fmt.Errorf("hash aggregate: %w", err)
	}

	for _, c := range opts.Cosignatures {
		if err := s.AttachCosignature(tx, c); err != nil {
			return CompleteResult{}, err
		}
	}
	for _, acc := range opts.Cosigners {
		if err := s.AttachCosignature(tx, symbol.CosignHash(acc, hash)); err != nil {
			return CompleteResult{}, err
		}
	}

	payload, err := s.AttachSignature(tx, sig)
	if err != nil {
		return CompleteResult{}, err
	}
	res, err := s.AnnounceTransaction(ctx, payload)
	if err != nil {
		return CompleteResult{}, err
	}
	return CompleteResult{
		Hash:       hash.String(),
		APIMessage: network.Message(res),
		Response:   res,
	}, nil
}

// BondedOptions configures CreateAndAnnounceAggregateBonded. Zero values take the defaults.
type BondedOptions struct {
	LockAmount    uint64
	FeeMultiplier uint64
	// SkipHashLockWait announces the aggregate without waiting for the lock to confirm.
	SkipHashLockWait bool
	HashLockTimeout  time.Duration
	OnStatusUpdate   func(stage Stage, message string)
}

// BondedResult is returned once the aggregate bonded has been announced as partial.
type BondedResult struct {
	HashLockHash      string
	AggregateHash     string
	HashLockResponse  json.RawMessage
	AggregateResponse json.RawMessage
	Stage             Stage
}

func (o BondedOptions) notify(stage Stage, message string) {
	if o.OnStatusUpdate != nil {
		o.OnStatusUpdate(stage, message)
	}
}

// CreateAndAnnounceAggregateBonded runs the lock-first protocol: sign the aggregate, announce a
// hash lock for it, wait for the lock to confirm, then announce the aggregate as partial.
func (s *Service) CreateAndAnnounceAggregateBonded(
	ctx context.Context,
	inner []*symbol.EmbeddedTransaction,
	opts BondedOptions,
) (BondedResult, error) {
	if opts.LockAmount == 0 {
		opts.LockAmount = lock.HashLockAmount
	}
	if opts.FeeMultiplier == 0 {
		opts.FeeMultiplier = DefaultFeeMultiplier
	}
	if opts.HashLockTimeout == 0 {
		opts.HashLockTimeout = status.DefaultWaitOptions().Timeout
	}
	out := BondedResult{Stage: StageBuilding}

	aggregate, err := s.CreateAggregateBonded(inner, opts.FeeMultiplier)
	if err != nil {
		return out, err
	}
	aggregateSig, err := s.SignTransaction(aggregate)
	if err != nil {
		return out, fmt.Errorf("sign aggregate: %w", err)
	}
	aggregatePayload, err := s.AttachSignature(aggregate, aggregateSig)
	if err != nil {
		return out, err
	}
	if out.AggregateHash, err = s.CalculateTransactionHash(aggregate); err != nil {
		return out, fmt.Errorf("hash aggregate: %w", err)
	}

	hashLock, err := s.CreateHashLock(ctx, aggregate, opts.LockAmount, lock.HashLockDuration, opts.FeeMultiplier)
	if err != nil {
		return out, fmt.Errorf("create hash lock: %w", err)
	}
	lockSig, err := s.SignTransaction(hashLock)
	if err != nil {
		return out, fmt.Errorf("sign hash lock: %w", err)
	}
	lockPayload, err := s.AttachSignature(hashLock, lockSig)
	if err != nil {
		return out, err
	}
	if out.HashLockHash, err = s.CalculateTransactionHash(hashLock); err != nil {
		return out, fmt.Errorf("hash hash lock: %w", err)
	}

	opts.notify(StageBuilding, "Announcing hash lock transaction...")
	if out.HashLockResponse, err = s.AnnounceTransaction(ctx, lockPayload); err != nil {
		return out, err
	}
	if network.Message(out.HashLockResponse) == "" {
		return out, ErrHashLockRejected
	}
	out.Stage = StageHashLockAnnounced
	s.logger.Info("hash lock announced",
		zap.String("hash_lock", out.HashLockHash),
		zap.String("aggregate", out.AggregateHash),
	)

	if !opts.SkipHashLockWait {
		opts.notify(StageHashLockAnnounced, "Waiting for hash lock confirmation...")
		waitOpts := status.DefaultWaitOptions()
		waitOpts.Timeout = opts.HashLockTimeout
		if err := s.poller.WaitForConfirmation(ctx, out.HashLockHash, waitOpts); err != nil {
			return out, fmt.Errorf("hash lock %s: %w", out.HashLockHash, err)
		}
		out.Stage = StageHashLockConfirmed
	}

	opts.notify(out.Stage, "Announcing aggregate bonded transaction...")
	if out.AggregateResponse, err = s.AnnouncePartial(ctx, aggregatePayload); err != nil {
		return out, err
	}
	out.Stage = StageAggregatePending
	opts.notify(out.Stage, "Aggregate bonded announced, awaiting cosignatures")
	return out, nil
}

// PollForTransactionStatus polls hash until it is confirmed or failed. onUpdate fires on group or
// code transitions only. Zero opts use 180s with a 3s interval.
func (s *Service) PollForTransactionStatus(
	ctx context.Context,
	hash string,
	onUpdate status.UpdateFunc,
	opts status.Options,
) (status.Result, error) {
	if opts == (status.Options{}) {
		opts = status.DefaultPollOptions()
	}
	return s.poller.Poll(ctx, hash, opts, onUpdate)
}
