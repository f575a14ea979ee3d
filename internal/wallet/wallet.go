// Package wallet implements ledger.Wallet on top of a single private key.
package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"sync"

	"github.com/goodnatureofminers/cosign-orchestrator/internal/ledger"
	"github.com/goodnatureofminers/cosign-orchestrator/pkg/symbol"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

var _ ledger.Wallet = (*KeyWallet)(nil)

// KeyWallet signs with one in-memory key and reads chain settings from its node.
type KeyWallet struct {
	account *symbol.Account
	network *symbol.Network
	client  NodeClient
	logger  *zap.Logger

	mu       sync.Mutex
	currency uint64
	fetches  singleflight.Group
}

// New builds a wallet for privateKey on the named network.
func New(privateKey symbol.PrivateKey, networkName string, client NodeClient, logger *zap.Logger) (*KeyWallet, error) {
	network, err := symbol.NetworkByName(networkName)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, errors.New("wallet node client is required")
	}
	account := symbol.NewAccount(privateKey)
	return &KeyWallet{
		account: account,
		network: network,
		client:  client,
		logger:  logger.Named("wallet").With(zap.String("address", account.Address(network).String())),
	}, nil
}

// FromHex is New with a hex-encoded private key.
func FromHex(privateKeyHex, networkName string, client NodeClient, logger *zap.Logger) (*KeyWallet, error) {
	pk, err := symbol.ParsePrivateKey(privateKeyHex)
	if err != nil {
		return nil, fmt.Errorf("parse private key: %w", err)
	}
	return New(pk, networkName, client, logger)
}

func (w *KeyWallet) Address() string               { return w.account.Address(w.network).String() }
func (w *KeyWallet) PublicKey() symbol.PublicKey   { return w.account.PublicKey() }
func (w *KeyWallet) PrivateKey() symbol.PrivateKey { return w.account.PrivateKey() }
func (w *KeyWallet) NetworkName() string           { return w.network.Name }
func (w *KeyWallet) Network() *symbol.Network      { return w.network }
func (w *KeyWallet) NodeURL() string               { return w.client.NodeURL() }

func (w *KeyWallet) CreateAccount(privateKey symbol.PrivateKey) *symbol.Account {
	return symbol.NewAccount(privateKey)
}

// Sign signs tx as this wallet. The signer must already be set to the wallet key.
func (w *KeyWallet) Sign(tx *symbol.Transaction) (symbol.Signature, error) {
	if tx == nil || tx.Body == nil {
		return symbol.Signature{}, errors.New("transaction is empty")
	}
	if tx.SignerPublicKey != w.account.PublicKey() {
		return symbol.Signature{}, fmt.Errorf("transaction signer %s is not the wallet key", tx.SignerPublicKey)
	}
	return symbol.SignTransaction(w.network, w.account, tx), nil
}

func (w *KeyWallet) Hash(tx *symbol.Transaction) (symbol.Hash256, error) {
	if tx == nil || tx.Body == nil {
		return symbol.Hash256{}, errors.New("transaction is empty")
	}
	return symbol.HashTransaction(w.network, tx), nil
}

type networkProperties struct {
	Chain struct {
		CurrencyMosaicID string `json:"currencyMosaicId"`
	} `json:"chain"`
}

// CurrencyMosaicID reads chain.currencyMosaicId from /network/properties once and caches it.
// When the node cannot tell, the network's well-known currency is returned uncached.
// Concurrent callers share one request and no lock is held while it runs.
func (w *KeyWallet) CurrencyMosaicID(ctx context.Context) (uint64, error) {
	w.mu.Lock()
	cached := w.currency
	w.mu.Unlock()
	if cached != 0 {
		return cached, nil
	}

	v, err, _ := w.fetches.Do("currency", func() (interface{}, error) {
		id, err := w.fetchCurrency(ctx)
		if err != nil {
			return uint64(0), err
		}
		w.mu.Lock()
		w.currency = id
		w.mu.Unlock()
		return id, nil
	})
	if err != nil {
		w.logger.Warn("using network currency mosaic", zap.String("mosaic_id", ledger.FormatMosaicID(w.network.CurrencyMosaicID)), zap.Error(err))
		return w.network.CurrencyMosaicID, nil
	}
	return v.(uint64), nil
}

func (w *KeyWallet) fetchCurrency(ctx context.Context) (uint64, error) {
	raw, err := w.client.Get(ctx, "/network/properties", "Fetch network properties")
	if err != nil {
		return 0, err
	}
	var props networkProperties
	if err := json.Unmarshal(raw, &props); err != nil {
		return 0, fmt.Errorf("decode network properties: %w", err)
	}
	if props.Chain.CurrencyMosaicID == "" {
		return 0, errors.New("network properties have no currency mosaic id")
	}
	return ledger.ParseMosaicID(props.Chain.CurrencyMosaicID)
}

type accountRecord struct {
	Account struct {
		Mosaics []ledger.Mosaic `json:"mosaics"`
	} `json:"account"`
}

// Mosaics lists the mosaics held by address, or the wallet's when address is empty.
// An account unknown to the node has none.
func (w *KeyWallet) Mosaics(ctx context.Context, address string) ([]symbol.Mosaic, error) {
	if address == "" {
		address = w.Address()
	}
	target := ledger.NormalizeAddress(address)
	raw, err := w.client.GetOptional(ctx, "/accounts/"+url.PathEscape(target), "Fetch account")
	if err != nil || raw == nil {
		return nil, err
	}
	var rec accountRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("decode account %s: %w", target, err)
	}
	out := make([]symbol.Mosaic, 0, len(rec.Account.Mosaics))
	for _, m := range rec.Account.Mosaics {
		id, amount := m.Resolve()
		out = append(out, symbol.Mosaic{ID: id, Amount: amount})
	}
	return out, nil
}
