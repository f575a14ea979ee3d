// Package ledger holds the wallet capability the engines depend on and the value
// normalization rules shared by every component talking to a Symbol node.
package ledger

import (
	"context"

	"github.com/goodnatureofminers/cosign-orchestrator/pkg/symbol"
)

type (
	// Wallet is the signing identity the lock and aggregate engines act for.
	Wallet interface {
		Address() string
		PublicKey() symbol.PublicKey
		PrivateKey() symbol.PrivateKey
		NetworkName() string
		NodeURL() string
		Sign(tx *symbol.Transaction) (symbol.Signature, error)
		Hash(tx *symbol.Transaction) (symbol.Hash256, error)
		CreateAccount(privateKey symbol.PrivateKey) *symbol.Account
		// CurrencyMosaicID returns 0 with a nil error when the node does not report one.
		CurrencyMosaicID(ctx context.Context) (uint64, error)
	}
)
