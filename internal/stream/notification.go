package stream

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/goodnatureofminers/cosign-orchestrator/internal/ledger"
)

// Channel names a node listener topic or a connection lifecycle event.
type Channel string

const (
	ChannelBlock                 Channel = "block"
	ChannelFinalizedBlock        Channel = "finalizedBlock"
	ChannelConfirmedAdded        Channel = "confirmedAdded"
	ChannelUnconfirmedAdded      Channel = "unconfirmedAdded"
	ChannelUnconfirmedRemoved    Channel = "unconfirmedRemoved"
	ChannelPartialAdded          Channel = "partialAdded"
	ChannelPartialRemoved        Channel = "partialRemoved"
	ChannelCosignature           Channel = "cosignature"
	ChannelModifyMultisigAccount Channel = "modifyMultisigAccount"
	ChannelStatus                Channel = "status"

	EventConnected    Channel = "connected"
	EventDisconnected Channel = "disconnected"
	EventError        Channel = "error"
)

var knownChannels = map[Channel]struct{}{
	ChannelBlock:                 {},
	ChannelFinalizedBlock:        {},
	ChannelConfirmedAdded:        {},
	ChannelUnconfirmedAdded:      {},
	ChannelUnconfirmedRemoved:    {},
	ChannelPartialAdded:          {},
	ChannelPartialRemoved:        {},
	ChannelCosignature:           {},
	ChannelModifyMultisigAccount: {},
	ChannelStatus:                {},
}

// Topic returns the subscription topic, scoped to address when it is not empty.
func (c Channel) Topic(address string) string {
	if address == "" {
		return string(c)
	}
	return string(c) + "/" + address
}

// Notification is delivered to callbacks registered for its channel.
type Notification interface {
	Channel() Channel
}

// TransactionNotification is sent on confirmedAdded, unconfirmedAdded and partialAdded.
type TransactionNotification struct {
	Topic       Channel
	Address     string
	Transaction json.RawMessage
	Meta        json.RawMessage
}

func (n TransactionNotification) Channel() Channel { return n.Topic }

// Hash returns meta.hash, or "" when the node did not send it.
func (n TransactionNotification) Hash() string {
	var meta struct {
		Hash string `json:"hash"`
	}
	if len(n.Meta) == 0 || json.Unmarshal(n.Meta, &meta) != nil {
		return ""
	}
	return strings.ToUpper(meta.Hash)
}

// BlockNotification is sent on block and finalizedBlock.
type BlockNotification struct {
	Topic Channel
	Block json.RawMessage
	Meta  json.RawMessage
}

func (n BlockNotification) Channel() Channel { return n.Topic }

// Height returns block.height, or 0 when absent.
func (n BlockNotification) Height() uint64 {
	var block struct {
		Height ledger.Uint64 `json:"height"`
	}
	if len(n.Block) == 0 || json.Unmarshal(n.Block, &block) != nil {
		return 0
	}
	return uint64(block.Height)
}

// CosignatureNotification announces a cosignature added to a partial transaction.
type CosignatureNotification struct {
	Address         string        `json:"-"`
	ParentHash      string        `json:"parentHash"`
	Signature       string        `json:"signature"`
	SignerPublicKey string        `json:"signerPublicKey"`
	Version         ledger.Uint64 `json:"version"`
}

func (CosignatureNotification) Channel() Channel { return ChannelCosignature }

// StatusNotification reports a transaction rejected or otherwise changing status.
type StatusNotification struct {
	Address string `json:"address"`
	Hash    string `json:"hash"`
	Code    string `json:"code"`
	Group   string `json:"group"`
}

func (StatusNotification) Channel() Channel { return ChannelStatus }

// RemovalNotification is sent on unconfirmedRemoved and partialRemoved.
type RemovalNotification struct {
	Topic   Channel
	Address string
	Hash    string
}

func (n RemovalNotification) Channel() Channel { return n.Topic }

// MultisigNotification carries a modifyMultisigAccount payload as sent.
type MultisigNotification struct {
	Address string
	Data    json.RawMessage
}

func (MultisigNotification) Channel() Channel { return ChannelModifyMultisigAccount }

// ConnectionEvent is delivered for connected, disconnected and error events.
type ConnectionEvent struct {
	Event Channel
	UID   string
	Err   error
}

func (e ConnectionEvent) Channel() Channel { return e.Event }

type frame struct {
	UID   json.RawMessage `json:"uid"`
	Topic string          `json:"topic"`
	Data  json.RawMessage `json:"data"`
}

// splitTopic splits "<channel>[/<address>]" on the first slash.
func splitTopic(topic string) (Channel, string) {
	channel, address, _ := strings.Cut(topic, "/")
	return Channel(channel), address
}

func isNull(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}

func emptyObject(raw json.RawMessage) json.RawMessage {
	if isNull(raw) {
		return json.RawMessage("{}")
	}
	return raw
}

// decodeNotification maps a channel payload to its typed notification.
func decodeNotification(channel Channel, address string, data json.RawMessage) (Notification, error) {
	if isNull(data) {
		data = json.RawMessage("{}")
	}
	switch channel {
	case ChannelConfirmedAdded, ChannelUnconfirmedAdded, ChannelPartialAdded:
		var p struct {
			Transaction json.RawMessage `json:"transaction"`
			Meta        json.RawMessage `json:"meta"`
		}
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, err
		}
		return TransactionNotification{
			Topic:       channel,
			Address:     address,
			Transaction: emptyObject(p.Transaction),
			Meta:        emptyObject(p.Meta),
		}, nil

	case ChannelBlock, ChannelFinalizedBlock:
		var p struct {
			Block json.RawMessage `json:"block"`
			Meta  json.RawMessage `json:"meta"`
		}
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, err
		}
		block := p.Block
		if isNull(block) && channel == ChannelFinalizedBlock {
			// finalizedBlock may carry the block fields at the top level.
			block = data
		}
		return BlockNotification{Topic: channel, Block: emptyObject(block), Meta: emptyObject(p.Meta)}, nil

	case ChannelCosignature:
		n := CosignatureNotification{Address: address}
		if err := json.Unmarshal(data, &n); err != nil {
			return nil, err
		}
		return n, nil

	case ChannelStatus:
		var n StatusNotification
		if err := json.Unmarshal(data, &n); err != nil {
			return nil, err
		}
		if n.Address == "" {
			n.Address = address
		}
		return n, nil

	case ChannelUnconfirmedRemoved, ChannelPartialRemoved:
		var p struct {
			Hash string `json:"hash"`
			Meta struct {
				Hash string `json:"hash"`
			} `json:"meta"`
		}
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, err
		}
		hash := p.Meta.Hash
		if hash == "" {
			hash = p.Hash
		}
		return RemovalNotification{Topic: channel, Address: address, Hash: strings.ToUpper(hash)}, nil

	case ChannelModifyMultisigAccount:
		return MultisigNotification{Address: address, Data: data}, nil
	}
	return nil, fmt.Errorf("unknown channel %q", channel)
}
