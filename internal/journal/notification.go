// Package journal records stream notifications for later inspection.
package journal

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/goodnatureofminers/cosign-orchestrator/internal/stream"
)

// Notification is one journaled stream message.
type Notification struct {
	ID         uuid.UUID
	Channel    string
	Address    string
	Hash       string
	Group      string
	Code       string
	Height     uint64
	Payload    string
	ReceivedAt time.Time
}

// FromStream converts n into a journal row. Connection lifecycle events are
// not journaled and report false.
func FromStream(n stream.Notification, receivedAt time.Time) (Notification, bool) {
	row := Notification{
		ID:         uuid.New(),
		Channel:    string(n.Channel()),
		ReceivedAt: receivedAt.UTC(),
	}

	var payload any
	switch v := n.(type) {
	case stream.TransactionNotification:
		row.Address = v.Address
		row.Hash = v.Hash()
		payload = struct {
			Transaction json.RawMessage `json:"transaction,omitempty"`
			Meta        json.RawMessage `json:"meta,omitempty"`
		}{v.Transaction, v.Meta}
	case stream.BlockNotification:
		row.Height = v.Height()
		payload = struct {
			Block json.RawMessage `json:"block,omitempty"`
			Meta  json.RawMessage `json:"meta,omitempty"`
		}{v.Block, v.Meta}
	case stream.CosignatureNotification:
		row.Address = v.Address
		row.Hash = v.ParentHash
		payload = v
	case stream.StatusNotification:
		row.Address = v.Address
		row.Hash = v.Hash
		row.Group = v.Group
		row.Code = v.Code
		payload = v
	case stream.RemovalNotification:
		row.Address = v.Address
		row.Hash = v.Hash
		payload = map[string]string{"hash": v.Hash}
	case stream.MultisigNotification:
		row.Address = v.Address
		payload = v.Data
	default:
		return Notification{}, false
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		raw = []byte(strconv.Quote(err.Error()))
	}
	row.Payload = string(raw)
	return row, true
}
