package transport

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/goodnatureofminers/cosign-orchestrator/internal/aggregate"
	"github.com/goodnatureofminers/cosign-orchestrator/internal/journal"
	"github.com/goodnatureofminers/cosign-orchestrator/internal/ledger"
	"github.com/goodnatureofminers/cosign-orchestrator/internal/lock"
	"github.com/goodnatureofminers/cosign-orchestrator/internal/service"
	"github.com/goodnatureofminers/cosign-orchestrator/pkg/symbol"
)

type mosaicDTO struct {
	ID     string `json:"id"`
	Amount string `json:"amount"`
}

type innerDTO struct {
	Type             string      `json:"type"`
	SignerPublicKey  string      `json:"signerPublicKey,omitempty"`
	RecipientAddress string      `json:"recipientAddress,omitempty"`
	Mosaics          []mosaicDTO `json:"mosaics,omitempty"`
	Message          string      `json:"message,omitempty"`
}

type cosignerDTO struct {
	PublicKey string `json:"publicKey"`
	Address   string `json:"address"`
	HasSigned bool   `json:"hasSigned"`
}

type partialDTO struct {
	Hash              string        `json:"hash"`
	SignerPublicKey   string        `json:"signerPublicKey"`
	Deadline          uint64        `json:"deadline"`
	ExpiresInSeconds  int64         `json:"expiresInSeconds"`
	InnerTransactions []innerDTO    `json:"innerTransactions"`
	Cosigners         []cosignerDTO `json:"cosigners"`
	MissingCosigners  []string      `json:"missingCosigners"`
}

type secretLockDTO struct {
	CompositeHash    string `json:"compositeHash"`
	OwnerAddress     string `json:"ownerAddress"`
	RecipientAddress string `json:"recipientAddress"`
	MosaicID         string `json:"mosaicId"`
	Amount           uint64 `json:"amount"`
	EndHeight        uint64 `json:"endHeight"`
	HashAlgorithm    string `json:"hashAlgorithm"`
	Secret           string `json:"secret"`
	Status           int    `json:"status"`
}

type hashLockDTO struct {
	CompositeHash string `json:"compositeHash"`
	OwnerAddress  string `json:"ownerAddress"`
	MosaicID      string `json:"mosaicId"`
	Amount        uint64 `json:"amount"`
	EndHeight     uint64 `json:"endHeight"`
	Hash          string `json:"hash"`
	Status        int    `json:"status"`
}

type notificationDTO struct {
	ID         string          `json:"id"`
	Channel    string          `json:"channel"`
	Address    string          `json:"address,omitempty"`
	Hash       string          `json:"hash,omitempty"`
	Group      string          `json:"group,omitempty"`
	Code       string          `json:"code,omitempty"`
	Height     uint64          `json:"height,omitempty"`
	Payload    json.RawMessage `json:"payload,omitempty"`
	ReceivedAt time.Time       `json:"receivedAt"`
}

type nodeDTO struct {
	Healthy       bool   `json:"healthy"`
	APINode       string `json:"apiNode,omitempty"`
	DBNode        string `json:"dbNode,omitempty"`
	NetworkHeight uint64 `json:"networkHeight,omitempty"`
	URL           string `json:"url,omitempty"`
	Error         string `json:"error,omitempty"`
}

type healthDTO struct {
	Status  string          `json:"status"`
	Node    nodeDTO         `json:"node"`
	Monitor *service.Status `json:"monitor,omitempty"`
}

type errorDTO struct {
	Error string `json:"error"`
}

func toMosaics(in []symbol.Mosaic) []mosaicDTO {
	out := make([]mosaicDTO, 0, len(in))
	for _, m := range in {
		out = append(out, mosaicDTO{ID: ledger.FormatMosaicID(m.ID), Amount: strconv.FormatUint(m.Amount, 10)})
	}
	return out
}

func toPartial(p aggregate.PartialTransaction, n *symbol.Network) partialDTO {
	inner := make([]innerDTO, 0, len(p.InnerTransactions))
	for _, tx := range p.InnerTransactions {
		inner = append(inner, innerDTO{
			Type:             tx.Type,
			SignerPublicKey:  tx.SignerPublicKey,
			RecipientAddress: tx.RecipientAddress,
			Mosaics:          toMosaics(tx.Mosaics),
			Message:          tx.Message,
		})
	}
	cosigners := make([]cosignerDTO, 0)
	for _, c := range p.Cosigners(n) {
		cosigners = append(cosigners, cosignerDTO(c))
	}
	missing := p.MissingCosigners
	if missing == nil {
		missing = []string{}
	}
	return partialDTO{
		Hash:              p.Hash,
		SignerPublicKey:   p.SignerPublicKey,
		Deadline:          p.Deadline,
		ExpiresInSeconds:  int64(p.ExpiresIn / time.Second),
		InnerTransactions: inner,
		Cosigners:         cosigners,
		MissingCosigners:  missing,
	}
}

func toSecretLock(l lock.SecretLockInfo) secretLockDTO {
	return secretLockDTO{
		CompositeHash:    l.CompositeHash,
		OwnerAddress:     l.OwnerAddress,
		RecipientAddress: l.RecipientAddress,
		MosaicID:         ledger.FormatMosaicID(l.MosaicID),
		Amount:           l.Amount,
		EndHeight:        l.EndHeight,
		HashAlgorithm:    l.HashAlgorithm.String(),
		Secret:           l.Secret,
		Status:           l.Status,
	}
}

func toHashLock(l lock.HashLockInfo) hashLockDTO {
	return hashLockDTO{
		CompositeHash: l.CompositeHash,
		OwnerAddress:  l.OwnerAddress,
		MosaicID:      ledger.FormatMosaicID(l.MosaicID),
		Amount:        l.Amount,
		EndHeight:     l.EndHeight,
		Hash:          l.Hash,
		Status:        l.Status,
	}
}

func toNotification(n journal.Notification) notificationDTO {
	dto := notificationDTO{
		ID:         n.ID.String(),
		Channel:    n.Channel,
		Address:    n.Address,
		Hash:       n.Hash,
		Group:      n.Group,
		Code:       n.Code,
		Height:     n.Height,
		ReceivedAt: n.ReceivedAt,
	}
	if json.Valid([]byte(n.Payload)) {
		dto.Payload = json.RawMessage(n.Payload)
	}
	return dto
}
