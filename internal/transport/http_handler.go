// Package transport exposes the monitor's HTTP and gRPC surfaces.
package transport

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/cosign-orchestrator/internal/network"
	"github.com/goodnatureofminers/cosign-orchestrator/pkg/symbol"
)

const (
	defaultNotificationLimit = 50
	maxNotificationLimit     = 1000
	healthProbeTimeout       = 5 * time.Second
)

var errJournalDisabled = errors.New("notification journal is not configured")

// HTTPHandler serves the read-only query API.
type HTTPHandler struct {
	partials      PartialService
	locks         LockService
	notifications NotificationStore
	monitor       MonitorStatus
	node          NodeProber
	network       *symbol.Network
	logger        *zap.Logger
	mux           *http.ServeMux
}

// NewHTTPHandler wires the routes. notifications and monitor may be nil.
func NewHTTPHandler(
	partials PartialService,
	locks LockService,
	notifications NotificationStore,
	monitor MonitorStatus,
	node NodeProber,
	n *symbol.Network,
	logger *zap.Logger,
) (*HTTPHandler, error) {
	if partials == nil || locks == nil || node == nil {
		return nil, errors.New("partial, lock and node services are required")
	}
	if n == nil {
		return nil, errors.New("network is required")
	}

	h := &HTTPHandler{
		partials:      partials,
		locks:         locks,
		notifications: notifications,
		monitor:       monitor,
		node:          node,
		network:       n,
		logger:        logger.Named("http"),
		mux:           http.NewServeMux(),
	}
	h.mux.HandleFunc("GET /v1/partials", h.listPartials)
	h.mux.HandleFunc("GET /v1/locks/secret", h.listSecretLocks)
	h.mux.HandleFunc("GET /v1/locks/hash", h.listHashLocks)
	h.mux.HandleFunc("GET /v1/notifications", h.listNotifications)
	h.mux.HandleFunc("GET /healthz", h.health)
	return h, nil
}

func (h *HTTPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// listPartials returns one partial when hash is given, otherwise every partial
// waiting on address.
func (h *HTTPHandler) listPartials(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if hash := q.Get("hash"); hash != "" {
		p, err := h.partials.FetchPartialByHash(r.Context(), hash)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		if p == nil {
			writeJSON(w, http.StatusNotFound, errorDTO{Error: "partial transaction not found"})
			return
		}
		writeJSON(w, http.StatusOK, toPartial(*p, h.network))
		return
	}

	partials, err := h.partials.FetchPartialTransactions(r.Context(), q.Get("address"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	out := make([]partialDTO, 0, len(partials))
	for _, p := range partials {
		out = append(out, toPartial(p, h.network))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *HTTPHandler) listSecretLocks(w http.ResponseWriter, r *http.Request) {
	locks, err := h.locks.FetchSecretLocks(r.Context(), r.URL.Query().Get("address"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	out := make([]secretLockDTO, 0, len(locks))
	for _, l := range locks {
		out = append(out, toSecretLock(l))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *HTTPHandler) listHashLocks(w http.ResponseWriter, r *http.Request) {
	locks, err := h.locks.FetchHashLocks(r.Context(), r.URL.Query().Get("address"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	out := make([]hashLockDTO, 0, len(locks))
	for _, l := range locks {
		out = append(out, toHashLock(l))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *HTTPHandler) listNotifications(w http.ResponseWriter, r *http.Request) {
	if h.notifications == nil {
		h.writeError(w, r, errJournalDisabled)
		return
	}
	q := r.URL.Query()
	limit := defaultNotificationLimit
	if raw := q.Get("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 || v > maxNotificationLimit {
			writeJSON(w, http.StatusBadRequest, errorDTO{Error: "limit must be between 1 and 1000"})
			return
		}
		limit = v
	}

	rows, err := h.notifications.RecentNotifications(r.Context(), q.Get("address"), limit)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	out := make([]notificationDTO, 0, len(rows))
	for _, n := range rows {
		out = append(out, toNotification(n))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *HTTPHandler) health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthProbeTimeout)
	defer cancel()

	resp := healthDTO{Status: "ok"}
	node, err := h.node.TestConnection(ctx)
	if err != nil {
		resp.Node.Error = err.Error()
	} else {
		resp.Node = nodeDTO{
			Healthy:       node.Healthy,
			APINode:       node.APINode,
			DBNode:        node.DBNode,
			NetworkHeight: node.NetworkHeight,
			URL:           node.URL,
		}
	}
	if h.monitor != nil {
		st := h.monitor.Status()
		resp.Monitor = &st
	}

	code := http.StatusOK
	if !resp.Node.Healthy {
		resp.Status = "degraded"
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, resp)
}

func (h *HTTPHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := statusFor(err)
	if code >= http.StatusInternalServerError {
		h.logger.Error("request failed", zap.String("path", r.URL.Path), zap.Int("status", code), zap.Error(err))
	} else {
		h.logger.Debug("request rejected", zap.String("path", r.URL.Path), zap.Int("status", code), zap.Error(err))
	}
	writeJSON(w, code, errorDTO{Error: err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errJournalDisabled):
		return http.StatusServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded), network.IsKind(err, network.KindTimeout):
		return http.StatusGatewayTimeout
	case network.StatusCode(err) == http.StatusNotFound:
		return http.StatusNotFound
	case network.StatusCode(err) == http.StatusBadRequest:
		return http.StatusBadRequest
	case network.IsKind(err, network.KindHTTP), network.IsKind(err, network.KindConnection):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
