// Package stream keeps a websocket subscription to a Symbol node alive and fans its
// notifications out to registered callbacks.
package stream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/goodnatureofminers/cosign-orchestrator/internal/clock"
	"github.com/goodnatureofminers/cosign-orchestrator/internal/ledger"
	"github.com/gorilla/websocket"
	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"
)

var (
	ErrNotConnected   = errors.New("stream is not connected")
	ErrConnectTimeout = errors.New("timed out waiting for stream connection")
)

// State is the connection state of a Client.
type State int

const (
	StateDisconnected State = iota
	StateConnecting
	StateConnected
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// AddressOptions selects the address-scoped channels SubscribeAddress subscribes to.
type AddressOptions struct {
	Confirmed   bool
	Unconfirmed bool
	Partial     bool
	Status      bool
	Cosignature bool
}

// AllAddressChannels enables every address-scoped channel.
func AllAddressChannels() AddressOptions {
	return AddressOptions{Confirmed: true, Unconfirmed: true, Partial: true, Status: true, Cosignature: true}
}

func (o AddressOptions) channels() []Channel {
	out := make([]Channel, 0, 5)
	if o.Confirmed {
		out = append(out, ChannelConfirmedAdded)
	}
	if o.Unconfirmed {
		out = append(out, ChannelUnconfirmedAdded)
	}
	if o.Partial {
		out = append(out, ChannelPartialAdded)
	}
	if o.Status {
		out = append(out, ChannelStatus)
	}
	if o.Cosignature {
		out = append(out, ChannelCosignature)
	}
	return out
}

type subscribeMessage struct {
	UID       string `json:"uid"`
	Subscribe string `json:"subscribe"`
}

// Client is a reconnecting listener for one node. Callbacks run synchronously on the
// receive loop and must not block or call Stop.
type Client struct {
	cfg     Config
	metrics Metrics
	logger  *zap.Logger
	dialer  *websocket.Dialer
	sleep   clock.SleepFunc

	mu        sync.Mutex
	nodeURL   string
	url       string
	state     State
	running   bool
	uid       string
	conn      *websocket.Conn
	connected chan struct{}
	topics    map[string]struct{}
	addresses map[string]AddressOptions
	callbacks map[Channel][]callback
	nextID    CallbackID
	baseCtx   context.Context
	cancel    context.CancelFunc
	wg        *sync.WaitGroup

	// gorilla allows one concurrent writer.
	writeMu sync.Mutex

	// only touched by the receive loop.
	reconnect *backoff.ExponentialBackOff
}

// NewClient builds a stopped client for the node behind nodeURL.
func NewClient(nodeURL string, cfg Config, metrics Metrics, logger *zap.Logger) (*Client, error) {
	if metrics == nil {
		return nil, errors.New("stream metrics is required")
	}
	streamURL, err := BuildStreamURL(nodeURL)
	if err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()

	return &Client{
		cfg:     cfg,
		metrics: metrics,
		logger:  logger.Named("stream"),
		dialer: &websocket.Dialer{
			Proxy:            http.ProxyFromEnvironment,
			HandshakeTimeout: cfg.HandshakeTimeout,
		},
		sleep:     clock.SleepWithContext,
		nodeURL:   strings.TrimRight(strings.TrimSpace(nodeURL), "/"),
		url:       streamURL,
		state:     StateDisconnected,
		connected: make(chan struct{}),
		topics:    make(map[string]struct{}),
		addresses: make(map[string]AddressOptions),
		callbacks: make(map[Channel][]callback),
		reconnect: cfg.newBackOff(),
	}, nil
}

// URL returns the websocket endpoint.
func (c *Client) URL() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.url
}

// NodeURL returns the REST URL the stream endpoint was derived from.
func (c *Client) NodeURL() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.nodeURL
}

func (c *Client) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// UID returns the session id of the current connection, or "".
func (c *Client) UID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.uid
}

func (c *Client) IsConnected() bool {
	return c.State() == StateConnected
}

// WatchedAddresses returns the normalized addresses restored after every reconnect.
func (c *Client) WatchedAddresses() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Sorted(maps.Keys(c.addresses))
}

// Start connects in the background. The connection lives until Stop is called or ctx is done.
func (c *Client) Start(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.running {
		return nil
	}

	runCtx, cancel := context.WithCancel(ctx)
	wg := &sync.WaitGroup{}
	c.running = true
	c.state = StateConnecting
	c.baseCtx = ctx
	c.cancel = cancel
	c.wg = wg
	c.reconnect.Reset()

	url := c.url
	wg.Add(2)
	go func() {
		defer wg.Done()
		c.run(runCtx, url)
	}()
	go func() {
		defer wg.Done()
		c.keepAlive(runCtx)
	}()

	c.logger.Info("stream client started", zap.String("url", url))
	return nil
}

// Stop closes the connection and waits for the background goroutines. The client may be
// started again afterwards.
func (c *Client) Stop() {
	c.mu.Lock()
	c.state = StateStopped
	if !c.running {
		c.mu.Unlock()
		return
	}
	c.running = false
	cancel, wg, conn := c.cancel, c.wg, c.conn
	c.mu.Unlock()

	if conn != nil {
		msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
		_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
	}
	cancel()
	wg.Wait()
	c.logger.Info("stream client stopped")
}

// UpdateNodeURL restarts the client against another node. Watched addresses and channels
// are restored on the new connection's handshake; the call waits up to 5s for it.
func (c *Client) UpdateNodeURL(ctx context.Context, nodeURL string) error {
	streamURL, err := BuildStreamURL(nodeURL)
	if err != nil {
		return err
	}

	c.mu.Lock()
	wasRunning, baseCtx := c.running, c.baseCtx
	c.mu.Unlock()

	c.Stop()

	c.mu.Lock()
	c.nodeURL = strings.TrimRight(strings.TrimSpace(nodeURL), "/")
	c.url = streamURL
	c.mu.Unlock()

	c.logger.Info("node url updated", zap.String("node", nodeURL), zap.String("url", streamURL))
	if !wasRunning {
		return nil
	}
	if baseCtx == nil || baseCtx.Err() != nil {
		baseCtx = context.WithoutCancel(ctx)
	}
	if err := c.Start(baseCtx); err != nil {
		return err
	}
	for i := 0; i < 10 && !c.IsConnected(); i++ {
		if err := c.sleep(ctx, 500*time.Millisecond); err != nil {
			return err
		}
	}
	if !c.IsConnected() {
		c.logger.Warn("stream not connected yet, subscriptions will be restored on handshake")
	}
	return nil
}

// WaitForConnection blocks until the handshake completes, timeout passes or ctx is done.
func (c *Client) WaitForConnection(ctx context.Context, timeout time.Duration) error {
	c.mu.Lock()
	if c.state == StateConnected {
		c.mu.Unlock()
		return nil
	}
	ch := c.connected
	c.mu.Unlock()

	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case <-ch:
		return nil
	case <-timer.C:
		return ErrConnectTimeout
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Subscribe sends a subscription for topic and remembers it for resubscription. When the
// client is not connected the topic is still remembered and ErrNotConnected is returned.
func (c *Client) Subscribe(topic string) error {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return errors.New("topic is required")
	}
	c.mu.Lock()
	c.topics[topic] = struct{}{}
	c.mu.Unlock()
	return c.send(topic)
}

func (c *Client) SubscribeBlock() error {
	return c.Subscribe(string(ChannelBlock))
}

func (c *Client) SubscribeFinalizedBlock() error {
	return c.Subscribe(string(ChannelFinalizedBlock))
}

// SubscribeAddress watches address on the channels enabled in opts. Every failed channel
// is reported in the returned error; the address stays watched either way.
func (c *Client) SubscribeAddress(address string, opts AddressOptions) error {
	normalized := ledger.NormalizeAddress(address)
	if normalized == "" {
		return errors.New("address is required")
	}
	c.mu.Lock()
	c.addresses[normalized] = opts
	c.mu.Unlock()

	err := c.subscribeAddressTopics(normalized, opts)
	c.logger.Info("subscribed to address", zap.String("address", normalized), zap.Bool("success", err == nil))
	return err
}

// UnsubscribeAddress stops restoring address after reconnects.
func (c *Client) UnsubscribeAddress(address string) {
	normalized := ledger.NormalizeAddress(address)
	c.mu.Lock()
	delete(c.addresses, normalized)
	c.mu.Unlock()
}

func (c *Client) subscribeAddressTopics(address string, opts AddressOptions) error {
	var result *multierror.Error
	for _, ch := range opts.channels() {
		if err := c.send(ch.Topic(address)); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}

func (c *Client) send(topic string) error {
	c.mu.Lock()
	conn, uid := c.conn, c.uid
	c.mu.Unlock()
	if conn == nil || uid == "" {
		return fmt.Errorf("subscribe %s: %w", topic, ErrNotConnected)
	}

	started := time.Now()
	c.writeMu.Lock()
	_ = conn.SetWriteDeadline(time.Now().Add(c.cfg.WriteTimeout))
	err := conn.WriteJSON(subscribeMessage{UID: uid, Subscribe: topic})
	c.writeMu.Unlock()
	c.metrics.Observe("subscribe", err, started)
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", topic, err)
	}
	c.logger.Debug("subscribed", zap.String("topic", topic))
	return nil
}

func (c *Client) run(ctx context.Context, url string) {
	for {
		err := c.connectAndServe(ctx, url)
		if ctx.Err() != nil {
			return
		}
		if !c.cfg.AutoReconnect {
			c.logger.Info("stream closed, reconnect disabled", zap.Error(err))
			return
		}

		delay := c.reconnect.NextBackOff()
		c.metrics.ObserveReconnect(delay)
		c.logger.Info("scheduling stream reconnect", zap.Duration("delay", delay), zap.Error(err))
		if err := c.sleep(ctx, delay); err != nil {
			return
		}
		c.setState(StateConnecting)
	}
}

func (c *Client) connectAndServe(ctx context.Context, url string) error {
	started := time.Now()
	conn, resp, err := c.dialer.DialContext(ctx, url, nil)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	c.metrics.Observe("dial", err, started)
	if err != nil {
		err = fmt.Errorf("dial %s: %w", url, err)
		if ctx.Err() == nil {
			c.logger.Warn("stream connection failed", zap.Error(err))
			c.emit(ConnectionEvent{Event: EventError, Err: err})
		}
		return err
	}

	c.mu.Lock()
	if ctx.Err() != nil {
		c.mu.Unlock()
		_ = conn.Close()
		return ctx.Err()
	}
	c.conn = conn
	c.mu.Unlock()
	c.logger.Info("stream connection opened", zap.String("url", url))

	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()
	defer c.closed(conn)

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				c.logger.Warn("stream read failed", zap.Error(err))
				c.emit(ConnectionEvent{Event: EventError, Err: err})
			}
			return fmt.Errorf("read stream: %w", err)
		}
		c.handleFrame(data)
	}
}

func (c *Client) closed(conn *websocket.Conn) {
	c.mu.Lock()
	if c.conn == conn {
		c.conn = nil
	}
	uid := c.uid
	c.uid = ""
	if c.state != StateStopped {
		c.state = StateDisconnected
	}
	select {
	case <-c.connected:
		c.connected = make(chan struct{})
	default:
	}
	c.mu.Unlock()

	_ = conn.Close()
	c.metrics.SetConnected(false)
	c.logger.Info("stream connection closed", zap.String("uid", uid))
	c.emit(ConnectionEvent{Event: EventDisconnected, UID: uid})
}

func (c *Client) setState(s State) {
	c.mu.Lock()
	if c.state != StateStopped {
		c.state = s
	}
	c.mu.Unlock()
}

func (c *Client) keepAlive(ctx context.Context) {
	ticker := time.NewTicker(c.cfg.KeepAliveInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !c.IsConnected() {
				continue
			}
			if err := c.send(string(ChannelBlock)); err != nil {
				c.logger.Debug("keep-alive failed", zap.Error(err))
			}
		}
	}
}

func (c *Client) handleFrame(data []byte) {
	var f frame
	if err := json.Unmarshal(data, &f); err != nil {
		c.logger.Error("failed to parse stream frame", zap.Error(err))
		return
	}
	if !isNull(f.UID) {
		var uid string
		if err := json.Unmarshal(f.UID, &uid); err != nil || uid == "" {
			c.logger.Error("invalid stream handshake", zap.ByteString("uid", f.UID))
			return
		}
		c.handshake(uid)
		return
	}

	channel, address := splitTopic(f.Topic)
	if _, ok := knownChannels[channel]; !ok {
		c.logger.Debug("dropping notification on unknown channel", zap.String("topic", f.Topic))
		return
	}
	n, err := decodeNotification(channel, address, f.Data)
	if err != nil {
		c.logger.Error("failed to decode notification", zap.String("topic", f.Topic), zap.Error(err))
		return
	}
	c.metrics.ObserveNotification(string(channel))
	c.emit(n)
}

func (c *Client) handshake(uid string) {
	c.mu.Lock()
	c.uid = uid
	if c.state != StateStopped {
		c.state = StateConnected
	}
	select {
	case <-c.connected:
	default:
		close(c.connected)
	}
	topics := slices.Sorted(maps.Keys(c.topics))
	addresses := maps.Clone(c.addresses)
	c.mu.Unlock()

	c.reconnect.Reset()
	c.metrics.SetConnected(true)
	c.logger.Info("stream connected", zap.String("uid", uid))

	for _, topic := range topics {
		if err := c.send(topic); err != nil {
			c.logger.Warn("failed to restore subscription", zap.String("topic", topic), zap.Error(err))
		}
	}
	for _, address := range slices.Sorted(maps.Keys(addresses)) {
		if err := c.subscribeAddressTopics(address, addresses[address]); err != nil {
			c.logger.Warn("failed to restore address subscription", zap.String("address", address), zap.Error(err))
		}
	}

	c.emit(ConnectionEvent{Event: EventConnected, UID: uid})
}
