package stream

import (
	"fmt"
	"slices"

	"go.uber.org/zap"
)

// CallbackID identifies a registered callback for RemoveCallback.
type CallbackID uint64

type callback struct {
	id CallbackID
	fn func(Notification)
}

// AddCallback registers fn for every notification on channel.
func (c *Client) AddCallback(channel Channel, fn func(Notification)) CallbackID {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextID++
	c.callbacks[channel] = append(c.callbacks[channel], callback{id: c.nextID, fn: fn})
	return c.nextID
}

// RemoveCallback unregisters id. It reports whether the callback was registered.
func (c *Client) RemoveCallback(id CallbackID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for channel, cbs := range c.callbacks {
		i := slices.IndexFunc(cbs, func(cb callback) bool { return cb.id == id })
		if i < 0 {
			continue
		}
		c.callbacks[channel] = slices.Delete(slices.Clone(cbs), i, i+1)
		return true
	}
	return false
}

func (c *Client) OnConfirmed(fn func(TransactionNotification)) CallbackID {
	return addTyped(c, ChannelConfirmedAdded, fn)
}

func (c *Client) OnUnconfirmed(fn func(TransactionNotification)) CallbackID {
	return addTyped(c, ChannelUnconfirmedAdded, fn)
}

func (c *Client) OnPartial(fn func(TransactionNotification)) CallbackID {
	return addTyped(c, ChannelPartialAdded, fn)
}

func (c *Client) OnUnconfirmedRemoved(fn func(RemovalNotification)) CallbackID {
	return addTyped(c, ChannelUnconfirmedRemoved, fn)
}

func (c *Client) OnPartialRemoved(fn func(RemovalNotification)) CallbackID {
	return addTyped(c, ChannelPartialRemoved, fn)
}

func (c *Client) OnBlock(fn func(BlockNotification)) CallbackID {
	return addTyped(c, ChannelBlock, fn)
}

func (c *Client) OnFinalizedBlock(fn func(BlockNotification)) CallbackID {
	return addTyped(c, ChannelFinalizedBlock, fn)
}

func (c *Client) OnCosignature(fn func(CosignatureNotification)) CallbackID {
	return addTyped(c, ChannelCosignature, fn)
}

func (c *Client) OnStatus(fn func(StatusNotification)) CallbackID {
	return addTyped(c, ChannelStatus, fn)
}

func (c *Client) OnMultisig(fn func(MultisigNotification)) CallbackID {
	return addTyped(c, ChannelModifyMultisigAccount, fn)
}

func (c *Client) OnConnected(fn func(uid string)) CallbackID {
	return addTyped(c, EventConnected, func(e ConnectionEvent) { fn(e.UID) })
}

func (c *Client) OnDisconnected(fn func()) CallbackID {
	return addTyped(c, EventDisconnected, func(ConnectionEvent) { fn() })
}

func (c *Client) OnError(fn func(error)) CallbackID {
	return addTyped(c, EventError, func(e ConnectionEvent) { fn(e.Err) })
}

func addTyped[T Notification](c *Client, channel Channel, fn func(T)) CallbackID {
	return c.AddCallback(channel, func(n Notification) {
		if typed, ok := n.(T); ok {
			fn(typed)
		}
	})
}

func (c *Client) emit(n Notification) {
	c.mu.Lock()
	cbs := c.callbacks[n.Channel()]
	c.mu.Unlock()

	for _, cb := range cbs {
		c.invoke(cb, n)
	}
}

// invoke isolates callbacks from each other and from the receive loop.
func (c *Client) invoke(cb callback, n Notification) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("stream callback panicked",
				zap.String("channel", string(n.Channel())),
				zap.Uint64("callback", uint64(cb.id)),
				zap.Error(fmt.Errorf("%v", r)),
			)
		}
	}()
	cb.fn(n)
}
