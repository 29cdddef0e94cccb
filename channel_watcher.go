package panel

import (
	"bytes"
	"context"
)

// ChannelWatcher feeds documents a host already receives, from a push
// endpoint or a message consumer, into Follow.
type ChannelWatcher struct {
	ch   <-chan []byte
	sync bool
}

// NewChannelWatcher creates a ChannelWatcher that copies each document
// before forwarding it, so senders may reuse their buffers. Documents that
// arrive while the consumer is busy replace each other; only the newest is
// delivered.
func NewChannelWatcher(ch <-chan []byte) *ChannelWatcher {
	return &ChannelWatcher{ch: ch}
}

// NewSyncChannelWatcher creates a ChannelWatcher that hands out ch itself.
// Every document is delivered, uncopied, in order.
func NewSyncChannelWatcher(ch <-chan []byte) *ChannelWatcher {
	return &ChannelWatcher{ch: ch, sync: true}
}

// Watch returns the document channel. It closes after the source closes
// and the last pending document has been taken, or when ctx is done.
func (w *ChannelWatcher) Watch(ctx context.Context) (<-chan []byte, error) {
	if w.sync {
		return w.ch, nil
	}

	out := make(chan []byte)
	go func() {
		defer close(out)

		in := w.ch
		var pending []byte
		for in != nil || pending != nil {
			var send chan<- []byte
			if pending != nil {
				send = out
			}

			select {
			case <-ctx.Done():
				return
			case raw, ok := <-in:
				if !ok {
					in = nil
					continue
				}
				pending = bytes.Clone(raw)
				if pending == nil {
					pending = []byte{}
				}
			case send <- pending:
				pending = nil
			}
		}
	}()
	return out, nil
}
