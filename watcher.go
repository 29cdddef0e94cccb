package panel

import "context"

// Watcher observes a source for changes and emits raw documents on a
// channel. Implementations must emit the current document immediately upon
// Watch() being called.
type Watcher interface {
	// Watch begins observing the source and returns a channel that emits
	// raw documents when changes occur. The channel is closed when the
	// context is canceled or an unrecoverable error occurs.
	Watch(ctx context.Context) (<-chan []byte, error)
}
