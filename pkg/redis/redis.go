// Package redis provides a panel.Source and panel.Watcher for schema
// documents stored under a Redis key.
package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// ErrNotFound is returned by Source.Fetch when the key does not exist.
var ErrNotFound = errors.New("schema key not found")

// Source reads a schema document from a Redis key once.
type Source struct {
	client *redis.Client
	key    string
}

// NewSource creates a Source for key.
func NewSource(client *redis.Client, key string) *Source {
	return &Source{client: client, key: key}
}

// Fetch returns the value stored under the key.
func (s *Source) Fetch(ctx context.Context) ([]byte, error) {
	val, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, s.key)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.key, err)
	}
	return val, nil
}

// String identifies the source in signals.
func (s *Source) String() string {
	return "redis:" + s.key
}

// Watcher watches a Redis key for changes using keyspace notifications.
// Requires Redis to have keyspace notifications enabled:
//
//	CONFIG SET notify-keyspace-events KEA
type Watcher struct {
	client *redis.Client
	key    string
	db     int
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDB sets the database number used in the keyspace channel. Default: 0.
func WithDB(db int) Option {
	return func(w *Watcher) {
		w.db = db
	}
}

// NewWatcher creates a Watcher for key.
func NewWatcher(client *redis.Client, key string, opts ...Option) *Watcher {
	w := &Watcher{client: client, key: key}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Channel returns the keyspace notification channel for the key.
func (w *Watcher) Channel() string {
	return fmt.Sprintf("__keyspace@%d__:%s", w.db, w.key)
}

// Watch emits the current value, if any, then the new value after every
// write to the key.
func (w *Watcher) Watch(ctx context.Context) (<-chan []byte, error) {
	pubsub := w.client.Subscribe(ctx, w.Channel())

	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe to keyspace notifications: %w", err)
	}

	out := make(chan []byte)

	go func() {
		defer close(out)
		defer func() {
			_ = pubsub.Close()
		}()

		val, err := w.client.Get(ctx, w.key).Bytes()
		if err != nil && !errors.Is(err, redis.Nil) {
			return
		}
		if err == nil {
			select {
			case out <- val:
			case <-ctx.Done():
				return
			}
		}

		ch := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				if !isWrite(msg.Payload) {
					continue
				}
				val, err := w.client.Get(ctx, w.key).Bytes()
				if err != nil {
					continue
				}
				select {
				case out <- val:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}

func isWrite(op string) bool {
	switch op {
	case "set", "setex", "psetex", "setnx", "mset", "append", "setrange":
		return true
	}
	return false
}
