// Package kvstore is the persistent string-to-string store every tracker and
// the day-transition coordinator share. Operations on distinct keys are
// independent; nothing here spans keys atomically.
package kvstore

import (
	"context"
)

// Store reads and writes single keys. Get reports ok=false for absent keys.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

type namespaced struct {
	prefix string
	inner  Store
}

// WithPrefix prepends prefix to every key passed to inner.
func WithPrefix(inner Store, prefix string) Store {
	return namespaced{prefix: prefix, inner: inner}
}

func (n namespaced) Get(ctx context.Context, key string) (string, bool, error) {
	return n.inner.Get(ctx, n.prefix+key)
}

func (n namespaced) Set(ctx context.Context, key, value string) error {
	return n.inner.Set(ctx, n.prefix+key, value)
}

func (n namespaced) Delete(ctx context.Context, key string) error {
	return n.inner.Delete(ctx, n.prefix+key)
}
