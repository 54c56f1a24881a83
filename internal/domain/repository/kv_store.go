// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"github.com/pkg/errors"
)

// ErrStoreClosed is returned by every operation on a closed store handle.
var ErrStoreClosed = errors.New("kv store closed")

// Persisted key names. They must stay stable across restarts.
const (
	KeyToken = "token"
	KeyUser  = "user"
	KeyRole  = "role"

	cartKeyPrefix = "cart:"
)

// SessionKeys lists every key owned by the session manager.
func SessionKeys() []string {
	return []string{KeyToken, KeyUser, KeyRole}
}

// CartKey returns the key under which the cart of owner is persisted.
func CartKey(owner string) string {
	return cartKeyPrefix + owner
}

// Change describes a write or delete observed on a shared store.
type Change struct {
	Key     string
	Value   string
	Deleted bool
}

// ChangeHandler receives changes made through other handles on the same store.
type ChangeHandler func(Change)

// KVStore is one handle on a string key-value store shared by several handles,
// the way one browser tab sees the origin's local storage.
type KVStore interface {
	// Get returns the value stored under key and whether it exists.
	Get(ctx context.Context, key string) (value string, found bool, err error)

	// Set stores value under key.
	Set(ctx context.Context, key, value string) error

	// Delete removes keys; missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error

	// Watch registers fn for changes performed through other handles.
	// Changes made through this handle are never delivered to it.
	Watch(fn ChangeHandler) (unsubscribe func(), err error)

	// Close releases the handle and stops its watchers.
	Close() error
}
