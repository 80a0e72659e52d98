package collection

import (
	"context"
	"sync"

	hberrors "github.com/resourcehub/hubctl/internal/errors"
)

// OpKind identifies a mutation operation.
type OpKind string

const (
	OpCreate OpKind = "create"
	OpUpdate OpKind = "update"
	OpDelete OpKind = "delete"
)

// PendingMutation describes an in-flight mutation.
type PendingMutation struct {
	Key  string
	Kind OpKind
}

// Remote is the slice of the backend client the coordinator drives. Each
// accepted mutation issues exactly one request.
type Remote[T Record] interface {
	Create(ctx context.Context, rec T) (T, error)
	Update(ctx context.Context, id string, rec T) (T, error)
	Delete(ctx context.Context, id string) error
}

// Coordinator serializes mutations per uniqueness key and reconciles the
// cache with server-confirmed state afterward. Per key the state machine is
// Idle -> Pending -> Idle; a second Pending cannot be entered for the same
// key until Idle is reached. On failure the cache is left untouched.
type Coordinator[T Record] struct {
	remote   Remote[T]
	cache    *Cache[T]
	keyFunc  func(T) string
	validate func(rec T, existing []T) error

	mu      sync.Mutex
	pending map[string]OpKind
}

// CoordinatorOption configures a Coordinator.
type CoordinatorOption[T Record] func(*Coordinator[T])

// WithKeyFunc sets the uniqueness key used by the duplicate-submission guard.
// The default is the record id; resources with a natural composite key (such
// as assignment profile+team pairs) supply their own.
func WithKeyFunc[T Record](fn func(T) string) CoordinatorOption[T] {
	return func(c *Coordinator[T]) { c.keyFunc = fn }
}

// WithValidator sets the pure pre-submission check run before contacting the
// server. It receives the candidate record and the current cached collection,
// which lets it reject duplicate relationships locally.
func WithValidator[T Record](fn func(rec T, existing []T) error) CoordinatorOption[T] {
	return func(c *Coordinator[T]) { c.validate = fn }
}

// NewCoordinator creates a mutation coordinator over the given remote and cache.
func NewCoordinator[T Record](remote Remote[T], cache *Cache[T], opts ...CoordinatorOption[T]) *Coordinator[T] {
	c := &Coordinator[T]{
		remote:  remote,
		cache:   cache,
		keyFunc: func(rec T) string { return rec.RecordID() },
		pending: make(map[string]OpKind),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Pending returns the in-flight mutations, empty when idle.
func (c *Coordinator[T]) Pending() []PendingMutation {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]PendingMutation, 0, len(c.pending))
	for key, kind := range c.pending {
		out = append(out, PendingMutation{Key: key, Kind: kind})
	}
	return out
}

// PendingFor reports the in-flight operation for a key, if any.
func (c *Coordinator[T]) PendingFor(key string) (OpKind, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	kind, ok := c.pending[key]
	return kind, ok
}

func (c *Coordinator[T]) acquire(key string, kind OpKind) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.pending[key]; ok {
		return &hberrors.DuplicateOperationError{Key: key, Kind: string(existing)}
	}
	c.pending[key] = kind
	return nil
}

func (c *Coordinator[T]) release(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.pending, key)
}

// Create validates the record, issues a single create request, and appends
// the server's returned record to the cache on success.
func (c *Coordinator[T]) Create(ctx context.Context, rec T) (T, error) {
	var zero T
	if c.validate != nil {
		if err := c.validate(rec, c.cache.Items()); err != nil {
			return zero, err
		}
	}
	key := c.keyFunc(rec)
	if err := c.acquire(key, OpCreate); err != nil {
		return zero, err
	}
	defer c.release(key)

	created, err := c.remote.Create(ctx, rec)
	if err != nil {
		return zero, err
	}
	c.cache.Append(created)
	return created, nil
}

// Update validates the record, issues a single update request, and replaces
// the cached entry in place on success, preserving list order.
func (c *Coordinator[T]) Update(ctx context.Context, id string, rec T) (T, error) {
	var zero T
	if c.validate != nil {
		if err := c.validate(rec, c.cache.Items()); err != nil {
			return zero, err
		}
	}
	if err := c.acquire(id, OpUpdate); err != nil {
		return zero, err
	}
	defer c.release(id)

	updated, err := c.remote.Update(ctx, id, rec)
	if err != nil {
		return zero, err
	}
	c.cache.Replace(id, updated)
	return updated, nil
}

// Delete issues a single delete request and removes the cached entry on
// success. The record is never removed optimistically before confirmation.
func (c *Coordinator[T]) Delete(ctx context.Context, id string) error {
	if err := c.acquire(id, OpDelete); err != nil {
		return err
	}
	defer c.release(id)

	if err := c.remote.Delete(ctx, id); err != nil {
		return err
	}
	c.cache.Remove(id)
	return nil
}
