/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package managedstore

import (
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/suparena/managedstore/document"
	"github.com/suparena/managedstore/errors"
)

// IDUndefined is the sentinel ID returned when registration fails or an
// object has not been registered yet.
const IDUndefined = -1

// AccessPolicy selects what container getters hand back: an independent
// deep copy of the stored object, or the live shared instance.
type AccessPolicy int

const (
	// AccessCopy makes getters return independent duplicates, so registry
	// mutation can never alias caller state.
	AccessCopy AccessPolicy = iota

	// AccessShare makes getters return the live owned instance; mutations
	// are visible to every holder.
	AccessShare
)

// Managed is the minimal capability set the container requires of its
// object type: handle and ID accessors plus deep cloning for copy access.
type Managed[T any] interface {
	Handle() string
	SetHandle(handle string)
	ID() int
	SetID(id int)
	Clone() T
}

// Option configures optional container behavior.
type Option func(*containerOptions)

type containerOptions struct {
	logger *zap.Logger
	codec  document.Codec
}

// WithLogger installs a structured logger for the container's diagnostics.
// Without it the container is silent.
func WithLogger(l *zap.Logger) Option {
	return func(o *containerOptions) {
		o.logger = l
	}
}

// WithCodec substitutes the document codec used by file-based containers.
// The default is document.JSONCodec.
func WithCodec(c document.Codec) Option {
	return func(o *containerOptions) {
		o.codec = c
	}
}

// Container is a generic handle-indexed registry of managed objects. It
// owns the canonical instance of each registered object, maps stable
// numeric IDs back to handles, and tracks the protected set of handles
// that the normal delete path refuses to remove.
//
// The container performs no locking; callers serialize access. The
// embedding application is expected to drive it from a single goroutine.
type Container[T Managed[T]] struct {
	objectType string
	access     AccessPolicy
	newDefault func(handle string) T

	objects    map[string]T
	handleByID map[int]string
	protected  map[string]struct{}
	nextID     int

	log *zap.Logger
}

// NewContainer creates a registry for objects described by objectType (used
// in diagnostics), with the given access policy and default-object
// constructor.
func NewContainer[T Managed[T]](objectType string, access AccessPolicy, newDefault func(handle string) T, opts ...Option) *Container[T] {
	var o containerOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	return &Container[T]{
		objectType: objectType,
		access:     access,
		newDefault: newDefault,
		objects:    make(map[string]T),
		handleByID: make(map[int]string),
		protected:  make(map[string]struct{}),
		log:        o.logger.With(zap.String("objectType", objectType)),
	}
}

// ObjectType returns the descriptive type name this container manages.
func (c *Container[T]) ObjectType() string { return c.objectType }

// Access returns the container's fixed access policy.
func (c *Container[T]) Access() AccessPolicy { return c.access }

// Logger exposes the container's logger for embedding layers.
func (c *Container[T]) Logger() *zap.Logger { return c.log }

// CreateDefault produces a default-constructed object named handle,
// optionally registering it. It never fails.
func (c *Container[T]) CreateDefault(handle string, register bool) T {
	obj := c.newDefault(handle)
	if register {
		c.Register(obj, true)
	}
	return obj
}

// Register adds obj to the registry under its handle. A fresh, monotonically
// increasing ID is assigned to new handles; IDs are never reused for the
// container's lifetime. If the handle is already taken and force is false,
// nothing is mutated and IDUndefined is returned with ErrAlreadyExists. With
// force, the existing entry's content is replaced and its ID is preserved.
func (c *Container[T]) Register(obj T, force bool) (int, error) {
	handle := obj.Handle()
	if handle == "" {
		c.log.Error("refusing to register object with empty handle")
		return IDUndefined, errors.NewValidationError("handle", "must not be empty")
	}
	if existing, ok := c.objects[handle]; ok {
		if !force {
			c.log.Error("handle already registered",
				zap.String("handle", handle))
			return IDUndefined, errors.NewAlreadyExistsError(c.objectType, handle)
		}
		id := existing.ID()
		obj.SetID(id)
		c.objects[handle] = obj
		c.log.Debug("re-registered object, ID preserved",
			zap.String("handle", handle), zap.Int("id", id))
		return id, nil
	}
	id := c.nextID
	c.nextID++
	obj.SetID(id)
	c.objects[handle] = obj
	c.handleByID[id] = handle
	c.log.Debug("registered object",
		zap.String("handle", handle), zap.Int("id", id))
	return id, nil
}

// GetByHandle returns the object registered under handle, per the access
// policy. An absent handle yields the zero value and false, not an error.
func (c *Container[T]) GetByHandle(handle string) (T, bool) {
	obj, ok := c.objects[handle]
	if !ok {
		var zero T
		c.log.Debug("no object with handle", zap.String("handle", handle))
		return zero, false
	}
	return c.applyAccess(obj), true
}

// GetByID returns the object registered under id, per the access policy.
func (c *Container[T]) GetByID(id int) (T, bool) {
	handle, ok := c.handleByID[id]
	if !ok {
		var zero T
		c.log.Debug("no object with ID", zap.Int("id", id))
		return zero, false
	}
	return c.applyAccess(c.objects[handle]), true
}

// Has reports whether handle is registered.
func (c *Container[T]) Has(handle string) bool {
	_, ok := c.objects[handle]
	return ok
}

// HasID reports whether id is registered.
func (c *Container[T]) HasID(id int) bool {
	_, ok := c.handleByID[id]
	return ok
}

// HandleByID returns the handle registered under id.
func (c *Container[T]) HandleByID(id int) (string, bool) {
	handle, ok := c.handleByID[id]
	return handle, ok
}

// Len returns the number of registered objects.
func (c *Container[T]) Len() int { return len(c.objects) }

// Handles returns all registered handles in ascending sorted order.
func (c *Container[T]) Handles() []string {
	out := make([]string, 0, len(c.objects))
	for h := range c.objects {
		out = append(out, h)
	}
	sort.Strings(out)
	return out
}

// HandlesBySubstring returns the sorted handles that contain substr
// (case-insensitive) when contains is true, or those that do not when
// contains is false. An empty substr matches every handle.
func (c *Container[T]) HandlesBySubstring(substr string, contains bool) []string {
	if substr == "" {
		if contains {
			return c.Handles()
		}
		return nil
	}
	lowered := strings.ToLower(substr)
	var out []string
	for h := range c.objects {
		if strings.Contains(strings.ToLower(h), lowered) == contains {
			out = append(out, h)
		}
	}
	sort.Strings(out)
	return out
}

// Remove deregisters the object under handle and returns it. Protected
// handles fail with ErrProtected and absent handles with ErrNotFound; in
// both cases the registry is unchanged.
func (c *Container[T]) Remove(handle string) (T, error) {
	var zero T
	if _, isProtected := c.protected[handle]; isProtected {
		c.log.Warn("refusing to remove protected object",
			zap.String("handle", handle))
		return zero, errors.NewProtectedError(c.objectType, handle)
	}
	obj, ok := c.objects[handle]
	if !ok {
		c.log.Warn("cannot remove unknown handle", zap.String("handle", handle))
		return zero, errors.NewNotFoundError(c.objectType, handle)
	}
	delete(c.objects, handle)
	delete(c.handleByID, obj.ID())
	c.log.Debug("removed object",
		zap.String("handle", handle), zap.Int("id", obj.ID()))
	return obj, nil
}

// RemoveAll removes every non-protected object and returns the removed
// objects in ascending handle order. Protected objects survive.
func (c *Container[T]) RemoveAll() []T {
	var removed []T
	for _, handle := range c.Handles() {
		if _, isProtected := c.protected[handle]; isProtected {
			continue
		}
		obj := c.objects[handle]
		delete(c.objects, handle)
		delete(c.handleByID, obj.ID())
		removed = append(removed, obj)
	}
	c.log.Debug("removed all non-protected objects", zap.Int("count", len(removed)))
	return removed
}

// SetProtected toggles membership of handle in the protected set. Protected
// handles cannot be removed through the normal delete path.
func (c *Container[T]) SetProtected(handle string, protected bool) error {
	if _, ok := c.objects[handle]; !ok {
		c.log.Warn("cannot change protection of unknown handle",
			zap.String("handle", handle))
		return errors.NewNotFoundError(c.objectType, handle)
	}
	if protected {
		c.protected[handle] = struct{}{}
	} else {
		delete(c.protected, handle)
	}
	return nil
}

// IsProtected reports whether handle is in the protected set.
func (c *Container[T]) IsProtected(handle string) bool {
	_, ok := c.protected[handle]
	return ok
}

// objectInternal returns the canonical stored instance, bypassing the
// access policy. Internal save/load paths use it so they operate on the
// registered object itself.
func (c *Container[T]) objectInternal(handle string) (T, bool) {
	obj, ok := c.objects[handle]
	return obj, ok
}

func (c *Container[T]) applyAccess(obj T) T {
	if c.access == AccessCopy {
		return obj.Clone()
	}
	return obj
}
