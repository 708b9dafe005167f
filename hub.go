/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package managedstore

import (
	"github.com/suparena/managedstore/errors"
)

// Hub is a keyed collection of attribute managers (for example, "stages",
// "objects", "physics"). Its methods are not generic; they use the empty
// interface (any) to store and retrieve managers, and the caller must
// type-assert the returned value to the appropriate Manager type.
type Hub interface {
	// RegisterManager registers a manager under a given key.
	RegisterManager(key string, mgr any) error
	// GetManager retrieves the registered manager for a given key.
	GetManager(key string) (any, error)
	// Keys returns the registered keys in registration order.
	Keys() []string
}

// managerHub implements the Hub interface. Like the containers it holds,
// it performs no locking: access is caller-serialized.
type managerHub struct {
	keys     []string
	managers map[string]any
}

// NewHub creates and returns a new Hub implementation.
func NewHub() Hub {
	return &managerHub{
		managers: make(map[string]any),
	}
}

// RegisterManager stores the provided manager under the given key.
func (h *managerHub) RegisterManager(key string, mgr any) error {
	if _, exists := h.managers[key]; exists {
		return errors.NewAlreadyExistsError("manager", key)
	}
	h.managers[key] = mgr
	h.keys = append(h.keys, key)
	return nil
}

// GetManager retrieves the manager associated with the given key.
func (h *managerHub) GetManager(key string) (any, error) {
	mgr, exists := h.managers[key]
	if !exists {
		return nil, errors.NewNotFoundError("manager", key)
	}
	return mgr, nil
}

// Keys returns the registered keys in registration order.
func (h *managerHub) Keys() []string {
	out := make([]string, len(h.keys))
	copy(out, h.keys)
	return out
}
