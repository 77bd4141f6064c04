// Package binding provides a key-based lookup effect over nested binding scopes.
//
// Bindings are the configuration surface of a computation: instead of reading
// globals, a computation yields a Lookup and the driver answers it from the
// Scope it was configured with.
package binding

import (
	"context"
	"errors"
	"fmt"

	"github.com/on-the-ground/effect_drive_go/effects"
	"github.com/on-the-ground/effect_drive_go/result"
)

// ErrKeyNotFound reports a key bound in no scope of the chain.
var ErrKeyNotFound = errors.New("key not found")

// Lookup is the binding effect.
// It is resumed with a result.Result[any, error]: Ok with the bound value, or
// Err wrapping ErrKeyNotFound.
type Lookup struct {
	Key string
}

// Scope holds bindings and an optional upper scope.
// A Scope is read-only once handed to a handler.
type Scope struct {
	bindings map[string]any
	parent   *Scope
}

// NewScope creates a root scope with the given bindings.
func NewScope(bindings map[string]any) *Scope {
	return &Scope{bindings: normalizeBindingMap(bindings)}
}

// Child creates a scope whose missing keys are delegated to s.
func (s *Scope) Child(bindings map[string]any) *Scope {
	return &Scope{bindings: normalizeBindingMap(bindings), parent: s}
}

// Resolve looks up key in s, then in its upper scopes.
func (s *Scope) Resolve(key string) (any, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if v, ok := cur.bindings[key]; ok {
			return v, true
		}
	}
	return nil, false
}

// Handler returns the Lookup handler answering from scope.
func Handler(scope *Scope) func(context.Context, Lookup) (any, error) {
	return func(_ context.Context, l Lookup) (any, error) {
		v, ok := scope.Resolve(l.Key)
		if !ok {
			return result.Err[any](fmt.Errorf("%w: %s", ErrKeyNotFound, l.Key)), nil
		}
		return result.Ok[any, error](v), nil
	}
}

// Register installs the Lookup handler for scope in hm.
func Register(hm effects.HandlerMap, scope *Scope) effects.HandlerMap {
	return effects.On(hm, Handler(scope))
}

// normalizeBindingMap is an internal helper for normalizing binding map.
func normalizeBindingMap(bm map[string]any) map[string]any {
	if bm == nil {
		bm = make(map[string]any)
	}
	return bm
}
