// Package state provides key/value state effects over a pluggable Repo.
//
// Computations read and write state by yielding Load, Store, Delete and
// CompareAndSwap effects; the Repo registered with the driver decides where the
// state lives (a map, a go-memdb database, or a ristretto tier in front of either).
package state

import (
	"context"

	"github.com/on-the-ground/effect_drive_go/effects"
)

// Register installs handlers for every state effect, backed by repo.
func Register(hm effects.HandlerMap, repo Repo) effects.HandlerMap {
	effects.On(hm, func(_ context.Context, l Load) (any, error) {
		v, ok, err := repo.Load(l.Key)
		if err != nil {
			return nil, err
		}
		return Loaded{Value: v, Found: ok}, nil
	})
	effects.OnWriteOnly(hm, func(_ context.Context, s Store) error {
		return repo.Store(s.Key, s.Value)
	})
	effects.OnWriteOnly(hm, func(_ context.Context, d Delete) error {
		return repo.Delete(d.Key)
	})
	effects.On(hm, func(_ context.Context, c CompareAndSwap) (any, error) {
		swapped, err := repo.CompareAndSwap(c.Key, c.Old, c.New)
		if err != nil {
			return nil, err
		}
		return swapped, nil
	})
	return hm
}

// Get yields a Load for key and asserts a found value to T.
// found is false when the key is absent.
func Get[T any](yield effects.Yield, key string) (val T, found bool, err error) {
	loaded, err := effects.Raise[Loaded](yield(Load{Key: key}))
	if err != nil || !loaded.Found {
		return val, false, err
	}
	val, err = effects.Expect[T](loaded.Value)
	return val, err == nil, err
}

// Set yields a Store for key.
func Set(yield effects.Yield, key string, value any) {
	effects.RaiseVoid(yield(Store{Key: key, Value: value}))
}

// Remove yields a Delete for key.
func Remove(yield effects.Yield, key string) {
	effects.RaiseVoid(yield(Delete{Key: key}))
}

// Swap yields a CompareAndSwap for key and reports whether it happened.
func Swap(yield effects.Yield, key string, old, new any) (bool, error) {
	return effects.Raise[bool](yield(CompareAndSwap{Key: key, Old: old, New: new}))
}
