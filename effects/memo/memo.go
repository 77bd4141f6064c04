// Package memo provides handler middleware that memoizes idempotent effects.
//
// Only wrap handlers whose result depends on nothing but the effect value
// (lookups, pure computations, reference data). Write-only effects must never
// be memoized.
package memo

import (
	"context"
	"reflect"

	"github.com/on-the-ground/effect_drive_go/effects"
)

// Memoize wraps h so that repeated effects equal to an earlier one are answered
// from a bounded table instead of calling h again.
//
// Effects whose value is not comparable pass through uncached. Handler errors
// are never cached.
func Memoize(h effects.Handler, maxSize int) effects.Handler {
	t := newTable(maxSize)
	return func(ctx context.Context, eff effects.Effect) (any, error) {
		if !cacheable(eff) {
			return h(ctx, eff)
		}
		if v, ok := t.load(eff); ok {
			return v, nil
		}
		v, err := h(ctx, eff)
		if err != nil {
			return nil, err
		}
		t.store(eff, v)
		return v, nil
	}
}

// Wrap is the typed variant of Memoize, suitable for effects.On.
func Wrap[E any](fn func(context.Context, E) (any, error), maxSize int) func(context.Context, E) (any, error) {
	memoized := Memoize(func(ctx context.Context, eff effects.Effect) (any, error) {
		return fn(ctx, eff.(E))
	}, maxSize)
	return func(ctx context.Context, eff E) (any, error) {
		return memoized(ctx, eff)
	}
}

func cacheable(eff effects.Effect) bool {
	if eff == nil {
		return false
	}
	return reflect.ValueOf(eff).Comparable()
}
