package effects

import (
	"context"
	"fmt"
	"reflect"
)

// Handler performs an effect and returns the value the computation is resumed with.
// A non-nil error is fatal and aborts the drive.
type Handler func(ctx context.Context, eff Effect) (any, error)

// Interceptor wraps the handler selected for an effect.
// Interceptors see every dispatched effect, including those served by the default handler.
type Interceptor func(next Handler) Handler

// HandlerMap maps effect types to their handlers.
// It is owned by the caller of Drive and must not be modified during a drive.
type HandlerMap map[reflect.Type]Handler

// NewHandlerMap creates an empty handler map.
func NewHandlerMap() HandlerMap {
	return make(HandlerMap)
}

// On registers fn as the handler for effects of concrete type E.
// A previous handler for E is replaced. Returns hm for chaining.
//
// E must be a concrete type: dispatch uses the runtime type of the yielded value,
// which is never an interface type. On panics otherwise.
//
// Usage:
//
//	effects.On(hm, func(ctx context.Context, a Add) (any, error) {
//	    return a.X + a.Y, nil
//	})
func On[E any](hm HandlerMap, fn func(context.Context, E) (any, error)) HandlerMap {
	t := reflect.TypeFor[E]()
	if t.Kind() == reflect.Interface {
		panic(fmt.Sprintf("effects: cannot register a handler for interface type %s", t))
	}
	hm[t] = func(ctx context.Context, eff Effect) (any, error) {
		return fn(ctx, eff.(E))
	}
	return hm
}

// OnWriteOnly registers fn as the handler for a write-only effect of type E.
// The computation is resumed with nil.
func OnWriteOnly[E any](hm HandlerMap, fn func(context.Context, E) error) HandlerMap {
	return On(hm, func(ctx context.Context, eff E) (any, error) {
		return nil, fn(ctx, eff)
	})
}

// lookup returns the handler registered for the runtime type of eff.
func (hm HandlerMap) lookup(eff Effect) (Handler, bool) {
	h, ok := hm[reflect.TypeOf(eff)]
	return h, ok && h != nil
}

// resolve selects the handler for eff: the map entry, else the default handler.
func resolve(hm HandlerMap, defaultHandler Handler, eff Effect) (Handler, error) {
	if h, ok := hm.lookup(eff); ok {
		return h, nil
	}
	if defaultHandler != nil {
		return defaultHandler, nil
	}
	return nil, &UnhandledEffectError{EffectType: typeName(eff)}
}
