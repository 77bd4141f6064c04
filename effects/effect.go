package effects

import (
	"iter"
)

// Effect is any value a computation yields at a suspension point.
// Its concrete runtime type is the dispatch key.
type Effect any

// Yield suspends the running computation on an effect and returns the value
// the driver resumes it with.
type Yield func(eff Effect) any

// Computation is a suspendable computation that yields effects and ends in a
// final value of type R.
//
// The error return is reserved for fatal conditions such as failed type guards.
// Expected business failures should be returned as part of R.
type Computation[R any] func(yield Yield) (R, error)

// Return creates a computation that yields nothing and returns v.
func Return[R any](v R) Computation[R] {
	return func(Yield) (R, error) {
		return v, nil
	}
}

// abandoned unwinds a computation whose suspension was discarded.
type abandoned struct{}

// coroutine runs a single instance of a Computation on top of iter.Pull.
// It is not safe for concurrent use.
type coroutine[R any] struct {
	next   func() (Effect, bool)
	stop   func()
	resume any
	ret    R
	err    error
}

// Start runs c until it either completes or suspends on its first effect.
// Returns (value, nil, err) if the computation completed, or (zero, suspension, nil) if pending.
//
// A pending suspension must eventually be resumed to completion or discarded,
// otherwise the computation stays parked.
//
// Example:
//
//	ret, susp, err := Start(computation)
//	for susp != nil {
//	    v := handle(susp.Effect())
//	    ret, susp, err = susp.Resume(v)
//	}
func Start[R any](c Computation[R]) (R, *Suspension[R], error) {
	co := &coroutine[R]{}
	co.next, co.stop = iter.Pull(func(emit func(Effect) bool) {
		defer func() {
			if r := recover(); r != nil {
				if _, ok := r.(abandoned); ok {
					return
				}
				panic(r)
			}
		}()
		co.ret, co.err = c(func(eff Effect) any {
			if !emit(eff) {
				panic(abandoned{})
			}
			v := co.resume
			co.resume = nil
			return v
		})
	})
	return co.advance()
}

func (co *coroutine[R]) advance() (R, *Suspension[R], error) {
	eff, ok := co.next()
	if !ok {
		co.stop()
		return co.ret, nil, co.err
	}
	var zero R
	return zero, &Suspension[R]{co: co, eff: eff}, nil
}

// Suspension represents a computation suspended on an effect.
// It holds the pending effect and a one-shot resumption handle.
type Suspension[R any] struct {
	co   *coroutine[R]
	eff  Effect
	used bool
}

// Effect returns the effect that caused the suspension.
func (s *Suspension[R]) Effect() Effect { return s.eff }

// Resume advances the computation with v.
// Returns either a completed value (with nil suspension) or the next suspension.
// Returns ErrSuspensionConsumed if the suspension was already resumed or discarded.
func (s *Suspension[R]) Resume(v any) (R, *Suspension[R], error) {
	if s.used {
		var zero R
		return zero, nil, ErrSuspensionConsumed
	}
	s.used = true
	s.co.resume = v
	return s.co.advance()
}

// Discard abandons the suspended computation.
// Deferred calls inside the computation run before Discard returns.
func (s *Suspension[R]) Discard() {
	if s.used {
		return
	}
	s.used = true
	s.co.stop()
}
