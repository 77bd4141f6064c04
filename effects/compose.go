package effects

import (
	"github.com/on-the-ground/effect_drive_go/result"
)

// Step is one link of a MapResults chain.
// It receives the unwrapped Ok value of the previous step and returns the
// computation producing its own Result.
type Step[T, E any] func(prev T) Computation[result.Result[T, E]]

// MapResults builds a computation that runs steps in order, starting from the
// zero value of T.
//
// Each step receives the previous step's Ok value. Effects yielded by a step's
// computation are forwarded to the driver unchanged and fully handled before the
// next step starts. The first Err stops the chain and becomes the final value;
// the remaining steps are never invoked. If every step succeeds the final value
// is the last step's Ok result.
func MapResults[T, E any](steps ...Step[T, E]) Computation[result.Result[T, E]] {
	var initial T
	return MapResultsFrom(initial, steps...)
}

// MapResultsFrom is MapResults with an explicit initial value.
func MapResultsFrom[T, E any](initial T, steps ...Step[T, E]) Computation[result.Result[T, E]] {
	return func(yield Yield) (result.Result[T, E], error) {
		res := result.Ok[T, E](initial)
		for _, step := range steps {
			next, err := step(res.Unwrap())(yield)
			if err != nil {
				return next, err
			}
			res = next
			if res.IsErr() {
				return res, nil
			}
		}
		return res, nil
	}
}

// Lift turns a function returning a Result directly into a Step without effects.
func Lift[T, E any](f func(T) result.Result[T, E]) Step[T, E] {
	return func(prev T) Computation[result.Result[T, E]] {
		return Return(f(prev))
	}
}

// LiftValue turns a function returning a bare value into a Step.
// The value is wrapped as Ok.
func LiftValue[T, E any](f func(T) T) Step[T, E] {
	return func(prev T) Computation[result.Result[T, E]] {
		return Return(result.Ok[T, E](f(prev)))
	}
}

// PerformStep builds a Step that yields the effect produced by build and uses
// the resumption value as the step's outcome, normalized with NormalizeResult.
func PerformStep[T, E any](build func(prev T) Effect) Step[T, E] {
	return func(prev T) Computation[result.Result[T, E]] {
		return func(yield Yield) (result.Result[T, E], error) {
			return NormalizeResult[T, E](yield(build(prev)))
		}
	}
}

// NormalizeResult converts a resumption value into a Result.
// A Result[T, E] is kept as is and a bare T is wrapped as Ok. Anything else is
// an *UnexpectedEffectResultError.
func NormalizeResult[T, E any](v any) (result.Result[T, E], error) {
	switch r := v.(type) {
	case result.Result[T, E]:
		return r, nil
	case T:
		return result.Ok[T, E](r), nil
	}
	return result.Result[T, E]{}, &UnexpectedEffectResultError{
		Expected: typeNameOf[result.Result[T, E]](),
		Actual:   typeName(v),
	}
}
