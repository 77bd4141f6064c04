// Package result provides a two-variant sum type for success and failure values.
//
// A Result is either Ok(value) or Err(error). Exactly one variant is populated.
// It carries expected business failures as data so they can short-circuit a
// chain of effectful steps without being confused with fatal wiring errors.
package result

import "fmt"

// Result holds either an Ok value of type T or an Err value of type E.
type Result[T, E any] struct {
	isErr bool
	value T
	err   E
}

// Ok creates a successful Result.
func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{value: v}
}

// Err creates a failed Result.
func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{isErr: true, err: e}
}

// IsOk reports whether r is Ok.
func (r Result[T, E]) IsOk() bool {
	return !r.isErr
}

// IsErr reports whether r is Err.
func (r Result[T, E]) IsErr() bool {
	return r.isErr
}

// Get returns the Ok value and true, or zero and false.
func (r Result[T, E]) Get() (T, bool) {
	if r.isErr {
		var zero T
		return zero, false
	}
	return r.value, true
}

// GetErr returns the Err value and true, or zero and false.
func (r Result[T, E]) GetErr() (E, bool) {
	if !r.isErr {
		var zero E
		return zero, false
	}
	return r.err, true
}

// Unwrap returns the Ok value.
// It panics when called on Err.
func (r Result[T, E]) Unwrap() T {
	if r.isErr {
		panic(fmt.Sprintf("result: Unwrap called on Err(%v)", r.err))
	}
	return r.value
}

// UnwrapErr returns the Err value.
// It panics when called on Ok.
func (r Result[T, E]) UnwrapErr() E {
	if !r.isErr {
		panic(fmt.Sprintf("result: UnwrapErr called on Ok(%v)", r.value))
	}
	return r.err
}

// UnwrapOr returns the Ok value, or fallback when r is Err.
func (r Result[T, E]) UnwrapOr(fallback T) T {
	if r.isErr {
		return fallback
	}
	return r.value
}

func (r Result[T, E]) String() string {
	if r.isErr {
		return fmt.Sprintf("Err(%v)", r.err)
	}
	return fmt.Sprintf("Ok(%v)", r.value)
}

// Map applies f to the Ok value.
func Map[T, U, E any](r Result[T, E], f func(T) U) Result[U, E] {
	if r.isErr {
		return Err[U](r.err)
	}
	return Ok[U, E](f(r.value))
}

// FlatMap sequences two fallible operations.
func FlatMap[T, U, E any](r Result[T, E], f func(T) Result[U, E]) Result[U, E] {
	if r.isErr {
		return Err[U](r.err)
	}
	return f(r.value)
}

// Match calls onOk or onErr depending on the variant.
func Match[T, E, U any](r Result[T, E], onOk func(T) U, onErr func(E) U) U {
	if r.isErr {
		return onErr(r.err)
	}
	return onOk(r.value)
}
