package effects

import "reflect"

// Match selects how a type guard compares a resumption value with the expected type.
type Match int

const (
	// MatchAssignable accepts the expected type itself or any type assignable to it,
	// e.g. a concrete result returned where an interface result is expected.
	MatchAssignable Match = iota

	// MatchExact accepts only values whose runtime type is exactly the expected type.
	MatchExact
)

// Guard asserts that a resumption value v satisfies the expected type T under m.
//
// MatchAssignable failures return *UnexpectedEffectResultError and MatchExact
// failures return *IncorrectHandlerReturnError. An absent value never matches.
func Guard[T any](m Match, v any) (T, error) {
	var zero T
	switch m {
	case MatchExact:
		if v == nil || reflect.TypeOf(v) != reflect.TypeFor[T]() {
			return zero, &IncorrectHandlerReturnError{Expected: typeNameOf[T](), Actual: typeName(v)}
		}
		return v.(T), nil
	default:
		val, ok := v.(T)
		if !ok {
			return zero, &UnexpectedEffectResultError{Expected: typeNameOf[T](), Actual: typeName(v)}
		}
		return val, nil
	}
}

// Expect asserts that v is assignable to T.
// Use it on the value returned by Yield when the handler may return any
// implementation of an abstract result type.
func Expect[T any](v any) (T, error) {
	return Guard[T](MatchAssignable, v)
}

// MustExpect is the panic-on-failure variant of Expect.
// Use when failure should be fatal (e.g., when the handler is guaranteed to exist).
func MustExpect[T any](v any) T {
	res, err := Expect[T](v)
	if err != nil {
		panic(err)
	}
	return res
}

// Perform yields eff and asserts the resumption value with Expect.
func Perform[T any](yield Yield, eff Effect) (T, error) {
	return Expect[T](yield(eff))
}
