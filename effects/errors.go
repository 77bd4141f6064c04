package effects

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrUnhandledEffect is returned when no handler matches an effect and no default handler is set.
	ErrUnhandledEffect = errors.New("unhandled effect")

	// ErrEffectContractViolation marks a resumption value that failed a type guard.
	// It indicates a wiring bug between a computation and its handlers.
	ErrEffectContractViolation = errors.New("effect contract violation")

	// ErrUnexpectedEffectResult is wrapped by every *UnexpectedEffectResultError.
	ErrUnexpectedEffectResult = fmt.Errorf("%w: unexpected effect result", ErrEffectContractViolation)
	// ErrIncorrectHandlerReturn is wrapped by every *IncorrectHandlerReturnError.
	ErrIncorrectHandlerReturn = fmt.Errorf("%w: incorrect handler return", ErrEffectContractViolation)

	// ErrSuspensionConsumed is returned when a suspension is resumed twice or after Discard.
	ErrSuspensionConsumed = errors.New("suspension already resumed or discarded")
)

// UnhandledEffectError names the effect type that had no handler.
type UnhandledEffectError struct {
	EffectType string
}

func (e *UnhandledEffectError) Error() string {
	return fmt.Sprintf(
		"no effect handler for effect %s: provide a handler for that type or a default effect handler",
		e.EffectType,
	)
}

func (e *UnhandledEffectError) Unwrap() error { return ErrUnhandledEffect }

// UnexpectedEffectResultError is returned by Expect when the resumption value
// is not assignable to the expected type.
type UnexpectedEffectResultError struct {
	Expected string
	Actual   string
}

func (e *UnexpectedEffectResultError) Error() string {
	return fmt.Sprintf(
		"expected a result of %s, but received %s: make sure the effect is yielded and its handler is configured properly",
		e.Expected, e.Actual,
	)
}

func (e *UnexpectedEffectResultError) Unwrap() error { return ErrUnexpectedEffectResult }

// IncorrectHandlerReturnError is returned by Raise when the resumption value is
// absent or its type is not exactly the expected one.
type IncorrectHandlerReturnError struct {
	Expected string
	Actual   string
}

func (e *IncorrectHandlerReturnError) Error() string {
	return fmt.Sprintf("incorrect effect handler return value when %s was expected (got %s)", e.Expected, e.Actual)
}

func (e *IncorrectHandlerReturnError) Unwrap() error { return ErrIncorrectHandlerReturn }

// typeName returns the runtime type name of v, or "<nil>" for an absent value.
func typeName(v any) string {
	if v == nil {
		return "<nil>"
	}
	return reflect.TypeOf(v).String()
}

func typeNameOf[T any]() string {
	return reflect.TypeFor[T]().String()
}
