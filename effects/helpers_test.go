package effects_test

import (
	"errors"
	"testing"

	"github.com/on-the-ground/effect_drive_go/effects"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Shape interface {
	Area() int
}

type Square struct {
	Side int
}

func (s Square) Area() int { return s.Side * s.Side }

func TestExpect_AcceptsExactAndAssignableTypes(t *testing.T) {
	sq, err := effects.Expect[Square](Square{Side: 2})
	require.NoError(t, err)
	assert.Equal(t, Square{Side: 2}, sq)

	shape, err := effects.Expect[Shape](Square{Side: 3})
	require.NoError(t, err)
	assert.Equal(t, 9, shape.Area())
}

func TestExpect_RejectsUnrelatedTypes(t *testing.T) {
	_, err := effects.Expect[Shape](Sum{Value: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, effects.ErrUnexpectedEffectResult)
	assert.ErrorIs(t, err, effects.ErrEffectContractViolation)

	var unexpected *effects.UnexpectedEffectResultError
	require.True(t, errors.As(err, &unexpected))
	assert.Equal(t, "effects_test.Shape", unexpected.Expected)
	assert.Equal(t, "effects_test.Sum", unexpected.Actual)
	assert.Contains(t, err.Error(), "make sure the effect is yielded and its handler is configured properly")
}

func TestExpect_RejectsAbsentValue(t *testing.T) {
	_, err := effects.Expect[Sum](nil)
	assert.ErrorIs(t, err, effects.ErrUnexpectedEffectResult)
	assert.Contains(t, err.Error(), "<nil>")
}

func TestMustExpect_Panics(t *testing.T) {
	assert.Equal(t, 3, effects.MustExpect[int](3))
	assert.Panics(t, func() { effects.MustExpect[int]("3") })
}

func TestRaise_RequiresExactType(t *testing.T) {
	sq, err := effects.Raise[Square](Square{Side: 1})
	require.NoError(t, err)
	assert.Equal(t, Square{Side: 1}, sq)

	ptr, err := effects.Raise[*Square](&Square{Side: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, ptr.Side)

	_, err = effects.Raise[Shape](Square{Side: 1})
	assert.ErrorIs(t, err, effects.ErrIncorrectHandlerReturn)

	_, err = effects.Raise[Square](&Square{Side: 1})
	assert.ErrorIs(t, err, effects.ErrIncorrectHandlerReturn)
}

func TestRaise_RejectsAbsentValue(t *testing.T) {
	_, err := effects.Raise[Sum](nil)
	require.Error(t, err)

	var incorrect *effects.IncorrectHandlerReturnError
	require.True(t, errors.As(err, &incorrect))
	assert.Equal(t, "effects_test.Sum", incorrect.Expected)
	assert.Equal(t, "<nil>", incorrect.Actual)
	assert.Contains(t, err.Error(), "incorrect effect handler return value when effects_test.Sum was expected")
}

func TestRaiseVoid_AcceptsAbsentValue(t *testing.T) {
	assert.Nil(t, effects.RaiseVoid(nil))
	assert.Equal(t, 5, effects.RaiseVoid(5))
}

func TestGuard_SelectsMatchMode(t *testing.T) {
	_, err := effects.Guard[Shape](effects.MatchAssignable, Square{})
	assert.NoError(t, err)

	_, err = effects.Guard[Shape](effects.MatchExact, Square{})
	assert.ErrorIs(t, err, effects.ErrIncorrectHandlerReturn)
}
