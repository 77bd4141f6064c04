package effects_test

import (
	"context"
	"testing"

	"github.com/on-the-ground/effect_drive_go/effects"
	"github.com/on-the-ground/effect_drive_go/result"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Div struct {
	Numerator   int
	Denominator int
}

type IntResult = result.Result[int, string]

func divHandler(_ context.Context, eff effects.Effect) (any, error) {
	d := eff.(Div)
	if d.Denominator == 0 {
		return result.Err[int]("cannot divide by 0"), nil
	}
	return result.Ok[int, string](d.Numerator / d.Denominator), nil
}

func divide(numerator func(prev int) int, denominator func(prev int) int) effects.Step[int, string] {
	return effects.PerformStep[int, string](func(prev int) effects.Effect {
		return Div{Numerator: numerator(prev), Denominator: denominator(prev)}
	})
}

func constant(n int) func(int) int { return func(int) int { return n } }
func previous(prev int) int        { return prev }

func TestMapResults_CanMapEffectResults(t *testing.T) {
	tests := []struct {
		name     string
		steps    []effects.Step[int, string]
		expected IntResult
	}{
		{
			name: "all success",
			steps: []effects.Step[int, string]{
				divide(constant(4), constant(2)),
				divide(constant(8), previous),
			},
			expected: result.Ok[int, string](4),
		},
		{
			name: "stops on error",
			steps: []effects.Step[int, string]{
				divide(constant(4), constant(0)),
				divide(constant(4), constant(2)),
			},
			expected: result.Err[int]("cannot divide by 0"),
		},
		{
			name: "can mix effects with normal",
			steps: []effects.Step[int, string]{
				effects.Lift(func(int) IntResult { return result.Ok[int, string](4) }),
				divide(constant(4), previous),
			},
			expected: result.Ok[int, string](1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := effects.Drive(
				context.Background(),
				effects.MapResults(tt.steps...),
				nil,
				effects.WithDefaultHandler(divHandler),
			)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, res)
		})
	}
}

func TestMapResults_ShortCircuitsOnFirstErr(t *testing.T) {
	invoked := []string{}
	step := func(name string, r IntResult) effects.Step[int, string] {
		return effects.Lift(func(int) IntResult {
			invoked = append(invoked, name)
			return r
		})
	}

	res, err := effects.Drive(context.Background(), effects.MapResults(
		step("s1", result.Ok[int, string](1)),
		step("s2", result.Err[int]("e")),
		step("s3", result.Ok[int, string](3)),
	), nil)

	require.NoError(t, err)
	assert.Equal(t, result.Err[int]("e"), res)
	assert.Equal(t, []string{"s1", "s2"}, invoked)
}

func TestMapResults_ThreadsSuccessValues(t *testing.T) {
	res, err := effects.Drive(context.Background(), effects.MapResults(
		effects.Lift(func(int) IntResult { return result.Ok[int, string](4) }),
		effects.Lift(func(x int) IntResult { return result.Ok[int, string](x * 2) }),
	), nil)

	require.NoError(t, err)
	assert.Equal(t, result.Ok[int, string](8), res)
}

func TestMapResults_WrapsBareValuesAsOk(t *testing.T) {
	res, err := effects.Drive(context.Background(), effects.MapResultsFrom(3,
		effects.LiftValue[int, string](func(x int) int { return x + 1 }),
		effects.PerformStep[int, string](func(x int) effects.Effect { return Add{Values: []int{x, x}} }),
	), effects.On(effects.NewHandlerMap(), func(_ context.Context, a Add) (any, error) {
		return a.Values[0] + a.Values[1], nil
	}))

	require.NoError(t, err)
	assert.Equal(t, result.Ok[int, string](8), res)
}

func TestMapResults_EmptyChainReturnsInitialValue(t *testing.T) {
	res, err := effects.Drive(context.Background(), effects.MapResults[int, string](), nil)
	require.NoError(t, err)
	assert.Equal(t, result.Ok[int, string](0), res)

	res, err = effects.Drive(context.Background(), effects.MapResultsFrom[int, string](7), nil)
	require.NoError(t, err)
	assert.Equal(t, result.Ok[int, string](7), res)
}

func TestMapResults_ForwardsStepEffectsInOrder(t *testing.T) {
	var seen []string
	hm := effects.NewHandlerMap()
	effects.OnWriteOnly(hm, func(_ context.Context, g Greet) error {
		seen = append(seen, g.Name)
		return nil
	})

	greeter := func(names ...string) effects.Step[int, string] {
		return func(prev int) effects.Computation[IntResult] {
			return func(yield effects.Yield) (IntResult, error) {
				seen = append(seen, "step")
				for _, n := range names {
					yield(Greet{Name: n})
				}
				return result.Ok[int, string](prev + len(names)), nil
			}
		}
	}

	res, err := effects.Drive(context.Background(), effects.MapResults(
		greeter("a", "b"),
		greeter("c"),
	), hm)

	require.NoError(t, err)
	assert.Equal(t, result.Ok[int, string](3), res)
	assert.Equal(t, []string{"step", "a", "b", "step", "c"}, seen)
}

func TestMapResults_PropagatesContractViolations(t *testing.T) {
	next := false
	_, err := effects.Drive(context.Background(), effects.MapResults(
		effects.PerformStep[int, string](func(int) effects.Effect { return Div{Numerator: 1, Denominator: 1} }),
		effects.LiftValue[int, string](func(x int) int { next = true; return x }),
	), nil, effects.WithDefaultHandler(func(context.Context, effects.Effect) (any, error) {
		return "one", nil
	}))

	assert.ErrorIs(t, err, effects.ErrUnexpectedEffectResult)
	assert.Contains(t, err.Error(), "effects_test.Div")
	assert.False(t, next)
}

func TestNormalizeResult(t *testing.T) {
	r, err := effects.NormalizeResult[int, string](result.Err[int]("x"))
	require.NoError(t, err)
	assert.Equal(t, result.Err[int]("x"), r)

	r, err = effects.NormalizeResult[int, string](5)
	require.NoError(t, err)
	assert.Equal(t, result.Ok[int, string](5), r)

	_, err = effects.NormalizeResult[int, string](nil)
	assert.ErrorIs(t, err, effects.ErrUnexpectedEffectResult)
}
