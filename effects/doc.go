// Package effects provides a minimal algebraic effect runtime for Go.
//
// Business logic is written as a Computation: a function that describes its
// side effects as plain values and hands them to a yield function instead of
// performing them. A separate driver decides, at run time, how each effect is
// actually performed.
//
// # What is an Effect?
//
// An effect is any value a computation yields at a suspension point. It is
// identified solely by its concrete runtime type and carries whatever payload
// its producer needs:
//
//	type Divide struct{ Numerator, Denominator int }
//
// # How does it work?
//
// Drive runs a computation to completion. Each yielded effect is looked up in a
// HandlerMap by its type, falling back to an optional default handler, and the
// handler's return value is fed back in as the resumption value:
//
//	hm := effects.NewHandlerMap()
//	effects.On(hm, func(ctx context.Context, d Divide) (any, error) {
//	    if d.Denominator == 0 {
//	        return result.Err[int]("cannot divide by 0"), nil
//	    }
//	    return result.Ok[int, string](d.Numerator / d.Denominator), nil
//	})
//
//	res, err := effects.Drive(ctx, effects.MapResults(
//	    effects.PerformStep[int, string](func(int) effects.Effect { return Divide{4, 2} }),
//	    effects.PerformStep[int, string](func(r int) effects.Effect { return Divide{8, r} }),
//	), hm)
//	// res == result.Ok[int, string](4)
//
// Resumption values are validated with Expect (assignable match) or Raise
// (exact match). Failed guards, missing handlers and handler errors are fatal
// and surface as errors from Drive; expected business failures travel as
// result.Result values and short-circuit MapResults chains instead.
//
// # Stepping
//
// Start and Suspension expose the same protocol one effect at a time for
// callers that want to drive a computation themselves.
package effects
