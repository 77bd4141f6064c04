// Package clock provides an effect for reading the current time.
//
// The current time is returned as a short time span rather than an instant, so
// computations compare against a window instead of an exact nanosecond.
package clock

import (
	"context"
	"time"

	"github.com/on-the-ground/effect_drive_go/effects"
	"github.com/rickb777/date/v2/timespan"
)

// TimeSpan is the resumption value of Now.
type TimeSpan = timespan.TimeSpan

// Now is the clock effect. It is resumed with a TimeSpan around the current time.
type Now struct{}

const epsilon = time.Millisecond

// Around returns the span of ±1ms centered on t.
func Around(t time.Time) TimeSpan {
	return timespan.BetweenTimes(t.Add(-1*epsilon), t.Add(epsilon))
}

// SystemHandler answers Now from the wall clock.
func SystemHandler() func(context.Context, Now) (any, error) {
	return func(context.Context, Now) (any, error) {
		return Around(time.Now()), nil
	}
}

// FixedHandler answers Now with a span around t, for deterministic tests.
func FixedHandler(t time.Time) func(context.Context, Now) (any, error) {
	return func(context.Context, Now) (any, error) {
		return Around(t), nil
	}
}

// Register installs handler for Now in hm.
func Register(hm effects.HandlerMap, handler func(context.Context, Now) (any, error)) effects.HandlerMap {
	return effects.On(hm, handler)
}

// Read yields Now and returns the resulting span.
func Read(yield effects.Yield) (TimeSpan, error) {
	return effects.Raise[TimeSpan](yield(Now{}))
}
