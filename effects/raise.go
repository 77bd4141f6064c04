package effects

// Raise asserts that the runtime type of v is exactly T.
// An absent value fails. Interface types never match exactly; use Expect for those.
func Raise[T any](v any) (T, error) {
	return Guard[T](MatchExact, v)
}

// RaiseVoid accepts the resumption value of a write-only effect.
// No type is expected, so it never fails and returns v unchanged (usually nil).
func RaiseVoid(v any) any {
	return v
}
