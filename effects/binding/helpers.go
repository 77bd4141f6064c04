package binding

import (
	"fmt"

	"github.com/on-the-ground/effect_drive_go/effects"
	"github.com/on-the-ground/effect_drive_go/result"
)

// Get yields a Lookup for key and asserts the bound value to T.
// Returns an error wrapping ErrKeyNotFound if the key is missing, or a contract
// violation if the handler or the bound value has an unexpected type.
func Get[T any](yield effects.Yield, key string) (T, error) {
	var zero T

	res, err := effects.Expect[result.Result[any, error]](yield(Lookup{Key: key}))
	if err != nil {
		return zero, err
	}
	if e, failed := res.GetErr(); failed {
		return zero, e
	}

	v, err := effects.Expect[T](res.Unwrap())
	if err != nil {
		return zero, fmt.Errorf("binding %q: %w", key, err)
	}
	return v, nil
}

// GetOr is Get with a fallback for missing keys.
// Type mismatches are still reported.
func GetOr[T any](yield effects.Yield, key string, fallback T) (T, error) {
	res, err := effects.Expect[result.Result[any, error]](yield(Lookup{Key: key}))
	if err != nil {
		return fallback, err
	}
	raw, ok := res.Get()
	if !ok {
		return fallback, nil
	}
	v, err := effects.Expect[T](raw)
	if err != nil {
		return fallback, fmt.Errorf("binding %q: %w", key, err)
	}
	return v, nil
}
