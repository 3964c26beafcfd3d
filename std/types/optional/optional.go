package optional

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Optional holds a value that may be absent, such as a packet field
// that was not present on the wire.
type Optional[T any] struct {
	value T
	isSet bool
}

// IsSet returns true if a value is present.
func (o Optional[T]) IsSet() bool {
	return o.isSet
}

// Set stores v.
func (o *Optional[T]) Set(v T) {
	o.value = v
	o.isSet = true
}

// Unset drops the value.
func (o *Optional[T]) Unset() {
	var zero T
	o.value = zero
	o.isSet = false
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.isSet
}

// GetOr returns the value, or def if it is absent.
func (o Optional[T]) GetOr(def T) T {
	if o.isSet {
		return o.value
	}
	return def
}

// Unwrap returns the value and panics if it is absent.
func (o Optional[T]) Unwrap() T {
	if o.isSet {
		return o.value
	}
	panic("Optional value is not set")
}

// String prints the value, or "none".
func (o Optional[T]) String() string {
	if !o.isSet {
		return "none"
	}
	return fmt.Sprint(o.value)
}

// Some creates a present value.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, isSet: true}
}

// None creates an absent value.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// CastInt converts between integer optionals, keeping absence.
func CastInt[A, B constraints.Integer](a Optional[A]) (out Optional[B]) {
	if v, ok := a.Get(); ok {
		out.Set(B(v))
	}
	return out
}
