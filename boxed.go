package optfield

// Boxed is the heap-owned optional representation: a single-owner pointer
// that is nil exactly when the container is absent. Because presence and
// allocation coincide there is no retained-but-cleared state; what Boxed
// offers instead is in-place reuse of the live allocation on Set and
// SetDefault. The zero value is absent.
type Boxed[T any] struct {
	ptr *T
}

// SomeBoxed returns a present Boxed holding v in fresh storage.
func SomeBoxed[T any](v T) Boxed[T] {
	return Boxed[T]{ptr: &v}
}

// NoneBoxed returns an absent Boxed with no storage.
func NoneBoxed[T any]() Boxed[T] {
	return Boxed[T]{}
}

// IsSome reports whether a value is present.
func (o *Boxed[T]) IsSome() bool { return o.ptr != nil }

// IsNone reports whether the container is absent.
func (o *Boxed[T]) IsNone() bool { return o.ptr == nil }

// Get returns a copy of the contained value and whether one is present.
func (o *Boxed[T]) Get() (T, bool) {
	if o.ptr == nil {
		var zero T
		return zero, false
	}
	return *o.ptr, true
}

// Ptr returns the owned storage, or nil when absent.
func (o *Boxed[T]) Ptr() *T { return o.ptr }

// Take moves the value out and releases the storage, leaving the container
// absent.
func (o *Boxed[T]) Take() (T, bool) {
	if o.ptr == nil {
		var zero T
		return zero, false
	}
	out := *o.ptr
	o.ptr = nil
	return out, true
}

// Set unconditionally makes the container present with the given value,
// reusing the existing allocation when one is live.
func (o *Boxed[T]) Set(value T) {
	if o.ptr != nil {
		*o.ptr = value
		return
	}
	o.ptr = &value
}

// SetDefault makes the container present with a default value, resetting
// the existing allocation in place when present and allocating fresh
// storage otherwise. It returns a mutable pointer to the now-default value.
func (o *Boxed[T]) SetDefault() *T {
	if o.ptr != nil {
		resetInPlace(o.ptr)
		return o.ptr
	}
	o.ptr = new(T)
	return o.ptr
}
