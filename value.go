package optfield

// Value is the plain optional representation: the value is stored inline,
// so presence and storage are inseparable and there is no allocation to
// retain. The zero value is absent.
type Value[T any] struct {
	val T
	ok  bool
}

// SomeValue returns a present Value holding v.
func SomeValue[T any](v T) Value[T] {
	return Value[T]{val: v, ok: true}
}

// NoneValue returns an absent Value.
func NoneValue[T any]() Value[T] {
	return Value[T]{}
}

// IsSome reports whether a value is present.
func (o *Value[T]) IsSome() bool { return o.ok }

// IsNone reports whether the container is absent.
func (o *Value[T]) IsNone() bool { return !o.ok }

// Get returns a copy of the contained value and whether one is present.
func (o *Value[T]) Get() (T, bool) {
	if !o.ok {
		var zero T
		return zero, false
	}
	return o.val, true
}

// Ptr returns a mutable view of the contained value, or nil when absent.
func (o *Value[T]) Ptr() *T {
	if !o.ok {
		return nil
	}
	return &o.val
}

// Take moves the value out, leaving the container absent. The inline slot
// is zeroed so stale contents cannot leak through a later SetDefault.
func (o *Value[T]) Take() (T, bool) {
	if !o.ok {
		var zero T
		return zero, false
	}
	out := o.val
	var zero T
	o.val = zero
	o.ok = false
	return out, true
}

// Set unconditionally makes the container present with the given value.
func (o *Value[T]) Set(value T) {
	o.val = value
	o.ok = true
}

// SetDefault makes the container present with a fresh default value and
// returns a mutable pointer to it. The plain representation has no
// indirection to retain, so the default is always constructed anew.
func (o *Value[T]) SetDefault() *T {
	var zero T
	o.val = zero
	o.ok = true
	return &o.val
}
