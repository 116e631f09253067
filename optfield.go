// Package optfield provides optional-value containers for generated
// data-structure fields. It defines the core abstractions for:
//
//   - Option (the uniform capability contract generated accessors rely on)
//   - Value (plain optional, presence and storage inseparable)
//   - Boxed (heap-owned optional behind a single-owner pointer)
//   - Field (presence flag + retained heap storage, the main container)
//
// Field separates "is logically present" from "is storage allocated":
// Clear flips presence off while keeping the allocation, and SetDefault
// reuses that retained storage instead of reallocating. All observation
// (Get, Ptr, equality, hashing, cloning, iteration, formatting) consults
// only the logical projection, never retained-but-cleared storage.
//
// The package intentionally keeps serialization concerns out of scope,
// exposing small capability interfaces (Resettable, Cloner) and leaving
// formats to the codec package so the core stays format-agnostic.
// Containers use value semantics with no internal synchronization;
// mutating operations require exclusive access.
package optfield

import "fmt"

// Option is the capability contract implemented by every optional-field
// representation. Generated field accessors program against exactly these
// five operations to treat Value, Boxed and Field interchangeably.
type Option[T any] interface {
	// Get returns a copy of the contained value and whether one is present.
	Get() (T, bool)
	// Ptr returns a mutable view of the contained value, or nil when absent.
	Ptr() *T
	// Take moves the value out, leaving the container absent.
	Take() (T, bool)
	// Set unconditionally makes the container present with the given value.
	Set(value T)
	// SetDefault makes the container present with a default value, reusing
	// retained storage when the representation has any, and returns a
	// mutable pointer to the now-default value.
	SetDefault() *T
}

// Resettable is implemented by value types that can reset their contents to
// the default in place, reusing internal capacity. SetDefault and
// UnwrapOrDefault call Reset on retained storage instead of reallocating;
// types that do not implement it are reset by zero-value assignment into
// the same storage.
type Resettable interface {
	Reset()
}

// Cloner is implemented by value types that require deep-copy logic.
// Field.Clone uses it when present; plain assignment-copy otherwise.
type Cloner[T any] interface {
	Clone() T
}

// AbsentError is the panic payload raised when an unchecked accessor
// observes an absent field. It signals a caller-side contract violation:
// check presence first, or use a non-panicking variant such as UnwrapOr.
type AbsentError struct {
	// Op names the accessor that was invoked, e.g. "Unwrap" or "MustPtr".
	Op string
}

// Error implements the error interface for AbsentError.
func (e *AbsentError) Error() string {
	return fmt.Sprintf("optfield: %s called on absent field", e.Op)
}

// resetInPlace resets *p to its default without releasing the allocation.
func resetInPlace[T any](p *T) {
	if r, ok := any(p).(Resettable); ok {
		r.Reset()
		return
	}
	var zero T
	*p = zero
}

// cloneValue deep-copies v when the type supplies clone logic.
func cloneValue[T any](v T) T {
	if c, ok := any(v).(Cloner[T]); ok {
		return c.Clone()
	}
	return v
}

// Interface conformance for all three representations.
var (
	_ Option[int] = (*Value[int])(nil)
	_ Option[int] = (*Boxed[int])(nil)
	_ Option[int] = (*Field[int])(nil)
)
