package optfield

import (
	"fmt"
	"hash/maphash"
	"iter"
	"reflect"

	"github.com/hupe1980/optfield/defaults"
)

// Field is the dedicated optional-field container. It keeps the presence
// flag separate from the heap storage so that Clear can flip a field to
// absent while retaining its allocation, and a later SetDefault can reset
// that allocation in place instead of reallocating.
//
// When set is false the storage pointer may still be non-nil; its contents
// are stale and must never be observed. Every accessor goes through the
// logical projection guarded by set.
//
// The zero value is an absent field with no storage, identical to None.
type Field[T any] struct {
	value *T
	set   bool
}

// Some returns a present Field holding v in fresh storage.
func Some[T any](v T) Field[T] {
	return Field[T]{value: &v, set: true}
}

// None returns an absent Field with no storage.
func None[T any]() Field[T] {
	return Field[T]{}
}

// FromOption maps a comma-ok optional onto Some or None.
func FromOption[T any](v T, ok bool) Field[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

// FromPtr adopts p as the field's storage; the caller must not retain p.
// A nil pointer yields an absent field.
func FromPtr[T any](p *T) Field[T] {
	if p == nil {
		return None[T]()
	}
	return Field[T]{value: p, set: true}
}

// IsSome reports whether the field is logically present.
func (f *Field[T]) IsSome() bool { return f.set }

// IsNone reports whether the field is logically absent, regardless of
// whether storage is retained.
func (f *Field[T]) IsNone() bool { return !f.set }

// Get returns a copy of the contained value and whether one is present.
func (f *Field[T]) Get() (T, bool) {
	if !f.set {
		var zero T
		return zero, false
	}
	return *f.value, true
}

// Ptr returns a mutable view of the contained value, or nil when absent.
// Retained-but-cleared storage is never exposed.
func (f *Field[T]) Ptr() *T {
	if !f.set {
		return nil
	}
	return f.value
}

// MustPtr returns a mutable view of the contained value.
// It panics with *AbsentError when the field is absent; callers must check
// presence first or use Ptr.
func (f *Field[T]) MustPtr() *T {
	if !f.set {
		panic(&AbsentError{Op: "MustPtr"})
	}
	return f.value
}

// Take moves the value out and releases the storage, leaving the field
// absent with nothing retained. Taking an absent field changes nothing.
func (f *Field[T]) Take() (T, bool) {
	if !f.set {
		var zero T
		return zero, false
	}
	out := *f.value
	f.value = nil
	f.set = false
	return out, true
}

// Unwrap moves the value out.
// It panics with *AbsentError when the field is absent.
func (f *Field[T]) Unwrap() T {
	v, ok := f.Take()
	if !ok {
		panic(&AbsentError{Op: "Unwrap"})
	}
	return v
}

// UnwrapOr moves the value out, or returns def when the field is absent.
func (f *Field[T]) UnwrapOr(def T) T {
	if v, ok := f.Take(); ok {
		return v
	}
	return def
}

// UnwrapOrElse moves the value out, or returns fn() when the field is absent.
func (f *Field[T]) UnwrapOrElse(fn func() T) T {
	if v, ok := f.Take(); ok {
		return v
	}
	return fn()
}

// UnwrapOrDefault moves the value out, or returns a default value when the
// field is absent. If cleared storage is retained, it is reset in place and
// moved out rather than allocating; otherwise the default is produced
// without touching the container's storage at all.
func (f *Field[T]) UnwrapOrDefault() T {
	switch {
	case f.set:
		return f.Unwrap()
	case f.value != nil:
		resetInPlace(f.value)
		out := *f.value
		f.value = nil
		return out
	default:
		var zero T
		return zero
	}
}

// Clear flips the field to absent without running the contained value's
// teardown and without releasing storage. The retained allocation is reused
// by a later Set, SetDefault or UnwrapOrDefault.
func (f *Field[T]) Clear() {
	f.set = false
}

// Set unconditionally makes the field present with the given value,
// reusing retained storage when available.
func (f *Field[T]) Set(value T) {
	if f.value != nil {
		*f.value = value
	} else {
		f.value = &value
	}
	f.set = true
}

// SetDefault makes the field present with a default value and returns a
// mutable pointer to it. Retained storage, whether previously set or
// previously cleared, is reset in place; fresh storage is allocated only
// when none exists.
func (f *Field[T]) SetDefault() *T {
	if f.value != nil {
		resetInPlace(f.value)
	} else {
		f.value = new(T)
	}
	f.set = true
	return f.value
}

// GetOrDefault returns the contained value when present, or the process-wide
// shared default instance for T. The shared instance must be treated as
// read-only; use MutOrDefault when mutation is required.
func (f *Field[T]) GetOrDefault() *T {
	if f.set {
		return f.value
	}
	return defaults.Instance[T]()
}

// MutOrDefault returns a mutable pointer to the contained value,
// initializing the field to its default first when absent. After the call
// the field is always present and owns its storage.
func (f *Field[T]) MutOrDefault() *T {
	if !f.set {
		return f.SetDefault()
	}
	return f.value
}

// Values returns a sequence yielding the contained value zero or one times.
// Each call produces an independent, restartable sequence.
func (f *Field[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		if v, ok := f.Get(); ok {
			yield(v)
		}
	}
}

// Ptrs returns a sequence yielding a mutable view of the contained value
// zero or one times. Each call produces an independent, restartable
// sequence.
func (f *Field[T]) Ptrs() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		if p := f.Ptr(); p != nil {
			yield(p)
		}
	}
}

// Clone returns a field holding a copy of the logical contents. Absent
// fields clone to absent without allocating; retained-but-cleared storage
// is never inherited. Value types implementing Cloner are deep-copied.
func (f *Field[T]) Clone() Field[T] {
	v, ok := f.Get()
	if !ok {
		return None[T]()
	}
	return Some(cloneValue(v))
}

// Equal reports whether both fields have the same logical contents,
// compared with reflect.DeepEqual. Retained-but-cleared storage on either
// side is ignored. For comparable T the free function Equal avoids
// reflection.
func (f *Field[T]) Equal(other *Field[T]) bool {
	a, aok := f.Get()
	b, bok := other.Get()
	if aok != bok {
		return false
	}
	if !aok {
		return true
	}
	return reflect.DeepEqual(a, b)
}

// String renders the logical projection in Some(v) / None debug form.
// It takes a value receiver, unlike the rest of the method set, so fmt
// verbs pick it up when a Field is passed by value.
func (f Field[T]) String() string {
	if v, ok := f.Get(); ok {
		return fmt.Sprintf("Some(%v)", v)
	}
	return "None"
}

// Map returns a field holding fn applied to f's value, or an absent field
// when f is absent. f is consumed.
func Map[T, U any](f *Field[T], fn func(T) U) Field[U] {
	v, ok := f.Take()
	if !ok {
		return None[U]()
	}
	return Some(fn(v))
}

// Equal reports whether two fields have the same logical contents.
// Retained-but-cleared storage on either side is ignored.
func Equal[T comparable](a, b *Field[T]) bool {
	av, aok := a.Get()
	bv, bok := b.Get()
	return aok == bok && av == bv
}

// Hash returns a seed-dependent hash of the field's logical projection.
// Two fields that compare Equal hash identically, irrespective of retained
// storage.
func Hash[T comparable](seed maphash.Seed, f *Field[T]) uint64 {
	v, ok := f.Get()
	return maphash.Comparable(seed, struct {
		OK bool
		V  T
	}{ok, v})
}
