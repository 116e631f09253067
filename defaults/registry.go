package defaults

import (
	"hash/maphash"
	"reflect"

	"github.com/puzpuzpuz/xsync/v2"
)

var (
	ctors     = xsync.NewTypedMapOf[reflect.Type, func() any](hashType)
	instances = xsync.NewTypedMapOf[reflect.Type, any](hashType)
)

func hashType(seed maphash.Seed, t reflect.Type) uint64 {
	return maphash.String(seed, t.String())
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Register installs a constructor for types whose default is not the zero
// value. It must be called before the first Instance or New for T, usually
// from an init function; any cached shared instance for T is discarded.
func Register[T any](ctor func() *T) {
	t := typeOf[T]()
	ctors.Store(t, func() any { return ctor() })
	instances.Delete(t)
}

// New returns a freshly constructed default value for T, owned by the
// caller: the registered constructor's result, or a zeroed allocation.
func New[T any]() *T {
	if ctor, ok := ctors.Load(typeOf[T]()); ok {
		return ctor().(*T)
	}
	return new(T)
}

// Instance returns the shared canonical default instance for T, building it
// on first use. The returned value is aliased by every caller in the
// process and must not be mutated.
func Instance[T any]() *T {
	v, _ := instances.LoadOrCompute(typeOf[T](), func() any {
		return New[T]()
	})
	return v.(*T)
}
