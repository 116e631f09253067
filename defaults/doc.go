// Package defaults maintains process-wide canonical default instances for
// value types, the collaborator behind Field.GetOrDefault. Instances are
// built lazily, shared across all callers and must be treated as read-only.
//
// Types whose default differs from the Go zero value install a constructor
// with Register, typically from an init function in generated code. The
// registry is safe for concurrent use even though the containers in the
// root package are not; default instances are shared program-wide state.
package defaults
