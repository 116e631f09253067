// Package testutil contains fixture value types shared across tests to
// reduce boilerplate when exercising container semantics (presence, storage
// reuse, reset-in-place, deep cloning). These helpers are intentionally
// minimal and avoid adding third‑party dependencies. They are not intended
// for production usage.
package testutil
