// Package diag defines the callback types shared by every component that
// reports warnings or debug traces back to the caller.
package diag

// WarnFunc receives a human-readable warning. The parser never fails on
// input problems; it always recovers locally and reports through here.
type WarnFunc func(message string)

// DebugFunc receives an optional tracing call.
type DebugFunc func(format string, args ...interface{})
