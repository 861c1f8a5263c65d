// Package policy holds repository-wide checks that run as tests.
//
// The checks load the module with golang.org/x/tools/go/packages and walk
// syntax and type information to enforce rules that the compiler cannot:
//
//   - cgo is confined to internal/backend;
//   - the public API under pkg/ never exposes unsafe.Pointer;
//   - library packages log through pkg/logging instead of printing.
//
// It is not intended for import.
package policy
