// Package backend hosts the thin cgo layer that links the Go API to the
// native Chebyshev series implementation and the native byte reversal.
//
// All cgo in the module lives here. The native series comes in two flavours
// selected at build time: a bundled C implementation (the default) and the
// system GNU Scientific Library (build with -tags gsl). Builds without cgo
// compile against stubs that report ErrNotBuilt.
//
// # Callbacks
//
// Native sampling calls back into Go through nbGoSample. The managed
// function is never handed to C directly: it is registered under an integer
// handle, the handle is stored in a C-allocated context cell, and the
// trampoline resolves the handle on every sample. Registrations only live
// for the dynamic extent of a single SeriesInit call.
//
// # Threading
//
// Native series are not thread-safe. Callers must serialize access to a
// given series.
package backend
