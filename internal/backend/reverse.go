//go:build cgo

package backend

/*
#include "cheb.h"
*/
import "C"

import "unsafe"

// Reverse reverses buf in place using the native routine. buf is only
// borrowed for the duration of the call.
func Reverse(buf []byte) {
	if len(buf) < 2 {
		return
	}
	C.nb_reverse((*C.uint8_t)(unsafe.Pointer(&buf[0])), C.uint64_t(len(buf)))
}
