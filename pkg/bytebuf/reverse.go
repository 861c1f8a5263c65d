package bytebuf

import "github.com/nativebind/nativebind-go/internal/backend"

// Reverse reverses buf in place. Buffers of length 0 or 1 are left as is.
func Reverse(buf []byte) {
	backend.Reverse(buf)
}
