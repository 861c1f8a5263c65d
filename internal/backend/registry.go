package backend

import "sync"

// handle is an opaque reference to a registered Go value that can travel
// through C code as an integer.
type handle uintptr

var (
	mu   sync.Mutex
	next handle = 1
	reg         = map[handle]any{}
)

// put registers a Go value and returns its handle and the integer key that
// is stored in native memory. The handle must be released with del.
func put(v any) (handle, uintptr) {
	mu.Lock()
	defer mu.Unlock()
	h := next
	next++
	reg[h] = v
	return h, uintptr(h)
}

func get(h handle) (any, bool) {
	if h == 0 {
		return nil, false
	}
	mu.Lock()
	v, ok := reg[h]
	mu.Unlock()
	return v, ok
}

func del(h handle) {
	mu.Lock()
	delete(reg, h)
	mu.Unlock()
}

// Pending reports how many callbacks are currently registered.
func Pending() int {
	mu.Lock()
	defer mu.Unlock()
	return len(reg)
}
