package cheb

// With allocates a series of the given order, passes it to fn, and frees it
// on every exit path, including a panic in fn. fn may free the series itself
// to release it early.
func With(order int, fn func(*Series) error, opts ...Option) error {
	s, err := Alloc(order, opts...)
	if err != nil {
		return err
	}
	defer func() {
		if !s.Released() {
			s.Free()
		}
	}()
	return fn(s)
}
