// Package bytebuf reverses byte buffers in place, either through the native
// backend or inside a WebAssembly sandbox.
//
// Reverse borrows the caller's slice for the duration of the call and never
// retains it. A Sandbox runs the same routine as a guest module under
// wazero: the buffer is copied into guest memory, reversed there, and copied
// back.
//
//	sb, err := bytebuf.NewSandbox(ctx, bytebuf.Config{MemoryLimitPages: 16})
//	if err != nil {
//	    return err
//	}
//	defer sb.Close(ctx)
//
//	buf := []byte("hello")
//	if err := sb.Reverse(ctx, buf); err != nil {
//	    return err
//	}
package bytebuf
