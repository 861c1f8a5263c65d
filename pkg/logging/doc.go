// Package logging provides the logging facade used by nativebind packages.
//
// Logger wraps the subset of log/slog the library needs. Every method takes
// a context so handlers can pick up request-scoped attributes:
//
//	logger := logging.New(nil) // slog.Default()
//	logger.Debug(ctx, "series fitted", "order", 40, "samples", 41)
//
// Applications that want the library to stay quiet pass Discard():
//
//	s, err := cheb.Alloc(40, cheb.WithLogger(logging.Discard()))
//
// Custom implementations can adapt any other logging system; only the five
// methods of Logger are required.
package logging
