package bytebuf

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"

	"github.com/nativebind/nativebind-go/pkg/logging"
)

const (
	pageSize = 65536

	guestName   = "bytebuf"
	guestExport = "reverse"
)

// Config controls the WebAssembly runtime backing a Sandbox.
type Config struct {
	// MemoryLimitPages caps guest memory in 64 KiB pages. Zero keeps the
	// wazero default (4 GiB).
	MemoryLimitPages uint32

	// CacheDir enables an on-disk compilation cache shared across
	// processes. Empty disables caching.
	CacheDir string

	// Logger receives lifecycle events. Nil binds to slog.Default().
	Logger logging.Logger
}

// Sandbox reverses buffers inside an isolated WebAssembly instance. Calls
// are serialized; a Sandbox is safe for concurrent use.
//
// A context cancelled during a call closes the guest instance. The next
// call instantiates a fresh one, so cancellation only affects its own
// caller.
type Sandbox struct {
	mu       sync.Mutex
	runtime  wazero.Runtime
	cache    wazero.CompilationCache
	compiled wazero.CompiledModule
	module   api.Module
	reverse  api.Function
	log      logging.Logger
	closed   bool
}

// NewSandbox compiles and instantiates the guest module.
func NewSandbox(ctx context.Context, cfg Config) (*Sandbox, error) {
	log := cfg.Logger
	if log == nil {
		log = logging.New(nil)
	}

	var cache wazero.CompilationCache
	if cfg.CacheDir != "" {
		var err error
		cache, err = wazero.NewCompilationCacheWithDir(cfg.CacheDir)
		if err != nil {
			return nil, fmt.Errorf("create compilation cache: %w", err)
		}
	}

	rtConfig := wazero.NewRuntimeConfig().WithCloseOnContextDone(true)
	if cache != nil {
		rtConfig = rtConfig.WithCompilationCache(cache)
	}
	if cfg.MemoryLimitPages > 0 {
		rtConfig = rtConfig.WithMemoryLimitPages(cfg.MemoryLimitPages)
	}
	rt := wazero.NewRuntimeWithConfig(ctx, rtConfig)

	cleanup := func() {
		rt.Close(ctx)
		if cache != nil {
			cache.Close(ctx)
		}
	}

	compiled, err := rt.CompileModule(ctx, guestModule)
	if err != nil {
		cleanup()
		return nil, fmt.Errorf("compile guest module: %w", err)
	}

	s := &Sandbox{
		runtime:  rt,
		cache:    cache,
		compiled: compiled,
		log:      log,
	}
	if err := s.instantiate(ctx); err != nil {
		cleanup()
		return nil, err
	}

	log.Debug(ctx, "sandbox ready", "memory_bytes", s.module.Memory().Size(), "memory_limit_pages", cfg.MemoryLimitPages)
	return s, nil
}

// instantiate creates a guest instance from the compiled module.
func (s *Sandbox) instantiate(ctx context.Context) error {
	mod, err := s.runtime.InstantiateModule(ctx, s.compiled, wazero.NewModuleConfig().WithName(guestName))
	if err != nil {
		return fmt.Errorf("instantiate guest module: %w", err)
	}

	fn := mod.ExportedFunction(guestExport)
	if fn == nil || mod.Memory() == nil {
		_ = mod.Close(ctx)
		return fmt.Errorf("guest module does not export %q and memory", guestExport)
	}
	s.module = mod
	s.reverse = fn
	return nil
}

// ensureInstance replaces a guest instance that was closed by a cancelled
// call. If no new instance can be created the Sandbox shuts down.
func (s *Sandbox) ensureInstance(ctx context.Context) error {
	if !s.module.IsClosed() {
		return nil
	}
	if err := s.instantiate(context.WithoutCancel(ctx)); err != nil {
		s.log.Warn(ctx, "guest instance lost", "error", err)
		_ = s.shutdown(context.WithoutCancel(ctx))
		return fmt.Errorf("%w: %v", ErrClosed, err)
	}
	s.log.Debug(ctx, "guest instance replaced")
	return nil
}

// Reverse reverses buf in place inside the guest. buf is copied into guest
// memory, reversed by the guest, and copied back; the guest never sees the
// caller's memory.
func (s *Sandbox) Reverse(ctx context.Context, buf []byte) error {
	n, err := guestLength(len(buf))
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	if n < 2 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := s.ensureInstance(ctx); err != nil {
		return err
	}
	if err := s.ensureCapacity(ctx, n); err != nil {
		return err
	}

	mem := s.module.Memory()
	if !mem.Write(0, buf) {
		return fmt.Errorf("write %d bytes to guest memory: out of range", n)
	}
	if _, err := s.reverse.Call(ctx, 0, uint64(n)); err != nil {
		if cerr := ctx.Err(); cerr != nil {
			err = cerr
		}
		return fmt.Errorf("guest %s: %w", guestExport, err)
	}
	out, ok := mem.Read(0, n)
	if !ok {
		return fmt.Errorf("read %d bytes from guest memory: out of range", n)
	}
	copy(buf, out)
	return nil
}

// ensureCapacity grows guest memory so that [0, n) is addressable.
func (s *Sandbox) ensureCapacity(ctx context.Context, n uint32) error {
	mem := s.module.Memory()
	size := mem.Size()
	if n <= size {
		return nil
	}
	delta := (uint64(n) - uint64(size) + pageSize - 1) / pageSize
	if _, ok := mem.Grow(uint32(delta)); !ok {
		return fmt.Errorf("%w: %d bytes", ErrMemoryLimit, n)
	}
	s.log.Debug(ctx, "guest memory grown", "pages", delta, "memory_bytes", mem.Size())
	return nil
}

// Close releases the runtime and the compilation cache.
func (s *Sandbox) Close(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	return s.shutdown(ctx)
}

func (s *Sandbox) shutdown(ctx context.Context) error {
	s.closed = true

	err := s.runtime.Close(ctx)
	if s.cache != nil {
		if cerr := s.cache.Close(ctx); err == nil {
			err = cerr
		}
	}
	return err
}

func guestLength(n int) (uint32, error) {
	if n < 0 || uint64(n) > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %d", ErrLength, n)
	}
	return uint32(n), nil
}
