//go:build !cgo

package cheb_test

import (
	"errors"
	"testing"

	"github.com/nativebind/nativebind-go/pkg/cheb"
)

func TestAllocWithoutCgo(t *testing.T) {
	s, err := cheb.Alloc(4)
	if s != nil {
		t.Fatalf("expected nil series, got %+v", s)
	}
	if !errors.Is(err, cheb.ErrNotBuilt) {
		t.Fatalf("expected ErrNotBuilt, got %v", err)
	}
	if got := cheb.Backend(); got != "none" {
		t.Fatalf("expected backend none, got %q", got)
	}
}
