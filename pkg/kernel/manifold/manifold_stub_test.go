//go:build !manifold

package manifold

import (
	"strings"
	"testing"
)

func TestNewWithoutTag(t *testing.T) {
	k, err := New()
	if err == nil {
		t.Fatal("New without the manifold tag = nil error")
	}
	if k != nil {
		t.Errorf("New returned a kernel alongside the error: %v", k)
	}
	if !strings.Contains(err.Error(), "-tags=manifold") {
		t.Errorf("error %q does not point at the build tag", err)
	}
}
