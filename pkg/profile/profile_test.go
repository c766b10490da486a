package profile

import (
	"math"
	"testing"
)

func approxEqual(a, b Point) bool {
	const eps = 1e-12
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps
}

func TestResolveInline(t *testing.T) {
	p := Profile{{0, 0}, {0.5, 0.1}, {1, 0}}
	got := Resolve(Inline(p))
	if len(got) != len(p) {
		t.Fatalf("Resolve(Inline) changed length: got %d, want %d", len(got), len(p))
	}
	for i := range p {
		if got[i] != p[i] {
			t.Errorf("point %d = %v, want %v", i, got[i], p[i])
		}
	}
}

func TestResolveByID(t *testing.T) {
	got := Resolve(ByID(IDSymmetric))
	want := Builtin(IDSymmetric)
	if len(got) == 0 {
		t.Fatal("builtin profile is empty")
	}
	if &got[0] != &want[0] {
		// Same registry entry, not a copy.
		t.Error("Resolve(ByID) did not return the registry profile")
	}
}

func TestResolveFallback(t *testing.T) {
	tests := []struct {
		name string
		ref  Ref
	}{
		{"unknown id", ByID(999)},
		{"negative id", ByID(-1)},
		{"nil ref", nil},
	}
	def := Default()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.ref)
			if len(got) != len(def) {
				t.Fatalf("fallback length = %d, want default's %d", len(got), len(def))
			}
			if got[0] != def[0] || got[len(got)-1] != def[len(def)-1] {
				t.Error("fallback did not resolve to the default profile")
			}
		})
	}
}

func TestBlendIdentity(t *testing.T) {
	a := Profile{{0, 0}, {0.5, 0.1}, {1, 0}, {0.5, -0.05}}
	b := Profile{{0, 0}, {0.5, 0.2}, {1, 0.01}}

	n := len(b) // min length

	t.Run("t=0 returns a truncated", func(t *testing.T) {
		got := Blend(a, b, 0)
		if len(got) != n {
			t.Fatalf("length = %d, want %d", len(got), n)
		}
		for i := 0; i < n; i++ {
			if !approxEqual(got[i], a[i]) {
				t.Errorf("point %d = %v, want %v", i, got[i], a[i])
			}
		}
	})

	t.Run("t=1 returns b truncated", func(t *testing.T) {
		got := Blend(a, b, 1)
		if len(got) != n {
			t.Fatalf("length = %d, want %d", len(got), n)
		}
		for i := 0; i < n; i++ {
			if !approxEqual(got[i], b[i]) {
				t.Errorf("point %d = %v, want %v", i, got[i], b[i])
			}
		}
	})
}

func TestBlendMidpoint(t *testing.T) {
	a := Profile{{0, 0}, {1, 0}}
	b := Profile{{0, 1}, {1, 0.5}}
	got := Blend(a, b, 0.5)
	want := Profile{{0, 0.5}, {1, 0.25}}
	for i := range want {
		if !approxEqual(got[i], want[i]) {
			t.Errorf("point %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestBlendClamps(t *testing.T) {
	a := Profile{{0, 0}, {1, 0}}
	b := Profile{{0, 1}, {1, 1}}

	if got := Blend(a, b, -3); !approxEqual(got[0], a[0]) {
		t.Errorf("t=-3 point 0 = %v, want %v (clamped to 0)", got[0], a[0])
	}
	if got := Blend(a, b, 7); !approxEqual(got[1], b[1]) {
		t.Errorf("t=7 point 1 = %v, want %v (clamped to 1)", got[1], b[1])
	}
}

func TestBlendEmpty(t *testing.T) {
	a := Profile{{0, 0}}
	if got := Blend(a, Profile{}, 0.5); len(got) != 0 {
		t.Errorf("Blend(a, empty) length = %d, want 0", len(got))
	}
	if got := Blend(Profile{}, a, 0.5); len(got) != 0 {
		t.Errorf("Blend(empty, a) length = %d, want 0", len(got))
	}
}
