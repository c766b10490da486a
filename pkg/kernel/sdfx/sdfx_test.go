package sdfx

import (
	"math"
	"testing"

	"github.com/chazu/wingloft/pkg/kernel"
)

// square returns a counterclockwise unit-square outline scaled by size.
func square(size float64) [][2]float64 {
	return [][2]float64{{0, 0}, {size, 0}, {size, size}, {0, size}}
}

func approxBox(t *testing.T, s kernel.Solid, wantMin, wantMax [3]float64, tol float64) {
	t.Helper()
	min, max := s.BoundingBox()
	for i := 0; i < 3; i++ {
		if math.Abs(min[i]-wantMin[i]) > tol {
			t.Errorf("min[%d] = %g, want %g", i, min[i], wantMin[i])
		}
		if math.Abs(max[i]-wantMax[i]) > tol {
			t.Errorf("max[%d] = %g, want %g", i, max[i], wantMax[i])
		}
	}
}

func TestSectionBoundingBox(t *testing.T) {
	k := New()
	s := k.Section(square(10), 0.5)
	approxBox(t, s,
		[3]float64{0, 0, -0.25},
		[3]float64{10, 10, 0.25}, 1e-6)
}

func TestSectionClockwiseOutline(t *testing.T) {
	k := New()
	// Reversed winding must still produce the same solid.
	cw := [][2]float64{{0, 0}, {0, 10}, {10, 10}, {10, 0}}
	s := k.Section(cw, 0.5)
	approxBox(t, s,
		[3]float64{0, 0, -0.25},
		[3]float64{10, 10, 0.25}, 1e-6)
}

func TestTranslate(t *testing.T) {
	k := New()
	s := k.Translate(k.Section(square(10), 0.5), 5, -5, 100)
	approxBox(t, s,
		[3]float64{5, -5, 99.75},
		[3]float64{15, 5, 100.25}, 1e-6)
}

func TestHullSpansSections(t *testing.T) {
	k := New()
	a := k.Translate(k.Section(square(10), 0.5), 0, 0, 0)
	b := k.Translate(k.Section(square(4), 0.5), 0, 0, 60)

	h := k.Hull(a, b)
	min, max := h.BoundingBox()
	if min[2] > -0.2 || max[2] < 60.2 {
		t.Errorf("hull z range [%g, %g], want to cover both slabs", min[2], max[2])
	}
	if max[0] < 10-1e-6 {
		t.Errorf("hull max x = %g, want >= 10 (root section extent)", max[0])
	}
}

func TestHullOrderIndependent(t *testing.T) {
	k := New()
	a := k.Section(square(10), 0.5)
	b := k.Translate(k.Section(square(4), 0.5), 0, 0, 60)

	h1 := k.Hull(a, b)
	h2 := k.Hull(b, a)
	min1, max1 := h1.BoundingBox()
	min2, max2 := h2.BoundingBox()
	for i := 0; i < 3; i++ {
		if math.Abs(min1[i]-min2[i]) > 1e-6 || math.Abs(max1[i]-max2[i]) > 1e-6 {
			t.Fatalf("hull depends on argument order: %v/%v vs %v/%v", min1, max1, min2, max2)
		}
	}
}

func TestHullRejectsNonSections(t *testing.T) {
	k := New()
	a := k.Section(square(10), 0.5)
	b := k.Translate(k.Section(square(4), 0.5), 0, 0, 60)
	rotated := k.Rotate(a, 0, 0, 45) // rotation discards the outline

	defer func() {
		if recover() == nil {
			t.Error("Hull of a non-section solid did not panic")
		}
	}()
	k.Hull(rotated, b)
}

func TestUnion(t *testing.T) {
	k := New()
	a := k.Section(square(10), 0.5)
	b := k.Translate(k.Section(square(10), 0.5), 20, 0, 0)
	u := k.Union(a, b)
	approxBox(t, u,
		[3]float64{0, 0, -0.25},
		[3]float64{30, 10, 0.25}, 1e-6)
}

func TestRotateAboutZ(t *testing.T) {
	k := New()
	s := k.Rotate(k.Section(square(10), 0.5), 0, 0, 90)
	min, max := s.BoundingBox()
	// The square swings into the second quadrant.
	if math.Abs(min[0]+10) > 1e-6 || math.Abs(max[1]-10) > 1e-6 {
		t.Errorf("rotated box = [%v, %v]", min, max)
	}
}

func TestMirrorZ(t *testing.T) {
	k := New()
	s := k.Translate(k.Section(square(10), 0.5), 0, 0, 100)
	m := k.MirrorZ(s)
	min, max := m.BoundingBox()
	if math.Abs(min[2]+100.25) > 1e-6 || math.Abs(max[2]+99.75) > 1e-6 {
		t.Errorf("mirrored z range [%g, %g], want [-100.25, -99.75]", min[2], max[2])
	}
}

func TestToMesh(t *testing.T) {
	k := New()
	k.Cells = 40 // keep the test fast

	s := k.Section(square(10), 2)
	m, err := k.ToMesh(s)
	if err != nil {
		t.Fatalf("ToMesh: %v", err)
	}
	if m.IsEmpty() {
		t.Fatal("mesh is empty")
	}
	if m.TriangleCount() < 4 {
		t.Errorf("TriangleCount = %d, implausibly low", m.TriangleCount())
	}
	if len(m.Normals) != len(m.Vertices) {
		t.Errorf("normals length %d != vertices length %d", len(m.Normals), len(m.Vertices))
	}
}
