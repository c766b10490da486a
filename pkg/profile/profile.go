// Package profile defines normalized 2D airfoil outlines and the
// reference/blend operations the planform stage is built on. A Profile is
// chord-normalized (chord length 1) and walked in a fixed order from the
// leading edge over one surface to the trailing edge and back.
package profile

// Point is one 2D outline coordinate, chordwise x and thickness y.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Profile is an ordered airfoil outline, unit chord.
type Profile []Point

// Ref is a reference to a profile: either a builtin identifier (ByID) or
// a literal point list (Inline). The two forms are interchangeable
// wherever a Ref is accepted.
type Ref interface {
	ref() // marker method restricting implementations to this package
}

// ByID references a builtin profile by registry identifier.
type ByID int

func (ByID) ref() {}

// Inline embeds a literal profile value directly.
type Inline Profile

func (Inline) ref() {}

// Resolve maps a Ref to a concrete Profile. Resolution is total: an
// Inline value is returned unchanged, a ByID value is looked up in the
// builtin registry, and anything unresolvable (including a nil Ref)
// falls back to the default profile rather than failing.
func Resolve(r Ref) Profile {
	switch v := r.(type) {
	case Inline:
		return Profile(v)
	case ByID:
		return Builtin(int(v))
	}
	return Default()
}

// Blend linearly interpolates two profiles point by point. The result has
// min(len(a), len(b)) points; profiles of differing lengths are silently
// truncated to the shorter one. t is clamped to [0,1], never rejected.
// If either input is empty the result is empty.
func Blend(a, b Profile, t float64) Profile {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	if n == 0 {
		return Profile{}
	}
	t = clamp01(t)
	out := make(Profile, n)
	for i := 0; i < n; i++ {
		out[i] = Point{
			X: a[i].X + (b[i].X-a[i].X)*t,
			Y: a[i].Y + (b[i].Y-a[i].Y)*t,
		}
	}
	return out
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
