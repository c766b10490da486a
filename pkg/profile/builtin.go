package profile

import (
	"fmt"
	"math"
	"strconv"
)

// Builtin registry identifiers. The shapes are synthesized once at init
// from the NACA 4-digit equations so every builtin has the same point
// count and ordering.
const (
	IDClarkLike = 0 // NACA 2412, the general-purpose default
	IDSymmetric = 1 // NACA 0012
	IDThick     = 2 // NACA 4415, high-lift root section
)

// DefaultID is the registry identifier returned profiles fall back to.
const DefaultID = IDClarkLike

// builtinSamples is the per-surface sample count for builtin profiles.
const builtinSamples = 36

var builtins map[int]Profile

func init() {
	builtins = map[int]Profile{
		IDClarkLike: mustNACA4("2412", builtinSamples),
		IDSymmetric: mustNACA4("0012", builtinSamples),
		IDThick:     mustNACA4("4415", builtinSamples),
	}
}

// Builtin returns the registered profile for id. Unrecognized identifiers
// fall back to the default profile; this is the documented resolution
// policy, not an error.
func Builtin(id int) Profile {
	if p, ok := builtins[id]; ok {
		return p
	}
	return builtins[DefaultID]
}

// Default returns the profile used when a reference cannot be resolved.
func Default() Profile {
	return builtins[DefaultID]
}

// NACA4 synthesizes a closed 4-digit series outline from its designation
// (e.g. "2412"). The outline runs from the leading edge along the upper
// surface to the trailing edge and back along the lower surface, with
// samples points per surface. The closed-trailing-edge thickness
// coefficient is used so the polygon closes exactly.
func NACA4(designation string, samples int) (Profile, error) {
	if len(designation) != 4 {
		return nil, fmt.Errorf("naca4: designation %q: want 4 digits", designation)
	}
	digits, err := strconv.Atoi(designation)
	if err != nil || digits < 0 {
		return nil, fmt.Errorf("naca4: designation %q: want 4 digits", designation)
	}
	m := float64(digits/1000) / 100.0       // max camber
	p := float64(digits/100%10) / 10.0      // camber position
	t := float64(digits%100) / 100.0        // thickness
	if samples < 2 {
		samples = 2
	}

	upper := make([]Point, samples+1)
	lower := make([]Point, samples+1)
	for i := 0; i <= samples; i++ {
		// Cosine spacing concentrates points at the leading edge.
		beta := math.Pi * float64(i) / float64(samples)
		x := 0.5 * (1 - math.Cos(beta))

		yt := 5 * t * (0.2969*math.Sqrt(x) - 0.1260*x - 0.3516*x*x +
			0.2843*x*x*x - 0.1036*x*x*x*x)

		var yc, dyc float64
		if m > 0 && p > 0 {
			if x < p {
				yc = m / (p * p) * (2*p*x - x*x)
				dyc = 2 * m / (p * p) * (p - x)
			} else {
				yc = m / ((1 - p) * (1 - p)) * (1 - 2*p + 2*p*x - x*x)
				dyc = 2 * m / ((1 - p) * (1 - p)) * (p - x)
			}
		}
		theta := math.Atan(dyc)

		upper[i] = Point{X: x - yt*math.Sin(theta), Y: yc + yt*math.Cos(theta)}
		lower[i] = Point{X: x + yt*math.Sin(theta), Y: yc - yt*math.Cos(theta)}
	}

	// Leading edge, upper surface to the trailing edge, lower surface back.
	// The shared endpoints are emitted once.
	out := make(Profile, 0, 2*samples+1)
	out = append(out, upper...)
	for i := samples - 1; i >= 1; i-- {
		out = append(out, lower[i])
	}
	return out, nil
}

func mustNACA4(designation string, samples int) Profile {
	p, err := NACA4(designation, samples)
	if err != nil {
		panic(fmt.Sprintf("profile: builtin %s: %v", designation, err))
	}
	return p
}
