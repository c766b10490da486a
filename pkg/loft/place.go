// Package loft turns a station table into a solid wing: each station
// becomes a positioned thin cross-section, adjacent sections are hulled
// into panels, and the panels are assembled with dihedral, mirroring and
// angle of attack into the final solid.
//
// Kernel frame: X chordwise (positive aft), Y vertical, Z spanwise.
// Positive twist and angle of attack raise the leading edge; positive
// dihedral raises the tip.
package loft

import (
	"math"

	"github.com/chazu/wingloft/pkg/kernel"
	"github.com/chazu/wingloft/pkg/profile"
	"github.com/chazu/wingloft/pkg/wing"
)

// DefaultSectionThickness is the spanwise slab thickness used when the
// build options leave it unset. Small enough that the hull between two
// sections dominates the panel shape.
const DefaultSectionThickness = 0.5

// PlaceOutline converts a normalized profile into a placed planar
// outline: scaled by chord, wound counterclockwise so positive thickness
// points consistently up regardless of the input winding, rotated by the
// twist angle about the section's own chordwise origin, then shifted by
// the chordwise offset. Twist pivots at the origin before the offset is
// applied.
func PlaceOutline(p profile.Profile, chord, twistDeg, offset float64) [][2]float64 {
	out := make([][2]float64, len(p))
	rot := -twistDeg * math.Pi / 180
	sin, cos := math.Sin(rot), math.Cos(rot)
	for i, pt := range p {
		x := pt.X * chord
		y := pt.Y * chord
		out[i] = [2]float64{x*cos - y*sin + offset, x*sin + y*cos}
	}
	if signedArea(out) < 0 {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}

// placeSection builds one station's thin section solid at its spanwise
// coordinate.
func placeSection(k kernel.Kernel, st wing.Station, thickness float64) kernel.Solid {
	outline := PlaceOutline(profile.Resolve(st.Profile), st.Chord, st.Twist, st.Offset)
	return k.Translate(k.Section(outline, thickness), 0, 0, st.Span)
}

// signedArea is the shoelace area of a closed outline; positive means
// counterclockwise winding.
func signedArea(outline [][2]float64) float64 {
	var sum float64
	n := len(outline)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += outline[i][0]*outline[j][1] - outline[j][0]*outline[i][1]
	}
	return sum / 2
}
