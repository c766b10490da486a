// Package wing defines the station table data model and the planform
// computations that produce it: spanwise station placement with optional
// adaptive refinement, and elliptical planform synthesis with twist,
// sweep, trailing-edge alignment and profile blending.
package wing

import "github.com/chazu/wingloft/pkg/profile"

// Station is one spanwise cross-section definition. Stations are
// immutable once placed in a Table.
type Station struct {
	Span    float64     `json:"span"`    // spanwise position, strictly increasing across a table
	Chord   float64     `json:"chord"`   // chord length, >= 0
	Twist   float64     `json:"twist"`   // twist angle in degrees about the spanwise axis
	Offset  float64     `json:"offset"`  // chordwise shift of the leading edge
	Profile profile.Ref `json:"-"`       // section outline reference
}

// Table is the ordered station sequence consumed by the lofting stage.
// It is constructed once per build, either by hand or by Synthesize, and
// read-only thereafter.
type Table []Station

// Config is the full parameter record for one build. It replaces any
// notion of global default parameter blocks: every build carries its own
// Config so independent builds never share state.
type Config struct {
	Span       float64 // span of one half wing
	RootChord  float64
	TipChord   float64
	Stations   int     // requested station count, coerced to >= 2
	RootTwist  float64 // degrees
	TipTwist   float64 // degrees
	RootOffset float64 // chordwise offset at the root
	TipOffset  float64 // chordwise offset at the tip, ignored when AlignTE is set
	AlignTE    bool    // keep the trailing edge at a fixed chordwise coordinate
	Sweep      float64 // additional chordwise offset per unit span, additive with AlignTE

	RootProfile profile.Ref
	TipProfile  profile.Ref
	Transition  float64 // span fraction where the root-to-tip profile blend begins
	BlendWidth  float64 // span fraction over which the blend ramps, 0 = hard step
	MaxSegment  float64 // maximum spanwise panel length, <= 0 = no refinement

	Dihedral         float64 // degrees, rotation about the chordwise axis
	AngleOfAttack    float64 // degrees, rotation of the whole wing about the span axis
	Mirror           bool    // build both halves
	SectionThickness float64 // spanwise thickness of each section slab
}

// DefaultConfig returns the documented build defaults: a two-sided
// elliptical wing blending from a cambered root to a symmetric tip.
func DefaultConfig() Config {
	return Config{
		Span:             600,
		RootChord:        160,
		TipChord:         40,
		Stations:         13,
		RootProfile:      profile.ByID(profile.IDClarkLike),
		TipProfile:       profile.ByID(profile.IDSymmetric),
		Transition:       0.6,
		BlendWidth:       0.25,
		AlignTE:          true,
		Dihedral:         3,
		Mirror:           true,
		SectionThickness: 0.5,
	}
}
