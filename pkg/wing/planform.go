package wing

import (
	"math"

	"github.com/chazu/wingloft/pkg/profile"
)

// EllipticalChord evaluates the elliptical chord distribution at spanwise
// position y: an ellipse with semi-major axis span and semi-minor axis
// (root - tip), riding on a constant tip chord. The radicand is guarded
// against going negative from floating error, and a degenerate span is
// substituted with a safe divisor so the result stays finite.
func EllipticalChord(y, span, root, tip float64) float64 {
	denom := span
	if denom <= 0 {
		denom = 1
	}
	t := clamp01(y / denom)
	return tip + (root-tip)*math.Sqrt(math.Max(0, 1-t*t))
}

// profileMix returns the root-to-tip blend fraction at span fraction t.
// A zero-width blend window degenerates to a hard step at the transition
// fraction; otherwise the mix ramps linearly across [transition,
// transition+width], clamped to [0,1].
func profileMix(t, transition, width float64) float64 {
	if transition+width <= transition {
		if t >= transition {
			return 1
		}
		return 0
	}
	return clamp01((t - transition) / width)
}

// Synthesize derives a full station table from aerodynamic-style planform
// parameters. Stations are emitted in increasing span order, one per
// position from SpanPositions. All fraction parameters are clamped, not
// rejected; synthesis has no failure path.
func Synthesize(cfg Config) Table {
	positions := SpanPositions(cfg.Span, cfg.Stations, cfg.MaxSegment)

	denom := cfg.Span
	if denom <= 0 {
		denom = 1
	}

	table := make(Table, 0, len(positions))
	for _, y := range positions {
		t := clamp01(y / denom)

		chord := EllipticalChord(y, cfg.Span, cfg.RootChord, cfg.TipChord)
		twist := cfg.RootTwist + (cfg.TipTwist-cfg.RootTwist)*t

		var ref profile.Ref
		switch mix := profileMix(t, cfg.Transition, cfg.BlendWidth); {
		case mix <= 0:
			ref = cfg.RootProfile
		case mix >= 1:
			ref = cfg.TipProfile
		default:
			ref = profile.Inline(profile.Blend(
				profile.Resolve(cfg.RootProfile),
				profile.Resolve(cfg.TipProfile),
				mix,
			))
		}

		var offset float64
		if cfg.AlignTE {
			// Hold the trailing edge at rootOffset+rootChord across all stations.
			offset = (cfg.RootOffset + cfg.RootChord) - chord
		} else {
			offset = cfg.RootOffset + (cfg.TipOffset-cfg.RootOffset)*t
		}
		offset += cfg.Sweep * y

		table = append(table, Station{
			Span:    y,
			Chord:   chord,
			Twist:   twist,
			Offset:  offset,
			Profile: ref,
		})
	}
	return table
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
