package wing

import (
	"math"
	"testing"

	"github.com/chazu/wingloft/pkg/profile"
)

func TestEllipticalChordEndpoints(t *testing.T) {
	if got := EllipticalChord(0, 600, 160, 40); math.Abs(got-160) > 1e-9 {
		t.Errorf("root chord = %g, want 160", got)
	}
	if got := EllipticalChord(600, 600, 160, 40); math.Abs(got-40) > 1e-9 {
		t.Errorf("tip chord = %g, want 40", got)
	}
	// Beyond the tip the fraction clamps, so the chord stays at tip.
	if got := EllipticalChord(900, 600, 160, 40); math.Abs(got-40) > 1e-9 {
		t.Errorf("chord past the tip = %g, want 40", got)
	}
}

func TestEllipticalChordMonotonic(t *testing.T) {
	prev := math.Inf(1)
	for y := 0.0; y <= 600; y += 50 {
		c := EllipticalChord(y, 600, 160, 40)
		if c > prev {
			t.Fatalf("chord increased from %g to %g at y=%g", prev, c, y)
		}
		prev = c
	}
}

func TestEllipticalChordDegenerateSpan(t *testing.T) {
	got := EllipticalChord(10, 0, 160, 40)
	if math.IsNaN(got) || math.IsInf(got, 0) {
		t.Fatalf("degenerate span produced non-finite chord %g", got)
	}
}

func TestSynthesizeDefault(t *testing.T) {
	cfg := DefaultConfig()
	table := Synthesize(cfg)

	if len(table) != 13 {
		t.Fatalf("got %d stations, want 13", len(table))
	}
	if table[0].Span != 0 || table[12].Span != 600 {
		t.Errorf("span endpoints = %g, %g, want 0, 600", table[0].Span, table[12].Span)
	}
	if math.Abs(table[0].Chord-160) > 1e-9 {
		t.Errorf("root chord = %g, want 160", table[0].Chord)
	}
	if math.Abs(table[12].Chord-40) > 1e-9 {
		t.Errorf("tip chord = %g, want 40", table[12].Chord)
	}

	// AlignTE holds the trailing edge at rootOffset+rootChord everywhere.
	for i, s := range table {
		te := s.Offset + s.Chord
		if math.Abs(te-160) > 1e-9 {
			t.Errorf("station %d: trailing edge at %g, want 160", i, te)
		}
	}

	// Profile assignment: root reference up through the transition
	// fraction, inline blends across the window, tip reference after.
	for i, s := range table {
		frac := s.Span / 600
		switch {
		case frac < cfg.Transition:
			if _, ok := s.Profile.(profile.ByID); !ok {
				t.Errorf("station %d (frac %g): profile %T, want root ByID", i, frac, s.Profile)
			}
		case frac < cfg.Transition+cfg.BlendWidth:
			if _, ok := s.Profile.(profile.Inline); !ok {
				t.Errorf("station %d (frac %g): profile %T, want Inline blend", i, frac, s.Profile)
			}
		default:
			if ref, ok := s.Profile.(profile.ByID); !ok || int(ref) != profile.IDSymmetric {
				t.Errorf("station %d (frac %g): profile %v, want tip ByID", i, frac, s.Profile)
			}
		}
	}
}

func TestSynthesizeTwistInterpolation(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RootTwist = 2
	cfg.TipTwist = -3
	table := Synthesize(cfg)

	if math.Abs(table[0].Twist-2) > 1e-9 {
		t.Errorf("root twist = %g, want 2", table[0].Twist)
	}
	last := table[len(table)-1]
	if math.Abs(last.Twist+3) > 1e-9 {
		t.Errorf("tip twist = %g, want -3", last.Twist)
	}
	// Midspan station interpolates linearly.
	mid := table[6] // y = 300, t = 0.5
	if math.Abs(mid.Twist+0.5) > 1e-9 {
		t.Errorf("midspan twist = %g, want -0.5", mid.Twist)
	}
}

func TestSynthesizeSweepAdditive(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Sweep = 0.1
	table := Synthesize(cfg)

	// Sweep shifts every station aft by sweep*y on top of TE alignment.
	for i, s := range table {
		te := s.Offset + s.Chord
		want := 160 + 0.1*s.Span
		if math.Abs(te-want) > 1e-9 {
			t.Errorf("station %d: trailing edge at %g, want %g", i, te, want)
		}
	}
}

func TestSynthesizeOffsetInterpolation(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AlignTE = false
	cfg.RootOffset = 10
	cfg.TipOffset = 50
	table := Synthesize(cfg)

	if math.Abs(table[0].Offset-10) > 1e-9 {
		t.Errorf("root offset = %g, want 10", table[0].Offset)
	}
	last := table[len(table)-1]
	if math.Abs(last.Offset-50) > 1e-9 {
		t.Errorf("tip offset = %g, want 50", last.Offset)
	}
}

func TestSynthesizeHardStepBlend(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BlendWidth = 0
	cfg.Transition = 0.5
	table := Synthesize(cfg)

	for i, s := range table {
		frac := s.Span / 600
		want := profile.ByID(profile.IDClarkLike)
		if frac >= 0.5 {
			want = profile.ByID(profile.IDSymmetric)
		}
		if got, ok := s.Profile.(profile.ByID); !ok || got != want {
			t.Errorf("station %d (frac %g): profile %v, want %v", i, frac, s.Profile, want)
		}
	}
}

func TestSynthesizeBlendMixValues(t *testing.T) {
	cfg := DefaultConfig()
	table := Synthesize(cfg)

	// Station at y=450 sits at mix 0.6 through the blend window; its
	// inline points interpolate the resolved root and tip profiles.
	s := table[9]
	inline, ok := s.Profile.(profile.Inline)
	if !ok {
		t.Fatalf("station 9 profile %T, want Inline", s.Profile)
	}
	root := profile.Resolve(cfg.RootProfile)
	tip := profile.Resolve(cfg.TipProfile)
	const mix = 0.6
	for i, pt := range inline {
		wantY := root[i].Y + (tip[i].Y-root[i].Y)*mix
		if math.Abs(pt.Y-wantY) > 1e-9 {
			t.Fatalf("point %d: y = %g, want %g", i, pt.Y, wantY)
		}
	}
}
