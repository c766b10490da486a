package engine

import (
	"fmt"
	"strings"

	"github.com/chazu/wingloft/pkg/loft"
	"github.com/chazu/wingloft/pkg/profile"
	"github.com/chazu/wingloft/pkg/wing"
	zygo "github.com/glycerine/zygomys/zygo"
)

// ---------------------------------------------------------------------------
// Source preprocessing
// ---------------------------------------------------------------------------

// preprocessSource transforms wing-script source before passing it to
// zygomys:
//
//  1. Keyword conversion: :keyword -> "__kw_keyword" (string literal),
//     avoiding global symbol registration for keyword names.
//
//  2. Kebab-case to underscore: root-chord -> root_chord. zygomys reads
//     a hyphen as subtraction, so kebab identifiers are rewritten
//     outside of strings and comments. Keyword names keep their hyphens
//     because they are consumed whole by step 1.
//
//  3. Lisp ; line comments become zygomys // comments.
func preprocessSource(source string) string {
	result := make([]byte, 0, len(source)+len(source)/4)
	b := []byte(source)
	i := 0
	for i < len(b) {
		// Pass double-quoted string literals through untouched.
		if b[i] == '"' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '"' {
				if b[i] == '\\' && i+1 < len(b) {
					result = append(result, b[i], b[i+1])
					i += 2
					continue
				}
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Same for backtick-quoted literals.
		if b[i] == '`' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '`' {
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		if b[i] == ';' {
			result = append(result, '/', '/')
			i++
			for i < len(b) && b[i] == ';' {
				i++
			}
			for i < len(b) && b[i] != '\n' {
				result = append(result, b[i])
				i++
			}
			continue
		}
		if b[i] == ':' && i+1 < len(b) {
			// Preserve := (assignment operator).
			if b[i+1] == '=' {
				result = append(result, b[i], b[i+1])
				i += 2
				continue
			}
			if isLetter(b[i+1]) {
				j := i + 1
				for j < len(b) && isKWChar(b[j]) {
					j++
				}
				result = append(result, '"')
				result = append(result, []byte(kwPrefix)...)
				result = append(result, b[i+1:j]...)
				result = append(result, '"')
				i = j
				continue
			}
		}
		// Hyphen between identifier characters is kebab-case, not minus.
		if b[i] == '-' && i > 0 && i+1 < len(b) &&
			isIdentChar(b[i-1]) && isLetter(b[i+1]) {
			result = append(result, '_')
			i++
			continue
		}
		result = append(result, b[i])
		i++
	}
	return string(result)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isKWChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '-' || c == '_'
}

func isIdentChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}

// ---------------------------------------------------------------------------
// Custom Sexp types for passing wing values through the environment
// ---------------------------------------------------------------------------

// sexpProfile wraps a profile.Ref so it can be passed between builtins.
type sexpProfile struct {
	ref  profile.Ref
	name string // human-readable name for error messages
}

func (p *sexpProfile) SexpString(ps *zygo.PrintState) string {
	if p.name != "" {
		return fmt.Sprintf("(profile %q)", p.name)
	}
	if id, ok := p.ref.(profile.ByID); ok {
		return fmt.Sprintf("(profile %d)", int(id))
	}
	return fmt.Sprintf("(profile inline %d points)", len(profile.Resolve(p.ref)))
}
func (p *sexpProfile) Type() *zygo.RegisteredType { return nil }

// sexpStation wraps one wing.Station.
type sexpStation struct {
	st wing.Station
}

func (s *sexpStation) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(station :span %g :chord %g)", s.st.Span, s.st.Chord)
}
func (s *sexpStation) Type() *zygo.RegisteredType { return nil }

// sexpTable wraps a wing.Table.
type sexpTable struct {
	tbl wing.Table
}

func (t *sexpTable) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(table %d stations)", len(t.tbl))
}
func (t *sexpTable) Type() *zygo.RegisteredType { return nil }

// ---------------------------------------------------------------------------
// Keyword argument parsing
// ---------------------------------------------------------------------------

// kwPrefix is the marker prepended to keyword names by preprocessSource.
const kwPrefix = "__kw_"

// isKW checks if a Sexp is a preprocessed keyword string.
// Returns the keyword name (without prefix) and true if it is.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", false
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], true
	}
	return "", false
}

// kwArgs holds the result of parsing a mixed positional+keyword argument list.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

// parseArgs separates args into keyword and positional arguments.
func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	i := 0
	for i < len(args) {
		name, ok := isKW(args[i])
		if ok {
			if i+1 < len(args) {
				result.kw[name] = args[i+1]
				i += 2
			} else {
				// Keyword at end with no value - treat as flag with nil.
				result.kw[name] = zygo.SexpNull
				i++
			}
		} else {
			result.positional = append(result.positional, args[i])
			i++
		}
	}
	return result
}

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

// toFloat64 extracts a float64 from a Sexp (SexpInt or SexpFloat).
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

// toInt extracts an int from a Sexp.
func toInt(s zygo.Sexp) (int, error) {
	if v, ok := s.(*zygo.SexpInt); ok {
		return int(v.Val), nil
	}
	return 0, fmt.Errorf("expected integer, got %T (%s)", s, s.SexpString(nil))
}

// toString extracts a string from a Sexp.
func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %T (%s)", s, s.SexpString(nil))
}

// toBool extracts a bool from a Sexp.
func toBool(s zygo.Sexp) (bool, error) {
	if b, ok := s.(*zygo.SexpBool); ok {
		return b.Val, nil
	}
	return false, fmt.Errorf("expected bool, got %T (%s)", s, s.SexpString(nil))
}

// toProfileRef extracts a profile.Ref from a sexpProfile or a bare
// integer (builtin id shorthand).
func toProfileRef(s zygo.Sexp) (profile.Ref, error) {
	switch v := s.(type) {
	case *sexpProfile:
		return v.ref, nil
	case *zygo.SexpInt:
		return profile.ByID(int(v.Val)), nil
	}
	return nil, fmt.Errorf("expected profile, got %T (%s)", s, s.SexpString(nil))
}

// sexpListToSlice converts a SexpPair (Lisp list) or SexpArray to a Go slice.
func sexpListToSlice(s zygo.Sexp) ([]zygo.Sexp, error) {
	switch v := s.(type) {
	case *zygo.SexpPair:
		return zygo.ListToArray(v)
	case *zygo.SexpArray:
		return v.Val, nil
	case *zygo.SexpSentinel:
		if v == zygo.SexpNull {
			return nil, nil
		}
	}
	return nil, fmt.Errorf("expected list or array, got %T", s)
}

// floatKW reads an optional float keyword into dst.
func floatKW(pa kwArgs, name string, dst *float64) error {
	v, ok := pa.kw[name]
	if !ok {
		return nil
	}
	f, err := toFloat64(v)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	*dst = f
	return nil
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// registerBuiltins installs the wing-script builtins into a zygomys
// environment. The builtins populate the provided Design during
// evaluation. Source must be preprocessed with preprocessSource() first
// so :keyword tokens arrive as recognizable string literals.
func registerBuiltins(env *zygo.Zlisp, d *Design) {

	// Named profiles are scoped to one evaluation.
	named := make(map[string]profile.Ref)

	// -----------------------------------------------------------------------
	// (naca "2412" :samples 40)
	// -----------------------------------------------------------------------
	env.AddFunction("naca", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) < 1 {
			return zygo.SexpNull, fmt.Errorf("naca requires a designation string")
		}
		designation, err := toString(pa.positional[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("naca: designation: %w", err)
		}
		samples := 36
		if v, ok := pa.kw["samples"]; ok {
			samples, err = toInt(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("naca: samples: %w", err)
			}
		}
		p, err := profile.NACA4(designation, samples)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("naca: %w", err)
		}
		return &sexpProfile{ref: profile.Inline(p), name: "naca " + designation}, nil
	})

	// -----------------------------------------------------------------------
	// (points 0 0  0.3 0.08  1 0 ...)   flat x y pairs
	// (points [0 0] [0.3 0.08] [1 0])   or nested pairs
	// -----------------------------------------------------------------------
	env.AddFunction("points", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		var p profile.Profile

		if len(args) > 0 {
			if _, isNum := args[0].(*zygo.SexpInt); !isNum {
				if _, isNum := args[0].(*zygo.SexpFloat); !isNum {
					// Nested form: each argument is a 2-element pair.
					for i, arg := range args {
						pair, err := sexpListToSlice(arg)
						if err != nil || len(pair) < 2 {
							return zygo.SexpNull, fmt.Errorf("points: entry %d: expected [x y] pair", i)
						}
						x, err := toFloat64(pair[0])
						if err != nil {
							return zygo.SexpNull, fmt.Errorf("points: entry %d: %w", i, err)
						}
						y, err := toFloat64(pair[1])
						if err != nil {
							return zygo.SexpNull, fmt.Errorf("points: entry %d: %w", i, err)
						}
						p = append(p, profile.Point{X: x, Y: y})
					}
					return &sexpProfile{ref: profile.Inline(p)}, nil
				}
			}
		}

		// Flat form: an even run of numbers.
		if len(args)%2 != 0 {
			return zygo.SexpNull, fmt.Errorf("points: odd number of coordinates (%d)", len(args))
		}
		for i := 0; i < len(args); i += 2 {
			x, err := toFloat64(args[i])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("points: coordinate %d: %w", i, err)
			}
			y, err := toFloat64(args[i+1])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("points: coordinate %d: %w", i+1, err)
			}
			p = append(p, profile.Point{X: x, Y: y})
		}
		return &sexpProfile{ref: profile.Inline(p)}, nil
	})

	// -----------------------------------------------------------------------
	// (defprofile "clark-y" (points ...))
	// -----------------------------------------------------------------------
	env.AddFunction("defprofile", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) < 2 {
			return zygo.SexpNull, fmt.Errorf("defprofile requires a name and a profile expression")
		}
		profName, err := toString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("defprofile: name: %w", err)
		}
		ref, err := toProfileRef(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("defprofile: %w", err)
		}
		named[profName] = ref
		return &sexpProfile{ref: ref, name: profName}, nil
	})

	// -----------------------------------------------------------------------
	// (profile 2)          builtin registry id
	// (profile "clark-y")  previously defined name
	// -----------------------------------------------------------------------
	env.AddFunction("profile", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) < 1 {
			return zygo.SexpNull, fmt.Errorf("profile requires an id or name argument")
		}
		switch v := args[0].(type) {
		case *zygo.SexpInt:
			return &sexpProfile{ref: profile.ByID(int(v.Val))}, nil
		case *zygo.SexpStr:
			ref, ok := named[v.S]
			if !ok {
				return zygo.SexpNull, fmt.Errorf("profile: no profile named %q", v.S)
			}
			return &sexpProfile{ref: ref, name: v.S}, nil
		}
		return zygo.SexpNull, fmt.Errorf("profile: expected id or name, got %T", args[0])
	})

	// -----------------------------------------------------------------------
	// (station :span 425 :chord 140 :twist -1 :offset 12.5 :profile p)
	// -----------------------------------------------------------------------
	env.AddFunction("station", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		st := wing.Station{}

		if err := floatKW(pa, "span", &st.Span); err != nil {
			return zygo.SexpNull, fmt.Errorf("station: %w", err)
		}
		if err := floatKW(pa, "chord", &st.Chord); err != nil {
			return zygo.SexpNull, fmt.Errorf("station: %w", err)
		}
		if err := floatKW(pa, "twist", &st.Twist); err != nil {
			return zygo.SexpNull, fmt.Errorf("station: %w", err)
		}
		if err := floatKW(pa, "offset", &st.Offset); err != nil {
			return zygo.SexpNull, fmt.Errorf("station: %w", err)
		}
		if v, ok := pa.kw["profile"]; ok {
			ref, err := toProfileRef(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("station: profile: %w", err)
			}
			st.Profile = ref
		}

		return &sexpStation{st: st}, nil
	})

	// -----------------------------------------------------------------------
	// (stations s1 s2 s3 ...)   hand-authored table, given order is kept
	// -----------------------------------------------------------------------
	env.AddFunction("stations", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		tbl := make(wing.Table, 0, len(args))
		for i, arg := range args {
			s, ok := arg.(*sexpStation)
			if !ok {
				return zygo.SexpNull, fmt.Errorf("stations: argument %d: expected station, got %T (%s)",
					i, arg, arg.SexpString(nil))
			}
			tbl = append(tbl, s.st)
		}
		return &sexpTable{tbl: tbl}, nil
	})

	// -----------------------------------------------------------------------
	// (planform :span 600 :root-chord 160 :tip-chord 40 :stations 13
	//           :root-twist 0 :tip-twist -2 :sweep 0.05 :align-te true
	//           :root-profile (naca "2412") :tip-profile (naca "0012")
	//           :transition 0.6 :blend-width 0.25 :max-segment 25)
	//
	// Unspecified keys keep the documented defaults from
	// wing.DefaultConfig.
	// -----------------------------------------------------------------------
	env.AddFunction("planform", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		cfg := wing.DefaultConfig()

		floats := map[string]*float64{
			"span":        &cfg.Span,
			"root-chord":  &cfg.RootChord,
			"tip-chord":   &cfg.TipChord,
			"root-twist":  &cfg.RootTwist,
			"tip-twist":   &cfg.TipTwist,
			"root-offset": &cfg.RootOffset,
			"tip-offset":  &cfg.TipOffset,
			"sweep":       &cfg.Sweep,
			"transition":  &cfg.Transition,
			"blend-width": &cfg.BlendWidth,
			"max-segment": &cfg.MaxSegment,
		}
		for key, dst := range floats {
			if err := floatKW(pa, key, dst); err != nil {
				return zygo.SexpNull, fmt.Errorf("planform: %w", err)
			}
		}
		if v, ok := pa.kw["stations"]; ok {
			n, err := toInt(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("planform: stations: %w", err)
			}
			cfg.Stations = n
		}
		if v, ok := pa.kw["align-te"]; ok {
			b, err := toBool(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("planform: align-te: %w", err)
			}
			cfg.AlignTE = b
		}
		if v, ok := pa.kw["root-profile"]; ok {
			ref, err := toProfileRef(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("planform: root-profile: %w", err)
			}
			cfg.RootProfile = ref
		}
		if v, ok := pa.kw["tip-profile"]; ok {
			ref, err := toProfileRef(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("planform: tip-profile: %w", err)
			}
			cfg.TipProfile = ref
		}

		return &sexpTable{tbl: wing.Synthesize(cfg)}, nil
	})

	// -----------------------------------------------------------------------
	// (wing "main" tbl :dihedral 3 :aoa 2 :mirror true :thickness 0.5)
	// -----------------------------------------------------------------------
	env.AddFunction("wing", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) < 2 {
			return zygo.SexpNull, fmt.Errorf("wing requires a name and a station table")
		}
		wingName, err := toString(pa.positional[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("wing: name: %w", err)
		}
		tbl, ok := pa.positional[1].(*sexpTable)
		if !ok {
			return zygo.SexpNull, fmt.Errorf("wing: expected station table, got %T (%s)",
				pa.positional[1], pa.positional[1].SexpString(nil))
		}
		if d.Lookup(wingName) != nil {
			return zygo.SexpNull, fmt.Errorf("wing: %q already defined", wingName)
		}

		opts := loft.Options{}
		if err := floatKW(pa, "dihedral", &opts.Dihedral); err != nil {
			return zygo.SexpNull, fmt.Errorf("wing: %w", err)
		}
		if err := floatKW(pa, "aoa", &opts.AngleOfAttack); err != nil {
			return zygo.SexpNull, fmt.Errorf("wing: %w", err)
		}
		if err := floatKW(pa, "thickness", &opts.SectionThickness); err != nil {
			return zygo.SexpNull, fmt.Errorf("wing: %w", err)
		}
		if v, ok := pa.kw["mirror"]; ok {
			b, err := toBool(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("wing: mirror: %w", err)
			}
			opts.Mirror = b
		}

		d.Builds = append(d.Builds, Build{Name: wingName, Table: tbl.tbl, Opts: opts})
		return &sexpTable{tbl: tbl.tbl}, nil
	})
}
