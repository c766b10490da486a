package wing

import (
	"fmt"

	"github.com/chazu/wingloft/pkg/profile"
)

// Severity indicates whether a validation finding blocks a build or is
// merely advisory.
type Severity int

const (
	SeverityError   Severity = iota // blocks the build
	SeverityWarning                 // advisory
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// Finding describes a single validation result. Station is the index of
// the offending station, or -1 for table-level findings.
type Finding struct {
	Station  int
	Message  string
	Severity Severity
}

func (f Finding) Error() string {
	if f.Station < 0 {
		return fmt.Sprintf("[%s] %s", f.Severity, f.Message)
	}
	return fmt.Sprintf("[%s] station %d: %s", f.Severity, f.Station, f.Message)
}

// Validate checks a station table against the invariants the lofting
// stage assumes. It is read-only and never mutates the table. Errors mean
// the table cannot be lofted; warnings flag degenerate-but-buildable
// geometry. Synthesized tables always pass; this primarily protects
// hand-authored tables.
func Validate(t Table) []Finding {
	var findings []Finding

	if len(t) < 2 {
		findings = append(findings, Finding{
			Station:  -1,
			Message:  fmt.Sprintf("table has %d stations, need at least 2 to form a panel", len(t)),
			Severity: SeverityError,
		})
		return findings
	}

	for i, s := range t {
		if i > 0 && s.Span <= t[i-1].Span {
			findings = append(findings, Finding{
				Station:  i,
				Message:  fmt.Sprintf("span %g does not increase past previous station %g", s.Span, t[i-1].Span),
				Severity: SeverityError,
			})
		}
		if s.Chord < 0 {
			findings = append(findings, Finding{
				Station:  i,
				Message:  fmt.Sprintf("negative chord %g", s.Chord),
				Severity: SeverityError,
			})
		} else if s.Chord == 0 {
			findings = append(findings, Finding{
				Station:  i,
				Message:  "zero chord produces a degenerate section",
				Severity: SeverityWarning,
			})
		}
		if len(profile.Resolve(s.Profile)) < 3 {
			findings = append(findings, Finding{
				Station:  i,
				Message:  "profile resolves to fewer than 3 points",
				Severity: SeverityError,
			})
		}
	}

	// Dissimilar point counts between adjacent stations still hull, but
	// the panel shape may be further from a ruled loft than expected.
	for i := 1; i < len(t); i++ {
		na := len(profile.Resolve(t[i-1].Profile))
		nb := len(profile.Resolve(t[i].Profile))
		if na >= 3 && nb >= 3 && na != nb {
			findings = append(findings, Finding{
				Station:  i,
				Message:  fmt.Sprintf("profile point count %d differs from previous station's %d", nb, na),
				Severity: SeverityWarning,
			})
		}
	}

	return findings
}

// Blocking reports whether any finding is an error.
func Blocking(findings []Finding) bool {
	for _, f := range findings {
		if f.Severity == SeverityError {
			return true
		}
	}
	return false
}
