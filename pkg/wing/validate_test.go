package wing

import (
	"strings"
	"testing"

	"github.com/chazu/wingloft/pkg/profile"
)

func TestValidateSynthesizedTable(t *testing.T) {
	table := Synthesize(DefaultConfig())
	findings := Validate(table)
	if len(findings) != 0 {
		t.Fatalf("synthesized table produced findings: %v", findings)
	}
}

func TestValidateTooFewStations(t *testing.T) {
	for _, table := range []Table{nil, {{Span: 0, Chord: 100}}} {
		findings := Validate(table)
		if !Blocking(findings) {
			t.Errorf("table with %d stations: want blocking finding", len(table))
		}
		if len(findings) != 1 || findings[0].Station != -1 {
			t.Errorf("want a single table-level finding, got %v", findings)
		}
	}
}

func TestValidateSpanOrdering(t *testing.T) {
	tests := []struct {
		name  string
		spans []float64
	}{
		{"decreasing", []float64{0, 100, 50}},
		{"duplicate", []float64{0, 100, 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := make(Table, len(tt.spans))
			for i, y := range tt.spans {
				table[i] = Station{Span: y, Chord: 100}
			}
			findings := Validate(table)
			if !Blocking(findings) {
				t.Fatalf("spans %v: want blocking finding, got %v", tt.spans, findings)
			}
			if findings[0].Station != 2 {
				t.Errorf("finding station = %d, want 2", findings[0].Station)
			}
		})
	}
}

func TestValidateChord(t *testing.T) {
	table := Table{
		{Span: 0, Chord: -5},
		{Span: 100, Chord: 0},
		{Span: 200, Chord: 50},
	}
	findings := Validate(table)

	var negErr, zeroWarn bool
	for _, f := range findings {
		if f.Station == 0 && f.Severity == SeverityError {
			negErr = true
		}
		if f.Station == 1 && f.Severity == SeverityWarning {
			zeroWarn = true
		}
	}
	if !negErr {
		t.Error("negative chord did not produce an error finding")
	}
	if !zeroWarn {
		t.Error("zero chord did not produce a warning finding")
	}
}

func TestValidateTinyProfile(t *testing.T) {
	table := Table{
		{Span: 0, Chord: 100, Profile: profile.Inline{{X: 0, Y: 0}, {X: 1, Y: 0}}},
		{Span: 100, Chord: 50},
	}
	findings := Validate(table)
	if !Blocking(findings) {
		t.Fatalf("two-point profile: want blocking finding, got %v", findings)
	}
	if findings[0].Station != 0 {
		t.Errorf("finding station = %d, want 0", findings[0].Station)
	}
}

func TestValidatePointCountMismatch(t *testing.T) {
	small := make(profile.Inline, 10)
	for i := range small {
		small[i] = profile.Point{X: float64(i) / 9}
	}
	table := Table{
		{Span: 0, Chord: 100, Profile: profile.ByID(profile.IDClarkLike)},
		{Span: 100, Chord: 50, Profile: small},
	}
	findings := Validate(table)
	if Blocking(findings) {
		t.Fatalf("point count mismatch should warn, not block: %v", findings)
	}
	if len(findings) != 1 || findings[0].Severity != SeverityWarning {
		t.Fatalf("want a single warning, got %v", findings)
	}
}

func TestFindingError(t *testing.T) {
	f := Finding{Station: 3, Message: "negative chord -5", Severity: SeverityError}
	if got := f.Error(); !strings.Contains(got, "station 3") || !strings.Contains(got, "error") {
		t.Errorf("Error() = %q", got)
	}
	tbl := Finding{Station: -1, Message: "empty table", Severity: SeverityError}
	if got := tbl.Error(); strings.Contains(got, "station") {
		t.Errorf("table-level Error() = %q should not name a station", got)
	}
}

func TestBlocking(t *testing.T) {
	if Blocking(nil) {
		t.Error("Blocking(nil) = true")
	}
	warn := []Finding{{Severity: SeverityWarning}}
	if Blocking(warn) {
		t.Error("warnings alone should not block")
	}
	mixed := append(warn, Finding{Severity: SeverityError})
	if !Blocking(mixed) {
		t.Error("error finding should block")
	}
}
