package profile

import (
	"bytes"
	"strings"
	"testing"
)

func TestParsePoints(t *testing.T) {
	src := `# clark-like section
1.0 0.0
0.5, 0.08
...
0.0 0.0

0.5 -0.02
`
	p, err := ParsePoints(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParsePoints: %v", err)
	}
	want := Profile{
		{X: 1, Y: 0},
		{X: 0.5, Y: 0.08},
		{X: 0, Y: 0},
		{X: 0.5, Y: -0.02},
	}
	if len(p) != len(want) {
		t.Fatalf("got %d points, want %d", len(p), len(want))
	}
	for i := range want {
		if !approxEqual(p[i], want[i]) {
			t.Errorf("point %d = %v, want %v", i, p[i], want[i])
		}
	}
}

func TestParsePointsSkipsShortLines(t *testing.T) {
	src := "selig\n1.0 0.0\n0.0 0.0\n"
	p, err := ParsePoints(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParsePoints: %v", err)
	}
	if len(p) != 2 {
		t.Fatalf("got %d points, want 2", len(p))
	}
}

func TestParsePointsBadNumber(t *testing.T) {
	src := "1.0 0.0\n0.5 oops\n"
	_, err := ParsePoints(strings.NewReader(src))
	if err == nil {
		t.Fatal("ParsePoints = nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error %q does not name the failing line", err)
	}
}

func TestParsePointsEmpty(t *testing.T) {
	p, err := ParsePoints(strings.NewReader("# only comments\n\n"))
	if err != nil {
		t.Fatalf("ParsePoints: %v", err)
	}
	if len(p) != 0 {
		t.Errorf("got %d points from comment-only input, want 0", len(p))
	}
}

func TestWriteScriptRoundTrip(t *testing.T) {
	p := Profile{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0.5, Y: 0.1}}
	var buf bytes.Buffer
	if err := WriteScript(&buf, "clark", p); err != nil {
		t.Fatalf("WriteScript: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, `(defprofile "clark" (points`) {
		t.Errorf("output does not open a defprofile form:\n%s", out)
	}
	if !strings.HasSuffix(strings.TrimSpace(out), "))") {
		t.Errorf("output does not close the form:\n%s", out)
	}
	// The emitted coordinate lines parse back to the same profile.
	_, body, _ := strings.Cut(out, "\n")
	got, err := ParsePoints(strings.NewReader(body))
	if err != nil {
		t.Fatalf("ParsePoints(WriteScript output): %v", err)
	}
	if len(got) != len(p) {
		t.Fatalf("round trip got %d points, want %d", len(got), len(p))
	}
	for i := range p {
		if !approxEqual(got[i], p[i]) {
			t.Errorf("point %d = %v, want %v", i, got[i], p[i])
		}
	}
}
