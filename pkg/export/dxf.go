package export

import (
	"fmt"

	"github.com/yofu/dxf"

	"github.com/chazu/wingloft/pkg/loft"
	"github.com/chazu/wingloft/pkg/profile"
	"github.com/chazu/wingloft/pkg/wing"
)

// SavePlanformDXF writes a 2D planform drawing of a station table:
// the leading/trailing edge outline as a closed polyline on PLANFORM,
// and one chord line per station on STATIONS. Drawing axes: x spanwise,
// y chordwise.
func SavePlanformDXF(path string, t wing.Table) error {
	if len(t) == 0 {
		return fmt.Errorf("dxf: empty station table")
	}

	d := dxf.NewDrawing()

	if _, err := d.AddLayer("PLANFORM", dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("dxf: %w", err)
	}
	outline := make([][]float64, 0, 2*len(t))
	for _, st := range t {
		outline = append(outline, []float64{st.Span, st.Offset})
	}
	for i := len(t) - 1; i >= 0; i-- {
		outline = append(outline, []float64{t[i].Span, t[i].Offset + t[i].Chord})
	}
	if _, err := d.LwPolyline(true, outline...); err != nil {
		return fmt.Errorf("dxf: planform outline: %w", err)
	}

	if _, err := d.AddLayer("STATIONS", dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("dxf: %w", err)
	}
	for _, st := range t {
		if _, err := d.Line(st.Span, st.Offset, 0, st.Span, st.Offset+st.Chord, 0); err != nil {
			return fmt.Errorf("dxf: station line at span %g: %w", st.Span, err)
		}
	}

	return d.SaveAs(path)
}

// SaveTemplatesDXF writes each station's placed section outline as a
// closed polyline, laid out in a row with the given pitch between
// template origins. Intended for cutting rib templates.
func SaveTemplatesDXF(path string, t wing.Table, pitch float64) error {
	if len(t) == 0 {
		return fmt.Errorf("dxf: empty station table")
	}

	d := dxf.NewDrawing()
	if _, err := d.AddLayer("TEMPLATES", dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("dxf: %w", err)
	}

	for i, st := range t {
		placed := loft.PlaceOutline(profile.Resolve(st.Profile), st.Chord, st.Twist, st.Offset)
		verts := make([][]float64, len(placed))
		dx := float64(i) * pitch
		for j, p := range placed {
			verts[j] = []float64{p[0] + dx, p[1]}
		}
		if _, err := d.LwPolyline(true, verts...); err != nil {
			return fmt.Errorf("dxf: template %d: %w", i, err)
		}
	}

	return d.SaveAs(path)
}
