package loft

import (
	"fmt"
	"strings"

	"github.com/chazu/wingloft/pkg/kernel"
	"github.com/chazu/wingloft/pkg/wing"
)

// Options are the global assembly parameters applied after the panels
// are built.
type Options struct {
	Dihedral         float64 // degrees, positive raises the tip
	AngleOfAttack    float64 // degrees, positive raises the leading edge
	Mirror           bool    // build the second half across the centerline
	SectionThickness float64 // spanwise slab thickness, 0 = DefaultSectionThickness
}

// OptionsFrom extracts the assembly options carried by a build config.
func OptionsFrom(cfg wing.Config) Options {
	return Options{
		Dihedral:         cfg.Dihedral,
		AngleOfAttack:    cfg.AngleOfAttack,
		Mirror:           cfg.Mirror,
		SectionThickness: cfg.SectionThickness,
	}
}

// Wing is one assembled build. Panels are kept root-to-tip so callers
// and tests can inspect the construction; Half is the flat half wing
// before any global transform; Solid is the final wing.
type Wing struct {
	Panels []kernel.Solid
	Half   kernel.Solid
	Solid  kernel.Solid
}

// Assemble lofts a station table into a wing solid. The table is consumed
// strictly in increasing span order: one section per station, one hull
// panel per adjacent pair (len(table)-1 panels), unioned into a half
// wing. Dihedral is applied to the half, the mirrored half (when
// requested) gets the identical dihedral and is reflected across the
// centerline, and a single angle-of-attack rotation wraps the whole
// assembly. Evaluation is pure and single-pass.
func Assemble(k kernel.Kernel, table wing.Table, opts Options) (*Wing, error) {
	if findings := wing.Validate(table); wing.Blocking(findings) {
		var msgs []string
		for _, f := range findings {
			if f.Severity == wing.SeverityError {
				msgs = append(msgs, f.Error())
			}
		}
		return nil, fmt.Errorf("loft: invalid station table: %s", strings.Join(msgs, "; "))
	}

	thickness := opts.SectionThickness
	if thickness <= 0 {
		thickness = DefaultSectionThickness
	}

	sections := make([]kernel.Solid, len(table))
	for i, st := range table {
		sections[i] = placeSection(k, st, thickness)
	}

	panels := make([]kernel.Solid, len(table)-1)
	for i := range panels {
		panels[i] = k.Hull(sections[i], sections[i+1])
	}

	half := panels[0]
	for _, p := range panels[1:] {
		half = k.Union(half, p)
	}

	solid := half
	if opts.Dihedral != 0 {
		solid = k.Rotate(solid, -opts.Dihedral, 0, 0)
	}
	if opts.Mirror {
		solid = k.Union(solid, k.MirrorZ(solid))
	}
	if opts.AngleOfAttack != 0 {
		solid = k.Rotate(solid, 0, 0, -opts.AngleOfAttack)
	}

	return &Wing{Panels: panels, Half: half, Solid: solid}, nil
}

// Build synthesizes the station table for a config and assembles it.
func Build(k kernel.Kernel, cfg wing.Config) (*Wing, error) {
	return Assemble(k, wing.Synthesize(cfg), OptionsFrom(cfg))
}
