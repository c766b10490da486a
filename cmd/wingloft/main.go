// Command wingloft builds solid wing meshes from airfoil station tables.
// A wing is defined either by a wing-script evaluated by the engine or
// directly from planform flags, lofted through a geometry kernel, and
// written as binary STL (plus optional DXF planform/template drawings).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/chazu/wingloft/pkg/engine"
	"github.com/chazu/wingloft/pkg/export"
	"github.com/chazu/wingloft/pkg/kernel"
	"github.com/chazu/wingloft/pkg/kernel/manifold"
	"github.com/chazu/wingloft/pkg/kernel/sdfx"
	"github.com/chazu/wingloft/pkg/loft"
	"github.com/chazu/wingloft/pkg/profile"
	"github.com/chazu/wingloft/pkg/wing"
)

func main() {
	var (
		script    = flag.String("script", "", "wing-script file to evaluate")
		out       = flag.String("o", "wing.stl", "output STL path")
		dxfOut    = flag.String("dxf", "", "optional planform DXF path")
		templates = flag.String("templates", "", "optional rib template DXF path")
		cells     = flag.Int("cells", 200, "marching cubes resolution (sdfx backend)")
		backend   = flag.String("backend", "sdfx", "geometry backend: sdfx or manifold")

		convert     = flag.String("convert", "", "convert a coordinate text file to a wing-script profile and exit")
		convertName = flag.String("name", "profile", "profile name for -convert output")

		span       = flag.Float64("span", 600, "half-wing span")
		rootChord  = flag.Float64("root-chord", 160, "root chord")
		tipChord   = flag.Float64("tip-chord", 40, "tip chord")
		stations   = flag.Int("stations", 13, "station count")
		rootTwist  = flag.Float64("root-twist", 0, "root twist (degrees)")
		tipTwist   = flag.Float64("tip-twist", 0, "tip twist (degrees)")
		sweep      = flag.Float64("sweep", 0, "chordwise sweep per unit span")
		alignTE    = flag.Bool("align-te", true, "keep the trailing edge aligned")
		transition = flag.Float64("transition", 0.6, "profile transition span fraction")
		blendWidth = flag.Float64("blend-width", 0.25, "profile blend width span fraction")
		maxSegment = flag.Float64("max-segment", 0, "maximum spanwise panel length (0 = off)")
		dihedral   = flag.Float64("dihedral", 3, "dihedral (degrees)")
		aoa        = flag.Float64("aoa", 0, "angle of attack (degrees)")
		mirror     = flag.Bool("mirror", true, "build both wing halves")
		thickness  = flag.Float64("thickness", loft.DefaultSectionThickness, "section slab thickness")
	)
	flag.Parse()

	if *convert != "" {
		if err := convertProfile(*convert, *convertName, *out); err != nil {
			log.Fatalf("convert: %v", err)
		}
		return
	}

	k, err := newKernel(*backend, *cells)
	if err != nil {
		log.Fatalf("backend: %v", err)
	}

	var builds []engine.Build
	if *script != "" {
		builds, err = evaluateScript(*script)
		if err != nil {
			log.Fatal(err)
		}
	} else {
		cfg := wing.DefaultConfig()
		cfg.Span = *span
		cfg.RootChord = *rootChord
		cfg.TipChord = *tipChord
		cfg.Stations = *stations
		cfg.RootTwist = *rootTwist
		cfg.TipTwist = *tipTwist
		cfg.Sweep = *sweep
		cfg.AlignTE = *alignTE
		cfg.Transition = *transition
		cfg.BlendWidth = *blendWidth
		cfg.MaxSegment = *maxSegment
		cfg.Dihedral = *dihedral
		cfg.AngleOfAttack = *aoa
		cfg.Mirror = *mirror
		cfg.SectionThickness = *thickness
		builds = []engine.Build{{
			Name:  "wing",
			Table: wing.Synthesize(cfg),
			Opts:  loft.OptionsFrom(cfg),
		}}
	}

	if len(builds) == 0 {
		log.Fatal("script defined no wings")
	}

	for _, b := range builds {
		for _, f := range wing.Validate(b.Table) {
			if f.Severity == wing.SeverityWarning {
				log.Printf("%s: %v", b.Name, f)
			}
		}

		w, err := loft.Assemble(k, b.Table, b.Opts)
		if err != nil {
			log.Fatalf("%s: %v", b.Name, err)
		}

		mesh, err := k.ToMesh(w.Solid)
		if err != nil {
			log.Fatalf("%s: mesh: %v", b.Name, err)
		}
		mesh.Name = b.Name

		path := outputPath(*out, b.Name, len(builds) > 1)
		if err := export.SaveSTL(path, mesh); err != nil {
			log.Fatalf("%s: %v", b.Name, err)
		}
		log.Printf("%s: %d stations, %d panels, %d triangles -> %s",
			b.Name, len(b.Table), len(w.Panels), mesh.TriangleCount(), path)

		if *dxfOut != "" {
			path := outputPath(*dxfOut, b.Name, len(builds) > 1)
			if err := export.SavePlanformDXF(path, b.Table); err != nil {
				log.Fatalf("%s: %v", b.Name, err)
			}
		}
		if *templates != "" {
			path := outputPath(*templates, b.Name, len(builds) > 1)
			pitch := 1.2 * b.Table[0].Chord
			if err := export.SaveTemplatesDXF(path, b.Table, pitch); err != nil {
				log.Fatalf("%s: %v", b.Name, err)
			}
		}
	}
}

// newKernel selects the geometry backend.
func newKernel(name string, cells int) (kernel.Kernel, error) {
	switch name {
	case "sdfx":
		k := sdfx.New()
		k.Cells = cells
		return k, nil
	case "manifold":
		return manifold.New()
	}
	return nil, fmt.Errorf("unknown backend %q", name)
}

// evaluateScript runs a wing-script through the engine and reports eval
// errors with their line numbers.
func evaluateScript(path string) ([]engine.Build, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	design, evalErrs, err := engine.NewEngine().Evaluate(string(src))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(evalErrs) > 0 {
		for _, e := range evalErrs {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, e)
		}
		return nil, fmt.Errorf("%s: evaluation failed", path)
	}
	return design.Builds, nil
}

// convertProfile reads a coordinate text file and writes it back out as
// a (defprofile ...) wing-script form.
func convertProfile(in, name, out string) error {
	f, err := os.Open(in)
	if err != nil {
		return err
	}
	defer f.Close()

	p, err := profile.ParsePoints(f)
	if err != nil {
		return err
	}
	if len(p) == 0 {
		return fmt.Errorf("%s: no coordinate pairs found", in)
	}

	// Default the output next to the input when -o was left at the STL
	// default.
	if out == "wing.stl" {
		out = strings.TrimSuffix(in, filepath.Ext(in)) + ".wing"
	}
	w, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := profile.WriteScript(w, name, p); err != nil {
		w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	log.Printf("%s: %d points -> %s", in, len(p), out)
	return nil
}

// outputPath derives a per-wing output path when a script defines
// several wings.
func outputPath(base, name string, multi bool) string {
	if !multi {
		return base
	}
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext) + "-" + name + ext
}
