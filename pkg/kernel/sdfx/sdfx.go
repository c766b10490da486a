// Package sdfx implements the kernel.Kernel interface using the
// github.com/deadsy/sdfx SDF-based CAD library.
package sdfx

import (
	"fmt"
	"math"

	"github.com/chazu/wingloft/pkg/kernel"
	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Compile-time interface check.
var _ kernel.Kernel = (*SdfxKernel)(nil)

// defaultMeshCells controls marching cubes tessellation resolution.
const defaultMeshCells = 200

// sdfxSolid wraps an sdf.SDF3 to implement kernel.Solid. Section-born
// solids retain their planar outline and span placement so Hull can loft
// between them; any transform other than a pure spanwise translation
// discards the outline.
type sdfxSolid struct {
	s         sdf.SDF3
	outline   sdf.SDF2 // non-nil only for section-born solids
	z         float64  // spanwise center of the section slab
	thickness float64
}

// BoundingBox returns the axis-aligned bounding box.
func (s *sdfxSolid) BoundingBox() (min, max [3]float64) {
	bb := s.s.BoundingBox()
	min = [3]float64{bb.Min.X, bb.Min.Y, bb.Min.Z}
	max = [3]float64{bb.Max.X, bb.Max.Y, bb.Max.Z}
	return min, max
}

// SdfxKernel implements kernel.Kernel using sdfx.
type SdfxKernel struct {
	// Cells is the marching cubes resolution used by ToMesh.
	Cells int
}

// New returns a new SdfxKernel at the default mesh resolution.
func New() *SdfxKernel {
	return &SdfxKernel{Cells: defaultMeshCells}
}

// unwrap extracts the underlying sdf.SDF3 from a kernel.Solid.
func unwrap(s kernel.Solid) sdf.SDF3 {
	return s.(*sdfxSolid).s
}

// wrap creates a kernel.Solid from an sdf.SDF3.
func wrap(s sdf.SDF3) kernel.Solid {
	return &sdfxSolid{s: s}
}

// Section fills a closed planar outline and extrudes it into a thin slab
// along Z, centered on z=0. The outline winding may be either direction;
// a clockwise outline is reversed before polygon construction since
// sdf.Polygon2D expects counterclockwise vertices.
func (k *SdfxKernel) Section(outline [][2]float64, thickness float64) kernel.Solid {
	pts := make([]v2.Vec, len(outline))
	for i, p := range outline {
		pts[i] = v2.Vec{X: p[0], Y: p[1]}
	}
	if signedArea(outline) < 0 {
		for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
			pts[i], pts[j] = pts[j], pts[i]
		}
	}
	poly, err := sdf.Polygon2D(pts)
	if err != nil {
		panic(fmt.Sprintf("sdfx.Polygon2D: %v", err))
	}
	return &sdfxSolid{
		s:         sdf.Extrude3D(poly, thickness),
		outline:   poly,
		z:         0,
		thickness: thickness,
	}
}

// Hull lofts between two section-born solids. Loft3D interpolates the two
// planar SDFs along Z, which coincides with the convex hull for identical
// convex outlines and is the accepted approximation otherwise. Both
// arguments must come from Section, optionally translated along Z.
func (k *SdfxKernel) Hull(a, b kernel.Solid) kernel.Solid {
	sa := a.(*sdfxSolid)
	sb := b.(*sdfxSolid)
	if sa.outline == nil || sb.outline == nil {
		panic("sdfx.Hull: operands must be section solids")
	}
	if sa.z > sb.z {
		sa, sb = sb, sa
	}
	// Span the full extent of both slabs.
	height := (sb.z - sa.z) + sa.thickness
	loft, err := sdf.Loft3D(sa.outline, sb.outline, height, 0)
	if err != nil {
		panic(fmt.Sprintf("sdfx.Loft3D: %v", err))
	}
	m := sdf.Translate3d(v3.Vec{X: 0, Y: 0, Z: (sa.z + sb.z) / 2})
	return wrap(sdf.Transform3D(loft, m))
}

// Union returns the union of two solids.
func (k *SdfxKernel) Union(a, b kernel.Solid) kernel.Solid {
	return wrap(sdf.Union3D(unwrap(a), unwrap(b)))
}

// Translate moves a solid by (x, y, z). A pure spanwise translation of a
// section solid keeps it loftable.
func (k *SdfxKernel) Translate(s kernel.Solid, x, y, z float64) kernel.Solid {
	src := s.(*sdfxSolid)
	m := sdf.Translate3d(v3.Vec{X: x, Y: y, Z: z})
	moved := sdf.Transform3D(src.s, m)
	if src.outline != nil && x == 0 && y == 0 {
		return &sdfxSolid{s: moved, outline: src.outline, z: src.z + z, thickness: src.thickness}
	}
	return wrap(moved)
}

// Rotate rotates a solid by Euler angles (degrees) around X, Y, Z axes.
func (k *SdfxKernel) Rotate(s kernel.Solid, x, y, z float64) kernel.Solid {
	xRad := x * math.Pi / 180.0
	yRad := y * math.Pi / 180.0
	zRad := z * math.Pi / 180.0

	m := sdf.RotateZ(zRad).Mul(sdf.RotateY(yRad)).Mul(sdf.RotateX(xRad))
	return wrap(sdf.Transform3D(unwrap(s), m))
}

// MirrorZ reflects a solid across the z=0 plane.
func (k *SdfxKernel) MirrorZ(s kernel.Solid) kernel.Solid {
	return wrap(sdf.Transform3D(unwrap(s), sdf.MirrorXY()))
}

// ToMesh converts a solid to a triangle mesh using marching cubes.
func (k *SdfxKernel) ToMesh(s kernel.Solid) (*kernel.Mesh, error) {
	sdf3 := unwrap(s)

	cells := k.Cells
	if cells <= 0 {
		cells = defaultMeshCells
	}
	renderer := render.NewMarchingCubesUniform(cells)
	triangles := render.ToTriangles(sdf3, renderer)

	numTri := len(triangles)
	numVerts := numTri * 3

	vertices := make([]float32, 0, numVerts*3)
	normals := make([]float32, 0, numVerts*3)
	indices := make([]uint32, 0, numVerts)

	for i, tri := range triangles {
		// Compute face normal.
		n := tri.Normal()
		nx := float32(n.X)
		ny := float32(n.Y)
		nz := float32(n.Z)

		for j := 0; j < 3; j++ {
			v := tri[j]
			vertices = append(vertices, float32(v.X), float32(v.Y), float32(v.Z))
			normals = append(normals, nx, ny, nz)
			indices = append(indices, uint32(i*3+j))
		}
	}

	return &kernel.Mesh{
		Vertices: vertices,
		Normals:  normals,
		Indices:  indices,
	}, nil
}

// signedArea is the shoelace area of a closed outline; positive means
// counterclockwise winding.
func signedArea(outline [][2]float64) float64 {
	var sum float64
	n := len(outline)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += outline[i][0]*outline[j][1] - outline[j][0]*outline[i][1]
	}
	return sum / 2
}
