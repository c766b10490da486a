// Package kernel defines the abstract geometry kernel interface the
// lofting stage builds against. Implementations (sdfx, manifold) provide
// section solids, convex lofting and boolean/rigid operations behind this
// interface, so backends can be swapped without touching the planform or
// lofting code.
package kernel

// Solid is an opaque handle to a geometry kernel solid.
// Implementations wrap their internal representation.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box.
	BoundingBox() (min, max [3]float64)
}

// Kernel is the abstract geometry kernel interface.
//
// The coordinate frame is fixed: X chordwise, Y vertical, Z spanwise.
// Sections are planar outlines in the XY plane extruded a small distance
// along Z; Hull connects two such sections into one panel solid.
type Kernel interface {
	// Section fills a closed planar outline and extrudes it into a thin
	// slab of the given thickness along Z, centered on z=0. The outline
	// must not self-intersect; winding may be either direction.
	Section(outline [][2]float64, thickness float64) Solid

	// Hull returns the minimal convex solid enclosing both inputs.
	// Between dissimilar section outlines this over-approximates the true
	// ruled loft surface; that is the accepted panel construction.
	// Backends may restrict the inputs to section-born solids.
	Hull(a, b Solid) Solid

	// Union returns the boolean union of two solids.
	Union(a, b Solid) Solid

	// Rigid transforms.
	Translate(s Solid, x, y, z float64) Solid
	Rotate(s Solid, x, y, z float64) Solid // Euler angles in degrees
	MirrorZ(s Solid) Solid                 // reflect across the z=0 plane

	// Mesh output.
	ToMesh(s Solid) (*Mesh, error)
}
