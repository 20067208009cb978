package block

import (
	"fmt"
	"slices"

	"github.com/kproskurin/hpmcshape/geom"
)

// Block is the opaque parameter payload for one particle type.
// Only the variants in this package implement it.
type Block interface {
	isBlock()
}

// Sphere is the block for a sphere of a given radius. It doubles as the
// per-member payload inside SphereUnion.
type Sphere struct {
	Radius           float64
	IgnoreStatistics bool
}

func (Sphere) isBlock() {}

// MakeSphere builds a sphere block. Note the engine works in radii; the
// user-facing attribute is a diameter.
func MakeSphere(radius float64, ignoreStats bool) Sphere {
	return Sphere{Radius: radius, IgnoreStatistics: ignoreStats}
}

// PolyVerts2D is the shared block for the planar polygon family; the
// non-swept kinds use SweepRadius 0.
type PolyVerts2D struct {
	Verts            []geom.Vec2
	SweepRadius      float64
	IgnoreStatistics bool
}

func (PolyVerts2D) isBlock() {}

// MakePolyVerts2D builds a planar polygon block.
func MakePolyVerts2D(verts []geom.Vec2, sweepRadius float64, ignoreStats bool) PolyVerts2D {
	return PolyVerts2D{
		Verts:            slices.Clone(verts),
		SweepRadius:      sweepRadius,
		IgnoreStatistics: ignoreStats,
	}
}

// PolyVerts3D is the sized block for convex polyhedra and spheropolyhedra.
// Verts always has length Cap; entries beyond N are zero padding.
type PolyVerts3D struct {
	N                int
	Cap              int
	Verts            []geom.Vec3
	SweepRadius      float64
	IgnoreStatistics bool
}

func (PolyVerts3D) isBlock() {}

// MakePolyVerts3D builds a sized 3-D vertex block padded to capacity.
// Precondition: len(verts) <= capacity.
func MakePolyVerts3D(capacity int, verts []geom.Vec3, sweepRadius float64, ignoreStats bool) PolyVerts3D {
	if len(verts) > capacity {
		panic(fmt.Sprintf("block: %d vertices exceed block capacity %d", len(verts), capacity))
	}
	padded := make([]geom.Vec3, capacity)
	copy(padded, verts)

	return PolyVerts3D{
		N:                len(verts),
		Cap:              capacity,
		Verts:            padded,
		SweepRadius:      sweepRadius,
		IgnoreStatistics: ignoreStats,
	}
}

// PolyData3D is the block for general (possibly non-convex) polyhedra with
// explicit face topology. FaceVerts holds the concatenated per-face vertex
// indices; FaceOffsets[i] is the start of face i in FaceVerts, with a
// trailing sentinel equal to len(FaceVerts).
type PolyData3D struct {
	Verts            []geom.Vec3
	FaceVerts        []int
	FaceOffsets      []int
	SweepRadius      float64
	IgnoreStatistics bool
}

func (PolyData3D) isBlock() {}

// MakePolyData3D builds a faceted polyhedron block from pre-flattened
// topology arrays.
func MakePolyData3D(verts []geom.Vec3, faceVerts, faceOffsets []int, sweepRadius float64, ignoreStats bool) PolyData3D {
	return PolyData3D{
		Verts:            slices.Clone(verts),
		FaceVerts:        slices.Clone(faceVerts),
		FaceOffsets:      slices.Clone(faceOffsets),
		SweepRadius:      sweepRadius,
		IgnoreStatistics: ignoreStats,
	}
}

// FacetedSphere is the block for a sphere cut by half-space planes.
// Normals[i] and Offsets[i] together define plane i; Verts describe the
// bounding polytope of the cut region.
type FacetedSphere struct {
	Normals          []geom.Vec3
	Offsets          []float64
	Verts            []geom.Vec3
	Diameter         float64
	Origin           geom.Vec3
	IgnoreStatistics bool
}

func (FacetedSphere) isBlock() {}

// MakeFacetedSphere builds a faceted-sphere block.
func MakeFacetedSphere(normals []geom.Vec3, offsets []float64, verts []geom.Vec3, diameter float64, origin geom.Vec3, ignoreStats bool) FacetedSphere {
	return FacetedSphere{
		Normals:          slices.Clone(normals),
		Offsets:          slices.Clone(offsets),
		Verts:            slices.Clone(verts),
		Diameter:         diameter,
		Origin:           origin,
		IgnoreStatistics: ignoreStats,
	}
}

// Sphinx is the block for a signed sphere composite: positive diameters add
// volume, negative diameters subtract it.
type Sphinx struct {
	Diameters        []float64
	Centers          []geom.Vec3
	IgnoreStatistics bool
}

func (Sphinx) isBlock() {}

// MakeSphinx builds a sphinx block.
func MakeSphinx(diameters []float64, centers []geom.Vec3, ignoreStats bool) Sphinx {
	return Sphinx{
		Diameters:        slices.Clone(diameters),
		Centers:          slices.Clone(centers),
		IgnoreStatistics: ignoreStats,
	}
}

// Ellipsoid is the block for an ellipsoid with semi-axes A, B, C.
type Ellipsoid struct {
	A, B, C          float64
	IgnoreStatistics bool
}

func (Ellipsoid) isBlock() {}

// MakeEllipsoid builds an ellipsoid block.
func MakeEllipsoid(a, b, c float64, ignoreStats bool) Ellipsoid {
	return Ellipsoid{A: a, B: b, C: c, IgnoreStatistics: ignoreStats}
}

// SphereUnion is the sized block for a rigid union of spheres. All member
// arrays have length Cap; entries beyond N are zero padding. Overlap[i]
// false exempts member i from overlap checks.
type SphereUnion struct {
	N                int
	Cap              int
	Members          []Sphere
	Centers          []geom.Vec3
	Orientations     []geom.Quat
	Overlap          []bool
	IgnoreStatistics bool
}

func (SphereUnion) isBlock() {}

// MakeSphereUnion builds a sized sphere-union block padded to capacity.
// Preconditions: the four member arrays have equal length <= capacity.
func MakeSphereUnion(capacity int, members []Sphere, centers []geom.Vec3, orientations []geom.Quat, overlap []bool, ignoreStats bool) SphereUnion {
	n := len(members)
	if len(centers) != n || len(orientations) != n || len(overlap) != n {
		panic(fmt.Sprintf("block: ragged sphere-union arrays (%d/%d/%d/%d)",
			n, len(centers), len(orientations), len(overlap)))
	}
	if n > capacity {
		panic(fmt.Sprintf("block: %d members exceed block capacity %d", n, capacity))
	}
	b := SphereUnion{
		N:                n,
		Cap:              capacity,
		Members:          make([]Sphere, capacity),
		Centers:          make([]geom.Vec3, capacity),
		Orientations:     make([]geom.Quat, capacity),
		Overlap:          make([]bool, capacity),
		IgnoreStatistics: ignoreStats,
	}
	copy(b.Members, members)
	copy(b.Centers, centers)
	copy(b.Orientations, orientations)
	copy(b.Overlap, overlap)

	return b
}
