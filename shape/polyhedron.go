package shape

import (
	"fmt"

	"github.com/kproskurin/hpmcshape/block"
	"github.com/kproskurin/hpmcshape/geom"
)

// ConvexPolyhedron parameterizes a convex polyhedron by its vertices. The
// vertex count is bounded by Config.MaxVerts, which sizes the engine block.
type ConvexPolyhedron struct {
	Vertices         []geom.Vec3
	IgnoreStatistics bool
}

// Kind reports KindConvexPolyhedron.
func (ConvexPolyhedron) Kind() Kind { return KindConvexPolyhedron }

// Build checks the capacity bound and returns the sized vertex block.
func (p ConvexPolyhedron) Build(cfg Config) (block.Block, error) {
	if len(p.Vertices) > cfg.MaxVerts {
		return nil, &CapacityError{Attr: "vertices", Limit: cfg.MaxVerts, Actual: len(p.Vertices)}
	}

	return block.MakePolyVerts3D(cfg.MaxVerts, p.Vertices, 0, p.IgnoreStatistics), nil
}

func (p ConvexPolyhedron) String() string {
	return fmt.Sprintf("convex polyhedron(vertices = %v)", p.Vertices)
}

// ConvexSpheropolyhedron parameterizes a convex polyhedron swept by a
// sphere of SweepRadius. A single vertex with a positive sweep radius is a
// sphere.
type ConvexSpheropolyhedron struct {
	Vertices         []geom.Vec3
	SweepRadius      float64
	IgnoreStatistics bool
}

// Kind reports KindConvexSpheropolyhedron.
func (ConvexSpheropolyhedron) Kind() Kind { return KindConvexSpheropolyhedron }

// Build checks the capacity bound and sweep radius, then returns the sized
// vertex block.
func (p ConvexSpheropolyhedron) Build(cfg Config) (block.Block, error) {
	if len(p.Vertices) > cfg.MaxVerts {
		return nil, &CapacityError{Attr: "vertices", Limit: cfg.MaxVerts, Actual: len(p.Vertices)}
	}
	if p.SweepRadius < 0 {
		return nil, fmt.Errorf("%w: sweep radius must be non-negative, got %g",
			ErrInvalidShape, p.SweepRadius)
	}

	return block.MakePolyVerts3D(cfg.MaxVerts, p.Vertices, p.SweepRadius, p.IgnoreStatistics), nil
}

func (p ConvexSpheropolyhedron) String() string {
	return fmt.Sprintf("convex spheropolyhedron(sweep radius = %g, vertices = %v)", p.SweepRadius, p.Vertices)
}

// Polyhedron parameterizes a general polyhedron by vertices plus explicit
// face topology: each face is an ordered list of vertex indices.
type Polyhedron struct {
	Vertices         []geom.Vec3
	Faces            [][]int
	SweepRadius      float64
	IgnoreStatistics bool
}

// Kind reports KindPolyhedron.
func (Polyhedron) Kind() Kind { return KindPolyhedron }

// Build flattens the face topology into the engine's (face-vertex,
// face-offset) arrays and returns the polyhedron data block. Every face
// index must address an existing vertex. A negative sweep radius is
// non-fatal: the warning sink is told and construction proceeds.
func (p Polyhedron) Build(cfg Config) (block.Block, error) {
	var faceVerts []int
	faceOffsets := make([]int, 0, len(p.Faces)+1)
	for fi, face := range p.Faces {
		faceOffsets = append(faceOffsets, len(faceVerts))
		for _, vi := range face {
			if vi < 0 || vi >= len(p.Vertices) {
				return nil, fmt.Errorf("%w: face %d references vertex %d, but only %d vertices are defined",
					ErrInvalidShape, fi, vi, len(p.Vertices))
			}
			faceVerts = append(faceVerts, vi)
		}
	}
	// Trailing sentinel: end of the last face.
	faceOffsets = append(faceOffsets, len(faceVerts))

	if p.SweepRadius < 0 {
		cfg.warnf("a rounding radius < 0 does not make sense")
	}

	return block.MakePolyData3D(p.Vertices, faceVerts, faceOffsets, p.SweepRadius, p.IgnoreStatistics), nil
}

func (p Polyhedron) String() string {
	return fmt.Sprintf("polyhedron(vertices = %v, faces = %v, sweep radius = %g)",
		p.Vertices, p.Faces, p.SweepRadius)
}
