package shape

import (
	"fmt"

	"github.com/kproskurin/hpmcshape/block"
	"github.com/kproskurin/hpmcshape/geom"
)

// ConvexPolygon parameterizes a planar convex polygon by its vertices,
// ordered around the perimeter.
type ConvexPolygon struct {
	Vertices         []geom.Vec2
	IgnoreStatistics bool
}

// Kind reports KindConvexPolygon.
func (ConvexPolygon) Kind() Kind { return KindConvexPolygon }

// Build validates the vertex count and returns the planar vertex block.
func (p ConvexPolygon) Build(_ Config) (block.Block, error) {
	if len(p.Vertices) < 3 {
		return nil, fmt.Errorf("%w: convex polygon needs at least 3 vertices, got %d",
			ErrInvalidShape, len(p.Vertices))
	}

	return block.MakePolyVerts2D(p.Vertices, 0, p.IgnoreStatistics), nil
}

func (p ConvexPolygon) String() string {
	return fmt.Sprintf("convex polygon(vertices = %v)", p.Vertices)
}

// ConvexSpheropolygon parameterizes a convex polygon swept by a disk of
// SweepRadius. A single vertex with a positive sweep radius is a disk, so
// no minimum vertex count beyond one applies.
type ConvexSpheropolygon struct {
	Vertices         []geom.Vec2
	SweepRadius      float64
	IgnoreStatistics bool
}

// Kind reports KindConvexSpheropolygon.
func (ConvexSpheropolygon) Kind() Kind { return KindConvexSpheropolygon }

// Build validates the sweep radius and returns the planar vertex block.
func (p ConvexSpheropolygon) Build(_ Config) (block.Block, error) {
	if len(p.Vertices) == 0 {
		return nil, fmt.Errorf("%w: convex spheropolygon needs at least 1 vertex", ErrInvalidShape)
	}
	if p.SweepRadius < 0 {
		return nil, fmt.Errorf("%w: sweep radius must be non-negative, got %g",
			ErrInvalidShape, p.SweepRadius)
	}

	return block.MakePolyVerts2D(p.Vertices, p.SweepRadius, p.IgnoreStatistics), nil
}

func (p ConvexSpheropolygon) String() string {
	return fmt.Sprintf("convex spheropolygon(sweep radius = %g, vertices = %v)", p.SweepRadius, p.Vertices)
}

// SimplePolygon parameterizes a planar simple polygon; unlike
// ConvexPolygon the perimeter may be non-convex, but must not
// self-intersect.
type SimplePolygon struct {
	Vertices         []geom.Vec2
	IgnoreStatistics bool
}

// Kind reports KindSimplePolygon.
func (SimplePolygon) Kind() Kind { return KindSimplePolygon }

// Build validates the vertex count and returns the planar vertex block.
func (p SimplePolygon) Build(_ Config) (block.Block, error) {
	if len(p.Vertices) < 3 {
		return nil, fmt.Errorf("%w: simple polygon needs at least 3 vertices, got %d",
			ErrInvalidShape, len(p.Vertices))
	}

	return block.MakePolyVerts2D(p.Vertices, 0, p.IgnoreStatistics), nil
}

func (p SimplePolygon) String() string {
	return fmt.Sprintf("simple polygon(vertices = %v)", p.Vertices)
}
